// Package errors is the structured error type shared by the character builder.
//
// Every error that crosses a package boundary carries a Code, a message for
// humans, an optional cause and optional metadata:
//
//	err := errors.NotFoundf("draft %s not found", id).WithMeta("draft_id", id)
//
// Wrapping keeps the code of the wrapped error unless a new one is given:
//
//	if err := repo.Get(ctx, in); err != nil {
//	    return nil, errors.Wrap(err, "failed to load draft")
//	}
//
// Field validation goes through the builder, which returns nil when nothing
// was recorded:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", in.Name, vb)
//	errors.ValidateRange("level", in.Level, 1, 20, vb)
//	return vb.Build()
//
// Handlers convert to transport errors with ToGRPCError. Validation failures
// become InvalidArgument statuses with BadRequest field violations attached.
package errors

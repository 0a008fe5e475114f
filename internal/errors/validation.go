package errors

import (
	"fmt"
	"strings"
)

// MetaFieldViolations is the metadata key holding per-field messages
const MetaFieldViolations = "field_violations"

// FieldViolation is one failed field check
type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationBuilder accumulates field violations in the order they were found.
// Build returns nil when nothing was recorded.
type ValidationBuilder struct {
	violations []FieldViolation
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{}
}

// Field records a violation for a field
func (vb *ValidationBuilder) Field(field, description string) *ValidationBuilder {
	vb.violations = append(vb.violations, FieldViolation{Field: field, Description: description})
	return vb
}

// Fieldf records a formatted violation for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records a missing required field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// HasErrors reports whether any violation was recorded
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.violations) > 0
}

// Build returns an InvalidArgument error carrying the violations, or nil
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	parts := make([]string, len(vb.violations))
	for i, v := range vb.violations {
		parts[i] = v.Field + ": " + v.Description
	}

	violations := make([]FieldViolation, len(vb.violations))
	copy(violations, vb.violations)

	return InvalidArgumentf("validation failed: %s", strings.Join(parts, "; ")).
		WithMeta(MetaFieldViolations, violations)
}

// FieldViolations returns the violations attached to a validation error
func FieldViolations(err error) []FieldViolation {
	v, _ := GetMeta(err)[MetaFieldViolations].([]FieldViolation)
	return v
}

// ValidateRequired records a violation when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateMaxLength records a violation when value is longer than maxLen
func ValidateMaxLength(field, value string, maxLen int, vb *ValidationBuilder) {
	if len(value) > maxLen {
		vb.Fieldf(field, "must be no more than %d characters", maxLen)
	}
}

// ValidateRange records a violation when value falls outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum records a violation when value is not one of allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}

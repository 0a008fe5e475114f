package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/rpg-charbuilder/internal/errors"
	"github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

// Client calls a remote CharacterBuilder service. Errors come back as
// *errors.Error with the server's code and field violations.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps a client connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

var _ character.Service = (*Client)(nil)

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, errors.FromGRPCError(err)
	}
	return out, nil
}

// CreateDraft calls the CreateDraft method
func (c *Client) CreateDraft(ctx context.Context, req *character.CreateDraftInput) (*character.CreateDraftOutput, error) {
	return invoke[character.CreateDraftInput, character.CreateDraftOutput](ctx, c.cc, "CreateDraft", req)
}

// GetDraft calls the GetDraft method
func (c *Client) GetDraft(ctx context.Context, req *character.GetDraftInput) (*character.GetDraftOutput, error) {
	return invoke[character.GetDraftInput, character.GetDraftOutput](ctx, c.cc, "GetDraft", req)
}

// GetDraftByPlayer calls the GetDraftByPlayer method
func (c *Client) GetDraftByPlayer(ctx context.Context, req *character.GetDraftByPlayerInput) (*character.GetDraftByPlayerOutput, error) {
	return invoke[character.GetDraftByPlayerInput, character.GetDraftByPlayerOutput](ctx, c.cc, "GetDraftByPlayer", req)
}

// DeleteDraft calls the DeleteDraft method
func (c *Client) DeleteDraft(ctx context.Context, req *character.DeleteDraftInput) (*character.DeleteDraftOutput, error) {
	return invoke[character.DeleteDraftInput, character.DeleteDraftOutput](ctx, c.cc, "DeleteDraft", req)
}

// UpdateName calls the UpdateName method
func (c *Client) UpdateName(ctx context.Context, req *character.UpdateNameInput) (*character.UpdateNameOutput, error) {
	return invoke[character.UpdateNameInput, character.UpdateNameOutput](ctx, c.cc, "UpdateName", req)
}

// UpdateRace calls the UpdateRace method
func (c *Client) UpdateRace(ctx context.Context, req *character.UpdateRaceInput) (*character.UpdateRaceOutput, error) {
	return invoke[character.UpdateRaceInput, character.UpdateRaceOutput](ctx, c.cc, "UpdateRace", req)
}

// UpdateClass calls the UpdateClass method
func (c *Client) UpdateClass(ctx context.Context, req *character.UpdateClassInput) (*character.UpdateClassOutput, error) {
	return invoke[character.UpdateClassInput, character.UpdateClassOutput](ctx, c.cc, "UpdateClass", req)
}

// UpdateBackground calls the UpdateBackground method
func (c *Client) UpdateBackground(ctx context.Context, req *character.UpdateBackgroundInput) (*character.UpdateBackgroundOutput, error) {
	return invoke[character.UpdateBackgroundInput, character.UpdateBackgroundOutput](ctx, c.cc, "UpdateBackground", req)
}

// UpdateAlignment calls the UpdateAlignment method
func (c *Client) UpdateAlignment(ctx context.Context, req *character.UpdateAlignmentInput) (*character.UpdateAlignmentOutput, error) {
	return invoke[character.UpdateAlignmentInput, character.UpdateAlignmentOutput](ctx, c.cc, "UpdateAlignment", req)
}

// GenerateAbilityScores calls the GenerateAbilityScores method
func (c *Client) GenerateAbilityScores(ctx context.Context, req *character.GenerateAbilityScoresInput) (*character.GenerateAbilityScoresOutput, error) {
	return invoke[character.GenerateAbilityScoresInput, character.GenerateAbilityScoresOutput](ctx, c.cc, "GenerateAbilityScores", req)
}

// AdjustPointBuy calls the AdjustPointBuy method
func (c *Client) AdjustPointBuy(ctx context.Context, req *character.AdjustPointBuyInput) (*character.AdjustPointBuyOutput, error) {
	return invoke[character.AdjustPointBuyInput, character.AdjustPointBuyOutput](ctx, c.cc, "AdjustPointBuy", req)
}

// SwapAbilityScores calls the SwapAbilityScores method
func (c *Client) SwapAbilityScores(ctx context.Context, req *character.SwapAbilityScoresInput) (*character.SwapAbilityScoresOutput, error) {
	return invoke[character.SwapAbilityScoresInput, character.SwapAbilityScoresOutput](ctx, c.cc, "SwapAbilityScores", req)
}

// UpdateSpells calls the UpdateSpells method
func (c *Client) UpdateSpells(ctx context.Context, req *character.UpdateSpellsInput) (*character.UpdateSpellsOutput, error) {
	return invoke[character.UpdateSpellsInput, character.UpdateSpellsOutput](ctx, c.cc, "UpdateSpells", req)
}

// SelectEquipmentPack calls the SelectEquipmentPack method
func (c *Client) SelectEquipmentPack(ctx context.Context, req *character.SelectEquipmentPackInput) (*character.SelectEquipmentPackOutput, error) {
	return invoke[character.SelectEquipmentPackInput, character.SelectEquipmentPackOutput](ctx, c.cc, "SelectEquipmentPack", req)
}

// PreviewDraft calls the PreviewDraft method
func (c *Client) PreviewDraft(ctx context.Context, req *character.PreviewDraftInput) (*character.PreviewDraftOutput, error) {
	return invoke[character.PreviewDraftInput, character.PreviewDraftOutput](ctx, c.cc, "PreviewDraft", req)
}

// FinalizeDraft calls the FinalizeDraft method
func (c *Client) FinalizeDraft(ctx context.Context, req *character.FinalizeDraftInput) (*character.FinalizeDraftOutput, error) {
	return invoke[character.FinalizeDraftInput, character.FinalizeDraftOutput](ctx, c.cc, "FinalizeDraft", req)
}

// GetCharacter calls the GetCharacter method
func (c *Client) GetCharacter(ctx context.Context, req *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	return invoke[character.GetCharacterInput, character.GetCharacterOutput](ctx, c.cc, "GetCharacter", req)
}

// ListCharacters calls the ListCharacters method
func (c *Client) ListCharacters(ctx context.Context, req *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	return invoke[character.ListCharactersInput, character.ListCharactersOutput](ctx, c.cc, "ListCharacters", req)
}

// DeleteCharacter calls the DeleteCharacter method
func (c *Client) DeleteCharacter(ctx context.Context, req *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	return invoke[character.DeleteCharacterInput, character.DeleteCharacterOutput](ctx, c.cc, "DeleteCharacter", req)
}

// GetSpellProfile calls the GetSpellProfile method
func (c *Client) GetSpellProfile(ctx context.Context, req *character.GetSpellProfileInput) (*character.GetSpellProfileOutput, error) {
	return invoke[character.GetSpellProfileInput, character.GetSpellProfileOutput](ctx, c.cc, "GetSpellProfile", req)
}

// ListRaces calls the ListRaces method
func (c *Client) ListRaces(ctx context.Context, req *character.ListRacesInput) (*character.ListRacesOutput, error) {
	return invoke[character.ListRacesInput, character.ListRacesOutput](ctx, c.cc, "ListRaces", req)
}

// ListClasses calls the ListClasses method
func (c *Client) ListClasses(ctx context.Context, req *character.ListClassesInput) (*character.ListClassesOutput, error) {
	return invoke[character.ListClassesInput, character.ListClassesOutput](ctx, c.cc, "ListClasses", req)
}

// ListBackgrounds calls the ListBackgrounds method
func (c *Client) ListBackgrounds(ctx context.Context, req *character.ListBackgroundsInput) (*character.ListBackgroundsOutput, error) {
	return invoke[character.ListBackgroundsInput, character.ListBackgroundsOutput](ctx, c.cc, "ListBackgrounds", req)
}

// ListEquipmentPacks calls the ListEquipmentPacks method
func (c *Client) ListEquipmentPacks(ctx context.Context, req *character.ListEquipmentPacksInput) (*character.ListEquipmentPacksOutput, error) {
	return invoke[character.ListEquipmentPacksInput, character.ListEquipmentPacksOutput](ctx, c.cc, "ListEquipmentPacks", req)
}

// ListSpells calls the ListSpells method
func (c *Client) ListSpells(ctx context.Context, req *character.ListSpellsInput) (*character.ListSpellsOutput, error) {
	return invoke[character.ListSpellsInput, character.ListSpellsOutput](ctx, c.cc, "ListSpells", req)
}

// RollDice calls the RollDice method
func (c *Client) RollDice(ctx context.Context, req *RollDiceRequest) (*RollDiceResponse, error) {
	return invoke[RollDiceRequest, RollDiceResponse](ctx, c.cc, "RollDice", req)
}

// GetRollSession calls the GetRollSession method
func (c *Client) GetRollSession(ctx context.Context, req *GetRollSessionRequest) (*GetRollSessionResponse, error) {
	return invoke[GetRollSessionRequest, GetRollSessionResponse](ctx, c.cc, "GetRollSession", req)
}

// ClearRollSession calls the ClearRollSession method
func (c *Client) ClearRollSession(ctx context.Context, req *ClearRollSessionRequest) (*ClearRollSessionResponse, error) {
	return invoke[ClearRollSessionRequest, ClearRollSessionResponse](ctx, c.cc, "ClearRollSession", req)
}

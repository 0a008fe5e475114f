package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/rpg-charbuilder/internal/services/character"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "charbuilder.v1alpha1.CharacterBuilder"

// CharacterBuilderServer is the server API for the CharacterBuilder service
type CharacterBuilderServer interface {
	CreateDraft(ctx context.Context, req *character.CreateDraftInput) (*character.CreateDraftOutput, error)
	GetDraft(ctx context.Context, req *character.GetDraftInput) (*character.GetDraftOutput, error)
	GetDraftByPlayer(ctx context.Context, req *character.GetDraftByPlayerInput) (*character.GetDraftByPlayerOutput, error)
	DeleteDraft(ctx context.Context, req *character.DeleteDraftInput) (*character.DeleteDraftOutput, error)
	UpdateName(ctx context.Context, req *character.UpdateNameInput) (*character.UpdateNameOutput, error)
	UpdateRace(ctx context.Context, req *character.UpdateRaceInput) (*character.UpdateRaceOutput, error)
	UpdateClass(ctx context.Context, req *character.UpdateClassInput) (*character.UpdateClassOutput, error)
	UpdateBackground(ctx context.Context, req *character.UpdateBackgroundInput) (*character.UpdateBackgroundOutput, error)
	UpdateAlignment(ctx context.Context, req *character.UpdateAlignmentInput) (*character.UpdateAlignmentOutput, error)
	GenerateAbilityScores(ctx context.Context, req *character.GenerateAbilityScoresInput) (*character.GenerateAbilityScoresOutput, error)
	AdjustPointBuy(ctx context.Context, req *character.AdjustPointBuyInput) (*character.AdjustPointBuyOutput, error)
	SwapAbilityScores(ctx context.Context, req *character.SwapAbilityScoresInput) (*character.SwapAbilityScoresOutput, error)
	UpdateSpells(ctx context.Context, req *character.UpdateSpellsInput) (*character.UpdateSpellsOutput, error)
	SelectEquipmentPack(ctx context.Context, req *character.SelectEquipmentPackInput) (*character.SelectEquipmentPackOutput, error)
	PreviewDraft(ctx context.Context, req *character.PreviewDraftInput) (*character.PreviewDraftOutput, error)
	FinalizeDraft(ctx context.Context, req *character.FinalizeDraftInput) (*character.FinalizeDraftOutput, error)
	GetCharacter(ctx context.Context, req *character.GetCharacterInput) (*character.GetCharacterOutput, error)
	ListCharacters(ctx context.Context, req *character.ListCharactersInput) (*character.ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, req *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error)
	GetSpellProfile(ctx context.Context, req *character.GetSpellProfileInput) (*character.GetSpellProfileOutput, error)
	ListRaces(ctx context.Context, req *character.ListRacesInput) (*character.ListRacesOutput, error)
	ListClasses(ctx context.Context, req *character.ListClassesInput) (*character.ListClassesOutput, error)
	ListBackgrounds(ctx context.Context, req *character.ListBackgroundsInput) (*character.ListBackgroundsOutput, error)
	ListEquipmentPacks(ctx context.Context, req *character.ListEquipmentPacksInput) (*character.ListEquipmentPacksOutput, error)
	ListSpells(ctx context.Context, req *character.ListSpellsInput) (*character.ListSpellsOutput, error)

	RollDice(ctx context.Context, req *RollDiceRequest) (*RollDiceResponse, error)
	GetRollSession(ctx context.Context, req *GetRollSessionRequest) (*GetRollSessionResponse, error)
	ClearRollSession(ctx context.Context, req *ClearRollSessionRequest) (*ClearRollSessionResponse, error)
}

// FullMethod returns the gRPC path of a method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unary[Req, Resp any](method string, call func(CharacterBuilderServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(CharacterBuilderServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes the CharacterBuilder service for grpc.Server
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CharacterBuilderServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateDraft", CharacterBuilderServer.CreateDraft),
		unary("GetDraft", CharacterBuilderServer.GetDraft),
		unary("GetDraftByPlayer", CharacterBuilderServer.GetDraftByPlayer),
		unary("DeleteDraft", CharacterBuilderServer.DeleteDraft),
		unary("UpdateName", CharacterBuilderServer.UpdateName),
		unary("UpdateRace", CharacterBuilderServer.UpdateRace),
		unary("UpdateClass", CharacterBuilderServer.UpdateClass),
		unary("UpdateBackground", CharacterBuilderServer.UpdateBackground),
		unary("UpdateAlignment", CharacterBuilderServer.UpdateAlignment),
		unary("GenerateAbilityScores", CharacterBuilderServer.GenerateAbilityScores),
		unary("AdjustPointBuy", CharacterBuilderServer.AdjustPointBuy),
		unary("SwapAbilityScores", CharacterBuilderServer.SwapAbilityScores),
		unary("UpdateSpells", CharacterBuilderServer.UpdateSpells),
		unary("SelectEquipmentPack", CharacterBuilderServer.SelectEquipmentPack),
		unary("PreviewDraft", CharacterBuilderServer.PreviewDraft),
		unary("FinalizeDraft", CharacterBuilderServer.FinalizeDraft),
		unary("GetCharacter", CharacterBuilderServer.GetCharacter),
		unary("ListCharacters", CharacterBuilderServer.ListCharacters),
		unary("DeleteCharacter", CharacterBuilderServer.DeleteCharacter),
		unary("GetSpellProfile", CharacterBuilderServer.GetSpellProfile),
		unary("ListRaces", CharacterBuilderServer.ListRaces),
		unary("ListClasses", CharacterBuilderServer.ListClasses),
		unary("ListBackgrounds", CharacterBuilderServer.ListBackgrounds),
		unary("ListEquipmentPacks", CharacterBuilderServer.ListEquipmentPacks),
		unary("ListSpells", CharacterBuilderServer.ListSpells),
		unary("RollDice", CharacterBuilderServer.RollDice),
		unary("GetRollSession", CharacterBuilderServer.GetRollSession),
		unary("ClearRollSession", CharacterBuilderServer.ClearRollSession),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "charbuilder/v1alpha1/character_builder",
}

// RegisterCharacterBuilderServer registers srv with s
func RegisterCharacterBuilderServer(s grpc.ServiceRegistrar, srv CharacterBuilderServer) {
	s.RegisterService(&ServiceDesc, srv)
}

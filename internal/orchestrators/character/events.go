package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the bus
const (
	EventDraftCreated       = "draft.created"
	EventCharacterFinalized = "character.finalized"
	EventCharacterDeleted   = "character.deleted"
)

// publish sends an event; the operation that triggered it has already
// succeeded, so failures are only logged
func (o *Orchestrator) publish(ctx context.Context, eventType string, source, target core.Entity) {
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.Warn("failed to publish event",
			"event_type", eventType,
			"target_id", target.GetID(),
			"error", err,
		)
	}
}

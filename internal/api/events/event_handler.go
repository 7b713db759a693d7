package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/backoffice/internal/entity"
)

type Service interface {
	SaveMutation(ctx context.Context, mutation entity.Mutation) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

// OnRecordMutated writes a record mutation event to the journal. Events that
// cannot be decoded or carry an unknown action are dropped.
func (h *EventHandler) OnRecordMutated(ctx context.Context, msg kafka.Message) error {
	var event entity.Mutation

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.ID.IsNil() || !event.Action.IsValid() {
		slog.WarnContext(ctx, "skip malformed mutation event", "key", string(msg.Key), "action", event.Action)
		return nil
	}

	err = h.s.SaveMutation(ctx, event)
	if err != nil {
		return fmt.Errorf("save mutation: %w", err)
	}

	return nil
}

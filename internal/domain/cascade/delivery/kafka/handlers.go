package kafka

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/hexanotify/notifier-service/internal/domain/cascade/dto"
	cascadeerrors "github.com/hexanotify/notifier-service/internal/domain/cascade/errors"
	"github.com/hexanotify/notifier-service/internal/domain/cascade/usecase"
	"github.com/rs/zerolog"
)

// EventHandler consumes entity-created events from Kafka and replays them
// through the cascade engine. Re-delivery is expected; already-converged
// state is treated as success.
type EventHandler struct {
	engine    *usecase.Engine
	logger    zerolog.Logger
	processed uint64
	errors    uint64
}

func NewEventHandler(engine *usecase.Engine, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		engine: engine,
		logger: logger,
	}
}

func (h *EventHandler) Handle(ctx context.Context, event *dto.EntityEvent) error {
	start := time.Now()
	defer func() {
		atomic.AddUint64(&h.processed, 1)
		h.logger.Info().
			Str("event_type", event.Type).
			Dur("duration", time.Since(start)).
			Uint64("processed_total", atomic.LoadUint64(&h.processed)).
			Uint64("errors_total", atomic.LoadUint64(&h.errors)).
			Msg("entity event processed")
	}()

	if event.EntityID == "" {
		atomic.AddUint64(&h.errors, 1)
		h.logger.Error().
			Str("event_type", event.Type).
			Msg("entity event missing entity id")
		return errors.New("missing entity id")
	}

	entityID, err := strconv.ParseUint(event.EntityID, 10, 64)
	if err != nil {
		atomic.AddUint64(&h.errors, 1)
		h.logger.Error().Err(err).
			Str("entity_id", event.EntityID).
			Msg("invalid entity id, cannot convert to uint")
		return err
	}

	switch event.Type {
	case dto.EventTypeUserCreated:
		return h.handleUserCreated(ctx, uint(entityID))
	case dto.EventTypeSubscriberCreated:
		return h.handleCascade(ctx, event.Type, uint(entityID), h.engine.OnSubscriberCreated)
	case dto.EventTypeServiceChannelCreated:
		return h.handleCascade(ctx, event.Type, uint(entityID), h.engine.OnServiceChannelCreated)
	default:
		h.logger.Warn().
			Str("event_type", event.Type).
			Msg("received unknown entity event type")
		return nil
	}
}

func (h *EventHandler) handleUserCreated(ctx context.Context, userID uint) error {
	_, err := h.engine.OnUserCreated(ctx, userID)
	if err != nil {
		if errors.Is(err, cascadeerrors.ErrDuplicateSubscriber) {
			h.logger.Warn().
				Uint("user_id", userID).
				Msg("subscriber already exists, skipping creation")
			return nil
		}
		atomic.AddUint64(&h.errors, 1)
		return err
	}
	return nil
}

func (h *EventHandler) handleCascade(
	ctx context.Context,
	eventType string,
	entityID uint,
	run func(context.Context, uint) error,
) error {
	if err := run(ctx, entityID); err != nil {
		atomic.AddUint64(&h.errors, 1)
		h.logger.Error().Err(err).
			Str("event_type", eventType).
			Uint("entity_id", entityID).
			Msg("cascade replay failed")
		return err
	}
	return nil
}

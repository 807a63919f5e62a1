package http

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hexanotify/notifier-service/internal/domain/account/deps"
	"github.com/hexanotify/notifier-service/internal/domain/account/dto"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// Handler serves the read-only HTTP surface of the service
type Handler struct {
	registry    deps.Registry
	serviceName string
	logger      zerolog.Logger
}

func NewHandler(registry deps.Registry, serviceName string, logger zerolog.Logger) *Handler {
	return &Handler{
		registry:    registry,
		serviceName: serviceName,
		logger:      logger,
	}
}

// Health reports service name and health flag
func (h *Handler) Health(ctx *fasthttp.RequestCtx) {
	h.writeJSON(ctx, fasthttp.StatusOK, map[string]any{
		"service":   h.serviceName,
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Subscribers lists all subscribers
func (h *Handler) Subscribers(ctx *fasthttp.RequestCtx) {
	subscribers, err := h.registry.ListSubscribers(context.Background())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list subscribers")
		h.writeJSON(ctx, fasthttp.StatusInternalServerError, map[string]any{
			"error": "failed to list subscribers",
		})
		return
	}

	out := make([]dto.SubscriberResponse, len(subscribers))
	for i, s := range subscribers {
		out[i] = dto.SubscriberResponse{
			ID:       s.ID,
			UserID:   s.UserID,
			IsActive: s.IsActive,
		}
	}

	h.writeJSON(ctx, fasthttp.StatusOK, map[string]any{
		"subscribers": out,
	})
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}

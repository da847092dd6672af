package handlers

import (
	"net/http"

	"github.com/clubshub/clubshub/internal/adapters/controller/http/middlewares"
	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/clubshub/clubshub/internal/domain/service"
	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	events        *service.EventService
	registrations *service.EventRegistrationService
}

func NewEventHandler(events *service.EventService, registrations *service.EventRegistrationService) *EventHandler {
	return &EventHandler{
		events:        events,
		registrations: registrations,
	}
}

func (h *EventHandler) List(ctx *gin.Context) {
	events, err := h.events.All(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

func (h *EventHandler) Get(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	event, err := h.events.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// Register signs the caller up for an event, effective immediately.
func (h *EventHandler) Register(ctx *gin.Context) {
	user, err := middlewares.CurrentUser(ctx)
	if err != nil {
		respondError(ctx, errorz.Unauthorizedf("not authenticated"))
		return
	}

	eventID, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	registration, err := h.registrations.Register(ctx.Request.Context(), user.ID, eventID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, registration)
}

// Delete cancels an event and notifies its registrants.
func (h *EventHandler) Delete(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err = h.events.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "event deleted successfully"})
}

package handlers

import (
	"net/http"

	"github.com/clubshub/clubshub/internal/domain/service"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	notify *service.NotifyService
}

func NewHealthHandler(notify *service.NotifyService) *HealthHandler {
	return &HealthHandler{
		notify: notify,
	}
}

// Health reports liveness plus the notification dispatcher counters so
// dropped or failed mail is observable.
func (h *HealthHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"notifications": h.notify.Stats(),
	})
}

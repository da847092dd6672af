package handlers

import (
	"net/http"

	"github.com/clubshub/clubshub/internal/adapters/controller/http/middlewares"
	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/clubshub/clubshub/internal/domain/service"
	"github.com/gin-gonic/gin"
)

// UserHandler serves the authenticated caller's own data.
type UserHandler struct {
	memberships   *service.MembershipService
	registrations *service.EventRegistrationService
}

func NewUserHandler(memberships *service.MembershipService, registrations *service.EventRegistrationService) *UserHandler {
	return &UserHandler{
		memberships:   memberships,
		registrations: registrations,
	}
}

func (h *UserHandler) MyMemberships(ctx *gin.Context) {
	user, err := middlewares.CurrentUser(ctx)
	if err != nil {
		respondError(ctx, errorz.Unauthorizedf("not authenticated"))
		return
	}

	memberships, err := h.memberships.ByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, memberships)
}

func (h *UserHandler) MyRegistrations(ctx *gin.Context) {
	user, err := middlewares.CurrentUser(ctx)
	if err != nil {
		respondError(ctx, errorz.Unauthorizedf("not authenticated"))
		return
	}

	registrations, err := h.registrations.ByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, registrations)
}

// RegistrationPass serves the QR entry pass for one of the caller's
// registrations.
func (h *UserHandler) RegistrationPass(ctx *gin.Context) {
	user, err := middlewares.CurrentUser(ctx)
	if err != nil {
		respondError(ctx, errorz.Unauthorizedf("not authenticated"))
		return
	}

	id, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	png, err := h.registrations.Pass(ctx.Request.Context(), user.ID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}

package handlers

import (
	"net/http"

	"github.com/clubshub/clubshub/internal/adapters/controller/http/middlewares"
	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/clubshub/clubshub/internal/domain/service"
	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	clubs       *service.ClubService
	memberships *service.MembershipService
}

func NewClubHandler(clubs *service.ClubService, memberships *service.MembershipService) *ClubHandler {
	return &ClubHandler{
		clubs:       clubs,
		memberships: memberships,
	}
}

type createClubRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Category    entity.ClubCategory `json:"category"`
}

// List returns the public listing of approved clubs.
func (h *ClubHandler) List(ctx *gin.Context) {
	clubs, err := h.clubs.Approved(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, clubs)
}

// Get returns a club with its membership roster.
func (h *ClubHandler) Get(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	club, err := h.clubs.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, club)
}

func (h *ClubHandler) Create(ctx *gin.Context) {
	var req createClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, errorz.Validationf("invalid request body"))
		return
	}

	club, err := h.clubs.Create(ctx.Request.Context(), req.Name, req.Description, req.Category)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, club)
}

func (h *ClubHandler) Delete(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err = h.clubs.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "club deleted successfully"})
}

// Enroll files a PENDING membership request for the caller.
func (h *ClubHandler) Enroll(ctx *gin.Context) {
	user, err := middlewares.CurrentUser(ctx)
	if err != nil {
		respondError(ctx, errorz.Unauthorizedf("not authenticated"))
		return
	}

	clubID, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	membership, err := h.memberships.Request(ctx.Request.Context(), user.ID, clubID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, membership)
}

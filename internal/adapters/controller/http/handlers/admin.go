package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/clubshub/clubshub/internal/adapters/controller/http/middlewares"
	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/clubshub/clubshub/internal/domain/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler bundles the role-gated state transition endpoints.
type AdminHandler struct {
	clubs         *service.ClubService
	memberships   *service.MembershipService
	events        *service.EventService
	registrations *service.EventRegistrationService
	users         *service.UserService
}

func NewAdminHandler(
	clubs *service.ClubService,
	memberships *service.MembershipService,
	events *service.EventService,
	registrations *service.EventRegistrationService,
	users *service.UserService,
) *AdminHandler {
	return &AdminHandler{
		clubs:         clubs,
		memberships:   memberships,
		events:        events,
		registrations: registrations,
		users:         users,
	}
}

type createEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	ClubID      *uint  `json:"clubId"`
}

func (h *AdminHandler) ApproveClub(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	club, err := h.clubs.Approve(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, club)
}

func (h *AdminHandler) ApproveMember(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	membership, err := h.memberships.Approve(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, membership)
}

func (h *AdminHandler) RejectMember(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	membership, err := h.memberships.Reject(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, membership)
}

func (h *AdminHandler) RemoveMember(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err = h.memberships.Remove(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "member removed successfully"})
}

func (h *AdminHandler) CreateEvent(ctx *gin.Context) {
	var req createEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, errorz.Validationf("invalid request body"))
		return
	}
	if req.Date == "" {
		respondError(ctx, errorz.Validationf("event date is required"))
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		respondError(ctx, errorz.Validationf("invalid date format"))
		return
	}

	event, err := h.events.Create(ctx.Request.Context(), &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Type:        entity.EventType(req.Type),
		ClubID:      req.ClubID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, event)
}

func (h *AdminHandler) ListUsers(ctx *gin.Context) {
	users, err := h.users.All(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

func (h *AdminHandler) PromoteUser(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	user, err := h.users.Promote(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(ctx *gin.Context) {
	actor, err := middlewares.CurrentUser(ctx)
	if err != nil {
		respondError(ctx, errorz.Unauthorizedf("not authenticated"))
		return
	}

	id, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err = h.users.Delete(ctx.Request.Context(), actor.ID, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}

func (h *AdminHandler) ListMemberships(ctx *gin.Context) {
	memberships, err := h.memberships.All(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, memberships)
}

func (h *AdminHandler) ListEventRegistrations(ctx *gin.Context) {
	registrations, err := h.registrations.All(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, registrations)
}

// ExportEventRegistrations streams an XLSX attendance sheet for an event.
func (h *AdminHandler) ExportEventRegistrations(ctx *gin.Context) {
	id, err := paramID(ctx, "id")
	if err != nil {
		respondError(ctx, err)
		return
	}

	buf, err := h.registrations.Export(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=event-%d-registrations.xlsx", id))
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

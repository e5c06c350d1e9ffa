package profile

import (
	"errors"
	"net/http"

	"github.com/shivamk23/cafe-meet-up-backend/internal/api/middleware"
	"github.com/shivamk23/cafe-meet-up-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service *ProfileService
}

func NewProfileHandler(service *ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Discover godoc
// @Summary  List candidate profiles ranked by shared interests
// @Tags     profiles
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} response.Body
// @Router   /profiles [get]
func (h *ProfileHandler) Discover(c *gin.Context) {
	cards, err := h.service.Discover(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "server error")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"profiles": cards})
}

// Like godoc
// @Summary  Like a profile; mutual likes become a match
// @Tags     profiles
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    request body LikeRequest true "target user"
// @Success  200 {object} response.Body
// @Router   /profiles/like [post]
func (h *ProfileHandler) Like(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "userId required")
		return
	}

	result, err := h.service.Like(c.Request.Context(), middleware.UserID(c), req.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "server error")
		return
	}
	response.OKMessage(c, http.StatusOK, result.Message, result)
}

// Skip godoc
// @Summary  Pass on a profile
// @Tags     profiles
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    request body SkipRequest true "target user"
// @Success  200 {object} response.Body
// @Router   /profiles/skip [post]
func (h *ProfileHandler) Skip(c *gin.Context) {
	var req SkipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "userId required")
		return
	}

	if err := h.service.Skip(c.Request.Context(), middleware.UserID(c), req.UserID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "server error")
		return
	}
	response.OKMessage(c, http.StatusOK, "user skipped successfully", nil)
}

// LikedBy godoc
// @Summary  Users who liked the current user
// @Tags     likes
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} response.Body
// @Router   /likes/liked-by [get]
func (h *ProfileHandler) LikedBy(c *gin.Context) {
	users, err := h.service.LikedBy(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "server error")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"users": users})
}

// Notifications godoc
// @Summary  Durable notifications, newest first
// @Tags     profiles
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} response.Body
// @Router   /profiles/notifications [get]
func (h *ProfileHandler) Notifications(c *gin.Context) {
	views, err := h.service.Notifications(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "server error")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"notifications": views})
}

// MarkNotificationsRead godoc
// @Summary  Mark all notifications read
// @Tags     profiles
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} response.Body
// @Router   /profiles/notifications/read [post]
func (h *ProfileHandler) MarkNotificationsRead(c *gin.Context) {
	if err := h.service.MarkNotificationsRead(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.Error(c, http.StatusInternalServerError, "server error")
		return
	}
	response.OKMessage(c, http.StatusOK, "notifications marked read", nil)
}

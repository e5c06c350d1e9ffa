package chat

import (
	"errors"
	"net/http"

	"github.com/shivamk23/cafe-meet-up-backend/internal/api/middleware"
	"github.com/shivamk23/cafe-meet-up-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	service *ChatService
}

func NewChatHandler(service *ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// History godoc
// @Summary  Messages of a match
// @Tags     chat
// @Produce  json
// @Security BearerAuth
// @Param    matchId path string true "match id"
// @Success  200 {object} response.Body
// @Router   /chat/{matchId} [get]
func (h *ChatHandler) History(c *gin.Context) {
	resp, err := h.service.History(c.Request.Context(), middleware.UserID(c), c.Param("matchId"))
	if err != nil {
		switch {
		case errors.Is(err, ErrMatchNotFound):
			response.Error(c, http.StatusNotFound, "match not found")
		case errors.Is(err, ErrNotAuthorized):
			response.Error(c, http.StatusForbidden, "not a participant of this match")
		default:
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}
	response.OK(c, http.StatusOK, resp)
}

// Send godoc
// @Summary  Send a message (durable path)
// @Tags     chat
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    request body SendMessageRequest true "message"
// @Success  200 {object} response.Body
// @Router   /chat [post]
func (h *ChatHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "missing fields")
		return
	}

	msg, err := h.service.Send(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMatchNotFound):
			response.Error(c, http.StatusNotFound, "match not found")
		case errors.Is(err, ErrNotAuthorized):
			response.Error(c, http.StatusForbidden, "not a participant of this match")
		default:
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": msg})
}

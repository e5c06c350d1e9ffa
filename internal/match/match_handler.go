package match

import (
	"net/http"

	"github.com/shivamk23/cafe-meet-up-backend/internal/api/middleware"
	"github.com/shivamk23/cafe-meet-up-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	service *MatchService
}

func NewMatchHandler(service *MatchService) *MatchHandler {
	return &MatchHandler{service: service}
}

// List godoc
// @Summary  Current user's matches, newest first
// @Tags     matches
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} response.Body
// @Router   /matches [get]
func (h *MatchHandler) List(c *gin.Context) {
	views, err := h.service.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "server error")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"matches": views})
}

package auth

import (
	"errors"
	"net/http"

	"github.com/shivamk23/cafe-meet-up-backend/internal/api/middleware"
	"github.com/shivamk23/cafe-meet-up-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *AuthService
}

func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary  Create an account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body RegisterRequest true "registration payload"
// @Success  201 {object} response.Body
// @Router   /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "user already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "server error")
		return
	}

	response.OK(c, http.StatusCreated, resp)
}

// Login godoc
// @Summary  Log in with email and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body LoginRequest true "credentials"
// @Success  200 {object} response.Body
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "server error")
		return
	}

	response.OK(c, http.StatusOK, resp)
}

// Me godoc
// @Summary  Current account
// @Tags     auth
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} response.Body
// @Router   /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusNotFound, "user not found")
		return
	}
	response.OK(c, http.StatusOK, user)
}

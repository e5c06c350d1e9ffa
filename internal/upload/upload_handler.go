package upload

import (
	"net/http"

	"github.com/shivamk23/cafe-meet-up-backend/internal/api/middleware"
	"github.com/shivamk23/cafe-meet-up-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	service *UploadService
}

func NewUploadHandler(service *UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// ProfilePicture godoc
// @Summary  Upload a profile picture
// @Tags     upload
// @Accept   mpfd
// @Produce  json
// @Security BearerAuth
// @Param    profilePicture formData file true "image file"
// @Success  200 {object} response.Body
// @Router   /upload/profile-picture [post]
func (h *UploadHandler) ProfilePicture(c *gin.Context) {
	file, err := c.FormFile("profilePicture")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "profilePicture file is required")
		return
	}

	url, err := h.service.SetProfilePicture(c.Request.Context(), middleware.UserID(c), file)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "upload failed")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"profilePicture": url})
}

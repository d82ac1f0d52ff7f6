package handler

import (
	"net/http"
	"strconv"
	"strings"

	"levelhub/internal/http-api/dto"
	"levelhub/internal/http-api/middleware"
	"levelhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// RegisterRoutes registers the authenticated avatar upload routes
func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/get-upload-path", h.UploadPath)
	router.POST("/upload-completed", h.UploadCompleted)
}

// UploadPath handles GET /get-upload-path?content_type=image/png&content_length=12345.
// It returns a presigned PUT URL the client uploads to directly.
func (h *UploadHandler) UploadPath(c *gin.Context) {
	contentType := strings.TrimSpace(c.Query("content_type"))
	if contentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing content_type parameter"})
		return
	}

	contentLength, err := strconv.ParseInt(c.Query("content_length"), 10, 64)
	if err != nil || contentLength <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content_length parameter"})
		return
	}

	info, err := h.uploadService.UploadURL(c.Request.Context(), middleware.PrincipalID(c), contentType, contentLength)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// UploadCompleted handles POST /upload-completed. The server confirms the
// object exists in storage before persisting the avatar URL.
func (h *UploadHandler) UploadCompleted(c *gin.Context) {
	var req dto.UploadCompletedDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.uploadService.Complete(c.Request.Context(), middleware.PrincipalID(c), req.Key)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

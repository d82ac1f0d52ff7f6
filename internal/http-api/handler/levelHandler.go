package handler

import (
	"net/http"
	"strconv"

	"levelhub/internal/http-api/dto"
	"levelhub/internal/http-api/middleware"
	"levelhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type LevelHandler struct {
	levelService service.LevelService
}

func NewLevelHandler(levelService service.LevelService) *LevelHandler {
	return &LevelHandler{levelService: levelService}
}

// RegisterPublicRoutes registers the read routes. They run under optional
// auth: anonymous callers see published levels only.
func (h *LevelHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/level/:id", h.Get)
}

// RegisterRoutes registers the authenticated level mutation routes
func (h *LevelHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/add-level", h.Create)
	router.PATCH("/update-level", h.Update)
	router.DELETE("/delete-level", h.Delete)
}

// Get handles GET /level/:id and returns the level with its comment thread
func (h *LevelHandler) Get(c *gin.Context) {
	levelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid level id"})
		return
	}

	detail, err := h.levelService.Get(c.Request.Context(), levelID, middleware.PrincipalID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Create handles POST /add-level
func (h *LevelHandler) Create(c *gin.Context) {
	var req dto.CreateLevelDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level, err := h.levelService.Create(c.Request.Context(), middleware.PrincipalID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, level)
}

// Update handles PATCH /update-level; owner-only
func (h *LevelHandler) Update(c *gin.Context) {
	var req dto.UpdateLevelDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level, err := h.levelService.Update(c.Request.Context(), middleware.PrincipalID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, level)
}

// Delete handles DELETE /delete-level; owner-only, removes the comment
// thread with the level
func (h *LevelHandler) Delete(c *gin.Context) {
	var req dto.DeleteLevelDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.levelService.Delete(c.Request.Context(), middleware.PrincipalID(c), req.LevelID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "level deleted"})
}

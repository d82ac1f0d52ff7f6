package handler

import (
	"net/http"

	"levelhub/internal/http-api/dto"
	"levelhub/internal/http-api/middleware"
	"levelhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterRoutes registers the authenticated comment routes
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/add-comment", h.Add)
	router.PATCH("/update-comment", h.Update)
	router.DELETE("/delete-comment", h.Delete)
}

// Add handles POST /add-comment. A nil comment from the service means the
// write was silently dropped (commenting on your own level); the client
// still gets a 200.
func (h *CommentHandler) Add(c *gin.Context) {
	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), middleware.PrincipalID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if comment == nil {
		c.JSON(http.StatusOK, gin.H{"message": "comment not recorded"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Update handles PATCH /update-comment; author-only
func (h *CommentHandler) Update(c *gin.Context) {
	var req dto.UpdateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), middleware.PrincipalID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /delete-comment; author-only
func (h *CommentHandler) Delete(c *gin.Context) {
	var req dto.DeleteCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), middleware.PrincipalID(c), req.CommentID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

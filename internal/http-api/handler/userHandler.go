package handler

import (
	"net/http"

	"levelhub/internal/http-api/dto"
	"levelhub/internal/http-api/middleware"
	"levelhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterPublicRoutes registers the profile read route (optional auth:
// the owner also sees their unpublished levels).
func (h *UserHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/user/:id", h.Profile)
}

// RegisterRoutes registers the authenticated user routes
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/session", h.Session)
	router.PATCH("/update-user", h.Update)
}

// Session handles POST /auth/session. First login creates the profile row
// from the token claims; later logins return the stored profile.
func (h *UserHandler) Session(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	user, err := h.userService.EstablishSession(c.Request.Context(),
		principal.ID, principal.Username, principal.Email, principal.AvatarURL)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Profile handles GET /user/:id
func (h *UserHandler) Profile(c *gin.Context) {
	profile, err := h.userService.GetProfile(c.Request.Context(), c.Param("id"), middleware.PrincipalID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Update handles PATCH /update-user; the caller can only touch their own
// profile
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), middleware.PrincipalID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

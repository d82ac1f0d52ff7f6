package handler

import (
	"net/http"
	"strconv"
	"strings"

	"levelhub/internal/http-api/dto"
	"levelhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	feedService service.FeedService
}

func NewHomeHandler(feedService service.FeedService) *HomeHandler {
	return &HomeHandler{feedService: feedService}
}

// RegisterRoutes registers the feed routes
func (h *HomeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/home-feed", h.Feed)
	router.POST("/search", h.Search)
}

// Feed handles GET /home-feed with optional filter query parameters
// GET /home-feed?rating_low=2&difficulties=easy,hard&timespan_days=7&q=maze&sort_by=time&page=1
func (h *HomeHandler) Feed(c *gin.Context) {
	filters := dto.DefaultSearchFilters()

	// Manual parsing with sanitization
	if v := strings.TrimSpace(c.Query("rating_low")); v != "" {
		low, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating_low parameter"})
			return
		}
		filters.RatingLow = low
	}
	if v := strings.TrimSpace(c.Query("rating_high")); v != "" {
		high, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating_high parameter"})
			return
		}
		filters.RatingHigh = &high
	}

	// Parse difficulties (comma-separated)
	if v := strings.TrimSpace(c.Query("difficulties")); v != "" {
		for _, d := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(d); trimmed != "" {
				filters.Difficulties = append(filters.Difficulties, trimmed)
			}
		}
	}

	if v := strings.TrimSpace(c.Query("timespan_days")); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timespan_days parameter"})
			return
		}
		filters.TimespanDays = &days
	}

	filters.Search = strings.TrimSpace(c.Query("q"))
	if v := strings.TrimSpace(c.Query("sort_by")); v != "" {
		filters.SortBy = v
	}

	if v := strings.TrimSpace(c.Query("page")); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page parameter"})
			return
		}
		filters.Page = page
	}
	if v := strings.TrimSpace(c.Query("page_size")); v != "" {
		pageSize, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size parameter"})
			return
		}
		filters.PageSize = pageSize
	}

	feed, err := h.feedService.Browse(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

// Search handles POST /search with a JSON filter body
func (h *HomeHandler) Search(c *gin.Context) {
	var filters dto.SearchFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feed, err := h.feedService.Browse(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

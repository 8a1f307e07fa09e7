package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sietse/jobboard/internal/api/dto"
	"github.com/sietse/jobboard/internal/core/service"
)

type SearchHandler struct {
	jobService *service.JobService
}

func NewSearchHandler(jobService *service.JobService) *SearchHandler {
	return &SearchHandler{jobService: jobService}
}

// Search handles GET /search?q=
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")

	jobs, err := h.jobService.Search(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Query: query,
		Items: toJobResponses(jobs),
	})
}

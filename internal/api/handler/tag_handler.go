package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sietse/jobboard/internal/api/dto"
	"github.com/sietse/jobboard/internal/core/service"
)

type TagHandler struct {
	jobService *service.JobService
}

func NewTagHandler(jobService *service.JobService) *TagHandler {
	return &TagHandler{jobService: jobService}
}

// ShowTag handles GET /tags/:name
func (h *TagHandler) ShowTag(c *gin.Context) {
	tag, jobs, err := h.jobService.ListByTag(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TagJobsResponse{
		Tag:   dto.TagResponse{ID: tag.ID, Name: tag.Name},
		Items: toJobResponses(jobs),
	})
}

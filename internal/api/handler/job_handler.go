package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sietse/jobboard/internal/api/dto"
	"github.com/sietse/jobboard/internal/api/middleware"
	"github.com/sietse/jobboard/internal/core/domain"
	"github.com/sietse/jobboard/internal/core/service"
)

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// jobFormFields is the constraint schema for the job form, served by
// the create/edit form endpoints and enforced on store/update.
func jobFormFields() []dto.FormField {
	schedules := make([]string, len(domain.Schedules))
	for i, schedule := range domain.Schedules {
		schedules[i] = string(schedule)
	}

	return []dto.FormField{
		{Name: "title", Type: "text", Required: true, Min: service.MinTitleLength},
		{Name: "salary", Type: "text", Required: true},
		{Name: "location", Type: "text", Required: true},
		{Name: "schedule", Type: "select", Required: true, Options: schedules},
		{Name: "url", Type: "url", Required: true},
		{Name: "featured", Type: "checkbox", Required: false},
		{Name: "tags", Type: "text", Required: false},
	}
}

// ListJobs handles GET / and GET /jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(service.DefaultPerPage)))

	jobs, count, err := h.jobService.List(c.Request.Context(), page, perPage)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	tags, err := h.jobService.Tags(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	totalPages := 0
	if perPage > 0 {
		totalPages = (count + perPage - 1) / perPage
	}

	c.JSON(http.StatusOK, dto.JobListResponse{
		Items: toJobResponses(jobs),
		Tags:  toTagResponses(tags),
		Pagination: dto.PaginationInfo{
			Total:      count,
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages,
		},
	})
}

// CreateForm handles GET /jobs/create
func (h *JobHandler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormDefinition{
		Action: "/jobs",
		Method: http.MethodPost,
		Fields: jobFormFields(),
	})
}

// StoreJob handles POST /jobs
func (h *JobHandler) StoreJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "Unauthorized",
			Message: "Authentication required",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), user.ID, service.JobInput{
		Title:    req.Title,
		Salary:   req.Salary,
		Location: req.Location,
		Schedule: req.Schedule,
		URL:      req.URL,
		Featured: req.Featured,
		Tags:     req.Tags,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toJobResponse(job))
}

// ShowJob handles GET /jobs/:id
func (h *JobHandler) ShowJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: "Job not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	job, err := h.jobService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJobResponse(job))
}

// EditForm handles GET /jobs/:id/edit
func (h *JobHandler) EditForm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: "Job not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	user, _ := middleware.CurrentUser(c)
	job, err := h.jobService.GetOwned(c.Request.Context(), user.ID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"form": dto.FormDefinition{
			Action: "/jobs/" + c.Param("id"),
			Method: http.MethodPut,
			Fields: jobFormFields(),
		},
		"job": toJobResponse(job),
	})
}

// UpdateJob handles PUT /jobs/:id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: "Job not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, _ := middleware.CurrentUser(c)
	job, err := h.jobService.Update(c.Request.Context(), user.ID, id, service.JobPatch{
		Title:    req.Title,
		Salary:   req.Salary,
		Location: req.Location,
		Schedule: req.Schedule,
		URL:      req.URL,
		Featured: req.Featured,
		Tags:     req.Tags,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJobResponse(job))
}

// DestroyJob handles DELETE /jobs/:id
func (h *JobHandler) DestroyJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: "Job not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	user, _ := middleware.CurrentUser(c)
	if err := h.jobService.Delete(c.Request.Context(), user.ID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

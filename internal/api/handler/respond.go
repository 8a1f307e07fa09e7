package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sietse/jobboard/internal/api/dto"
	"github.com/sietse/jobboard/internal/api/util"
	"github.com/sietse/jobboard/internal/core/domain"
	"github.com/sietse/jobboard/internal/core/service"
)

// respondServiceError maps service-layer errors onto the wire:
// validation failures become 422 with field messages, coded service
// errors keep their status, anything else is a 500.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Error:  "Unprocessable Entity",
			Code:   http.StatusUnprocessableEntity,
			Fields: validationErr.Fields,
		})
		return
	}

	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.Code, dto.ErrorResponse{
			Error:   http.StatusText(svcErr.Code),
			Message: svcErr.Message,
			Code:    svcErr.Code,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "Internal Server Error",
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}

// respondBindingError turns a gin binding failure into the same 422
// field format the services use, or a 400 for malformed bodies.
func respondBindingError(c *gin.Context, err error) {
	if fields, ok := util.FieldErrors(err); ok {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Error:  "Unprocessable Entity",
			Code:   http.StatusUnprocessableEntity,
			Fields: fields,
		})
		return
	}

	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Bad Request",
		Message: err.Error(),
		Code:    http.StatusBadRequest,
	})
}

func toTagResponses(tags []*domain.Tag) []dto.TagResponse {
	out := make([]dto.TagResponse, len(tags))
	for i, tag := range tags {
		out[i] = dto.TagResponse{ID: tag.ID, Name: tag.Name}
	}
	return out
}

func toJobResponse(job *domain.Job) dto.JobResponse {
	resp := dto.JobResponse{
		ID:        job.ID,
		Title:     job.Title,
		Salary:    job.Salary,
		Location:  job.Location,
		Schedule:  string(job.Schedule),
		URL:       job.URL,
		Featured:  job.Featured,
		Tags:      toTagResponses(job.Tags),
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}

	if job.Employer != nil {
		resp.Employer = &dto.EmployerResponse{
			ID:   job.Employer.ID,
			Name: job.Employer.Name,
			Logo: job.Employer.Logo,
		}
	}
	return resp
}

func toJobResponses(jobs []*domain.Job) []dto.JobResponse {
	out := make([]dto.JobResponse, len(jobs))
	for i, job := range jobs {
		out[i] = toJobResponse(job)
	}
	return out
}

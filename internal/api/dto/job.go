package dto

import "time"

// CreateJobRequest represents the job creation form submission
type CreateJobRequest struct {
	Title    string `json:"title" binding:"required,min=3"`
	Salary   string `json:"salary" binding:"required"`
	Location string `json:"location" binding:"required"`
	Schedule string `json:"schedule" binding:"required,oneof='Full-time' 'Part-time' 'Flexible'"`
	URL      string `json:"url" binding:"required,url"`
	Featured bool   `json:"featured"`
	Tags     string `json:"tags"` // comma-separated, optional
}

// UpdateJobRequest mutates only the fields present
type UpdateJobRequest struct {
	Title    *string `json:"title,omitempty" binding:"omitempty,min=3"`
	Salary   *string `json:"salary,omitempty" binding:"omitempty,min=1"`
	Location *string `json:"location,omitempty" binding:"omitempty,min=1"`
	Schedule *string `json:"schedule,omitempty" binding:"omitempty,oneof='Full-time' 'Part-time' 'Flexible'"`
	URL      *string `json:"url,omitempty" binding:"omitempty,url"`
	Featured *bool   `json:"featured,omitempty"`
	Tags     *string `json:"tags,omitempty"`
}

// EmployerResponse is the employer as embedded in job listings
type EmployerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// TagResponse represents a tag
type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// JobResponse represents a job with its relations resolved
type JobResponse struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	Salary    string            `json:"salary"`
	Location  string            `json:"location"`
	Schedule  string            `json:"schedule"`
	URL       string            `json:"url"`
	Featured  bool              `json:"featured"`
	Employer  *EmployerResponse `json:"employer,omitempty"`
	Tags      []TagResponse     `json:"tags"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// JobListResponse is the paginated job index
type JobListResponse struct {
	Items      []JobResponse  `json:"items"`
	Tags       []TagResponse  `json:"tags,omitempty"` // full tag list for the index page
	Pagination PaginationInfo `json:"pagination"`
}

// SearchResponse is the unpaginated result of a text search
type SearchResponse struct {
	Query string        `json:"query"`
	Items []JobResponse `json:"items"`
}

// TagJobsResponse lists jobs carrying one tag
type TagJobsResponse struct {
	Tag   TagResponse   `json:"tag"`
	Items []JobResponse `json:"items"`
}

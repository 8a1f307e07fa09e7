package dto

// ErrorResponse is the generic error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ValidationErrorResponse carries field-level validation messages
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   int               `json:"code"`
	Fields map[string]string `json:"fields"`
}

// PaginationInfo describes a paginated listing
type PaginationInfo struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

// FormField describes one input of a form definition endpoint
type FormField struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"` // "text", "password", "email", "url", "checkbox", "file", "select"
	Required bool     `json:"required"`
	Min      int      `json:"min,omitempty"`
	Max      int      `json:"max,omitempty"`
	Options  []string `json:"options,omitempty"` // for select fields
	Accept   []string `json:"accept,omitempty"`  // for file fields
}

// FormDefinition is the input schema returned by the *_form endpoints
type FormDefinition struct {
	Action string      `json:"action"`
	Method string      `json:"method"`
	Fields []FormField `json:"fields"`
}

// Package problemdetails implements RFC 7807 error bodies shared by all services.
package problemdetails

import "fmt"

const (
	TypeInvalidRequest    = "invalid-request"
	TypeInvalidURL        = "invalid-url"
	TypeInvalidCode       = "invalid-code"
	TypeNotFound          = "not-found"
	TypeRateLimitExceeded = "rate-limit-exceeded"
	TypeInternalError     = "internal-error"
	TypeValidationError   = "validation-error"
)

const typeBase = "https://shortlink.dev/problems/"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ProblemDetail struct {
	Type   string       `json:"type"`
	Title  string       `json:"title"`
	Status int          `json:"status"`
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors,omitempty"`
}

func New(status int, problemType, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   fmt.Sprintf("%s%s", typeBase, problemType),
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

func NewValidation(errors []FieldError) *ProblemDetail {
	return &ProblemDetail{
		Type:   fmt.Sprintf("%s%s", typeBase, TypeValidationError),
		Title:  "Validation Failed",
		Status: 400,
		Detail: "Request validation failed",
		Errors: errors,
	}
}

// InvalidCode is the body for a short code that is not 6 alphanumerics.
func InvalidCode() *ProblemDetail {
	return New(400, TypeInvalidCode, "Invalid Short Code", "Short code must be 6 alphanumeric characters")
}

// LinkNotFound is the body for a code no store knows about.
func LinkNotFound(code string) *ProblemDetail {
	return New(404, TypeNotFound, "Not Found", "Short URL not found: "+code)
}

// Internal returns the generic body used for every unexpected failure.
func Internal() *ProblemDetail {
	return New(500, TypeInternalError, "Internal Server Error", "Internal server error")
}

package responses

import "backoffice-service/internal/pkg/exceptions"

type ErrorResponse struct {
	Error   string                  `json:"error"`
	Details []exceptions.FieldError `json:"details,omitempty"`
	Message string                  `json:"message,omitempty"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type HealthCheck struct {
	Status string `json:"status"`
}

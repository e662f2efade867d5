package controllers

import (
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/dto/responses"
	"backoffice-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ctrl *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.HealthCheck{Status: constvars.HealthCheckStatusOK})
}

package routers

import (
	"backoffice-service/internal/app/delivery/http/controllers"
	"backoffice-service/internal/app/delivery/http/middlewares"
	"backoffice-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachDiagnosisTreatmentPlanRoutes(router chi.Router, middlewares *middlewares.Middlewares, diagnosisTreatmentPlanController *controllers.DiagnosisTreatmentPlanController) {
	plansPath := fmt.Sprintf("/{%s}/%s", constvars.URLParamClientID, constvars.ResourceDiagnosisTreatmentPlans)

	router.With(middlewares.Authenticate).Post(plansPath, diagnosisTreatmentPlanController.CreatePlan)
	router.With(middlewares.Authenticate).Get(plansPath, diagnosisTreatmentPlanController.FindPlans)
	router.With(middlewares.Authenticate).Get(plansPath+"/history", diagnosisTreatmentPlanController.FindDocumentationHistory)
	router.With(middlewares.Authenticate).Post(plansPath+"/rows", diagnosisTreatmentPlanController.EditRows)
}

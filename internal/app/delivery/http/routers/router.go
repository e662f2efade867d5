package routers

import (
	"backoffice-service/internal/app/config"
	"backoffice-service/internal/app/delivery/http/controllers"
	"backoffice-service/internal/app/delivery/http/middlewares"
	"backoffice-service/internal/pkg/constvars"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	metricsHandler http.Handler,
	healthController *controllers.HealthController,
	availabilityController *controllers.AvailabilityController,
	appointmentController *controllers.AppointmentController,
	clientGroupController *controllers.ClientGroupController,
	diagnosisTreatmentPlanController *controllers.DiagnosisTreatmentPlanController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		window := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
		if window <= 0 {
			window = time.Second
		}
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, window))
	}

	router.Use(middlewares.ErrorHandler)

	router.Get("/healthz", healthController.Liveness)
	if metricsHandler != nil {
		router.Handle("/metrics", metricsHandler)
	}

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/"+constvars.ResourceAvailability, func(r chi.Router) {
			attachAvailabilityRoutes(r, availabilityController)
		})

		r.Route("/"+constvars.ResourceAppointments, func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/"+constvars.ResourceCalendar, func(r chi.Router) {
			attachCalendarRoutes(r, middlewares, appointmentController)
		})

		r.Route("/"+constvars.ResourceClientGroups, func(r chi.Router) {
			attachClientGroupRoutes(r, middlewares, clientGroupController)
		})

		r.Route("/"+constvars.ResourceClients, func(r chi.Router) {
			attachDiagnosisTreatmentPlanRoutes(r, middlewares, diagnosisTreatmentPlanController)
		})
	})
}

package routers

import (
	"backoffice-service/internal/app/delivery/http/controllers"
	"backoffice-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authenticate).Post("/dialog", appointmentController.OpenDialog)
}

func attachCalendarRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authenticate).Put("/selected-time-slot", appointmentController.StashSelectedTimeSlot)
}

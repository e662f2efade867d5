package routers

import (
	"backoffice-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// The availability handlers check the session themselves so that an
// unauthenticated call is rejected before its query or body is looked at.
func attachAvailabilityRoutes(router chi.Router, availabilityController *controllers.AvailabilityController) {
	router.Get("/", availabilityController.Find)
	router.Post("/", availabilityController.Create)
	router.Put("/", availabilityController.Update)
	router.Delete("/", availabilityController.Delete)
}

package routers

import (
	"backoffice-service/internal/app/delivery/http/controllers"
	"backoffice-service/internal/app/delivery/http/middlewares"
	"backoffice-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachClientGroupRoutes(router chi.Router, middlewares *middlewares.Middlewares, clientGroupController *controllers.ClientGroupController) {
	editPath := fmt.Sprintf("/{%s}/edit", constvars.URLParamClientGroupID)

	router.With(middlewares.Authenticate).Get(editPath, clientGroupController.FindEditView)
	router.With(middlewares.Authenticate).Post(editPath+"/tab", clientGroupController.ChangeTab)
}

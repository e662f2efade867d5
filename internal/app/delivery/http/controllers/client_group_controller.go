package controllers

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/dto/requests"
	"backoffice-service/internal/pkg/exceptions"
	"backoffice-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ClientGroupController struct {
	Log                *zap.Logger
	ClientGroupUsecase contracts.ClientGroupUsecase
}

func NewClientGroupController(logger *zap.Logger, clientGroupUsecase contracts.ClientGroupUsecase) *ClientGroupController {
	return &ClientGroupController{
		Log:                logger,
		ClientGroupUsecase: clientGroupUsecase,
	}
}

func (ctrl *ClientGroupController) FindEditView(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := &requests.FindClientGroupEditView{
		ClientGroupID:  chi.URLParam(r, constvars.URLParamClientGroupID),
		Tab:            query.Get(constvars.QueryParamTab),
		IncludeProfile: utils.QueryParamBool(r, constvars.QueryParamIncludeProfile),
		IncludeAddress: utils.QueryParamBool(r, constvars.QueryParamIncludeAddress),
	}

	// fetch flags belong to this endpoint, not to the page the tab URLs point at
	query.Del(constvars.QueryParamIncludeProfile)
	query.Del(constvars.QueryParamIncludeAddress)
	request.RawQuery = query.Encode()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := ctrl.ClientGroupUsecase.FindEditView(ctx, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *ClientGroupController) ChangeTab(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ChangeClientGroupTab)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ClientGroupID = chi.URLParam(r, constvars.URLParamClientGroupID)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := ctrl.ClientGroupUsecase.ChangeTab(ctx, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

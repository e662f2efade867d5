package controllers

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/delivery/http/middlewares"
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/dto/requests"
	"backoffice-service/internal/pkg/exceptions"
	"backoffice-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DiagnosisTreatmentPlanController struct {
	Log                           *zap.Logger
	DiagnosisTreatmentPlanUsecase contracts.DiagnosisTreatmentPlanUsecase
}

func NewDiagnosisTreatmentPlanController(logger *zap.Logger, diagnosisTreatmentPlanUsecase contracts.DiagnosisTreatmentPlanUsecase) *DiagnosisTreatmentPlanController {
	return &DiagnosisTreatmentPlanController{
		Log:                           logger,
		DiagnosisTreatmentPlanUsecase: diagnosisTreatmentPlanUsecase,
	}
}

func (ctrl *DiagnosisTreatmentPlanController) CreatePlan(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	request := new(requests.CreateDiagnosisTreatmentPlan)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ClientID = chi.URLParam(r, constvars.URLParamClientID)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := ctrl.DiagnosisTreatmentPlanUsecase.CreatePlan(ctx, session, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *DiagnosisTreatmentPlanController) FindPlans(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, constvars.URLParamClientID)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := ctrl.DiagnosisTreatmentPlanUsecase.FindPlansByClientID(ctx, clientID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}
	if result == nil {
		result = []models.DiagnosisTreatmentPlan{}
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *DiagnosisTreatmentPlanController) FindDocumentationHistory(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, constvars.URLParamClientID)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := ctrl.DiagnosisTreatmentPlanUsecase.FindDocumentationHistory(ctx, clientID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}
	if result == nil {
		result = []models.DocumentationHistoryEntry{}
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *DiagnosisTreatmentPlanController) EditRows(w http.ResponseWriter, r *http.Request) {
	request := new(requests.EditDiagnosisRows)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := ctrl.DiagnosisTreatmentPlanUsecase.EditRows(ctx, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

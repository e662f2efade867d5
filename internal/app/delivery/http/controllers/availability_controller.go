package controllers

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/dto/requests"
	"backoffice-service/internal/pkg/exceptions"
	"backoffice-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AuthProvider        contracts.AuthProvider
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, authProvider contracts.AuthProvider, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AuthProvider:        authProvider,
		AvailabilityUsecase: availabilityUsecase,
	}
}

// authorize runs ahead of any parsing so an anonymous caller never learns about payload problems.
func (ctrl *AvailabilityController) authorize(w http.ResponseWriter, r *http.Request) bool {
	if ctrl.AuthProvider.IsAuthenticated(r) {
		return true
	}
	utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
	return false
}

func (ctrl *AvailabilityController) Find(w http.ResponseWriter, r *http.Request) {
	if !ctrl.authorize(w, r) {
		return
	}

	query := r.URL.Query()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if availabilityID := query.Get(constvars.QueryParamID); availabilityID != "" {
		result, err := ctrl.AvailabilityUsecase.FindAvailabilityByID(ctx, availabilityID)
		if err != nil {
			respondError(ctrl.Log, w, err)
			return
		}
		utils.BuildJSONResponse(w, constvars.StatusOK, result)
		return
	}

	request := &requests.FindAvailabilities{
		ClinicianID: query.Get(constvars.QueryParamClinicianID),
		StartDate:   query.Get(constvars.QueryParamStartDate),
		EndDate:     query.Get(constvars.QueryParamEndDate),
	}

	result, err := ctrl.AvailabilityUsecase.FindAvailabilities(ctx, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}
	if result == nil {
		result = []models.Availability{}
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *AvailabilityController) Create(w http.ResponseWriter, r *http.Request) {
	if !ctrl.authorize(w, r) {
		return
	}

	request := new(requests.CreateAvailability)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.CreateAvailability(ctx, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *AvailabilityController) Update(w http.ResponseWriter, r *http.Request) {
	if !ctrl.authorize(w, r) {
		return
	}

	availabilityID := r.URL.Query().Get(constvars.QueryParamID)
	if availabilityID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAvailabilityIDRequired(nil))
		return
	}

	request := new(requests.UpdateAvailability)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.UpdateAvailability(ctx, availabilityID, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *AvailabilityController) Delete(w http.ResponseWriter, r *http.Request) {
	if !ctrl.authorize(w, r) {
		return
	}

	availabilityID := r.URL.Query().Get(constvars.QueryParamID)
	if availabilityID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAvailabilityIDRequired(nil))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	err := ctrl.AvailabilityUsecase.DeleteAvailability(ctx, availabilityID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w)
}

package controllers

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/delivery/http/middlewares"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/dto/requests"
	"backoffice-service/internal/pkg/exceptions"
	"backoffice-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                    *zap.Logger
	AppointmentFormUsecase contracts.AppointmentFormUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentFormUsecase contracts.AppointmentFormUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                    logger,
		AppointmentFormUsecase: appointmentFormUsecase,
	}
}

func (ctrl *AppointmentController) OpenDialog(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	request := new(requests.AppointmentDialog)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if request.EffectiveClinicianID == "" {
		request.EffectiveClinicianID = session.ClinicianID
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := ctrl.AppointmentFormUsecase.OpenDialog(ctx, session.SessionID, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *AppointmentController) StashSelectedTimeSlot(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	request := new(requests.SelectedTimeSlot)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	err = ctrl.AppointmentFormUsecase.StashSelectedTimeSlot(ctx, session.SessionID, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w)
}

package appointments

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/dto/requests"
	"backoffice-service/internal/pkg/exceptions"
	"backoffice-service/internal/pkg/utils"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

type appointmentFormUsecase struct {
	SlotMailbox contracts.SlotMailbox
	Location    *time.Location
	Now         func() time.Time
	Log         *zap.Logger
}

func NewAppointmentFormUsecase(slotMailbox contracts.SlotMailbox, location *time.Location, logger *zap.Logger) contracts.AppointmentFormUsecase {
	if location == nil {
		location = time.UTC
	}
	return &appointmentFormUsecase{
		SlotMailbox: slotMailbox,
		Location:    location,
		Now:         time.Now,
		Log:         logger,
	}
}

// OpenDialog computes the dialog state. A closed dialog yields an empty state and leaves
// any stashed slot untouched; otherwise the presence of a record picks between a fresh
// initialization and a reconciliation.
func (uc *appointmentFormUsecase) OpenDialog(ctx context.Context, sessionID string, request *requests.AppointmentDialog) (*models.AppointmentDialogState, error) {
	if !request.Open {
		return &models.AppointmentDialogState{}, nil
	}
	if request.Appointment != nil {
		return uc.reconcile(request)
	}
	return uc.initialize(ctx, sessionID, request)
}

func (uc *appointmentFormUsecase) StashSelectedTimeSlot(ctx context.Context, sessionID string, request *requests.SelectedTimeSlot) error {
	err := utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return uc.SlotMailbox.Put(ctx, sessionID, &models.TimeSlot{
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
	})
}

func (uc *appointmentFormUsecase) initialize(ctx context.Context, sessionID string, request *requests.AppointmentDialog) (*models.AppointmentDialogState, error) {
	now := uc.Now().In(uc.Location)
	startTime := utils.FormatClockTime(now)
	endTime := utils.FormatClockTime(now.Add(constvars.AppointmentDefaultDurationInMinutes * time.Minute))

	slot, err := uc.SlotMailbox.Take(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if slot != nil {
		startTime, endTime = slot.StartTime, slot.EndTime
	}

	date := now
	if request.SelectedDate != nil {
		date = *request.SelectedDate
	}

	base := models.AppointmentFormValues{
		EventName:  "",
		ClientType: constvars.AppointmentClientTypeIndividual,
		Client:     "",
		Clinician:  request.EffectiveClinicianID,
		StartDate:  date,
		EndDate:    date,
		StartTime:  startTime,
		EndTime:    endTime,
		Location:   constvars.AppointmentDefaultLocation,
	}

	appointmentForm := base
	appointmentForm.Type = constvars.AppointmentTypeAppointment
	appointmentForm.SelectedServices = []models.ServiceLine{{}}
	appointmentForm.CancelAppointments = true
	appointmentForm.NotifyClients = true

	eventForm := base
	eventForm.Type = constvars.AppointmentTypeEvent
	eventForm.SelectedServices = []models.ServiceLine{}

	return &models.AppointmentDialogState{
		ActiveTab:       constvars.AppointmentTypeAppointment,
		AppointmentForm: &appointmentForm,
		EventForm:       &eventForm,
		Form:            &appointmentForm,
	}, nil
}

func (uc *appointmentFormUsecase) reconcile(request *requests.AppointmentDialog) (*models.AppointmentDialogState, error) {
	record := request.Appointment

	startDate, err := uc.parseRecordTime(record.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	endDate, err := uc.parseRecordTime(record.EndDate, "end_date")
	if err != nil {
		return nil, err
	}

	formType := constvars.AppointmentTypeAppointment
	if strings.EqualFold(record.Type, constvars.AppointmentTypeEvent) {
		formType = constvars.AppointmentTypeEvent
	}

	clientType := constvars.AppointmentClientTypeIndividual
	if record.ClientType == constvars.AppointmentClientTypeGroup {
		clientType = constvars.AppointmentClientTypeGroup
	}

	clinician := record.ClinicianID
	if clinician == "" {
		clinician = request.EffectiveClinicianID
	}

	status := record.Status
	if status == "" {
		status = constvars.AppointmentDefaultStatus
	}

	services := []models.ServiceLine{{}}
	if record.Services != nil {
		services = make([]models.ServiceLine, 0, len(record.Services))
		for _, service := range record.Services {
			services = append(services, models.ServiceLine{ServiceID: service.ID, Fee: service.Rate})
		}
	}

	form := &models.AppointmentFormValues{
		Type:               formType,
		EventName:          record.Title,
		ClientType:         clientType,
		Client:             record.ClientID,
		Clinician:          clinician,
		SelectedServices:   services,
		StartDate:          startDate,
		EndDate:            endDate,
		StartTime:          utils.FormatClockTime(startDate),
		EndTime:            utils.FormatClockTime(endDate),
		Status:             status,
		Location:           record.LocationID,
		Recurring:          record.IsRecurring,
		AllDay:             record.IsAllDay,
		CancelAppointments: true,
		NotifyClients:      true,
	}

	state := &models.AppointmentDialogState{
		ActiveTab: formType,
		Form:      form,
	}
	if formType == constvars.AppointmentTypeEvent {
		state.EventForm = form
	} else {
		state.AppointmentForm = form
	}
	return state, nil
}

// parseRecordTime shifts a stored timestamp so that its wall clock in the configured
// zone reads the same as in UTC. An absent value falls back to now.
func (uc *appointmentFormUsecase) parseRecordTime(value, field string) (time.Time, error) {
	if value == "" {
		return uc.Now().In(uc.Location), nil
	}
	t, err := utils.ParseFlexibleTime(value, time.UTC)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err, field)
	}
	return utils.ShiftByZoneOffset(t, uc.Location), nil
}

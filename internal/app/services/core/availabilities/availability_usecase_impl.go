package availabilities

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/app/services/shared/metrics"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/dto/requests"
	"backoffice-service/internal/pkg/exceptions"
	"backoffice-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	operationCreate = "create"
	operationFind   = "find"
	operationUpdate = "update"
	operationDelete = "delete"
)

type availabilityUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
	EventPublisher         contracts.EventPublisher
	Metrics                contracts.AvailabilityMetrics
	Log                    *zap.Logger
	StrictRange            bool
	Location               *time.Location
	Now                    func() time.Time
	NewID                  func() string
}

type AvailabilityUsecaseOption func(*availabilityUsecase)

// WithStrictRange rejects windows whose start is not before their end.
func WithStrictRange(strict bool) AvailabilityUsecaseOption {
	return func(uc *availabilityUsecase) {
		uc.StrictRange = strict
	}
}

func WithEventPublisher(publisher contracts.EventPublisher) AvailabilityUsecaseOption {
	return func(uc *availabilityUsecase) {
		uc.EventPublisher = publisher
	}
}

func WithMetrics(m contracts.AvailabilityMetrics) AvailabilityUsecaseOption {
	return func(uc *availabilityUsecase) {
		uc.Metrics = m
	}
}

// WithLocation sets the zone for filter bounds given without an offset.
func WithLocation(loc *time.Location) AvailabilityUsecaseOption {
	return func(uc *availabilityUsecase) {
		uc.Location = loc
	}
}

func WithClock(now func() time.Time) AvailabilityUsecaseOption {
	return func(uc *availabilityUsecase) {
		uc.Now = now
	}
}

func NewAvailabilityUsecase(availabilityRepository contracts.AvailabilityRepository, logger *zap.Logger, opts ...AvailabilityUsecaseOption) contracts.AvailabilityUsecase {
	uc := &availabilityUsecase{
		AvailabilityRepository: availabilityRepository,
		Log:                    logger,
		Location:               time.UTC,
		Now:                    time.Now,
		NewID:                  uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *availabilityUsecase) CreateAvailability(ctx context.Context, request *requests.CreateAvailability) (result *models.Availability, err error) {
	defer func() { uc.observe(operationCreate, err) }()

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	startDate, err := utils.ParseISO8601(request.StartDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err, "start_date")
	}
	endDate, err := utils.ParseISO8601(request.EndDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err, "end_date")
	}
	err = uc.checkRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	now := storedPrecision(uc.Now())
	availability := &models.Availability{
		ID:          uc.NewID(),
		ClinicianID: request.ClinicianID,
		LocationID:  request.LocationID,
		StartDate:   storedPrecision(startDate),
		EndDate:     storedPrecision(endDate),
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if request.Title != nil {
		availability.Title = *request.Title
	}
	if request.AllowOnlineRequests != nil {
		availability.AllowOnlineRequests = *request.AllowOnlineRequests
	}
	if request.IsRecurring != nil {
		availability.IsRecurring = *request.IsRecurring
	}
	if request.RecurringRule != nil && *request.RecurringRule != "" {
		rule := *request.RecurringRule
		availability.RecurringRule = &rule
	}

	err = uc.AvailabilityRepository.Create(ctx, availability)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.EventAvailabilityCreated, availability)
	return availability, nil
}

func (uc *availabilityUsecase) FindAvailabilityByID(ctx context.Context, availabilityID string) (result *models.Availability, err error) {
	defer func() { uc.observe(operationFind, err) }()

	return uc.AvailabilityRepository.FindByID(ctx, availabilityID)
}

func (uc *availabilityUsecase) FindAvailabilities(ctx context.Context, request *requests.FindAvailabilities) (result []models.Availability, err error) {
	defer func() { uc.observe(operationFind, err) }()

	filter := models.AvailabilityFilter{ClinicianID: request.ClinicianID}
	if request.StartDate != "" {
		startDate, err := utils.ParseFlexibleTime(request.StartDate, uc.Location)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err, constvars.QueryParamStartDate)
		}
		filter.StartDate = &startDate
	}
	if request.EndDate != "" {
		endDate, err := utils.ParseFlexibleTime(request.EndDate, uc.Location)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err, constvars.QueryParamEndDate)
		}
		filter.EndDate = &endDate
	}

	return uc.AvailabilityRepository.FindMany(ctx, filter)
}

func (uc *availabilityUsecase) UpdateAvailability(ctx context.Context, availabilityID string, request *requests.UpdateAvailability) (result *models.Availability, err error) {
	defer func() { uc.observe(operationUpdate, err) }()

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patch := &models.AvailabilityPatch{
		Title:               request.Title,
		ClinicianID:         request.ClinicianID,
		AllowOnlineRequests: request.AllowOnlineRequests,
		LocationID:          request.LocationID,
		IsRecurring:         request.IsRecurring,
		RecurringRule:       request.RecurringRule,
		UpdatedAt:           storedPrecision(uc.Now()),
	}
	if request.RecurringRule != nil && *request.RecurringRule == "" {
		patch.RecurringRule = nil
		patch.ClearRecurringRule = true
	}
	if request.RecurringRuleSet && request.RecurringRule == nil {
		patch.ClearRecurringRule = true
	}
	if request.StartDate != nil {
		startDate, err := utils.ParseISO8601(*request.StartDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err, "start_date")
		}
		startDate = storedPrecision(startDate)
		patch.StartDate = &startDate
	}
	if request.EndDate != nil {
		endDate, err := utils.ParseISO8601(*request.EndDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err, "end_date")
		}
		endDate = storedPrecision(endDate)
		patch.EndDate = &endDate
	}

	if uc.StrictRange && (patch.StartDate != nil || patch.EndDate != nil) {
		existing, err := uc.AvailabilityRepository.FindByID(ctx, availabilityID)
		if err != nil {
			return nil, err
		}
		patch.ApplyTo(existing)
		err = uc.checkRange(existing.StartDate, existing.EndDate)
		if err != nil {
			return nil, err
		}
	}

	availability, err := uc.AvailabilityRepository.Update(ctx, availabilityID, patch)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.EventAvailabilityUpdated, availability)
	return availability, nil
}

func (uc *availabilityUsecase) DeleteAvailability(ctx context.Context, availabilityID string) (err error) {
	defer func() { uc.observe(operationDelete, err) }()

	existing, err := uc.AvailabilityRepository.FindByID(ctx, availabilityID)
	if err != nil {
		return err
	}

	err = uc.AvailabilityRepository.Delete(ctx, availabilityID)
	if err != nil {
		return err
	}

	uc.publish(ctx, constvars.EventAvailabilityDeleted, existing)
	return nil
}

func (uc *availabilityUsecase) checkRange(startDate, endDate time.Time) error {
	if uc.StrictRange && !startDate.Before(endDate) {
		return exceptions.ErrAvailabilityRangeInverted(nil)
	}
	return nil
}

// publish is best effort: the change is already committed when it runs.
func (uc *availabilityUsecase) publish(ctx context.Context, event string, availability *models.Availability) {
	if uc.EventPublisher == nil {
		return
	}

	payload := models.AvailabilityChangedEvent{
		Event:          event,
		AvailabilityID: availability.ID,
		ClinicianID:    availability.ClinicianID,
		OccurredAt:     uc.Now().UTC(),
	}
	err := uc.EventPublisher.Publish(ctx, event, payload)
	if err != nil {
		uc.Log.Warn("availabilityUsecase.publish failed",
			zap.String(constvars.LoggingEventKey, event),
			zap.String(constvars.LoggingAvailabilityID, availability.ID),
			zap.Error(err),
		)
	}
}

func (uc *availabilityUsecase) observe(operation string, err error) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.Observe(operation, outcomeOf(err))
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	switch exceptions.KindOf(err) {
	case exceptions.KindNotFound:
		return metrics.OutcomeNotFound
	case exceptions.KindValidation:
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}

// storedPrecision matches what Mongo keeps of a timestamp, so a write echoes what a later read returns.
func storedPrecision(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

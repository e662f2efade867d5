package contracts

import (
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/dto/requests"
	"context"
)

type AppointmentFormUsecase interface {
	OpenDialog(ctx context.Context, sessionID string, request *requests.AppointmentDialog) (*models.AppointmentDialogState, error)
	StashSelectedTimeSlot(ctx context.Context, sessionID string, request *requests.SelectedTimeSlot) error
}

// SlotMailbox hands a calendar selection to exactly one reader.
type SlotMailbox interface {
	Put(ctx context.Context, sessionID string, slot *models.TimeSlot) error
	// Take returns nil when nothing is stashed and clears the mailbox otherwise.
	Take(ctx context.Context, sessionID string) (*models.TimeSlot, error)
}

package contracts

import (
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/dto/requests"
	"context"
)

type AvailabilityUsecase interface {
	CreateAvailability(ctx context.Context, request *requests.CreateAvailability) (*models.Availability, error)
	FindAvailabilityByID(ctx context.Context, availabilityID string) (*models.Availability, error)
	FindAvailabilities(ctx context.Context, request *requests.FindAvailabilities) ([]models.Availability, error)
	UpdateAvailability(ctx context.Context, availabilityID string, request *requests.UpdateAvailability) (*models.Availability, error)
	DeleteAvailability(ctx context.Context, availabilityID string) error
}

// AvailabilityRepository returns a not found CustomError when the id does not exist.
type AvailabilityRepository interface {
	Create(ctx context.Context, entity *models.Availability) error
	FindByID(ctx context.Context, availabilityID string) (*models.Availability, error)
	FindMany(ctx context.Context, filter models.AvailabilityFilter) ([]models.Availability, error)
	Update(ctx context.Context, availabilityID string, patch *models.AvailabilityPatch) (*models.Availability, error)
	Delete(ctx context.Context, availabilityID string) error
}

type AvailabilityMetrics interface {
	Observe(operation, outcome string)
}

package availabilities

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/exceptions"
	"context"
	"sort"
	"sync"
)

type availabilityMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.Availability
}

// NewAvailabilityMemoryRepository keeps availabilities in process memory.
func NewAvailabilityMemoryRepository() contracts.AvailabilityRepository {
	return &availabilityMemoryRepository{items: make(map[string]models.Availability)}
}

func (repo *availabilityMemoryRepository) Create(ctx context.Context, entity *models.Availability) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.items[entity.ID] = cloneAvailability(*entity)
	return nil
}

func (repo *availabilityMemoryRepository) FindByID(ctx context.Context, availabilityID string) (*models.Availability, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	availability, ok := repo.items[availabilityID]
	if !ok {
		return nil, exceptions.ErrAvailabilityNotFound(nil, availabilityID)
	}
	result := cloneAvailability(availability)
	return &result, nil
}

func (repo *availabilityMemoryRepository) FindMany(ctx context.Context, filter models.AvailabilityFilter) ([]models.Availability, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]models.Availability, 0, len(repo.items))
	for _, availability := range repo.items {
		if filter.Matches(&availability) {
			result = append(result, cloneAvailability(availability))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartDate.Equal(result[j].StartDate) {
			return result[i].StartDate.Before(result[j].StartDate)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (repo *availabilityMemoryRepository) Update(ctx context.Context, availabilityID string, patch *models.AvailabilityPatch) (*models.Availability, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	availability, ok := repo.items[availabilityID]
	if !ok {
		return nil, exceptions.ErrAvailabilityNotFound(nil, availabilityID)
	}
	patch.ApplyTo(&availability)
	repo.items[availabilityID] = availability

	result := cloneAvailability(availability)
	return &result, nil
}

func (repo *availabilityMemoryRepository) Delete(ctx context.Context, availabilityID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.items[availabilityID]; !ok {
		return exceptions.ErrAvailabilityNotFound(nil, availabilityID)
	}
	delete(repo.items, availabilityID)
	return nil
}

func cloneAvailability(a models.Availability) models.Availability {
	if a.RecurringRule != nil {
		rule := *a.RecurringRule
		a.RecurringRule = &rule
	}
	return a
}

package availabilities

import (
	"backoffice-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildAvailabilityFilter(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   models.AvailabilityFilter
		expected bson.M
	}{
		{
			name:     "empty filter matches everything",
			filter:   models.AvailabilityFilter{},
			expected: bson.M{},
		},
		{
			name:     "clinician only",
			filter:   models.AvailabilityFilter{ClinicianID: "c1"},
			expected: bson.M{"clinicianId": "c1"},
		},
		{
			name:     "start without end is ignored",
			filter:   models.AvailabilityFilter{ClinicianID: "c1", StartDate: &start},
			expected: bson.M{"clinicianId": "c1"},
		},
		{
			name:   "full range is containment",
			filter: models.AvailabilityFilter{ClinicianID: "c1", StartDate: &start, EndDate: &end},
			expected: bson.M{
				"clinicianId": "c1",
				"startDate":   bson.M{"$gte": start},
				"endDate":     bson.M{"$lte": end},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildAvailabilityFilter(tt.filter))
		})
	}
}

func TestAvailabilityPatch_ConvertToBsonM(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	title := "Evening"
	patch := &models.AvailabilityPatch{Title: &title, UpdatedAt: now}

	assert.Equal(t, map[string]interface{}{"title": "Evening", "updatedAt": now}, patch.ConvertToBsonM())

	rule := "FREQ=DAILY"
	cleared := &models.AvailabilityPatch{RecurringRule: &rule, ClearRecurringRule: true, UpdatedAt: now}
	assert.Equal(t, map[string]interface{}{"recurringRule": nil, "updatedAt": now}, cleared.ConvertToBsonM())
}

package availabilities

import (
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/dto/requests"
	"backoffice-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	clinicianA = "4f6c1f55-8a8b-4c59-9b43-2f4c0c7a1d01"
	clinicianB = "4f6c1f55-8a8b-4c59-9b43-2f4c0c7a1d02"
	locationA  = "9d2b7c3e-1111-4a5b-8c9d-0e1f2a3b4c5d"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}

type recordingMetrics struct {
	observed []string
}

func (m *recordingMetrics) Observe(operation, outcome string) {
	m.observed = append(m.observed, operation+":"+outcome)
}

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestUsecase(opts ...AvailabilityUsecaseOption) *availabilityUsecase {
	opts = append([]AvailabilityUsecaseOption{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewAvailabilityUsecase(NewAvailabilityMemoryRepository(), zap.NewNop(), opts...).(*availabilityUsecase)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func validCreate(clinicianID, start, end string) *requests.CreateAvailability {
	return &requests.CreateAvailability{
		ClinicianID: clinicianID,
		LocationID:  locationA,
		StartDate:   start,
		EndDate:     end,
	}
}

func TestCreateAvailability_AppliesDefaults(t *testing.T) {
	uc := newTestUsecase()

	result, err := uc.CreateAvailability(context.Background(), validCreate(clinicianA, "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z"))
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "", result.Title)
	assert.False(t, result.AllowOnlineRequests)
	assert.False(t, result.IsRecurring)
	assert.Nil(t, result.RecurringRule)
	assert.Equal(t, fixedNow, result.CreatedAt)
	assert.Equal(t, fixedNow, result.UpdatedAt)

	stored, err := uc.FindAvailabilityByID(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, result, stored)
}

func TestCreateAvailability_NormalizesStoredValues(t *testing.T) {
	uc := newTestUsecase(WithClock(func() time.Time { return fixedNow.Add(123456789) }))

	request := validCreate(clinicianA, "2025-03-11T09:00:00.123456789Z", "2025-03-11T10:00:00Z")
	request.RecurringRule = strPtr("")
	result, err := uc.CreateAvailability(context.Background(), request)
	require.NoError(t, err)

	assert.Nil(t, result.RecurringRule)
	assert.Equal(t, time.Date(2025, 3, 11, 9, 0, 0, 123000000, time.UTC), result.StartDate)
	assert.Equal(t, fixedNow.Add(123*time.Millisecond), result.CreatedAt)

	stored, err := uc.FindAvailabilityByID(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, result, stored)
}

func TestCreateAvailability_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		request *requests.CreateAvailability
		field   string
	}{
		{name: "clinician not uuid", request: validCreate("not-a-uuid", "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z"), field: "clinician_id"},
		{name: "missing clinician", request: validCreate("", "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z"), field: "clinician_id"},
		{name: "start not datetime", request: validCreate(clinicianA, "tomorrow", "2025-03-11T10:00:00Z"), field: "start_date"},
		{name: "end without zone designator", request: validCreate(clinicianA, "2025-03-11T09:00:00Z", "2025-03-11T10:00:00"), field: "end_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUsecase()
			_, err := uc.CreateAvailability(context.Background(), tt.request)
			require.Error(t, err)

			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, exceptions.KindValidation, customErr.Kind())
			require.NotEmpty(t, customErr.Details)
			assert.Equal(t, tt.field, customErr.Details[0].Field)

			all, err := uc.FindAvailabilities(context.Background(), &requests.FindAvailabilities{})
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestCreateAvailability_RangeIsOnlyCheckedWhenStrict(t *testing.T) {
	inverted := validCreate(clinicianA, "2025-03-11T10:00:00Z", "2025-03-11T09:00:00Z")

	_, err := newTestUsecase().CreateAvailability(context.Background(), inverted)
	assert.NoError(t, err)

	_, err = newTestUsecase(WithStrictRange(true)).CreateAvailability(context.Background(), inverted)
	require.Error(t, err)
	assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
}

func TestFindAvailabilities_FilterAndOrder(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase()

	late, err := uc.CreateAvailability(ctx, validCreate(clinicianA, "2025-03-12T09:00:00Z", "2025-03-12T10:00:00Z"))
	require.NoError(t, err)
	early, err := uc.CreateAvailability(ctx, validCreate(clinicianA, "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z"))
	require.NoError(t, err)
	other, err := uc.CreateAvailability(ctx, validCreate(clinicianB, "2025-03-11T11:00:00Z", "2025-03-11T12:00:00Z"))
	require.NoError(t, err)
	spanning, err := uc.CreateAvailability(ctx, validCreate(clinicianA, "2025-03-11T23:00:00Z", "2025-03-12T01:00:00Z"))
	require.NoError(t, err)

	ids := func(items []models.Availability) []string {
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, item.ID)
		}
		return out
	}

	t.Run("no filter returns everything ascending by start", func(t *testing.T) {
		result, err := uc.FindAvailabilities(ctx, &requests.FindAvailabilities{})
		require.NoError(t, err)
		assert.Equal(t, []string{early.ID, other.ID, spanning.ID, late.ID}, ids(result))
	})

	t.Run("clinician only", func(t *testing.T) {
		result, err := uc.FindAvailabilities(ctx, &requests.FindAvailabilities{ClinicianID: clinicianB})
		require.NoError(t, err)
		assert.Equal(t, []string{other.ID}, ids(result))
	})

	t.Run("containment with inclusive bounds", func(t *testing.T) {
		result, err := uc.FindAvailabilities(ctx, &requests.FindAvailabilities{
			ClinicianID: clinicianA,
			StartDate:   "2025-03-11T09:00:00Z",
			EndDate:     "2025-03-11T10:00:00Z",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{early.ID}, ids(result))
	})

	t.Run("window partially outside the range is excluded", func(t *testing.T) {
		result, err := uc.FindAvailabilities(ctx, &requests.FindAvailabilities{
			StartDate: "2025-03-11T00:00:00Z",
			EndDate:   "2025-03-12T00:00:00Z",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{early.ID, other.ID}, ids(result))
	})

	t.Run("one sided range is ignored", func(t *testing.T) {
		result, err := uc.FindAvailabilities(ctx, &requests.FindAvailabilities{StartDate: "2025-03-12T00:00:00Z"})
		require.NoError(t, err)
		assert.Len(t, result, 4)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := uc.FindAvailabilities(ctx, &requests.FindAvailabilities{StartDate: "soon", EndDate: "later"})
		require.Error(t, err)
		assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
	})
}

func TestFindAvailabilities_BoundsWithoutOffsetUseConfiguredZone(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(WithLocation(time.FixedZone("UTC+7", 7*60*60)))

	morning, err := uc.CreateAvailability(ctx, validCreate(clinicianA, "2025-03-11T02:00:00Z", "2025-03-11T03:00:00Z"))
	require.NoError(t, err)

	result, err := uc.FindAvailabilities(ctx, &requests.FindAvailabilities{
		StartDate: "2025-03-11T09:00:00",
		EndDate:   "2025-03-11T10:00:00",
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, morning.ID, result[0].ID)

	result, err = uc.FindAvailabilities(ctx, &requests.FindAvailabilities{
		StartDate: "2025-03-11T09:00:00Z",
		EndDate:   "2025-03-11T10:00:00Z",
	})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestUpdateAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps unspecified fields", func(t *testing.T) {
		uc := newTestUsecase()
		request := validCreate(clinicianA, "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z")
		request.Title = strPtr("Morning")
		request.IsRecurring = boolPtr(true)
		request.RecurringRule = strPtr("FREQ=WEEKLY;BYDAY=MO")
		created, err := uc.CreateAvailability(ctx, request)
		require.NoError(t, err)

		later := fixedNow.Add(time.Hour)
		uc.Now = func() time.Time { return later }

		updated, err := uc.UpdateAvailability(ctx, created.ID, &requests.UpdateAvailability{
			AllowOnlineRequests: boolPtr(true),
		})
		require.NoError(t, err)

		assert.Equal(t, "Morning", updated.Title)
		assert.True(t, updated.AllowOnlineRequests)
		assert.True(t, updated.IsRecurring)
		require.NotNil(t, updated.RecurringRule)
		assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO", *updated.RecurringRule)
		assert.Equal(t, created.StartDate, updated.StartDate)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, later, updated.UpdatedAt)
	})

	t.Run("explicit null or empty rule clears it", func(t *testing.T) {
		for name, rule := range map[string]*string{"null": nil, "empty": strPtr("")} {
			t.Run(name, func(t *testing.T) {
				uc := newTestUsecase()
				request := validCreate(clinicianA, "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z")
				request.IsRecurring = boolPtr(true)
				request.RecurringRule = strPtr("FREQ=WEEKLY")
				created, err := uc.CreateAvailability(ctx, request)
				require.NoError(t, err)

				updated, err := uc.UpdateAvailability(ctx, created.ID, &requests.UpdateAvailability{
					IsRecurring:      boolPtr(false),
					RecurringRule:    rule,
					RecurringRuleSet: true,
				})
				require.NoError(t, err)
				assert.False(t, updated.IsRecurring)
				assert.Nil(t, updated.RecurringRule)

				stored, err := uc.FindAvailabilityByID(ctx, created.ID)
				require.NoError(t, err)
				assert.Nil(t, stored.RecurringRule)
			})
		}
	})

	t.Run("timestamps are kept at millisecond precision", func(t *testing.T) {
		uc := newTestUsecase()
		created, err := uc.CreateAvailability(ctx, validCreate(clinicianA, "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z"))
		require.NoError(t, err)

		uc.Now = func() time.Time { return fixedNow.Add(1500 * time.Microsecond) }
		updated, err := uc.UpdateAvailability(ctx, created.ID, &requests.UpdateAvailability{
			EndDate: strPtr("2025-03-11T10:30:00.987654321Z"),
		})
		require.NoError(t, err)
		assert.Equal(t, fixedNow.Add(time.Millisecond), updated.UpdatedAt)
		assert.Equal(t, time.Date(2025, 3, 11, 10, 30, 0, 987000000, time.UTC), updated.EndDate)
	})

	t.Run("empty patch still stamps updated_at", func(t *testing.T) {
		uc := newTestUsecase()
		created, err := uc.CreateAvailability(ctx, validCreate(clinicianA, "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z"))
		require.NoError(t, err)

		later := fixedNow.Add(time.Minute)
		uc.Now = func() time.Time { return later }

		updated, err := uc.UpdateAvailability(ctx, created.ID, &requests.UpdateAvailability{})
		require.NoError(t, err)
		assert.Equal(t, later, updated.UpdatedAt)
	})

	t.Run("missing id", func(t *testing.T) {
		uc := newTestUsecase()
		_, err := uc.UpdateAvailability(ctx, "nope", &requests.UpdateAvailability{Title: strPtr("x")})
		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})

	t.Run("malformed partial payload", func(t *testing.T) {
		uc := newTestUsecase()
		created, err := uc.CreateAvailability(ctx, validCreate(clinicianA, "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z"))
		require.NoError(t, err)

		_, err = uc.UpdateAvailability(ctx, created.ID, &requests.UpdateAvailability{LocationID: strPtr("bad")})
		require.Error(t, err)
		assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))

		stored, err := uc.FindAvailabilityByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, locationA, stored.LocationID)
	})

	t.Run("strict range checks the merged window", func(t *testing.T) {
		uc := newTestUsecase(WithStrictRange(true))
		created, err := uc.CreateAvailability(ctx, validCreate(clinicianA, "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z"))
		require.NoError(t, err)

		_, err = uc.UpdateAvailability(ctx, created.ID, &requests.UpdateAvailability{StartDate: strPtr("2025-03-11T11:00:00Z")})
		require.Error(t, err)
		assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
	})
}

func TestDeleteAvailability(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase()
	created, err := uc.CreateAvailability(ctx, validCreate(clinicianA, "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z"))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteAvailability(ctx, created.ID))

	_, err = uc.FindAvailabilityByID(ctx, created.ID)
	assert.True(t, exceptions.IsNotFound(err))

	err = uc.DeleteAvailability(ctx, created.ID)
	assert.True(t, exceptions.IsNotFound(err))
}

func TestAvailabilityUsecase_PublishesChanges(t *testing.T) {
	ctx := context.Background()
	publisher := new(mockPublisher)
	publisher.On("Publish", mock.Anything, constvars.EventAvailabilityCreated, mock.AnythingOfType("models.AvailabilityChangedEvent")).Return(nil).Once()
	publisher.On("Publish", mock.Anything, constvars.EventAvailabilityUpdated, mock.Anything).Return(errors.New("broker down")).Once()
	publisher.On("Publish", mock.Anything, constvars.EventAvailabilityDeleted, mock.Anything).Return(nil).Once()

	uc := newTestUsecase(WithEventPublisher(publisher))

	created, err := uc.CreateAvailability(ctx, validCreate(clinicianA, "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z"))
	require.NoError(t, err)

	_, err = uc.UpdateAvailability(ctx, created.ID, &requests.UpdateAvailability{Title: strPtr("x")})
	assert.NoError(t, err, "publish failures must not fail the request")

	require.NoError(t, uc.DeleteAvailability(ctx, created.ID))

	publisher.AssertExpectations(t)
}

func TestAvailabilityUsecase_ObservesOutcomes(t *testing.T) {
	ctx := context.Background()
	recorder := &recordingMetrics{}
	uc := newTestUsecase(WithMetrics(recorder))

	_, _ = uc.CreateAvailability(ctx, validCreate(clinicianA, "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z"))
	_, _ = uc.CreateAvailability(ctx, validCreate("bad", "2025-03-11T09:00:00Z", "2025-03-11T10:00:00Z"))
	_, _ = uc.FindAvailabilityByID(ctx, "missing")

	assert.Equal(t, []string{"create:success", "create:invalid", "find:not_found"}, recorder.observed)
}

package diagnosisTreatmentPlans

import (
	"backoffice-service/internal/app/models"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockRepository(t *testing.T) (*diagnosisTreatmentPlanPostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDiagnosisTreatmentPlanPostgresRepository(db, zap.NewNop()).(*diagnosisTreatmentPlanPostgresRepository), mock
}

func TestDiagnosisTreatmentPlanRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)
	documentedAt := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	createdAt := documentedAt.Add(time.Minute)
	plan := &models.DiagnosisTreatmentPlan{
		ID:            "plan-1",
		ClientID:      "client-1",
		DocumentedAt:  documentedAt,
		Diagnoses:     []models.Diagnosis{{Code: "F41.1", Description: "Generalized anxiety disorder"}},
		TreatmentPlan: "CBT weekly",
		CreatedBy:     "user-1",
		CreatedAt:     createdAt,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "diagnosis_treatment_plans" ("client_id", "created_at", "created_by", "diagnoses", "documented_at", "id", "treatment_plan") VALUES ($1, $2, $3, $4, $5, $6, $7)`)).
		WithArgs("client-1", createdAt, "user-1", `[{"code":"F41.1","description":"Generalized anxiety disorder"}]`, documentedAt, "plan-1", "CBT weekly").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), plan))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiagnosisTreatmentPlanRepository_CreateFailure(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(`INSERT INTO "diagnosis_treatment_plans"`).WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &models.DiagnosisTreatmentPlan{ID: "p", ClientID: "c"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiagnosisTreatmentPlanRepository_FindByClientID(t *testing.T) {
	repo, mock := newMockRepository(t)
	documentedAt := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "client_id", "documented_at", "diagnoses", "treatment_plan", "created_by", "created_at"}).
		AddRow("plan-2", "client-1", documentedAt, []byte(`[{"code":"F32.0","description":"Mild depressive episode"}]`), "", "user-1", documentedAt).
		AddRow("plan-1", "client-1", documentedAt.Add(-time.Hour), []byte(`[{"code":"F41.1","description":""}]`), "CBT", "user-1", documentedAt)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id", "client_id", "documented_at", "diagnoses", "treatment_plan", "created_by", "created_at" FROM "diagnosis_treatment_plans" WHERE ("client_id" = $1) ORDER BY "documented_at" DESC, "created_at" DESC`)).
		WithArgs("client-1").
		WillReturnRows(rows)

	plans, err := repo.FindByClientID(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "plan-2", plans[0].ID)
	assert.Equal(t, []models.Diagnosis{{Code: "F32.0", Description: "Mild depressive episode"}}, plans[0].Diagnoses)
	assert.Equal(t, "CBT", plans[1].TreatmentPlan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiagnosisTreatmentPlanRepository_FindByClientIDEmpty(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`SELECT .* FROM "diagnosis_treatment_plans"`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "documented_at", "diagnoses", "treatment_plan", "created_by", "created_at"}))

	plans, err := repo.FindByClientID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, plans)
	assert.Empty(t, plans)
}

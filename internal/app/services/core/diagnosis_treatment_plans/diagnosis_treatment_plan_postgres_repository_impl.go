package diagnosisTreatmentPlans

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/exceptions"
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const diagnosisTreatmentPlansTable = "diagnosis_treatment_plans"

type diagnosisTreatmentPlanPostgresRepository struct {
	DB      *sql.DB
	Dialect goqu.DialectWrapper
	Log     *zap.Logger
}

func NewDiagnosisTreatmentPlanPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.DiagnosisTreatmentPlanRepository {
	return &diagnosisTreatmentPlanPostgresRepository{
		DB:      db,
		Dialect: goqu.Dialect("postgres"),
		Log:     logger,
	}
}

func (repo *diagnosisTreatmentPlanPostgresRepository) Create(ctx context.Context, entity *models.DiagnosisTreatmentPlan) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	diagnoses, err := json.Marshal(entity.Diagnoses)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	query, args, err := repo.Dialect.Insert(diagnosisTreatmentPlansTable).Prepared(true).Rows(goqu.Record{
		"id":             entity.ID,
		"client_id":      entity.ClientID,
		"documented_at":  entity.DocumentedAt,
		"diagnoses":      string(diagnoses),
		"treatment_plan": entity.TreatmentPlan,
		"created_by":     entity.CreatedBy,
		"created_at":     entity.CreatedAt,
	}).ToSQL()
	if err != nil {
		return exceptions.ErrPostgresDBBuildQuery(err)
	}

	_, err = repo.DB.ExecContext(ctx, query, args...)
	if err != nil {
		repo.Log.Error("diagnosisTreatmentPlanPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClientIDKey, entity.ClientID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

// FindByClientID returns the plans of a client, most recently documented first.
func (repo *diagnosisTreatmentPlanPostgresRepository) FindByClientID(ctx context.Context, clientID string) ([]models.DiagnosisTreatmentPlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	query, args, err := repo.Dialect.From(diagnosisTreatmentPlansTable).Prepared(true).
		Select("id", "client_id", "documented_at", "diagnoses", "treatment_plan", "created_by", "created_at").
		Where(goqu.Ex{"client_id": clientID}).
		Order(goqu.I("documented_at").Desc(), goqu.I("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, exceptions.ErrPostgresDBBuildQuery(err)
	}

	rows, err := repo.DB.QueryContext(ctx, query, args...)
	if err != nil {
		repo.Log.Error("diagnosisTreatmentPlanPostgresRepository.FindByClientID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClientIDKey, clientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	plans := make([]models.DiagnosisTreatmentPlan, 0)
	for rows.Next() {
		var plan models.DiagnosisTreatmentPlan
		var diagnoses []byte
		err := rows.Scan(&plan.ID, &plan.ClientID, &plan.DocumentedAt, &diagnoses, &plan.TreatmentPlan, &plan.CreatedBy, &plan.CreatedAt)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		err = json.Unmarshal(diagnoses, &plan.Diagnoses)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return plans, nil
}

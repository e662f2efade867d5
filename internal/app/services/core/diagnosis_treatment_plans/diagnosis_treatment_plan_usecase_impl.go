package diagnosisTreatmentPlans

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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type diagnosisTreatmentPlanUsecase struct {
	DiagnosisTreatmentPlanRepository contracts.DiagnosisTreatmentPlanRepository
	DocumentationArchive             contracts.DocumentationArchive
	Location                         *time.Location
	Now                              func() time.Time
	Log                              *zap.Logger
}

func NewDiagnosisTreatmentPlanUsecase(
	diagnosisTreatmentPlanRepository contracts.DiagnosisTreatmentPlanRepository,
	documentationArchive contracts.DocumentationArchive,
	location *time.Location,
	logger *zap.Logger,
) contracts.DiagnosisTreatmentPlanUsecase {
	if location == nil {
		location = time.UTC
	}
	return &diagnosisTreatmentPlanUsecase{
		DiagnosisTreatmentPlanRepository: diagnosisTreatmentPlanRepository,
		DocumentationArchive:             documentationArchive,
		Location:                         location,
		Now:                              time.Now,
		Log:                              logger,
	}
}

func (uc *diagnosisTreatmentPlanUsecase) CreatePlan(ctx context.Context, session *models.Session, request *requests.CreateDiagnosisTreatmentPlan) (*models.DiagnosisTreatmentPlan, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	rows := make([]models.Diagnosis, 0, len(request.Diagnoses))
	for _, diagnosis := range request.Diagnoses {
		rows = append(rows, models.Diagnosis{
			Code:        strings.TrimSpace(diagnosis.Code),
			Description: strings.TrimSpace(diagnosis.Description),
		})
	}
	rows = NormalizeRows(rows)
	if len(rows) == 0 {
		return nil, exceptions.ErrDiagnosisRowRequired(nil)
	}

	documentedAt, err := time.ParseInLocation(constvars.DiagnosisDateLayout+" "+constvars.DiagnosisTimeLayout, request.Date+" "+request.Time, uc.Location)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err, "date")
	}

	plan := &models.DiagnosisTreatmentPlan{
		ID:           uuid.NewString(),
		ClientID:     request.ClientID,
		DocumentedAt: documentedAt.UTC(),
		Diagnoses:    rows,
		CreatedAt:    uc.Now().UTC(),
	}
	if request.ShowTreatmentPlan {
		plan.TreatmentPlan = request.TreatmentPlan
	}
	if session != nil {
		plan.CreatedBy = session.UserID
	}

	err = uc.DiagnosisTreatmentPlanRepository.Create(ctx, plan)
	if err != nil {
		return nil, err
	}

	// The plan row is committed at this point, so a failed snapshot is reported but not returned.
	_, err = uc.DocumentationArchive.Archive(ctx, plan)
	if err != nil {
		uc.Log.Error("diagnosisTreatmentPlanUsecase.CreatePlan failed to archive snapshot",
			zap.String(constvars.LoggingClientIDKey, plan.ClientID),
			zap.Error(err),
		)
	}

	return plan, nil
}

func (uc *diagnosisTreatmentPlanUsecase) FindPlansByClientID(ctx context.Context, clientID string) ([]models.DiagnosisTreatmentPlan, error) {
	return uc.DiagnosisTreatmentPlanRepository.FindByClientID(ctx, clientID)
}

func (uc *diagnosisTreatmentPlanUsecase) FindDocumentationHistory(ctx context.Context, clientID string) ([]models.DocumentationHistoryEntry, error) {
	return uc.DocumentationArchive.ListByClientID(ctx, clientID)
}

// EditRows runs one add/remove/update on the form rows. The form always shows at least one row.
func (uc *diagnosisTreatmentPlanUsecase) EditRows(ctx context.Context, request *requests.EditDiagnosisRows) ([]models.Diagnosis, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	rows := make([]models.Diagnosis, 0, len(request.Rows))
	for _, diagnosis := range request.Rows {
		rows = append(rows, models.Diagnosis{Code: diagnosis.Code, Description: diagnosis.Description})
	}
	if len(rows) == 0 {
		rows = append(rows, models.Diagnosis{})
	}

	switch request.Action {
	case constvars.DiagnosisRowActionAdd:
		return AddRow(rows), nil
	case constvars.DiagnosisRowActionRemove:
		return RemoveRow(rows, request.Index), nil
	case constvars.DiagnosisRowActionUpdate:
		return UpdateRow(rows, request.Index, request.Field, request.Value), nil
	}
	return rows, nil
}

package contracts

import (
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/dto/requests"
	"context"
)

type DiagnosisTreatmentPlanUsecase interface {
	CreatePlan(ctx context.Context, session *models.Session, request *requests.CreateDiagnosisTreatmentPlan) (*models.DiagnosisTreatmentPlan, error)
	FindPlansByClientID(ctx context.Context, clientID string) ([]models.DiagnosisTreatmentPlan, error)
	FindDocumentationHistory(ctx context.Context, clientID string) ([]models.DocumentationHistoryEntry, error)
	EditRows(ctx context.Context, request *requests.EditDiagnosisRows) ([]models.Diagnosis, error)
}

type DiagnosisTreatmentPlanRepository interface {
	Create(ctx context.Context, entity *models.DiagnosisTreatmentPlan) error
	FindByClientID(ctx context.Context, clientID string) ([]models.DiagnosisTreatmentPlan, error)
}

type DocumentationArchive interface {
	Archive(ctx context.Context, plan *models.DiagnosisTreatmentPlan) (*models.DocumentationHistoryEntry, error)
	ListByClientID(ctx context.Context, clientID string) ([]models.DocumentationHistoryEntry, error)
}

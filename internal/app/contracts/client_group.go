package contracts

import (
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/dto/requests"
	"context"
)

type ClientGroupUsecase interface {
	FindEditView(ctx context.Context, request *requests.FindClientGroupEditView) (*models.ClientGroupEditView, error)
	ChangeTab(ctx context.Context, request *requests.ChangeClientGroupTab) (*models.ClientGroupTabChange, error)
}

type ClientGroupRepository interface {
	FindByID(ctx context.Context, clientGroupID string, includeProfile, includeAddress bool) (*models.ClientGroup, error)
}

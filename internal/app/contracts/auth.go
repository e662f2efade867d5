package contracts

import (
	"backoffice-service/internal/app/models"
	"context"
	"net/http"
)

type AuthProvider interface {
	IsAuthenticated(r *http.Request) bool
}

type SessionService interface {
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	// SessionFromToken resolves a bearer token into the active session.
	SessionFromToken(ctx context.Context, token string) (*models.Session, error)
}

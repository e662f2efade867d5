package session

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/utils"
	"net/http"
)

type bearerAuthProvider struct {
	SessionService contracts.SessionService
}

// NewBearerAuthProvider authenticates requests carrying "Authorization: Bearer <jwt>"
// whose session is still present in the session store.
func NewBearerAuthProvider(sessionService contracts.SessionService) contracts.AuthProvider {
	return &bearerAuthProvider{SessionService: sessionService}
}

func (p *bearerAuthProvider) IsAuthenticated(r *http.Request) bool {
	if _, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session); ok {
		return true
	}
	token := utils.ExtractBearerToken(r.Header.Get(constvars.HeaderAuthorization))
	_, err := p.SessionService.SessionFromToken(r.Context(), token)
	return err == nil
}

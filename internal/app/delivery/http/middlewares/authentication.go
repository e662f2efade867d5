package middlewares

import (
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/utils"
	"context"
	"net/http"
)

// Authenticate resolves the bearer token into a session and stores it in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.ExtractBearerToken(r.Header.Get(constvars.HeaderAuthorization))

		session, err := m.SessionService.SessionFromToken(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, session.SessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session, ok
}

package session

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/exceptions"
	"backoffice-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	JWTSecret       string
	Now             func() time.Time
}

func NewSessionService(redisRepository contracts.RedisRepository, jwtSecret string) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		JWTSecret:       jwtSecret,
		Now:             time.Now,
	}
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, constvars.RedisKeySessionPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrSessionNotFound(err)
	}
	if session.SessionID == "" {
		session.SessionID = sessionID
	}
	if session.IsExpired(svc.Now()) {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (svc *sessionService) SessionFromToken(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	sessionID, err := utils.ParseJWT(token, svc.JWTSecret)
	if err != nil {
		return nil, err
	}
	return svc.GetSession(ctx, sessionID)
}

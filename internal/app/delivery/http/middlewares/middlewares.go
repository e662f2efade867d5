package middlewares

import (
	"backoffice-service/internal/app/config"
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/services/shared/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	HTTPMetrics    *metrics.HTTPMetrics
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig, httpMetrics *metrics.HTTPMetrics) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		HTTPMetrics:    httpMetrics,
	}
}

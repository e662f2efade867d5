package utils

import (
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/dto/responses"
	"backoffice-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildJSONResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func BuildSuccessResponse(w http.ResponseWriter) {
	BuildJSONResponse(w, constvars.StatusOK, responses.SuccessResponse{Success: true})
}

// BuildErrorResponse logs the failure with its class and context before answering
// with the client facing error body.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	response := responses.ErrorResponse{
		Error: constvars.ErrClientInternalServerError,
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		response.Error = customErr.ClientMessage
		response.Details = customErr.Details
		log.Error(customErr.DevMessage,
			zap.String(constvars.LoggingErrorKindKey, string(customErr.Kind())),
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.Any(constvars.LoggingErrorDetailsKey, customErr.Details),
			zap.Any(constvars.LoggingLocationKey, customErr.Location),
		)
	} else {
		log.Error(err.Error(),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindInternal)),
			zap.Int(constvars.LoggingStatusCodeKey, code),
		)
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if code >= constvars.StatusInternalServerError && appEnvironment != constvars.AppEnvProduction {
		response.Message = err.Error()
	}

	BuildJSONResponse(w, code, response)
}

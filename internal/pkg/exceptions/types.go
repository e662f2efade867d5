package exceptions

import (
	"backoffice-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevAuthTokenInvalid)
	}
	ErrSessionNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevAuthSessionNotFound)
	}

	// Request
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientValidation, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseDate = func(err error, field string) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientValidation, fmt.Sprintf(constvars.ErrDevCannotParseDate, field))
		customErr.Details = []FieldError{{
			Field:   field,
			Code:    "iso8601",
			Message: field + " " + constvars.CustomValidationErrorMessages["iso8601"],
		}}
		return customErr
	}
	ErrInputValidation = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientValidation, constvars.ErrDevValidationFailed)
		customErr.Details = FormatValidationDetails(err)
		return customErr
	}
	ErrAvailabilityRangeInverted = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientValidation, constvars.ErrDevAvailabilityRangeInverted)
		customErr.Details = []FieldError{{
			Field:   "end_date",
			Code:    "gtfield",
			Message: constvars.ErrDevAvailabilityRangeInverted,
		}}
		return customErr
	}
	ErrAvailabilityIDRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientAvailabilityIDRequired, fmt.Sprintf(constvars.ErrDevMissingQueryParam, constvars.QueryParamID))
	}
	ErrDiagnosisRowRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientDiagnosisRowRequired, constvars.ErrDevDiagnosisRowRequired)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevCannotMarshalJSON)
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevPanicRecovered)
	}

	// Not found
	ErrAvailabilityNotFound = func(err error, availabilityID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAvailabilityNotFound, fmt.Sprintf(constvars.ErrDevAvailabilityNotFound, availabilityID))
	}
	ErrClientGroupNotFound = func(err error, clientGroupID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientClientGroupNotFound, fmt.Sprintf(constvars.ErrDevClientGroupNotFound, clientGroupID))
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToDeleteDocument)
	}

	// Postgres DB
	ErrPostgresDBBuildQuery = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToBuildQuery)
	}
	ErrPostgresDBFindData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToFindData)
	}
	ErrPostgresDBInsertData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToInsertData)
	}
	ErrPostgresDBIterateDataset = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevDBFailedToIterateDataset)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, constvars.ErrDevRedisDeleteData)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioListObjects = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, fmt.Sprintf(constvars.ErrDevMinioFailedToListObjects, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, exchange string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, exchange))
	}
)

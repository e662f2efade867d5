package constvars

// Validation messages mapper, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"uuid":      "must be a valid UUID",
	"iso8601":   "must be a valid ISO-8601 datetime",
	"oneof":     "must be one of [%s]",
	"min":       "must be at least %s",
	"max":       "maximum at %s",
	"datetime":  "must match the %s layout",
	"clocktime": "must be a valid time such as 9:30 AM",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"oneof":    true,
	"min":      true,
	"max":      true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientUnauthorized           = "Unauthorized"
	ErrClientValidation             = "Validation error"
	ErrClientInternalServerError    = "Internal server error"
	ErrClientAvailabilityNotFound   = "Availability not found"
	ErrClientAvailabilityIDRequired = "Availability ID is required"
	ErrClientClientGroupNotFound    = "Client group not found"
	ErrClientServerLongRespond      = "the app taking too long to respond"
	ErrClientDiagnosisRowRequired   = "at least one diagnosis is required"
)

// Error messages for developers
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCannotParseDate           = "cannot parse date for %s"
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthSigningMethod         = "unexpected jwt signing method"
	ErrDevAuthSessionNotFound       = "session not found or expired"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevMissingQueryParam         = "missing query param %s"
	ErrDevAvailabilityNotFound      = "availability %s not found"
	ErrDevClientGroupNotFound       = "client group %s not found"
	ErrDevAvailabilityRangeInverted = "start_date must be before end_date"
	ErrDevDiagnosisRowRequired      = "diagnosis rows are empty after normalization"
	ErrDevPanicRecovered            = "panic recovered"

	// Storage messages
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToBuildQuery       = "failed to build sql query"
	ErrDevDBFailedToFindData         = "failed to find data"
	ErrDevDBFailedToInsertData       = "failed to insert data"
	ErrDevDBFailedToIterateDataset   = "failed to iterate dataset"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToListObjects   = "failed to list objects in bucket %s"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to exchange %s"
)

package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingQueryKey        = "query"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingErrorKindKey    = "error_kind"
	LoggingErrorDetailsKey = "error_details"
	LoggingLocationKey     = "location"
	LoggingAvailabilityID  = "availability_id"
	LoggingClientIDKey     = "client_id"
	LoggingEventKey        = "event"
)

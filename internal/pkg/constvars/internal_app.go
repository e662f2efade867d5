package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "MCW_BO_"
)

const (
	ResourceAvailability            = "availability"
	ResourceClientGroups            = "client-groups"
	ResourceAppointments            = "appointments"
	ResourceCalendar                = "calendar"
	ResourceDiagnosisTreatmentPlans = "diagnosis-treatment-plans"
	ResourceClients                 = "clients"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	RedisKeySessionPrefix      = "session:"
	RedisKeySelectedSlotPrefix = "selected_time_slot:"
)

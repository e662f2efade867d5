package constvars

const (
	ResponseUnknown = "unknown"
)

const (
	HealthCheckStatusOK = "ok"
)

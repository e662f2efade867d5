package config

type InternalConfig struct {
	App         App
	JWT         AppJWT
	MongoDB     AppMongoDB
	RabbitMQ    AppRabbitMQ
	Minio       AppMinio
	SlotMailbox AppSlotMailbox
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Timezone                  string
	EndpointPrefix            string
	AllowedOrigins            []string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	RequestTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds int
	// StrictAvailabilityRange rejects availabilities whose start is not before their end.
	StrictAvailabilityRange bool
}

type AppJWT struct {
	Secret string
}

type AppMongoDB struct {
	BackofficeDBName string
}

type AppRabbitMQ struct {
	AvailabilityExchange string
}

type AppMinio struct {
	DocumentationBucketName string
}

type AppSlotMailbox struct {
	TTLInMinutes int
}

package constvars

const (
	EventAvailabilityCreated = "availability.created"
	EventAvailabilityUpdated = "availability.updated"
	EventAvailabilityDeleted = "availability.deleted"
)

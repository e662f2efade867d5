package constvars

const (
	MongoCollectionAvailabilities = "availabilities"
	MongoCollectionClientGroups   = "client_groups"
)

package availabilities

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ contracts.AvailabilityRepository = (*AvailabilityMongoRepository)(nil)

type AvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewAvailabilityMongoRepository(db *mongo.Client, dbName string) *AvailabilityMongoRepository {
	return &AvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAvailabilities),
	}
}

// EnsureIndexes backs the clinician + window lookup.
func (repo *AvailabilityMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "clinicianId", Value: 1}, {Key: "startDate", Value: 1}},
	})
	return err
}

func (repo *AvailabilityMongoRepository) Create(ctx context.Context, entity *models.Availability) error {
	_, err := repo.Collection.InsertOne(ctx, entity)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *AvailabilityMongoRepository) FindByID(ctx context.Context, availabilityID string) (*models.Availability, error) {
	availability := new(models.Availability)
	err := repo.Collection.FindOne(ctx, bson.M{"_id": availabilityID}).Decode(availability)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, exceptions.ErrAvailabilityNotFound(err, availabilityID)
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return availability, nil
}

func (repo *AvailabilityMongoRepository) FindMany(ctx context.Context, filter models.AvailabilityFilter) ([]models.Availability, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, buildAvailabilityFilter(filter), findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	availabilities := make([]models.Availability, 0)
	err = cursor.All(ctx, &availabilities)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return availabilities, nil
}

func (repo *AvailabilityMongoRepository) Update(ctx context.Context, availabilityID string, patch *models.AvailabilityPatch) (*models.Availability, error) {
	update := bson.M{"$set": bson.M(patch.ConvertToBsonM())}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(false)

	availability := new(models.Availability)
	err := repo.Collection.FindOneAndUpdate(ctx, bson.M{"_id": availabilityID}, update, updateOptions).Decode(availability)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, exceptions.ErrAvailabilityNotFound(err, availabilityID)
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return availability, nil
}

func (repo *AvailabilityMongoRepository) Delete(ctx context.Context, availabilityID string) error {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": availabilityID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrAvailabilityNotFound(nil, availabilityID)
	}
	return nil
}

func buildAvailabilityFilter(filter models.AvailabilityFilter) bson.M {
	query := bson.M{}
	if filter.ClinicianID != "" {
		query["clinicianId"] = filter.ClinicianID
	}
	if filter.HasDateRange() {
		query["startDate"] = bson.M{"$gte": *filter.StartDate}
		query["endDate"] = bson.M{"$lte": *filter.EndDate}
	}
	return query
}

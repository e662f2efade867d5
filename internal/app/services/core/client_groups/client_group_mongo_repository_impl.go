package clientGroups

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

type ClientGroupMongoRepository struct {
	Collection *mongo.Collection
}

func NewClientGroupMongoRepository(db *mongo.Client, dbName string) contracts.ClientGroupRepository {
	return &ClientGroupMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionClientGroups),
	}
}

func (repo *ClientGroupMongoRepository) FindByID(ctx context.Context, clientGroupID string, includeProfile, includeAddress bool) (*models.ClientGroup, error) {
	findOptions := options.FindOne()
	if projection := buildClientGroupProjection(includeProfile, includeAddress); len(projection) > 0 {
		findOptions.SetProjection(projection)
	}

	clientGroup := new(models.ClientGroup)
	err := repo.Collection.FindOne(ctx, bson.M{"_id": clientGroupID}, findOptions).Decode(clientGroup)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, exceptions.ErrClientGroupNotFound(err, clientGroupID)
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return clientGroup, nil
}

// buildClientGroupProjection excludes the membership sub documents that were not asked for.
func buildClientGroupProjection(includeProfile, includeAddress bool) bson.M {
	projection := bson.M{}
	if !includeProfile {
		projection["memberships.client.profile"] = 0
	}
	if !includeAddress {
		projection["memberships.client.addresses"] = 0
	}
	return projection
}

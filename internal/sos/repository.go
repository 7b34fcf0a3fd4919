package sos

import (
	"context"

	"hapsay-service/internal/models"
	"hapsay-service/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Query struct {
	Status    string
	StationID *primitive.ObjectID
}

type SOSRepository interface {
	Create(ctx context.Context, req *models.SOSRequest) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.SOSRequest, error)
	FindAll(ctx context.Context, q Query) ([]*models.SOSRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type sosRepository struct {
	collection *mongo.Collection
}

func NewSOSRepository(collection *mongo.Collection) SOSRepository {
	store.LogIndexError(collection.Name(), EnsureSOSIndexes(context.Background(), collection))
	return &sosRepository{
		collection: collection,
	}
}

func (r *sosRepository) Create(ctx context.Context, req *models.SOSRequest) error {

	res, err := r.collection.InsertOne(ctx, req)
	if err != nil {
		return store.TranslateWrite(err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		req.ID = id
	}
	return nil

}

func (r *sosRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SOSRequest, error) {

	var req models.SOSRequest

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &req, nil

}

func (r *sosRepository) FindAll(ctx context.Context, q Query) ([]*models.SOSRequest, error) {

	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.StationID != nil {
		filter["nearest_station_id"] = *q.StationID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	requests := make([]*models.SOSRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil

}

func (r *sosRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {

	update := bson.M{"$set": bson.M{"status": status, "updated_at": nowUTC()}}

	res, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil

}

func (r *sosRepository) Delete(ctx context.Context, id primitive.ObjectID) error {

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil

}

func EnsureSOSIndexes(ctx context.Context, coll *mongo.Collection) error {

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "nearest_station_id", Value: 1},
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("by_station_status_created"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}

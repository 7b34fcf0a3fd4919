package clearance

import (
	"context"

	"hapsay-service/internal/models"
	"hapsay-service/internal/store"
	"hapsay-service/pkg/constants"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Query struct {
	Status string
	UserID *primitive.ObjectID
}

func (q Query) match() bson.M {
	m := bson.M{}
	if q.Status != "" {
		m["status"] = q.Status
	}
	if q.UserID != nil {
		m["user_id"] = *q.UserID
	}
	return m
}

type ClearanceRepository interface {
	Create(ctx context.Context, clearance *models.Clearance) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Clearance, error)
	FindView(ctx context.Context, id primitive.ObjectID) (*models.ClearanceView, error)
	FindAll(ctx context.Context, q Query) ([]*models.ClearanceView, error)
	Update(ctx context.Context, clearance *models.Clearance) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type clearanceRepository struct {
	collection *mongo.Collection
}

func NewClearanceRepository(collection *mongo.Collection) ClearanceRepository {
	store.LogIndexError(collection.Name(), EnsureClearanceIndexes(context.Background(), collection))
	return &clearanceRepository{
		collection: collection,
	}
}

func (r *clearanceRepository) Create(ctx context.Context, clearance *models.Clearance) error {

	res, err := r.collection.InsertOne(ctx, clearance)
	if err != nil {
		return store.TranslateWrite(err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		clearance.ID = id
	}
	return nil

}

func (r *clearanceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Clearance, error) {

	var clearance models.Clearance

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&clearance)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &clearance, nil

}

func (r *clearanceRepository) FindView(ctx context.Context, id primitive.ObjectID) (*models.ClearanceView, error) {

	views, err := r.aggregate(ctx, bson.M{"_id": id})
	if err != nil || len(views) == 0 {
		return nil, err
	}
	return views[0], nil

}

func (r *clearanceRepository) FindAll(ctx context.Context, q Query) ([]*models.ClearanceView, error) {
	return r.aggregate(ctx, q.match())
}

func (r *clearanceRepository) aggregate(ctx context.Context, match bson.M) ([]*models.ClearanceView, error) {

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		store.LookupOne(constants.UsersCollection, "user_id", "user"),
		store.UnwindOptional("user"),
		{{Key: "$project", Value: bson.D{{Key: "user.password", Value: 0}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	views := make([]*models.ClearanceView, 0)
	if err := cursor.All(ctx, &views); err != nil {
		return nil, err
	}
	return views, nil

}

func (r *clearanceRepository) Update(ctx context.Context, clearance *models.Clearance) error {

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": clearance.ID}, clearance)
	if err != nil {
		return store.TranslateWrite(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil

}

func (r *clearanceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil

}

func EnsureClearanceIndexes(ctx context.Context, coll *mongo.Collection) error {

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("by_user_created"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("by_status"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}

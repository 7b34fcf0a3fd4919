package blotter

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

// Query is a resolved ListFilter.
type Query struct {
	Status    models.BlotterStatus
	UserID    *primitive.ObjectID
	OfficerID *primitive.ObjectID
}

func (q Query) match() bson.M {
	m := bson.M{}
	if q.Status != "" {
		m["status"] = q.Status
	}
	if q.UserID != nil {
		m["user_id"] = *q.UserID
	}
	if q.OfficerID != nil {
		m["assigned_officer"] = *q.OfficerID
	}
	return m
}

type BlotterRepository interface {
	Create(ctx context.Context, blotter *models.Blotter) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blotter, error)
	FindView(ctx context.Context, id primitive.ObjectID) (*models.BlotterView, error)
	FindAll(ctx context.Context, q Query) ([]*models.BlotterView, error)
	Update(ctx context.Context, blotter *models.Blotter) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type blotterRepository struct {
	collection *mongo.Collection
}

func NewBlotterRepository(collection *mongo.Collection) BlotterRepository {
	store.LogIndexError(collection.Name(), EnsureBlotterIndexes(context.Background(), collection))
	return &blotterRepository{
		collection: collection,
	}
}

func (r *blotterRepository) Create(ctx context.Context, blotter *models.Blotter) error {

	res, err := r.collection.InsertOne(ctx, blotter)
	if err != nil {
		return store.TranslateWrite(err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		blotter.ID = id
	}
	return nil

}

func (r *blotterRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blotter, error) {

	var blotter models.Blotter

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&blotter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &blotter, nil

}

func (r *blotterRepository) FindView(ctx context.Context, id primitive.ObjectID) (*models.BlotterView, error) {

	views, err := r.aggregate(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return views[0], nil

}

func (r *blotterRepository) FindAll(ctx context.Context, q Query) ([]*models.BlotterView, error) {
	return r.aggregate(ctx, q.match())
}

// aggregate joins the reporting account and the assigned officer, newest
// report first, without password hashes.
func (r *blotterRepository) aggregate(ctx context.Context, match bson.M) ([]*models.BlotterView, error) {

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		store.LookupOne(constants.UsersCollection, "user_id", "user"),
		store.UnwindOptional("user"),
		store.LookupOne(constants.OfficersCollection, "assigned_officer", "officer"),
		store.UnwindOptional("officer"),
		{{Key: "$project", Value: bson.D{
			{Key: "user.password", Value: 0},
			{Key: "officer.password", Value: 0},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	views := make([]*models.BlotterView, 0)
	if err := cursor.All(ctx, &views); err != nil {
		return nil, err
	}
	return views, nil

}

func (r *blotterRepository) Update(ctx context.Context, blotter *models.Blotter) error {

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": blotter.ID}, blotter)
	if err != nil {
		return store.TranslateWrite(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil

}

func (r *blotterRepository) Delete(ctx context.Context, id primitive.ObjectID) error {

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil

}

func EnsureBlotterIndexes(ctx context.Context, coll *mongo.Collection) error {

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("by_user_created"),
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("by_status_created"),
		},
		{
			Keys:    bson.D{{Key: "assigned_officer", Value: 1}},
			Options: options.Index().SetName("by_officer"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}

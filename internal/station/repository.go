package station

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

type StationRepository interface {
	Create(ctx context.Context, station *models.Station) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Station, error)
	FindView(ctx context.Context, id primitive.ObjectID) (*models.StationView, error)
	FindAll(ctx context.Context) ([]*models.StationView, error)
	FindWithoutCustomID(ctx context.Context) ([]*models.Station, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	CustomIDExists(ctx context.Context, customID string) (bool, error)
	Update(ctx context.Context, station *models.Station) error
	SetCustomID(ctx context.Context, id primitive.ObjectID, customID string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddOfficer(ctx context.Context, stationID, officerID primitive.ObjectID) error
	RemoveOfficer(ctx context.Context, stationID, officerID primitive.ObjectID) error
}

type stationRepository struct {
	collection *mongo.Collection
}

func NewStationRepository(collection *mongo.Collection) StationRepository {
	store.LogIndexError(collection.Name(), EnsureStationIndexes(context.Background(), collection))
	return &stationRepository{
		collection: collection,
	}
}

func (r *stationRepository) Create(ctx context.Context, station *models.Station) error {

	res, err := r.collection.InsertOne(ctx, station)
	if err != nil {
		return store.TranslateWrite(err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		station.ID = id
	}
	return nil

}

func (r *stationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Station, error) {

	var station models.Station

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&station)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &station, nil

}

func (r *stationRepository) FindView(ctx context.Context, id primitive.ObjectID) (*models.StationView, error) {

	views, err := r.aggregate(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return views[0], nil

}

func (r *stationRepository) FindAll(ctx context.Context) ([]*models.StationView, error) {
	return r.aggregate(ctx, bson.M{})
}

// aggregate joins each station's roster without officer password hashes.
func (r *stationRepository) aggregate(ctx context.Context, match bson.M) ([]*models.StationView, error) {

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: constants.OfficersCollection},
			{Key: "localField", Value: "officer_ids"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "officers"},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "officers.password", Value: 0}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	views := make([]*models.StationView, 0)
	if err := cursor.All(ctx, &views); err != nil {
		return nil, err
	}
	return views, nil

}

func (r *stationRepository) FindWithoutCustomID(ctx context.Context) ([]*models.Station, error) {

	filter := bson.M{"$or": bson.A{
		bson.M{"custom_id": bson.M{"$exists": false}},
		bson.M{"custom_id": nil},
		bson.M{"custom_id": ""},
	}}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	stations := make([]*models.Station, 0)
	if err := cursor.All(ctx, &stations); err != nil {
		return nil, err
	}
	return stations, nil

}

func (r *stationRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.exists(ctx, bson.M{"_id": id})
}

func (r *stationRepository) CustomIDExists(ctx context.Context, customID string) (bool, error) {
	return r.exists(ctx, bson.M{"custom_id": customID})
}

func (r *stationRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *stationRepository) Update(ctx context.Context, station *models.Station) error {

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": station.ID}, station)
	if err != nil {
		return store.TranslateWrite(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil

}

func (r *stationRepository) SetCustomID(ctx context.Context, id primitive.ObjectID, customID string) error {

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"custom_id": customID}})
	return store.TranslateWrite(err)

}

func (r *stationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil

}

func (r *stationRepository) AddOfficer(ctx context.Context, stationID, officerID primitive.ObjectID) error {

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": stationID},
		bson.M{"$addToSet": bson.M{"officer_ids": officerID}},
	)
	return err

}

func (r *stationRepository) RemoveOfficer(ctx context.Context, stationID, officerID primitive.ObjectID) error {

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": stationID},
		bson.M{"$pull": bson.M{"officer_ids": officerID}},
	)
	return err

}

func EnsureStationIndexes(ctx context.Context, coll *mongo.Collection) error {

	_, err := coll.Indexes().CreateMany(ctx, stationIndexes())
	return err
}

// stationIndexes keeps custom_id unique among non-empty strings, so legacy
// documents with a missing or empty id do not block the index.
func stationIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "custom_id", Value: 1}},
			Options: options.Index().
				SetName(store.CustomIDIndex).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"custom_id": bson.M{"$gt": ""}}),
		},
	}
}

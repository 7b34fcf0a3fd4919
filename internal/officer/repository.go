package officer

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

type OfficerRepository interface {
	Create(ctx context.Context, officer *models.Officer) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Officer, error)
	FindByEmail(ctx context.Context, email string) (*models.Officer, error)
	FindByBadge(ctx context.Context, badge string) (*models.Officer, error)
	FindView(ctx context.Context, id primitive.ObjectID) (*models.OfficerView, error)
	FindAll(ctx context.Context) ([]*models.OfficerView, error)
	FindByStation(ctx context.Context, stationID primitive.ObjectID) ([]*models.OfficerView, error)
	Update(ctx context.Context, officer *models.Officer) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ClearStation(ctx context.Context, stationID primitive.ObjectID) (int64, error)
}

type officerRepository struct {
	collection *mongo.Collection
}

func NewOfficerRepository(collection *mongo.Collection) OfficerRepository {
	store.LogIndexError(collection.Name(), EnsureOfficerIndexes(context.Background(), collection))
	return &officerRepository{
		collection: collection,
	}
}

func (r *officerRepository) Create(ctx context.Context, officer *models.Officer) error {

	res, err := r.collection.InsertOne(ctx, officer)
	if err != nil {
		return store.TranslateWrite(err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		officer.ID = id
	}
	return nil

}

func (r *officerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Officer, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *officerRepository) FindByEmail(ctx context.Context, email string) (*models.Officer, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *officerRepository) FindByBadge(ctx context.Context, badge string) (*models.Officer, error) {
	return r.findOne(ctx, bson.M{"badge_number": badge})
}

func (r *officerRepository) findOne(ctx context.Context, filter bson.M) (*models.Officer, error) {

	var officer models.Officer

	err := r.collection.FindOne(ctx, filter).Decode(&officer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &officer, nil

}

func (r *officerRepository) FindView(ctx context.Context, id primitive.ObjectID) (*models.OfficerView, error) {

	views, err := r.aggregate(ctx, bson.M{"_id": id}, nil, true)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return views[0], nil

}

func (r *officerRepository) FindAll(ctx context.Context) ([]*models.OfficerView, error) {
	return r.aggregate(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}}, false)
}

func (r *officerRepository) FindByStation(ctx context.Context, stationID primitive.ObjectID) ([]*models.OfficerView, error) {
	sort := bson.D{{Key: "rank", Value: 1}, {Key: "last_name", Value: 1}}
	return r.aggregate(ctx, bson.M{"station_id": stationID}, sort, false)
}

// aggregate returns officers with their station summary joined in and the
// password hash stripped.
func (r *officerRepository) aggregate(ctx context.Context, match bson.M, sort bson.D, withContact bool) ([]*models.OfficerView, error) {

	pipeline := mongo.Pipeline{{{Key: "$match", Value: match}}}
	if len(sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}

	hidden := bson.D{
		{Key: "password", Value: 0},
		{Key: "station.officer_ids", Value: 0},
		{Key: "station.location", Value: 0},
	}
	if !withContact {
		hidden = append(hidden, bson.E{Key: "station.contact", Value: 0})
	}

	pipeline = append(pipeline,
		store.LookupOne(constants.StationsCollection, "station_id", "station"),
		store.UnwindOptional("station"),
		bson.D{{Key: "$project", Value: hidden}},
	)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	views := make([]*models.OfficerView, 0)
	if err := cursor.All(ctx, &views); err != nil {
		return nil, err
	}
	return views, nil

}

func (r *officerRepository) Update(ctx context.Context, officer *models.Officer) error {

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": officer.ID}, officer)
	if err != nil {
		return store.TranslateWrite(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil

}

func (r *officerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil

}

// ClearStation detaches every officer from a station that is going away.
func (r *officerRepository) ClearStation(ctx context.Context, stationID primitive.ObjectID) (int64, error) {

	res, err := r.collection.UpdateMany(ctx,
		bson.M{"station_id": stationID},
		bson.M{"$unset": bson.M{"station_id": ""}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil

}

func EnsureOfficerIndexes(ctx context.Context, coll *mongo.Collection) error {

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName(store.EmailIndex).SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "badge_number", Value: 1}},
			Options: options.Index().
				SetName(store.BadgeNumberIndex).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"badge_number": bson.M{"$type": "string"}}),
		},
		{
			Keys: bson.D{
				{Key: "station_id", Value: 1},
				{Key: "rank", Value: 1},
				{Key: "last_name", Value: 1},
			},
			Options: options.Index().SetName("by_station_rank_name"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}

package announcement

import (
	"context"

	"hapsay-service/internal/models"
	"hapsay-service/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	FindAll(ctx context.Context, stationID *primitive.ObjectID) ([]*models.Announcement, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error)
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type announcementRepository struct {
	collection *mongo.Collection
}

func NewAnnouncementRepository(collection *mongo.Collection) AnnouncementRepository {
	store.LogIndexError(collection.Name(), EnsureAnnouncementIndexes(context.Background(), collection))
	return &announcementRepository{
		collection: collection,
	}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *models.Announcement) error {

	res, err := r.collection.InsertOne(ctx, announcement)
	if err != nil {
		return store.TranslateWrite(err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		announcement.ID = id
	}
	return nil

}

func (r *announcementRepository) FindAll(ctx context.Context, stationID *primitive.ObjectID) ([]*models.Announcement, error) {

	filter := bson.M{}
	if stationID != nil {
		filter["station_id"] = *stationID
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	announcements := make([]*models.Announcement, 0)
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil

}

func (r *announcementRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {

	var announcement models.Announcement

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&announcement)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &announcement, nil

}

func (r *announcementRepository) Update(ctx context.Context, announcement *models.Announcement) error {

	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": announcement.ID}, announcement)
	if err != nil {
		return store.TranslateWrite(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil

}

func (r *announcementRepository) Delete(ctx context.Context, id primitive.ObjectID) error {

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil

}

func EnsureAnnouncementIndexes(ctx context.Context, coll *mongo.Collection) error {

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index().SetName("by_date"),
		},
		{
			Keys: bson.D{
				{Key: "station_id", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().SetName("by_station_date"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}

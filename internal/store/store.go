package store

import (
	"context"
	"errors"
	"regexp"
	"time"

	"hapsay-service/helper"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("document not found")

// Unique index names. The field a duplicate-key error reports is derived
// from the index that rejected the write.
const (
	EmailIndex       = "email_unique"
	BadgeNumberIndex = "badge_number_unique"
	CustomIDIndex    = "custom_id_unique"
)

var indexFields = map[string]string{
	EmailIndex:       "email",
	BadgeNumberIndex: "badge_number",
	CustomIDIndex:    "custom_id",
}

var indexPattern = regexp.MustCompile(`index: (\S+)`)

// Connect dials the database and waits for the primary to answer.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// ObjectID parses a hex id. A malformed id can never resolve, so it is
// reported as ErrNotFound.
func ObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return id, nil
}

// OptionalObjectID parses hex when it is non-empty.
func OptionalObjectID(hex string) (*primitive.ObjectID, error) {
	if hex == "" {
		return nil, nil
	}
	id, err := ObjectID(hex)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// DuplicateField reports the unique field a write collided on.
func DuplicateField(err error) (string, bool) {
	if !mongo.IsDuplicateKeyError(err) {
		return "", false
	}
	if m := indexPattern.FindStringSubmatch(err.Error()); m != nil {
		if field, ok := indexFields[m[1]]; ok {
			return field, true
		}
	}
	return "", true
}

// TranslateWrite turns a duplicate-key failure into a DuplicateError and
// wraps anything else as internal.
func TranslateWrite(err error) error {
	if err == nil {
		return nil
	}
	if field, ok := DuplicateField(err); ok {
		if field == "" {
			field = "value"
		}
		return helper.Duplicate(field)
	}
	return helper.Internal(err)
}

// Ping is used by the readiness probe.
func Ping(ctx context.Context, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx, readpref.Primary())
}

// LookupOne joins the document referenced by localField into as.
func LookupOne(from, localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
	}}}
}

// UnwindOptional flattens a LookupOne result, keeping documents whose
// reference is unset or dangling.
func UnwindOptional(field string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$" + field},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
}

const codeIndexNotFound = 27

// IsIndexNotFound reports whether err is the server's "index not found" reply.
func IsIndexNotFound(err error) bool {
	var cmdErr mongo.CommandError
	return errors.As(err, &cmdErr) && cmdErr.Code == codeIndexNotFound
}

// DropIndexIfExists drops the named index and reports whether it was there.
func DropIndexIfExists(ctx context.Context, coll *mongo.Collection, name string) (bool, error) {
	if _, err := coll.Indexes().DropOne(ctx, name); err != nil {
		if IsIndexNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// LogIndexError reports a failed index build on the global logger. The
// repository keeps working, but unique constraints are not enforced until the
// indexes exist.
func LogIndexError(collection string, err error) {
	if err == nil {
		return
	}
	zap.S().Errorw("index creation failed", "collection", collection, "error", err)
}

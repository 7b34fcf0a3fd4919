package store

import (
	"errors"
	"testing"

	"hapsay-service/helper"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func duplicateErr(index string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{
			Code:    11000,
			Message: "E11000 duplicate key error collection: hapsay360.users index: " + index + " dup key: { email: \"a@b.co\" }",
		}},
	}
}

func TestDuplicateField(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		field string
		dup   bool
	}{
		{"email", duplicateErr(EmailIndex), "email", true},
		{"badge", duplicateErr(BadgeNumberIndex), "badge_number", true},
		{"custom id", duplicateErr(CustomIDIndex), "custom_id", true},
		{"unknown index", duplicateErr("legacy_1"), "", true},
		{"other error", errors.New("boom"), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, dup := DuplicateField(tt.err)
			if field != tt.field || dup != tt.dup {
				t.Errorf("got (%q, %v), want (%q, %v)", field, dup, tt.field, tt.dup)
			}
		})
	}
}

func TestTranslateWrite(t *testing.T) {
	if TranslateWrite(nil) != nil {
		t.Fatal("nil should stay nil")
	}

	err := TranslateWrite(duplicateErr(EmailIndex))
	var appErr *helper.AppError
	if !errors.As(err, &appErr) || appErr.Kind != helper.KindDuplicate || appErr.Field != "email" {
		t.Fatalf("got %v, want duplicate email", err)
	}

	if !helper.IsKind(TranslateWrite(errors.New("socket closed")), helper.KindInternal) {
		t.Error("plain failures should be internal")
	}
}

func TestObjectID(t *testing.T) {
	if _, err := ObjectID("not-an-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("malformed id: got %v", err)
	}
	if _, err := ObjectID("64b7f0c2a1b2c3d4e5f60718"); err != nil {
		t.Errorf("valid id: %v", err)
	}

	id, err := OptionalObjectID("")
	if id != nil || err != nil {
		t.Errorf("empty optional id: got (%v, %v)", id, err)
	}
}

func TestIsIndexNotFound(t *testing.T) {
	if !IsIndexNotFound(mongo.CommandError{Code: 27, Message: "index not found with name [username_1]"}) {
		t.Error("code 27 should be index not found")
	}
	if IsIndexNotFound(mongo.CommandError{Code: 11000}) {
		t.Error("duplicate key is not index not found")
	}
	if IsIndexNotFound(errors.New("boom")) {
		t.Error("plain error is not index not found")
	}
}

func TestLogIndexError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	LogIndexError("users", nil)
	if logs.Len() != 0 {
		t.Fatalf("logged %d entries for a nil error", logs.Len())
	}

	LogIndexError("users", duplicateErr(EmailIndex))
	entries := logs.FilterMessage("index creation failed").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries", logs.Len())
	}
	if entries[0].Level != zapcore.ErrorLevel || entries[0].ContextMap()["collection"] != "users" {
		t.Errorf("entry = %+v", entries[0])
	}
}

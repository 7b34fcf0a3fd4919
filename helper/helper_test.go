package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type registerInput struct {
	Name      string `json:"name" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	Email     string `json:"email" validate:"required,emailaddr"`
	Status    string `json:"status" validate:"omitempty,oneof=active inactive"`
	StationID string `json:"station_id" validate:"omitempty,objectid"`
}

func TestValidateMessages(t *testing.T) {
	tests := []struct {
		name string
		in   registerInput
		want string
	}{
		{"missing field", registerInput{Name: "", Password: "secret1", Email: "a@b.co"}, "All fields are required"},
		{"short password", registerInput{Name: "a", Password: "123", Email: "bad"}, "Password must be at least 6 characters long"},
		{"bad email", registerInput{Name: "a", Password: "secret1", Email: "nope@"}, "Invalid email format"},
		{"bad enum", registerInput{Name: "a", Password: "secret1", Email: "a@b.co", Status: "gone"}, "Invalid status value"},
		{"bad object id", registerInput{Name: "a", Password: "secret1", Email: "a@b.co", StationID: "123"}, "Invalid station_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in, "All fields are required")
			if !IsKind(err, KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var appErr *AppError
			errors.As(err, &appErr)
			if appErr.Message != tt.want {
				t.Errorf("expected %q, got %q", tt.want, appErr.Message)
			}
		})
	}

	if err := Validate(registerInput{Name: "a", Password: "secret1", Email: "a@b.co"}, "x"); err != nil {
		t.Errorf("expected valid input, got %v", err)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("x"), http.StatusBadRequest},
		{Duplicate("email"), http.StatusBadRequest},
		{Auth(), http.StatusBadRequest},
		{Conflict("x"), http.StatusBadRequest},
		{NotFound("x"), http.StatusNotFound},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NotFound("x")), http.StatusNotFound},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.err); got != tt.want {
			t.Errorf("StatusOf(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestSendAppErrorHidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	SendAppError(c, errors.New("connection refused to 10.0.0.4:27017"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Message != ErrServer {
		t.Errorf("unexpected body %+v", body)
	}
	if body.Error != string(KindInternal) {
		t.Errorf("expected error kind %q, got %q", KindInternal, body.Error)
	}
}

func TestSendAppErrorDuplicate(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	SendAppError(c, Duplicate("badge_number"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body Response
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message != "badge_number already exists" {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestSendListKeepsEmptySlice(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	SendList(c, []string{}, 0)

	var raw map[string]json.RawMessage
	_ = json.Unmarshal(rec.Body.Bytes(), &raw)
	if string(raw["data"]) != "[]" {
		t.Errorf("expected empty array, got %s", raw["data"])
	}
	if string(raw["count"]) != "0" {
		t.Errorf("expected count 0, got %s", raw["count"])
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2025-03-14", "2025-03-14T08:30", "2025-03-14 08:30:00", "2025-03-14T08:30:00+08:00"} {
		got, err := ParseDate(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got.Year() != 2025 || got.Month() != 3 {
			t.Errorf("%q parsed as %v", in, got)
		}
	}
	if _, err := ParseDate("14/03/2025"); err == nil {
		t.Error("expected an error for an unsupported layout")
	}
}

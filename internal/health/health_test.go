package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func serve(h *Handler, path string) (*httptest.ResponseRecorder, Response) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var resp Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestReady(t *testing.T) {
	tests := []struct {
		name   string
		db     Pinger
		code   int
		status string
	}{
		{"db up", PingerFunc(func(context.Context) error { return nil }), http.StatusOK, statusUp},
		{"db down", PingerFunc(func(context.Context) error { return errors.New("no primary") }), http.StatusServiceUnavailable, statusDown},
		{"no db", nil, http.StatusServiceUnavailable, statusDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := serve(NewHandler(tt.db, "test"), "/health/ready")
			if w.Code != tt.code || resp.Status != tt.status {
				t.Errorf("got %d %s, want %d %s", w.Code, resp.Status, tt.code, tt.status)
			}
			if resp.Checks["database"].Status != tt.status {
				t.Errorf("database check = %+v", resp.Checks["database"])
			}
		})
	}
}

func TestLiveIgnoresDatabase(t *testing.T) {
	down := PingerFunc(func(context.Context) error { return errors.New("down") })
	for _, path := range []string{"/health", "/health/live"} {
		w, resp := serve(NewHandler(down, ""), path)
		if w.Code != http.StatusOK || resp.Status != statusUp || resp.Version != "unknown" {
			t.Errorf("%s: got %d %+v", path, w.Code, resp)
		}
	}
}

package station

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHandlerCreateStation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, _, _ := newService()
	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewStationHandler(svc))

	body := `{"name":"Central","address":"1 Main St","phone_number":"123","landline":"456"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/stations/create", strings.NewReader(body)))

	if w.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID       string `json:"_id"`
			CustomID string `json:"custom_id"`
		} `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success || !customIDPattern.MatchString(resp.Data.CustomID) {
		t.Fatalf("body %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stations/getStations", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), resp.Data.CustomID) {
		t.Errorf("list: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/stations/create", strings.NewReader(`{"name":"x"}`)))
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), MsgRequired) {
		t.Errorf("missing fields: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/stations/"+resp.Data.ID, nil))
	if w.Code != http.StatusOK {
		t.Errorf("delete: %d %s", w.Code, w.Body.String())
	}
}

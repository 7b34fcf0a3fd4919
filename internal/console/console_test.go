package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"hapsay-service/internal/realtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestClientSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Email already registered","error":"duplicate_error"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Do(context.Background(), http.MethodPost, "/api/officers/", map[string]string{}, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Message != "Email already registered" || apiErr.Status != http.StatusBadRequest {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestClientNonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Do(context.Background(), http.MethodGet, "/api/users/", nil, nil)
	if err == nil || err.Error() != "Server error. Status: 502" {
		t.Errorf("err = %v", err)
	}
}

func TestClientSendsBearerToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"data":{"email":"a@b.co"}}`))
	}))
	defer srv.Close()

	var out struct {
		Email string `json:"email"`
	}
	if _, err := NewClient(srv.URL+"/", "tok").Do(context.Background(), http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if auth != "Bearer tok" || out.Email != "a@b.co" {
		t.Errorf("auth = %q, out = %+v", auth, out)
	}
}

type listServer struct {
	hits atomic.Int32
	body atomic.Value
}

func newListServer(t *testing.T, body string) (*listServer, *httptest.Server) {
	t.Helper()
	ls := &listServer{}
	ls.body.Store(body)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ls.hits.Add(1)
		_, _ = w.Write([]byte(ls.body.Load().(string)))
	}))
	t.Cleanup(srv.Close)
	return ls, srv
}

func TestListViewFetchesOnceUntilInvalidated(t *testing.T) {
	ls, srv := newListServer(t, `{"success":true,"count":1,"data":[{"_id":"507f1f77bcf86cd799439011","name":"Central","custom_id":"PS-abc","address":"Rizal Ave","contact":{"phone_number":"0917"},"officers":[]}]}`)
	client, cache := NewClient(srv.URL, ""), NewQueryCache()
	ctx := context.Background()

	var out bytes.Buffer
	if err := StationsView.Render(ctx, &out, client, cache); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), "Loading stations...") || !strings.Contains(out.String(), "Central") {
		t.Errorf("first render:\n%s", out.String())
	}

	out.Reset()
	_ = StationsView.Render(ctx, &out, client, cache)
	if strings.Contains(out.String(), "Loading") || ls.hits.Load() != 1 {
		t.Errorf("second render refetched: hits=%d\n%s", ls.hits.Load(), out.String())
	}

	cache.Invalidate(KeyStations)
	_ = StationsView.Render(ctx, &out, client, cache)
	if ls.hits.Load() != 2 {
		t.Errorf("hits after invalidate = %d", ls.hits.Load())
	}
}

func TestListViewEmptyAndErrorStates(t *testing.T) {
	ctx := context.Background()

	_, srv := newListServer(t, `{"success":true,"count":0,"data":[]}`)
	var out bytes.Buffer
	if err := BlotterView.Render(ctx, &out, NewClient(srv.URL, ""), NewQueryCache()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), EmptyMessage) {
		t.Errorf("empty state:\n%s", out.String())
	}

	_, failing := newListServer(t, `{"success":false,"message":"Server Error"}`)
	out.Reset()
	cache := NewQueryCache()
	if err := ClearanceView.Render(ctx, &out, NewClient(failing.URL, ""), cache); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(out.String(), "Error: Server Error") {
		t.Errorf("error state:\n%s", out.String())
	}
	if cache.Cached(KeyClearance) {
		t.Error("failed fetch was cached")
	}
}

func TestStationFormRequiresFields(t *testing.T) {
	_, _, err := StationForm{Name: "Central"}.Submit(context.Background(), NewClient("http://unused", ""), NewQueryCache())

	var missingErr *MissingFieldsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("err = %v", err)
	}
	if strings.Join(missingErr.Fields, ",") != "address,phone_number,landline" {
		t.Errorf("fields = %v", missingErr.Fields)
	}

	if got := (StationForm{ID: "abc"}).Missing(); len(got) != 0 {
		t.Errorf("edit form missing = %v", got)
	}
}

func TestOfficerFormInvalidatesOnSuccess(t *testing.T) {
	var method, path string
	var sent map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&sent)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"Officer created successfully","data":{"first_name":"Jose"}}`))
	}))
	defer srv.Close()

	cache := NewQueryCache()
	cache.put(KeyOfficers, "stale")
	cache.put(KeyStations, "stale")
	cache.put(KeyBlotter, "kept")

	form := OfficerForm{FirstName: "Jose", LastName: "Rizal", Email: "jose@pnp.gov.ph", Password: "secret1"}
	officer, msg, err := form.Submit(context.Background(), NewClient(srv.URL, ""), cache)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if method != http.MethodPost || path != "/api/officers/" || sent["email"] != "jose@pnp.gov.ph" {
		t.Errorf("request %s %s %v", method, path, sent)
	}
	if msg != "Officer created successfully" || officer.FirstName != "Jose" {
		t.Errorf("msg = %q, officer = %+v", msg, officer)
	}
	if cache.Cached(KeyOfficers) || cache.Cached(KeyStations) || !cache.Cached(KeyBlotter) {
		t.Error("wrong keys invalidated")
	}
}

func TestOfficerStatusFormKeepsCacheOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Invalid status value"}`))
	}))
	defer srv.Close()

	cache := NewQueryCache()
	cache.put(KeyOfficers, "cached")

	_, _, err := OfficerStatusForm{ID: "abc", Status: "retired"}.Submit(context.Background(), NewClient(srv.URL, ""), cache)
	if err == nil || err.Error() != "Invalid status value" {
		t.Errorf("err = %v", err)
	}
	if !cache.Cached(KeyOfficers) {
		t.Error("failed mutation invalidated cache")
	}
}

func TestStreamURL(t *testing.T) {
	tests := map[string]string{
		"http://localhost:3000": "ws://localhost:3000/api/ws",
		"https://api.example/":  "wss://api.example/api/ws",
	}
	for in, want := range tests {
		if got := StreamURL(in); got != want {
			t.Errorf("StreamURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWatchInvalidatesPublishedKeys(t *testing.T) {
	hub := realtime.NewHub(zap.NewNop().Sugar(), nil)
	r := gin.New()
	r.GET("/api/ws", hub.ServeWS)
	srv := httptest.NewServer(r)
	defer srv.Close()

	cache := NewQueryCache()
	cache.put(KeyStations, "stale")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan realtime.Event, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, srv.URL, cache, func(ev realtime.Event) { got <- ev })
	}()

	for hub.Clients() == 0 {
		if ctx.Err() != nil {
			t.Fatal("watcher never connected")
		}
		time.Sleep(5 * time.Millisecond)
	}
	hub.Publish(realtime.Event{Key: KeyStations, Method: http.MethodPost, Path: "/api/stations/create"})

	select {
	case ev := <-got:
		if ev.Key != KeyStations {
			t.Errorf("event = %+v", ev)
		}
	case <-ctx.Done():
		t.Fatal("no event received")
	}
	if cache.Cached(KeyStations) {
		t.Error("stations still cached after event")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("watch returned %v", err)
	}
}

package station

import (
	"context"
	"regexp"
	"sync"
	"testing"

	"hapsay-service/helper"
	"hapsay-service/internal/models"
	"hapsay-service/internal/store"
	"hapsay-service/pkg/idgen"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var customIDPattern = regexp.MustCompile(`^PS-[A-Za-z0-9_-]{10}$`)

type fakeStationRepository struct {
	mu            sync.Mutex
	stations      map[primitive.ObjectID]models.Station
	rejectInserts int
	inserts       int
}

func newFakeStationRepository() *fakeStationRepository {
	return &fakeStationRepository{stations: make(map[primitive.ObjectID]models.Station)}
}

func (r *fakeStationRepository) Create(_ context.Context, station *models.Station) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserts++
	if r.rejectInserts > 0 {
		r.rejectInserts--
		return helper.Duplicate("custom_id")
	}
	r.stations[station.ID] = *station
	return nil
}

func (r *fakeStationRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Station, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.stations[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (r *fakeStationRepository) FindView(ctx context.Context, id primitive.ObjectID) (*models.StationView, error) {
	st, _ := r.FindByID(ctx, id)
	if st == nil {
		return nil, nil
	}
	return &models.StationView{Station: *st, Officers: []models.Officer{}}, nil
}

func (r *fakeStationRepository) FindAll(_ context.Context) ([]*models.StationView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.StationView, 0, len(r.stations))
	for _, st := range r.stations {
		out = append(out, &models.StationView{Station: st, Officers: []models.Officer{}})
	}
	return out, nil
}

func (r *fakeStationRepository) FindWithoutCustomID(_ context.Context) ([]*models.Station, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Station
	for _, st := range r.stations {
		if st.CustomID == "" {
			st := st
			out = append(out, &st)
		}
	}
	return out, nil
}

func (r *fakeStationRepository) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.stations[id]
	return ok, nil
}

func (r *fakeStationRepository) CustomIDExists(_ context.Context, customID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, st := range r.stations {
		if st.CustomID == customID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStationRepository) Update(_ context.Context, station *models.Station) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stations[station.ID]; !ok {
		return store.ErrNotFound
	}
	r.stations[station.ID] = *station
	return nil
}

func (r *fakeStationRepository) SetCustomID(_ context.Context, id primitive.ObjectID, customID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.stations[id]
	st.CustomID = customID
	r.stations[id] = st
	return nil
}

func (r *fakeStationRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stations[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.stations, id)
	return nil
}

func (r *fakeStationRepository) AddOfficer(_ context.Context, stationID, officerID primitive.ObjectID) error {
	return nil
}

func (r *fakeStationRepository) RemoveOfficer(_ context.Context, stationID, officerID primitive.ObjectID) error {
	return nil
}

type fakeDetacher struct {
	cleared []primitive.ObjectID
}

func (d *fakeDetacher) ClearStation(_ context.Context, stationID primitive.ObjectID) (int64, error) {
	d.cleared = append(d.cleared, stationID)
	return 2, nil
}

func newService() (StationService, *fakeStationRepository, *fakeDetacher) {
	repo := newFakeStationRepository()
	det := &fakeDetacher{}
	return NewStationService(repo, det, idgen.NewAssigner(), zap.NewNop().Sugar()), repo, det
}

func centralRequest() *CreateStationRequest {
	return &CreateStationRequest{Name: "Central", Address: "1 Main St", PhoneNumber: "123", Landline: "456"}
}

func TestCreateStationAssignsCustomID(t *testing.T) {
	svc, _, _ := newService()

	got, err := svc.CreateStation(context.Background(), centralRequest())
	if err != nil {
		t.Fatal(err)
	}
	if !customIDPattern.MatchString(got.CustomID) {
		t.Errorf("custom id %q does not look like PS-<10>", got.CustomID)
	}
	if got.Contact.Landline != "456" || got.OfficerIDs == nil {
		t.Errorf("unexpected station %+v", got)
	}
}

func TestCreateStationRetriesOnInsertCollision(t *testing.T) {
	svc, repo, _ := newService()
	repo.rejectInserts = 2

	if _, err := svc.CreateStation(context.Background(), centralRequest()); err != nil {
		t.Fatal(err)
	}
	if repo.inserts != 3 {
		t.Errorf("inserts = %d, want 3", repo.inserts)
	}

	repo.rejectInserts = insertAttempts
	_, err := svc.CreateStation(context.Background(), centralRequest())
	if !helper.IsKind(err, helper.KindDuplicate) {
		t.Errorf("expected the collision to surface after %d attempts, got %v", insertAttempts, err)
	}
}

func TestCreateStationRequiredFields(t *testing.T) {
	svc, repo, _ := newService()

	req := centralRequest()
	req.Landline = ""
	_, err := svc.CreateStation(context.Background(), req)
	if appErr, ok := err.(*helper.AppError); !ok || appErr.Message != MsgRequired {
		t.Fatalf("got %v", err)
	}

	req = centralRequest()
	req.Email = "not-an-email"
	if _, err := svc.CreateStation(context.Background(), req); !helper.IsKind(err, helper.KindValidation) {
		t.Errorf("bad contact email accepted: %v", err)
	}
	if len(repo.stations) != 0 {
		t.Error("nothing should have been written")
	}
}

func TestUpdateStation(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()
	created, _ := svc.CreateStation(ctx, centralRequest())

	name := "Central Precinct"
	lat := "14.5995"
	got, err := svc.UpdateStation(ctx, created.ID.Hex(), &UpdateStationRequest{Name: &name, Latitude: &lat})
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != name || got.Location.Latitude != lat || got.Address != "1 Main St" || got.CustomID != created.CustomID {
		t.Errorf("unexpected merge %+v", got)
	}

	blank := " "
	_, err = svc.UpdateStation(ctx, created.ID.Hex(), &UpdateStationRequest{Address: &blank})
	if appErr, ok := err.(*helper.AppError); !ok || appErr.Message != MsgUpdateRequired {
		t.Errorf("blank address: %v", err)
	}

	_, err = svc.UpdateStation(ctx, primitive.NewObjectID().Hex(), &UpdateStationRequest{Name: &name})
	if !helper.IsKind(err, helper.KindNotFound) {
		t.Errorf("unknown station: %v", err)
	}
}

func TestDeleteStationDetachesOfficers(t *testing.T) {
	svc, _, det := newService()
	ctx := context.Background()
	created, _ := svc.CreateStation(ctx, centralRequest())

	deleted, err := svc.DeleteStation(ctx, created.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if deleted.Name != "Central" {
		t.Errorf("deleted = %+v", deleted)
	}
	if len(det.cleared) != 1 || det.cleared[0] != created.ID {
		t.Errorf("cleared = %v", det.cleared)
	}

	if _, err := svc.DeleteStation(ctx, created.ID.Hex()); !helper.IsKind(err, helper.KindNotFound) {
		t.Errorf("second delete: %v", err)
	}
}

func TestBackfillCustomIDs(t *testing.T) {
	svc, repo, _ := newService()
	ctx := context.Background()

	legacy := models.Station{ID: primitive.NewObjectID(), Name: "Old Town"}
	repo.stations[legacy.ID] = legacy
	created, _ := svc.CreateStation(ctx, centralRequest())

	n, err := svc.BackfillCustomIDs(ctx)
	if err != nil || n != 1 {
		t.Fatalf("got (%d, %v), want 1", n, err)
	}
	if got := repo.stations[legacy.ID].CustomID; !customIDPattern.MatchString(got) {
		t.Errorf("legacy custom id %q", got)
	}
	if repo.stations[created.ID].CustomID != created.CustomID {
		t.Error("existing custom id was replaced")
	}
}

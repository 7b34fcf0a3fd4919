package officer

import (
	"context"
	"sort"
	"sync"

	"hapsay-service/helper"
	"hapsay-service/internal/models"
	"hapsay-service/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRoster struct {
	mu       sync.Mutex
	stations map[primitive.ObjectID]*models.StationView
}

func newFakeRoster(names ...string) (*fakeRoster, []primitive.ObjectID) {
	r := &fakeRoster{stations: make(map[primitive.ObjectID]*models.StationView)}
	ids := make([]primitive.ObjectID, 0, len(names))
	for _, name := range names {
		id := primitive.NewObjectID()
		r.stations[id] = &models.StationView{Station: models.Station{ID: id, Name: name}}
		ids = append(ids, id)
	}
	return r, ids
}

func (r *fakeRoster) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.stations[id]
	return ok, nil
}

func (r *fakeRoster) AddOfficer(_ context.Context, stationID, officerID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.stations[stationID]
	if !ok {
		return nil
	}
	for _, id := range st.OfficerIDs {
		if id == officerID {
			return nil
		}
	}
	st.OfficerIDs = append(st.OfficerIDs, officerID)
	return nil
}

func (r *fakeRoster) RemoveOfficer(_ context.Context, stationID, officerID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.stations[stationID]
	if !ok {
		return nil
	}
	kept := st.OfficerIDs[:0]
	for _, id := range st.OfficerIDs {
		if id != officerID {
			kept = append(kept, id)
		}
	}
	st.OfficerIDs = kept
	return nil
}

func (r *fakeRoster) roster(stationID primitive.ObjectID) []primitive.ObjectID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]primitive.ObjectID(nil), r.stations[stationID].OfficerIDs...)
}

func (r *fakeRoster) summary(id *primitive.ObjectID) *models.StationSummary {
	if id == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.stations[*id]
	if !ok {
		return nil
	}
	return &models.StationSummary{ID: st.ID, Name: st.Name, Address: st.Address}
}

type fakeOfficerRepository struct {
	mu       sync.Mutex
	officers map[primitive.ObjectID]models.Officer
	roster   *fakeRoster
}

func newFakeOfficerRepository(roster *fakeRoster) *fakeOfficerRepository {
	return &fakeOfficerRepository{officers: make(map[primitive.ObjectID]models.Officer), roster: roster}
}

func (r *fakeOfficerRepository) Create(_ context.Context, officer *models.Officer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.officers {
		if o.Email == officer.Email {
			return helper.Duplicate("email")
		}
		if officer.BadgeNumber != "" && o.BadgeNumber == officer.BadgeNumber {
			return helper.Duplicate("badge_number")
		}
	}
	if officer.ID.IsZero() {
		officer.ID = primitive.NewObjectID()
	}
	r.officers[officer.ID] = *officer
	return nil
}

func (r *fakeOfficerRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Officer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.officers[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *fakeOfficerRepository) find(match func(models.Officer) bool) (*models.Officer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.officers {
		if match(o) {
			return &o, nil
		}
	}
	return nil, nil
}

func (r *fakeOfficerRepository) FindByEmail(_ context.Context, email string) (*models.Officer, error) {
	return r.find(func(o models.Officer) bool { return o.Email == email })
}

func (r *fakeOfficerRepository) FindByBadge(_ context.Context, badge string) (*models.Officer, error) {
	return r.find(func(o models.Officer) bool { return o.BadgeNumber == badge })
}

func (r *fakeOfficerRepository) toView(o models.Officer) *models.OfficerView {
	o.Password = ""
	return &models.OfficerView{Officer: o, Station: r.roster.summary(o.StationID)}
}

func (r *fakeOfficerRepository) FindView(_ context.Context, id primitive.ObjectID) (*models.OfficerView, error) {
	r.mu.Lock()
	o, ok := r.officers[id]
	r.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return r.toView(o), nil
}

func (r *fakeOfficerRepository) FindAll(_ context.Context) ([]*models.OfficerView, error) {
	r.mu.Lock()
	all := make([]models.Officer, 0, len(r.officers))
	for _, o := range r.officers {
		all = append(all, o)
	}
	r.mu.Unlock()

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	out := make([]*models.OfficerView, 0, len(all))
	for _, o := range all {
		out = append(out, r.toView(o))
	}
	return out, nil
}

func (r *fakeOfficerRepository) FindByStation(_ context.Context, stationID primitive.ObjectID) ([]*models.OfficerView, error) {
	r.mu.Lock()
	var matched []models.Officer
	for _, o := range r.officers {
		if o.StationID != nil && *o.StationID == stationID {
			matched = append(matched, o)
		}
	}
	r.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Rank != matched[j].Rank {
			return matched[i].Rank < matched[j].Rank
		}
		return matched[i].LastName < matched[j].LastName
	})
	out := make([]*models.OfficerView, 0, len(matched))
	for _, o := range matched {
		out = append(out, r.toView(o))
	}
	return out, nil
}

func (r *fakeOfficerRepository) Update(_ context.Context, officer *models.Officer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.officers[officer.ID]; !ok {
		return store.ErrNotFound
	}
	r.officers[officer.ID] = *officer
	return nil
}

func (r *fakeOfficerRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.officers[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.officers, id)
	return nil
}

func (r *fakeOfficerRepository) ClearStation(_ context.Context, stationID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, o := range r.officers {
		if o.StationID != nil && *o.StationID == stationID {
			o.StationID = nil
			r.officers[id] = o
			n++
		}
	}
	return n, nil
}

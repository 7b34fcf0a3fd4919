package clearance

import (
	"context"
	"sort"
	"sync"

	"hapsay-service/internal/models"
	"hapsay-service/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUsers map[primitive.ObjectID]*models.User

func (f fakeUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	return f[id], nil
}

type fakeStations map[primitive.ObjectID]bool

func (f fakeStations) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	return f[id], nil
}

type fakeClearanceRepository struct {
	mu         sync.Mutex
	clearances map[primitive.ObjectID]models.Clearance
	users      fakeUsers
}

func newFakeClearanceRepository(users fakeUsers) *fakeClearanceRepository {
	return &fakeClearanceRepository{clearances: make(map[primitive.ObjectID]models.Clearance), users: users}
}

func (r *fakeClearanceRepository) Create(_ context.Context, clearance *models.Clearance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearances[clearance.ID] = *clearance
	return nil
}

func (r *fakeClearanceRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Clearance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clearances[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeClearanceRepository) toView(c models.Clearance) *models.ClearanceView {
	v := &models.ClearanceView{Clearance: c}
	if u := r.users[c.UserID]; u != nil {
		copied := *u
		copied.Password = ""
		v.User = &copied
	}
	return v
}

func (r *fakeClearanceRepository) FindView(ctx context.Context, id primitive.ObjectID) (*models.ClearanceView, error) {
	c, _ := r.FindByID(ctx, id)
	if c == nil {
		return nil, nil
	}
	return r.toView(*c), nil
}

func (r *fakeClearanceRepository) FindAll(_ context.Context, q Query) ([]*models.ClearanceView, error) {
	r.mu.Lock()
	var matched []models.Clearance
	for _, c := range r.clearances {
		if q.Status != "" && c.Status != q.Status {
			continue
		}
		if q.UserID != nil && c.UserID != *q.UserID {
			continue
		}
		matched = append(matched, c)
	}
	r.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	out := make([]*models.ClearanceView, 0, len(matched))
	for _, c := range matched {
		out = append(out, r.toView(c))
	}
	return out, nil
}

func (r *fakeClearanceRepository) Update(_ context.Context, clearance *models.Clearance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clearances[clearance.ID]; !ok {
		return store.ErrNotFound
	}
	r.clearances[clearance.ID] = *clearance
	return nil
}

func (r *fakeClearanceRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clearances[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.clearances, id)
	return nil
}

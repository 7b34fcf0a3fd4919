package blotter

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

type fakeOfficers map[primitive.ObjectID]*models.Officer

func (f fakeOfficers) FindByID(_ context.Context, id primitive.ObjectID) (*models.Officer, error) {
	return f[id], nil
}

type fakeBlotterRepository struct {
	mu       sync.Mutex
	blotters map[primitive.ObjectID]models.Blotter
	users    fakeUsers
	officers fakeOfficers
}

func newFakeBlotterRepository(users fakeUsers, officers fakeOfficers) *fakeBlotterRepository {
	return &fakeBlotterRepository{
		blotters: make(map[primitive.ObjectID]models.Blotter),
		users:    users,
		officers: officers,
	}
}

func (r *fakeBlotterRepository) Create(_ context.Context, blotter *models.Blotter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if blotter.ID.IsZero() {
		blotter.ID = primitive.NewObjectID()
	}
	r.blotters[blotter.ID] = *blotter
	return nil
}

func (r *fakeBlotterRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Blotter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blotters[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBlotterRepository) toView(b models.Blotter) *models.BlotterView {
	v := &models.BlotterView{Blotter: b}
	if u := r.users[b.UserID]; u != nil {
		copied := *u
		copied.Password = ""
		v.User = &copied
	}
	if b.AssignedOfficer != nil {
		if o := r.officers[*b.AssignedOfficer]; o != nil {
			copied := *o
			copied.Password = ""
			v.Officer = &copied
		}
	}
	return v
}

func (r *fakeBlotterRepository) FindView(ctx context.Context, id primitive.ObjectID) (*models.BlotterView, error) {
	b, _ := r.FindByID(ctx, id)
	if b == nil {
		return nil, nil
	}
	return r.toView(*b), nil
}

func (r *fakeBlotterRepository) FindAll(_ context.Context, q Query) ([]*models.BlotterView, error) {
	r.mu.Lock()
	var matched []models.Blotter
	for _, b := range r.blotters {
		if q.Status != "" && b.Status != q.Status {
			continue
		}
		if q.UserID != nil && b.UserID != *q.UserID {
			continue
		}
		if q.OfficerID != nil && (b.AssignedOfficer == nil || *b.AssignedOfficer != *q.OfficerID) {
			continue
		}
		matched = append(matched, b)
	}
	r.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	out := make([]*models.BlotterView, 0, len(matched))
	for _, b := range matched {
		out = append(out, r.toView(b))
	}
	return out, nil
}

func (r *fakeBlotterRepository) Update(_ context.Context, blotter *models.Blotter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blotters[blotter.ID]; !ok {
		return store.ErrNotFound
	}
	r.blotters[blotter.ID] = *blotter
	return nil
}

func (r *fakeBlotterRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blotters[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.blotters, id)
	return nil
}

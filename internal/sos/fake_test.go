package sos

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

type fakeSOSRepository struct {
	mu       sync.Mutex
	requests map[primitive.ObjectID]models.SOSRequest
}

func newFakeSOSRepository() *fakeSOSRepository {
	return &fakeSOSRepository{requests: make(map[primitive.ObjectID]models.SOSRequest)}
}

func (r *fakeSOSRepository) Create(_ context.Context, req *models.SOSRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[req.ID] = *req
	return nil
}

func (r *fakeSOSRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.SOSRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

func (r *fakeSOSRepository) FindAll(_ context.Context, q Query) ([]*models.SOSRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.SOSRequest, 0)
	for _, req := range r.requests {
		if q.Status != "" && req.Status != q.Status {
			continue
		}
		if q.StationID != nil && req.NearestStationID != *q.StationID {
			continue
		}
		req := req
		out = append(out, &req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeSOSRepository) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return store.ErrNotFound
	}
	req.Status = status
	req.UpdatedAt = nowUTC()
	r.requests[id] = req
	return nil
}

func (r *fakeSOSRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.requests, id)
	return nil
}

package sos

import (
	"context"
	"errors"
	"strings"
	"time"

	"hapsay-service/helper"
	"hapsay-service/internal/models"
	"hapsay-service/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MsgNotFound        = "SOS request not found"
	MsgUserNotFound    = "User not found"
	MsgStationNotFound = "Station not found"
	MsgRequired        = "User, nearest station and location are required"
	MsgStatusRequired  = "Status is required"
)

var nowUTC = func() time.Time { return time.Now().UTC() }

type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type StationChecker interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type SOSService interface {
	CreateSOS(ctx context.Context, req *CreateSOSRequest) (*models.SOSRequest, error)
	GetSOSRequests(ctx context.Context, filter *ListFilter) ([]*models.SOSRequest, error)
	GetSOSByID(ctx context.Context, id string) (*models.SOSRequest, error)
	UpdateSOSStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*models.SOSRequest, error)
	DeleteSOS(ctx context.Context, id string) error
}

type sosService struct {
	sosRepository SOSRepository
	users         UserFinder
	stations      StationChecker
}

func NewSOSService(repo SOSRepository, users UserFinder, stations StationChecker) SOSService {
	return &sosService{
		sosRepository: repo,
		users:         users,
		stations:      stations,
	}
}

func (s *sosService) CreateSOS(ctx context.Context, req *CreateSOSRequest) (*models.SOSRequest, error) {

	if err := helper.Validate(req, MsgRequired); err != nil {
		return nil, err
	}

	userID, err := store.ObjectID(req.UserID)
	if err != nil {
		return nil, helper.NotFound(MsgUserNotFound)
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, helper.NotFound(MsgUserNotFound)
	}

	stationID, err := store.ObjectID(req.NearestStationID)
	if err != nil {
		return nil, helper.NotFound(MsgStationNotFound)
	}
	ok, err := s.stations.Exists(ctx, stationID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, helper.NotFound(MsgStationNotFound)
	}

	now := nowUTC()
	sos := &models.SOSRequest{
		ID:               primitive.NewObjectID(),
		UserID:           userID,
		NearestStationID: stationID,
		Location:         *req.Location,
		Status:           models.SOSPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.sosRepository.Create(ctx, sos); err != nil {
		return nil, err
	}
	return sos, nil

}

func (s *sosService) GetSOSRequests(ctx context.Context, filter *ListFilter) ([]*models.SOSRequest, error) {

	stationID, err := store.OptionalObjectID(filter.StationID)
	if err != nil {
		return nil, helper.Validation("Invalid station_id")
	}

	return s.sosRepository.FindAll(ctx, Query{
		Status:    strings.TrimSpace(filter.Status),
		StationID: stationID,
	})

}

func (s *sosService) GetSOSByID(ctx context.Context, id string) (*models.SOSRequest, error) {

	objID, err := store.ObjectID(id)
	if err != nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	sos, err := s.sosRepository.FindByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if sos == nil {
		return nil, helper.NotFound(MsgNotFound)
	}
	return sos, nil

}

// UpdateSOSStatus accepts any non-empty status; responders use free text.
func (s *sosService) UpdateSOSStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*models.SOSRequest, error) {

	status := strings.TrimSpace(req.Status)
	if status == "" {
		return nil, helper.Validation(MsgStatusRequired)
	}

	objID, err := store.ObjectID(id)
	if err != nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	err = s.sosRepository.UpdateStatus(ctx, objID, status)
	if errors.Is(err, store.ErrNotFound) {
		return nil, helper.NotFound(MsgNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s.GetSOSByID(ctx, id)

}

func (s *sosService) DeleteSOS(ctx context.Context, id string) error {

	objID, err := store.ObjectID(id)
	if err != nil {
		return helper.NotFound(MsgNotFound)
	}

	err = s.sosRepository.Delete(ctx, objID)
	if errors.Is(err, store.ErrNotFound) {
		return helper.NotFound(MsgNotFound)
	}
	return err

}

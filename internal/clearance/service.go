package clearance

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
	MsgNotFound        = "Clearance not found"
	MsgUserNotFound    = "User not found"
	MsgStationNotFound = "Station not found"
	MsgRequired        = "User ID and purpose are required"
	MsgInvalidDate     = "Invalid appointmentDate"
)

type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type StationChecker interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type ClearanceService interface {
	CreateClearance(ctx context.Context, req *CreateClearanceRequest) (*models.Clearance, error)
	GetClearances(ctx context.Context, filter *ListFilter) ([]*models.ClearanceView, error)
	GetClearanceByID(ctx context.Context, id string) (*models.ClearanceView, error)
	UpdateClearance(ctx context.Context, id string, req *UpdateClearanceRequest) (*models.ClearanceView, error)
	DeleteClearance(ctx context.Context, id string) error
}

type clearanceService struct {
	clearanceRepository ClearanceRepository
	users               UserFinder
	stations            StationChecker
	now                 func() time.Time
}

func NewClearanceService(repo ClearanceRepository, users UserFinder, stations StationChecker) ClearanceService {
	return &clearanceService{
		clearanceRepository: repo,
		users:               users,
		stations:            stations,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

func (s *clearanceService) CreateClearance(ctx context.Context, req *CreateClearanceRequest) (*models.Clearance, error) {

	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Purpose) == "" {
		return nil, helper.Validation(MsgRequired)
	}
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

	stationID, err := s.resolveStation(ctx, req.StationID)
	if err != nil {
		return nil, err
	}

	appointment, err := parseAppointment(req.AppointmentDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	clearance := &models.Clearance{
		ID:              primitive.NewObjectID(),
		UserID:          userID,
		StationID:       stationID,
		Purpose:         req.Purpose,
		AppointmentDate: appointment,
		Price:           req.Price,
		Status:          models.ClearancePending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.clearanceRepository.Create(ctx, clearance); err != nil {
		return nil, err
	}
	return clearance, nil

}

func (s *clearanceService) GetClearances(ctx context.Context, filter *ListFilter) ([]*models.ClearanceView, error) {

	q := Query{Status: strings.TrimSpace(filter.Status)}

	userID, err := store.OptionalObjectID(filter.UserID)
	if err != nil {
		return nil, helper.Validation("Invalid user_id")
	}
	q.UserID = userID

	return s.clearanceRepository.FindAll(ctx, q)

}

func (s *clearanceService) GetClearanceByID(ctx context.Context, id string) (*models.ClearanceView, error) {

	objID, err := store.ObjectID(id)
	if err != nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	return s.view(ctx, objID)

}

func (s *clearanceService) UpdateClearance(ctx context.Context, id string, req *UpdateClearanceRequest) (*models.ClearanceView, error) {

	if err := helper.Validate(req, MsgRequired); err != nil {
		return nil, err
	}

	objID, err := store.ObjectID(id)
	if err != nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	clearance, err := s.clearanceRepository.FindByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if clearance == nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	if req.Purpose != nil {
		if strings.TrimSpace(*req.Purpose) == "" {
			return nil, helper.Validation(MsgRequired)
		}
		clearance.Purpose = *req.Purpose
	}
	if req.StationID != nil {
		if clearance.StationID, err = s.resolveStation(ctx, *req.StationID); err != nil {
			return nil, err
		}
	}
	if req.AppointmentDate != nil {
		if clearance.AppointmentDate, err = parseAppointment(*req.AppointmentDate); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		clearance.Price = req.Price
	}
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		clearance.Status = strings.TrimSpace(*req.Status)
	}
	if req.Payment != nil {
		clearance.Payment = req.Payment
	}
	clearance.UpdatedAt = s.now()

	err = s.clearanceRepository.Update(ctx, clearance)
	if errors.Is(err, store.ErrNotFound) {
		return nil, helper.NotFound(MsgNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s.view(ctx, clearance.ID)

}

func (s *clearanceService) DeleteClearance(ctx context.Context, id string) error {

	objID, err := store.ObjectID(id)
	if err != nil {
		return helper.NotFound(MsgNotFound)
	}

	err = s.clearanceRepository.Delete(ctx, objID)
	if errors.Is(err, store.ErrNotFound) {
		return helper.NotFound(MsgNotFound)
	}
	return err

}

func (s *clearanceService) view(ctx context.Context, id primitive.ObjectID) (*models.ClearanceView, error) {

	v, err := s.clearanceRepository.FindView(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, helper.NotFound(MsgNotFound)
	}
	return v, nil

}

// resolveStation checks an optional station reference; empty clears it.
func (s *clearanceService) resolveStation(ctx context.Context, raw string) (*primitive.ObjectID, error) {

	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	id, err := store.ObjectID(raw)
	if err != nil {
		return nil, helper.NotFound(MsgStationNotFound)
	}

	ok, err := s.stations.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, helper.NotFound(MsgStationNotFound)
	}
	return &id, nil

}

func parseAppointment(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := helper.ParseDate(raw)
	if err != nil {
		return nil, helper.Validation(MsgInvalidDate)
	}
	return &t, nil
}

package officer

import (
	"context"
	"errors"
	"strings"
	"time"

	"hapsay-service/helper"
	"hapsay-service/internal/models"
	"hapsay-service/internal/store"
	"hapsay-service/pkg/password"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MsgNotFound        = "Officer not found"
	MsgStationNotFound = "Station not found"
	MsgEmailTaken      = "Email already registered"
	MsgBadgeTaken      = "Badge number already exists"
	MsgInvalidStatus   = "Invalid status value"
	MsgMissingFields   = "Missing required fields"
)

// StationRoster is the part of the station store officers need: existence
// checks and keeping each station's officer_ids in step.
type StationRoster interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	AddOfficer(ctx context.Context, stationID, officerID primitive.ObjectID) error
	RemoveOfficer(ctx context.Context, stationID, officerID primitive.ObjectID) error
}

type OfficerService interface {
	GetAllOfficers(ctx context.Context) ([]*models.OfficerView, error)
	GetOfficersByStation(ctx context.Context, stationID string) ([]*models.OfficerView, error)
	GetOfficerByID(ctx context.Context, id string) (*models.OfficerView, error)
	CreateOfficer(ctx context.Context, req *CreateOfficerRequest) (*models.OfficerView, error)
	UpdateOfficer(ctx context.Context, id string, req *UpdateOfficerRequest) (*models.OfficerView, error)
	UpdateOfficerStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*models.OfficerView, error)
	DeleteOfficer(ctx context.Context, id string) error
}

type officerService struct {
	officerRepository OfficerRepository
	stations          StationRoster
	now               func() time.Time
}

func NewOfficerService(repo OfficerRepository, stations StationRoster) OfficerService {
	return &officerService{
		officerRepository: repo,
		stations:          stations,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (s *officerService) GetAllOfficers(ctx context.Context) ([]*models.OfficerView, error) {
	return s.officerRepository.FindAll(ctx)
}

func (s *officerService) GetOfficersByStation(ctx context.Context, stationID string) ([]*models.OfficerView, error) {

	objID, err := store.ObjectID(stationID)
	if err != nil {
		return nil, helper.NotFound(MsgStationNotFound)
	}

	return s.officerRepository.FindByStation(ctx, objID)

}

func (s *officerService) GetOfficerByID(ctx context.Context, id string) (*models.OfficerView, error) {

	objID, err := store.ObjectID(id)
	if err != nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	return s.view(ctx, objID)

}

func (s *officerService) CreateOfficer(ctx context.Context, req *CreateOfficerRequest) (*models.OfficerView, error) {

	if err := helper.Validate(req, MsgMissingFields); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	if err := s.ensureEmailFree(ctx, email, primitive.NilObjectID); err != nil {
		return nil, err
	}

	badge := strings.TrimSpace(req.BadgeNumber)
	if badge != "" {
		if err := s.ensureBadgeFree(ctx, badge, primitive.NilObjectID); err != nil {
			return nil, err
		}
	}

	stationID, err := s.resolveStation(ctx, req.StationID)
	if err != nil {
		return nil, err
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, helper.Internal(err)
	}

	status := models.OfficerStatus(req.Status)
	if status == "" {
		status = models.OfficerActive
	}

	now := s.now()
	officer := &models.Officer{
		ID:          primitive.NewObjectID(),
		Email:       email,
		Password:    hashed,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BadgeNumber: badge,
		Rank:        req.Rank,
		StationID:   stationID,
		Contact:     req.Contact,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.officerRepository.Create(ctx, officer); err != nil {
		return nil, duplicateMessage(err)
	}

	if stationID != nil {
		if err := s.stations.AddOfficer(ctx, *stationID, officer.ID); err != nil {
			return nil, err
		}
	}

	return s.view(ctx, officer.ID)

}

func (s *officerService) UpdateOfficer(ctx context.Context, id string, req *UpdateOfficerRequest) (*models.OfficerView, error) {

	for _, v := range []*string{req.FirstName, req.LastName} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return nil, helper.Validation(MsgMissingFields)
		}
	}
	if err := helper.Validate(req, MsgMissingFields); err != nil {
		return nil, err
	}

	officer, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	previousStation := officer.StationID

	if req.Password != nil && *req.Password != "" {
		if len(*req.Password) < password.MinLength {
			return nil, helper.Validationf("Password must be at least %d characters long", password.MinLength)
		}
		hashed, err := password.Hash(*req.Password)
		if err != nil {
			return nil, helper.Internal(err)
		}
		officer.Password = hashed
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != officer.Email {
			if err := s.ensureEmailFree(ctx, email, officer.ID); err != nil {
				return nil, err
			}
			officer.Email = email
		}
	}

	if req.BadgeNumber != nil {
		badge := strings.TrimSpace(*req.BadgeNumber)
		if badge != "" && badge != officer.BadgeNumber {
			if err := s.ensureBadgeFree(ctx, badge, officer.ID); err != nil {
				return nil, err
			}
		}
		officer.BadgeNumber = badge
	}

	if req.StationID != nil {
		stationID, err := s.resolveStation(ctx, *req.StationID)
		if err != nil {
			return nil, err
		}
		officer.StationID = stationID
	}

	if req.FirstName != nil {
		officer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		officer.LastName = *req.LastName
	}
	if req.Rank != nil {
		officer.Rank = *req.Rank
	}
	if req.Contact != nil {
		officer.Contact = req.Contact
	}
	if req.Status != nil {
		officer.Status = models.OfficerStatus(*req.Status)
	}

	officer.UpdatedAt = s.now()

	if err := s.save(ctx, officer); err != nil {
		return nil, err
	}

	if err := s.moveRoster(ctx, officer.ID, previousStation, officer.StationID); err != nil {
		return nil, err
	}

	return s.view(ctx, officer.ID)

}

func (s *officerService) UpdateOfficerStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*models.OfficerView, error) {

	status := models.OfficerStatus(req.Status)
	if !status.Valid() {
		return nil, helper.Validation(MsgInvalidStatus)
	}

	officer, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	officer.Status = status
	officer.UpdatedAt = s.now()

	if err := s.save(ctx, officer); err != nil {
		return nil, err
	}

	return s.view(ctx, officer.ID)

}

func (s *officerService) DeleteOfficer(ctx context.Context, id string) error {

	officer, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	err = s.officerRepository.Delete(ctx, officer.ID)
	if errors.Is(err, store.ErrNotFound) {
		return helper.NotFound(MsgNotFound)
	}
	if err != nil {
		return err
	}

	if officer.StationID != nil {
		return s.stations.RemoveOfficer(ctx, *officer.StationID, officer.ID)
	}
	return nil

}

func (s *officerService) find(ctx context.Context, id string) (*models.Officer, error) {

	objID, err := store.ObjectID(id)
	if err != nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	officer, err := s.officerRepository.FindByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if officer == nil {
		return nil, helper.NotFound(MsgNotFound)
	}
	return officer, nil

}

func (s *officerService) view(ctx context.Context, id primitive.ObjectID) (*models.OfficerView, error) {

	v, err := s.officerRepository.FindView(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, helper.NotFound(MsgNotFound)
	}
	return v, nil

}

// resolveStation parses and checks a station reference. An empty value
// clears the reference.
func (s *officerService) resolveStation(ctx context.Context, raw string) (*primitive.ObjectID, error) {

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

func (s *officerService) moveRoster(ctx context.Context, officerID primitive.ObjectID, from, to *primitive.ObjectID) error {

	if sameStation(from, to) {
		return nil
	}
	if from != nil {
		if err := s.stations.RemoveOfficer(ctx, *from, officerID); err != nil {
			return err
		}
	}
	if to != nil {
		if err := s.stations.AddOfficer(ctx, *to, officerID); err != nil {
			return err
		}
	}
	return nil

}

func (s *officerService) ensureEmailFree(ctx context.Context, email string, self primitive.ObjectID) error {
	existing, err := s.officerRepository.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return helper.DuplicateMessage("email", MsgEmailTaken)
	}
	return nil
}

func (s *officerService) ensureBadgeFree(ctx context.Context, badge string, self primitive.ObjectID) error {
	existing, err := s.officerRepository.FindByBadge(ctx, badge)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return helper.DuplicateMessage("badge_number", MsgBadgeTaken)
	}
	return nil
}

func (s *officerService) save(ctx context.Context, officer *models.Officer) error {
	err := s.officerRepository.Update(ctx, officer)
	if errors.Is(err, store.ErrNotFound) {
		return helper.NotFound(MsgNotFound)
	}
	return duplicateMessage(err)
}

// duplicateMessage rewrites index collisions caught by the store into the
// messages the pre-checks use.
func duplicateMessage(err error) error {
	var appErr *helper.AppError
	if !errors.As(err, &appErr) || appErr.Kind != helper.KindDuplicate {
		return err
	}
	switch appErr.Field {
	case "email":
		return helper.DuplicateMessage("email", MsgEmailTaken)
	case "badge_number":
		return helper.DuplicateMessage("badge_number", MsgBadgeTaken)
	}
	return err
}

func sameStation(a, b *primitive.ObjectID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

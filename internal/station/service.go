package station

import (
	"context"
	"errors"
	"strings"
	"time"

	"hapsay-service/helper"
	"hapsay-service/internal/models"
	"hapsay-service/internal/store"
	"hapsay-service/pkg/constants"
	"hapsay-service/pkg/idgen"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	MsgNotFound       = "Station not found"
	MsgRequired       = "All fields are required"
	MsgUpdateRequired = "All required fields must be provided"
)

// insertAttempts bounds how often a create re-enters id assignment after
// the unique index rejects a custom id another writer took first.
const insertAttempts = 3

// OfficerDetacher clears the station reference of every officer at a
// station that is being removed.
type OfficerDetacher interface {
	ClearStation(ctx context.Context, stationID primitive.ObjectID) (int64, error)
}

type StationService interface {
	GetStations(ctx context.Context) ([]*models.StationView, error)
	GetStationByID(ctx context.Context, id string) (*models.StationView, error)
	CreateStation(ctx context.Context, req *CreateStationRequest) (*models.Station, error)
	UpdateStation(ctx context.Context, id string, req *UpdateStationRequest) (*models.Station, error)
	DeleteStation(ctx context.Context, id string) (*models.Station, error)
	BackfillCustomIDs(ctx context.Context) (int, error)
}

type stationService struct {
	stationRepository StationRepository
	officers          OfficerDetacher
	assigner          *idgen.Assigner
	logger            *zap.SugaredLogger
	now               func() time.Time
}

func NewStationService(repo StationRepository, officers OfficerDetacher, assigner *idgen.Assigner, logger *zap.SugaredLogger) StationService {
	return &stationService{
		stationRepository: repo,
		officers:          officers,
		assigner:          assigner,
		logger:            logger,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (s *stationService) GetStations(ctx context.Context) ([]*models.StationView, error) {
	return s.stationRepository.FindAll(ctx)
}

func (s *stationService) GetStationByID(ctx context.Context, id string) (*models.StationView, error) {

	objID, err := store.ObjectID(id)
	if err != nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	v, err := s.stationRepository.FindView(ctx, objID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, helper.NotFound(MsgNotFound)
	}
	return v, nil

}

func (s *stationService) CreateStation(ctx context.Context, req *CreateStationRequest) (*models.Station, error) {

	if err := helper.Validate(req, MsgRequired); err != nil {
		return nil, err
	}

	now := s.now()
	station := &models.Station{
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
		Contact: models.StationContact{
			PhoneNumber: req.PhoneNumber,
			Email:       req.Email,
			Landline:    req.Landline,
		},
		Location: models.StationLocation{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
		OfficerIDs: []primitive.ObjectID{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for attempt := 1; ; attempt++ {
		customID, err := s.assigner.Assign(ctx, constants.StationIDPrefix, s.stationRepository.CustomIDExists)
		if err != nil {
			return nil, helper.Internal(err)
		}
		station.CustomID = customID
		station.ID = primitive.NewObjectID()

		err = s.stationRepository.Create(ctx, station)
		if err == nil {
			return station, nil
		}

		var appErr *helper.AppError
		if errors.As(err, &appErr) && appErr.Kind == helper.KindDuplicate && appErr.Field == "custom_id" && attempt < insertAttempts {
			s.logger.Warnw("station custom id taken at insert, reassigning", "custom_id", customID, "attempt", attempt)
			continue
		}
		return nil, err
	}

}

func (s *stationService) UpdateStation(ctx context.Context, id string, req *UpdateStationRequest) (*models.Station, error) {

	for _, v := range []*string{req.Name, req.Address, req.PhoneNumber, req.Landline} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return nil, helper.Validation(MsgUpdateRequired)
		}
	}
	if err := helper.Validate(req, MsgUpdateRequired); err != nil {
		return nil, err
	}

	station, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		station.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		station.Address = strings.TrimSpace(*req.Address)
	}
	if req.PhoneNumber != nil {
		station.Contact.PhoneNumber = *req.PhoneNumber
	}
	if req.Landline != nil {
		station.Contact.Landline = *req.Landline
	}
	if req.Email != nil {
		station.Contact.Email = *req.Email
	}
	if req.Latitude != nil {
		station.Location.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		station.Location.Longitude = *req.Longitude
	}

	station.UpdatedAt = s.now()

	err = s.stationRepository.Update(ctx, station)
	if errors.Is(err, store.ErrNotFound) {
		return nil, helper.NotFound(MsgNotFound)
	}
	if err != nil {
		return nil, err
	}
	return station, nil

}

func (s *stationService) DeleteStation(ctx context.Context, id string) (*models.Station, error) {

	station, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.stationRepository.Delete(ctx, station.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, helper.NotFound(MsgNotFound)
	}
	if err != nil {
		return nil, err
	}

	detached, err := s.officers.ClearStation(ctx, station.ID)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("station deleted", "station_id", station.ID.Hex(), "officers_detached", detached)

	return station, nil

}

// BackfillCustomIDs assigns a custom id to every station stored without
// one and returns how many were updated.
func (s *stationService) BackfillCustomIDs(ctx context.Context) (int, error) {

	stations, err := s.stationRepository.FindWithoutCustomID(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, st := range stations {
		customID, err := s.assigner.Assign(ctx, constants.StationIDPrefix, s.stationRepository.CustomIDExists)
		if err != nil {
			return updated, err
		}
		if err := s.stationRepository.SetCustomID(ctx, st.ID, customID); err != nil {
			return updated, err
		}
		s.logger.Infow("custom id assigned", "station", st.Name, "custom_id", customID)
		updated++
	}
	return updated, nil

}

func (s *stationService) find(ctx context.Context, id string) (*models.Station, error) {

	objID, err := store.ObjectID(id)
	if err != nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	station, err := s.stationRepository.FindByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, helper.NotFound(MsgNotFound)
	}
	return station, nil

}

package announcement

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
	MsgNotFound        = "Announcement not found"
	MsgStationNotFound = "Station not found"
	MsgRequired        = "Title and details are required"
	MsgInvalidDate     = "Invalid date"
)

type StationChecker interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, req *CreateAnnouncementRequest) (*models.Announcement, error)
	GetAnnouncements(ctx context.Context, filter *ListFilter) ([]*models.Announcement, error)
	GetAnnouncementByID(ctx context.Context, id string) (*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id string, req *UpdateAnnouncementRequest) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error
}

type announcementService struct {
	announcementRepository AnnouncementRepository
	stations               StationChecker
	now                    func() time.Time
}

func NewAnnouncementService(repo AnnouncementRepository, stations StationChecker) AnnouncementService {
	return &announcementService{
		announcementRepository: repo,
		stations:               stations,
		now:                    func() time.Time { return time.Now().UTC() },
	}
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, req *CreateAnnouncementRequest) (*models.Announcement, error) {

	if err := helper.Validate(req, MsgRequired); err != nil {
		return nil, err
	}

	stationID, err := s.resolveStation(ctx, req.StationID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	date := now
	if strings.TrimSpace(req.Date) != "" {
		if date, err = helper.ParseDate(req.Date); err != nil {
			return nil, helper.Validation(MsgInvalidDate)
		}
	}

	announcement := &models.Announcement{
		ID:        primitive.NewObjectID(),
		StationID: stationID,
		Title:     req.Title,
		Details:   req.Details,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.announcementRepository.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil

}

func (s *announcementService) GetAnnouncements(ctx context.Context, filter *ListFilter) ([]*models.Announcement, error) {

	stationID, err := store.OptionalObjectID(filter.StationID)
	if err != nil {
		return nil, helper.Validation("Invalid station_id")
	}

	return s.announcementRepository.FindAll(ctx, stationID)

}

func (s *announcementService) GetAnnouncementByID(ctx context.Context, id string) (*models.Announcement, error) {

	objID, err := store.ObjectID(id)
	if err != nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	announcement, err := s.announcementRepository.FindByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, helper.NotFound(MsgNotFound)
	}
	return announcement, nil

}

func (s *announcementService) UpdateAnnouncement(ctx context.Context, id string, req *UpdateAnnouncementRequest) (*models.Announcement, error) {

	announcement, err := s.GetAnnouncementByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, helper.Validation(MsgRequired)
		}
		announcement.Title = *req.Title
	}
	if req.Details != nil {
		if strings.TrimSpace(*req.Details) == "" {
			return nil, helper.Validation(MsgRequired)
		}
		announcement.Details = *req.Details
	}
	if req.Date != nil {
		date, err := helper.ParseDate(*req.Date)
		if err != nil {
			return nil, helper.Validation(MsgInvalidDate)
		}
		announcement.Date = date
	}
	if req.StationID != nil {
		if announcement.StationID, err = s.resolveStation(ctx, *req.StationID); err != nil {
			return nil, err
		}
	}
	announcement.UpdatedAt = s.now()

	err = s.announcementRepository.Update(ctx, announcement)
	if errors.Is(err, store.ErrNotFound) {
		return nil, helper.NotFound(MsgNotFound)
	}
	if err != nil {
		return nil, err
	}
	return announcement, nil

}

func (s *announcementService) DeleteAnnouncement(ctx context.Context, id string) error {

	objID, err := store.ObjectID(id)
	if err != nil {
		return helper.NotFound(MsgNotFound)
	}

	err = s.announcementRepository.Delete(ctx, objID)
	if errors.Is(err, store.ErrNotFound) {
		return helper.NotFound(MsgNotFound)
	}
	return err

}

func (s *announcementService) resolveStation(ctx context.Context, raw string) (*primitive.ObjectID, error) {

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

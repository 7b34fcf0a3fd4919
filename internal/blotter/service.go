package blotter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hapsay-service/helper"
	"hapsay-service/internal/models"
	"hapsay-service/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MsgNotFound        = "Blotter not found"
	MsgUserNotFound    = "User not found"
	MsgOfficerNotFound = "Officer not found"
	MsgMissingFields   = "Missing required fields"
	MsgInvalidStatus   = "Invalid status value"
	MsgInvalidDate     = "Invalid incidentDate"
)

type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type OfficerFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Officer, error)
}

type BlotterService interface {
	CreateBlotter(ctx context.Context, req *CreateBlotterRequest) (*models.Blotter, error)
	GetBlotters(ctx context.Context, filter *ListFilter) ([]*models.BlotterView, error)
	GetBlotterByID(ctx context.Context, id string) (*models.BlotterView, error)
	UpdateBlotter(ctx context.Context, id string, req *UpdateBlotterRequest) (*models.BlotterView, error)
	UpdateBlotterStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*models.BlotterView, error)
	DeleteBlotter(ctx context.Context, id string) error
}

type blotterService struct {
	blotterRepository BlotterRepository
	users             UserFinder
	officers          OfficerFinder
	now               func() time.Time
}

func NewBlotterService(repo BlotterRepository, users UserFinder, officers OfficerFinder) BlotterService {
	return &blotterService{
		blotterRepository: repo,
		users:             users,
		officers:          officers,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (s *blotterService) CreateBlotter(ctx context.Context, req *CreateBlotterRequest) (*models.Blotter, error) {

	if err := helper.Validate(req, MsgMissingFields); err != nil {
		return nil, err
	}

	date, err := helper.ParseDate(req.IncidentDate)
	if err != nil {
		return nil, helper.Validation(MsgInvalidDate)
	}

	userID, err := s.resolveUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	officerID, err := s.resolveOfficer(ctx, req.OfficerID)
	if err != nil {
		return nil, err
	}

	attachments := req.Attachments
	if attachments == nil {
		attachments = []models.Attachment{}
	}

	now := s.now()
	blotter := &models.Blotter{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Incident: models.Incident{
			Type:        models.IncidentType(req.IncidentType),
			Date:        date,
			Time:        req.IncidentTime,
			Location:    req.Location,
			Description: req.IncidentDescription,
		},
		Attachments:     attachments,
		AssignedOfficer: officerID,
		Status:          models.BlotterPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.blotterRepository.Create(ctx, blotter); err != nil {
		return nil, err
	}
	return blotter, nil

}

func (s *blotterService) GetBlotters(ctx context.Context, filter *ListFilter) ([]*models.BlotterView, error) {

	var q Query

	if filter.Status != "" {
		q.Status = models.BlotterStatus(filter.Status)
		if !q.Status.Valid() {
			return nil, helper.Validation(MsgInvalidStatus)
		}
	}

	var err error
	if q.UserID, err = store.OptionalObjectID(filter.UserID); err != nil {
		return nil, helper.Validation("Invalid user_id")
	}
	if q.OfficerID, err = store.OptionalObjectID(filter.OfficerID); err != nil {
		return nil, helper.Validation("Invalid officer_id")
	}

	return s.blotterRepository.FindAll(ctx, q)

}

func (s *blotterService) GetBlotterByID(ctx context.Context, id string) (*models.BlotterView, error) {

	objID, err := store.ObjectID(id)
	if err != nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	return s.view(ctx, objID)

}

func (s *blotterService) UpdateBlotter(ctx context.Context, id string, req *UpdateBlotterRequest) (*models.BlotterView, error) {

	for _, v := range []*string{req.IncidentTime, req.IncidentDescription} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return nil, helper.Validation(MsgMissingFields)
		}
	}
	if err := helper.Validate(req, MsgMissingFields); err != nil {
		return nil, err
	}

	blotter, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IncidentType != nil {
		blotter.Incident.Type = models.IncidentType(*req.IncidentType)
	}
	if req.IncidentDate != nil {
		date, err := helper.ParseDate(*req.IncidentDate)
		if err != nil {
			return nil, helper.Validation(MsgInvalidDate)
		}
		blotter.Incident.Date = date
	}
	if req.IncidentTime != nil {
		blotter.Incident.Time = *req.IncidentTime
	}
	if req.IncidentDescription != nil {
		blotter.Incident.Description = *req.IncidentDescription
	}
	if req.Location != nil {
		blotter.Incident.Location = req.Location
	}
	if req.Attachments != nil {
		blotter.Attachments = *req.Attachments
		if blotter.Attachments == nil {
			blotter.Attachments = []models.Attachment{}
		}
	}
	if req.OfficerID != nil {
		officerID, err := s.resolveOfficer(ctx, *req.OfficerID)
		if err != nil {
			return nil, err
		}
		blotter.AssignedOfficer = officerID
	}

	if err := s.save(ctx, blotter); err != nil {
		return nil, err
	}
	return s.view(ctx, blotter.ID)

}

// UpdateBlotterStatus moves a report along its lifecycle. Re-applying the
// current status changes nothing.
func (s *blotterService) UpdateBlotterStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*models.BlotterView, error) {

	next := models.BlotterStatus(req.Status)
	if !next.Valid() {
		return nil, helper.Validation(MsgInvalidStatus)
	}

	blotter, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !blotter.Status.CanTransition(next) {
		return nil, helper.Conflict(fmt.Sprintf("Cannot change status from %s to %s", blotter.Status, next))
	}

	if blotter.Status != next {
		blotter.Status = next
		if err := s.save(ctx, blotter); err != nil {
			return nil, err
		}
	}
	return s.view(ctx, blotter.ID)

}

func (s *blotterService) DeleteBlotter(ctx context.Context, id string) error {

	objID, err := store.ObjectID(id)
	if err != nil {
		return helper.NotFound(MsgNotFound)
	}

	err = s.blotterRepository.Delete(ctx, objID)
	if errors.Is(err, store.ErrNotFound) {
		return helper.NotFound(MsgNotFound)
	}
	return err

}

func (s *blotterService) resolveUser(ctx context.Context, raw string) (primitive.ObjectID, error) {

	id, err := store.ObjectID(raw)
	if err != nil {
		return primitive.NilObjectID, helper.NotFound(MsgUserNotFound)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if user == nil {
		return primitive.NilObjectID, helper.NotFound(MsgUserNotFound)
	}
	return id, nil

}

// resolveOfficer checks an optional officer reference; empty unassigns.
func (s *blotterService) resolveOfficer(ctx context.Context, raw string) (*primitive.ObjectID, error) {

	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	id, err := store.ObjectID(raw)
	if err != nil {
		return nil, helper.NotFound(MsgOfficerNotFound)
	}

	officer, err := s.officers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if officer == nil {
		return nil, helper.NotFound(MsgOfficerNotFound)
	}
	return &id, nil

}

func (s *blotterService) find(ctx context.Context, id string) (*models.Blotter, error) {

	objID, err := store.ObjectID(id)
	if err != nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	blotter, err := s.blotterRepository.FindByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if blotter == nil {
		return nil, helper.NotFound(MsgNotFound)
	}
	return blotter, nil

}

func (s *blotterService) view(ctx context.Context, id primitive.ObjectID) (*models.BlotterView, error) {

	v, err := s.blotterRepository.FindView(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, helper.NotFound(MsgNotFound)
	}
	return v, nil

}

func (s *blotterService) save(ctx context.Context, blotter *models.Blotter) error {

	blotter.UpdatedAt = s.now()

	err := s.blotterRepository.Update(ctx, blotter)
	if errors.Is(err, store.ErrNotFound) {
		return helper.NotFound(MsgNotFound)
	}
	return err

}

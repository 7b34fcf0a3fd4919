package user

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
	MsgNotFound      = "User not found"
	MsgEmailInUse    = "Email already in use"
	MsgInvalidStatus = "Invalid status value"
	MsgMissingFields = "Missing required fields"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) (*models.User, error)
	UpdateUserStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	userRepository UserRepository
	now            func() time.Time
}

func NewUserService(repo UserRepository) UserService {
	return &userService{
		userRepository: repo,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *userService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepository.FindAll(ctx)
}

func (s *userService) CountUsers(ctx context.Context) (int64, error) {
	return s.userRepository.Count(ctx)
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {

	objID, err := store.ObjectID(id)
	if err != nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	user, err := s.userRepository.FindByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, helper.NotFound(MsgNotFound)
	}

	return user, nil

}

func (s *userService) UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) (*models.User, error) {

	if err := helper.Validate(req, helper.ErrInvalidRequest); err != nil {
		return nil, err
	}

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != user.Email {
			if err := s.ensureEmailFree(ctx, email, user.ID); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}

	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}

	if req.PersonalInfo != nil {
		if err := mergePersonalInfo(&user.PersonalInfo, req.PersonalInfo); err != nil {
			return nil, err
		}
	}

	if req.Address != nil {
		user.Address = req.Address
	}

	if req.Status != nil {
		user.Status = models.UserStatus(*req.Status)
	}

	user.UpdatedAt = s.now()

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil

}

func (s *userService) UpdateUserStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*models.User, error) {

	status := models.UserStatus(req.Status)
	if !status.Valid() {
		return nil, helper.Validation(MsgInvalidStatus)
	}

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Status = status
	user.UpdatedAt = s.now()

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil

}

func (s *userService) DeleteUser(ctx context.Context, id string) error {

	objID, err := store.ObjectID(id)
	if err != nil {
		return helper.NotFound(MsgNotFound)
	}

	err = s.userRepository.Delete(ctx, objID)
	if errors.Is(err, store.ErrNotFound) {
		return helper.NotFound(MsgNotFound)
	}
	return err

}

func (s *userService) ensureEmailFree(ctx context.Context, email string, self primitive.ObjectID) error {
	existing, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return helper.DuplicateMessage("email", MsgEmailInUse)
	}
	return nil
}

func (s *userService) save(ctx context.Context, user *models.User) error {
	err := s.userRepository.Update(ctx, user)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return helper.NotFound(MsgNotFound)
	case helper.IsKind(err, helper.KindDuplicate):
		return helper.DuplicateMessage("email", MsgEmailInUse)
	}
	return err
}

func mergePersonalInfo(dst *models.PersonalInfo, req *PersonalInfoRequest) error {
	for _, v := range []*string{req.GivenName, req.MiddleName, req.Surname} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return helper.Validation(MsgMissingFields)
		}
	}
	if req.GivenName != nil {
		dst.GivenName = *req.GivenName
	}
	if req.MiddleName != nil {
		dst.MiddleName = *req.MiddleName
	}
	if req.Surname != nil {
		dst.Surname = *req.Surname
	}
	if req.Qualifier != nil {
		dst.Qualifier = *req.Qualifier
	}
	if req.Sex != nil {
		dst.Sex = *req.Sex
	}
	if req.CivilStatus != nil {
		dst.CivilStatus = *req.CivilStatus
	}
	if req.Birthday != nil {
		if *req.Birthday == "" {
			dst.Birthday = nil
		} else {
			t, err := helper.ParseDate(*req.Birthday)
			if err != nil {
				return helper.Validation("Invalid birthday")
			}
			dst.Birthday = &t
		}
	}
	if req.PWD != nil {
		dst.PWD = *req.PWD
	}
	if req.Nationality != nil {
		dst.Nationality = *req.Nationality
	}
	return nil
}

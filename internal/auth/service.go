package auth

import (
	"context"
	"strings"
	"time"

	"hapsay-service/helper"
	"hapsay-service/internal/models"
	"hapsay-service/internal/store"
	"hapsay-service/pkg/password"
	"hapsay-service/pkg/token"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MsgRequired        = "All fields are required"
	MsgEmailInUse      = "Email already in use"
	MsgUserNotFound    = "User not found"
	MsgOfficerNotFound = "Officer not found"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	TouchLastActivity(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

type OfficerStore interface {
	Create(ctx context.Context, officer *models.Officer) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Officer, error)
	FindByEmail(ctx context.Context, email string) (*models.Officer, error)
}

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*UserAuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*UserAuthResponse, error)
	RegisterAdmin(ctx context.Context, req *RegisterAdminRequest) (*OfficerAuthResponse, error)
	LoginAdmin(ctx context.Context, req *LoginRequest) (*OfficerAuthResponse, error)
	Me(ctx context.Context, subject, role string) (any, error)
}

type authService struct {
	users    UserStore
	officers OfficerStore
	issuer   *token.Issuer
	now      func() time.Time
}

func NewAuthService(users UserStore, officers OfficerStore, issuer *token.Issuer) AuthService {
	return &authService{
		users:    users,
		officers: officers,
		issuer:   issuer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*UserAuthResponse, error) {

	if err := helper.Validate(req, MsgRequired); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, helper.DuplicateMessage("email", MsgEmailInUse)
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, helper.Internal(err)
	}

	now := s.now()
	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: hashed,
		PersonalInfo: models.PersonalInfo{
			GivenName:  req.GivenName,
			MiddleName: req.MiddleName,
			Surname:    req.Surname,
		},
		Status:    models.UserActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if helper.IsKind(err, helper.KindDuplicate) {
			return nil, helper.DuplicateMessage("email", MsgEmailInUse)
		}
		return nil, err
	}

	tok, err := s.issuer.Issue(user.ID.Hex(), token.RoleUser)
	if err != nil {
		return nil, helper.Internal(err)
	}

	return &UserAuthResponse{Success: true, Token: tok, User: user.Summary()}, nil

}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*UserAuthResponse, error) {

	if err := helper.Validate(req, MsgRequired); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, helper.Auth()
	}

	if err := checkPassword(user.Password, req.Password); err != nil {
		return nil, err
	}

	if err := s.users.TouchLastActivity(ctx, user.ID, s.now()); err != nil {
		return nil, err
	}

	tok, err := s.issuer.Issue(user.ID.Hex(), token.RoleUser)
	if err != nil {
		return nil, helper.Internal(err)
	}

	return &UserAuthResponse{Success: true, Token: tok, User: user.Summary()}, nil

}

func (s *authService) RegisterAdmin(ctx context.Context, req *RegisterAdminRequest) (*OfficerAuthResponse, error) {

	if err := helper.Validate(req, MsgRequired); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	existing, err := s.officers.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, helper.DuplicateMessage("email", MsgEmailInUse)
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, helper.Internal(err)
	}

	now := s.now()
	officer := &models.Officer{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Status:    models.OfficerActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.officers.Create(ctx, officer); err != nil {
		if helper.IsKind(err, helper.KindDuplicate) {
			return nil, helper.DuplicateMessage("email", MsgEmailInUse)
		}
		return nil, err
	}

	tok, err := s.issuer.Issue(officer.ID.Hex(), token.RoleOfficer)
	if err != nil {
		return nil, helper.Internal(err)
	}

	return &OfficerAuthResponse{Success: true, Token: tok, Officer: officer.Summary()}, nil

}

func (s *authService) LoginAdmin(ctx context.Context, req *LoginRequest) (*OfficerAuthResponse, error) {

	if err := helper.Validate(req, MsgRequired); err != nil {
		return nil, err
	}

	officer, err := s.officers.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, err
	}
	if officer == nil {
		return nil, helper.Auth()
	}

	if err := checkPassword(officer.Password, req.Password); err != nil {
		return nil, err
	}

	tok, err := s.issuer.Issue(officer.ID.Hex(), token.RoleOfficer)
	if err != nil {
		return nil, helper.Internal(err)
	}

	return &OfficerAuthResponse{Success: true, Token: tok, Officer: officer.Summary()}, nil

}

// Me resolves the account behind a verified token.
func (s *authService) Me(ctx context.Context, subject, role string) (any, error) {

	id, err := store.ObjectID(subject)
	if err != nil {
		return nil, helper.NotFound(MsgUserNotFound)
	}

	switch role {
	case token.RoleOfficer:
		officer, err := s.officers.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if officer == nil {
			return nil, helper.NotFound(MsgOfficerNotFound)
		}
		return officer.Summary(), nil
	default:
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, helper.NotFound(MsgUserNotFound)
		}
		return user.Summary(), nil
	}

}

func checkPassword(hashed, plain string) error {
	ok, err := password.Compare(hashed, plain)
	if err != nil {
		return helper.Internal(err)
	}
	if !ok {
		return helper.Auth()
	}
	return nil
}

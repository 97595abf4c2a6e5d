package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

// UserExistsMessage is reported when POST /users finds the email taken.
const UserExistsMessage = "user already exist database"

// UserService manages user accounts.
type UserService struct {
	users UserStore
	log   *zerolog.Logger
}

// NewUserService constructs a UserService.
func NewUserService(users UserStore, log *zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// CreateUser inserts the user unless the email is already known, in which
// case it reports existence instead of failing.
func (s *UserService) CreateUser(ctx context.Context, req model.UserRequest) (model.UserCreateResult, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validate(ctx, req); err != nil {
		return model.UserCreateResult{}, err
	}
	if req.Role == "" {
		req.Role = model.RoleParticipant
	}

	u := &model.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     req.Role,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	inserted, err := s.users.InsertIfAbsent(ctx, u)
	if err != nil {
		return model.UserCreateResult{}, fmt.Errorf("create user: %w", err)
	}
	if !inserted {
		return model.UserCreateResult{Message: UserExistsMessage}, nil
	}

	s.log.Info().Str("email", u.Email).Str("role", string(u.Role)).Msg("user created")
	return model.UserCreateResult{
		InsertResult: model.InsertResult{Acknowledged: true, InsertedID: u.Email},
	}, nil
}

// Profile returns the user with the given email.
func (s *UserService) Profile(ctx context.Context, email string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	return s.users.GetByEmail(ctx, email)
}

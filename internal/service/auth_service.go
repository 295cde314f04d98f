package service

import (
	"context"
	"errors"
	"time"

	"mailgate/internal/model"
	"mailgate/internal/util"
)

// ErrInvalidPassword is returned by Login when the user exists but the
// password does not match.
var ErrInvalidPassword = errors.New("invalid password")

// UserStore is the credential persistence contract the service needs.
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type AuthService struct {
	users     UserStore
	jwtSecret string
}

func NewAuthService(users UserStore, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
	}
}

// Register hashes the password and creates a new user. Store errors,
// including repository.ErrDuplicateUsername, pass through to the caller.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Login checks user credentials and returns a signed token bound to the
// user's ID.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if !util.CheckPassword(password, u.PasswordHash) {
		return "", ErrInvalidPassword
	}

	return util.GenerateJWT(u.ID, s.jwtSecret)
}

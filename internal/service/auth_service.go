package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"coursework/internal/apperr"
	"coursework/internal/auth"
	"coursework/internal/model"
	"coursework/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	users        repository.UserRepositoryInterface
	jwtSecret    string
	tokenTTL     time.Duration
	storeTimeout time.Duration
}

func NewAuthService(users repository.UserRepositoryInterface, jwtSecret string, tokenTTL, storeTimeout time.Duration) *AuthService {
	return &AuthService{
		users:        users,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
		storeTimeout: storeTimeout,
	}
}

// Register creates a new user. Emails are stored lowercase so uniqueness is
// case-insensitive. A duplicate email yields apperr.ErrConflict.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()

	email = strings.ToLower(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if existing != nil {
		return nil, apperr.ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:          email,
		Username:       username,
		HashedPassword: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Two concurrent registrations can both pass the FindByEmail check;
		// the loser hits the unique index and must still come back as a
		// conflict, not a server error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrConflict
		}
		return nil, mapStoreErr(err)
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token with the user's email
// as subject. Unknown email and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", nil, mapStoreErr(err)
	}
	if user == nil {
		return "", nil, apperr.ErrUnauthenticated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", nil, apperr.ErrUnauthenticated
	}

	token, err := auth.GenerateToken(user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/waylo/companion/backend/internal/logger"
	"github.com/waylo/companion/backend/internal/models"
	"github.com/waylo/companion/backend/internal/repository"
	"github.com/waylo/companion/backend/pkg/supabase"
)

var (
	// ErrInvalidCredentials is returned when GoTrue rejects the login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrProfileNotFound means the auth account exists without a users row.
	ErrProfileNotFound = errors.New("user data not found")
	// ErrEmailTaken is returned when signing up with a registered email.
	ErrEmailTaken = errors.New("email already registered")
)

// Authenticator is the subset of the Supabase client used for sign-in.
type Authenticator interface {
	SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, error)
	SignUp(ctx context.Context, email, password string) (*supabase.Session, error)
}

type authService struct {
	auth     Authenticator
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(auth Authenticator, userRepo repository.UserRepository) AuthService {
	return &authService{
		auth:     auth,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	session, err := s.auth.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		if supabase.IsStatus(err, 400) || supabase.IsStatus(err, 401) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	user, err := s.profile(ctx, session.User.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		User:         *user,
	}, nil
}

// Register creates the auth account, then the profile row. A failed
// profile insert fails the registration so Login never finds an orphan.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	session, err := s.auth.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		if supabase.IsStatus(err, 422) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	user, err := s.userRepo.Create(ctx, &models.User{
		ID:        session.User.ID,
		Email:     session.User.Email,
		Username:  strings.TrimSpace(req.Username),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	logger.Ctx(ctx).Info("user registered", logger.String("user_id", user.ID))

	return &models.AuthResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		User:         *user,
	}, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.profile(ctx, userID)
}

func (s *authService) profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return user, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecomdash/product-dashboard/internal/hash"
	"github.com/ecomdash/product-dashboard/internal/logging"
	"github.com/ecomdash/product-dashboard/internal/models"
	"github.com/ecomdash/product-dashboard/internal/repo"
	"github.com/ecomdash/product-dashboard/internal/tokens"
	"github.com/ecomdash/product-dashboard/internal/transport"
	"github.com/ecomdash/product-dashboard/internal/validate"
)

type AuthService struct {
	Repo      *repo.GormRepo
	Producer  EventPublisher
	JWTSecret []byte
	TokenTTL  time.Duration
}

func NewAuthService(r *repo.GormRepo, producer EventPublisher, secret []byte, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{Repo: r, Producer: producer, JWTSecret: secret, TokenTTL: ttl}
}

func (s *AuthService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, TopicUserEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "topic", TopicUserEvents, "error", err)
	}
}

// Register creates a user with the default "user" role. Duplicate email
// fails with ErrUserExists.
func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: pwHash,
		Role:         "user",
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	s.publish(ctx, fmt.Sprint(user.ID), map[string]any{
		"type":     "user_registered",
		"userID":   user.ID,
		"username": user.Username,
	})

	return &user, nil
}

// Login checks credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (string, *models.User, error) {
	if err := validate.Struct(req); err != nil {
		return "", nil, err
	}

	user, err := s.Repo.UserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", nil, models.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := tokens.Sign(user.ID, user.Role, s.JWTSecret, s.TokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	s.publish(ctx, fmt.Sprint(user.ID), map[string]any{
		"type":     "user_logged_in",
		"userID":   user.ID,
		"username": user.Username,
	})

	return token, user, nil
}

// CurrentUser resolves the profile behind an authenticated request.
func (s *AuthService) CurrentUser(ctx context.Context, id uint) (*models.User, error) {
	return s.Repo.UserByID(ctx, id)
}

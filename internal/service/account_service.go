package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// accountService is the concrete implementation of AccountService
type accountService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newAccountService creates a new AccountService
func newAccountService(repos *repository.Repositories, log zerolog.Logger) *accountService {
	return &accountService{
		repos: repos,
		log:   log.With().Str("service", "account").Logger(),
	}
}

// Users

// CreateUser creates a new, active user
func (s *accountService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("invalid email format: %w", ErrInvalidArgument)
	}
	if !models.ValidRoles[req.Role] {
		return nil, fmt.Errorf("role must be admin, author or editor: %w", ErrInvalidArgument)
	}

	taken, err := s.repos.User.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("email %q already in use: %w", email, ErrInvalidArgument)
	}

	now := time.Now()
	user := &models.User{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       email,
		Role:        req.Role,
		Active:      true,
		Bio:         req.Bio,
		SocialLinks: req.SocialLinks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repos.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("User created")
	return user, nil
}

// UpdateUser applies a partial update
func (s *accountService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	if !validID(id) {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	user, err := s.repos.User.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	if req.Role != nil {
		if !models.ValidRoles[*req.Role] {
			return nil, fmt.Errorf("role must be admin, author or editor: %w", ErrInvalidArgument)
		}
		user.Role = *req.Role
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.SocialLinks != nil {
		user.SocialLinks = *req.SocialLinks
	}
	user.UpdatedAt = time.Now()

	if err := s.repos.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *accountService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if !validID(id) {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	user, err := s.repos.User.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return user, nil
}

// ListUsers retrieves all users
func (s *accountService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.repos.User.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

// Subscribers

// Subscribe registers a new newsletter subscriber
func (s *accountService) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.Subscriber, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("invalid email format: %w", ErrInvalidArgument)
	}

	taken, err := s.repos.Subscriber.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("email %q is already subscribed: %w", email, ErrInvalidArgument)
	}

	sub := &models.Subscriber{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      req.Name,
		Status:    models.SubscriberStatusActive,
		CreatedAt: time.Now(),
	}

	if err := s.repos.Subscriber.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create subscriber: %w", err)
	}

	s.log.Info().Str("subscriber_id", sub.ID).Msg("Subscriber created")
	return sub, nil
}

// ListSubscribers retrieves all subscribers
func (s *accountService) ListSubscribers(ctx context.Context) ([]*models.Subscriber, error) {
	subs, err := s.repos.Subscriber.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	if subs == nil {
		subs = []*models.Subscriber{}
	}
	return subs, nil
}

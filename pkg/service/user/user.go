// Package user provides the business-facing surface for user directory
// operations, adding structured logging around the repository.
package user

import (
	"context"
	"log/slog"

	"github.com/amirasaad/bankledger/pkg/domain/user"
	"github.com/amirasaad/bankledger/pkg/repository"
)

// Service exposes user directory operations to the API layer.
type Service struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// New creates a user Service.
func New(users repository.UserRepository, logger *slog.Logger) *Service {
	return &Service{users: users, logger: logger}
}

// CreateUser registers a new user. Duplicate identities are rejected with
// user.ErrDuplicateIdentity.
func (s *Service) CreateUser(ctx context.Context, candidate user.User) (*user.User, error) {
	u, err := s.users.Create(ctx, candidate)
	if err != nil {
		s.logger.Warn("user creation rejected", "email", candidate.Email, "error", err)
		return nil, err
	}
	s.logger.Info("user created", "user_id", u.ID, "email", u.Email)
	return u, nil
}

// GetUser retrieves a user by id with the credential fields scrubbed.
func (s *Service) GetUser(ctx context.Context, id string) (*user.User, error) {
	return s.users.FetchByID(ctx, id)
}

// ListUsers returns all users in insertion order.
func (s *Service) ListUsers(ctx context.Context) ([]*user.User, error) {
	return s.users.Fetch(ctx)
}

// DeleteUser removes a user and reports whether one existed.
func (s *Service) DeleteUser(ctx context.Context, id string) (bool, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info("user deleted", "user_id", id)
	}
	return deleted, nil
}

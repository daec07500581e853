package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jcancelado/fiapp/internal/events"
	"github.com/jcancelado/fiapp/internal/hash"
	"github.com/jcancelado/fiapp/internal/logging"
	"github.com/jcancelado/fiapp/internal/models"
	"github.com/jcancelado/fiapp/internal/repo"
)

type AuthService struct {
	Repo   *repo.GormRepo
	Events EventPublisher
}

// Identity is what a successful authentication yields. Role may still be
// unset, in which case the caller routes the user to role selection.
type Identity struct {
	UserID string
	Role   string
}

// Register stores a new user with no role. The email must not be taken.
func (s *AuthService) Register(ctx context.Context, email, password, userID string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if email == "" || password == "" || userID == "" {
		return "", fmt.Errorf("%w: email, password and user id are required", ErrInvalidArgument)
	}

	user := models.User{
		EmailKey:     hash.EmailKey(email),
		Email:        email,
		PasswordHash: hash.Password(password),
		UserID:       userID,
		Role:         models.RoleUnset,
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			l.Warn("register_rejected", "reason", "email already registered")
			return "", fmt.Errorf("%w: email already registered", ErrAlreadyExists)
		}
		l.Error("register_failed", "error", err)
		return "", fmt.Errorf("register: %w", err)
	}

	s.publish(ctx, user.EmailKey, map[string]any{
		"type":    "user_registered",
		"user_id": userID,
	})

	l.Info("register_ok", "user_id", userID)
	return userID, nil
}

// Authenticate verifies the credential. An unknown email and a wrong
// password both come back as ErrAuthenticationFailed, nothing in the
// result tells the two apart.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, ErrAuthenticationFailed
	}

	user, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed")
			return nil, ErrAuthenticationFailed
		}
		l.Error("login_error", "error", err)
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed")
		return nil, ErrAuthenticationFailed
	}

	l.Info("login_ok", "user_id", user.UserID, "role", user.Role)
	return &Identity{UserID: user.UserID, Role: user.Role}, nil
}

// AssignRole sets the role picked on the select-type step. A role is
// settable once: repeating the same choice is a no-op, switching an
// established role is rejected.
func (s *AuthService) AssignRole(ctx context.Context, email, role string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.assign_role")

	if role != models.RoleTendero && role != models.RoleCliente {
		return nil, fmt.Errorf("%w: role must be %q or %q", ErrInvalidArgument, models.RoleTendero, models.RoleCliente)
	}

	current, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, fmt.Errorf("assign role: %w", err)
	}
	if current.Role == role {
		return current, nil
	}
	if current.Role != models.RoleUnset {
		return nil, fmt.Errorf("%w: role already assigned", ErrAlreadyExists)
	}

	user, err := s.Repo.SetUserRole(ctx, email, role)
	if err != nil {
		return nil, fmt.Errorf("assign role: %w", err)
	}

	s.publish(ctx, user.EmailKey, map[string]any{
		"type":    "role_assigned",
		"user_id": user.UserID,
		"role":    role,
	})

	l.Info("role_assigned", "user_id", user.UserID, "role", role)
	return user, nil
}

// ListUsers returns every registered user, for admin use.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

// DeleteUser removes a user by email. Removing an absent user succeeds.
func (s *AuthService) DeleteUser(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidArgument)
	}
	return s.Repo.DeleteUser(ctx, email)
}

func (s *AuthService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishEvent(ctx, events.TopicUsers, key, event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", events.TopicUsers, "error", err)
	}
}

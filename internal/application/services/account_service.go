package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
	"github.com/moodbrew/moodbrew-backend/internal/domain/providers"
	"github.com/moodbrew/moodbrew-backend/internal/domain/repositories"
	"github.com/moodbrew/moodbrew-backend/internal/infrastructure/observability"
	apperrors "github.com/moodbrew/moodbrew-backend/pkg/errors"
)

const (
	adminEmail    = "admin@moodbrew.com"
	adminPassword = "admin"
	adminName     = "Admin User"

	resetCodeTTLSeconds = 600
)

// AccountService owns user records: credential checks, registration,
// federated upsert and the password reset flow. All failures are returned
// as typed errors, never panics, so callers can degrade gracefully.
type AccountService struct {
	users repositories.UserRepository
	cache providers.CacheProvider
}

// NewAccountService creates a new account service.
func NewAccountService(users repositories.UserRepository, cache providers.CacheProvider) *AccountService {
	return &AccountService{users: users, cache: cache}
}

// Init seeds the well-known admin account on first start. Calling it when
// the admin already exists is a no-op.
func (s *AccountService) Init(ctx context.Context) error {
	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == adminEmail {
			return nil
		}
	}

	return s.users.Append(ctx, entities.User{
		ID:       "admin",
		Email:    adminEmail,
		Password: adminPassword,
		Name:     adminName,
		Role:     entities.RoleAdmin,
		Provider: entities.ProviderLocal,
	})
}

// Login authenticates a local-provider account by exact email and password
// match. Federated accounts never match this path, even on email collision.
func (s *AccountService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password && u.Provider != entities.ProviderGoogle {
			return &u, nil
		}
	}
	return nil, apperrors.NewUnauthorizedError("invalid email or password")
}

// LoginWithGoogle upserts a federated account: the existing record for the
// email is returned when present, otherwise one is created with a generated
// id and avatar. It never fails for business reasons.
func (s *AccountService) LoginWithGoogle(ctx context.Context, email, name string) (*entities.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email && u.Provider == entities.ProviderGoogle {
			return &u, nil
		}
	}

	user := entities.User{
		ID:       "google_" + uuid.New().String(),
		Email:    email,
		Name:     name,
		Role:     entities.RoleUser,
		Provider: entities.ProviderGoogle,
		Avatar:   fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name)),
	}
	if err := s.users.Append(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a local-provider account. The email must be unused
// across all providers.
func (s *AccountService) Register(ctx context.Context, email, password, name, phoneNumber string) (*entities.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" || name == "" {
		return nil, apperrors.NewValidationError("email, password and name are required")
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, apperrors.NewConflictError("user already exists")
		}
	}

	user := entities.User{
		ID:          uuid.New().String(),
		Email:       email,
		Password:    password,
		Name:        name,
		PhoneNumber: phoneNumber,
		Role:        entities.RoleUser,
		Provider:    entities.ProviderLocal,
	}
	if err := s.users.Append(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserForReset matches a local-provider account on the exact
// (email, phone) pair.
func (s *AccountService) FindUserForReset(ctx context.Context, email, phoneNumber string) (*entities.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email && u.PhoneNumber == phoneNumber && u.Provider == entities.ProviderLocal {
			return &u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("no matching account")
}

// StartPasswordReset issues a short-lived 6-digit verification code for the
// account matching the (email, phone) pair. Delivery is simulated: the code
// is logged and handed back to the caller, standing in for an SMS gateway.
func (s *AccountService) StartPasswordReset(ctx context.Context, email, phoneNumber string) (string, error) {
	user, err := s.FindUserForReset(ctx, email, phoneNumber)
	if err != nil {
		return "", err
	}

	code, err := generateResetCode()
	if err != nil {
		return "", apperrors.NewInternalError("failed to generate verification code", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, resetCodeKey(user.ID), []byte(code), resetCodeTTLSeconds); err != nil {
			return "", apperrors.NewInternalError("failed to store verification code", err)
		}
	}

	observability.LoggerFromContext(ctx).Info().
		Str("user_id", user.ID).
		Msg("simulated SMS: password reset verification code issued")

	return code, nil
}

// CompletePasswordReset verifies the code issued by StartPasswordReset and
// updates the password.
func (s *AccountService) CompletePasswordReset(ctx context.Context, email, phoneNumber, code, newPassword string) error {
	if newPassword == "" {
		return apperrors.NewValidationError("new password is required")
	}

	user, err := s.FindUserForReset(ctx, email, phoneNumber)
	if err != nil {
		return err
	}

	if s.cache == nil {
		return apperrors.NewInternalError("verification is unavailable", nil)
	}

	stored, err := s.cache.Get(ctx, resetCodeKey(user.ID))
	if err != nil || string(stored) != code {
		return apperrors.NewUnauthorizedError("invalid verification code")
	}
	_ = s.cache.Delete(ctx, resetCodeKey(user.ID))

	ok, err := s.UpdatePassword(ctx, user.ID, newPassword)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewNotFoundError("user no longer exists")
	}
	return nil
}

// UpdatePassword sets a new password for the user. Returns false when the
// user does not exist.
func (s *AccountService) UpdatePassword(ctx context.Context, userID, newPassword string) (bool, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return false, err
	}

	for _, u := range users {
		if u.ID == userID {
			u.Password = newPassword
			return s.users.Update(ctx, u)
		}
	}
	return false, nil
}

// ListUsers returns all accounts for the admin view.
func (s *AccountService) ListUsers(ctx context.Context) ([]entities.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes an account. Deleting an admin account is rejected here
// rather than left to caller discipline; there is no code path that can
// remove the seeded admin. Emotion logs referencing the user are kept.
func (s *AccountService) DeleteUser(ctx context.Context, id string) error {
	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.ID == id {
			if u.IsAdmin() {
				return apperrors.NewUnauthorizedError("admin accounts cannot be deleted")
			}
			return s.users.Delete(ctx, id)
		}
	}
	return apperrors.NewNotFoundError("user not found")
}

func resetCodeKey(userID string) string {
	return "reset_code:" + userID
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

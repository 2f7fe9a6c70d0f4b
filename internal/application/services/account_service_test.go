package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodbrew/moodbrew-backend/internal/adapters/cache"
	"github.com/moodbrew/moodbrew-backend/internal/adapters/storage"
	"github.com/moodbrew/moodbrew-backend/internal/application/services"
	apperrors "github.com/moodbrew/moodbrew-backend/pkg/errors"
)

func newAccountService(t *testing.T) *services.AccountService {
	t.Helper()
	users := storage.NewUserAdapter(storage.NewMemoryStore())
	return services.NewAccountService(users, cache.NewMemoryAdapter())
}

func TestAccountService_Init_SeedsAdmin(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	require.NoError(t, service.Init(ctx))

	admin, err := service.Login(ctx, "admin@moodbrew.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.ID)
	assert.True(t, admin.IsAdmin())
}

func TestAccountService_Init_Idempotent(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	require.NoError(t, service.Init(ctx))
	require.NoError(t, service.Init(ctx))

	users, err := service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()
	require.NoError(t, service.Init(ctx))

	_, err := service.Login(ctx, "admin@moodbrew.com", "wrong")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestAccountService_Login_NeverMatchesFederatedAccount(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	_, err := service.LoginWithGoogle(ctx, "kim@example.com", "Kim")
	require.NoError(t, err)

	// A federated record has no usable password; even a blank one must not
	// let the local path through.
	_, err = service.Login(ctx, "kim@example.com", "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestAccountService_LoginWithGoogle_Upserts(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	first, err := service.LoginWithGoogle(ctx, "kim@example.com", "Kim")
	require.NoError(t, err)
	assert.Contains(t, first.ID, "google_")
	assert.NotEmpty(t, first.Avatar)

	second, err := service.LoginWithGoogle(ctx, "kim@example.com", "Kim")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	users, err := service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAccountService_Register(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, "lee@example.com", "secret", "Lee", "010-1234-5678")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Lee", user.Name)

	logged, err := service.Login(ctx, "lee@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "lee@example.com", "secret", "Lee", "")
	require.NoError(t, err)

	_, err = service.Register(ctx, "lee@example.com", "other", "Other Lee", "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
}

func TestAccountService_Register_ConflictsWithFederatedEmail(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	_, err := service.LoginWithGoogle(ctx, "kim@example.com", "Kim")
	require.NoError(t, err)

	_, err = service.Register(ctx, "kim@example.com", "secret", "Kim", "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		userName string
	}{
		{"no email", "", "secret", "Lee"},
		{"no password", "lee@example.com", "", "Lee"},
		{"no name", "lee@example.com", "secret", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(ctx, tt.email, tt.password, tt.userName, "")
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		})
	}
}

func TestAccountService_PasswordResetFlow(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "lee@example.com", "secret", "Lee", "010-1234-5678")
	require.NoError(t, err)

	code, err := service.StartPasswordReset(ctx, "lee@example.com", "010-1234-5678")
	require.NoError(t, err)
	assert.Len(t, code, 6)

	err = service.CompletePasswordReset(ctx, "lee@example.com", "010-1234-5678", code, "newsecret")
	require.NoError(t, err)

	_, err = service.Login(ctx, "lee@example.com", "secret")
	assert.Error(t, err)

	_, err = service.Login(ctx, "lee@example.com", "newsecret")
	assert.NoError(t, err)
}

func TestAccountService_PasswordReset_WrongCode(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "lee@example.com", "secret", "Lee", "010-1234-5678")
	require.NoError(t, err)

	_, err = service.StartPasswordReset(ctx, "lee@example.com", "010-1234-5678")
	require.NoError(t, err)

	err = service.CompletePasswordReset(ctx, "lee@example.com", "010-1234-5678", "000000", "newsecret")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestAccountService_PasswordReset_CodeIsSingleUse(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "lee@example.com", "secret", "Lee", "010-1234-5678")
	require.NoError(t, err)

	code, err := service.StartPasswordReset(ctx, "lee@example.com", "010-1234-5678")
	require.NoError(t, err)

	require.NoError(t, service.CompletePasswordReset(ctx, "lee@example.com", "010-1234-5678", code, "newsecret"))
	err = service.CompletePasswordReset(ctx, "lee@example.com", "010-1234-5678", code, "another")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestAccountService_PasswordReset_UnknownPair(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "lee@example.com", "secret", "Lee", "010-1234-5678")
	require.NoError(t, err)

	_, err = service.StartPasswordReset(ctx, "lee@example.com", "010-9999-9999")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestAccountService_DeleteUser(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()
	require.NoError(t, service.Init(ctx))

	user, err := service.Register(ctx, "lee@example.com", "secret", "Lee", "")
	require.NoError(t, err)

	require.NoError(t, service.DeleteUser(ctx, user.ID))

	users, err := service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAccountService_DeleteUser_AdminRejected(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()
	require.NoError(t, service.Init(ctx))

	err := service.DeleteUser(ctx, "admin")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))

	users, err := service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAccountService_DeleteUser_Unknown(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	err := service.DeleteUser(ctx, "nope")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedlink/internal/adapter/memory"
	"schedlink/internal/app"
	"schedlink/internal/domain"
)

func newAuthService() *app.AuthService {
	return app.NewAuthService(memory.New(), []byte("test-secret"), time.Hour)
}

func TestRegister_IssuesVerifiableToken(t *testing.T) {
	svc := newAuthService()

	user, token, err := svc.Register(context.Background(), "Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "ada@example.com", user.Email)

	sub, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, sub)
}

func TestRegister_Validation(t *testing.T) {
	svc := newAuthService()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "ada@example.com", "hunter22"},
		{"empty email", "Ada", "", "hunter22"},
		{"short password", "Ada", "ada@example.com", "abc"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), tc.userName, tc.email, tc.password)
			var validation *domain.ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Other Ada", "ADA@example.com", "hunter23")
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, app.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, app.ErrInvalidCredentials)
}

func TestVerifyToken_RejectsGarbage(t *testing.T) {
	svc := newAuthService()

	_, err := svc.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, app.ErrInvalidCredentials)
}

func TestVerifyToken_RejectsForeignSecret(t *testing.T) {
	issuer := app.NewAuthService(memory.New(), []byte("other-secret"), time.Hour)
	_, token, err := issuer.Register(context.Background(), "Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	svc := newAuthService()
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, app.ErrInvalidCredentials)
}

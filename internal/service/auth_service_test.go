package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/repository"
)

func newAuthService(t *testing.T) (*AuthService, *stubEmail) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	email := &stubEmail{}
	svc := NewAuthService(repository.NewUserRepository(db), email, zap.NewNop())
	return svc, email
}

func TestRegister(t *testing.T) {
	svc, email := newAuthService(t)

	resp, err := svc.Register(models.RegisterRequest{
		FullName: "Ravi Kumar",
		Email:    "ravi@example.com",
		Mobile:   "9876543210",
		Password: "s3cret!pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotZero(t, resp.User.ID)
	require.NotEqual(t, "s3cret!pass", resp.User.Password, "password must be hashed")
	require.Equal(t, []string{"ravi@example.com"}, email.welcomeTo)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	req := models.RegisterRequest{
		FullName: "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "s3cret!pass",
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterSucceedsWhenWelcomeEmailFails(t *testing.T) {
	svc, email := newAuthService(t)
	email.err = errFake

	resp, err := svc.Register(models.RegisterRequest{
		FullName: "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "s3cret!pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(models.RegisterRequest{
		FullName: "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "s3cret!pass",
	})
	require.NoError(t, err)

	resp, err := svc.Login(models.LoginRequest{Email: "ravi@example.com", Password: "s3cret!pass"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	_, err = svc.Login(models.LoginRequest{Email: "ravi@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(models.LoginRequest{Email: "nobody@example.com", Password: "s3cret!pass"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

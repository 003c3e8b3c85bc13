package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/opportunity-service/internal/auth"
	"github.com/spec-kit/opportunity-service/internal/config"
	"github.com/spec-kit/opportunity-service/internal/domain"
	"github.com/spec-kit/opportunity-service/internal/events"
	apperrors "github.com/spec-kit/opportunity-service/pkg/util"
)

func newTestExpiredToken(t *testing.T, user *domain.User) string {
	t.Helper()
	tm := auth.NewTokenManager("test-secret", -time.Minute)
	token, _, err := tm.Generate(user)
	require.NoError(t, err)
	return token
}

func newTestAuthService(users *fakeUserRepo, dispatcher events.Dispatcher) *AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			TokenTTLHours: 1,
			BcryptCost:    bcrypt.MinCost,
		},
	}
	return NewAuthService(cfg, AuthDependencies{UserRepo: users, Dispatcher: dispatcher})
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, nil)
	ctx := context.Background()

	user, token, exp, err := svc.Register(ctx, RegisterInput{
		Email:     "jane@example.com",
		Password:  "secret-pass",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEmpty(t, token)
	require.True(t, exp.After(time.Now()))
	require.Equal(t, domain.RoleUser, user.Role)
	require.Equal(t, "jane@example.com", user.Username) // defaults to email
	require.NotEqual(t, "secret-pass", user.PasswordHash)

	logged, loginToken, _, err := svc.Login(ctx, "jane@example.com", "secret-pass")
	require.NoError(t, err)
	require.Equal(t, user.ID, logged.ID)
	require.NotEmpty(t, loginToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, nil)
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "secret-pass", FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	_, _, _, err = svc.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "other-pass", FirstName: "Jane", LastName: "Doe"})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, 400, domainErr.HTTPStatus)
	require.Equal(t, "User already exists", domainErr.Message)
}

func TestLoginFailureIsUniform(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, nil)
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "secret-pass", FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	_, _, _, errWrongPass := svc.Login(ctx, "jane@example.com", "wrong")
	_, _, _, errNoUser := svc.Login(ctx, "nobody@example.com", "wrong")

	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	require.Equal(t, apperrors.ToDomainError(errWrongPass).Message, apperrors.ToDomainError(errNoUser).Message)
	require.Equal(t, 401, apperrors.ToDomainError(errWrongPass).HTTPStatus)
	require.Equal(t, 401, apperrors.ToDomainError(errNoUser).HTTPStatus)
}

func TestRefreshIssuesNewTokenForExpiredSession(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, nil)
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "secret-pass", FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	// issue an already-expired token with the same secret
	expired := newTestExpiredToken(t, user)
	token, exp, err := svc.Refresh(ctx, expired)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, exp.After(time.Now()))

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Identity().ID)
}

func TestRefreshRejectsDeletedUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users, nil)
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "secret-pass", FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)
	require.NoError(t, users.Delete(ctx, user.ID))

	expired := newTestExpiredToken(t, user)
	_, _, err = svc.Refresh(ctx, expired)
	require.Error(t, err)
	require.Equal(t, 401, apperrors.ToDomainError(err).HTTPStatus)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), nil)

	_, _, err := svc.Refresh(context.Background(), "not-a-token")
	require.Error(t, err)
	require.Equal(t, 401, apperrors.ToDomainError(err).HTTPStatus)
}

func TestAuthEventsReachDispatcher(t *testing.T) {
	users := newFakeUserRepo()
	dispatcher := events.NewInMemoryDispatcher()
	svc := newTestAuthService(users, dispatcher)
	ctx := context.Background()

	var seen []events.EventType
	record := func(_ context.Context, e events.Event) error {
		seen = append(seen, e.Type)
		return nil
	}
	dispatcher.Subscribe(events.EventUserRegistered, record)
	dispatcher.Subscribe(events.EventUserLoggedIn, record)

	_, _, _, err := svc.Register(ctx, RegisterInput{Email: "jane@example.com", Password: "secret-pass", FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)
	_, _, _, err = svc.Login(ctx, "jane@example.com", "secret-pass")
	require.NoError(t, err)

	require.Equal(t, []events.EventType{events.EventUserRegistered, events.EventUserLoggedIn}, seen)
}

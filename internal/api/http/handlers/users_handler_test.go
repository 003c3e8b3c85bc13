package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/opportunity-service/internal/api/http/handlers"
	"github.com/spec-kit/opportunity-service/internal/auth"
	"github.com/spec-kit/opportunity-service/internal/domain"
)

func TestProfileReturnsCurrentUser(t *testing.T) {
	users := newFakeUserRepo()
	authService := newTestAuthService(users)
	handler := handlers.NewUsersHandler(authService)
	tm := authService.TokenManager()

	user := &domain.User{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", Role: domain.RoleUser}
	require.NoError(t, users.Create(context.Background(), user))
	token, _, err := tm.Generate(user)
	require.NoError(t, err)

	app := newTestApp()
	app.Get("/api/user/profile", auth.RequireAuthenticated(tm), handler.Profile)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, user.ID, body["id"])
	require.Equal(t, "jane@example.com", body["email"])
	require.NotContains(t, body, "passwordHash")
}

func TestProfileMissingUserReturns404(t *testing.T) {
	users := newFakeUserRepo()
	authService := newTestAuthService(users)
	handler := handlers.NewUsersHandler(authService)
	tm := authService.TokenManager()

	// token for an account that no longer exists
	token, _, err := tm.Generate(&domain.User{ID: "gone", Email: "gone@example.com", Role: domain.RoleUser})
	require.NoError(t, err)

	app := newTestApp()
	app.Get("/api/user/profile", auth.RequireAuthenticated(tm), handler.Profile)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

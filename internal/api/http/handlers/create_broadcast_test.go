package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/opportunity-service/internal/api/dto"
	"github.com/spec-kit/opportunity-service/internal/api/http/handlers"
	"github.com/spec-kit/opportunity-service/internal/auth"
	"github.com/spec-kit/opportunity-service/internal/domain"
	"github.com/spec-kit/opportunity-service/internal/service"
)

func adminToken(t *testing.T, tm *auth.TokenManager) string {
	t.Helper()
	token, _, err := tm.Generate(&domain.User{ID: "admin-1", Email: "admin@example.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	return token
}

func TestAdminCreateScholarshipBroadcastsOnce(t *testing.T) {
	repo := newFakeScholarshipRepo()
	content := service.NewContentService(service.ContentDependencies{ScholarshipRepo: repo})
	hub := &fakeBroadcaster{}
	handler := handlers.NewScholarshipsHandler(content, hub, false)

	authService := newTestAuthService(newFakeUserRepo())
	tm := authService.TokenManager()

	app := newTestApp()
	app.Post("/api/scholarships", auth.RequireAuthenticated(tm), auth.RequireAdmin(), handler.Create())

	req := jsonRequest(t, http.MethodPost, "/api/scholarships", map[string]any{
		"title":       "Fulbright Program",
		"description": "Graduate study grants",
		"institution": "Fulbright",
		"country":     "US",
		"amount":      "full tuition",
		"deadline":    time.Now().Add(90 * 24 * time.Hour).Format(time.RFC3339),
	})
	req.Header.Set("Authorization", "Bearer "+adminToken(t, tm))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created domain.Scholarship
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.NotEmpty(t, created.ID)
	require.Equal(t, "admin-1", created.CreatedBy)
	require.True(t, created.IsActive)

	// exactly one broadcast and its payload is the stored entity
	require.Equal(t, []string{"scholarships"}, hub.channels)
	sent, ok := hub.payloads[0].(*domain.Scholarship)
	require.True(t, ok)
	require.Equal(t, created.ID, sent.ID)
	require.Equal(t, created.Title, sent.Title)
}

func TestAdminCreateValidationFailureDoesNotBroadcast(t *testing.T) {
	repo := newFakeScholarshipRepo()
	content := service.NewContentService(service.ContentDependencies{ScholarshipRepo: repo})
	hub := &fakeBroadcaster{}
	handler := handlers.NewScholarshipsHandler(content, hub, false)

	authService := newTestAuthService(newFakeUserRepo())
	tm := authService.TokenManager()

	app := newTestApp()
	app.Post("/api/scholarships", auth.RequireAuthenticated(tm), auth.RequireAdmin(), handler.Create())

	req := jsonRequest(t, http.MethodPost, "/api/scholarships", map[string]any{
		"title": "Incomplete",
	})
	req.Header.Set("Authorization", "Bearer "+adminToken(t, tm))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "Operation failed", body["message"])
	require.NotEmpty(t, body["error"]) // detail exposed outside production

	require.Empty(t, hub.channels)
	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestAdminCreateHidesDetailInProduction(t *testing.T) {
	hub := &fakeBroadcaster{}
	create := func(context.Context, string, dto.CreateScholarshipRequest) (*domain.Scholarship, error) {
		return nil, errors.New("connection reset by peer")
	}
	handler := handlers.CreateBroadcast(create, hub, "scholarships", true)

	authService := newTestAuthService(newFakeUserRepo())
	tm := authService.TokenManager()

	app := newTestApp()
	app.Post("/api/scholarships", auth.RequireAuthenticated(tm), auth.RequireAdmin(), handler)

	req := jsonRequest(t, http.MethodPost, "/api/scholarships", map[string]any{
		"title":       "Fulbright Program",
		"description": "Graduate study grants",
		"institution": "Fulbright",
		"country":     "US",
		"deadline":    time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	req.Header.Set("Authorization", "Bearer "+adminToken(t, tm))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "Operation failed", body["message"])
	require.NotContains(t, body, "error")
	require.Empty(t, hub.channels)
}

func TestAdminCreateRequiresAdminRole(t *testing.T) {
	repo := newFakeScholarshipRepo()
	content := service.NewContentService(service.ContentDependencies{ScholarshipRepo: repo})
	hub := &fakeBroadcaster{}
	handler := handlers.NewScholarshipsHandler(content, hub, false)

	authService := newTestAuthService(newFakeUserRepo())
	tm := authService.TokenManager()

	app := newTestApp()
	app.Post("/api/scholarships", auth.RequireAuthenticated(tm), auth.RequireAdmin(), handler.Create())

	token, _, err := tm.Generate(&domain.User{ID: "u1", Email: "user@example.com", Role: domain.RoleUser})
	require.NoError(t, err)

	req := jsonRequest(t, http.MethodPost, "/api/scholarships", map[string]any{"title": "x"})
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Empty(t, hub.channels)
}

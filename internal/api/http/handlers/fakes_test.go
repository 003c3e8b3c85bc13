package handlers_test

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/spec-kit/opportunity-service/internal/api/http"
	"github.com/spec-kit/opportunity-service/internal/config"
	"github.com/spec-kit/opportunity-service/internal/domain"
	"github.com/spec-kit/opportunity-service/internal/observability"
	"github.com/spec-kit/opportunity-service/internal/service"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0, false)
	return app
}

func newTestAuthService(users *fakeUserRepo) *service.AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			TokenTTLHours: 1,
			BcryptCost:    bcrypt.MinCost,
		},
	}
	return service.NewAuthService(cfg, service.AuthDependencies{UserRepo: users})
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeScholarshipRepo struct {
	mu    sync.Mutex
	items map[string]*domain.Scholarship
}

func newFakeScholarshipRepo() *fakeScholarshipRepo {
	return &fakeScholarshipRepo{items: make(map[string]*domain.Scholarship)}
}

func (r *fakeScholarshipRepo) Create(_ context.Context, s *domain.Scholarship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeScholarshipRepo) Update(_ context.Context, s *domain.Scholarship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[s.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeScholarshipRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeScholarshipRepo) GetByID(_ context.Context, id string) (*domain.Scholarship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeScholarshipRepo) List(_ context.Context) ([]domain.Scholarship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Scholarship, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeScholarshipRepo) ListActive(_ context.Context) ([]domain.Scholarship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Scholarship, 0, len(r.items))
	for _, s := range r.items {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeScholarshipRepo) Search(ctx context.Context, _ string) ([]domain.Scholarship, error) {
	return r.ListActive(ctx)
}

// fakeBroadcaster records broadcasts for assertions.
type fakeBroadcaster struct {
	mu       sync.Mutex
	channels []string
	payloads []any
}

func (b *fakeBroadcaster) Broadcast(channel string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.channels = append(b.channels, channel)
	b.payloads = append(b.payloads, payload)
}

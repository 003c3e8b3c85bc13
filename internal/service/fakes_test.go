package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/opportunity-service/internal/domain"
)

// In-memory repository fakes backing the service tests.

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

type fakeJobRepo struct {
	mu    sync.Mutex
	items map[string]*domain.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{items: make(map[string]*domain.Job)}
}

func (r *fakeJobRepo) Create(_ context.Context, j *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	cp := *j
	r.items[j.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, j *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[j.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *j
	r.items[j.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.items[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeJobRepo) List(_ context.Context) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Job, 0, len(r.items))
	for _, j := range r.items {
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) ListActive(_ context.Context) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Job, 0, len(r.items))
	for _, j := range r.items {
		if j.IsActive {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Search(ctx context.Context, _ string) ([]domain.Job, error) {
	return r.ListActive(ctx)
}

type fakeBlogPostRepo struct {
	mu    sync.Mutex
	items map[string]*domain.BlogPost
}

func newFakeBlogPostRepo() *fakeBlogPostRepo {
	return &fakeBlogPostRepo{items: make(map[string]*domain.BlogPost)}
}

func (r *fakeBlogPostRepo) Create(_ context.Context, p *domain.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeBlogPostRepo) Update(_ context.Context, p *domain.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeBlogPostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeBlogPostRepo) GetByID(_ context.Context, id string) (*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeBlogPostRepo) List(_ context.Context) ([]domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.BlogPost, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeBlogPostRepo) ListPublished(_ context.Context) ([]domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.BlogPost, 0, len(r.items))
	for _, p := range r.items {
		if p.IsPublished {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeTestimonialRepo struct {
	mu    sync.Mutex
	items map[string]*domain.Testimonial
}

func newFakeTestimonialRepo() *fakeTestimonialRepo {
	return &fakeTestimonialRepo{items: make(map[string]*domain.Testimonial)}
}

func (r *fakeTestimonialRepo) Create(_ context.Context, t *domain.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *fakeTestimonialRepo) Update(_ context.Context, t *domain.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[t.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *fakeTestimonialRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeTestimonialRepo) GetByID(_ context.Context, id string) (*domain.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.items[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTestimonialRepo) List(_ context.Context) ([]domain.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Testimonial, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTestimonialRepo) ListApproved(_ context.Context) ([]domain.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Testimonial, 0, len(r.items))
	for _, t := range r.items {
		if t.IsApproved {
			out = append(out, *t)
		}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	mu    sync.Mutex
	items map[string]*domain.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{items: make(map[string]*domain.Application)}
}

func (r *fakeApplicationRepo) Create(_ context.Context, a *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.items[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeApplicationRepo) ListByUser(_ context.Context, userID string) ([]domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Application, 0)
	for _, a := range r.items {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) List(_ context.Context) ([]domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Application, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	a.Status = status
	cp := *a
	return &cp, nil
}

// fakeBroadcaster records every broadcast for assertions.
type fakeBroadcaster struct {
	mu     sync.Mutex
	calls  []string
	last   any
	byChan map[string][]any
}

func newFakeBroadcaster() *fakeBroadcaster {
	return &fakeBroadcaster{byChan: make(map[string][]any)}
}

func (b *fakeBroadcaster) Broadcast(channel string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, channel)
	b.last = payload
	b.byChan[channel] = append(b.byChan[channel], payload)
}

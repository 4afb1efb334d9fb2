package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"fitsphere/backend/internal/domain"
	"fitsphere/backend/internal/planner"
	"fitsphere/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStore = errors.New("store unavailable")

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]domain.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = *u
	return u.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[primitive.ObjectID]domain.Profile
	err      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[primitive.ObjectID]domain.Profile{}}
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	now := time.Now().UTC()
	stored := *p
	if existing, ok := r.profiles[p.UserID]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.ID = primitive.NewObjectID()
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	r.profiles[p.UserID] = stored
	return &stored, nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

type fakePlanRepo struct {
	mu    sync.Mutex
	plans []domain.WorkoutPlan
	err   error
}

func (r *fakePlanRepo) Create(_ context.Context, p *domain.WorkoutPlan) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	r.plans = append(r.plans, *p)
	return p.ID, nil
}

func (r *fakePlanRepo) GetLatestByUserID(_ context.Context, userID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for i := len(r.plans) - 1; i >= 0; i-- {
		if r.plans[i].UserID == userID {
			p := r.plans[i]
			p.Completions = copyCompletions(p.Completions)
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePlanRepo) SetCompletion(_ context.Context, planID primitive.ObjectID, key string, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for i := range r.plans {
		if r.plans[i].ID != planID {
			continue
		}
		if r.plans[i].Completions == nil {
			r.plans[i].Completions = map[string]bool{}
		}
		if completed {
			r.plans[i].Completions[key] = true
		} else {
			delete(r.plans[i].Completions, key)
		}
		return nil
	}
	return repository.ErrNotFound
}

func copyCompletions(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type fakeMetricRepo struct {
	mu      sync.Mutex
	metrics map[string]domain.ProgressMetric
	err     error
}

func newFakeMetricRepo() *fakeMetricRepo {
	return &fakeMetricRepo{metrics: map[string]domain.ProgressMetric{}}
}

func (r *fakeMetricRepo) Upsert(_ context.Context, m *domain.ProgressMetric) (*domain.ProgressMetric, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	key := m.UserID.Hex() + "/" + m.DateRecorded
	stored := *m
	if existing, ok := r.metrics[key]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.ID = primitive.NewObjectID()
		stored.CreatedAt = time.Now().UTC()
	}
	stored.UpdatedAt = time.Now().UTC()
	r.metrics[key] = stored
	return &stored, nil
}

func (r *fakeMetricRepo) ListRecentByUserID(_ context.Context, userID primitive.ObjectID, limit int64) ([]domain.ProgressMetric, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.ProgressMetric{}
	for _, m := range r.metrics {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateRecorded > out[j].DateRecorded })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions []domain.WorkoutSession
	err      error
}

func (r *fakeSessionRepo) Create(_ context.Context, s *domain.WorkoutSession) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	s.ID = primitive.NewObjectID()
	if s.DateCompleted.IsZero() {
		s.DateCompleted = time.Now().UTC()
	}
	r.sessions = append(r.sessions, *s)
	return s.ID, nil
}

func (r *fakeSessionRepo) ListRecentByUserID(_ context.Context, userID primitive.ObjectID, limit int64) ([]domain.WorkoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.WorkoutSession{}
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DateCompleted.After(out[j].DateCompleted) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSessionRepo) CountByUserID(_ context.Context, userID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for _, s := range r.sessions {
		if s.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeAchievementRepo struct {
	mu           sync.Mutex
	achievements []domain.Achievement
	err          error
}

func (r *fakeAchievementRepo) Create(_ context.Context, a *domain.Achievement) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	for _, existing := range r.achievements {
		if existing.UserID == a.UserID && existing.Name == a.Name {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now().UTC()
	r.achievements = append(r.achievements, *a)
	return a.ID, nil
}

func (r *fakeAchievementRepo) ListByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.Achievement{}
	for i := len(r.achievements) - 1; i >= 0; i-- {
		if r.achievements[i].UserID == userID {
			out = append(out, r.achievements[i])
		}
	}
	return out, nil
}

func (r *fakeAchievementRepo) ExistsByName(_ context.Context, userID primitive.ObjectID, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	for _, a := range r.achievements {
		if a.UserID == userID && a.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAchievementRepo) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, a := range r.achievements {
		out = append(out, a.Name)
	}
	return out
}

type fakeFormRepo struct {
	mu       sync.Mutex
	analyses []domain.FormAnalysis
	err      error
}

func (r *fakeFormRepo) Create(_ context.Context, a *domain.FormAnalysis) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	a.ID = primitive.NewObjectID()
	r.analyses = append(r.analyses, *a)
	return a.ID, nil
}

func (r *fakeFormRepo) ListRecentByUserID(_ context.Context, userID primitive.ObjectID, limit int64) ([]domain.FormAnalysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.FormAnalysis{}
	for i := len(r.analyses) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if r.analyses[i].UserID == userID {
			out = append(out, r.analyses[i])
		}
	}
	return out, nil
}

// fakeStorage records uploaded objects in memory.
type fakeStorage struct {
	mu         sync.Mutex
	objects    map[string][]byte
	types      map[string]string
	putErr     error
	presignErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *fakeStorage) PutObject(_ context.Context, key string, body io.Reader, _ int64, contentType string) error {
	if s.putErr != nil {
		return s.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	s.types[key] = contentType
	return nil
}

func (s *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	if s.presignErr != nil {
		return "", s.presignErr
	}
	return "https://storage.test/" + key, nil
}

func (s *fakeStorage) DeleteObject(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	delete(s.types, key)
	return nil
}

// fakeGenerator returns fixed results and records the params it was given.
type fakeGenerator struct {
	result planner.Result
	err    error
	calls  []planner.Params
}

func (g *fakeGenerator) Generate(_ context.Context, p planner.Params) (planner.Result, error) {
	g.calls = append(g.calls, p)
	return g.result, g.err
}

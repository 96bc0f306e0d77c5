package memory

import (
	"context"
	"sync"

	"github.com/passportpals/passportpals-backend/internal/domain"
	"github.com/passportpals/passportpals-backend/internal/repository"
	"github.com/passportpals/passportpals-backend/internal/storage"
)

type stateRepository struct {
	mu                 sync.RWMutex
	currentUser        *domain.Profile
	settings           domain.UserSettings
	onboardingComplete bool
	demoMode           bool

	store storage.Store
	ns    storage.Namespace
}

func NewStateRepository(store storage.Store, ns storage.Namespace) repository.StateRepository {
	r := &stateRepository{
		settings: domain.DefaultSettings(),
		store:    store,
		ns:       ns,
	}

	ctx := context.Background()
	var user domain.Profile
	if storage.LoadJSON(ctx, store, ns.Key(storage.KeyUser), &user) {
		r.currentUser = &user
	}
	storage.LoadJSON(ctx, store, ns.Key(storage.KeySettings), &r.settings)
	storage.LoadJSON(ctx, store, ns.Key(storage.KeyOnboarding), &r.onboardingComplete)
	storage.LoadJSON(ctx, store, ns.Key(storage.KeyDemoMode), &r.demoMode)
	return r
}

func (r *stateRepository) CurrentUser(_ context.Context) (*domain.Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentUser, r.currentUser != nil
}

func (r *stateRepository) SetCurrentUser(ctx context.Context, user *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentUser = user
	return storage.SaveJSON(ctx, r.store, r.ns.Key(storage.KeyUser), user)
}

func (r *stateRepository) ClearCurrentUser(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentUser = nil
	return r.store.Delete(ctx, r.ns.Key(storage.KeyUser))
}

func (r *stateRepository) Settings(_ context.Context) domain.UserSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

func (r *stateRepository) SetSettings(ctx context.Context, settings domain.UserSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings
	return storage.SaveJSON(ctx, r.store, r.ns.Key(storage.KeySettings), settings)
}

func (r *stateRepository) OnboardingComplete(_ context.Context) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.onboardingComplete
}

func (r *stateRepository) SetOnboardingComplete(ctx context.Context, complete bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onboardingComplete = complete
	return storage.SaveJSON(ctx, r.store, r.ns.Key(storage.KeyOnboarding), complete)
}

func (r *stateRepository) DemoMode(_ context.Context) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.demoMode
}

func (r *stateRepository) SetDemoMode(ctx context.Context, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.demoMode = enabled
	return storage.SaveJSON(ctx, r.store, r.ns.Key(storage.KeyDemoMode), enabled)
}

func (r *stateRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.currentUser = nil
	r.settings = domain.DefaultSettings()
	r.onboardingComplete = false
	r.demoMode = false

	for _, key := range []string{storage.KeyUser, storage.KeySettings, storage.KeyOnboarding, storage.KeyDemoMode} {
		if err := r.store.Delete(ctx, r.ns.Key(key)); err != nil {
			return err
		}
	}
	return nil
}

package users

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo keeps profiles in process for dev runs without a database.
type MemoryRepo struct {
	mu       sync.RWMutex
	profiles map[string]User
	now      func() time.Time
}

var _ Repo = (*MemoryRepo)(nil)

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		profiles: make(map[string]User),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepo) Upsert(ctx context.Context, user User) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	stored, ok := r.profiles[user.ID]
	if !ok {
		stored = User{ID: user.ID, CreatedAt: now}
	}
	stored = merge(stored, user, now)
	r.profiles[user.ID] = stored
	return stored, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if profile, ok := r.profiles[userID]; ok {
		return profile, nil
	}
	return User{}, ErrNotFound
}

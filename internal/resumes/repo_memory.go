package resumes

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo. It is safe for concurrent use and enforces
// (owner, version) uniqueness under its lock.
type MemoryRepo struct {
	mu      sync.RWMutex
	byOwner map[string]map[int]Resume
	now     func() time.Time
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byOwner: make(map[string]map[int]Resume),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepo) NextVersion(ctx context.Context, ownerID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	highest := 0
	for v := range r.byOwner[ownerID] {
		if v > highest {
			highest = v
		}
	}
	return highest + 1, nil
}

func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Resume, 0, len(r.byOwner[ownerID]))
	for _, doc := range r.byOwner[ownerID] {
		out = append(out, doc.clone())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Version > out[j].Version
	})
	return out, nil
}

func (r *MemoryRepo) Latest(ctx context.Context, ownerID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var (
		latest Resume
		found  bool
	)
	for v, doc := range r.byOwner[ownerID] {
		if !found || v > latest.Version {
			latest = doc
			found = true
		}
	}
	if !found {
		return Resume{}, ErrNotFound
	}
	return latest.clone(), nil
}

func (r *MemoryRepo) Get(ctx context.Context, ownerID string, version int) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.byOwner[ownerID][version]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return doc.clone(), nil
}

func (r *MemoryRepo) Insert(ctx context.Context, resume Resume) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	if resume.Version <= 0 {
		return Resume{}, errors.New("version must be positive")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	versions, ok := r.byOwner[resume.OwnerID]
	if !ok {
		versions = make(map[int]Resume)
		r.byOwner[resume.OwnerID] = versions
	}
	if _, exists := versions[resume.Version]; exists {
		return Resume{}, ErrVersionConflict
	}
	now := r.now()
	resume.CreatedAt = now
	resume.UpdatedAt = now
	versions[resume.Version] = resume.clone()
	return resume.clone(), nil
}

func (r *MemoryRepo) Update(ctx context.Context, resume Resume) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byOwner[resume.OwnerID][resume.Version]
	if !ok {
		return Resume{}, ErrNotFound
	}
	existing.Template = resume.Template
	existing.Content = resume.Content.clone()
	existing.Active = resume.Active
	existing.UpdatedAt = r.now()
	r.byOwner[resume.OwnerID][resume.Version] = existing
	return existing.clone(), nil
}

func (r *MemoryRepo) Delete(ctx context.Context, ownerID string, version int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	versions := r.byOwner[ownerID]
	if _, ok := versions[version]; !ok {
		return ErrNotFound
	}
	delete(versions, version)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)

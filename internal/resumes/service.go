package resumes

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/shared/metrics"
)

// Service implements the resume version store on top of a Repo.
type Service struct {
	Repo Repo
	// InsertAttempts bounds how many times a create re-reads the next version after
	// ErrVersionConflict. Values below 1 mean a single attempt.
	InsertAttempts int
}

// Draft is the caller-supplied part of a new resume.
type Draft struct {
	Template string
	Content  Content
	Active   *bool
}

// MaxVersion is the largest version the resumes.version column can hold.
const MaxVersion = math.MaxInt32

// ParseVersion converts a path parameter into a positive version number.
func ParseVersion(raw string) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil || v <= 0 {
		return 0, invalidVersion()
	}
	return int(v), nil
}

// Create validates the draft and stores it as the owner's next version.
func (s *Service) Create(ctx context.Context, ownerID string, draft Draft) (Resume, error) {
	if err := requireOwner(ownerID); err != nil {
		return Resume{}, err
	}
	doc := Resume{
		OwnerID:  ownerID,
		Template: strings.TrimSpace(draft.Template),
		Content:  draft.Content,
		Active:   true,
	}
	if doc.Template == "" {
		doc.Template = DefaultTemplate
	}
	if draft.Active != nil {
		doc.Active = *draft.Active
	}
	if err := doc.Content.Validate(); err != nil {
		return Resume{}, err
	}
	return s.insertNext(ctx, doc)
}

// ListVersions returns summaries for every version, newest first.
func (s *Service) ListVersions(ctx context.Context, ownerID string) ([]Summary, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	docs, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.Summary())
	}
	return out, nil
}

// GetLatest returns the owner's highest version.
func (s *Service) GetLatest(ctx context.Context, ownerID string) (Resume, error) {
	if err := requireOwner(ownerID); err != nil {
		return Resume{}, err
	}
	return s.Repo.Latest(ctx, ownerID)
}

// GetVersion returns one exact version.
func (s *Service) GetVersion(ctx context.Context, ownerID string, version int) (Resume, error) {
	if err := requireOwnerAndVersion(ownerID, version); err != nil {
		return Resume{}, err
	}
	return s.Repo.Get(ctx, ownerID, version)
}

// UpdateVersion applies patch to an existing version and re-validates the result.
func (s *Service) UpdateVersion(ctx context.Context, ownerID string, version int, patch Patch) (Resume, error) {
	if err := requireOwnerAndVersion(ownerID, version); err != nil {
		return Resume{}, err
	}
	existing, err := s.Repo.Get(ctx, ownerID, version)
	if err != nil {
		return Resume{}, err
	}
	updated := patch.apply(existing)
	updated.Template = strings.TrimSpace(updated.Template)
	if updated.Template == "" {
		return Resume{}, invalidField("template", "required", "template is required")
	}
	if err := updated.Content.Validate(); err != nil {
		return Resume{}, err
	}
	return s.Repo.Update(ctx, updated)
}

// DeleteVersion removes exactly one version. Siblings keep their numbers.
func (s *Service) DeleteVersion(ctx context.Context, ownerID string, version int) error {
	if err := requireOwnerAndVersion(ownerID, version); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, ownerID, version)
}

// DuplicateVersion copies a version forward into a new highest version.
func (s *Service) DuplicateVersion(ctx context.Context, ownerID string, version int) (Resume, error) {
	return s.copyForward(ctx, ownerID, version)
}

// RollbackTo restores an older version's content as a new highest version.
// Nothing existing is modified or removed.
func (s *Service) RollbackTo(ctx context.Context, ownerID string, version int) (Resume, error) {
	return s.copyForward(ctx, ownerID, version)
}

func (s *Service) copyForward(ctx context.Context, ownerID string, version int) (Resume, error) {
	if err := requireOwnerAndVersion(ownerID, version); err != nil {
		return Resume{}, err
	}
	source, err := s.Repo.Get(ctx, ownerID, version)
	if err != nil {
		return Resume{}, err
	}
	return s.insertNext(ctx, Resume{
		OwnerID:  ownerID,
		Template: source.Template,
		Content:  source.Content.clone(),
		Active:   source.Active,
	})
}

func (s *Service) insertNext(ctx context.Context, doc Resume) (Resume, error) {
	attempts := s.InsertAttempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		next, err := s.Repo.NextVersion(ctx, doc.OwnerID)
		if err != nil {
			return Resume{}, err
		}
		doc.ID = uuid.NewString()
		doc.Version = next
		created, err := s.Repo.Insert(ctx, doc)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return Resume{}, err
		}
		metrics.IncVersionConflict()
		lastErr = err
	}
	return Resume{}, lastErr
}

func requireOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return invalidField("owner", "required", "owner is required")
	}
	return nil
}

func requireOwnerAndVersion(ownerID string, version int) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if version <= 0 || version > MaxVersion {
		return invalidVersion()
	}
	return nil
}

func invalidVersion() error {
	return invalidField("version", "positive_integer", "version must be a positive integer")
}

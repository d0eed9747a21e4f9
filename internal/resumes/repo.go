package resumes

import "context"

// Repo defines the document-store primitives the version store composes.
// Implementations must reject a second live document for the same (owner, version)
// with ErrVersionConflict.
type Repo interface {
	// NextVersion returns max(version)+1 for the owner, or 1 when none exist.
	NextVersion(ctx context.Context, ownerID string) (int, error)
	// ListByOwner returns every document for the owner ordered by version descending.
	// Section lists may be omitted; personal info is always populated.
	ListByOwner(ctx context.Context, ownerID string) ([]Resume, error)
	Latest(ctx context.Context, ownerID string) (Resume, error)
	Get(ctx context.Context, ownerID string, version int) (Resume, error)
	// Insert stores a new document and returns it with store-assigned timestamps.
	Insert(ctx context.Context, resume Resume) (Resume, error)
	// Update overwrites template, content and active flag of the matching document.
	Update(ctx context.Context, resume Resume) (Resume, error)
	Delete(ctx context.Context, ownerID string, version int) error
}

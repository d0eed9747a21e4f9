package resumes

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// PGRepo implements Repo using Postgres. The resumes table carries
// UNIQUE (owner_id, version), which is what rejects racing inserts.
type PGRepo struct {
	DB *sql.DB
}

// sections is the JSONB layout of the list-valued resume content.
type sections struct {
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
}

// NextVersion returns the next free version for an owner.
func (r *PGRepo) NextVersion(ctx context.Context, ownerID string) (int, error) {
	const query = `
SELECT COALESCE(MAX(version), 0) + 1
FROM resumes
WHERE owner_id = $1`
	var next int
	if err := r.DB.QueryRowContext(ctx, query, ownerID).Scan(&next); err != nil {
		return 0, classifyPGError(err)
	}
	return next, nil
}

// ListByOwner lists summaries newest-version first. Section lists are not loaded.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	const query = `
SELECT id, owner_id, version, template, personal_info, is_active, created_at, updated_at
FROM resumes
WHERE owner_id = $1
ORDER BY version DESC`

	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, classifyPGError(err)
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		var (
			doc          Resume
			personalInfo []byte
		)
		if err := rows.Scan(
			&doc.ID,
			&doc.OwnerID,
			&doc.Version,
			&doc.Template,
			&personalInfo,
			&doc.Active,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		); err != nil {
			return nil, classifyPGError(err)
		}
		if err := json.Unmarshal(personalInfo, &doc.Content.PersonalInfo); err != nil {
			return nil, fmt.Errorf("decode personal_info: %w", err)
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPGError(err)
	}
	return out, nil
}

// Latest returns the highest version for an owner.
func (r *PGRepo) Latest(ctx context.Context, ownerID string) (Resume, error) {
	const query = `
SELECT id, owner_id, version, template, personal_info, sections, is_active, created_at, updated_at
FROM resumes
WHERE owner_id = $1
ORDER BY version DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, ownerID))
}

// Get returns the exact (owner, version) document.
func (r *PGRepo) Get(ctx context.Context, ownerID string, version int) (Resume, error) {
	const query = `
SELECT id, owner_id, version, template, personal_info, sections, is_active, created_at, updated_at
FROM resumes
WHERE owner_id = $1 AND version = $2
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, ownerID, version))
}

// Insert writes a new version; a duplicate (owner, version) yields ErrVersionConflict.
func (r *PGRepo) Insert(ctx context.Context, resume Resume) (Resume, error) {
	const query = `
INSERT INTO resumes (
    id,
    owner_id,
    version,
    template,
    personal_info,
    sections,
    is_active,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING created_at, updated_at`

	personalInfo, sectionsJSON, err := encodeContent(resume.Content)
	if err != nil {
		return Resume{}, err
	}
	err = r.DB.QueryRowContext(ctx, query,
		resume.ID,
		resume.OwnerID,
		resume.Version,
		resume.Template,
		personalInfo,
		sectionsJSON,
		resume.Active,
	).Scan(&resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		return Resume{}, classifyPGError(err)
	}
	return resume, nil
}

// Update overwrites the mutable fields of an existing version and refreshes updated_at.
func (r *PGRepo) Update(ctx context.Context, resume Resume) (Resume, error) {
	const query = `
UPDATE resumes
SET template = $1, personal_info = $2, sections = $3, is_active = $4, updated_at = now()
WHERE owner_id = $5 AND version = $6
RETURNING id, created_at, updated_at`

	personalInfo, sectionsJSON, err := encodeContent(resume.Content)
	if err != nil {
		return Resume{}, err
	}
	err = r.DB.QueryRowContext(ctx, query,
		resume.Template,
		personalInfo,
		sectionsJSON,
		resume.Active,
		resume.OwnerID,
		resume.Version,
	).Scan(&resume.ID, &resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, classifyPGError(err)
	}
	return resume, nil
}

// Delete removes exactly one version.
func (r *PGRepo) Delete(ctx context.Context, ownerID string, version int) error {
	const query = `
DELETE FROM resumes
WHERE owner_id = $1 AND version = $2`
	res, err := r.DB.ExecContext(ctx, query, ownerID, version)
	if err != nil {
		return classifyPGError(err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return classifyPGError(err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) scanOne(row *sql.Row) (Resume, error) {
	var (
		doc          Resume
		personalInfo []byte
		sectionsJSON []byte
	)
	err := row.Scan(
		&doc.ID,
		&doc.OwnerID,
		&doc.Version,
		&doc.Template,
		&personalInfo,
		&sectionsJSON,
		&doc.Active,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, classifyPGError(err)
	}
	content, err := decodeContent(personalInfo, sectionsJSON)
	if err != nil {
		return Resume{}, err
	}
	doc.Content = content
	return doc, nil
}

func encodeContent(c Content) (string, string, error) {
	personalInfo, err := json.Marshal(c.PersonalInfo)
	if err != nil {
		return "", "", fmt.Errorf("encode personal_info: %w", err)
	}
	sectionsJSON, err := json.Marshal(sections{
		Education:      c.Education,
		Experience:     c.Experience,
		Skills:         c.Skills,
		Projects:       c.Projects,
		Certifications: c.Certifications,
		Languages:      c.Languages,
	})
	if err != nil {
		return "", "", fmt.Errorf("encode sections: %w", err)
	}
	return string(personalInfo), string(sectionsJSON), nil
}

func decodeContent(personalInfo, sectionsJSON []byte) (Content, error) {
	var c Content
	if err := json.Unmarshal(personalInfo, &c.PersonalInfo); err != nil {
		return Content{}, fmt.Errorf("decode personal_info: %w", err)
	}
	var s sections
	if len(sectionsJSON) > 0 {
		if err := json.Unmarshal(sectionsJSON, &s); err != nil {
			return Content{}, fmt.Errorf("decode sections: %w", err)
		}
	}
	c.Education = s.Education
	c.Experience = s.Experience
	c.Skills = s.Skills
	c.Projects = s.Projects
	c.Certifications = s.Certifications
	c.Languages = s.Languages
	c.normalize()
	return c, nil
}

// classifyPGError maps driver failures onto the store's typed errors.
func classifyPGError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return errors.Join(ErrVersionConflict, err)
	}
	var connErr *pgconn.ConnectError
	switch {
	case errors.As(err, &connErr),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded):
		return errors.Join(ErrStorageUnavailable, err)
	}
	return err
}

var _ Repo = (*PGRepo)(nil)

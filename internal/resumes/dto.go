package resumes

import "time"

// ResumeResponse is the outward-facing representation of a full resume version.
type ResumeResponse struct {
	ID             string          `json:"id"`
	User           string          `json:"user"`
	Version        int             `json:"version"`
	Template       string          `json:"template"`
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// SummaryResponse is one entry of the version listing.
type SummaryResponse struct {
	ID           string       `json:"id"`
	Version      int          `json:"version"`
	Template     string       `json:"template"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	IsActive     bool         `json:"isActive"`
}

// createRequest mirrors the resume document body; unknown keys such as user or
// version are ignored.
type createRequest struct {
	Template string `json:"template"`
	IsActive *bool  `json:"isActive"`
	Content
}

func toResponse(doc Resume) ResumeResponse {
	c := doc.Content.clone()
	return ResumeResponse{
		ID:             doc.ID,
		User:           doc.OwnerID,
		Version:        doc.Version,
		Template:       doc.Template,
		PersonalInfo:   c.PersonalInfo,
		Education:      c.Education,
		Experience:     c.Experience,
		Skills:         c.Skills,
		Projects:       c.Projects,
		Certifications: c.Certifications,
		Languages:      c.Languages,
		IsActive:       doc.Active,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

func toSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		ID:           s.ID,
		Version:      s.Version,
		Template:     s.Template,
		PersonalInfo: s.PersonalInfo,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		IsActive:     s.Active,
	}
}

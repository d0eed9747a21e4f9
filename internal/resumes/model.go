package resumes

import "time"

// DefaultTemplate is applied when a resume is created without a template id.
const DefaultTemplate = "modern"

// Resume is one version of one user's resume.
type Resume struct {
	ID        string
	OwnerID   string
	Version   int
	Template  string
	Content   Content
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is the lightweight listing view of a Resume.
type Summary struct {
	ID           string
	Version      int
	Template     string
	PersonalInfo PersonalInfo
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r Resume) Summary() Summary {
	return Summary{
		ID:           r.ID,
		Version:      r.Version,
		Template:     r.Template,
		PersonalInfo: r.Content.PersonalInfo,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Content bundles every resume section. Sub-records have no identity of their own.
type Content struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Education      []Education     `json:"education" validate:"dive"`
	Experience     []Experience    `json:"experience" validate:"dive"`
	Skills         []Skill         `json:"skills" validate:"dive"`
	Projects       []Project       `json:"projects" validate:"dive"`
	Certifications []Certification `json:"certifications" validate:"dive"`
	Languages      []Language      `json:"languages" validate:"dive"`
}

type PersonalInfo struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zipCode,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Website   string `json:"website,omitempty"`
	Summary   string `json:"summary,omitempty" validate:"max=500"`
}

type Education struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field" validate:"required"`
	StartDate   *Date  `json:"startDate" validate:"required"`
	EndDate     *Date  `json:"endDate,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

type Experience struct {
	Company      string   `json:"company" validate:"required"`
	Position     string   `json:"position" validate:"required"`
	Location     string   `json:"location,omitempty"`
	StartDate    *Date    `json:"startDate" validate:"required"`
	EndDate      *Date    `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description" validate:"required"`
	Achievements []string `json:"achievements"`
}

type Skill struct {
	Name     string        `json:"name" validate:"required"`
	Level    SkillLevel    `json:"level" validate:"enum"`
	Category SkillCategory `json:"category" validate:"enum"`
}

type Project struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	StartDate    *Date    `json:"startDate,omitempty"`
	EndDate      *Date    `json:"endDate,omitempty"`
}

type Certification struct {
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer" validate:"required"`
	Date   *Date  `json:"date" validate:"required"`
	Link   string `json:"link,omitempty"`
}

type Language struct {
	Name        string      `json:"name" validate:"required"`
	Proficiency Proficiency `json:"proficiency" validate:"enum"`
}

// clone deep-copies the content so stored documents never share slices with callers.
func (c Content) clone() Content {
	out := Content{PersonalInfo: c.PersonalInfo}

	out.Education = make([]Education, len(c.Education))
	for i, e := range c.Education {
		e.StartDate = cloneDate(e.StartDate)
		e.EndDate = cloneDate(e.EndDate)
		out.Education[i] = e
	}
	out.Experience = make([]Experience, len(c.Experience))
	for i, e := range c.Experience {
		e.StartDate = cloneDate(e.StartDate)
		e.EndDate = cloneDate(e.EndDate)
		e.Achievements = cloneStrings(e.Achievements)
		out.Experience[i] = e
	}
	out.Skills = make([]Skill, len(c.Skills))
	copy(out.Skills, c.Skills)
	out.Projects = make([]Project, len(c.Projects))
	for i, p := range c.Projects {
		p.Technologies = cloneStrings(p.Technologies)
		p.StartDate = cloneDate(p.StartDate)
		p.EndDate = cloneDate(p.EndDate)
		out.Projects[i] = p
	}
	out.Certifications = make([]Certification, len(c.Certifications))
	for i, cert := range c.Certifications {
		cert.Date = cloneDate(cert.Date)
		out.Certifications[i] = cert
	}
	out.Languages = make([]Language, len(c.Languages))
	copy(out.Languages, c.Languages)
	return out
}

func (r Resume) clone() Resume {
	r.Content = r.Content.clone()
	return r
}

func cloneDate(d *Date) *Date {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

package resumes

// Patch replaces the top-level fields that are present. Owner and version are not
// patchable; payload keys for them are dropped during decoding.
type Patch struct {
	Template       *string          `json:"template"`
	PersonalInfo   *PersonalInfo    `json:"personalInfo"`
	Education      *[]Education     `json:"education"`
	Experience     *[]Experience    `json:"experience"`
	Skills         *[]Skill         `json:"skills"`
	Projects       *[]Project       `json:"projects"`
	Certifications *[]Certification `json:"certifications"`
	Languages      *[]Language      `json:"languages"`
	Active         *bool            `json:"isActive"`
}

// Empty reports whether the patch would change nothing.
func (p Patch) Empty() bool {
	return p.Template == nil && p.PersonalInfo == nil && p.Education == nil &&
		p.Experience == nil && p.Skills == nil && p.Projects == nil &&
		p.Certifications == nil && p.Languages == nil && p.Active == nil
}

func (p Patch) apply(r Resume) Resume {
	if p.Template != nil {
		r.Template = *p.Template
	}
	if p.PersonalInfo != nil {
		r.Content.PersonalInfo = *p.PersonalInfo
	}
	if p.Education != nil {
		r.Content.Education = *p.Education
	}
	if p.Experience != nil {
		r.Content.Experience = *p.Experience
	}
	if p.Skills != nil {
		r.Content.Skills = *p.Skills
	}
	if p.Projects != nil {
		r.Content.Projects = *p.Projects
	}
	if p.Certifications != nil {
		r.Content.Certifications = *p.Certifications
	}
	if p.Languages != nil {
		r.Content.Languages = *p.Languages
	}
	if p.Active != nil {
		r.Active = *p.Active
	}
	return r
}

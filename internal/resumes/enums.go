package resumes

// SkillLevel is the self-assessed proficiency of a skill.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

// Valid reports whether the level is one of the known values.
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert:
		return true
	}
	return false
}

// SkillCategory groups skills on the rendered resume.
type SkillCategory string

const (
	CategoryTechnical  SkillCategory = "Technical"
	CategorySoftSkills SkillCategory = "Soft Skills"
	CategoryLanguages  SkillCategory = "Languages"
	CategoryTools      SkillCategory = "Tools"
)

func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryTechnical, CategorySoftSkills, CategoryLanguages, CategoryTools:
		return true
	}
	return false
}

// Proficiency is the spoken-language fluency level.
type Proficiency string

const (
	ProficiencyBasic          Proficiency = "Basic"
	ProficiencyConversational Proficiency = "Conversational"
	ProficiencyFluent         Proficiency = "Fluent"
	ProficiencyNative         Proficiency = "Native"
)

func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBasic, ProficiencyConversational, ProficiencyFluent, ProficiencyNative:
		return true
	}
	return false
}

package resumes

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(interface{ Valid() bool })
		return ok && e.Valid()
	}); err != nil {
		panic(err)
	}
	return v
}

// normalize trims every string, drops empty dates and fills enum defaults.
func (c *Content) normalize() {
	p := &c.PersonalInfo
	trimAll(&p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Address, &p.City,
		&p.State, &p.ZipCode, &p.LinkedIn, &p.GitHub, &p.Website, &p.Summary)

	if c.Education == nil {
		c.Education = []Education{}
	}
	for i := range c.Education {
		e := &c.Education[i]
		trimAll(&e.Institution, &e.Degree, &e.Field, &e.GPA, &e.Description)
		e.StartDate = dropZero(e.StartDate)
		e.EndDate = dropZero(e.EndDate)
	}

	if c.Experience == nil {
		c.Experience = []Experience{}
	}
	for i := range c.Experience {
		e := &c.Experience[i]
		trimAll(&e.Company, &e.Position, &e.Location, &e.Description)
		e.StartDate = dropZero(e.StartDate)
		e.EndDate = dropZero(e.EndDate)
		e.Achievements = trimList(e.Achievements)
	}

	if c.Skills == nil {
		c.Skills = []Skill{}
	}
	for i := range c.Skills {
		s := &c.Skills[i]
		trimAll(&s.Name)
		s.Level = SkillLevel(strings.TrimSpace(string(s.Level)))
		if s.Level == "" {
			s.Level = SkillIntermediate
		}
		s.Category = SkillCategory(strings.TrimSpace(string(s.Category)))
		if s.Category == "" {
			s.Category = CategoryTechnical
		}
	}

	if c.Projects == nil {
		c.Projects = []Project{}
	}
	for i := range c.Projects {
		p := &c.Projects[i]
		trimAll(&p.Name, &p.Description, &p.Link)
		p.Technologies = trimList(p.Technologies)
		p.StartDate = dropZero(p.StartDate)
		p.EndDate = dropZero(p.EndDate)
	}

	if c.Certifications == nil {
		c.Certifications = []Certification{}
	}
	for i := range c.Certifications {
		cert := &c.Certifications[i]
		trimAll(&cert.Name, &cert.Issuer, &cert.Link)
		cert.Date = dropZero(cert.Date)
	}

	if c.Languages == nil {
		c.Languages = []Language{}
	}
	for i := range c.Languages {
		l := &c.Languages[i]
		trimAll(&l.Name)
		l.Proficiency = Proficiency(strings.TrimSpace(string(l.Proficiency)))
		if l.Proficiency == "" {
			l.Proficiency = ProficiencyConversational
		}
	}
}

// Validate normalizes c in place and checks required fields, lengths and enums.
func (c *Content) Validate() error {
	c.normalize()
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		out.Fields = append(out.Fields, FieldError{
			Field:   field,
			Rule:    fe.Tag(),
			Message: fieldMessage(field, fe),
		})
	}
	return out
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "enum":
		return fmt.Sprintf("%s has unsupported value %q", field, fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func trimList(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

func dropZero(d *Date) *Date {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}

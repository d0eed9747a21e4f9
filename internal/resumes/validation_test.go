package resumes

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(err error) []string {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	out := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, f.Field)
	}
	return out
}

func TestValidateAppliesDefaultsAndTrims(t *testing.T) {
	c := Content{
		PersonalInfo: PersonalInfo{FirstName: "  Ada ", LastName: "Lovelace", Email: " ada@example.com"},
		Skills:       []Skill{{Name: " Go "}},
		Languages:    []Language{{Name: "French"}},
		Experience: []Experience{{
			Company:      "ACME",
			Position:     "Engineer",
			Description:  "Built things",
			StartDate:    NewDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
			Achievements: []string{" shipped "},
		}},
	}
	require.NoError(t, c.Validate())

	assert.Equal(t, "Ada", c.PersonalInfo.FirstName)
	assert.Equal(t, "ada@example.com", c.PersonalInfo.Email)
	assert.Equal(t, "Go", c.Skills[0].Name)
	assert.Equal(t, SkillIntermediate, c.Skills[0].Level)
	assert.Equal(t, CategoryTechnical, c.Skills[0].Category)
	assert.Equal(t, ProficiencyConversational, c.Languages[0].Proficiency)
	assert.Equal(t, []string{"shipped"}, c.Experience[0].Achievements)
	assert.NotNil(t, c.Education)
	assert.NotNil(t, c.Certifications)
}

func TestValidateRequiredFields(t *testing.T) {
	c := Content{
		Education:      []Education{{Institution: "UCL"}},
		Certifications: []Certification{{Name: "CKA", Issuer: "CNCF"}},
		Projects:       []Project{{Name: "site"}},
	}
	err := c.Validate()
	require.ErrorIs(t, err, ErrValidation)

	names := fieldNames(err)
	for _, want := range []string{
		"personalInfo.firstName",
		"personalInfo.lastName",
		"personalInfo.email",
		"education[0].degree",
		"education[0].field",
		"education[0].startDate",
		"projects[0].description",
		"certifications[0].date",
	} {
		assert.Contains(t, names, want)
	}
}

func TestValidateEnumsAndLengths(t *testing.T) {
	c := validContent()
	c.PersonalInfo.Summary = strings.Repeat("a", 501)
	c.Skills = []Skill{{Name: "Go", Level: "Guru", Category: "Soft Skills"}}
	c.Languages = []Language{{Name: "French", Proficiency: "Fluent-ish"}}

	err := c.Validate()
	require.ErrorIs(t, err, ErrValidation)
	names := fieldNames(err)
	assert.ElementsMatch(t, []string{"personalInfo.summary", "skills[0].level", "languages[0].proficiency"}, names)

	c.PersonalInfo.Summary = strings.Repeat("a", 500)
	c.Skills[0].Level = SkillExpert
	c.Languages[0].Proficiency = ProficiencyNative
	assert.NoError(t, c.Validate())
}

func TestDateAcceptsShortAndRFC3339(t *testing.T) {
	var got struct {
		A *Date `json:"a"`
		B *Date `json:"b"`
		C *Date `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"2021-06-15","b":"2021-06-15T10:30:00+02:00","c":""}`), &got))
	assert.Equal(t, time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC), got.A.Time)
	assert.Equal(t, time.Date(2021, 6, 15, 8, 30, 0, 0, time.UTC), got.B.Time)
	assert.True(t, got.C.IsZero())

	out, err := json.Marshal(got.A)
	require.NoError(t, err)
	assert.Equal(t, `"2021-06-15T00:00:00Z"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"a":"June 2021"}`), &got))
	assert.Error(t, json.Unmarshal([]byte(`{"a":20210615}`), &got))
}

func TestEmptyDateIsDroppedAndRequired(t *testing.T) {
	var c Content
	require.NoError(t, json.Unmarshal([]byte(`{
		"personalInfo":{"firstName":"Ada","lastName":"L","email":"a@example.com"},
		"certifications":[{"name":"CKA","issuer":"CNCF","date":""}]
	}`), &c))

	err := c.Validate()
	assert.Equal(t, []string{"certifications[0].date"}, fieldNames(err))
	assert.Nil(t, c.Certifications[0].Date)
}

func TestPatchApplyReplacesOnlyPresentFields(t *testing.T) {
	base := Resume{OwnerID: "u1", Version: 2, Template: "modern", Content: validContent(), Active: true}
	var p Patch
	require.NoError(t, json.Unmarshal([]byte(`{"template":"creative","skills":[],"user":"intruder","version":99,"isActive":false}`), &p))
	assert.False(t, p.Empty())

	got := p.apply(base)
	assert.Equal(t, "u1", got.OwnerID)
	assert.Equal(t, 2, got.Version)
	assert.Equal(t, "creative", got.Template)
	assert.Empty(t, got.Content.Skills)
	assert.Equal(t, "Ada", got.Content.PersonalInfo.FirstName)
	assert.False(t, got.Active)

	assert.True(t, Patch{}.Empty())
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = "John Smith\nContact: john.smith@example.com\n5 years experience as a Software Developer\nSkills: Python, SQL"

func TestFieldsSampleResume(t *testing.T) {
	fields := NewExtractor(nil).Fields(sampleResume)

	assert.Equal(t, "John Smith", fields.Name)
	assert.Equal(t, "john.smith@example.com", fields.Email)
	assert.Equal(t, "5 years", fields.Experience)
	assert.Equal(t, "Developer", fields.Role)
}

func TestFieldsSentinelsOnEmptyText(t *testing.T) {
	fields := NewExtractor(nil).Fields("")

	assert.Equal(t, NameUnknown, fields.Name)
	assert.Equal(t, EmailNotFound, fields.Email)
	assert.Equal(t, ExperienceNotMentioned, fields.Experience)
	assert.Equal(t, RoleGeneral, fields.Role)
}

func TestFieldsIdempotent(t *testing.T) {
	e := NewExtractor(nil)
	first := e.Fields(sampleResume)
	second := e.Fields(sampleResume)
	assert.Equal(t, first, second)
}

func TestFieldsFirstMatchWins(t *testing.T) {
	text := "reach me at first@example.com or second@example.com"
	fields := NewExtractor(nil).Fields(text)
	assert.Equal(t, "first@example.com", fields.Email)

	text = "Jane Doe worked with Bob Stone"
	fields = NewExtractor(nil).Fields(text)
	assert.Equal(t, "Jane Doe", fields.Name)
}

func TestFieldsExperienceVariants(t *testing.T) {
	cases := map[string]string{
		"10 YRS of work":      "10 years",
		"over 3years coding":  "3 years",
		"7  years in testing": "7 years",
		"many years of work":  ExperienceNotMentioned,
	}
	e := NewExtractor(nil)
	for text, want := range cases {
		assert.Equal(t, want, e.Fields(text).Experience, "text: %q", text)
	}
}

func TestFieldsRoleCapitalized(t *testing.T) {
	fields := NewExtractor(nil).Fields("senior ENGINEER at a startup")
	assert.Equal(t, "Engineer", fields.Role)
}

func TestFieldsCustomVocabulary(t *testing.T) {
	e := NewExtractor([]string{"architect", "consultant"})

	fields := e.Fields("worked as a cloud Architect")
	require.Equal(t, "Architect", fields.Role)

	// The default vocabulary must not leak in.
	fields = e.Fields("senior developer")
	assert.Equal(t, RoleGeneral, fields.Role)
}

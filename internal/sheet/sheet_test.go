package sheet

import (
	"testing"
	"time"

	"github.com/muhammadolammi/cvworker/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsFixedColumnOrder(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)
	records := []extract.CandidateRecord{
		{
			Name:             "John Smith",
			Email:            "john.smith@example.com",
			Role:             "Developer",
			Experience:       "5 years",
			MissingSkills:    []string{"Machine Learning"},
			UnexpectedSkills: []string{"Oracle", "Excel"},
		},
	}

	rows := Rows(records, now)
	require.Len(t, rows, 1)

	assert.Equal(t, []interface{}{
		"2025-06-02 10:30:00",
		"John Smith",
		"john.smith@example.com",
		"Developer",
		"5 years",
		"Machine Learning",
		"Oracle, Excel",
	}, rows[0])
}

func TestRowsEmptyBatch(t *testing.T) {
	assert.Empty(t, Rows(nil, time.Now()))
}

func TestRowsSentinelRecord(t *testing.T) {
	records := []extract.CandidateRecord{
		{
			Name:       extract.NameUnknown,
			Email:      extract.EmailNotFound,
			Role:       extract.RoleGeneral,
			Experience: extract.ExperienceNotMentioned,
		},
	}

	rows := Rows(records, time.Now())
	require.Len(t, rows, 1)
	assert.Equal(t, "Unknown", rows[0][1])
	assert.Equal(t, "Not Found", rows[0][2])
	assert.Equal(t, "", rows[0][5])
}

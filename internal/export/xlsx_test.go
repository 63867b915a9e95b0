package export

import (
	"path/filepath"
	"testing"

	"github.com/muhammadolammi/cvworker/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screening.xlsx")

	records := []extract.CandidateRecord{
		{
			Name:             "John Smith",
			Email:            "john.smith@example.com",
			Role:             "Developer",
			Experience:       "5 years",
			MissingSkills:    []string{"Machine Learning"},
			UnexpectedSkills: []string{"Oracle"},
			ExtraSkills:      []string{"React"},
		},
		{
			Name:       extract.NameUnknown,
			Email:      extract.EmailNotFound,
			Role:       extract.RoleGeneral,
			Experience: extract.ExperienceNotMentioned,
		},
	}

	require.NoError(t, WriteXLSX(path, records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Missing Skills", rows[0][4])

	assert.Equal(t, "John Smith", rows[1][0])
	assert.Equal(t, "Machine Learning", rows[1][4])
	assert.Equal(t, "React", rows[1][6])

	assert.Equal(t, "Unknown", rows[2][0])
	assert.Equal(t, "Not Found", rows[2][1])
}

func TestWriteXLSXEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	require.NoError(t, WriteXLSX(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Name", rows[0][0])
}

package export

import (
	"fmt"
	"strings"

	"github.com/muhammadolammi/cvworker/internal/extract"
	"github.com/xuri/excelize/v2"
)

var header = []interface{}{
	"Name", "Email", "Role", "Experience",
	"Missing Skills", "Unexpected Skills", "Extra Skills",
}

// WriteXLSX writes the batch to a local workbook, one row per record
// under a header row of the record field names.
func WriteXLSX(path string, records []extract.CandidateRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.Name,
			r.Email,
			r.Role,
			r.Experience,
			strings.Join(r.MissingSkills, ", "),
			strings.Join(r.UnexpectedSkills, ", "),
			strings.Join(r.ExtraSkills, ", "),
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

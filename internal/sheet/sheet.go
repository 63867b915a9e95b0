package sheet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadolammi/cvworker/internal/extract"
	sheets "google.golang.org/api/sheets/v4"
)

// Sink appends screening records to a Google Sheet. Idempotency and
// retry are left to the caller.
type Sink struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

func NewSink(svc *sheets.Service, spreadsheetID, sheetName string) *Sink {
	return &Sink{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}
}

// Append flattens the records into the sheet's fixed columns and
// appends them as new rows.
func (s *Sink) Append(ctx context.Context, records []extract.CandidateRecord) error {
	if len(records) == 0 {
		return nil
	}
	body := &sheets.ValueRange{Values: Rows(records, time.Now())}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, fmt.Sprintf("%s!A:G", s.sheetName), body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("appending rows: %w", err)
	}
	return nil
}

// Rows flattens records into the fixed column order: timestamp, name,
// email, role, experience, missing skills, unexpected skills.
func Rows(records []extract.CandidateRecord, now time.Time) [][]interface{} {
	timestamp := now.Format("2006-01-02 15:04:05")
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{
			timestamp,
			r.Name,
			r.Email,
			r.Role,
			r.Experience,
			strings.Join(r.MissingSkills, ", "),
			strings.Join(r.UnexpectedSkills, ", "),
		})
	}
	return rows
}

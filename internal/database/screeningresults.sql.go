package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createOrUpdateScreeningResults = `-- name: CreateOrUpdateScreeningResults :exec
INSERT INTO screening_results (
records, skipped_documents, screening_id)
VALUES ($1, $2, $3)
ON CONFLICT (screening_id)
DO UPDATE SET
    records = EXCLUDED.records,
    skipped_documents = EXCLUDED.skipped_documents,
    updated_at = CURRENT_TIMESTAMP
`

type CreateOrUpdateScreeningResultsParams struct {
	Records          json.RawMessage
	SkippedDocuments int32
	ScreeningID      uuid.UUID
}

func (q *Queries) CreateOrUpdateScreeningResults(ctx context.Context, arg CreateOrUpdateScreeningResultsParams) error {
	_, err := q.db.ExecContext(ctx, createOrUpdateScreeningResults, arg.Records, arg.SkippedDocuments, arg.ScreeningID)
	return err
}

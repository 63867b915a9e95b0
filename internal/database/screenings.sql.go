package database

import (
	"context"

	"github.com/google/uuid"
)

const updateScreeningStatus = `-- name: UpdateScreeningStatus :exec
UPDATE screenings
SET status=$1
WHERE id=$2
`

type UpdateScreeningStatusParams struct {
	Status string
	ID     uuid.UUID
}

func (q *Queries) UpdateScreeningStatus(ctx context.Context, arg UpdateScreeningStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateScreeningStatus, arg.Status, arg.ID)
	return err
}

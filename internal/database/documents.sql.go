package database

import (
	"context"

	"github.com/google/uuid"
)

const getDocumentsByScreening = `-- name: GetDocumentsByScreening :many
SELECT id, original_filename, format, size_bytes, storage_provider, object_key, sender, subject, received_at, created_at, screening_id FROM documents WHERE screening_id=$1 ORDER BY created_at
`

func (q *Queries) GetDocumentsByScreening(ctx context.Context, screeningID uuid.UUID) ([]Document, error) {
	rows, err := q.db.QueryContext(ctx, getDocumentsByScreening, screeningID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Document
	for rows.Next() {
		var i Document
		if err := rows.Scan(
			&i.ID,
			&i.OriginalFilename,
			&i.Format,
			&i.SizeBytes,
			&i.StorageProvider,
			&i.ObjectKey,
			&i.Sender,
			&i.Subject,
			&i.ReceivedAt,
			&i.CreatedAt,
			&i.ScreeningID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createDocument = `-- name: CreateDocument :exec
INSERT INTO documents (
id, original_filename, format, size_bytes, storage_provider, object_key, sender, subject, received_at, screening_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

type CreateDocumentParams struct {
	ID               uuid.UUID
	OriginalFilename string
	Format           string
	SizeBytes        int64
	StorageProvider  string
	ObjectKey        string
	Sender           string
	Subject          string
	ReceivedAt       string
	ScreeningID      uuid.UUID
}

func (q *Queries) CreateDocument(ctx context.Context, arg CreateDocumentParams) error {
	_, err := q.db.ExecContext(ctx, createDocument,
		arg.ID,
		arg.OriginalFilename,
		arg.Format,
		arg.SizeBytes,
		arg.StorageProvider,
		arg.ObjectKey,
		arg.Sender,
		arg.Subject,
		arg.ReceivedAt,
		arg.ScreeningID,
	)
	return err
}

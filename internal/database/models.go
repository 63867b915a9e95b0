package database

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID               uuid.UUID
	OriginalFilename string
	Format           string
	SizeBytes        int64
	StorageProvider  string
	ObjectKey        string
	Sender           string
	Subject          string
	ReceivedAt       string
	CreatedAt        time.Time
	ScreeningID      uuid.UUID
}

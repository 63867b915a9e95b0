package main

import (
	"github.com/google/uuid"
	"github.com/muhammadolammi/cvworker/internal/database"
	"github.com/muhammadolammi/cvworker/internal/extract"
	"github.com/muhammadolammi/cvworker/internal/mailbox"
	"github.com/muhammadolammi/cvworker/internal/sheet"
	"github.com/muhammadolammi/cvworker/internal/storage"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	DB          *database.Queries
	Storage     *storage.Client
	Mailbox     *mailbox.Client
	Sheet       *sheet.Sink
	Pipeline    *extract.Pipeline
	RabbitConn  *amqp.Connection
	RABBITMQUrl string
	ExportDir   string
	Logger      *zap.Logger
}

// ScreeningJob is the message consumed from the screenings queue. A
// gmail job pulls fresh attachments matching Query and stages them; a
// staged job replays the documents already recorded for the screening.
type ScreeningJob struct {
	ID     uuid.UUID `json:"id"`
	Source string    `json:"source"` // "gmail" or "staged"
	Query  string    `json:"query,omitempty"`
}

// ScreeningResults is the payload persisted per screening.
type ScreeningResults struct {
	Records []extract.CandidateRecord `json:"records"`
	Skipped int                       `json:"skipped"`
}

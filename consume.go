package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/muhammadolammi/cvworker/internal/database"
	"github.com/muhammadolammi/cvworker/internal/export"
	"github.com/muhammadolammi/cvworker/internal/extract"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

const defaultMailQuery = "has:attachment"

// runScreening executes one screening job end to end: gather the
// documents, run the extraction pipeline, persist the records, append
// them to the sheet, and export a local workbook. Per-document
// failures are absorbed by the pipeline; sink failures surface to the
// caller verbatim.
func runScreening(job ScreeningJob, workerConfig *WorkerConfig) error {
	ctx := context.Background()
	logger := workerConfig.Logger.With(zap.String("screening_id", job.ID.String()))

	docs, fetchFailures, err := gatherDocuments(ctx, job, workerConfig, logger)
	if err != nil {
		return err
	}

	if len(docs) == 0 && fetchFailures == 0 {
		// Nothing to do is a valid terminal state.
		logger.Info("no documents to process")
	}

	batch, err := workerConfig.Pipeline.Run(ctx, docs)
	if err != nil {
		return fmt.Errorf("pipeline run: %w", err)
	}

	records := batch.Records()
	skipped := batch.Skipped() + fetchFailures
	logger.Info("screening processed",
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
	)

	results := ScreeningResults{Records: records, Skipped: skipped}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal screening results: %w", err)
	}

	// ✅ Retry the result upsert (DB hiccups are transient)
	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.CreateOrUpdateScreeningResults(ctx, database.CreateOrUpdateScreeningResultsParams{
			Records:          resultsJSON,
			SkippedDocuments: int32(skipped),
			ScreeningID:      job.ID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save screening results after retries: %w", err)
	}

	if err := workerConfig.Sheet.Append(ctx, records); err != nil {
		return fmt.Errorf("sheet append: %w", err)
	}

	exportPath := filepath.Join(workerConfig.ExportDir, job.ID.String()+".xlsx")
	if err := export.WriteXLSX(exportPath, records); err != nil {
		return fmt.Errorf("xlsx export: %w", err)
	}
	logger.Info("exported workbook", zap.String("path", exportPath))

	return nil
}

// gatherDocuments resolves the job's document source. Gmail jobs stage
// every fetched attachment to R2 and record it, so the screening can
// be replayed as a staged job later. Individual fetch failures are
// counted, not fatal.
func gatherDocuments(ctx context.Context, job ScreeningJob, workerConfig *WorkerConfig, logger *zap.Logger) ([]extract.Document, int, error) {
	switch job.Source {
	case "gmail":
		query := job.Query
		if query == "" {
			query = defaultMailQuery
		}
		attachments, err := workerConfig.Mailbox.FetchAttachments(ctx, query)
		if err != nil {
			return nil, 0, fmt.Errorf("fetching mailbox attachments: %w", err)
		}

		docs := make([]extract.Document, 0, len(attachments))
		for _, att := range attachments {
			objectKey := fmt.Sprintf("%s/%s", job.ID, att.Filename)

			// ✅ Retry staging (network failures are transient)
			_, err := retry(3, func() (any, error) {
				return nil, workerConfig.Storage.Upload(ctx, objectKey, att.Data)
			})
			if err != nil {
				logger.Warn("failed to stage attachment", zap.String("filename", att.Filename), zap.Error(err))
			} else if err := workerConfig.DB.CreateDocument(ctx, database.CreateDocumentParams{
				ID:               uuid.New(),
				OriginalFilename: att.Filename,
				Format:           extract.FormatFromFilename(att.Filename),
				SizeBytes:        int64(len(att.Data)),
				StorageProvider:  "r2",
				ObjectKey:        objectKey,
				Sender:           att.Sender,
				Subject:          att.Subject,
				ReceivedAt:       att.Date,
				ScreeningID:      job.ID,
			}); err != nil {
				logger.Warn("failed to record staged document", zap.String("filename", att.Filename), zap.Error(err))
			}

			docs = append(docs, extract.Document{
				Name:   att.Filename,
				Format: extract.FormatFromFilename(att.Filename),
				Data:   att.Data,
			})
		}
		return docs, 0, nil

	default: // staged
		rows, err := workerConfig.DB.GetDocumentsByScreening(ctx, job.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("error getting documents for screening: %v, err: %v", job.ID, err)
		}

		docs := make([]extract.Document, 0, len(rows))
		failures := 0
		for _, row := range rows {
			// ✅ Retry downloading file (network failures are transient)
			data, err := retry(3, func() ([]byte, error) {
				return workerConfig.Storage.Download(ctx, row.ObjectKey)
			})
			if err != nil {
				logger.Warn("failed to download document after retries",
					zap.String("object_key", row.ObjectKey),
					zap.Error(err),
				)
				failures++
				continue
			}
			docs = append(docs, extract.Document{
				Name:   row.OriginalFilename,
				Format: row.Format,
				Data:   data,
			})
		}
		return docs, failures, nil
	}
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	logger := workerConfig.Logger.With(zap.Int("worker_id", id+1))

	//    to consume message on the queue
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		logger.Fatal("error dialling rabbitmq", zap.Error(err))
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatal("error connecting to rabbitmq channel", zap.Error(err))
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		"screenings", // queue name
		true,         // durable (survives broker restarts)
		false,        // auto-delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		logger.Fatal("failed to declare queue", zap.Error(err))
	}

	msgs, err := ch.Consume(
		"screenings", // queue name
		"",           // consumer tag
		true,         // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		logger.Fatal("error consuming rabbitmq message", zap.Error(err))
	}

	for msg := range msgs {
		job := ScreeningJob{}
		if err := json.Unmarshal(msg.Body, &job); err != nil {
			logger.Error("error unmarshalling message body", zap.Error(err))
			setScreeningStatus(workerConfig, job.ID, "failed", "screening failed", logger)
			continue
		}
		logger.Info("processing screening", zap.String("screening_id", job.ID.String()), zap.String("source", job.Source))

		setScreeningStatus(workerConfig, job.ID, "processing", "screening started", logger)

		if err := runScreening(job, workerConfig); err != nil {
			logger.Error("error running screening", zap.String("screening_id", job.ID.String()), zap.Error(err))
			setScreeningStatus(workerConfig, job.ID, "failed", "screening failed", logger)
			continue
		}

		setScreeningStatus(workerConfig, job.ID, "completed", "screening completed", logger)
	}
}

// setScreeningStatus updates the screening row and publishes the same
// status to the updates exchange. Best effort on both.
func setScreeningStatus(workerConfig *WorkerConfig, id uuid.UUID, status, message string, logger *zap.Logger) {
	if err := workerConfig.DB.UpdateScreeningStatus(context.Background(), database.UpdateScreeningStatusParams{
		Status: status,
		ID:     id,
	}); err != nil {
		logger.Warn("failed to update screening status", zap.String("status", status), zap.Error(err))
	}

	update := map[string]any{
		"screening_id": id,
		"status":       status,
		"message":      message,
		"timestamp":    time.Now(),
	}
	if err := publishScreeningUpdate(workerConfig.RabbitConn, id.String(), update); err != nil {
		logger.Warn("failed to publish update", zap.Error(err))
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := 0; i < numWorkers; i++ {
		workerConfig.Logger.Info("worker started", zap.Int("worker_id", i+1))
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish
}

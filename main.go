package main

import (
	"context"
	"database/sql"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	"github.com/muhammadolammi/cvworker/internal/database"
	"github.com/muhammadolammi/cvworker/internal/extract"
	"github.com/muhammadolammi/cvworker/internal/logger"
	"github.com/muhammadolammi/cvworker/internal/mailbox"
	"github.com/muhammadolammi/cvworker/internal/sheet"
	"github.com/muhammadolammi/cvworker/internal/storage"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// defaultRequiredSkills is used when REQUIRED_SKILLS is not set.
var defaultRequiredSkills = []string{
	"Python", "Java", "SQL", "Machine Learning", "AI", "Data Analysis", "Communication",
}

func main() {
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("LOG_JSON") == "true", os.Getenv("DEBUG") == "true")
	if err != nil {
		panic("error creating logger: " + err.Error())
	}
	defer log.Sync()

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("empty DB_URL in environment")
	}

	rabbitmqUrl := os.Getenv("RABBITMQ_URL")
	if rabbitmqUrl == "" {
		log.Fatal("empty RABBITMQ_URL in env")
	}

	db, err := sql.Open("postgres", dbUrl)
	if err != nil {
		log.Fatal("error opening db", zap.Error(err))
	}

	dbqueries := database.New(db)

	r2AccountId := os.Getenv("R2_ACCCOUNT_ID")
	if r2AccountId == "" {
		log.Fatal("empty R2_ACCCOUNT_ID in environment")
	}
	r2Bucket := os.Getenv("R2_BUCKET")
	if r2Bucket == "" {
		log.Fatal("empty R2_BUCKET in environment")
	}
	r2SecretKey := os.Getenv("R2_SECRET_KEY")
	if r2SecretKey == "" {
		log.Fatal("empty R2_SECRET_KEY in environment")
	}
	r2AccessKey := os.Getenv("R2_ACCESS_KEY")
	if r2AccessKey == "" {
		log.Fatal("empty R2_ACCESS_KEY in environment")
	}
	r2Config := R2Config{
		AccountID: r2AccountId,
		AccessKey: r2AccessKey,
		SecretKey: r2SecretKey,
		Bucket:    r2Bucket,
	}
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("error creating aws config", zap.Error(err))
	}

	googleCredsFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if googleCredsFile == "" {
		log.Fatal("empty GOOGLE_CREDENTIALS_FILE in env")
	}
	sheetID := os.Getenv("SHEET_ID")
	if sheetID == "" {
		log.Fatal("empty SHEET_ID in env")
	}
	sheetName := os.Getenv("SHEET_NAME")
	if sheetName == "" {
		sheetName = "Form Responses 1"
	}

	ctx := context.Background()
	gmailSvc, err := gmailapi.NewService(ctx,
		option.WithCredentialsFile(googleCredsFile),
		option.WithScopes(gmailapi.GmailReadonlyScope),
	)
	if err != nil {
		log.Fatal("error creating gmail service", zap.Error(err))
	}
	sheetsSvc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(googleCredsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		log.Fatal("error creating sheets service", zap.Error(err))
	}

	requiredSkills := defaultRequiredSkills
	if env := os.Getenv("REQUIRED_SKILLS"); env != "" {
		requiredSkills = strings.Split(env, ",")
	}

	exportDir := os.Getenv("EXPORT_DIR")
	if exportDir == "" {
		exportDir = "exports"
	}
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		log.Fatal("error creating export dir", zap.Error(err))
	}

	conn, err := amqp.Dial(rabbitmqUrl)
	if err != nil {
		log.Fatal("error connecting to RabbitMQ", zap.Error(err))
	}

	workerConfig := WorkerConfig{
		DB:      dbqueries,
		Storage: storage.New(awsConfig, r2Config.AccountID, r2Config.Bucket),
		Mailbox: mailbox.New(gmailSvc, log),
		Sheet:   sheet.NewSink(sheetsSvc, sheetID, sheetName),
		Pipeline: &extract.Pipeline{
			Required:  extract.NewSkillSet(requiredSkills...),
			Extractor: extract.NewExtractor(nil),
			Logger:    log,
		},
		RabbitConn:  conn,
		RABBITMQUrl: rabbitmqUrl,
		ExportDir:   exportDir,
		Logger:      log,
	}

	log.Info("starting consumer worker pool", zap.Int("workers", 3))
	workerConfig.StartConsumerWorkerPool(3)
}

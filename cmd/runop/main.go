package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/akhomyakov/docflow/constants"
	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/llm"
	"github.com/akhomyakov/docflow/internal/operations"
	repo "github.com/akhomyakov/docflow/internal/repository"
	"github.com/akhomyakov/docflow/internal/sheet"
	"github.com/akhomyakov/docflow/internal/transport"
	"github.com/akhomyakov/docflow/internal/vision"
)

// runop creates (or resumes) a processing operation for an application and
// polls it to a terminal state.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	if len(os.Args) != 3 {
		logger.Error("usage", "cmd", "runop <application-id-uuid> <kind>")
		os.Exit(2)
	}
	ownerID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid application id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}
	kind := constants.OpKind(strings.ToUpper(os.Args[2]))

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	caller := transport.NewCaller(&http.Client{}, cfg.Transport.BaseDelay, logger)
	ocr := vision.NewClient(vision.Config{
		BaseURL:          cfg.Vision.BaseURL,
		OperationBaseURL: cfg.Vision.OperationBaseURL,
		APIKey:           cfg.Vision.APIKey,
		FolderID:         cfg.Vision.FolderID,
		Languages:        strings.Split(cfg.Vision.Languages, ","),
		Model:            cfg.Vision.Model,
		Timeout:          cfg.Vision.Timeout,
		MaxRetries:       cfg.Vision.MaxRetries,
	}, caller, logger)
	completions := llm.NewClient(llm.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		ModelURI:    cfg.LLM.ModelURI,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
		MaxRetries:  cfg.LLM.MaxRetries,
	}, caller, logger)

	opsRepo := repo.NewOperationRepository(entc, logger)
	appsRepo := repo.NewApplicationRepository(entc, logger)
	projector := operations.NewProjector(appsRepo, logger)
	manager := operations.NewManager(
		opsRepo, appsRepo, ocr, completions, sheet.NewExtractor(logger),
		projector, nil, logger,
	)

	provider := providerFor(kind)
	start := time.Now()
	op, err := manager.CreateOrUpdateOperation(ctx, ownerID, kind, provider, nil, constants.OpStatusPending)
	if err != nil {
		logger.Error("create operation failed", "kind", kind, "error", err)
		os.Exit(1)
	}

	// Pull model: keep polling until the external job reaches a terminal
	// state.
	for !op.IsTerminal() {
		time.Sleep(3 * time.Second)
		op, err = manager.CheckOperationStatus(ctx, op.ID)
		if err != nil {
			if common.IsKind(err, common.KindTransient) {
				logger.Warn("poll failed, retrying", "operation_id", op.ID, "error", err)
				continue
			}
			logger.Error("status check failed", "operation_id", op.ID, "error", err)
			os.Exit(1)
		}
		logger.Info("operation status", "operation_id", op.ID, "status", op.Status)
	}

	dur := time.Since(start)
	if op.Status == constants.OpStatusFailed {
		logger.Error("operation failed",
			"operation_id", op.ID, "message", op.Failure.Message, "code", op.Failure.Code,
			"duration_ms", dur.Milliseconds())
		os.Exit(1)
	}
	logger.Info("operation completed",
		"operation_id", op.ID, "kind", op.Kind, "duration_ms", dur.Milliseconds())
}

func providerFor(kind constants.OpKind) constants.Provider {
	switch kind {
	case constants.KindClassification, constants.KindAbbreviation:
		return constants.ProviderYandexGPT
	default:
		return constants.ProviderYandexVision
	}
}

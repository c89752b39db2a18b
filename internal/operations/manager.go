package operations

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/akhomyakov/docflow/constants"
	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/entity"
	"github.com/akhomyakov/docflow/internal/llm"
	"github.com/akhomyakov/docflow/internal/repository"
	"github.com/akhomyakov/docflow/internal/sheet"
	"github.com/akhomyakov/docflow/internal/vision"
)

// OCRClient is what the manager needs from the external OCR integration.
type OCRClient interface {
	Recognize(ctx context.Context, content []byte, mimeType string) (vision.TextResult, error)
	SubmitAsync(ctx context.Context, content []byte, mimeType string) (vision.SubmitOutcome, error)
	CheckStatus(ctx context.Context, jobID string) (vision.PollOutcome, error)
	RecognizeEndpoint() string
	SubmitAsyncEndpoint() string
}

// CompletionService is what the manager needs from the completion provider.
type CompletionService interface {
	llm.ProductClassifier
	llm.AbbreviationGenerator
	CompletionEndpoint() string
}

// SheetExtractor is the local in-process extraction path.
type SheetExtractor interface {
	Extract(ctx context.Context, path string) (sheet.ExtractionResult, error)
}

// Manager drives operations through the state machine: idempotent
// create-or-update, dispatch to a provider, pull-based advancement of
// long-running jobs, explicit redo. Every transition is built fully in memory
// before a single save, so a store failure never leaves a half-written
// record.
type Manager struct {
	ops          repository.OperationRepository
	apps         repository.ApplicationRepository
	ocr          OCRClient
	completions  CompletionService
	sheets       SheetExtractor
	projector    *Projector
	allowedTypes []string
	logger       *slog.Logger
}

func NewManager(
	ops repository.OperationRepository,
	apps repository.ApplicationRepository,
	ocr OCRClient,
	completions CompletionService,
	sheets SheetExtractor,
	projector *Projector,
	allowedTypes []string,
	logger *slog.Logger,
) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		ops:          ops,
		apps:         apps,
		ocr:          ocr,
		completions:  completions,
		sheets:       sheets,
		projector:    projector,
		allowedTypes: allowedTypes,
		logger:       logger,
	}
}

// CreateOrUpdateOperation is the entry point callers use to request work of a
// given kind for an application. When a non-deleted operation for (owner,
// kind) already exists it is returned unchanged, terminal or not: callers
// retrying their own request must not double-bill the provider, and a
// terminal record is only resurrected through RedoOperation.
func (m *Manager) CreateOrUpdateOperation(ctx context.Context, ownerID uuid.UUID, kind constants.OpKind, provider constants.Provider, meta *entity.RequestMetadata, initialStatus constants.OpStatus) (*entity.Operation, error) {
	if !constants.ValidCombination(kind, provider) {
		return nil, common.Validationf("unsupported kind/provider combination: %s/%s", kind, provider)
	}
	if initialStatus != "" && initialStatus != constants.OpStatusPending {
		return nil, common.Validationf("initial status must be %s, got %s", constants.OpStatusPending, initialStatus)
	}

	app, err := m.apps.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if meta == nil {
		meta = m.defaultMetadata(kind, provider, app)
	}
	op, isNew, err := m.ops.CreateOrGet(ctx, ownerID, kind, provider, meta)
	if err != nil {
		return nil, err
	}
	if !isNew {
		m.logger.Info("op.exists",
			"operation_id", op.ID, "owner_id", ownerID, "kind", kind, "status", op.Status)
		return op, nil
	}

	return m.dispatch(ctx, op, app)
}

func (m *Manager) GetOperation(ctx context.Context, id uuid.UUID) (*entity.Operation, error) {
	return m.ops.GetByID(ctx, id)
}

func (m *Manager) GetOperationByOwnerAndKind(ctx context.Context, ownerID uuid.UUID, kind constants.OpKind) (*entity.Operation, error) {
	return m.ops.GetByOwnerAndKind(ctx, ownerID, kind)
}

func (m *Manager) ListOperations(ctx context.Context, ownerID uuid.UUID, kind *constants.OpKind) ([]*entity.Operation, error) {
	return m.ops.ListByOwner(ctx, ownerID, kind)
}

// CheckOperationStatus advances a long-running external job by one poll.
// This is the only way a running async operation makes progress (pull model):
// a caller that never re-polls leaves it running. Transient poll failures do
// not fail the operation; the external job is still running and a later poll
// resumes observation.
func (m *Manager) CheckOperationStatus(ctx context.Context, id uuid.UUID) (*entity.Operation, error) {
	op, err := m.ops.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if op.Status != constants.OpStatusRunning || op.ExternalJobID == nil {
		return op, nil
	}

	poll, err := m.ocr.CheckStatus(ctx, *op.ExternalJobID)
	if err != nil {
		if common.IsKind(err, common.KindTransient) {
			m.logger.Warn("op.poll.transient",
				"operation_id", op.ID, "job_id", *op.ExternalJobID, "error", err)
			return op, err
		}
		return m.fail(ctx, op, failureFrom(err))
	}
	if !poll.Done {
		return op, nil
	}
	if poll.JobErr != nil {
		return m.fail(ctx, op, &entity.OperationFailure{
			Message: poll.JobErr.Message,
			Code:    poll.JobErr.Code,
		})
	}

	return m.complete(ctx, op, &entity.OperationResult{Text: &entity.TextExtractionResult{
		Text:     poll.Text.Text,
		Pages:    poll.Text.Pages,
		Method:   "vision-async",
		Degraded: poll.Text.Degraded,
	}})
}

// UpdateOperationStatus applies an explicit status transition. Terminal
// states are immutable; a completed transition requires a result and a
// failed transition requires a failure, so the record invariants cannot be
// violated from outside.
func (m *Manager) UpdateOperationStatus(ctx context.Context, id uuid.UUID, status constants.OpStatus, result *entity.OperationResult, failure *entity.OperationFailure) (*entity.Operation, error) {
	if !constants.ValidStatus(status) {
		return nil, common.Validationf("unknown status %q", status)
	}
	op, err := m.ops.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !constants.CanTransition(op.Status, status) {
		return nil, common.Validationf("illegal transition %s -> %s for operation %s", op.Status, status, id)
	}

	switch status {
	case constants.OpStatusRunning:
		next := *op
		next.Status = constants.OpStatusRunning
		if next.StartedAt == nil {
			now := time.Now().UTC()
			next.StartedAt = &now
		}
		return m.ops.Save(ctx, &next)
	case constants.OpStatusCompleted:
		if result.Empty() {
			return nil, common.Validationf("completed status requires a result")
		}
		return m.complete(ctx, op, result)
	case constants.OpStatusFailed:
		if failure == nil {
			return nil, common.Validationf("failed status requires a failure")
		}
		return m.fail(ctx, op, failure)
	}
	return nil, common.Validationf("unsupported target status %q", status)
}

// RedoOperation is the explicit resurrection path for a terminal operation:
// it bumps the logical retry counter, clears the prior outcome and re-enters
// the state machine at pending. Nothing else ever resets a terminal record.
func (m *Manager) RedoOperation(ctx context.Context, id uuid.UUID) (*entity.Operation, error) {
	op, err := m.ops.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !op.IsTerminal() {
		return nil, common.Validationf("operation %s is %s; only terminal operations can be redone", id, op.Status)
	}
	if op.RetryCount >= op.MaxRetries {
		return nil, common.Validationf("operation %s exhausted its retry budget (%d/%d)", id, op.RetryCount, op.MaxRetries)
	}

	next := *op
	next.Status = constants.OpStatusPending
	next.RetryCount++
	next.ExternalJobID = nil
	next.Result = nil
	next.Failure = nil
	next.StartedAt = nil
	next.CompletedAt = nil

	saved, err := m.ops.Save(ctx, &next)
	if err != nil {
		return nil, err
	}
	m.logger.Info("op.redo",
		"operation_id", id, "retry_count", saved.RetryCount, "max_retries", saved.MaxRetries)

	app, err := m.apps.GetByID(ctx, saved.OwnerID)
	if err != nil {
		return nil, err
	}
	return m.dispatch(ctx, saved, app)
}

// DeleteOperation soft-deletes an operation, freeing the (owner, kind) slot.
func (m *Manager) DeleteOperation(ctx context.Context, id uuid.UUID) error {
	return m.ops.SoftDelete(ctx, id)
}

// dispatch runs the provider call for a pending operation and applies the
// resulting transition. Async submissions leave the operation running with
// the external job id; everything else reaches a terminal state here.
func (m *Manager) dispatch(ctx context.Context, op *entity.Operation, app *entity.Application) (*entity.Operation, error) {
	m.logger.Info("op.dispatch",
		"operation_id", op.ID, "owner_id", op.OwnerID, "kind", op.Kind, "provider", op.Provider)

	switch op.Kind {
	case constants.KindTextExtraction:
		return m.dispatchTextExtraction(ctx, op, app)
	case constants.KindClassification:
		return m.dispatchClassification(ctx, op, app)
	case constants.KindAbbreviation:
		return m.dispatchAbbreviation(ctx, op, app)
	}
	// pending -> failed without ever leaving pending's dispatch
	return m.fail(ctx, op, &entity.OperationFailure{
		Message: "unsupported operation kind " + string(op.Kind),
	})
}

func (m *Manager) dispatchTextExtraction(ctx context.Context, op *entity.Operation, app *entity.Application) (*entity.Operation, error) {
	if op.Provider == constants.ProviderLocal {
		if app.Format != constants.SPREADSHEET {
			return m.fail(ctx, op, &entity.OperationFailure{
				Message: "local extraction supports spreadsheets only, got " + app.Format,
			})
		}
		running, err := m.markRunning(ctx, op)
		if err != nil {
			return nil, err
		}
		res, xerr := m.sheets.Extract(ctx, app.SourcePath)
		if xerr != nil {
			return m.fail(ctx, running, failureFrom(xerr))
		}
		return m.complete(ctx, running, &entity.OperationResult{Text: &entity.TextExtractionResult{
			Text:   res.Text,
			Pages:  res.Sheets,
			Method: "sheet-local",
		}})
	}

	content, err := os.ReadFile(app.SourcePath)
	if err != nil {
		return m.fail(ctx, op, &entity.OperationFailure{
			Message: "read source document: " + err.Error(),
		})
	}
	mimeType := mimeTypeFor(app.FileExt)

	running, err := m.markRunning(ctx, op)
	if err != nil {
		return nil, err
	}

	if constants.IsAsyncFormat(app.Format) {
		outcome, serr := m.ocr.SubmitAsync(ctx, content, mimeType)
		if serr != nil {
			return m.fail(ctx, running, failureFrom(serr))
		}
		if !outcome.Done {
			// Pull model: control returns to the caller, who advances the
			// job via CheckOperationStatus.
			next := *running
			next.ExternalJobID = &outcome.JobID
			saved, uerr := m.ops.Save(ctx, &next)
			if uerr != nil {
				return nil, uerr
			}
			m.logger.Info("op.async_submitted", "operation_id", op.ID, "job_id", outcome.JobID)
			return saved, nil
		}
		return m.complete(ctx, running, &entity.OperationResult{Text: &entity.TextExtractionResult{
			Text:   outcome.Text.Text,
			Pages:  outcome.Text.Pages,
			Method: "vision-async",
		}})
	}

	res, rerr := m.ocr.Recognize(ctx, content, mimeType)
	if rerr != nil {
		return m.fail(ctx, running, failureFrom(rerr))
	}
	return m.complete(ctx, running, &entity.OperationResult{Text: &entity.TextExtractionResult{
		Text:   res.Text,
		Pages:  res.Pages,
		Method: "vision-sync",
	}})
}

func (m *Manager) dispatchClassification(ctx context.Context, op *entity.Operation, app *entity.Application) (*entity.Operation, error) {
	if app.ExtractedText == nil || *app.ExtractedText == "" {
		return m.fail(ctx, op, &entity.OperationFailure{
			Message: "application has no extracted text; run text extraction first",
		})
	}
	running, err := m.markRunning(ctx, op)
	if err != nil {
		return nil, err
	}

	cls, _, cerr := m.completions.ClassifyProduct(ctx, llm.ClassifyRequest{
		Text:         *app.ExtractedText,
		FilenameHint: filepath.Base(app.SourcePath),
		AllowedTypes: m.allowedTypes,
	})
	if cerr != nil {
		return m.fail(ctx, running, failureFrom(cerr))
	}
	return m.complete(ctx, running, &entity.OperationResult{Classification: &entity.ClassificationResult{
		ProductType: cls.ProductType,
		Confidence:  cls.Confidence,
		Reasoning:   cls.Reasoning,
	}})
}

func (m *Manager) dispatchAbbreviation(ctx context.Context, op *entity.Operation, app *entity.Application) (*entity.Operation, error) {
	if app.ExtractedText == nil || *app.ExtractedText == "" {
		return m.fail(ctx, op, &entity.OperationFailure{
			Message: "application has no extracted text; run text extraction first",
		})
	}
	running, err := m.markRunning(ctx, op)
	if err != nil {
		return nil, err
	}

	var productType string
	if app.ProductType != nil {
		productType = *app.ProductType
	}
	abbr, _, aerr := m.completions.GenerateAbbreviation(ctx, llm.AbbreviationRequest{
		Text:        *app.ExtractedText,
		ProductType: productType,
	})
	if aerr != nil {
		return m.fail(ctx, running, failureFrom(aerr))
	}
	params := map[string]string{}
	if productType != "" {
		params["product_type"] = productType
	}
	return m.complete(ctx, running, &entity.OperationResult{Abbreviation: &entity.AbbreviationResult{
		Abbreviation: abbr.Abbreviation,
		Params:       params,
	}})
}

func (m *Manager) markRunning(ctx context.Context, op *entity.Operation) (*entity.Operation, error) {
	if op.Status == constants.OpStatusRunning {
		return op, nil
	}
	next := *op
	next.Status = constants.OpStatusRunning
	now := time.Now().UTC()
	next.StartedAt = &now
	return m.ops.Save(ctx, &next)
}

func (m *Manager) complete(ctx context.Context, op *entity.Operation, result *entity.OperationResult) (*entity.Operation, error) {
	next := *op
	next.Status = constants.OpStatusCompleted
	now := time.Now().UTC()
	next.CompletedAt = &now
	next.Result = result
	next.Failure = nil

	saved, err := m.ops.Save(ctx, &next)
	if err != nil {
		return nil, err
	}
	m.logger.Info("op.completed", "operation_id", op.ID, "kind", op.Kind)

	// Projection failures are logged inside and never propagate.
	m.projector.Project(ctx, saved)
	return saved, nil
}

func (m *Manager) fail(ctx context.Context, op *entity.Operation, failure *entity.OperationFailure) (*entity.Operation, error) {
	next := *op
	next.Status = constants.OpStatusFailed
	now := time.Now().UTC()
	next.CompletedAt = &now
	next.Failure = failure
	next.Result = nil

	saved, err := m.ops.Save(ctx, &next)
	if err != nil {
		return nil, err
	}
	m.logger.Warn("op.failed",
		"operation_id", op.ID, "kind", op.Kind, "message", failure.Message, "code", failure.Code)
	return saved, nil
}

// defaultMetadata records where the dispatch will go; payloads are never
// duplicated into the operation record.
func (m *Manager) defaultMetadata(kind constants.OpKind, provider constants.Provider, app *entity.Application) *entity.RequestMetadata {
	switch {
	case provider == constants.ProviderLocal:
		return &entity.RequestMetadata{Endpoint: "local://sheet", Method: "EXTRACT"}
	case kind == constants.KindTextExtraction && constants.IsAsyncFormat(app.Format):
		return &entity.RequestMetadata{Endpoint: m.ocr.SubmitAsyncEndpoint(), Method: http.MethodPost}
	case kind == constants.KindTextExtraction:
		return &entity.RequestMetadata{Endpoint: m.ocr.RecognizeEndpoint(), Method: http.MethodPost}
	default:
		return &entity.RequestMetadata{Endpoint: m.completions.CompletionEndpoint(), Method: http.MethodPost}
	}
}

func mimeTypeFor(ext string) string {
	norm := constants.NormalizeExt(ext)
	if mt := mime.TypeByExtension("." + norm); mt != "" {
		return mt
	}
	switch norm {
	case "pdf":
		return "application/pdf"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	}
	return "application/octet-stream"
}

func failureFrom(err error) *entity.OperationFailure {
	f := &entity.OperationFailure{Message: err.Error()}
	var ce *common.Error
	if errors.As(err, &ce) {
		f.Message = ce.Message
		f.Code = ce.Code
		if f.Code == "" {
			f.Code = string(ce.Kind)
		}
		if ce.Cause != nil {
			f.Details = ce.Cause.Error()
		}
	}
	return f
}

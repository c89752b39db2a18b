package operations

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/akhomyakov/docflow/constants"
	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/entity"
	"github.com/akhomyakov/docflow/internal/llm"
	"github.com/akhomyakov/docflow/internal/sheet"
	"github.com/akhomyakov/docflow/internal/vision"
)

// In-memory doubles for the store and provider boundaries. They mirror the
// real contracts closely enough for lifecycle tests: value copies cross the
// boundary and the (owner, kind) slot is unique among non-deleted rows.

type fakeOpsRepo struct {
	mu      sync.Mutex
	ops     []*entity.Operation
	deleted map[uuid.UUID]bool
	saveErr error
}

func newFakeOpsRepo() *fakeOpsRepo {
	return &fakeOpsRepo{deleted: map[uuid.UUID]bool{}}
}

func cloneOp(o *entity.Operation) *entity.Operation {
	c := *o
	return &c
}

func (r *fakeOpsRepo) CreateOrGet(ctx context.Context, ownerID uuid.UUID, kind constants.OpKind, provider constants.Provider, meta *entity.RequestMetadata) (*entity.Operation, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.ops {
		if o.OwnerID == ownerID && o.Kind == kind && !r.deleted[o.ID] {
			return cloneOp(o), false, nil
		}
	}
	op := &entity.Operation{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Kind:            kind,
		Provider:        provider,
		Status:          constants.OpStatusPending,
		RequestMetadata: meta,
		CreatedAt:       time.Now().UTC(),
		MaxRetries:      3,
	}
	r.ops = append(r.ops, op)
	return cloneOp(op), true, nil
}

func (r *fakeOpsRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.ops {
		if o.ID == id && !r.deleted[id] {
			return cloneOp(o), nil
		}
	}
	return nil, common.NotFoundf("operation %s not found", id)
}

func (r *fakeOpsRepo) GetByOwnerAndKind(ctx context.Context, ownerID uuid.UUID, kind constants.OpKind) (*entity.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.ops {
		if o.OwnerID == ownerID && o.Kind == kind && !r.deleted[o.ID] {
			return cloneOp(o), nil
		}
	}
	return nil, common.NotFoundf("no %s operation for owner %s", kind, ownerID)
}

func (r *fakeOpsRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, kind *constants.OpKind) ([]*entity.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Operation
	for _, o := range r.ops {
		if o.OwnerID != ownerID || r.deleted[o.ID] {
			continue
		}
		if kind != nil && o.Kind != *kind {
			continue
		}
		out = append(out, cloneOp(o))
	}
	return out, nil
}

func (r *fakeOpsRepo) Save(ctx context.Context, op *entity.Operation) (*entity.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	for i, o := range r.ops {
		if o.ID == op.ID && !r.deleted[op.ID] {
			r.ops[i] = cloneOp(op)
			return cloneOp(op), nil
		}
	}
	return nil, common.NotFoundf("operation %s not found", op.ID)
}

func (r *fakeOpsRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.ops {
		if o.ID == id && !r.deleted[id] {
			r.deleted[id] = true
			return nil
		}
	}
	return common.NotFoundf("operation %s not found", id)
}

type fakeAppsRepo struct {
	mu        sync.Mutex
	apps      map[uuid.UUID]*entity.Application
	patches   []entity.ApplicationPatch
	updateErr error
}

func newFakeAppsRepo() *fakeAppsRepo {
	return &fakeAppsRepo{apps: map[uuid.UUID]*entity.Application{}}
}

func (r *fakeAppsRepo) add(app *entity.Application) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app.ID] = app
}

func (r *fakeAppsRepo) get(id uuid.UUID) *entity.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apps[id]
}

func (r *fakeAppsRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, common.NotFoundf("application %s not found", id)
	}
	c := *app
	return &c, nil
}

func (r *fakeAppsRepo) Update(ctx context.Context, id uuid.UUID, patch entity.ApplicationPatch) (*entity.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	app, ok := r.apps[id]
	if !ok {
		return nil, common.NotFoundf("application %s not found", id)
	}
	if patch.ExtractedText != nil {
		app.ExtractedText = patch.ExtractedText
	}
	if patch.ProductType != nil {
		app.ProductType = patch.ProductType
	}
	if patch.TypeConfidence != nil {
		app.TypeConfidence = patch.TypeConfidence
	}
	if patch.TypeReasoning != nil {
		app.TypeReasoning = patch.TypeReasoning
	}
	if patch.Abbreviation != nil {
		app.Abbreviation = patch.Abbreviation
	}
	if len(patch.AbbreviationParams) > 0 {
		app.AbbreviationParams = patch.AbbreviationParams
	}
	if patch.ProcessedAt != nil {
		app.ProcessedAt = patch.ProcessedAt
	}
	r.patches = append(r.patches, patch)
	c := *app
	return &c, nil
}

type pollStep struct {
	out vision.PollOutcome
	err error
}

type fakeOCR struct {
	mu             sync.Mutex
	recognizeRes   vision.TextResult
	recognizeErr   error
	submitRes      vision.SubmitOutcome
	submitErr      error
	polls          []pollStep
	recognizeCalls int
	submitCalls    int
	pollCalls      int
	lastJobID      string
}

func (f *fakeOCR) Recognize(ctx context.Context, content []byte, mimeType string) (vision.TextResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recognizeCalls++
	return f.recognizeRes, f.recognizeErr
}

func (f *fakeOCR) SubmitAsync(ctx context.Context, content []byte, mimeType string) (vision.SubmitOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitCalls++
	return f.submitRes, f.submitErr
}

func (f *fakeOCR) CheckStatus(ctx context.Context, jobID string) (vision.PollOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pollCalls++
	f.lastJobID = jobID
	if len(f.polls) == 0 {
		return vision.PollOutcome{}, nil
	}
	step := f.polls[0]
	if len(f.polls) > 1 {
		f.polls = f.polls[1:]
	}
	return step.out, step.err
}

func (f *fakeOCR) RecognizeEndpoint() string   { return "https://ocr.test/recognizeText" }
func (f *fakeOCR) SubmitAsyncEndpoint() string { return "https://ocr.test/recognizeTextAsync" }

type fakeCompletions struct {
	mu             sync.Mutex
	classification llm.Classification
	classifyErr    error
	abbreviation   llm.Abbreviation
	abbrevErr      error
	classifyCalls  int
	abbrevCalls    int
	lastClassify   llm.ClassifyRequest
	lastAbbrev     llm.AbbreviationRequest
}

func (f *fakeCompletions) ClassifyProduct(ctx context.Context, req llm.ClassifyRequest) (llm.Classification, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.classifyCalls++
	f.lastClassify = req
	return f.classification, nil, f.classifyErr
}

func (f *fakeCompletions) GenerateAbbreviation(ctx context.Context, req llm.AbbreviationRequest) (llm.Abbreviation, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.abbrevCalls++
	f.lastAbbrev = req
	return f.abbreviation, nil, f.abbrevErr
}

func (f *fakeCompletions) CompletionEndpoint() string { return "https://llm.test/completion" }

type fakeSheets struct {
	res   sheet.ExtractionResult
	err   error
	calls int
}

func (f *fakeSheets) Extract(ctx context.Context, path string) (sheet.ExtractionResult, error) {
	f.calls++
	return f.res, f.err
}

type testEnv struct {
	manager *Manager
	ops     *fakeOpsRepo
	apps    *fakeAppsRepo
	ocr     *fakeOCR
	llm     *fakeCompletions
	sheets  *fakeSheets
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := &testEnv{
		ops:    newFakeOpsRepo(),
		apps:   newFakeAppsRepo(),
		ocr:    &fakeOCR{},
		llm:    &fakeCompletions{},
		sheets: &fakeSheets{},
	}
	env.manager = NewManager(
		env.ops, env.apps, env.ocr, env.llm, env.sheets,
		NewProjector(env.apps, logger),
		[]string{"PUMP", "VALVE"},
		logger,
	)
	return env
}

// seedApp registers an application whose source path points at a real file,
// so the vision dispatch path can read it.
func (e *testEnv) seedApp(t *testing.T, ext, format string) *entity.Application {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application."+ext)
	require.NoError(t, os.WriteFile(path, []byte("document bytes"), 0o600))

	app := &entity.Application{
		ID:         uuid.New(),
		Filename:   filepath.Base(path),
		SourcePath: path,
		FileExt:    ext,
		Format:     format,
		UploadedAt: time.Now().UTC(),
	}
	e.apps.add(app)
	return app
}

func strPtr(s string) *string { return &s }

package operations

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhomyakov/docflow/constants"
	"github.com/akhomyakov/docflow/internal/entity"
)

func newTestProjector(apps *fakeAppsRepo) *Projector {
	return NewProjector(apps, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func completedOp(ownerID uuid.UUID, kind constants.OpKind, result *entity.OperationResult) *entity.Operation {
	now := time.Now().UTC()
	return &entity.Operation{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Kind:        kind,
		Status:      constants.OpStatusCompleted,
		Result:      result,
		CompletedAt: &now,
	}
}

func TestProjectIgnoresNonCompleted(t *testing.T) {
	apps := newFakeAppsRepo()
	p := newTestProjector(apps)

	op := completedOp(uuid.New(), constants.KindTextExtraction,
		&entity.OperationResult{Text: &entity.TextExtractionResult{Text: "x"}})
	op.Status = constants.OpStatusRunning

	assert.False(t, p.Project(context.Background(), op))
	assert.False(t, p.Project(context.Background(), nil))
	assert.Empty(t, apps.patches)
}

func TestProjectIgnoresEmptyResult(t *testing.T) {
	apps := newFakeAppsRepo()
	p := newTestProjector(apps)

	op := completedOp(uuid.New(), constants.KindTextExtraction, &entity.OperationResult{})
	assert.False(t, p.Project(context.Background(), op))
	assert.Empty(t, apps.patches)
}

func TestProjectRejectsResultKindMismatch(t *testing.T) {
	apps := newFakeAppsRepo()
	app := &entity.Application{ID: uuid.New()}
	apps.add(app)
	p := newTestProjector(apps)

	// classification result on a text-extraction operation
	op := completedOp(app.ID, constants.KindTextExtraction,
		&entity.OperationResult{Classification: &entity.ClassificationResult{ProductType: "PUMP"}})

	assert.False(t, p.Project(context.Background(), op))
	assert.Empty(t, apps.patches)
}

func TestProjectTextExtraction(t *testing.T) {
	apps := newFakeAppsRepo()
	app := &entity.Application{ID: uuid.New()}
	apps.add(app)
	p := newTestProjector(apps)

	op := completedOp(app.ID, constants.KindTextExtraction,
		&entity.OperationResult{Text: &entity.TextExtractionResult{Text: "Pump X-100", Method: "vision-sync"}})

	assert.True(t, p.Project(context.Background(), op))
	require.NotNil(t, app.ExtractedText)
	assert.Equal(t, "Pump X-100", *app.ExtractedText)
}

func TestProjectClassification(t *testing.T) {
	apps := newFakeAppsRepo()
	app := &entity.Application{ID: uuid.New()}
	apps.add(app)
	p := newTestProjector(apps)

	op := completedOp(app.ID, constants.KindClassification,
		&entity.OperationResult{Classification: &entity.ClassificationResult{
			ProductType: "VALVE", Confidence: 0.8, Reasoning: "mentions DN50",
		}})

	assert.True(t, p.Project(context.Background(), op))
	require.NotNil(t, app.ProductType)
	assert.Equal(t, "VALVE", *app.ProductType)
	require.NotNil(t, app.TypeConfidence)
	assert.InDelta(t, 0.8, float64(*app.TypeConfidence), 0.001)
	require.NotNil(t, app.TypeReasoning)
	assert.Equal(t, "mentions DN50", *app.TypeReasoning)
}

func TestProjectAbbreviation(t *testing.T) {
	apps := newFakeAppsRepo()
	app := &entity.Application{ID: uuid.New()}
	apps.add(app)
	p := newTestProjector(apps)

	op := completedOp(app.ID, constants.KindAbbreviation,
		&entity.OperationResult{Abbreviation: &entity.AbbreviationResult{
			Abbreviation: "PMP-X100",
			Params:       map[string]string{"product_type": "PUMP"},
		}})

	assert.True(t, p.Project(context.Background(), op))
	require.NotNil(t, app.Abbreviation)
	assert.Equal(t, "PMP-X100", *app.Abbreviation)
	require.NotNil(t, app.ProcessedAt)
	assert.Equal(t, *op.CompletedAt, *app.ProcessedAt)

	var params map[string]string
	require.NoError(t, json.Unmarshal(app.AbbreviationParams, &params))
	assert.Equal(t, "PUMP", params["product_type"])
}

func TestProjectSwallowsWriteFailures(t *testing.T) {
	apps := newFakeAppsRepo()
	app := &entity.Application{ID: uuid.New()}
	apps.add(app)
	apps.updateErr = errors.New("db down")
	p := newTestProjector(apps)

	op := completedOp(app.ID, constants.KindTextExtraction,
		&entity.OperationResult{Text: &entity.TextExtractionResult{Text: "x"}})

	assert.False(t, p.Project(context.Background(), op))
	assert.Nil(t, app.ExtractedText)
}

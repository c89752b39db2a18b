package operations

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhomyakov/docflow/constants"
	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/entity"
	"github.com/akhomyakov/docflow/internal/llm"
	"github.com/akhomyakov/docflow/internal/sheet"
	"github.com/akhomyakov/docflow/internal/vision"
)

func TestCreateRejectsInvalidCombination(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "jpg", constants.IMAGE)

	_, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindClassification, constants.ProviderYandexVision, nil, "")
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindValidation), "got %v", err)
}

func TestCreateRejectsNonPendingInitialStatus(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "jpg", constants.IMAGE)

	_, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, constants.OpStatusRunning)
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindValidation), "got %v", err)
}

func TestCreateRejectsUnknownOwner(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.manager.CreateOrUpdateOperation(context.Background(),
		uuid.New(), constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindNotFound), "got %v", err)
}

func TestSyncTextExtractionCompletesAndProjects(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "jpg", constants.IMAGE)
	env.ocr.recognizeRes = vision.TextResult{Text: "Pump X-100\nFlow 50", Pages: 1}

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)

	assert.Equal(t, constants.OpStatusCompleted, op.Status)
	require.NotNil(t, op.Result)
	require.NotNil(t, op.Result.Text)
	assert.Equal(t, "Pump X-100\nFlow 50", op.Result.Text.Text)
	assert.Equal(t, "vision-sync", op.Result.Text.Method)
	assert.NotNil(t, op.StartedAt)
	assert.NotNil(t, op.CompletedAt)
	assert.Nil(t, op.Failure)
	assert.Equal(t, 1, env.ocr.recognizeCalls)

	require.NotNil(t, env.apps.get(app.ID).ExtractedText)
	assert.Equal(t, "Pump X-100\nFlow 50", *env.apps.get(app.ID).ExtractedText)

	// default metadata records the sync endpoint
	require.NotNil(t, op.RequestMetadata)
	assert.Equal(t, "https://ocr.test/recognizeText", op.RequestMetadata.Endpoint)
}

func TestCreateIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "jpg", constants.IMAGE)
	env.ocr.recognizeRes = vision.TextResult{Text: "text", Pages: 1}

	first, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)

	second, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, constants.OpStatusCompleted, second.Status)
	// the second request must not re-dispatch
	assert.Equal(t, 1, env.ocr.recognizeCalls)
}

func TestProviderErrorFailsWithoutOperationLevelRetry(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "jpg", constants.IMAGE)
	env.ocr.recognizeErr = common.Provider("provider returned status 502", "HTTP_502", nil)

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)

	assert.Equal(t, constants.OpStatusFailed, op.Status)
	require.NotNil(t, op.Failure)
	assert.Equal(t, "HTTP_502", op.Failure.Code)
	assert.Nil(t, op.Result)
	assert.Equal(t, 1, env.ocr.recognizeCalls)
	assert.Equal(t, 0, op.RetryCount)
	assert.Nil(t, env.apps.get(app.ID).ExtractedText)
}

func TestAsyncSubmitLeavesOperationRunning(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "pdf", constants.PDF)
	env.ocr.submitRes = vision.SubmitOutcome{JobID: "job-42"}

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)

	assert.Equal(t, constants.OpStatusRunning, op.Status)
	require.NotNil(t, op.ExternalJobID)
	assert.Equal(t, "job-42", *op.ExternalJobID)
	assert.NotNil(t, op.StartedAt)
	assert.Nil(t, op.CompletedAt)
	assert.Equal(t, 1, env.ocr.submitCalls)
	assert.Equal(t, 0, env.ocr.recognizeCalls)

	require.NotNil(t, op.RequestMetadata)
	assert.Equal(t, "https://ocr.test/recognizeTextAsync", op.RequestMetadata.Endpoint)
}

func TestAsyncInlineResultCompletesImmediately(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "pdf", constants.PDF)
	env.ocr.submitRes = vision.SubmitOutcome{Done: true, Text: &vision.TextResult{Text: "one pager", Pages: 1}}

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)

	assert.Equal(t, constants.OpStatusCompleted, op.Status)
	require.NotNil(t, op.Result.Text)
	assert.Equal(t, "one pager", op.Result.Text.Text)
	assert.Nil(t, op.ExternalJobID)
}

func TestCheckStatusAdvancesRunningJob(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "pdf", constants.PDF)
	env.ocr.submitRes = vision.SubmitOutcome{JobID: "job-42"}
	env.ocr.polls = []pollStep{
		{out: vision.PollOutcome{}}, // still pending
		{out: vision.PollOutcome{Done: true, Text: &vision.TextResult{Text: "page one\npage two", Pages: 2}}},
	}

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)

	// first poll: job not done yet
	op, err = env.manager.CheckOperationStatus(context.Background(), op.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.OpStatusRunning, op.Status)

	// second poll: done
	op, err = env.manager.CheckOperationStatus(context.Background(), op.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.OpStatusCompleted, op.Status)
	require.NotNil(t, op.Result.Text)
	assert.Equal(t, "page one\npage two", op.Result.Text.Text)
	assert.Equal(t, 2, op.Result.Text.Pages)
	assert.Equal(t, "vision-async", op.Result.Text.Method)
	assert.Equal(t, "job-42", env.ocr.lastJobID)

	require.NotNil(t, env.apps.get(app.ID).ExtractedText)
	assert.Equal(t, "page one\npage two", *env.apps.get(app.ID).ExtractedText)
}

func TestCheckStatusTransientErrorKeepsOperationRunning(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "pdf", constants.PDF)
	env.ocr.submitRes = vision.SubmitOutcome{JobID: "job-42"}
	env.ocr.polls = []pollStep{
		{err: common.Transient("request timed out", errors.New("i/o timeout"))},
	}

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)

	got, err := env.manager.CheckOperationStatus(context.Background(), op.ID)
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindTransient))
	require.NotNil(t, got)
	assert.Equal(t, constants.OpStatusRunning, got.Status)

	// the record itself was not touched
	stored, err := env.manager.GetOperation(context.Background(), op.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.OpStatusRunning, stored.Status)
	assert.Nil(t, stored.Failure)
}

func TestCheckStatusJobErrorFailsOperation(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "pdf", constants.PDF)
	env.ocr.submitRes = vision.SubmitOutcome{JobID: "job-42"}
	env.ocr.polls = []pollStep{
		{out: vision.PollOutcome{Done: true, JobErr: &vision.JobError{Code: "OCR_FAILED", Message: "unreadable"}}},
	}

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)

	op, err = env.manager.CheckOperationStatus(context.Background(), op.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.OpStatusFailed, op.Status)
	require.NotNil(t, op.Failure)
	assert.Equal(t, "OCR_FAILED", op.Failure.Code)
	assert.Equal(t, "unreadable", op.Failure.Message)
}

func TestCheckStatusIsNoOpOutsideRunning(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "jpg", constants.IMAGE)
	env.ocr.recognizeRes = vision.TextResult{Text: "text", Pages: 1}

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)
	require.Equal(t, constants.OpStatusCompleted, op.Status)

	got, err := env.manager.CheckOperationStatus(context.Background(), op.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.OpStatusCompleted, got.Status)
	assert.Equal(t, 0, env.ocr.pollCalls)
}

func TestLocalSpreadsheetExtraction(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "xlsx", constants.SPREADSHEET)
	env.sheets.res = sheet.ExtractionResult{Text: "Product\tPump", Sheets: 1}

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderLocal, nil, "")
	require.NoError(t, err)

	assert.Equal(t, constants.OpStatusCompleted, op.Status)
	require.NotNil(t, op.Result.Text)
	assert.Equal(t, "sheet-local", op.Result.Text.Method)
	assert.Equal(t, 1, env.sheets.calls)
	assert.Equal(t, 0, env.ocr.recognizeCalls)

	require.NotNil(t, op.RequestMetadata)
	assert.Equal(t, "local://sheet", op.RequestMetadata.Endpoint)
}

func TestLocalProviderRejectsNonSpreadsheet(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "pdf", constants.PDF)

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderLocal, nil, "")
	require.NoError(t, err)

	assert.Equal(t, constants.OpStatusFailed, op.Status)
	require.NotNil(t, op.Failure)
	assert.Contains(t, op.Failure.Message, "spreadsheets only")
	assert.Equal(t, 0, env.sheets.calls)
}

func TestClassificationRequiresExtractedText(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "pdf", constants.PDF)

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindClassification, constants.ProviderYandexGPT, nil, "")
	require.NoError(t, err)

	assert.Equal(t, constants.OpStatusFailed, op.Status)
	require.NotNil(t, op.Failure)
	assert.Contains(t, op.Failure.Message, "no extracted text")
	assert.Equal(t, 0, env.llm.classifyCalls)
}

func TestClassificationCompletesAndProjects(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "pdf", constants.PDF)
	app.ExtractedText = strPtr("Centrifugal pump, flow 50 m3/h")
	env.llm.classification = llm.Classification{ProductType: "PUMP", Confidence: 0.9, Reasoning: "mentions flow"}

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindClassification, constants.ProviderYandexGPT, nil, "")
	require.NoError(t, err)

	assert.Equal(t, constants.OpStatusCompleted, op.Status)
	require.NotNil(t, op.Result.Classification)
	assert.Equal(t, "PUMP", op.Result.Classification.ProductType)

	assert.Equal(t, []string{"PUMP", "VALVE"}, env.llm.lastClassify.AllowedTypes)
	assert.Equal(t, app.Filename, env.llm.lastClassify.FilenameHint)

	stored := env.apps.get(app.ID)
	require.NotNil(t, stored.ProductType)
	assert.Equal(t, "PUMP", *stored.ProductType)
	require.NotNil(t, stored.TypeConfidence)
	assert.InDelta(t, 0.9, float64(*stored.TypeConfidence), 0.001)
}

func TestAbbreviationCompletesAndProjects(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "pdf", constants.PDF)
	app.ExtractedText = strPtr("Pump X-100")
	app.ProductType = strPtr("PUMP")
	env.llm.abbreviation = llm.Abbreviation{Abbreviation: "PMP-X100"}

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindAbbreviation, constants.ProviderYandexGPT, nil, "")
	require.NoError(t, err)

	assert.Equal(t, constants.OpStatusCompleted, op.Status)
	require.NotNil(t, op.Result.Abbreviation)
	assert.Equal(t, "PMP-X100", op.Result.Abbreviation.Abbreviation)
	assert.Equal(t, "PUMP", op.Result.Abbreviation.Params["product_type"])
	assert.Equal(t, "PUMP", env.llm.lastAbbrev.ProductType)

	stored := env.apps.get(app.ID)
	require.NotNil(t, stored.Abbreviation)
	assert.Equal(t, "PMP-X100", *stored.Abbreviation)
	assert.NotNil(t, stored.ProcessedAt)
}

func TestUpdateStatusGuards(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "pdf", constants.PDF)
	env.ocr.submitRes = vision.SubmitOutcome{JobID: "job-1"}

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)
	require.Equal(t, constants.OpStatusRunning, op.Status)

	// unknown status
	_, err = env.manager.UpdateOperationStatus(context.Background(), op.ID, "DONE", nil, nil)
	assert.True(t, common.IsKind(err, common.KindValidation), "got %v", err)

	// completed without a result
	_, err = env.manager.UpdateOperationStatus(context.Background(), op.ID, constants.OpStatusCompleted, nil, nil)
	assert.True(t, common.IsKind(err, common.KindValidation), "got %v", err)

	// failed without a failure
	_, err = env.manager.UpdateOperationStatus(context.Background(), op.ID, constants.OpStatusFailed, nil, nil)
	assert.True(t, common.IsKind(err, common.KindValidation), "got %v", err)

	// legal: running -> completed with a result
	op, err = env.manager.UpdateOperationStatus(context.Background(), op.ID, constants.OpStatusCompleted,
		&entity.OperationResult{Text: &entity.TextExtractionResult{Text: "manual", Method: "vision-async"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.OpStatusCompleted, op.Status)

	// terminal records accept nothing further
	_, err = env.manager.UpdateOperationStatus(context.Background(), op.ID, constants.OpStatusRunning, nil, nil)
	assert.True(t, common.IsKind(err, common.KindValidation), "got %v", err)
}

func TestRedoResetsAndRedispatches(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "jpg", constants.IMAGE)
	env.ocr.recognizeErr = common.Provider("provider returned status 502", "HTTP_502", nil)

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)
	require.Equal(t, constants.OpStatusFailed, op.Status)

	// the provider recovers
	env.ocr.recognizeErr = nil
	env.ocr.recognizeRes = vision.TextResult{Text: "recovered text", Pages: 1}

	redone, err := env.manager.RedoOperation(context.Background(), op.ID)
	require.NoError(t, err)
	assert.Equal(t, op.ID, redone.ID)
	assert.Equal(t, constants.OpStatusCompleted, redone.Status)
	assert.Equal(t, 1, redone.RetryCount)
	assert.Nil(t, redone.Failure)
	require.NotNil(t, redone.Result.Text)
	assert.Equal(t, "recovered text", redone.Result.Text.Text)
	assert.Equal(t, 2, env.ocr.recognizeCalls)
}

func TestRedoRejectsNonTerminal(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "pdf", constants.PDF)
	env.ocr.submitRes = vision.SubmitOutcome{JobID: "job-1"}

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)
	require.Equal(t, constants.OpStatusRunning, op.Status)

	_, err = env.manager.RedoOperation(context.Background(), op.ID)
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindValidation), "got %v", err)
}

func TestRedoRejectsExhaustedBudget(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "jpg", constants.IMAGE)
	env.ocr.recognizeErr = common.Provider("still down", "HTTP_502", nil)

	op, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)

	for i := 0; i < op.MaxRetries; i++ {
		op, err = env.manager.RedoOperation(context.Background(), op.ID)
		require.NoError(t, err)
		require.Equal(t, constants.OpStatusFailed, op.Status)
	}
	assert.Equal(t, op.MaxRetries, op.RetryCount)

	_, err = env.manager.RedoOperation(context.Background(), op.ID)
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindValidation), "got %v", err)
	assert.Contains(t, err.Error(), "retry budget")
}

func TestDeleteFreesTheSlot(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "jpg", constants.IMAGE)
	env.ocr.recognizeRes = vision.TextResult{Text: "text", Pages: 1}

	first, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)

	require.NoError(t, env.manager.DeleteOperation(context.Background(), first.ID))

	_, err = env.manager.GetOperation(context.Background(), first.ID)
	assert.True(t, common.IsKind(err, common.KindNotFound), "got %v", err)

	second, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, env.ocr.recognizeCalls)
}

func TestListOperationsFiltersByKind(t *testing.T) {
	env := newTestEnv(t)
	app := env.seedApp(t, "jpg", constants.IMAGE)
	app.ExtractedText = strPtr("some text")
	env.ocr.recognizeRes = vision.TextResult{Text: "text", Pages: 1}
	env.llm.classification = llm.Classification{ProductType: "PUMP"}

	_, err := env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil, "")
	require.NoError(t, err)
	_, err = env.manager.CreateOrUpdateOperation(context.Background(),
		app.ID, constants.KindClassification, constants.ProviderYandexGPT, nil, "")
	require.NoError(t, err)

	all, err := env.manager.ListOperations(context.Background(), app.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	kind := constants.KindClassification
	filtered, err := env.manager.ListOperations(context.Background(), app.ID, &kind)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, constants.KindClassification, filtered[0].Kind)
}

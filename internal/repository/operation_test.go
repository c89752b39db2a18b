package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhomyakov/docflow/constants"
	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/entity"
)

func TestCreateOrGetIsIdempotent(t *testing.T) {
	client := openTestClient(t)
	app := seedApplication(t, client)
	repo := NewOperationRepository(client, discardLogger())
	ctx := t.Context()

	meta := &entity.RequestMetadata{Endpoint: "https://ocr.test/recognizeText", Method: "POST"}
	first, isNew, err := repo.CreateOrGet(ctx, app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, meta)
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, constants.OpStatusPending, first.Status)
	assert.Equal(t, 0, first.RetryCount)
	assert.Equal(t, 3, first.MaxRetries)
	require.NotNil(t, first.RequestMetadata)
	assert.Equal(t, "https://ocr.test/recognizeText", first.RequestMetadata.Endpoint)

	second, isNew, err := repo.CreateOrGet(ctx, app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, meta)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, first.ID, second.ID)

	// a different kind occupies its own slot
	other, isNew, err := repo.CreateOrGet(ctx, app.ID, constants.KindClassification, constants.ProviderYandexGPT, nil)
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestCreateOrGetConcurrent(t *testing.T) {
	client := openTestClient(t)
	app := seedApplication(t, client)
	repo := NewOperationRepository(client, discardLogger())
	ctx := t.Context()

	const workers = 8
	ids := make([]uuid.UUID, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			op, _, err := repo.CreateOrGet(ctx, app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil)
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = op.ID
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i], "every caller must see the same operation")
	}
}

func TestSaveOverwritesAllMutableFields(t *testing.T) {
	client := openTestClient(t)
	app := seedApplication(t, client)
	repo := NewOperationRepository(client, discardLogger())
	ctx := t.Context()

	op, _, err := repo.CreateOrGet(ctx, app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil)
	require.NoError(t, err)

	// pending -> running with an external job id
	jobID := "job-42"
	started := time.Now().UTC().Truncate(time.Second)
	op.Status = constants.OpStatusRunning
	op.ExternalJobID = &jobID
	op.StartedAt = &started
	op, err = repo.Save(ctx, op)
	require.NoError(t, err)

	reloaded, err := repo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.OpStatusRunning, reloaded.Status)
	require.NotNil(t, reloaded.ExternalJobID)
	assert.Equal(t, "job-42", *reloaded.ExternalJobID)
	require.NotNil(t, reloaded.StartedAt)

	// running -> completed: result set, failure and job id cleared
	completed := time.Now().UTC().Truncate(time.Second)
	reloaded.Status = constants.OpStatusCompleted
	reloaded.CompletedAt = &completed
	reloaded.ExternalJobID = nil
	reloaded.Result = &entity.OperationResult{Text: &entity.TextExtractionResult{
		Text: "page one\npage two", Pages: 2, Method: "vision-async",
	}}
	_, err = repo.Save(ctx, reloaded)
	require.NoError(t, err)

	final, err := repo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.OpStatusCompleted, final.Status)
	assert.Nil(t, final.ExternalJobID)
	assert.Nil(t, final.Failure)
	require.NotNil(t, final.Result)
	require.NotNil(t, final.Result.Text)
	assert.Equal(t, "page one\npage two", final.Result.Text.Text)
	assert.Equal(t, 2, final.Result.Text.Pages)
	require.NotNil(t, final.CompletedAt)
}

func TestSaveClearsOutcomeOnReset(t *testing.T) {
	client := openTestClient(t)
	app := seedApplication(t, client)
	repo := NewOperationRepository(client, discardLogger())
	ctx := t.Context()

	op, _, err := repo.CreateOrGet(ctx, app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil)
	require.NoError(t, err)

	now := time.Now().UTC()
	op.Status = constants.OpStatusFailed
	op.CompletedAt = &now
	op.Failure = &entity.OperationFailure{Message: "provider returned status 502", Code: "HTTP_502"}
	op, err = repo.Save(ctx, op)
	require.NoError(t, err)
	require.NotNil(t, op.Failure)

	// back to pending with the retry counter bumped
	op.Status = constants.OpStatusPending
	op.RetryCount++
	op.Failure = nil
	op.Result = nil
	op.StartedAt = nil
	op.CompletedAt = nil
	op.ExternalJobID = nil
	_, err = repo.Save(ctx, op)
	require.NoError(t, err)

	reloaded, err := repo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.OpStatusPending, reloaded.Status)
	assert.Equal(t, 1, reloaded.RetryCount)
	assert.Nil(t, reloaded.Failure)
	assert.Nil(t, reloaded.Result)
	assert.Nil(t, reloaded.StartedAt)
	assert.Nil(t, reloaded.CompletedAt)
}

func TestSoftDeleteFreesTheSlot(t *testing.T) {
	client := openTestClient(t)
	app := seedApplication(t, client)
	repo := NewOperationRepository(client, discardLogger())
	ctx := t.Context()

	first, _, err := repo.CreateOrGet(ctx, app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil)
	require.NoError(t, err)

	require.NoError(t, repo.SoftDelete(ctx, first.ID))

	_, err = repo.GetByID(ctx, first.ID)
	assert.True(t, common.IsKind(err, common.KindNotFound), "got %v", err)
	_, err = repo.GetByOwnerAndKind(ctx, app.ID, constants.KindTextExtraction)
	assert.True(t, common.IsKind(err, common.KindNotFound), "got %v", err)

	second, isNew, err := repo.CreateOrGet(ctx, app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil)
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestListByOwner(t *testing.T) {
	client := openTestClient(t)
	app := seedApplication(t, client)
	other := seedApplication(t, client)
	repo := NewOperationRepository(client, discardLogger())
	ctx := t.Context()

	_, _, err := repo.CreateOrGet(ctx, app.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil)
	require.NoError(t, err)
	_, _, err = repo.CreateOrGet(ctx, app.ID, constants.KindClassification, constants.ProviderYandexGPT, nil)
	require.NoError(t, err)
	_, _, err = repo.CreateOrGet(ctx, other.ID, constants.KindTextExtraction, constants.ProviderYandexVision, nil)
	require.NoError(t, err)

	all, err := repo.ListByOwner(ctx, app.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	kind := constants.KindClassification
	filtered, err := repo.ListByOwner(ctx, app.ID, &kind)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, constants.KindClassification, filtered[0].Kind)
}

func TestNotFoundPaths(t *testing.T) {
	client := openTestClient(t)
	repo := NewOperationRepository(client, discardLogger())
	ctx := t.Context()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.True(t, common.IsKind(err, common.KindNotFound), "got %v", err)

	_, err = repo.GetByOwnerAndKind(ctx, uuid.New(), constants.KindTextExtraction)
	assert.True(t, common.IsKind(err, common.KindNotFound), "got %v", err)

	err = repo.SoftDelete(ctx, uuid.New())
	assert.True(t, common.IsKind(err, common.KindNotFound), "got %v", err)

	_, err = repo.Save(ctx, &entity.Operation{ID: uuid.New()})
	require.Error(t, err)
}

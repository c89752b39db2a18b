package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhomyakov/docflow/internal/common"
	"github.com/akhomyakov/docflow/internal/entity"
)

func TestApplicationGetByID(t *testing.T) {
	client := openTestClient(t)
	row := seedApplication(t, client)
	repo := NewApplicationRepository(client, discardLogger())

	app, err := repo.GetByID(t.Context(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, row.ID, app.ID)
	assert.Equal(t, "application.pdf", app.Filename)
	assert.Nil(t, app.ExtractedText)

	_, err = repo.GetByID(t.Context(), uuid.New())
	assert.True(t, common.IsKind(err, common.KindNotFound), "got %v", err)
}

func TestApplicationUpdateAppliesOnlySetFields(t *testing.T) {
	client := openTestClient(t)
	row := seedApplication(t, client)
	repo := NewApplicationRepository(client, discardLogger())
	ctx := t.Context()

	text := "Pump X-100, flow 50 m3/h"
	app, err := repo.Update(ctx, row.ID, entity.ApplicationPatch{ExtractedText: &text})
	require.NoError(t, err)
	require.NotNil(t, app.ExtractedText)
	assert.Equal(t, text, *app.ExtractedText)

	productType := "PUMP"
	confidence := float32(0.9)
	app, err = repo.Update(ctx, row.ID, entity.ApplicationPatch{
		ProductType:    &productType,
		TypeConfidence: &confidence,
	})
	require.NoError(t, err)
	require.NotNil(t, app.ProductType)
	assert.Equal(t, "PUMP", *app.ProductType)
	// the earlier write survives a patch that does not mention it
	require.NotNil(t, app.ExtractedText)
	assert.Equal(t, text, *app.ExtractedText)

	abbr := "PMP-X100"
	processed := time.Now().UTC().Truncate(time.Second)
	params, err := json.Marshal(map[string]string{"product_type": "PUMP"})
	require.NoError(t, err)
	app, err = repo.Update(ctx, row.ID, entity.ApplicationPatch{
		Abbreviation:       &abbr,
		AbbreviationParams: params,
		ProcessedAt:        &processed,
	})
	require.NoError(t, err)
	require.NotNil(t, app.Abbreviation)
	assert.Equal(t, "PMP-X100", *app.Abbreviation)
	require.NotNil(t, app.ProcessedAt)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(app.AbbreviationParams, &decoded))
	assert.Equal(t, "PUMP", decoded["product_type"])
}

func TestApplicationUpdateUnknownID(t *testing.T) {
	client := openTestClient(t)
	repo := NewApplicationRepository(client, discardLogger())

	text := "x"
	_, err := repo.Update(t.Context(), uuid.New(), entity.ApplicationPatch{ExtractedText: &text})
	assert.True(t, common.IsKind(err, common.KindNotFound), "got %v", err)
}

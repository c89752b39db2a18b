package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	assert.False(t, OpStatusPending.IsTerminal())
	assert.False(t, OpStatusRunning.IsTerminal())
	assert.True(t, OpStatusCompleted.IsTerminal())
	assert.True(t, OpStatusFailed.IsTerminal())
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]OpStatus{
		{OpStatusPending, OpStatusRunning},
		{OpStatusPending, OpStatusFailed},
		{OpStatusRunning, OpStatusCompleted},
		{OpStatusRunning, OpStatusFailed},
	}
	for _, pair := range allowed {
		assert.True(t, CanTransition(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}

	statuses := []OpStatus{OpStatusPending, OpStatusRunning, OpStatusCompleted, OpStatusFailed}
	for _, to := range statuses {
		assert.False(t, CanTransition(OpStatusCompleted, to), "completed -> %s", to)
		assert.False(t, CanTransition(OpStatusFailed, to), "failed -> %s", to)
	}
	assert.False(t, CanTransition(OpStatusPending, OpStatusCompleted))
	assert.False(t, CanTransition(OpStatusRunning, OpStatusPending))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(OpStatusPending))
	assert.False(t, ValidStatus(OpStatus("DONE")))
	assert.False(t, ValidStatus(OpStatus("")))
}

func TestValidCombination(t *testing.T) {
	assert.True(t, ValidCombination(KindTextExtraction, ProviderYandexVision))
	assert.True(t, ValidCombination(KindTextExtraction, ProviderLocal))
	assert.True(t, ValidCombination(KindClassification, ProviderYandexGPT))
	assert.True(t, ValidCombination(KindAbbreviation, ProviderYandexGPT))

	assert.False(t, ValidCombination(KindTextExtraction, ProviderYandexGPT))
	assert.False(t, ValidCombination(KindClassification, ProviderYandexVision))
	assert.False(t, ValidCombination(KindAbbreviation, ProviderLocal))
	assert.False(t, ValidCombination(OpKind("UNKNOWN"), ProviderLocal))
}

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, PDF, MapExtToFormat(".pdf"))
	assert.Equal(t, PDF, MapExtToFormat("PDF"))
	assert.Equal(t, IMAGE, MapExtToFormat("jpeg"))
	assert.Equal(t, IMAGE, MapExtToFormat(".png"))
	assert.Equal(t, SPREADSHEET, MapExtToFormat("xlsx"))
	assert.Equal(t, "", MapExtToFormat("docx"))
}

func TestIsAsyncFormat(t *testing.T) {
	assert.True(t, IsAsyncFormat(PDF))
	assert.False(t, IsAsyncFormat(IMAGE))
	assert.False(t, IsAsyncFormat(SPREADSHEET))
}

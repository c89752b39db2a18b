package sheet

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/akhomyakov/docflow/internal/common"
)

func writeWorkbook(t *testing.T, fill func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { require.NoError(t, f.Close()) }()
	if fill != nil {
		fill(f)
	}
	path := filepath.Join(t.TempDir(), "application.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExtract(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		require.NoError(t, f.SetCellValue("Sheet1", "A1", "Product"))
		require.NoError(t, f.SetCellValue("Sheet1", "B1", "Pump X-100"))
		require.NoError(t, f.SetCellValue("Sheet1", "A2", "Flow"))
		require.NoError(t, f.SetCellValue("Sheet1", "B2", "50 m3/h"))
		_, err := f.NewSheet("Params")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Params", "A1", "Head"))
		require.NoError(t, f.SetCellValue("Params", "B1", "32 m"))
	})

	res, err := NewExtractor(nil).Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Product\tPump X-100\nFlow\t50 m3/h\nHead\t32 m", res.Text)
	assert.Equal(t, 2, res.Sheets)
}

func TestExtractEmptyWorkbookFails(t *testing.T) {
	path := writeWorkbook(t, nil)

	_, err := NewExtractor(nil).Extract(context.Background(), path)
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindParse), "got %v", err)
}

func TestExtractMissingFileFails(t *testing.T) {
	_, err := NewExtractor(nil).Extract(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.True(t, common.IsKind(err, common.KindParse), "got %v", err)
}

func TestExtractHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExtractor(nil).Extract(ctx, "irrelevant.xlsx")
	require.ErrorIs(t, err, context.Canceled)
}

package sheet

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/akhomyakov/docflow/internal/common"
)

// ExtractionResult is the outcome of a local spreadsheet extraction.
type ExtractionResult struct {
	Text     string
	Sheets   int
	Duration time.Duration
}

// Extractor reads spreadsheet applications in-process; this is the "local"
// pseudo-provider, no network involved.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract reads every sheet of the workbook, joining cells with tabs and rows
// with newlines. A workbook with no textual content is a failure, not an
// empty success.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return ExtractionResult{}, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		e.logger.Error("sheet.open_failed", "path", path, "error", err)
		return ExtractionResult{}, common.Parse("open workbook", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("sheet.close_failed", "path", path, "error", cerr)
		}
	}()

	var parts []string
	sheets := f.GetSheetList()
	for _, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			e.logger.Error("sheet.read_failed", "path", path, "sheet", name, "error", err)
			return ExtractionResult{}, common.Parse("read sheet "+name, err)
		}
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, "\t"))
			if line != "" {
				parts = append(parts, line)
			}
		}
	}

	text := strings.Join(parts, "\n")
	if text == "" {
		return ExtractionResult{}, common.Parse("workbook contains no text", nil)
	}

	res := ExtractionResult{Text: text, Sheets: len(sheets), Duration: time.Since(start)}
	e.logger.Debug("sheet.extract.ok", "path", path, "sheets", res.Sheets, "text_len", len(text))
	return res, nil
}

package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextPrefersFullText(t *testing.T) {
	ann := &textAnnotation{
		FullText: "  Pump application X-100\nFlow: 50 m3/h  ",
		Blocks: []block{
			{Lines: []line{{Text: "ignored when fullText is set"}}},
		},
	}
	assert.Equal(t, "Pump application X-100\nFlow: 50 m3/h", extractText(ann))
}

func TestExtractTextFallsBackToLines(t *testing.T) {
	ann := &textAnnotation{
		Blocks: []block{
			{Lines: []line{{Text: "Pump application X-100"}, {Text: "Flow: 50 m3/h"}}},
			{Lines: []line{{Text: "Head: 32 m"}}},
		},
	}
	assert.Equal(t, "Pump application X-100\nFlow: 50 m3/h\nHead: 32 m", extractText(ann))
}

func TestExtractTextFallsBackToWords(t *testing.T) {
	ann := &textAnnotation{
		Blocks: []block{
			{Lines: []line{
				{Words: []word{{Text: "Pump"}, {Text: "X-100"}}},
				{Text: "Flow: 50 m3/h"},
			}},
		},
	}
	assert.Equal(t, "Pump X-100\nFlow: 50 m3/h", extractText(ann))
}

func TestExtractTextEmpty(t *testing.T) {
	assert.Equal(t, "", extractText(nil))
	assert.Equal(t, "", extractText(&textAnnotation{}))
	assert.Equal(t, "", extractText(&textAnnotation{
		Blocks: []block{{Lines: []line{{Text: "   "}}}},
	}))
}

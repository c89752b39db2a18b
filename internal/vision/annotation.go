package vision

import "strings"

// Wire shapes of the OCR provider, decoded once at this boundary. Only the
// fields the polling and extraction logic needs are mapped.

type textAnnotation struct {
	FullText string  `json:"fullText"`
	Blocks   []block `json:"blocks"`
}

type block struct {
	Lines []line `json:"lines"`
}

type line struct {
	Text  string `json:"text"`
	Words []word `json:"words"`
}

type word struct {
	Text string `json:"text"`
}

type recognizeResponse struct {
	TextAnnotation *textAnnotation `json:"textAnnotation"`
	Page           int             `json:"page,omitempty"`
}

// operationEnvelope is the long-running-job envelope: submission may answer
// done=false with a job id, the status endpoint answers done plus either a
// response or an error.
type operationEnvelope struct {
	ID       string             `json:"id"`
	Done     bool               `json:"done"`
	Response *recognizeResponse `json:"response,omitempty"`
	Error    *operationError    `json:"error,omitempty"`
}

type operationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type recognitionPage struct {
	TextAnnotation *textAnnotation `json:"textAnnotation"`
}

type recognitionResult struct {
	Pages []recognitionPage `json:"pages"`
}

// extractText reconstructs text from an annotation with a fixed precedence:
// the full-text field when populated, then line text, then concatenated
// words. Returns "" when nothing is recoverable; callers treat that as a
// parse failure, never as an empty success.
func extractText(ann *textAnnotation) string {
	if ann == nil {
		return ""
	}
	if t := strings.TrimSpace(ann.FullText); t != "" {
		return t
	}
	var lines []string
	for _, b := range ann.Blocks {
		for _, l := range b.Lines {
			if t := strings.TrimSpace(l.Text); t != "" {
				lines = append(lines, t)
				continue
			}
			var words []string
			for _, w := range l.Words {
				if w.Text != "" {
					words = append(words, w.Text)
				}
			}
			if len(words) > 0 {
				lines = append(lines, strings.Join(words, " "))
			}
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

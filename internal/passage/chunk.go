package passage

import (
	"fmt"
	"strings"

	"github.com/abhisek/lexio/internal/chunkplan"
)

// TextChunk is a labeled span of passage text, ready for display.
// Start/End are byte offsets into the rebuilt passage text (paragraphs
// joined with blank lines).
type TextChunk struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// FixedChunks groups paragraphs into fixed-size chunks with generic
// labels. This is the non-AI fallback when no thematic plan is available.
func FixedChunks(text string, parasPerChunk int) []TextChunk {
	if parasPerChunk < 1 {
		parasPerChunk = 3
	}

	paras := SplitParagraphs(text)
	rebuilt := strings.Join(paras, "\n\n")

	var chunks []TextChunk
	cursor := 0

	for i := 0; i < len(paras); i += parasPerChunk {
		end := min(i+parasPerChunk, len(paras))
		chunkText := strings.Join(paras[i:end], "\n\n")

		start := strings.Index(rebuilt[cursor:], chunkText) + cursor
		cursor = start + len(chunkText)

		n := i/parasPerChunk + 1
		chunks = append(chunks, TextChunk{
			ID:    fmt.Sprintf("c%d", n),
			Label: fmt.Sprintf("Section %d", n),
			Start: start,
			End:   cursor,
			Text:  chunkText,
		})
	}

	return chunks
}

// FromPlan maps a validated section plan onto paragraph text, producing
// labeled text chunks in plan order.
func FromPlan(paragraphs []string, sections []chunkplan.Section) []TextChunk {
	rebuilt := strings.Join(paragraphs, "\n\n")

	chunks := make([]TextChunk, 0, len(sections))
	for _, s := range sections {
		text := strings.Join(paragraphs[s.StartPara:s.EndPara+1], "\n\n")

		start := strings.Index(rebuilt, text)
		end := 0
		if start >= 0 {
			end = start + len(text)
		} else {
			start = 0
		}

		chunks = append(chunks, TextChunk{
			ID:    s.ID,
			Label: s.Label,
			Start: start,
			End:   end,
			Text:  text,
		})
	}

	return chunks
}

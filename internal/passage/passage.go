// Package passage handles passage content: loading, paragraph splitting,
// and mapping section plans back onto passage text.
package passage

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Passage is a static piece of reading content.
type Passage struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Load reads a passage from a JSON file.
func Load(path string) (*Passage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read passage file: %w", err)
	}

	var p Passage
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse passage file: %w", err)
	}

	if p.ID == "" {
		return nil, fmt.Errorf("passage file %s: missing id", path)
	}
	if strings.TrimSpace(p.Text) == "" {
		return nil, fmt.Errorf("passage file %s: empty text", path)
	}

	return &p, nil
}

var paragraphSep = regexp.MustCompile(`\n\s*\n`)

// SplitParagraphs splits passage text into trimmed, non-empty paragraphs
// on blank lines. The resulting 0-based order is the authoritative
// paragraph indexing for all downstream validation.
func SplitParagraphs(text string) []string {
	parts := paragraphSep.Split(text, -1)
	paras := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

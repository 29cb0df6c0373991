// Package chunkplan validates and generates thematic section plans: ordered
// partitions of a passage's paragraphs into labeled, contiguous intervals.
package chunkplan

// Section is a closed interval [StartPara, EndPara] over paragraph
// indices, with a short human-readable theme label.
type Section struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	StartPara int    `json:"startPara"`
	EndPara   int    `json:"endPara"`
}

// Size returns the number of paragraphs the section covers.
func (s Section) Size() int {
	return s.EndPara - s.StartPara + 1
}

// ParagraphIdea pairs a paragraph's text with its one-line main idea.
type ParagraphIdea struct {
	Text string `json:"text"`
	Idea string `json:"idea"`
}

// ChunkedPassage is the result of thematic chunking: the passage split
// into labeled paragraphs plus a validated section plan covering them.
type ChunkedPassage struct {
	Paragraphs []ParagraphIdea `json:"paragraphs"`
	Sections   []Section       `json:"sections"`
}

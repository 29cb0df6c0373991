package passage

import (
	"testing"

	"github.com/abhisek/lexio/internal/chunkplan"
)

const chunkText = "Alpha paragraph.\n\nBravo paragraph.\n\nCharlie paragraph.\n\nDelta paragraph.\n\nEcho paragraph."

func TestFixedChunks(t *testing.T) {
	chunks := FixedChunks(chunkText, 2)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}

	if chunks[0].Text != "Alpha paragraph.\n\nBravo paragraph." {
		t.Errorf("chunk 0 text = %q", chunks[0].Text)
	}
	if chunks[2].Text != "Echo paragraph." {
		t.Errorf("chunk 2 text = %q", chunks[2].Text)
	}

	for i, c := range chunks {
		if c.ID == "" || c.Label == "" {
			t.Errorf("chunk %d missing id or label: %+v", i, c)
		}
		if c.Start >= c.End {
			t.Errorf("chunk %d has empty span [%d,%d)", i, c.Start, c.End)
		}
	}

	// Spans are consecutive and non-overlapping over the rebuilt text.
	for i := 1; i < len(chunks); i++ {
		if chunks[i].Start < chunks[i-1].End {
			t.Errorf("chunk %d overlaps chunk %d", i, i-1)
		}
	}
}

func TestFixedChunks_BadSizeFallsBack(t *testing.T) {
	chunks := FixedChunks(chunkText, 0)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks with default size, want 2", len(chunks))
	}
}

func TestFromPlan(t *testing.T) {
	paras := SplitParagraphs(chunkText)
	sections := []chunkplan.Section{
		{ID: "c1", Label: "Opening", StartPara: 0, EndPara: 1},
		{ID: "c2", Label: "Middle", StartPara: 2, EndPara: 3},
		{ID: "c3", Label: "Close", StartPara: 4, EndPara: 4},
	}

	chunks := FromPlan(paras, sections)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}

	if chunks[0].Label != "Opening" || chunks[0].Text != "Alpha paragraph.\n\nBravo paragraph." {
		t.Errorf("chunk 0 = %+v", chunks[0])
	}
	if chunks[2].ID != "c3" || chunks[2].Text != "Echo paragraph." {
		t.Errorf("chunk 2 = %+v", chunks[2])
	}

	rebuilt := chunkText
	for i, c := range chunks {
		if got := rebuilt[c.Start:c.End]; got != c.Text {
			t.Errorf("chunk %d span mismatch: %q vs %q", i, got, c.Text)
		}
	}
}

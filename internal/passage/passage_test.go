package passage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writePassageFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "passage.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write passage file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writePassageFile(t, `{"id": "p1", "title": "The Log", "text": "First paragraph.\n\nSecond paragraph."}`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.ID != "p1" || p.Title != "The Log" {
		t.Errorf("got %+v", p)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not json", "not json at all"},
		{"missing id", `{"title": "x", "text": "some text"}`},
		{"empty text", `{"id": "p1", "title": "x", "text": "   "}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writePassageFile(t, tc.content)
			if _, err := Load(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSplitParagraphs(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			"blank line separated",
			"First.\n\nSecond.\n\nThird.",
			[]string{"First.", "Second.", "Third."},
		},
		{
			"whitespace-only separator lines",
			"First.\n   \nSecond.",
			[]string{"First.", "Second."},
		},
		{
			"leading and trailing blank lines",
			"\n\nOnly one.\n\n",
			[]string{"Only one."},
		},
		{
			"single newlines stay joined",
			"One line.\nStill the same paragraph.",
			[]string{"One line.\nStill the same paragraph."},
		},
		{
			"empty input",
			"   \n \n ",
			nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitParagraphs(tc.text)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitParagraphs = %v, want %v", got, tc.want)
			}
		})
	}
}

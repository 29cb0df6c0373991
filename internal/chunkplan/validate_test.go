package chunkplan

import (
	"errors"
	"testing"
)

func kindOf(t *testing.T, err error) PartitionErrorKind {
	t.Helper()
	if err == nil {
		t.Fatal("expected a partition error")
	}
	var perr *PartitionError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PartitionError, got %T", err)
	}
	return perr.Kind
}

func TestValidate_ThreeSections(t *testing.T) {
	sections := []Section{
		{ID: "x", Label: "Opening", StartPara: 0, EndPara: 1},
		{ID: "y", Label: "Development", StartPara: 2, EndPara: 4},
		{ID: "z", Label: "Conclusion", StartPara: 5, EndPara: 5},
	}

	got, err := Validate(sections, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(got))
	}
	for i, want := range []string{"c1", "c2", "c3"} {
		if got[i].ID != want {
			t.Errorf("section %d: expected ID %q, got %q", i, want, got[i].ID)
		}
	}
}

func TestValidate_SortsBeforeChecking(t *testing.T) {
	sections := []Section{
		{Label: "Conclusion", StartPara: 4, EndPara: 5},
		{Label: "Opening", StartPara: 0, EndPara: 3},
	}

	got, err := Validate(sections, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Label != "Opening" || got[0].ID != "c1" {
		t.Errorf("expected Opening first as c1, got %+v", got[0])
	}
	if got[1].Label != "Conclusion" || got[1].ID != "c2" {
		t.Errorf("expected Conclusion second as c2, got %+v", got[1])
	}
}

func TestValidate_CoversEveryParagraphOnce(t *testing.T) {
	sections := []Section{
		{Label: "a", StartPara: 0, EndPara: 2},
		{Label: "b", StartPara: 3, EndPara: 3},
		{Label: "c", StartPara: 4, EndPara: 7},
	}

	got, err := Validate(sections, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	covered := make(map[int]int)
	for _, s := range got {
		for p := s.StartPara; p <= s.EndPara; p++ {
			covered[p]++
		}
	}
	for p := range 8 {
		if covered[p] != 1 {
			t.Errorf("paragraph %d covered %d times, want exactly once", p, covered[p])
		}
	}
}

func TestValidate_Idempotent(t *testing.T) {
	sections := []Section{
		{Label: "a", StartPara: 0, EndPara: 1},
		{Label: "b", StartPara: 2, EndPara: 4},
	}

	first, err := Validate(sections, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Validate(first, 5)
	if err != nil {
		t.Fatalf("unexpected error on revalidation: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("section %d changed on revalidation: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestValidate_NotStartingAtZero(t *testing.T) {
	sections := []Section{
		{Label: "a", StartPara: 1, EndPara: 4},
	}
	_, err := Validate(sections, 5)
	if kind := kindOf(t, err); kind != KindNotStartingAtZero {
		t.Errorf("expected %q, got %q", KindNotStartingAtZero, kind)
	}
}

func TestValidate_NotEndingAtLast(t *testing.T) {
	sections := []Section{
		{Label: "a", StartPara: 0, EndPara: 3},
	}
	_, err := Validate(sections, 5)
	if kind := kindOf(t, err); kind != KindNotEndingAtLast {
		t.Errorf("expected %q, got %q", KindNotEndingAtLast, kind)
	}
}

func TestValidate_Gap(t *testing.T) {
	sections := []Section{
		{Label: "a", StartPara: 0, EndPara: 1},
		{Label: "b", StartPara: 3, EndPara: 4},
	}
	_, err := Validate(sections, 5)
	if kind := kindOf(t, err); kind != KindGapOrOverlap {
		t.Errorf("expected %q, got %q", KindGapOrOverlap, kind)
	}
}

func TestValidate_Overlap(t *testing.T) {
	sections := []Section{
		{Label: "a", StartPara: 0, EndPara: 2},
		{Label: "b", StartPara: 2, EndPara: 5},
	}
	_, err := Validate(sections, 6)
	if kind := kindOf(t, err); kind != KindGapOrOverlap {
		t.Errorf("expected %q, got %q", KindGapOrOverlap, kind)
	}
}

func TestValidate_EqualStartIsRejected(t *testing.T) {
	sections := []Section{
		{Label: "a", StartPara: 0, EndPara: 2},
		{Label: "b", StartPara: 0, EndPara: 2},
	}
	_, err := Validate(sections, 3)
	if kind := kindOf(t, err); kind != KindGapOrOverlap {
		t.Errorf("expected %q, got %q", KindGapOrOverlap, kind)
	}
}

func TestValidate_InvertedRange(t *testing.T) {
	sections := []Section{
		{Label: "a", StartPara: 0, EndPara: 2},
		{Label: "b", StartPara: 3, EndPara: 1},
	}
	_, err := Validate(sections, 4)
	if kind := kindOf(t, err); kind != KindInvertedRange {
		t.Errorf("expected %q, got %q", KindInvertedRange, kind)
	}
}

func TestValidate_OutOfBounds(t *testing.T) {
	sections := []Section{
		{Label: "a", StartPara: 0, EndPara: 9},
	}
	_, err := Validate(sections, 5)
	if kind := kindOf(t, err); kind != KindNotEndingAtLast {
		// The end check runs before the per-section bounds walk.
		t.Errorf("expected %q, got %q", KindNotEndingAtLast, kind)
	}

	sections = []Section{
		{Label: "a", StartPara: 0, EndPara: 9},
		{Label: "b", StartPara: 10, EndPara: 4},
	}
	_, err = Validate(sections, 5)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestValidate_Empty(t *testing.T) {
	if _, err := Validate(nil, 5); err == nil {
		t.Fatal("expected error for empty plan")
	}
}

func TestValidateSized_TooSmall(t *testing.T) {
	sections := []Section{
		{Label: "a", StartPara: 0, EndPara: 0},
		{Label: "b", StartPara: 1, EndPara: 4},
	}
	_, err := ValidateSized(sections, 5, 2, 0)
	if kind := kindOf(t, err); kind != KindSizeOutOfRange {
		t.Errorf("expected %q, got %q", KindSizeOutOfRange, kind)
	}
}

func TestValidateSized_TooLarge(t *testing.T) {
	sections := []Section{
		{Label: "a", StartPara: 0, EndPara: 4},
		{Label: "b", StartPara: 5, EndPara: 5},
	}
	_, err := ValidateSized(sections, 6, 0, 3)
	if kind := kindOf(t, err); kind != KindSizeOutOfRange {
		t.Errorf("expected %q, got %q", KindSizeOutOfRange, kind)
	}
}

func TestValidateSized_WithinBounds(t *testing.T) {
	sections := []Section{
		{Label: "a", StartPara: 0, EndPara: 2},
		{Label: "b", StartPara: 3, EndPara: 5},
	}
	got, err := ValidateSized(sections, 6, 2, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(got))
	}
}

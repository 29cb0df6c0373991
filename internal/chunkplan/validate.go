package chunkplan

import (
	"fmt"
	"sort"
)

// PartitionErrorKind is a machine-checkable classification of a
// partition violation.
type PartitionErrorKind string

const (
	KindNotStartingAtZero PartitionErrorKind = "not_starting_at_zero"
	KindNotEndingAtLast   PartitionErrorKind = "not_ending_at_last"
	KindInvertedRange     PartitionErrorKind = "inverted_range"
	KindOutOfBounds       PartitionErrorKind = "out_of_bounds"
	KindGapOrOverlap      PartitionErrorKind = "gap_or_overlap"
	KindSizeOutOfRange    PartitionErrorKind = "size_out_of_range"
)

// PartitionError reports the first partition invariant a candidate plan
// violated. The whole candidate is rejected; there is no partial
// acceptance of valid sections.
type PartitionError struct {
	Kind    PartitionErrorKind
	Message string
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("invalid partition (%s): %s", e.Kind, e.Message)
}

// Validate checks that sections form a contiguous, gapless, non-overlapping
// partition of [0, paraCount-1], then reassigns sequential IDs ("c1", "c2",
// ...) in sorted order. The input slice is not modified; the normalized
// copy is returned. ID assignment is a pure function of the final sorted
// order, never of insertion order.
func Validate(sections []Section, paraCount int) ([]Section, error) {
	return validate(sections, paraCount, 0, 0)
}

// ValidateSized is Validate with an additional inclusive per-section size
// bound. A section spanning fewer than minSize or more than maxSize
// paragraphs fails with size_out_of_range. A bound of 0 disables that side.
func ValidateSized(sections []Section, paraCount, minSize, maxSize int) ([]Section, error) {
	return validate(sections, paraCount, minSize, maxSize)
}

func validate(sections []Section, paraCount, minSize, maxSize int) ([]Section, error) {
	if len(sections) == 0 {
		return nil, &PartitionError{
			Kind:    KindGapOrOverlap,
			Message: "plan has no sections",
		}
	}
	if paraCount < 1 {
		return nil, &PartitionError{
			Kind:    KindOutOfBounds,
			Message: fmt.Sprintf("paragraph count must be >= 1, got %d", paraCount),
		}
	}

	sorted := make([]Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartPara < sorted[j].StartPara
	})

	if first := sorted[0]; first.StartPara != 0 {
		return nil, &PartitionError{
			Kind:    KindNotStartingAtZero,
			Message: fmt.Sprintf("first section starts at paragraph %d, want 0", first.StartPara),
		}
	}
	if last := sorted[len(sorted)-1]; last.EndPara != paraCount-1 {
		return nil, &PartitionError{
			Kind:    KindNotEndingAtLast,
			Message: fmt.Sprintf("last section ends at paragraph %d, want %d", last.EndPara, paraCount-1),
		}
	}

	for i, s := range sorted {
		if s.StartPara > s.EndPara {
			return nil, &PartitionError{
				Kind:    KindInvertedRange,
				Message: fmt.Sprintf("section %q has startPara %d > endPara %d", s.Label, s.StartPara, s.EndPara),
			}
		}
		if s.StartPara < 0 || s.EndPara >= paraCount {
			return nil, &PartitionError{
				Kind:    KindOutOfBounds,
				Message: fmt.Sprintf("section %q [%d,%d] exceeds paragraph range [0,%d]", s.Label, s.StartPara, s.EndPara, paraCount-1),
			}
		}
		if minSize > 0 && s.Size() < minSize {
			return nil, &PartitionError{
				Kind:    KindSizeOutOfRange,
				Message: fmt.Sprintf("section %q spans %d paragraphs, want at least %d", s.Label, s.Size(), minSize),
			}
		}
		if maxSize > 0 && s.Size() > maxSize {
			return nil, &PartitionError{
				Kind:    KindSizeOutOfRange,
				Message: fmt.Sprintf("section %q spans %d paragraphs, want at most %d", s.Label, s.Size(), maxSize),
			}
		}
		if i == 0 {
			continue
		}
		prev := sorted[i-1]
		// Two sections sharing a StartPara would make the sort order an
		// accident of input order, so that case is rejected here too.
		if s.StartPara != prev.EndPara+1 {
			return nil, &PartitionError{
				Kind:    KindGapOrOverlap,
				Message: fmt.Sprintf("section %q starts at paragraph %d, want %d (after %q)", s.Label, s.StartPara, prev.EndPara+1, prev.Label),
			}
		}
	}

	for i := range sorted {
		sorted[i].ID = fmt.Sprintf("c%d", i+1)
	}
	return sorted, nil
}

package chunkplan

// ResolveSections returns the labels of every section that contains at
// least one of the given evidence paragraph indices. Labels appear at
// most once, in section order. An index outside every section simply
// contributes nothing: sections may have been recomputed independently
// of the question set that produced the evidence, so the two need not
// line up.
func ResolveSections(evidenceParagraphs []int, sections []Section) []string {
	seen := make(map[string]bool, len(sections))
	labels := make([]string, 0, len(sections))
	for _, s := range sections {
		if seen[s.Label] {
			continue
		}
		for _, idx := range evidenceParagraphs {
			if idx >= s.StartPara && idx <= s.EndPara {
				seen[s.Label] = true
				labels = append(labels, s.Label)
				break
			}
		}
	}
	return labels
}

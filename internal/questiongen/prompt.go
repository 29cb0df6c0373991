package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You create reading comprehension question sets.

Rules:
- Create the requested number of questions mixing multiple-choice and short-answer; aim for at least 2 of each format.
- Every question MUST include ALL fields: format, type, difficulty, prompt, explanation, evidenceParagraphs, options, correctOptionIndex, modelAnswer, rubric.
- Use null for fields that don't apply:
  - format "mcq": options has 4 entries, correctOptionIndex is 0..3, modelAnswer and rubric are null.
  - format "short": modelAnswer is a string, rubric has 2-5 items, options and correctOptionIndex are null.
- evidenceParagraphs must be valid 0-based indices into the provided paragraphs.
- The explanation should justify the answer using the evidence.
- Do NOT repeat or closely paraphrase any prompts listed under "Previous prompts to avoid".
- Return ONLY JSON matching the schema.`

// buildUserMessage numbers the paragraphs for evidence referencing and
// attaches the anti-repeat list plus a variety nonce.
func buildUserMessage(paragraphs []string, opts GenerateOpts, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create %d-%d questions.\n", opts.CountMin, opts.CountMax)
	fmt.Fprintf(&b, "Variation nonce: %s\n\n", opts.Nonce)

	b.WriteString("Passage paragraphs:\n")
	for i, p := range paragraphs {
		fmt.Fprintf(&b, "[%d] %s\n\n", i, p)
	}

	b.WriteString("Previous prompts to avoid:\n")
	b.WriteString(buildAvoidList(opts.AvoidPrompts, cfg.MaxAvoidPrompts))

	return b.String()
}

// buildAvoidList formats prior prompts for the anti-repeat section,
// respecting the max limit. Returns "(none)" if there are none.
func buildAvoidList(prompts []string, max int) string {
	if len(prompts) == 0 {
		return "(none)"
	}

	if max > 0 && len(prompts) > max {
		prompts = prompts[len(prompts)-max:]
	}

	var b strings.Builder
	for _, p := range prompts {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	return strings.TrimRight(b.String(), "\n")
}

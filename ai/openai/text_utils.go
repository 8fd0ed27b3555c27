package openai

import "strings"

// scrubTitle collapses runs of whitespace, including newlines, into single
// spaces so a title cannot break the prompt layout.
func scrubTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cleanResponse trims whitespace and strips a surrounding markdown code fence
// that some models wrap plain answers in.
func cleanResponse(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") && strings.HasSuffix(s, "```") && len(s) >= 6 {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimPrefix(s, "```")
		// Drop a language tag on the opening fence line
		if i := strings.IndexByte(s, '\n'); i >= 0 && !strings.ContainsAny(s[:i], " \t") {
			s = s[i+1:]
		}
	}
	return strings.TrimSpace(s)
}

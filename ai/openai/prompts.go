package openai

import "fmt"

// summaryPromptTemplate asks for an explanation a non-specialist can follow.
const summaryPromptTemplate = "Explain in simple terms: %s"

// buildSummaryPrompt creates the user prompt for a publication title.
func buildSummaryPrompt(title string) string {
	return fmt.Sprintf(summaryPromptTemplate, scrubTitle(title))
}

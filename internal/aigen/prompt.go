package aigen

import "fmt"

func BuildSummaryPrompt(title, content string) string {
	return fmt.Sprintf(
		"Please provide a concise summary (3-4 sentences) of the following article:\n\nTitle: %s\n\nContent: %s",
		title, content,
	)
}

func BuildQuestionsPrompt(content string) string {
	return fmt.Sprintf(
		"Based on this article, generate 5 multiple-choice quiz questions. "+
			"Return ONLY valid JSON with no preamble or markdown:\n\n%s\n\n"+
			`Format:`+"\n"+`{"questions": [{"question": "...", "options": ["A", "B", "C", "D"], "correct": 0}]}`,
		content,
	)
}

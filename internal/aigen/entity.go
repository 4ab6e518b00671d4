package aigen

// Question is one generated multiple-choice question: the stem, an ordered list
// of options and the index of the correct one. The option order is significant
// and must be preserved through persistence.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

type SummaryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type QuestionsRequest struct {
	Content string `json:"content"`
}

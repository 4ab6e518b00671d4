// Package session implements the client-side quiz lifecycle: an explicit state
// machine driving article input, summary, full-content and quiz-taking views.
// Transitions are pure (state, event) -> (state, effects) mappings; network
// calls happen only when the controller executes the returned effects, so the
// machine itself is testable in isolation.
package session

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-lambda/internal/aigen"
)

type Step int

const (
	StepInput Step = iota
	StepSummary
	StepFullContent
	StepQuiz
)

// State holds everything the lifecycle owns in memory. Epoch tags in-flight
// asynchronous work: it bumps whenever the session switches context (reset or
// loading another article), and completions carrying a stale epoch are dropped
// instead of being applied to state they no longer belong to.
type State struct {
	Step    Step
	Title   string
	Content string
	Summary string

	// ArticleID is uuid.Nil until the article has been persisted.
	ArticleID uuid.UUID

	Questions []aigen.Question
	// QuizIDs are the persisted row ids aligned with Questions; the first one
	// anchors attempt submissions. Empty while the set is unsaved.
	QuizIDs []uuid.UUID

	Answers     map[int]int
	Current     int
	ShowResults bool

	Loading     bool // summary generation + article save pending
	QuizLoading bool // question generation pending

	// ErrMessage is the user-visible, non-fatal error of the last failed
	// action. Cleared when the action is retried.
	ErrMessage string

	Epoch int
}

func NewState() State {
	return State{Answers: map[int]int{}}
}

// reset returns a cleared state one epoch later, so results of calls issued
// before the reset can no longer land.
func (s State) reset() State {
	next := NewState()
	next.Epoch = s.Epoch + 1
	return next
}

func cloneAnswers(answers map[int]int) map[int]int {
	clone := make(map[int]int, len(answers)+1)
	for k, v := range answers {
		clone[k] = v
	}
	return clone
}

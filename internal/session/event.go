package session

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-lambda/internal/aigen"
)

// Event is a user action or the completion of an asynchronous effect.
// Completion events carry the epoch current when their effect was issued.
type Event interface{ isEvent() }

// User actions.

type SetTitle struct{ Value string }
type SetContent struct{ Value string }
type GenerateSummary struct{}
type SeeFullContent struct{}
type CloseFullContent struct{}
type GenerateQuiz struct{}
type AnswerSelected struct{ Question, Option int }
type PreviousQuestion struct{}
type NextQuestion struct{}
type SubmitQuiz struct{}
type BackToSummary struct{}
type RetakeQuiz struct{}
type Reset struct{}

// ArticleLoaded rehydrates the session from a persisted article selected in the
// history view. Questions and QuizIDs are the decoded quiz rows, aligned.
type ArticleLoaded struct {
	ArticleID uuid.UUID
	Title     string
	Content   string
	Summary   string
	Questions []aigen.Question
	QuizIDs   []uuid.UUID
}

// Effect completions.

type SummaryGenerated struct {
	Epoch   int
	Summary string
}

type SummaryFailed struct {
	Epoch   int
	Message string
}

type ArticleSaved struct {
	Epoch     int
	ArticleID uuid.UUID
}

type ArticleSaveFailed struct {
	Epoch   int
	Message string
}

type QuestionsGenerated struct {
	Epoch     int
	Questions []aigen.Question
}

type QuestionsFailed struct {
	Epoch   int
	Message string
}

type QuestionsSaved struct {
	Epoch   int
	QuizIDs []uuid.UUID
}

type QuestionsSaveFailed struct {
	Epoch   int
	Message string
}

type AttemptRecorded struct{ Epoch int }

type AttemptFailed struct {
	Epoch   int
	Message string
}

func (SetTitle) isEvent()            {}
func (SetContent) isEvent()          {}
func (GenerateSummary) isEvent()     {}
func (SeeFullContent) isEvent()      {}
func (CloseFullContent) isEvent()    {}
func (GenerateQuiz) isEvent()        {}
func (AnswerSelected) isEvent()      {}
func (PreviousQuestion) isEvent()    {}
func (NextQuestion) isEvent()        {}
func (SubmitQuiz) isEvent()          {}
func (BackToSummary) isEvent()       {}
func (RetakeQuiz) isEvent()          {}
func (Reset) isEvent()               {}
func (ArticleLoaded) isEvent()       {}
func (SummaryGenerated) isEvent()    {}
func (SummaryFailed) isEvent()       {}
func (ArticleSaved) isEvent()        {}
func (ArticleSaveFailed) isEvent()   {}
func (QuestionsGenerated) isEvent()  {}
func (QuestionsFailed) isEvent()     {}
func (QuestionsSaved) isEvent()      {}
func (QuestionsSaveFailed) isEvent() {}
func (AttemptRecorded) isEvent()     {}
func (AttemptFailed) isEvent()       {}

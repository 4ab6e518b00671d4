package session

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-lambda/internal/aigen"
)

// Effect is a side effect the controller must execute after a transition. Each
// asynchronous effect carries the epoch it was issued under so its completion
// can be discarded when the session has moved on.
type Effect interface{ isEffect() }

type EffectGenerateSummary struct {
	Epoch   int
	Title   string
	Content string
}

type EffectSaveArticle struct {
	Epoch   int
	Title   string
	Content string
	Summary string
}

type EffectGenerateQuestions struct {
	Epoch   int
	Content string
}

type EffectSaveQuestions struct {
	Epoch     int
	ArticleID uuid.UUID
	Questions []aigen.Question
}

type EffectRecordAttempt struct {
	Epoch          int
	QuizID         uuid.UUID
	Score          int
	TotalQuestions int
}

type EffectClearSelection struct{}

func (EffectGenerateSummary) isEffect()   {}
func (EffectSaveArticle) isEffect()       {}
func (EffectGenerateQuestions) isEffect() {}
func (EffectSaveQuestions) isEffect()     {}
func (EffectRecordAttempt) isEffect()     {}
func (EffectClearSelection) isEffect()    {}

package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-lambda/internal/aigen"
	"github.com/saulo-duarte/quizapp-lambda/internal/config"
)

// User-facing failure messages. Kept generic on purpose: the cause is logged,
// not shown.
const (
	msgSummaryFailed   = "Failed to generate summary. Please try again."
	msgSaveFailed      = "Failed to save article. Please try again."
	msgQuestionsFailed = "Failed to generate quiz. Please try again."
	msgAttemptFailed   = "Failed to save quiz attempt."
)

// Generator produces summaries and question sets. aigen.Service satisfies it.
type Generator interface {
	Summarize(ctx context.Context, title, content string) (string, error)
	GenerateQuestions(ctx context.Context, content string) ([]aigen.Question, error)
}

var _ Generator = (aigen.Service)(nil)

// Store persists session output. It is already scoped to one user.
type Store interface {
	SaveArticle(ctx context.Context, title, content, summary string) (uuid.UUID, error)
	ReplaceQuestions(ctx context.Context, articleID uuid.UUID, questions []aigen.Question) ([]uuid.UUID, error)
	RecordAttempt(ctx context.Context, quizID uuid.UUID, score, totalQuestions int) error
}

// SelectionSink is notified when the session resets, so the history view can
// drop its highlighted entry. Optional.
type SelectionSink interface {
	ClearSelection()
}

// Controller owns a session State and serializes event application. Effects
// run synchronously after the transition commits, and their completions are
// dispatched back through the reducer with the epoch they were issued under.
type Controller struct {
	mu        sync.Mutex
	state     State
	gen       Generator
	store     Store
	selection SelectionSink
}

func NewController(gen Generator, store Store, selection SelectionSink) *Controller {
	return &Controller{
		state:     NewState(),
		gen:       gen,
		store:     store,
		selection: selection,
	}
}

// State returns a snapshot of the current state. The Answers map is cloned so
// callers cannot mutate the controller's copy.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Answers = cloneAnswers(s.Answers)
	return s
}

// Dispatch applies one event and runs whatever effects the transition emits.
// It returns once the effect chain has settled.
func (c *Controller) Dispatch(ctx context.Context, ev Event) {
	c.mu.Lock()
	next, effects := Reduce(c.state, ev)
	c.state = next
	c.mu.Unlock()

	for _, effect := range effects {
		c.run(ctx, effect)
	}
}

func (c *Controller) run(ctx context.Context, effect Effect) {
	log := config.WithContext(ctx)

	switch ef := effect.(type) {

	case EffectGenerateSummary:
		summary, err := c.gen.Summarize(ctx, ef.Title, ef.Content)
		if err != nil {
			log.WithError(err).Error("Summary generation failed")
			c.Dispatch(ctx, SummaryFailed{Epoch: ef.Epoch, Message: msgSummaryFailed})
			return
		}
		c.Dispatch(ctx, SummaryGenerated{Epoch: ef.Epoch, Summary: summary})

	case EffectSaveArticle:
		id, err := c.store.SaveArticle(ctx, ef.Title, ef.Content, ef.Summary)
		if err != nil {
			log.WithError(err).Error("Article save failed")
			c.Dispatch(ctx, ArticleSaveFailed{Epoch: ef.Epoch, Message: msgSaveFailed})
			return
		}
		c.Dispatch(ctx, ArticleSaved{Epoch: ef.Epoch, ArticleID: id})

	case EffectGenerateQuestions:
		questions, err := c.gen.GenerateQuestions(ctx, ef.Content)
		if err != nil {
			log.WithError(err).Error("Question generation failed")
			c.Dispatch(ctx, QuestionsFailed{Epoch: ef.Epoch, Message: msgQuestionsFailed})
			return
		}
		c.Dispatch(ctx, QuestionsGenerated{Epoch: ef.Epoch, Questions: questions})

	case EffectSaveQuestions:
		ids, err := c.store.ReplaceQuestions(ctx, ef.ArticleID, ef.Questions)
		if err != nil {
			log.WithError(err).Error("Question set save failed")
			c.Dispatch(ctx, QuestionsSaveFailed{Epoch: ef.Epoch, Message: msgQuestionsFailed})
			return
		}
		c.Dispatch(ctx, QuestionsSaved{Epoch: ef.Epoch, QuizIDs: ids})

	case EffectRecordAttempt:
		if err := c.store.RecordAttempt(ctx, ef.QuizID, ef.Score, ef.TotalQuestions); err != nil {
			log.WithError(err).Error("Attempt recording failed")
			c.Dispatch(ctx, AttemptFailed{Epoch: ef.Epoch, Message: msgAttemptFailed})
			return
		}
		c.Dispatch(ctx, AttemptRecorded{Epoch: ef.Epoch})

	case EffectClearSelection:
		if c.selection != nil {
			c.selection.ClearSelection()
		}
	}
}

package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-lambda/internal/aigen"
)

type fakeGenerator struct {
	summary     string
	summaryErr  error
	questions   []aigen.Question
	questionErr error
}

func (f *fakeGenerator) Summarize(_ context.Context, _, _ string) (string, error) {
	return f.summary, f.summaryErr
}

func (f *fakeGenerator) GenerateQuestions(_ context.Context, _ string) ([]aigen.Question, error) {
	return f.questions, f.questionErr
}

type fakeStore struct {
	articleID uuid.UUID
	saveErr   error

	quizIDs    []uuid.UUID
	replaceErr error

	attempts   []int
	attemptErr error
}

func (f *fakeStore) SaveArticle(_ context.Context, _, _, _ string) (uuid.UUID, error) {
	if f.saveErr != nil {
		return uuid.Nil, f.saveErr
	}
	return f.articleID, nil
}

func (f *fakeStore) ReplaceQuestions(_ context.Context, _ uuid.UUID, _ []aigen.Question) ([]uuid.UUID, error) {
	return f.quizIDs, f.replaceErr
}

func (f *fakeStore) RecordAttempt(_ context.Context, _ uuid.UUID, score, _ int) error {
	if f.attemptErr != nil {
		return f.attemptErr
	}
	f.attempts = append(f.attempts, score)
	return nil
}

type fakeSink struct{ cleared int }

func (f *fakeSink) ClearSelection() { f.cleared++ }

func TestControllerFullLifecycle(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{
		summary:   "A concise summary.",
		questions: sampleQuestions(),
	}
	store := &fakeStore{
		articleID: uuid.New(),
		quizIDs:   []uuid.UUID{uuid.New(), uuid.New(), uuid.New()},
	}
	c := NewController(gen, store, nil)

	c.Dispatch(ctx, SetTitle{Value: "Title"})
	c.Dispatch(ctx, SetContent{Value: "Content"})
	c.Dispatch(ctx, GenerateSummary{})

	s := c.State()
	if s.Step != StepSummary || s.ArticleID != store.articleID || s.Loading {
		t.Fatalf("Unexpected state after summary flow: %+v", s)
	}
	if s.Summary != "A concise summary." {
		t.Errorf("Unexpected summary %q", s.Summary)
	}

	c.Dispatch(ctx, GenerateQuiz{})
	s = c.State()
	if s.Step != StepQuiz || s.QuizLoading {
		t.Fatalf("Unexpected state after quiz generation: %+v", s)
	}
	if len(s.QuizIDs) != 3 {
		t.Fatalf("Expected persisted quiz ids, got %d", len(s.QuizIDs))
	}

	c.Dispatch(ctx, AnswerSelected{Question: 0, Option: 1})
	c.Dispatch(ctx, AnswerSelected{Question: 1, Option: 0})
	c.Dispatch(ctx, SubmitQuiz{})

	s = c.State()
	if !s.ShowResults {
		t.Error("Expected results after submit")
	}
	if len(store.attempts) != 1 || store.attempts[0] != 2 {
		t.Errorf("Expected one attempt with score 2, got %v", store.attempts)
	}
}

func TestControllerSummaryFailureStaysInInput(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{summaryErr: errors.New("provider down")}
	c := NewController(gen, &fakeStore{}, nil)

	c.Dispatch(ctx, SetTitle{Value: "Title"})
	c.Dispatch(ctx, SetContent{Value: "Content"})
	c.Dispatch(ctx, GenerateSummary{})

	s := c.State()
	if s.Step != StepInput || s.Loading {
		t.Fatalf("Unexpected state after failure: %+v", s)
	}
	if s.ErrMessage != msgSummaryFailed {
		t.Errorf("Unexpected error message %q", s.ErrMessage)
	}
	if s.Title != "Title" || s.Content != "Content" {
		t.Error("Expected inputs preserved after failure")
	}
}

func TestControllerSaveFailureKeepsSummaryForRetry(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{summary: "Kept."}
	store := &fakeStore{saveErr: errors.New("db down")}
	c := NewController(gen, store, nil)

	c.Dispatch(ctx, SetTitle{Value: "Title"})
	c.Dispatch(ctx, SetContent{Value: "Content"})
	c.Dispatch(ctx, GenerateSummary{})

	s := c.State()
	if s.Step != StepInput || s.ErrMessage != msgSaveFailed {
		t.Fatalf("Unexpected state after save failure: %+v", s)
	}
	if s.Summary != "Kept." {
		t.Error("Expected the summary to survive for retry")
	}

	store.saveErr = nil
	store.articleID = uuid.New()
	c.Dispatch(ctx, GenerateSummary{})
	s = c.State()
	if s.Step != StepSummary || s.ArticleID != store.articleID {
		t.Fatalf("Expected retry to complete, got %+v", s)
	}
}

func TestControllerRegenerationShortCircuit(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{summary: "s", questions: sampleQuestions()}
	store := &fakeStore{articleID: uuid.New(), quizIDs: []uuid.UUID{uuid.New()}}
	c := NewController(gen, store, nil)

	c.Dispatch(ctx, SetTitle{Value: "T"})
	c.Dispatch(ctx, SetContent{Value: "C"})
	c.Dispatch(ctx, GenerateSummary{})
	c.Dispatch(ctx, GenerateQuiz{})
	c.Dispatch(ctx, BackToSummary{})

	gen.questionErr = errors.New("must not be called")
	c.Dispatch(ctx, GenerateQuiz{})

	s := c.State()
	if s.Step != StepQuiz || s.ErrMessage != "" {
		t.Fatalf("Expected re-entry without regeneration, got %+v", s)
	}
}

func TestControllerResetClearsSelection(t *testing.T) {
	ctx := context.Background()
	sink := &fakeSink{}
	c := NewController(&fakeGenerator{}, &fakeStore{}, sink)

	c.Dispatch(ctx, Reset{})
	if sink.cleared != 1 {
		t.Errorf("Expected one selection clear, got %d", sink.cleared)
	}
	if c.State().Epoch != 1 {
		t.Error("Expected reset to bump the epoch")
	}
}

package session

import (
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-lambda/internal/scoring"
)

// Reduce is the whole lifecycle transition table. It never performs I/O:
// network work is returned as effects for the controller to run. Events that
// are not meaningful in the current step are no-ops, and completion events
// whose epoch no longer matches are dropped.
func Reduce(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {

	case SetTitle:
		if s.Step != StepInput {
			return s, nil
		}
		s.Title = e.Value
		return s, nil

	case SetContent:
		if s.Step != StepInput {
			return s, nil
		}
		s.Content = e.Value
		return s, nil

	case GenerateSummary:
		// Re-invocation while pending is a no-op; empty inputs never start.
		if s.Step != StepInput || s.Loading {
			return s, nil
		}
		if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.Content) == "" {
			return s, nil
		}
		s.Loading = true
		s.ErrMessage = ""
		return s, []Effect{EffectGenerateSummary{Epoch: s.Epoch, Title: s.Title, Content: s.Content}}

	case SummaryGenerated:
		if e.Epoch != s.Epoch {
			return s, nil
		}
		// Still in Input until the article is persisted; the summary is kept
		// so a save failure can be retried without regenerating.
		s.Summary = e.Summary
		return s, []Effect{EffectSaveArticle{Epoch: s.Epoch, Title: s.Title, Content: s.Content, Summary: e.Summary}}

	case SummaryFailed:
		if e.Epoch != s.Epoch {
			return s, nil
		}
		s.Loading = false
		s.ErrMessage = e.Message
		return s, nil

	case ArticleSaved:
		if e.Epoch != s.Epoch {
			return s, nil
		}
		s.ArticleID = e.ArticleID
		s.Step = StepSummary
		s.Loading = false
		return s, nil

	case ArticleSaveFailed:
		if e.Epoch != s.Epoch {
			return s, nil
		}
		s.Loading = false
		s.ErrMessage = e.Message
		return s, nil

	case SeeFullContent:
		if s.Step != StepSummary {
			return s, nil
		}
		s.Step = StepFullContent
		return s, nil

	case CloseFullContent:
		if s.Step != StepFullContent {
			return s, nil
		}
		s.Step = StepSummary
		return s, nil

	case GenerateQuiz:
		if s.Step != StepSummary {
			return s, nil
		}
		// A loaded question set short-circuits generation: regeneration is
		// never implicit.
		if len(s.Questions) > 0 {
			s.Step = StepQuiz
			return s, nil
		}
		if s.QuizLoading {
			return s, nil
		}
		s.QuizLoading = true
		s.ErrMessage = ""
		return s, []Effect{EffectGenerateQuestions{Epoch: s.Epoch, Content: s.Content}}

	case QuestionsGenerated:
		if e.Epoch != s.Epoch {
			return s, nil
		}
		s.Questions = e.Questions
		s.QuizIDs = nil
		s.Answers = map[int]int{}
		s.Current = 0
		s.ShowResults = false
		s.Step = StepQuiz
		s.QuizLoading = false
		if s.ArticleID == uuid.Nil {
			return s, nil
		}
		return s, []Effect{EffectSaveQuestions{Epoch: s.Epoch, ArticleID: s.ArticleID, Questions: e.Questions}}

	case QuestionsFailed:
		if e.Epoch != s.Epoch {
			return s, nil
		}
		s.QuizLoading = false
		s.ErrMessage = e.Message
		return s, nil

	case QuestionsSaved:
		if e.Epoch != s.Epoch {
			return s, nil
		}
		s.QuizIDs = e.QuizIDs
		return s, nil

	case QuestionsSaveFailed:
		if e.Epoch != s.Epoch {
			return s, nil
		}
		s.ErrMessage = e.Message
		return s, nil

	case AnswerSelected:
		if s.Step != StepQuiz || s.ShowResults {
			return s, nil
		}
		if e.Question < 0 || e.Question >= len(s.Questions) {
			return s, nil
		}
		if e.Option < 0 || e.Option >= len(s.Questions[e.Question].Options) {
			return s, nil
		}
		// Last write wins.
		answers := cloneAnswers(s.Answers)
		answers[e.Question] = e.Option
		s.Answers = answers
		return s, nil

	case PreviousQuestion:
		if s.Step != StepQuiz || s.ShowResults {
			return s, nil
		}
		if s.Current > 0 {
			s.Current--
		}
		return s, nil

	case NextQuestion:
		if s.Step != StepQuiz || s.ShowResults {
			return s, nil
		}
		if s.Current < len(s.Questions)-1 {
			s.Current++
		}
		return s, nil

	case SubmitQuiz:
		if s.Step != StepQuiz || s.ShowResults {
			return s, nil
		}
		// No validation: unanswered questions score as incorrect.
		s.ShowResults = true
		if len(s.QuizIDs) == 0 {
			return s, nil
		}
		return s, []Effect{EffectRecordAttempt{
			Epoch:          s.Epoch,
			QuizID:         s.QuizIDs[0],
			Score:          scoring.Score(s.Questions, s.Answers),
			TotalQuestions: len(s.Questions),
		}}

	case AttemptRecorded:
		return s, nil

	case AttemptFailed:
		if e.Epoch != s.Epoch {
			return s, nil
		}
		s.ErrMessage = e.Message
		return s, nil

	case BackToSummary:
		if s.Step != StepQuiz || s.ShowResults {
			return s, nil
		}
		s.Step = StepSummary
		return s, nil

	case RetakeQuiz:
		if s.Step != StepQuiz || !s.ShowResults {
			return s, nil
		}
		s.Answers = map[int]int{}
		s.Current = 0
		s.ShowResults = false
		return s, nil

	case Reset:
		return s.reset(), []Effect{EffectClearSelection{}}

	case ArticleLoaded:
		// A freshly loaded article always starts at the unanswered summary
		// view, even when it has stored quizzes.
		next := s.reset()
		next.Step = StepSummary
		next.ArticleID = e.ArticleID
		next.Title = e.Title
		next.Content = e.Content
		next.Summary = e.Summary
		next.Questions = e.Questions
		next.QuizIDs = e.QuizIDs
		return next, nil
	}

	return s, nil
}

package session

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-lambda/internal/article"
	"github.com/saulo-duarte/quizapp-lambda/internal/auth"
	"github.com/saulo-duarte/quizapp-lambda/internal/quiz"
	"github.com/saulo-duarte/quizapp-lambda/internal/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&user.User{},
		&article.Article{},
		&quiz.Quiz{},
		&quiz.QuizAttempt{},
		&quiz.UserScore{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func newServiceStore(t *testing.T, db *gorm.DB, subjectID string) *ServiceStore {
	t.Helper()

	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo)
	articleRepo := article.NewRepository(db)
	articleService := article.NewService(articleRepo, userService)
	quizService := quiz.NewService(quiz.NewRepository(db), userRepo, articleRepo)

	claims := &auth.Claims{
		SubjectID: subjectID,
		Email:     subjectID + "@example.com",
		Name:      "Test User",
	}
	return NewServiceStore(articleService, quizService, claims)
}

// Drives the whole lifecycle through the real services on an in-memory
// database: summarize, save, generate, answer, submit, reload, retake.
func TestSessionAgainstServices(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	store := newServiceStore(t, db, "lifecycle-subject")

	gen := &fakeGenerator{
		summary:   "A grounded summary.",
		questions: sampleQuestions(),
	}
	history := NewHistoryView(store)
	c := NewController(gen, store, history)

	c.Dispatch(ctx, SetTitle{Value: "Go Concurrency"})
	c.Dispatch(ctx, SetContent{Value: "Goroutines and channels."})
	c.Dispatch(ctx, GenerateSummary{})

	s := c.State()
	if s.Step != StepSummary || s.ArticleID == uuid.Nil {
		t.Fatalf("Expected a persisted article, got %+v", s)
	}

	c.Dispatch(ctx, GenerateQuiz{})
	s = c.State()
	if s.Step != StepQuiz || len(s.QuizIDs) != 3 {
		t.Fatalf("Expected 3 persisted quiz rows, got %+v", s)
	}

	// Two of three correct.
	c.Dispatch(ctx, AnswerSelected{Question: 0, Option: 1})
	c.Dispatch(ctx, AnswerSelected{Question: 1, Option: 0})
	c.Dispatch(ctx, AnswerSelected{Question: 2, Option: 0})
	c.Dispatch(ctx, SubmitQuiz{})

	s = c.State()
	if !s.ShowResults || s.ErrMessage != "" {
		t.Fatalf("Expected clean results, got %+v", s)
	}

	var attempts int64
	db.Model(&quiz.QuizAttempt{}).Count(&attempts)
	if attempts != 1 {
		t.Fatalf("Expected 1 attempt row, got %d", attempts)
	}
	var best quiz.UserScore
	if err := db.First(&best, "quiz_id = ?", s.QuizIDs[0]).Error; err != nil {
		t.Fatalf("Expected a cached best score: %v", err)
	}
	if best.TotalScore != 2 {
		t.Errorf("Expected best score 2, got %d", best.TotalScore)
	}

	// Reload the article from history and retake with a worse result.
	if err := history.Load(ctx); err != nil {
		t.Fatalf("History load failed: %v", err)
	}
	if len(history.Items()) != 1 {
		t.Fatalf("Expected 1 article in history, got %d", len(history.Items()))
	}

	ev, err := history.Select(ctx, s.ArticleID)
	if err != nil {
		t.Fatalf("History select failed: %v", err)
	}
	c.Dispatch(ctx, ev)

	s = c.State()
	if s.Step != StepSummary || len(s.Questions) != 3 || s.ShowResults {
		t.Fatalf("Expected a rehydrated summary view, got %+v", s)
	}

	gen.questionErr = fmt.Errorf("must not regenerate")
	c.Dispatch(ctx, GenerateQuiz{})
	c.Dispatch(ctx, SubmitQuiz{})

	db.Model(&quiz.QuizAttempt{}).Count(&attempts)
	if attempts != 2 {
		t.Fatalf("Expected 2 attempt rows, got %d", attempts)
	}
	if err := db.First(&best, "quiz_id = ?", s.QuizIDs[0]).Error; err != nil {
		t.Fatalf("Best score lookup failed: %v", err)
	}
	if best.TotalScore != 2 {
		t.Errorf("Expected the zero-score retake to leave the best at 2, got %d", best.TotalScore)
	}
}

func TestSessionDeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	store := newServiceStore(t, db, "cascade-subject")

	gen := &fakeGenerator{summary: "s", questions: sampleQuestions()}
	history := NewHistoryView(store)
	c := NewController(gen, store, history)

	c.Dispatch(ctx, SetTitle{Value: "T"})
	c.Dispatch(ctx, SetContent{Value: "C"})
	c.Dispatch(ctx, GenerateSummary{})
	c.Dispatch(ctx, GenerateQuiz{})
	c.Dispatch(ctx, SubmitQuiz{})

	articleID := c.State().ArticleID
	if err := history.Load(ctx); err != nil {
		t.Fatalf("History load failed: %v", err)
	}
	if err := history.Delete(ctx, articleID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var quizzes, attempts, scores int64
	db.Model(&quiz.Quiz{}).Count(&quizzes)
	db.Model(&quiz.QuizAttempt{}).Count(&attempts)
	db.Model(&quiz.UserScore{}).Count(&scores)
	if quizzes != 0 || attempts != 0 || scores != 0 {
		t.Errorf("Expected cascade to clear quiz data, got %d/%d/%d", quizzes, attempts, scores)
	}
}

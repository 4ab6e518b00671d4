package article_test

import (
	"context"
	"errors"
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
	if err := db.AutoMigrate(&user.User{}, &article.Article{}, &quiz.Quiz{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func testService(t *testing.T) (article.ArticleService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	userService := user.NewService(user.NewRepository(db))
	return article.NewService(article.NewRepository(db), userService), db
}

func claimsFor(subjectID string) *auth.Claims {
	return &auth.Claims{
		SubjectID: subjectID,
		Email:     subjectID + "@example.com",
		Name:      "Test User",
	}
}

func validDTO() article.CreateArticleDTO {
	return article.CreateArticleDTO{
		Title:   "Go Concurrency",
		Content: "Goroutines and channels make concurrency tractable.",
		Summary: "An overview of Go's concurrency model.",
	}
}

func TestCreateArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("RejectsMissingFieldsBeforeProvisioning", func(t *testing.T) {
		svc, db := testService(t)

		dto := validDTO()
		dto.Summary = ""
		if _, err := svc.Create(ctx, claimsFor("new-subject"), dto); !errors.Is(err, article.ErrMissingFields) {
			t.Fatalf("Expected ErrMissingFields, got %v", err)
		}

		var users int64
		db.Model(&user.User{}).Count(&users)
		if users != 0 {
			t.Error("Expected no user provisioned for a rejected create")
		}
	})

	t.Run("ProvisionsUserOnFirstWrite", func(t *testing.T) {
		svc, db := testService(t)

		a, err := svc.Create(ctx, claimsFor("first-writer"), validDTO())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if a.ID == uuid.Nil {
			t.Error("Expected an id assigned")
		}

		var u user.User
		if err := db.First(&u, "subject_id = ?", "first-writer").Error; err != nil {
			t.Fatalf("Expected the user provisioned: %v", err)
		}
		if a.UserID != u.ID {
			t.Error("Expected the article owned by the provisioned user")
		}
	})

	t.Run("ReusesExistingUser", func(t *testing.T) {
		svc, db := testService(t)
		claims := claimsFor("repeat-writer")

		if _, err := svc.Create(ctx, claims, validDTO()); err != nil {
			t.Fatalf("First create failed: %v", err)
		}
		if _, err := svc.Create(ctx, claims, validDTO()); err != nil {
			t.Fatalf("Second create failed: %v", err)
		}

		var users int64
		db.Model(&user.User{}).Count(&users)
		if users != 1 {
			t.Errorf("Expected one user row, got %d", users)
		}
	})
}

func TestListArticles(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownSubject", func(t *testing.T) {
		svc, _ := testService(t)
		if _, err := svc.List(ctx, "nobody"); !errors.Is(err, article.ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("ScopedToOwner", func(t *testing.T) {
		svc, _ := testService(t)
		mine := claimsFor("mine")
		theirs := claimsFor("theirs")

		if _, err := svc.Create(ctx, mine, validDTO()); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := svc.Create(ctx, theirs, validDTO()); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		articles, err := svc.List(ctx, "mine")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(articles) != 1 {
			t.Errorf("Expected 1 article, got %d", len(articles))
		}
	})
}

func TestGetArticle(t *testing.T) {
	ctx := context.Background()
	svc, _ := testService(t)
	owner := claimsFor("owner")
	stranger := claimsFor("stranger")

	a, err := svc.Create(ctx, owner, validDTO())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, stranger, validDTO()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("OwnerSees", func(t *testing.T) {
		got, err := svc.Get(ctx, "owner", a.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.ID != a.ID {
			t.Error("Wrong article returned")
		}
	})

	t.Run("StrangerGetsNotFound", func(t *testing.T) {
		if _, err := svc.Get(ctx, "stranger", a.ID); !errors.Is(err, article.ErrArticleNotFound) {
			t.Errorf("Expected ErrArticleNotFound, got %v", err)
		}
	})
}

func TestUpdateArticle(t *testing.T) {
	ctx := context.Background()
	svc, _ := testService(t)
	owner := claimsFor("updater")

	a, err := svc.Create(ctx, owner, validDTO())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newTitle := "Revised Title"
	empty := ""
	updated, err := svc.Update(ctx, "updater", a.ID, article.UpdateArticleDTO{
		Title:   &newTitle,
		Content: &empty,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != newTitle {
		t.Errorf("Expected title updated, got %q", updated.Title)
	}
	if updated.Content != a.Content {
		t.Error("Expected an empty field to leave content untouched")
	}
	if updated.Summary != a.Summary {
		t.Error("Expected an omitted field to leave summary untouched")
	}
}

func TestDeleteArticle(t *testing.T) {
	ctx := context.Background()
	svc, db := testService(t)
	owner := claimsFor("deleter")

	a, err := svc.Create(ctx, owner, validDTO())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("StrangerGetsNotFound", func(t *testing.T) {
		if _, err := svc.Create(ctx, claimsFor("bystander"), validDTO()); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := svc.Delete(ctx, "bystander", a.ID); !errors.Is(err, article.ErrArticleNotFound) {
			t.Errorf("Expected ErrArticleNotFound, got %v", err)
		}
	})

	t.Run("OwnerDeletes", func(t *testing.T) {
		if err := svc.Delete(ctx, "deleter", a.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		var count int64
		db.Model(&article.Article{}).Where("id = ?", a.ID).Count(&count)
		if count != 0 {
			t.Error("Expected the article row removed")
		}
	})

	t.Run("SecondDeleteIsNotFound", func(t *testing.T) {
		if err := svc.Delete(ctx, "deleter", a.ID); !errors.Is(err, article.ErrArticleNotFound) {
			t.Errorf("Expected ErrArticleNotFound, got %v", err)
		}
	})
}

package container

import (
	"context"
	"log"
	"os"

	"github.com/saulo-duarte/quizapp-lambda/internal/aigen"
	"github.com/saulo-duarte/quizapp-lambda/internal/article"
	"github.com/saulo-duarte/quizapp-lambda/internal/auth"
	"github.com/saulo-duarte/quizapp-lambda/internal/config"
	"github.com/saulo-duarte/quizapp-lambda/internal/quiz"
	"github.com/saulo-duarte/quizapp-lambda/internal/user"
)

type Container struct {
	UserContainer    *user.UserContainer
	ArticleContainer *article.ArticleContainer
	QuizContainer    *quiz.QuizContainer
	AIGenContainer   *aigen.AIGenContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()
	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&article.Article{},
		&quiz.Quiz{},
		&quiz.QuizAttempt{},
		&quiz.UserScore{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	articleContainer := article.NewArticleContainer(config.DB, userContainer.Service)
	quizContainer := quiz.NewQuizContainer(config.DB, userContainer.Repo, articleContainer.Repo)
	aiGenContainer := aigen.NewAIGenContainer(ctx)

	return &Container{
		UserContainer:    userContainer,
		ArticleContainer: articleContainer,
		QuizContainer:    quizContainer,
		AIGenContainer:   aiGenContainer,
	}
}

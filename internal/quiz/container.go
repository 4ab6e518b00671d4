package quiz

import (
	"github.com/saulo-duarte/quizapp-lambda/internal/user"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Repo    QuizRepository
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, userRepo user.UserRepository, articles ArticleGuard) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, userRepo, articles)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

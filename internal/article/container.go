package article

import (
	"github.com/saulo-duarte/quizapp-lambda/internal/user"
	"gorm.io/gorm"
)

type ArticleContainer struct {
	Repo    ArticleRepository
	Service ArticleService
	Handler *Handler
}

func NewArticleContainer(db *gorm.DB, userService user.UserService) *ArticleContainer {
	repo := NewRepository(db)
	service := NewService(repo, userService)
	handler := NewHandler(service)

	return &ArticleContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

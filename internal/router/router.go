package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/quizapp-lambda/internal/aigen"
	"github.com/saulo-duarte/quizapp-lambda/internal/article"
	"github.com/saulo-duarte/quizapp-lambda/internal/auth"
	"github.com/saulo-duarte/quizapp-lambda/internal/middlewares"
	"github.com/saulo-duarte/quizapp-lambda/internal/quiz"
	"github.com/saulo-duarte/quizapp-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler    *user.Handler
	ArticleHandler *article.Handler
	QuizHandler    *quiz.Handler
	AIGenHandler   *aigen.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/articles", article.Routes(cfg.ArticleHandler))
		r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
		r.Mount("/generate", aigen.Routes(cfg.AIGenHandler))
	})
	return r
}

package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/gabrielhrms/habitflow-lambda/internal/analytics"
	"github.com/gabrielhrms/habitflow-lambda/internal/auth"
	"github.com/gabrielhrms/habitflow-lambda/internal/habit"
	"github.com/gabrielhrms/habitflow-lambda/internal/middlewares"
	"github.com/gabrielhrms/habitflow-lambda/internal/overview"
	"github.com/gabrielhrms/habitflow-lambda/internal/progress"
	"github.com/gabrielhrms/habitflow-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	HabitHandler     *habit.Handler
	ProgressHandler  *progress.Handler
	OverviewHandler  *overview.Handler
	AnalyticsHandler *analytics.Handler
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

		r.Mount("/habits", habit.Routes(cfg.HabitHandler))
		r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
		r.Mount("/overview", overview.Routes(cfg.OverviewHandler))
		r.Mount("/analytics", analytics.Routes(cfg.AnalyticsHandler))
		r.Mount("/users", user.Routes(cfg.UserHandler))
	})

	return r
}

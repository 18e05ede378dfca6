package container

import (
	"context"
	"log"
	"os"

	"github.com/gabrielhrms/habitflow-lambda/internal/analytics"
	"github.com/gabrielhrms/habitflow-lambda/internal/auth"
	"github.com/gabrielhrms/habitflow-lambda/internal/config"
	"github.com/gabrielhrms/habitflow-lambda/internal/habit"
	"github.com/gabrielhrms/habitflow-lambda/internal/overview"
	"github.com/gabrielhrms/habitflow-lambda/internal/progress"
	"github.com/gabrielhrms/habitflow-lambda/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	HabitContainer     *habit.Container
	ProgressContainer  *progress.Container
	OverviewContainer  *overview.Container
	AnalyticsContainer *analytics.Container
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(&user.User{}, &habit.Habit{}, &progress.HabitProgress{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	habitContainer := habit.NewContainer(config.DB)
	progressContainer := progress.NewContainer(config.DB)
	overviewContainer := overview.NewContainer(habitContainer.Repo, progressContainer.Repo)
	analyticsContainer := analytics.NewContainer(habitContainer.Repo, progressContainer.Repo)

	return &Container{
		UserContainer:      userContainer,
		HabitContainer:     habitContainer,
		ProgressContainer:  progressContainer,
		OverviewContainer:  overviewContainer,
		AnalyticsContainer: analyticsContainer,
	}
}

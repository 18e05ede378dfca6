package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gabrielhrms/habitflow-lambda/internal/config"
	"github.com/gabrielhrms/habitflow-lambda/internal/habit"
	"github.com/gabrielhrms/habitflow-lambda/internal/progress"
	util "github.com/gabrielhrms/habitflow-lambda/internal/utils"
)

var ErrValidation = habit.ErrValidation

type HabitLister interface {
	ListByUser(userID uuid.UUID, frequency *habit.Frequency) ([]habit.Habit, error)
}

type ProgressRanger interface {
	ListRange(userID uuid.UUID, from, to string) ([]progress.HabitProgress, error)
}

type Service interface {
	DailySummary(ctx context.Context, userID uuid.UUID, date string) (*DailySummary, error)
	Weekly(ctx context.Context, userID uuid.UUID, end string) (*WeeklyReport, error)
}

type service struct {
	habits HabitLister
	rows   ProgressRanger
}

func NewService(habits HabitLister, rows ProgressRanger) Service {
	return &service{habits: habits, rows: rows}
}

// DailySummary counts how many of the user's habits were tracked and
// completed on one day. Duplicate records for the same habit collapse to
// the newest one, matching the today-progress fold.
func (s *service) DailySummary(ctx context.Context, userID uuid.UUID, date string) (*DailySummary, error) {
	log := config.WithContext(ctx)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if date == "" {
		date = util.Today()
	} else if !util.ValidDate(date) {
		return nil, fmt.Errorf("%w: date must be %s", ErrValidation, util.DateLayout)
	}

	habits, err := s.habits.ListByUser(userID, nil)
	if err != nil {
		log.WithError(err).Error("Failed to list habits for summary")
		return nil, err
	}

	rows, err := s.rows.ListRange(userID, date, date)
	if err != nil {
		log.WithError(err).Error("Failed to list progress for summary")
		return nil, err
	}

	latest := map[uuid.UUID]bool{}
	for _, p := range rows {
		latest[p.HabitID] = p.Completed
	}

	completed := 0
	for _, done := range latest {
		if done {
			completed++
		}
	}

	summary := &DailySummary{
		Date:        date,
		TotalHabits: len(habits),
		Tracked:     len(latest),
		Completed:   completed,
	}
	if summary.TotalHabits > 0 {
		summary.CompletionRate = float64(completed) / float64(summary.TotalHabits)
	}
	return summary, nil
}

// Weekly reports tracked/completed counts per day for the seven days
// ending at end (defaulting to today).
func (s *service) Weekly(ctx context.Context, userID uuid.UUID, end string) (*WeeklyReport, error) {
	log := config.WithContext(ctx)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if end == "" {
		end = util.Today()
	} else if !util.ValidDate(end) {
		return nil, fmt.Errorf("%w: end must be %s", ErrValidation, util.DateLayout)
	}

	days, err := util.LastNDays(end, 7)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	rows, err := s.rows.ListRange(userID, days[0], end)
	if err != nil {
		log.WithError(err).Error("Failed to list progress for weekly report")
		return nil, err
	}

	// Collapse duplicates per (day, habit), newest record winning.
	perDay := map[string]map[uuid.UUID]bool{}
	for _, p := range rows {
		if perDay[p.Date] == nil {
			perDay[p.Date] = map[uuid.UUID]bool{}
		}
		perDay[p.Date][p.HabitID] = p.Completed
	}

	report := &WeeklyReport{From: days[0], To: end}
	for _, day := range days {
		point := WeeklyPoint{Date: day, Tracked: len(perDay[day])}
		for _, done := range perDay[day] {
			if done {
				point.Completed++
			}
		}
		report.Days = append(report.Days, point)
	}
	return report, nil
}

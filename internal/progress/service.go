package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gabrielhrms/habitflow-lambda/internal/config"
	"github.com/gabrielhrms/habitflow-lambda/internal/habit"
	util "github.com/gabrielhrms/habitflow-lambda/internal/utils"
)

var ErrValidation = habit.ErrValidation

type Service interface {
	Record(ctx context.Context, userID uuid.UUID, dto RecordProgressDTO) (*HabitProgress, error)
	TodayMap(ctx context.Context, userID uuid.UUID, date string) (map[string]float64, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Record persists one progress entry. The habit reference is trusted:
// there is no check that it names an existing, unarchived habit owned by
// the user. The completed flag is writer-asserted, never derived here.
func (s *service) Record(ctx context.Context, userID uuid.UUID, dto RecordProgressDTO) (*HabitProgress, error) {
	log := config.WithContext(ctx)

	switch {
	case userID == uuid.Nil:
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	case dto.HabitID == uuid.Nil:
		return nil, fmt.Errorf("%w: habitId is required", ErrValidation)
	case dto.Date == "":
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	case !util.ValidDate(dto.Date):
		return nil, fmt.Errorf("%w: date must be %s", ErrValidation, util.DateLayout)
	case dto.Value < 0:
		return nil, fmt.Errorf("%w: value must not be negative", ErrValidation)
	}

	p := HabitProgress{
		HabitID:   dto.HabitID,
		UserID:    userID,
		Date:      dto.Date,
		Value:     dto.Value,
		Completed: dto.Completed,
		Notes:     dto.Notes,
	}

	if err := s.repo.Create(&p); err != nil {
		log.WithError(err).Error("Failed to record progress")
		return nil, err
	}

	log.WithField("habit_id", p.HabitID).Info("Progress recorded")
	return &p, nil
}

// TodayMap returns the per-habit progress values for one day, defaulting
// to the current UTC day.
func (s *service) TodayMap(ctx context.Context, userID uuid.UUID, date string) (map[string]float64, error) {
	log := config.WithContext(ctx)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if date == "" {
		date = util.Today()
	} else if !util.ValidDate(date) {
		return nil, fmt.Errorf("%w: date must be %s", ErrValidation, util.DateLayout)
	}

	m, err := s.repo.TodayMap(userID, date)
	if err != nil {
		log.WithError(err).Error("Failed to fetch today progress")
		return nil, err
	}
	return m, nil
}

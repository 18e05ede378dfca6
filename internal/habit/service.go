package habit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gabrielhrms/habitflow-lambda/internal/config"
	util "github.com/gabrielhrms/habitflow-lambda/internal/utils"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrHabitNotFound = errors.New("habit not found")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateHabitDTO) (*Habit, error)
	List(ctx context.Context, userID uuid.UUID, frequency *Frequency) ([]Habit, error)
	Archive(ctx context.Context, id, userID uuid.UUID) error
	Unarchive(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateCreate(userID uuid.UUID, dto CreateHabitDTO) error {
	switch {
	case userID == uuid.Nil:
		return fmt.Errorf("%w: userId is required", ErrValidation)
	case strings.TrimSpace(dto.Title) == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case !dto.Metric.IsValid():
		return fmt.Errorf("%w: metric must be one of count, duration, distance", ErrValidation)
	case !dto.Unit.IsValid():
		return fmt.Errorf("%w: unit must be one of times, minutes, hours, km, miles", ErrValidation)
	case dto.Target <= 0:
		return fmt.Errorf("%w: target must be positive", ErrValidation)
	case !dto.Frequency.IsValid():
		return fmt.Errorf("%w: frequency must be one of daily, weekly, monthly", ErrValidation)
	}

	for _, day := range dto.Schedule.Days {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: schedule days must be between 0 and 6", ErrValidation)
		}
	}
	if dto.Schedule.Time != "" && !util.ValidClockTime(dto.Schedule.Time) {
		return fmt.Errorf("%w: schedule time must be HH:MM", ErrValidation)
	}
	return nil
}

// Create validates the input and persists a new habit. Validation
// failures never reach the store.
func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateHabitDTO) (*Habit, error) {
	log := config.WithContext(ctx)

	if err := validateCreate(userID, dto); err != nil {
		log.WithError(err).Warn("Rejected invalid habit")
		return nil, err
	}

	h := Habit{
		UserID:      userID,
		Title:       dto.Title,
		Description: dto.Description,
		Icon:        dto.Icon,
		Color:       dto.Color,
		Metric:      dto.Metric,
		Unit:        dto.Unit,
		Target:      dto.Target,
		Frequency:   dto.Frequency,
		Schedule:    dto.Schedule,
		Archived:    false,
	}

	if err := s.repo.Create(&h); err != nil {
		log.WithError(err).Error("Failed to create habit")
		return nil, err
	}

	log.WithField("habit_id", h.ID).Info("Habit created")
	return &h, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, frequency *Frequency) ([]Habit, error) {
	log := config.WithContext(ctx)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if frequency != nil && !frequency.IsValid() {
		return nil, fmt.Errorf("%w: invalid frequency %q", ErrValidation, *frequency)
	}

	habits, err := s.repo.ListByUser(userID, frequency)
	if err != nil {
		log.WithError(err).Error("Failed to list habits")
		return nil, err
	}
	return habits, nil
}

func (s *service) Archive(ctx context.Context, id, userID uuid.UUID) error {
	return s.setArchived(ctx, id, userID, true)
}

func (s *service) Unarchive(ctx context.Context, id, userID uuid.UUID) error {
	return s.setArchived(ctx, id, userID, false)
}

func (s *service) setArchived(ctx context.Context, id, userID uuid.UUID, archived bool) error {
	log := config.WithContext(ctx)

	h, err := s.repo.FindByIDAndUser(id, userID)
	if err != nil {
		log.WithError(err).Error("Failed to find habit before archiving")
		return err
	}
	if h == nil {
		return ErrHabitNotFound
	}

	if err := s.repo.SetArchived(id, userID, archived); err != nil {
		log.WithError(err).Error("Failed to update habit archived flag")
		return err
	}

	log.WithField("habit_id", id).Infof("Habit archived=%t", archived)
	return nil
}

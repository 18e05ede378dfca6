package habit

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrStoreUnavailable wraps any persistence failure (network, permission,
// quota). The core never retries it; callers decide their own policy.
var ErrStoreUnavailable = errors.New("store unavailable")

type Repository interface {
	Create(h *Habit) error
	ListByUser(userID uuid.UUID, frequency *Frequency) ([]Habit, error)
	FindByIDAndUser(id, userID uuid.UUID) (*Habit, error)
	SetArchived(id, userID uuid.UUID, archived bool) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(h *Habit) error {
	if err := r.db.Create(h).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// ListByUser returns the user's unarchived habits, newest first,
// optionally restricted to one frequency partition. Archived habits are
// never returned, for any filter.
func (r *repository) ListByUser(userID uuid.UUID, frequency *Frequency) ([]Habit, error) {
	q := r.db.
		Where("user_id = ? AND archived = ?", userID, false).
		Order("created_at DESC")
	if frequency != nil {
		q = q.Where("frequency = ?", *frequency)
	}

	var habits []Habit
	if err := q.Find(&habits).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return habits, nil
}

func (r *repository) FindByIDAndUser(id, userID uuid.UUID) (*Habit, error) {
	var h Habit
	if err := r.db.First(&h, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &h, nil
}

func (r *repository) SetArchived(id, userID uuid.UUID, archived bool) error {
	result := r.db.Model(&Habit{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("archived", archived)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrHabitNotFound
	}
	return nil
}

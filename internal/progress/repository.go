package progress

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gabrielhrms/habitflow-lambda/internal/habit"
)

var ErrStoreUnavailable = habit.ErrStoreUnavailable

type Repository interface {
	Create(p *HabitProgress) error
	TodayMap(userID uuid.UUID, date string) (map[string]float64, error)
	ListRange(userID uuid.UUID, from, to string) ([]HabitProgress, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(p *HabitProgress) error {
	if err := r.db.Create(p).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// TodayMap folds the user's progress records for one calendar day into a
// habit-id keyed map. Duplicate records for the same habit are allowed;
// rows are read oldest first so the newest write wins deterministically.
// A day with no records yields an empty map, not an error.
func (r *repository) TodayMap(userID uuid.UUID, date string) (map[string]float64, error) {
	var rows []HabitProgress
	if err := r.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	m := make(map[string]float64, len(rows))
	for _, p := range rows {
		m[p.HabitID.String()] = p.Value
	}
	return m, nil
}

func (r *repository) ListRange(userID uuid.UUID, from, to string) ([]HabitProgress, error) {
	var rows []HabitProgress
	if err := r.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return rows, nil
}

package progress

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HabitProgress is one completion record for one habit on one calendar
// day. The habit reference is non-owning: deleting or archiving a habit
// leaves its progress records in place.
type HabitProgress struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HabitID   uuid.UUID `gorm:"column:habit_id;type:uuid;not null;index" json:"habit_id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Date      string    `gorm:"not null;index;size:10" json:"date"`
	Value     float64   `gorm:"not null" json:"value"`
	Completed bool      `gorm:"not null" json:"completed"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (HabitProgress) TableName() string {
	return "habit_progress"
}

func (p *HabitProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

package habit

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule describes when a habit is expected to happen. Days are
// day-of-week indexes, 0 = Sunday.
type Schedule struct {
	Days     []int  `json:"days"`
	Time     string `json:"time,omitempty"`
	Reminder bool   `json:"reminder"`
}

func (s Schedule) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *Schedule) Scan(value interface{}) error {
	if value == nil {
		*s = Schedule{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan type %T into Schedule", value)
	}
}

type Habit struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Metric      Metric    `gorm:"not null" json:"metric"`
	Unit        Unit      `gorm:"not null" json:"unit"`
	Target      float64   `gorm:"not null" json:"target"`
	Frequency   Frequency `gorm:"not null;index" json:"frequency"`
	Schedule    Schedule  `gorm:"type:jsonb" json:"schedule"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	Archived    bool      `gorm:"not null;default:false" json:"archived"`
}

func (Habit) TableName() string {
	return "habits"
}

func (h *Habit) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

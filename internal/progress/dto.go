package progress

import "github.com/google/uuid"

type RecordProgressDTO struct {
	HabitID   uuid.UUID `json:"habit_id"`
	Date      string    `json:"date"`
	Value     float64   `json:"value"`
	Completed bool      `json:"completed"`
	Notes     string    `json:"notes"`
}

package overview

import (
	"sync"

	"github.com/google/uuid"
)

// Manager hands out one aggregate per authenticated user, created
// lazily on first use.
type Manager struct {
	habits   HabitLister
	progress ProgressReader

	mu         sync.Mutex
	aggregates map[uuid.UUID]*Aggregate
}

func NewManager(habits HabitLister, progress ProgressReader) *Manager {
	return &Manager{
		habits:     habits,
		progress:   progress,
		aggregates: map[uuid.UUID]*Aggregate{},
	}
}

func (m *Manager) ForUser(userID uuid.UUID) *Aggregate {
	m.mu.Lock()
	defer m.mu.Unlock()

	agg, ok := m.aggregates[userID]
	if !ok {
		agg = NewAggregate(userID, m.habits, m.progress)
		m.aggregates[userID] = agg
	}
	return agg
}

// Reset drops a user's aggregate, e.g. on logout. The next request
// starts from a fresh idle state.
func (m *Manager) Reset(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.aggregates, userID)
}

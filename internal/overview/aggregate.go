package overview

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gabrielhrms/habitflow-lambda/internal/auth"
	"github.com/gabrielhrms/habitflow-lambda/internal/habit"
	util "github.com/gabrielhrms/habitflow-lambda/internal/utils"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Snapshot is the composed per-user view: frequency-partitioned habit
// lists plus today's per-habit progress values. Contents are never
// mutated after publication, so a snapshot can be shared freely.
type Snapshot struct {
	Daily    []habit.Habit      `json:"daily"`
	Weekly   []habit.Habit      `json:"weekly"`
	Monthly  []habit.Habit      `json:"monthly"`
	Progress map[string]float64 `json:"progress"`
	Status   Status             `json:"status"`
	Error    string             `json:"error,omitempty"`
}

// HabitLister is the slice of the habit repository the aggregate needs.
type HabitLister interface {
	ListByUser(userID uuid.UUID, frequency *habit.Frequency) ([]habit.Habit, error)
}

// ProgressReader is the slice of the progress repository the aggregate
// needs.
type ProgressReader interface {
	TodayMap(userID uuid.UUID, date string) (map[string]float64, error)
}

type refreshResult struct {
	done chan struct{}
	err  error
}

// Aggregate holds one user's composed habit view and refreshes it on
// demand. It is the only mutable shared state of the core: the snapshot
// is swapped atomically per refresh and readers never observe a mix of
// old and new partition lists. A refresh that fails keeps the last-ready
// data so presentation layers are never blanked.
type Aggregate struct {
	userID   uuid.UUID
	habits   HabitLister
	progress ProgressReader

	mu       sync.Mutex
	snap     Snapshot
	inflight *refreshResult
	subs     map[int]func(Snapshot)
	nextSub  int
}

func NewAggregate(userID uuid.UUID, habits HabitLister, progress ProgressReader) *Aggregate {
	return &Aggregate{
		userID:   userID,
		habits:   habits,
		progress: progress,
		snap: Snapshot{
			Daily:    []habit.Habit{},
			Weekly:   []habit.Habit{},
			Monthly:  []habit.Habit{},
			Progress: map[string]float64{},
			Status:   StatusIdle,
		},
		subs: map[int]func(Snapshot){},
	}
}

// Snapshot returns the current view. During a refresh this is the
// pre-refresh snapshot with a loading status; the new data only becomes
// visible once fully assembled.
func (a *Aggregate) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snap
}

// Subscribe registers a callback invoked with each published snapshot.
// The returned function unsubscribes.
func (a *Aggregate) Subscribe(fn func(Snapshot)) func() {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subs, id)
	}
}

// Refresh fetches the three frequency partitions and today's progress
// concurrently, then swaps the snapshot in one step. A refresh already
// in flight is never restarted: concurrent callers wait for it and share
// its outcome. Any failing sub-call aborts the whole refresh and leaves
// the previous data in place with an error status.
func (a *Aggregate) Refresh(ctx context.Context) error {
	if a.userID == uuid.Nil {
		// No authenticated user yet; stay idle, issue no store calls.
		return auth.ErrNotAuthenticated
	}

	a.mu.Lock()
	if r := a.inflight; r != nil {
		a.mu.Unlock()
		select {
		case <-r.done:
			return r.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r := &refreshResult{done: make(chan struct{})}
	a.inflight = r
	a.snap.Status = StatusLoading
	a.snap.Error = ""
	a.mu.Unlock()

	next, err := a.fetch(ctx)

	a.mu.Lock()
	if err != nil {
		a.snap.Status = StatusError
		a.snap.Error = err.Error()
	} else {
		next.Status = StatusReady
		a.snap = next
	}
	published := a.snap
	subs := make([]func(Snapshot), 0, len(a.subs))
	for _, fn := range a.subs {
		subs = append(subs, fn)
	}
	r.err = err
	a.inflight = nil
	a.mu.Unlock()

	close(r.done)
	for _, fn := range subs {
		fn(published)
	}
	return err
}

func (a *Aggregate) fetch(ctx context.Context) (Snapshot, error) {
	var (
		daily, weekly, monthly []habit.Habit
		todays                 map[string]float64
	)

	listPartition := func(gctx context.Context, f habit.Frequency, dst *[]habit.Habit) func() error {
		return func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			habits, err := a.habits.ListByUser(a.userID, &f)
			if err != nil {
				return err
			}
			*dst = habits
			return nil
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(listPartition(gctx, habit.FrequencyDaily, &daily))
	g.Go(listPartition(gctx, habit.FrequencyWeekly, &weekly))
	g.Go(listPartition(gctx, habit.FrequencyMonthly, &monthly))
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		m, err := a.progress.TodayMap(a.userID, util.Today())
		if err != nil {
			return err
		}
		todays = m
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	if daily == nil {
		daily = []habit.Habit{}
	}
	if weekly == nil {
		weekly = []habit.Habit{}
	}
	if monthly == nil {
		monthly = []habit.Habit{}
	}
	if todays == nil {
		todays = map[string]float64{}
	}

	return Snapshot{
		Daily:    daily,
		Weekly:   weekly,
		Monthly:  monthly,
		Progress: todays,
	}, nil
}

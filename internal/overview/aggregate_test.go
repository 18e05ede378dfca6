package overview_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gabrielhrms/habitflow-lambda/internal/auth"
	"github.com/gabrielhrms/habitflow-lambda/internal/habit"
	"github.com/gabrielhrms/habitflow-lambda/internal/overview"
)

// fakeStore implements the aggregate's repository slices with adjustable
// data, failures and an optional gate that holds list calls open so a
// test can observe an in-flight refresh.
type fakeStore struct {
	mu       sync.Mutex
	habits   map[habit.Frequency][]habit.Habit
	progress map[string]float64
	listErr  error
	progErr  error

	gate    chan struct{}
	started chan struct{}

	listCalls int32
	progCalls int32
}

func (f *fakeStore) set(freq habit.Frequency, habits []habit.Habit) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.habits == nil {
		f.habits = map[habit.Frequency][]habit.Habit{}
	}
	f.habits[freq] = habits
}

func (f *fakeStore) ListByUser(userID uuid.UUID, frequency *habit.Frequency) ([]habit.Habit, error) {
	atomic.AddInt32(&f.listCalls, 1)

	f.mu.Lock()
	gate, started := f.gate, f.started
	err := f.listErr
	var habits []habit.Habit
	if f.habits != nil && frequency != nil {
		habits = f.habits[*frequency]
	}
	f.mu.Unlock()

	if started != nil {
		select {
		case started <- struct{}{}:
		default:
		}
	}
	if gate != nil {
		<-gate
	}
	return habits, err
}

func (f *fakeStore) TodayMap(userID uuid.UUID, date string) (map[string]float64, error) {
	atomic.AddInt32(&f.progCalls, 1)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.progErr != nil {
		return nil, f.progErr
	}
	return f.progress, nil
}

func oneHabit(userID uuid.UUID, freq habit.Frequency, title string) habit.Habit {
	return habit.Habit{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Metric:    habit.MetricCount,
		Unit:      habit.UnitTimes,
		Target:    1,
		Frequency: freq,
		CreatedAt: time.Now().UTC(),
	}
}

func TestAggregateIdleWithoutUser(t *testing.T) {
	store := &fakeStore{}
	agg := overview.NewAggregate(uuid.Nil, store, store)

	err := agg.Refresh(context.Background())
	if !errors.Is(err, auth.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	if got := agg.Snapshot().Status; got != overview.StatusIdle {
		t.Errorf("expected idle status, got %s", got)
	}
	if calls := atomic.LoadInt32(&store.listCalls) + atomic.LoadInt32(&store.progCalls); calls != 0 {
		t.Errorf("expected no store calls, got %d", calls)
	}
}

func TestAggregateRefresh(t *testing.T) {
	userID := uuid.New()
	daily := oneHabit(userID, habit.FrequencyDaily, "Read")
	weekly := oneHabit(userID, habit.FrequencyWeekly, "Swim")

	store := &fakeStore{progress: map[string]float64{daily.ID.String(): 3}}
	store.set(habit.FrequencyDaily, []habit.Habit{daily})
	store.set(habit.FrequencyWeekly, []habit.Habit{weekly})

	agg := overview.NewAggregate(userID, store, store)

	if got := agg.Snapshot().Status; got != overview.StatusIdle {
		t.Fatalf("expected idle before first refresh, got %s", got)
	}

	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	snap := agg.Snapshot()
	if snap.Status != overview.StatusReady {
		t.Errorf("expected ready status, got %s", snap.Status)
	}
	if len(snap.Daily) != 1 || snap.Daily[0].ID != daily.ID {
		t.Errorf("unexpected daily partition: %+v", snap.Daily)
	}
	if len(snap.Weekly) != 1 || snap.Weekly[0].ID != weekly.ID {
		t.Errorf("unexpected weekly partition: %+v", snap.Weekly)
	}
	if len(snap.Monthly) != 0 {
		t.Errorf("unexpected monthly partition: %+v", snap.Monthly)
	}
	if snap.Progress[daily.ID.String()] != 3 {
		t.Errorf("unexpected progress map: %v", snap.Progress)
	}
}

func TestAggregateFailureKeepsLastReadyData(t *testing.T) {
	userID := uuid.New()
	daily := oneHabit(userID, habit.FrequencyDaily, "Read")

	store := &fakeStore{progress: map[string]float64{daily.ID.String(): 2}}
	store.set(habit.FrequencyDaily, []habit.Habit{daily})

	agg := overview.NewAggregate(userID, store, store)
	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("first refresh failed: %v", err)
	}

	store.mu.Lock()
	store.progErr = habit.ErrStoreUnavailable
	store.mu.Unlock()

	err := agg.Refresh(context.Background())
	if !errors.Is(err, habit.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}

	snap := agg.Snapshot()
	if snap.Status != overview.StatusError {
		t.Errorf("expected error status, got %s", snap.Status)
	}
	if snap.Error == "" {
		t.Error("expected the snapshot to carry the error kind")
	}
	if len(snap.Daily) != 1 || snap.Daily[0].ID != daily.ID {
		t.Errorf("last-ready daily data must survive a failed refresh: %+v", snap.Daily)
	}
	if snap.Progress[daily.ID.String()] != 2 {
		t.Errorf("last-ready progress must survive a failed refresh: %v", snap.Progress)
	}

	// Recovery: the next successful refresh goes back to ready.
	store.mu.Lock()
	store.progErr = nil
	store.mu.Unlock()

	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("recovery refresh failed: %v", err)
	}
	if got := agg.Snapshot().Status; got != overview.StatusReady {
		t.Errorf("expected ready after recovery, got %s", got)
	}
}

func TestAggregateAtomicSwap(t *testing.T) {
	userID := uuid.New()
	oldDaily := oneHabit(userID, habit.FrequencyDaily, "Read")

	store := &fakeStore{progress: map[string]float64{}}
	store.set(habit.FrequencyDaily, []habit.Habit{oldDaily})

	agg := overview.NewAggregate(userID, store, store)
	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("first refresh failed: %v", err)
	}

	newDaily := oneHabit(userID, habit.FrequencyDaily, "Meditate")
	gate := make(chan struct{})
	started := make(chan struct{}, 4)
	store.mu.Lock()
	store.habits[habit.FrequencyDaily] = []habit.Habit{newDaily}
	store.gate = gate
	store.started = started
	store.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := agg.Refresh(context.Background()); err != nil {
			t.Errorf("second refresh failed: %v", err)
		}
	}()

	// Wait until the refresh is demonstrably in flight.
	<-started

	during := agg.Snapshot()
	if len(during.Daily) != 1 || during.Daily[0].ID != oldDaily.ID {
		t.Errorf("mid-refresh snapshot must still show the old data: %+v", during.Daily)
	}
	if during.Status != overview.StatusLoading {
		t.Errorf("expected loading status mid-refresh, got %s", during.Status)
	}

	close(gate)
	wg.Wait()

	after := agg.Snapshot()
	if len(after.Daily) != 1 || after.Daily[0].ID != newDaily.ID {
		t.Errorf("post-refresh snapshot must show the new data: %+v", after.Daily)
	}
	if after.Status != overview.StatusReady {
		t.Errorf("expected ready status after refresh, got %s", after.Status)
	}
}

func TestAggregateSingleFlight(t *testing.T) {
	userID := uuid.New()
	store := &fakeStore{progress: map[string]float64{}}
	store.set(habit.FrequencyDaily, []habit.Habit{oneHabit(userID, habit.FrequencyDaily, "Read")})

	gate := make(chan struct{})
	started := make(chan struct{}, 4)
	store.mu.Lock()
	store.gate = gate
	store.started = started
	store.mu.Unlock()

	agg := overview.NewAggregate(userID, store, store)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := agg.Refresh(context.Background()); err != nil {
			t.Errorf("first refresh failed: %v", err)
		}
	}()

	<-started

	// A concurrent refresh must join the in-flight one, not restart it.
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := agg.Refresh(context.Background()); err != nil {
			t.Errorf("joined refresh failed: %v", err)
		}
	}()

	// Give the second caller a moment to reach the join path.
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	if calls := atomic.LoadInt32(&store.progCalls); calls != 1 {
		t.Errorf("expected exactly one progress fetch for both callers, got %d", calls)
	}
	if calls := atomic.LoadInt32(&store.listCalls); calls != 3 {
		t.Errorf("expected exactly three list fetches for both callers, got %d", calls)
	}
}

func TestAggregateSubscribe(t *testing.T) {
	userID := uuid.New()
	store := &fakeStore{progress: map[string]float64{}}

	agg := overview.NewAggregate(userID, store, store)

	var got []overview.Snapshot
	unsubscribe := agg.Subscribe(func(s overview.Snapshot) {
		got = append(got, s)
	})

	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	if got[0].Status != overview.StatusReady {
		t.Errorf("expected ready snapshot in notification, got %s", got[0].Status)
	}

	unsubscribe()
	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("unsubscribed callback must not fire, got %d notifications", len(got))
	}
}

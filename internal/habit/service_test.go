package habit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/gabrielhrms/habitflow-lambda/internal/habit"
)

type fakeRepo struct {
	created  []*habit.Habit
	found    *habit.Habit
	archived map[uuid.UUID]bool
	err      error
}

func (f *fakeRepo) Create(h *habit.Habit) error {
	if f.err != nil {
		return f.err
	}
	h.ID = uuid.New()
	f.created = append(f.created, h)
	return nil
}

func (f *fakeRepo) ListByUser(userID uuid.UUID, frequency *habit.Frequency) ([]habit.Habit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return nil, nil
}

func (f *fakeRepo) FindByIDAndUser(id, userID uuid.UUID) (*habit.Habit, error) {
	return f.found, f.err
}

func (f *fakeRepo) SetArchived(id, userID uuid.UUID, archived bool) error {
	if f.err != nil {
		return f.err
	}
	if f.archived == nil {
		f.archived = map[uuid.UUID]bool{}
	}
	f.archived[id] = archived
	return nil
}

func validDTO() habit.CreateHabitDTO {
	return habit.CreateHabitDTO{
		Title:     "Run",
		Metric:    habit.MetricDistance,
		Unit:      habit.UnitKm,
		Target:    5,
		Frequency: habit.FrequencyDaily,
		Schedule:  habit.Schedule{Days: []int{1, 2, 3}, Reminder: false},
	}
}

func TestServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	cases := []struct {
		name   string
		userID uuid.UUID
		mutate func(*habit.CreateHabitDTO)
	}{
		{"NilUser", uuid.Nil, func(d *habit.CreateHabitDTO) {}},
		{"EmptyTitle", userID, func(d *habit.CreateHabitDTO) { d.Title = "  " }},
		{"InvalidMetric", userID, func(d *habit.CreateHabitDTO) { d.Metric = "steps" }},
		{"InvalidUnit", userID, func(d *habit.CreateHabitDTO) { d.Unit = "furlongs" }},
		{"ZeroTarget", userID, func(d *habit.CreateHabitDTO) { d.Target = 0 }},
		{"NegativeTarget", userID, func(d *habit.CreateHabitDTO) { d.Target = -3 }},
		{"InvalidFrequency", userID, func(d *habit.CreateHabitDTO) { d.Frequency = "yearly" }},
		{"ScheduleDayOutOfRange", userID, func(d *habit.CreateHabitDTO) { d.Schedule.Days = []int{7} }},
		{"BadScheduleTime", userID, func(d *habit.CreateHabitDTO) { d.Schedule.Time = "25:99" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			service := habit.NewService(repo)

			dto := validDTO()
			tc.mutate(&dto)

			created, err := service.Create(ctx, tc.userID, dto)
			if !errors.Is(err, habit.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if created != nil {
				t.Error("expected no habit on validation failure")
			}
			if len(repo.created) != 0 {
				t.Error("validation failure must not reach the store")
			}
		})
	}
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo := &fakeRepo{}
		service := habit.NewService(repo)

		created, err := service.Create(ctx, userID, validDTO())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.ID == uuid.Nil {
			t.Error("expected a generated id")
		}
		if created.UserID != userID {
			t.Errorf("expected owner %s, got %s", userID, created.UserID)
		}
		if created.Archived {
			t.Error("new habits must not be archived")
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected 1 store write, got %d", len(repo.created))
		}
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo := &fakeRepo{err: habit.ErrStoreUnavailable}
		service := habit.NewService(repo)

		_, err := service.Create(ctx, userID, validDTO())
		if !errors.Is(err, habit.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("NilUser", func(t *testing.T) {
		service := habit.NewService(&fakeRepo{})
		if _, err := service.List(ctx, uuid.Nil, nil); !errors.Is(err, habit.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("InvalidFrequency", func(t *testing.T) {
		service := habit.NewService(&fakeRepo{})
		bad := habit.Frequency("hourly")
		if _, err := service.List(ctx, uuid.New(), &bad); !errors.Is(err, habit.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}

func TestServiceArchive(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("NotFound", func(t *testing.T) {
		service := habit.NewService(&fakeRepo{found: nil})
		if err := service.Archive(ctx, uuid.New(), userID); !errors.Is(err, habit.ErrHabitNotFound) {
			t.Errorf("expected ErrHabitNotFound, got %v", err)
		}
	})

	t.Run("Found", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeRepo{found: &habit.Habit{ID: id, UserID: userID}}
		service := habit.NewService(repo)

		if err := service.Archive(ctx, id, userID); err != nil {
			t.Fatalf("Archive failed: %v", err)
		}
		if !repo.archived[id] {
			t.Error("expected SetArchived(true) to reach the store")
		}

		if err := service.Unarchive(ctx, id, userID); err != nil {
			t.Fatalf("Unarchive failed: %v", err)
		}
		if repo.archived[id] {
			t.Error("expected SetArchived(false) to reach the store")
		}
	})
}

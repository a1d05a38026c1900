package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"tasklist/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func TestTaskRepositoryRoundTrip(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	deadline := time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC)
	task := model.Task{
		UserID:      1,
		Description: "water the plants",
		Project:     "Home",
		Important:   true,
		Private:     true,
		Deadline:    &deadline,
	}
	if err := repo.Create(ctx, &task); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.ID == 0 {
		t.Fatal("Create did not assign an id")
	}

	got, err := repo.FindByID(ctx, task.ID, 1)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Description != task.Description || got.Project != task.Project ||
		got.Important != task.Important || got.Private != task.Private {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, task)
	}
	if got.Completed {
		t.Error("new task should not be completed")
	}
	if got.Deadline == nil || !got.Deadline.Equal(deadline) {
		t.Errorf("deadline = %v, want %v", got.Deadline, deadline)
	}
}

func TestTaskRepositoryListPreservesInsertionOrder(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	for _, desc := range []string{"first", "second", "third"} {
		if err := repo.Create(ctx, &model.Task{UserID: 1, Description: desc}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	tasks, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("ListByUser returned %d tasks, want 3", len(tasks))
	}
	for i, want := range []string{"first", "second", "third"} {
		if tasks[i].Description != want {
			t.Errorf("tasks[%d] = %q, want %q", i, tasks[i].Description, want)
		}
	}
}

func TestTaskRepositoryNeverCrossesOwners(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	task := model.Task{UserID: 1, Description: "user one's task"}
	if err := repo.Create(ctx, &task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("find", func(t *testing.T) {
		if _, err := repo.FindByID(ctx, task.ID, 2); !errors.Is(err, ErrNotFound) {
			t.Errorf("FindByID as other owner = %v, want ErrNotFound", err)
		}
	})

	t.Run("update", func(t *testing.T) {
		err := repo.Update(ctx, task.ID, 2, &model.Task{Description: "hijacked"})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Update as other owner = %v, want ErrNotFound", err)
		}
		got, err := repo.FindByID(ctx, task.ID, 1)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if got.Description != "user one's task" {
			t.Errorf("task was modified by another owner: %q", got.Description)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := repo.Delete(ctx, task.ID, 2); !errors.Is(err, ErrNotFound) {
			t.Errorf("Delete as other owner = %v, want ErrNotFound", err)
		}
		if _, err := repo.FindByID(ctx, task.ID, 1); err != nil {
			t.Errorf("task vanished after foreign delete attempt: %v", err)
		}
	})

	t.Run("list", func(t *testing.T) {
		tasks, err := repo.ListByUser(ctx, 2)
		if err != nil {
			t.Fatalf("ListByUser: %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("ListByUser leaked %d foreign tasks", len(tasks))
		}
	})
}

func TestTaskRepositoryMissingIDMatchesForeignID(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	task := model.Task{UserID: 1, Description: "exists"}
	if err := repo.Create(ctx, &task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	missing := repo.Update(ctx, 999, 1, &model.Task{Description: "x"})
	foreign := repo.Update(ctx, task.ID, 2, &model.Task{Description: "x"})
	if !errors.Is(missing, ErrNotFound) || !errors.Is(foreign, ErrNotFound) {
		t.Fatalf("missing = %v, foreign = %v, want identical ErrNotFound", missing, foreign)
	}
	if missing.Error() != foreign.Error() {
		t.Errorf("not-found shapes differ: %q vs %q", missing, foreign)
	}
}

func TestTaskRepositoryUpdateReplacesAllFields(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t))
	ctx := context.Background()

	deadline := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	task := model.Task{
		UserID:      1,
		Description: "original",
		Project:     "Home",
		Important:   true,
		Private:     true,
		Deadline:    &deadline,
	}
	if err := repo.Create(ctx, &task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Full replace: cleared optionals must come back cleared.
	replacement := model.Task{Description: "rewritten", Completed: true}
	if err := repo.Update(ctx, task.ID, 1, &replacement); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.FindByID(ctx, task.ID, 1)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Description != "rewritten" || !got.Completed {
		t.Errorf("update not applied: %+v", got)
	}
	if got.Important || got.Private || got.Project != "" || got.Deadline != nil {
		t.Errorf("update did not replace cleared fields: %+v", got)
	}
	if got.UserID != 1 {
		t.Errorf("owner changed on update: %d", got.UserID)
	}
}

func TestSessionRepositoryExpiry(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now()

	live := model.Session{Token: "live", UserID: 1, ExpiresAt: now.Add(time.Hour)}
	expired := model.Session{Token: "expired", UserID: 1, ExpiresAt: now.Add(-time.Hour)}
	for _, s := range []*model.Session{&live, &expired} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create(%s): %v", s.Token, err)
		}
	}

	if _, err := repo.FindByToken(ctx, "live", now); err != nil {
		t.Errorf("FindByToken(live) = %v", err)
	}
	if _, err := repo.FindByToken(ctx, "expired", now); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByToken(expired) = %v, want ErrNotFound", err)
	}

	removed, err := repo.DeleteExpired(ctx, now)
	if err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}
	if removed != 1 {
		t.Errorf("DeleteExpired removed %d sessions, want 1", removed)
	}
	if _, err := repo.FindByToken(ctx, "live", now); err != nil {
		t.Errorf("live session swept: %v", err)
	}
}

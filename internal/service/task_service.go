package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tasklist/internal/filter"
	"tasklist/internal/model"
	"tasklist/internal/repository"
)

// ErrEmptyDescription rejects tasks without a description. Validation
// runs before any repository call.
var ErrEmptyDescription = errors.New("description must not be empty")

// TaskInput carries the client-supplied fields of a task.
type TaskInput struct {
	Description string
	Project     string
	Important   bool
	Private     bool
	Deadline    *time.Time
	Completed   bool
}

// TaskService wraps task business logic: validation, deadline
// normalization and filtering on top of the owner-scoped repository.
type TaskService struct {
	tasks *repository.TaskRepository
}

func NewTaskService(tasks *repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns the owner's tasks visible under the named filter and the
// filter's display label.
func (s *TaskService) List(ctx context.Context, userID uint, filterName string, now time.Time) ([]model.Task, string, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	visible, label := filter.Apply(filterName, tasks, now)
	return visible, label, nil
}

func (s *TaskService) Get(ctx context.Context, taskID, userID uint) (*model.Task, error) {
	return s.tasks.FindByID(ctx, taskID, userID)
}

// Create stores a new task for the owner and returns the assigned id.
func (s *TaskService) Create(ctx context.Context, userID uint, input TaskInput) (uint, error) {
	if err := validate(input); err != nil {
		return 0, err
	}

	task := model.Task{
		UserID:      userID,
		Description: input.Description,
		Project:     input.Project,
		Important:   input.Important,
		Private:     input.Private,
		Deadline:    normalizeDeadline(input.Deadline),
		Completed:   input.Completed,
	}
	if err := s.tasks.Create(ctx, &task); err != nil {
		return 0, err
	}
	return task.ID, nil
}

// Update overwrites every mutable field of the task, full-replace
// semantics. The owner id never changes.
func (s *TaskService) Update(ctx context.Context, taskID, userID uint, input TaskInput) error {
	if err := validate(input); err != nil {
		return err
	}

	task := model.Task{
		Description: input.Description,
		Project:     input.Project,
		Important:   input.Important,
		Private:     input.Private,
		Deadline:    normalizeDeadline(input.Deadline),
		Completed:   input.Completed,
	}
	return s.tasks.Update(ctx, taskID, userID, &task)
}

func (s *TaskService) Delete(ctx context.Context, taskID, userID uint) error {
	return s.tasks.Delete(ctx, taskID, userID)
}

func validate(input TaskInput) error {
	if strings.TrimSpace(input.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// normalizeDeadline stores deadlines in UTC so date-based filters behave
// the same regardless of server or client timezone.
func normalizeDeadline(deadline *time.Time) *time.Time {
	if deadline == nil {
		return nil
	}
	utc := deadline.UTC()
	return &utc
}

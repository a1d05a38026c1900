package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tasklist/internal/model"
)

// TaskRepository handles CRUD for tasks. The owner id is part of every
// match, so cross-owner access cannot be expressed.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByUser returns all tasks belonging to the owner in insertion order.
func (r *TaskRepository) ListByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID, userID uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error
	switch {
	case err == nil:
		return &task, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("find task: %w", err)
	}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// Update replaces every mutable field of the matched task. A zero row
// count means the id is missing or owned by someone else; both surface as
// ErrNotFound.
func (r *TaskRepository) Update(ctx context.Context, taskID, userID uint, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Updates(map[string]interface{}{
			"description": task.Description,
			"important":   task.Important,
			"private":     task.Private,
			"project":     task.Project,
			"deadline":    task.Deadline,
			"completed":   task.Completed,
		})
	if res.Error != nil {
		return fmt.Errorf("update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a task for the given user.
func (r *TaskRepository) Delete(ctx context.Context, taskID, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&model.Task{})
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package stor

import (
	"time"

	"github.com/pkg/errors"

	"github.com/huddleapp/huddle/pkg/hdb/model"
)

// TaskPatch is a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Title         *string
	Description   *string
	Priority      *model.TaskPriority
	Status        *model.TaskStatus
	EstimatedTime *int
	TimeUnit      *model.TimeUnit
	TeamID        *int64
}

// prepareNewTask fills in the defaults for fields the caller left unset and
// validates the enumerated fields. Both store implementations run new tasks
// through here so durable and transient mode accept the same inputs.
func prepareNewTask(task *model.Task) error {
	if task.Priority == "" {
		task.Priority = model.PriorityEasy
	}
	if task.Status == "" {
		task.Status = model.StatusTodo
	}
	if task.EstimatedTime == 0 {
		task.EstimatedTime = 30
	}
	if task.TimeUnit == "" {
		task.TimeUnit = model.UnitMinutes
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	if !task.Priority.Valid() {
		return errors.Wrapf(ErrInvalidEnum, "priority %q", task.Priority)
	}
	if !task.Status.Valid() {
		return errors.Wrapf(ErrInvalidEnum, "status %q", task.Status)
	}
	if !task.TimeUnit.Valid() {
		return errors.Wrapf(ErrInvalidEnum, "timeUnit %q", task.TimeUnit)
	}
	if task.EstimatedTime < 0 {
		return errors.Wrapf(ErrInvalidEnum, "estimatedTime %d", task.EstimatedTime)
	}

	return nil
}

func applyTaskPatch(task *model.Task, patch TaskPatch) error {
	if patch.Priority != nil && !patch.Priority.Valid() {
		return errors.Wrapf(ErrInvalidEnum, "priority %q", *patch.Priority)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return errors.Wrapf(ErrInvalidEnum, "status %q", *patch.Status)
	}
	if patch.TimeUnit != nil && !patch.TimeUnit.Valid() {
		return errors.Wrapf(ErrInvalidEnum, "timeUnit %q", *patch.TimeUnit)
	}
	if patch.EstimatedTime != nil && *patch.EstimatedTime <= 0 {
		return errors.Wrapf(ErrInvalidEnum, "estimatedTime %d", *patch.EstimatedTime)
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.EstimatedTime != nil {
		task.EstimatedTime = *patch.EstimatedTime
	}
	if patch.TimeUnit != nil {
		task.TimeUnit = *patch.TimeUnit
	}
	if patch.TeamID != nil {
		teamID := *patch.TeamID
		task.TeamID = &teamID
	}

	return nil
}

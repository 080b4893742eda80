package webapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"

	"github.com/huddleapp/huddle/pkg/hdb/model"
	"github.com/huddleapp/huddle/pkg/hdb/stor"
	"github.com/huddleapp/huddle/pkg/realtime"
)

type TaskController struct {
	taskStor  stor.TaskStor
	publisher Publisher
}

func NewTaskController(taskStor stor.TaskStor, publisher Publisher) *TaskController {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &TaskController{taskStor: taskStor, publisher: publisher}
}

// CreateTask persists the task, then notifies the team room. The broadcast
// happens only after the write succeeded and never affects the response.
func (c *TaskController) CreateTask(ctx echo.Context) error {
	var task model.Task

	if err := ctx.Bind(&task); err != nil {
		return fail(ctx, "Invalid request")
	}

	created, err := c.taskStor.CreateTask(&task)
	switch {
	case errors.Is(err, stor.ErrInvalidEnum):
		return fail(ctx, err.Error())
	case err != nil:
		log.Errorf("Create task %q failed: %s", task.Title, err)
		return fail(ctx, "Failed to create task")
	}

	if created.TeamID != nil {
		c.publisher.Publish(realtime.RoomForTeam(*created.TeamID), realtime.EvtTaskUpdated,
			map[string]any{"type": "added", "task": created})
	}

	return ok(ctx, map[string]any{"task": created})
}

func (c *TaskController) GetTasksForUser(ctx echo.Context) error {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		return failWithTasks(ctx)
	}

	tasks, err := c.taskStor.GetTasksForUser(userID)
	if err != nil {
		log.Errorf("Get tasks for user %d failed: %s", userID, err)
		return failWithTasks(ctx)
	}

	return ok(ctx, map[string]any{"tasks": emptyIfNil(tasks)})
}

func (c *TaskController) GetTasksForTeam(ctx echo.Context) error {
	teamID, err := strconv.ParseInt(ctx.Param("teamId"), 10, 64)
	if err != nil {
		return failWithTasks(ctx)
	}

	tasks, err := c.taskStor.GetTasksForTeam(teamID)
	if err != nil {
		log.Errorf("Get tasks for team %d failed: %s", teamID, err)
		return failWithTasks(ctx)
	}

	return ok(ctx, map[string]any{"tasks": emptyIfNil(tasks)})
}

func (c *TaskController) UpdateTask(ctx echo.Context) error {
	taskID, err := strconv.ParseInt(ctx.Param("taskId"), 10, 64)
	if err != nil {
		return fail(ctx, "")
	}

	var req struct {
		Title         *string             `json:"title"`
		Description   *string             `json:"description"`
		Priority      *model.TaskPriority `json:"priority"`
		Status        *model.TaskStatus   `json:"status"`
		EstimatedTime *int                `json:"estimatedTime"`
		TimeUnit      *model.TimeUnit     `json:"timeUnit"`
		TeamID        *int64              `json:"teamId"`
	}

	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, "Invalid request")
	}

	task, err := c.taskStor.UpdateTask(taskID, stor.TaskPatch{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		Status:        req.Status,
		EstimatedTime: req.EstimatedTime,
		TimeUnit:      req.TimeUnit,
		TeamID:        req.TeamID,
	})

	switch {
	case errors.Is(err, stor.ErrTaskNotFound):
		return fail(ctx, "")
	case errors.Is(err, stor.ErrInvalidEnum):
		return fail(ctx, err.Error())
	case err != nil:
		log.Errorf("Update task %d failed: %s", taskID, err)
		return fail(ctx, "")
	}

	if task.TeamID != nil {
		c.publisher.Publish(realtime.RoomForTeam(*task.TeamID), realtime.EvtTaskUpdated,
			map[string]any{"type": "updated", "task": task})
	}

	return ok(ctx, map[string]any{"task": task})
}

func failWithTasks(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{"success": false, "tasks": []model.Task{}})
}

func emptyIfNil(tasks []model.Task) []model.Task {
	if tasks == nil {
		return []model.Task{}
	}
	return tasks
}

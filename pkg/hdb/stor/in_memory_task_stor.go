package stor

import (
	"github.com/hashicorp/go-uuid"

	"github.com/huddleapp/huddle/pkg/hdb/model"
)

type InMemoryTaskStor struct {
	tables *InMemoryTables
}

func NewInMemoryTaskStor(tables *InMemoryTables) *InMemoryTaskStor {
	return &InMemoryTaskStor{tables: tables}
}

func (s *InMemoryTaskStor) CreateTask(task *model.Task) (*model.Task, error) {
	var err error

	if err = prepareNewTask(task); err != nil {
		return nil, err
	}

	if task.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	task.ID = t.nextID()
	t.tasks[task.ID] = copyTask(task)
	return task, nil
}

func (s *InMemoryTaskStor) UpdateTask(taskID int64, patch TaskPatch) (*model.Task, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	task, ok := t.tasks[taskID]
	if !ok {
		return nil, ErrTaskNotFound
	}

	if err := applyTaskPatch(task, patch); err != nil {
		return nil, err
	}

	return copyTask(task), nil
}

func (s *InMemoryTaskStor) GetTaskByID(taskID int64) (*model.Task, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	task, ok := t.tasks[taskID]
	if !ok {
		return nil, ErrTaskNotFound
	}

	return copyTask(task), nil
}

func (s *InMemoryTaskStor) GetTasksForUser(userID int64) ([]model.Task, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	var tasks []model.Task
	for _, task := range t.tasks {
		if task.UserID == userID {
			tasks = append(tasks, *copyTask(task))
		}
	}

	return tasks, nil
}

func (s *InMemoryTaskStor) GetTasksForTeam(teamID int64) ([]model.Task, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	var tasks []model.Task
	for _, task := range t.tasks {
		if task.TeamID != nil && *task.TeamID == teamID {
			tasks = append(tasks, *copyTask(task))
		}
	}

	return tasks, nil
}

package stor

import (
	"errors"

	"github.com/hashicorp/go-uuid"
	"gorm.io/gorm"

	"github.com/huddleapp/huddle/pkg/hdb/model"
)

type GormTaskStor struct {
	db *gorm.DB
}

func NewGormTaskStor(db *gorm.DB) *GormTaskStor {
	return &GormTaskStor{db: db}
}

func (s *GormTaskStor) CreateTask(task *model.Task) (*model.Task, error) {
	var err error

	if err = prepareNewTask(task); err != nil {
		return nil, err
	}

	if task.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(task).Error
	})

	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *GormTaskStor) UpdateTask(taskID int64, patch TaskPatch) (*model.Task, error) {
	var task model.Task

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := tx.First(&task, taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		if err := applyTaskPatch(&task, patch); err != nil {
			return err
		}

		return tx.Save(&task).Error
	})

	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *GormTaskStor) GetTaskByID(taskID int64) (*model.Task, error) {
	var task model.Task
	if err := s.db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

func (s *GormTaskStor) GetTasksForUser(userID int64) ([]model.Task, error) {
	var tasks []model.Task
	result := s.db.Where("user_id = ?", userID).Find(&tasks)
	return tasks, result.Error
}

func (s *GormTaskStor) GetTasksForTeam(teamID int64) ([]model.Task, error) {
	var tasks []model.Task
	result := s.db.Where("team_id = ?", teamID).Find(&tasks)
	return tasks, result.Error
}

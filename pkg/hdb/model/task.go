package model

import "time"

type TaskPriority string

const (
	PriorityEasy   TaskPriority = "easy"
	PriorityMedium TaskPriority = "medium"
	PriorityHard   TaskPriority = "hard"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityEasy, PriorityMedium, PriorityHard:
		return true
	}
	return false
}

type TaskStatus string

const (
	StatusTodo      TaskStatus = "todo"
	StatusProcess   TaskStatus = "process"
	StatusCompleted TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusProcess, StatusCompleted:
		return true
	}
	return false
}

type TimeUnit string

const (
	UnitMinutes TimeUnit = "minutes"
	UnitHours   TimeUnit = "hours"
	UnitDays    TimeUnit = "days"
	UnitWeeks   TimeUnit = "weeks"
)

func (u TimeUnit) Valid() bool {
	switch u {
	case UnitMinutes, UnitHours, UnitDays, UnitWeeks:
		return true
	}
	return false
}

type Task struct {
	ID            int64        `json:"id" gorm:"primaryKey"`
	UUID          string       `json:"uuid"`
	Title         string       `json:"title" gorm:"not null"`
	Description   string       `json:"description"`
	Priority      TaskPriority `json:"priority"`
	Status        TaskStatus   `json:"status"`
	EstimatedTime int          `json:"estimatedTime"`
	TimeUnit      TimeUnit     `json:"timeUnit"`
	UserID        int64        `json:"userId"`
	TeamID        *int64       `json:"teamId"`
	CreatedAt     time.Time    `json:"createdAt"`
}

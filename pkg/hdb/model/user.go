package model

import "time"

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UUID      string    `json:"uuid"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	TeamID    *int64    `json:"teamId"`
	CreatedAt time.Time `json:"createdAt"`
}

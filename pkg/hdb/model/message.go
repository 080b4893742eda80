package model

import "time"

// Message is a chat message. UserName is a denormalized snapshot of the
// sender's name at send time.
type Message struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UUID      string    `json:"uuid"`
	Body      string    `json:"message" gorm:"column:message;not null"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName"`
	TeamID    int64     `json:"teamId"`
	Timestamp time.Time `json:"timestamp"`
}

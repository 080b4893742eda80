package model

import "time"

// Team owns its member set. Membership changes go through the team stores,
// which keep Members and each member's User.TeamID back-reference in step.
type Team struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UUID      string    `json:"uuid"`
	Name      string    `json:"name" gorm:"not null"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null"`
	LeaderID  int64     `json:"leaderId"`
	Members   IDList    `json:"members" gorm:"serializer:json"`
	CreatedAt time.Time `json:"createdAt"`
}

type IDList []int64

func (l IDList) Contains(id int64) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

func (l IDList) Without(id int64) IDList {
	out := make(IDList, 0, len(l))
	for _, v := range l {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

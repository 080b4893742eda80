package stor

import (
	"time"

	"github.com/hashicorp/go-uuid"
	"gorm.io/gorm"

	"github.com/huddleapp/huddle/pkg/hdb/model"
)

type GormMessageStor struct {
	db *gorm.DB
}

func NewGormMessageStor(db *gorm.DB) *GormMessageStor {
	return &GormMessageStor{db: db}
}

func (s *GormMessageStor) CreateMessage(message *model.Message) (*model.Message, error) {
	var err error

	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	if message.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(message).Error
	})

	if err != nil {
		return nil, err
	}

	return message, nil
}

// GetMessagesForTeam returns the team's chat history oldest first.
func (s *GormMessageStor) GetMessagesForTeam(teamID int64) ([]model.Message, error) {
	var messages []model.Message
	result := s.db.Where("team_id = ?", teamID).Order("timestamp asc").Find(&messages)
	return messages, result.Error
}

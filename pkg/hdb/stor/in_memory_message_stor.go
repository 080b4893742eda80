package stor

import (
	"sort"
	"time"

	"github.com/hashicorp/go-uuid"

	"github.com/huddleapp/huddle/pkg/hdb/model"
)

type InMemoryMessageStor struct {
	tables *InMemoryTables
}

func NewInMemoryMessageStor(tables *InMemoryTables) *InMemoryMessageStor {
	return &InMemoryMessageStor{tables: tables}
}

func (s *InMemoryMessageStor) CreateMessage(message *model.Message) (*model.Message, error) {
	var err error

	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	if message.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	message.ID = t.nextID()
	t.messages[message.ID] = copyMessage(message)
	return message, nil
}

func (s *InMemoryMessageStor) GetMessagesForTeam(teamID int64) ([]model.Message, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	var messages []model.Message
	for _, m := range t.messages {
		if m.TeamID == teamID {
			messages = append(messages, *copyMessage(m))
		}
	}

	// Oldest first, ids break timestamp ties since they are assigned in
	// insertion order.
	sort.Slice(messages, func(i, j int) bool {
		if messages[i].Timestamp.Equal(messages[j].Timestamp) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})

	return messages, nil
}

package stor

import (
	"sync"
	"time"

	"github.com/huddleapp/huddle/pkg/hdb/model"
)

// InMemoryTables is the transient-mode backing state. Records are indexed by
// id so lookups and deletes stay O(1). One mutex covers all four tables;
// multi-entity operations (team create, joins, cascades) run as a single
// critical section, which is the transient-mode equivalent of a transaction.
type InMemoryTables struct {
	mu       sync.Mutex
	lastID   int64
	users    map[int64]*model.User
	teams    map[int64]*model.Team
	tasks    map[int64]*model.Task
	messages map[int64]*model.Message
}

func NewInMemoryTables() *InMemoryTables {
	return &InMemoryTables{
		users:    make(map[int64]*model.User),
		teams:    make(map[int64]*model.Team),
		tasks:    make(map[int64]*model.Task),
		messages: make(map[int64]*model.Message),
	}
}

// nextID derives ids from the wall clock, bumped past the previous id so
// consecutive calls within one nanosecond tick stay distinct. Caller must
// hold mu.
func (t *InMemoryTables) nextID() int64 {
	id := time.Now().UnixNano()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	return id
}

// The tables hand out copies so callers can't mutate stored records behind
// the store's back.

func copyUser(u *model.User) *model.User {
	out := *u
	if u.TeamID != nil {
		teamID := *u.TeamID
		out.TeamID = &teamID
	}
	return &out
}

func copyTeam(t *model.Team) *model.Team {
	out := *t
	out.Members = append(model.IDList(nil), t.Members...)
	return &out
}

func copyTask(t *model.Task) *model.Task {
	out := *t
	if t.TeamID != nil {
		teamID := *t.TeamID
		out.TeamID = &teamID
	}
	return &out
}

func copyMessage(m *model.Message) *model.Message {
	out := *m
	return &out
}

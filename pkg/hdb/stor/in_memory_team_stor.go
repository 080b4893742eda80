package stor

import (
	"time"

	"github.com/hashicorp/go-uuid"

	"github.com/huddleapp/huddle/pkg/hdb/model"
)

type InMemoryTeamStor struct {
	tables *InMemoryTables
}

func NewInMemoryTeamStor(tables *InMemoryTables) *InMemoryTeamStor {
	return &InMemoryTeamStor{tables: tables}
}

func (s *InMemoryTeamStor) CreateTeamWithLeader(name string, leaderID int64) (*model.Team, error) {
	var err error

	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	team := &model.Team{
		Name:      name,
		Code:      GenerateTeamCode(),
		LeaderID:  leaderID,
		Members:   model.IDList{leaderID},
		CreatedAt: time.Now(),
	}

	if team.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	team.ID = t.nextID()
	t.teams[team.ID] = copyTeam(team)

	if leader, ok := t.users[leaderID]; ok {
		teamID := team.ID
		leader.TeamID = &teamID
	}

	return team, nil
}

func (s *InMemoryTeamStor) GetTeamByID(teamID int64) (*model.Team, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	team, ok := t.teams[teamID]
	if !ok {
		return nil, ErrTeamNotFound
	}

	return copyTeam(team), nil
}

func (s *InMemoryTeamStor) GetTeamByCode(code string) (*model.Team, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, team := range t.teams {
		if team.Code == code {
			return copyTeam(team), nil
		}
	}

	return nil, ErrTeamNotFound
}

func (s *InMemoryTeamStor) GetTeamMembers(team *model.Team) ([]model.User, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	var members []model.User
	for _, id := range team.Members {
		if u, ok := t.users[id]; ok {
			members = append(members, *copyUser(u))
		}
	}

	return members, nil
}

func (s *InMemoryTeamStor) AddMemberByCode(code string, userID int64) (*model.Team, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	var team *model.Team
	for _, candidate := range t.teams {
		if candidate.Code == code {
			team = candidate
			break
		}
	}

	if team == nil {
		return nil, ErrTeamNotFound
	}

	if !team.Members.Contains(userID) {
		team.Members = append(team.Members, userID)
	}

	if user, ok := t.users[userID]; ok {
		teamID := team.ID
		user.TeamID = &teamID
	}

	return copyTeam(team), nil
}

func (s *InMemoryTeamStor) RemoveMember(userID int64) error {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	user, ok := t.users[userID]
	if !ok {
		return ErrUserNotFound
	}

	if user.TeamID == nil {
		return nil
	}

	if team, ok := t.teams[*user.TeamID]; ok {
		team.Members = team.Members.Without(userID)
	}

	user.TeamID = nil
	return nil
}

func (s *InMemoryTeamStor) RenameTeam(teamID int64, name string) (*model.Team, error) {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	team, ok := t.teams[teamID]
	if !ok {
		return nil, ErrTeamNotFound
	}

	team.Name = name
	return copyTeam(team), nil
}

// DeleteTeam cascades in the same order as durable mode: tasks, messages,
// user back-references, then the team itself.
func (s *InMemoryTeamStor) DeleteTeam(teamID int64) error {
	t := s.tables
	t.mu.Lock()
	defer t.mu.Unlock()

	team, ok := t.teams[teamID]
	if !ok {
		return ErrTeamNotFound
	}

	for id, task := range t.tasks {
		if task.TeamID != nil && *task.TeamID == team.ID {
			delete(t.tasks, id)
		}
	}

	for id, message := range t.messages {
		if message.TeamID == team.ID {
			delete(t.messages, id)
		}
	}

	for _, user := range t.users {
		if user.TeamID != nil && *user.TeamID == team.ID {
			user.TeamID = nil
		}
	}

	delete(t.teams, teamID)
	return nil
}

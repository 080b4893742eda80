package stor

import (
	"github.com/huddleapp/huddle/pkg/hdb/model"
	"gorm.io/gorm"
)

type UserStor interface {
	CreateUser(user *model.User) (*model.User, error)
	Authenticate(name, password string) (*model.User, error)
	GetUserByID(userID int64) (*model.User, error)
	GetUserByName(name string) (*model.User, error)
	GetUserBySlug(userSlug string) (*model.User, error)
}

// TeamStor owns the team member set and the User.TeamID back-reference.
// Membership operations update both as one logical write, so callers never
// see a member list that disagrees with the back-references.
type TeamStor interface {
	CreateTeamWithLeader(name string, leaderID int64) (*model.Team, error)
	GetTeamByID(teamID int64) (*model.Team, error)
	GetTeamByCode(code string) (*model.Team, error)
	GetTeamMembers(team *model.Team) ([]model.User, error)
	AddMemberByCode(code string, userID int64) (*model.Team, error)
	RemoveMember(userID int64) error
	RenameTeam(teamID int64, name string) (*model.Team, error)
	DeleteTeam(teamID int64) error
}

type TaskStor interface {
	CreateTask(task *model.Task) (*model.Task, error)
	UpdateTask(taskID int64, patch TaskPatch) (*model.Task, error)
	GetTaskByID(taskID int64) (*model.Task, error)
	GetTasksForUser(userID int64) ([]model.Task, error)
	GetTasksForTeam(teamID int64) ([]model.Task, error)
}

type MessageStor interface {
	CreateMessage(message *model.Message) (*model.Message, error)
	GetMessagesForTeam(teamID int64) ([]model.Message, error)
}

type Stors struct {
	UserStor    UserStor
	TeamStor    TeamStor
	TaskStor    TaskStor
	MessageStor MessageStor
}

func NewGormStors(db *gorm.DB) *Stors {
	return &Stors{
		UserStor:    NewGormUserStor(db),
		TeamStor:    NewGormTeamStor(db),
		TaskStor:    NewGormTaskStor(db),
		MessageStor: NewGormMessageStor(db),
	}
}

// NewInMemoryStors builds the transient-mode stores. All four share one
// table set so cross-entity operations (cascading team deletes, membership
// back-references) see a single state.
func NewInMemoryStors() *Stors {
	tables := NewInMemoryTables()
	return &Stors{
		UserStor:    NewInMemoryUserStor(tables),
		TeamStor:    NewInMemoryTeamStor(tables),
		TaskStor:    NewInMemoryTaskStor(tables),
		MessageStor: NewInMemoryMessageStor(tables),
	}
}

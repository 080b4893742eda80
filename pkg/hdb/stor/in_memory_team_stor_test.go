package stor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huddleapp/huddle/pkg/hdb/model"
)

func createTestUser(t *testing.T, stors *Stors, name string) *model.User {
	t.Helper()
	user, err := stors.UserStor.CreateUser(&model.User{Name: name, Password: "pw"})
	require.NoError(t, err)
	return user
}

func TestCreateTeamWithLeader(t *testing.T) {
	stors := NewInMemoryStors()
	leader := createTestUser(t, stors, "leader")

	team, err := stors.TeamStor.CreateTeamWithLeader("Eng", leader.ID)
	require.NoError(t, err)
	require.Equal(t, "Eng", team.Name)
	require.Len(t, team.Code, 6)
	require.Equal(t, leader.ID, team.LeaderID)
	require.Equal(t, model.IDList{leader.ID}, team.Members)

	// the leader's back-reference moves with the team creation
	updatedLeader, err := stors.UserStor.GetUserByID(leader.ID)
	require.NoError(t, err)
	require.NotNil(t, updatedLeader.TeamID)
	require.Equal(t, team.ID, *updatedLeader.TeamID)
}

func TestAddMemberByCode(t *testing.T) {
	stors := NewInMemoryStors()
	leader := createTestUser(t, stors, "leader")
	joiner := createTestUser(t, stors, "joiner")

	team, err := stors.TeamStor.CreateTeamWithLeader("Eng", leader.ID)
	require.NoError(t, err)

	joined, err := stors.TeamStor.AddMemberByCode(team.Code, joiner.ID)
	require.NoError(t, err)
	require.Equal(t, model.IDList{leader.ID, joiner.ID}, joined.Members)

	updatedJoiner, err := stors.UserStor.GetUserByID(joiner.ID)
	require.NoError(t, err)
	require.NotNil(t, updatedJoiner.TeamID)
	require.Equal(t, team.ID, *updatedJoiner.TeamID)

	// joining twice doesn't duplicate the membership
	joined, err = stors.TeamStor.AddMemberByCode(team.Code, joiner.ID)
	require.NoError(t, err)
	require.Equal(t, model.IDList{leader.ID, joiner.ID}, joined.Members)

	_, err = stors.TeamStor.AddMemberByCode("NOPE42", joiner.ID)
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestLeaderStaysMemberThroughJoinsAndLeaves(t *testing.T) {
	stors := NewInMemoryStors()
	leader := createTestUser(t, stors, "leader")
	u2 := createTestUser(t, stors, "u2")
	u3 := createTestUser(t, stors, "u3")

	team, err := stors.TeamStor.CreateTeamWithLeader("Eng", leader.ID)
	require.NoError(t, err)

	_, err = stors.TeamStor.AddMemberByCode(team.Code, u2.ID)
	require.NoError(t, err)
	_, err = stors.TeamStor.AddMemberByCode(team.Code, u3.ID)
	require.NoError(t, err)
	require.NoError(t, stors.TeamStor.RemoveMember(u2.ID))

	current, err := stors.TeamStor.GetTeamByID(team.ID)
	require.NoError(t, err)
	require.True(t, current.Members.Contains(team.LeaderID))
	require.False(t, current.Members.Contains(u2.ID))
	require.True(t, current.Members.Contains(u3.ID))
}

func TestRemoveMember(t *testing.T) {
	stors := NewInMemoryStors()
	leader := createTestUser(t, stors, "leader")
	member := createTestUser(t, stors, "member")

	team, err := stors.TeamStor.CreateTeamWithLeader("Eng", leader.ID)
	require.NoError(t, err)
	_, err = stors.TeamStor.AddMemberByCode(team.Code, member.ID)
	require.NoError(t, err)

	require.NoError(t, stors.TeamStor.RemoveMember(member.ID))

	current, err := stors.TeamStor.GetTeamByID(team.ID)
	require.NoError(t, err)
	require.Equal(t, model.IDList{leader.ID}, current.Members)

	updatedMember, err := stors.UserStor.GetUserByID(member.ID)
	require.NoError(t, err)
	require.Nil(t, updatedMember.TeamID)

	// leaving with no team is a no-op
	require.NoError(t, stors.TeamStor.RemoveMember(member.ID))
}

func TestGetTeamMembers(t *testing.T) {
	stors := NewInMemoryStors()
	leader := createTestUser(t, stors, "leader")
	member := createTestUser(t, stors, "member")

	team, err := stors.TeamStor.CreateTeamWithLeader("Eng", leader.ID)
	require.NoError(t, err)
	team, err = stors.TeamStor.AddMemberByCode(team.Code, member.ID)
	require.NoError(t, err)

	members, err := stors.TeamStor.GetTeamMembers(team)
	require.NoError(t, err)
	require.Len(t, members, 2)

	names := []string{members[0].Name, members[1].Name}
	require.Contains(t, names, "leader")
	require.Contains(t, names, "member")
}

func TestRenameTeam(t *testing.T) {
	stors := NewInMemoryStors()
	leader := createTestUser(t, stors, "leader")

	team, err := stors.TeamStor.CreateTeamWithLeader("Eng", leader.ID)
	require.NoError(t, err)

	renamed, err := stors.TeamStor.RenameTeam(team.ID, "Platform")
	require.NoError(t, err)
	require.Equal(t, "Platform", renamed.Name)

	_, err = stors.TeamStor.RenameTeam(team.ID+1, "Nope")
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestDeleteTeamCascades(t *testing.T) {
	stors := NewInMemoryStors()
	leader := createTestUser(t, stors, "leader")
	member := createTestUser(t, stors, "member")

	team, err := stors.TeamStor.CreateTeamWithLeader("Eng", leader.ID)
	require.NoError(t, err)
	_, err = stors.TeamStor.AddMemberByCode(team.Code, member.ID)
	require.NoError(t, err)

	teamID := team.ID
	_, err = stors.TaskStor.CreateTask(&model.Task{Title: "T1", UserID: leader.ID, TeamID: &teamID})
	require.NoError(t, err)
	personal, err := stors.TaskStor.CreateTask(&model.Task{Title: "T2", UserID: leader.ID})
	require.NoError(t, err)

	_, err = stors.MessageStor.CreateMessage(&model.Message{Body: "hi", UserID: leader.ID, UserName: "leader", TeamID: teamID})
	require.NoError(t, err)

	require.NoError(t, stors.TeamStor.DeleteTeam(teamID))

	_, err = stors.TeamStor.GetTeamByID(teamID)
	require.ErrorIs(t, err, ErrTeamNotFound)

	// team tasks and messages are gone, personal tasks survive
	teamTasks, err := stors.TaskStor.GetTasksForTeam(teamID)
	require.NoError(t, err)
	require.Empty(t, teamTasks)

	userTasks, err := stors.TaskStor.GetTasksForUser(leader.ID)
	require.NoError(t, err)
	require.Len(t, userTasks, 1)
	require.Equal(t, personal.ID, userTasks[0].ID)

	messages, err := stors.MessageStor.GetMessagesForTeam(teamID)
	require.NoError(t, err)
	require.Empty(t, messages)

	// member back-references are cleared
	for _, id := range []int64{leader.ID, member.ID} {
		u, err := stors.UserStor.GetUserByID(id)
		require.NoError(t, err)
		require.Nil(t, u.TeamID)
	}

	require.ErrorIs(t, stors.TeamStor.DeleteTeam(teamID), ErrTeamNotFound)
}

package webapi

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huddleapp/huddle/pkg/hdb/model"
	"github.com/huddleapp/huddle/pkg/hdb/stor"
	"github.com/huddleapp/huddle/pkg/realtime"
)

func TestCreateTaskAppliesDefaultsAndBroadcasts(t *testing.T) {
	stors := stor.NewInMemoryStors()
	pub := &recordingPublisher{}
	c := NewTaskController(stors.TaskStor, pub)

	owner := signupUser(t, stors, "owner")
	team, err := stors.TeamStor.CreateTeamWithLeader("Eng", owner.ID)
	require.NoError(t, err)

	resp := invoke(t, c.CreateTask, http.MethodPost, "/api/tasks",
		map[string]any{"title": "T1", "userId": owner.ID, "teamId": team.ID}, nil)
	require.Equal(t, true, resp["success"])

	task := resp["task"].(map[string]any)
	require.Equal(t, "T1", task["title"])
	require.Equal(t, "easy", task["priority"])
	require.Equal(t, "todo", task["status"])
	require.Equal(t, float64(30), task["estimatedTime"])
	require.Equal(t, "minutes", task["timeUnit"])

	require.Len(t, pub.published(), 1)
	evt := pub.published()[0]
	require.Equal(t, realtime.RoomForTeam(team.ID), evt.Room)
	require.Equal(t, realtime.EvtTaskUpdated, evt.Event)

	payload := evt.Payload.(map[string]any)
	require.Equal(t, "added", payload["type"])
}

func TestCreateTaskPersonalNoBroadcast(t *testing.T) {
	stors := stor.NewInMemoryStors()
	pub := &recordingPublisher{}
	c := NewTaskController(stors.TaskStor, pub)

	owner := signupUser(t, stors, "owner")

	resp := invoke(t, c.CreateTask, http.MethodPost, "/api/tasks",
		map[string]any{"title": "Solo", "userId": owner.ID}, nil)
	require.Equal(t, true, resp["success"])
	require.Empty(t, pub.published())
}

func TestCreateTaskInvalidPriority(t *testing.T) {
	stors := stor.NewInMemoryStors()
	pub := &recordingPublisher{}
	c := NewTaskController(stors.TaskStor, pub)

	resp := invoke(t, c.CreateTask, http.MethodPost, "/api/tasks",
		map[string]any{"title": "T", "userId": int64(1), "priority": "impossible"}, nil)
	require.Equal(t, false, resp["success"])
	require.Empty(t, pub.published())
}

func TestUpdateTaskBroadcastsAfterWrite(t *testing.T) {
	stors := stor.NewInMemoryStors()
	pub := &recordingPublisher{}
	c := NewTaskController(stors.TaskStor, pub)

	owner := signupUser(t, stors, "owner")
	team, err := stors.TeamStor.CreateTeamWithLeader("Eng", owner.ID)
	require.NoError(t, err)

	teamID := team.ID
	created, err := stors.TaskStor.CreateTask(&model.Task{Title: "T1", UserID: owner.ID, TeamID: &teamID})
	require.NoError(t, err)

	resp := invoke(t, c.UpdateTask, http.MethodPut, "/api/tasks/"+fmt.Sprint(created.ID),
		map[string]any{"status": "completed"},
		map[string]string{"taskId": fmt.Sprint(created.ID)})
	require.Equal(t, true, resp["success"])
	require.Equal(t, "completed", resp["task"].(map[string]any)["status"])

	// the broadcast carries the already-persisted state
	stored, err := stors.TaskStor.GetTaskByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusCompleted, stored.Status)

	require.Len(t, pub.published(), 1)
	payload := pub.published()[0].Payload.(map[string]any)
	require.Equal(t, "updated", payload["type"])
}

func TestUpdateTaskNotFoundNoBroadcast(t *testing.T) {
	stors := stor.NewInMemoryStors()
	pub := &recordingPublisher{}
	c := NewTaskController(stors.TaskStor, pub)

	resp := invoke(t, c.UpdateTask, http.MethodPut, "/api/tasks/999999",
		map[string]any{"status": "completed"},
		map[string]string{"taskId": "999999"})
	require.Equal(t, false, resp["success"])
	require.Empty(t, pub.published())
}

func TestGetTasksForUserAndTeam(t *testing.T) {
	stors := stor.NewInMemoryStors()
	c := NewTaskController(stors.TaskStor, nil)

	owner := signupUser(t, stors, "owner")
	team, err := stors.TeamStor.CreateTeamWithLeader("Eng", owner.ID)
	require.NoError(t, err)

	teamID := team.ID
	_, err = stors.TaskStor.CreateTask(&model.Task{Title: "Team task", UserID: owner.ID, TeamID: &teamID})
	require.NoError(t, err)
	_, err = stors.TaskStor.CreateTask(&model.Task{Title: "Personal task", UserID: owner.ID})
	require.NoError(t, err)

	resp := invoke(t, c.GetTasksForUser, http.MethodGet, "/api/tasks/"+fmt.Sprint(owner.ID), nil,
		map[string]string{"userId": fmt.Sprint(owner.ID)})
	require.Equal(t, true, resp["success"])
	require.Len(t, resp["tasks"].([]any), 2)

	resp = invoke(t, c.GetTasksForTeam, http.MethodGet, "/api/tasks/team/"+fmt.Sprint(teamID), nil,
		map[string]string{"teamId": fmt.Sprint(teamID)})
	require.Equal(t, true, resp["success"])
	tasks := resp["tasks"].([]any)
	require.Len(t, tasks, 1)
	require.Equal(t, "Team task", tasks[0].(map[string]any)["title"])
}

func TestGetTasksForUnknownUserIsEmpty(t *testing.T) {
	stors := stor.NewInMemoryStors()
	c := NewTaskController(stors.TaskStor, nil)

	resp := invoke(t, c.GetTasksForUser, http.MethodGet, "/api/tasks/424242", nil,
		map[string]string{"userId": "424242"})
	require.Equal(t, true, resp["success"])
	require.Empty(t, resp["tasks"])
}

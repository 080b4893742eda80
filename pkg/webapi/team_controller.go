package webapi

import (
	"errors"
	"strconv"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"

	"github.com/huddleapp/huddle/pkg/hdb/model"
	"github.com/huddleapp/huddle/pkg/hdb/stor"
)

type TeamController struct {
	teamStor stor.TeamStor
}

func NewTeamController(teamStor stor.TeamStor) *TeamController {
	return &TeamController{teamStor: teamStor}
}

func (c *TeamController) CreateTeam(ctx echo.Context) error {
	var req struct {
		TeamName string `json:"teamName"`
		UserID   int64  `json:"userId"`
	}

	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, "Invalid request")
	}

	team, err := c.teamStor.CreateTeamWithLeader(req.TeamName, req.UserID)
	if err != nil {
		log.Errorf("Create team %q failed: %s", req.TeamName, err)
		return fail(ctx, "Failed to create team")
	}

	return ok(ctx, map[string]any{"team": team})
}

func (c *TeamController) JoinTeam(ctx echo.Context) error {
	var req struct {
		TeamCode string `json:"teamCode"`
		UserID   int64  `json:"userId"`
	}

	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, "Invalid request")
	}

	team, err := c.teamStor.AddMemberByCode(req.TeamCode, req.UserID)
	switch {
	case errors.Is(err, stor.ErrTeamNotFound):
		return fail(ctx, "Invalid team code")
	case err != nil:
		log.Errorf("Join team %q failed: %s", req.TeamCode, err)
		return fail(ctx, "Failed to join team")
	}

	return ok(ctx, map[string]any{"team": team})
}

// GetTeam returns the team along with its member list resolved to users.
func (c *TeamController) GetTeam(ctx echo.Context) error {
	teamID, err := strconv.ParseInt(ctx.Param("teamId"), 10, 64)
	if err != nil {
		return fail(ctx, "")
	}

	team, err := c.teamStor.GetTeamByID(teamID)
	if err != nil {
		return fail(ctx, "")
	}

	members, err := c.teamStor.GetTeamMembers(team)
	if err != nil {
		log.Errorf("Resolving members of team %d failed: %s", teamID, err)
		return fail(ctx, "")
	}

	if members == nil {
		members = []model.User{}
	}

	return ok(ctx, map[string]any{"team": team, "members": members})
}

func (c *TeamController) LeaveTeam(ctx echo.Context) error {
	var req struct {
		UserID int64 `json:"userId"`
	}

	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, "Invalid request")
	}

	// Leaving without a team is fine; only store failures are reported.
	if err := c.teamStor.RemoveMember(req.UserID); err != nil && !errors.Is(err, stor.ErrUserNotFound) {
		log.Errorf("Leave team for user %d failed: %s", req.UserID, err)
		return fail(ctx, "Failed to leave team")
	}

	return ok(ctx, nil)
}

func (c *TeamController) RenameTeam(ctx echo.Context) error {
	teamID, err := strconv.ParseInt(ctx.Param("teamId"), 10, 64)
	if err != nil {
		return fail(ctx, "")
	}

	var req struct {
		Name string `json:"name"`
	}

	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, "Invalid request")
	}

	team, err := c.teamStor.RenameTeam(teamID, req.Name)
	if err != nil {
		return fail(ctx, "")
	}

	return ok(ctx, map[string]any{"team": team})
}

func (c *TeamController) DeleteTeam(ctx echo.Context) error {
	teamID, err := strconv.ParseInt(ctx.Param("teamId"), 10, 64)
	if err != nil {
		return fail(ctx, "")
	}

	err = c.teamStor.DeleteTeam(teamID)
	switch {
	case errors.Is(err, stor.ErrTeamNotFound):
		// Deleting a team that's already gone still succeeds.
		return ok(ctx, nil)
	case err != nil:
		log.Errorf("Delete team %d failed: %s", teamID, err)
		return fail(ctx, "")
	}

	log.Infof("Deleted team %d and all associated tasks/messages", teamID)
	return ok(ctx, nil)
}

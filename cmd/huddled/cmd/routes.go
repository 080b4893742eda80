package cmd

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/huddleapp/huddle/pkg/hdb/stor"
	"github.com/huddleapp/huddle/pkg/realtime"
	"github.com/huddleapp/huddle/pkg/webapi"
)

type RouteOpts struct {
	stors       *stor.Stors
	hub         *realtime.Hub
	rt          *realtime.Server
	storageMode string
}

func setupRoutes(e *echo.Echo, opts RouteOpts) {
	g := e.Group("/api")

	authController := webapi.NewAuthController(opts.stors.UserStor)
	g.POST("/login", authController.Login)
	g.POST("/signup", authController.Signup)

	teamController := webapi.NewTeamController(opts.stors.TeamStor)
	g.POST("/create-team", teamController.CreateTeam)
	g.POST("/join-team", teamController.JoinTeam)
	g.POST("/leave-team", teamController.LeaveTeam)
	g.GET("/team/:teamId", teamController.GetTeam)
	g.PUT("/team/:teamId", teamController.RenameTeam)
	g.DELETE("/team/:teamId", teamController.DeleteTeam)

	taskController := webapi.NewTaskController(opts.stors.TaskStor, opts.hub)
	g.POST("/tasks", taskController.CreateTask)
	g.GET("/tasks/:userId", taskController.GetTasksForUser)
	g.GET("/tasks/team/:teamId", taskController.GetTasksForTeam)
	g.PUT("/tasks/:taskId", taskController.UpdateTask)

	e.GET("/ws", opts.rt.HandleConnection)

	e.GET("/healthz", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{
			"status":  "running",
			"storage": opts.storageMode,
		})
	})
}

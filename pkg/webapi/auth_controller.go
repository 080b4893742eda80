package webapi

import (
	"errors"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"

	"github.com/huddleapp/huddle/pkg/hdb/model"
	"github.com/huddleapp/huddle/pkg/hdb/stor"
)

type AuthController struct {
	userStor stor.UserStor
}

func NewAuthController(userStor stor.UserStor) *AuthController {
	return &AuthController{userStor: userStor}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, "Invalid request")
	}

	user, err := c.userStor.Authenticate(req.Name, req.Password)
	switch {
	case errors.Is(err, stor.ErrUserNotFound):
		return fail(ctx, "User not found. Please sign up first.")
	case errors.Is(err, stor.ErrInvalidCredentials):
		return fail(ctx, "Invalid password")
	case err != nil:
		log.Errorf("Login failed for %q: %s", req.Name, err)
		return fail(ctx, "Login failed")
	}

	return ok(ctx, map[string]any{"user": user})
}

func (c *AuthController) Signup(ctx echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, "Invalid request")
	}

	user, err := c.userStor.CreateUser(&model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})

	switch {
	case errors.Is(err, stor.ErrDuplicateUser):
		return fail(ctx, "User already exists. Please sign in instead.")
	case err != nil:
		log.Errorf("Signup failed for %q: %s", req.Name, err)
		return fail(ctx, "Signup failed")
	}

	return ok(ctx, map[string]any{"user": user})
}

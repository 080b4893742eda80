package stor

import "errors"

var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrTeamNotFound       = errors.New("team not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidEnum        = errors.New("invalid field value")
)

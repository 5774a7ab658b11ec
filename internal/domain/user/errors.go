package user

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameExists       = errors.New("username already taken")
	ErrEmailExists          = errors.New("email already registered")
	ErrAdminAccessRequired  = errors.New("admin access required")
	ErrSelfRegistrationOnly = errors.New("you can only register your own account")
	ErrRoleAssignmentDenied = errors.New("only administrators can assign the admin role")
)

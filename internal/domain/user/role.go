package user

import "errors"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

var (
	ErrPermissionDenied = errors.New("insufficient permissions for this operation")
	ErrInvalidToken     = errors.New("invalid or missing access token")
)

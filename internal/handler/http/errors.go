package http

import "errors"

var (
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is missing")
	ErrInvalidAuthorizationHeader = errors.New("authorization header is not a bearer token")
	ErrIdentityNotFound           = errors.New("user belonging to this token no longer exists")

	// ErrRoleNotAllowed is rendered wrapped with the offending role, e.g.
	// "user role 'user' is not authorized to access this route".
	ErrRoleNotAllowed = errors.New("is not authorized to access this route")
)

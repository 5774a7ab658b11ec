package auth

import "errors"

var (
	ErrMissingToken      = errors.New("authorization header is required")
	ErrMalformedToken    = errors.New("authorization header must be in the form 'Bearer <token>'")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrIdentityNoEmail   = errors.New("identity provider returned no email address")
	ErrUserNotRegistered = errors.New("no account is registered for this identity")
	ErrNotAuthenticated  = errors.New("not authenticated")
)

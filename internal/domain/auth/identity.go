package auth

import (
	"context"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
)

// Identity is what an external identity provider vouches for.
type Identity struct {
	Subject   string
	Email     string
	Name      string
	AvatarURL string
}

// IdentityProvider verifies an opaque bearer token with the service that issued it.
type IdentityProvider interface {
	VerifyToken(ctx context.Context, token string) (Identity, error)
}

// Profile is the minimal view of the authenticated local user handed to handlers.
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      user.Role `json:"role"`
	AvatarURL *string   `json:"avatarUrl"`
	FullName  *string   `json:"fullName"`
	Email     string    `json:"email"`
}

func (p Profile) IsAdmin() bool {
	return p.Role == user.RoleAdmin
}

func ProfileFromUser(u user.User) Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
		FullName:  u.FullName,
		Email:     u.Email,
	}
}

// SessionService resolves an Authorization header to a caller.
type SessionService interface {
	// Identify verifies the bearer token only.
	Identify(ctx context.Context, authorizationHeader string) (Identity, error)

	// Authenticate verifies the bearer token and resolves it to a local user.
	Authenticate(ctx context.Context, authorizationHeader string) (Profile, error)
}

type identityKey struct{}
type profileKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

func WithProfile(ctx context.Context, p Profile) context.Context {
	return context.WithValue(ctx, profileKey{}, p)
}

func ProfileFromContext(ctx context.Context) (Profile, bool) {
	p, ok := ctx.Value(profileKey{}).(Profile)
	return p, ok
}

// MustProfile returns the caller profile or ErrNotAuthenticated.
func MustProfile(ctx context.Context) (Profile, error) {
	p, ok := ProfileFromContext(ctx)
	if !ok || p.ID == "" {
		return Profile{}, ErrNotAuthenticated
	}
	return p, nil
}

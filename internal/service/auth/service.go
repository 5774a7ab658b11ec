package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
)

type SessionServiceImpl struct {
	provider auth.IdentityProvider
	user.UserRepository
}

func NewSessionService(provider auth.IdentityProvider, userRepository user.UserRepository) auth.SessionService {
	return &SessionServiceImpl{
		provider:       provider,
		UserRepository: userRepository,
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" value.
func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", auth.ErrMissingToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", auth.ErrMalformedToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", auth.ErrMalformedToken
	}
	return token, nil
}

// Identify implements auth.SessionService.
func (s *SessionServiceImpl) Identify(ctx context.Context, authorizationHeader string) (auth.Identity, error) {
	token, err := bearerToken(authorizationHeader)
	if err != nil {
		return auth.Identity{}, err
	}

	identity, err := s.provider.VerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, auth.ErrIdentityNoEmail) {
			return auth.Identity{}, err
		}
		slog.Debug("token verification failed", "error", err)
		return auth.Identity{}, auth.ErrInvalidToken
	}
	if identity.Email == "" {
		return auth.Identity{}, auth.ErrIdentityNoEmail
	}

	return identity, nil
}

// Authenticate implements auth.SessionService.
func (s *SessionServiceImpl) Authenticate(ctx context.Context, authorizationHeader string) (auth.Profile, error) {
	identity, err := s.Identify(ctx, authorizationHeader)
	if err != nil {
		return auth.Profile{}, err
	}

	userData, err := s.UserRepository.GetByEmail(ctx, identity.Email)
	if err != nil {
		return auth.Profile{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if userData == nil {
		return auth.Profile{}, auth.ErrUserNotRegistered
	}

	profile := auth.ProfileFromUser(*userData)
	if profile.AvatarURL == nil && identity.AvatarURL != "" {
		avatar := identity.AvatarURL
		profile.AvatarURL = &avatar
	}
	return profile, nil
}

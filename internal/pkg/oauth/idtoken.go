package oauth

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
)

// IDTokenService verifies Google-signed ID tokens against the client IDs
// this API accepts.
type IDTokenService struct {
	audiences []string
}

func NewIDTokenService(clientIDs ...string) *IDTokenService {
	return &IDTokenService{audiences: clientIDs}
}

// VerifyToken implements auth.IdentityProvider.
// The verifier has no context support, so ctx is only checked before verifying.
func (s *IDTokenService) VerifyToken(ctx context.Context, idToken string) (auth.Identity, error) {
	if err := ctx.Err(); err != nil {
		return auth.Identity{}, err
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, s.audiences); err != nil {
		return auth.Identity{}, fmt.Errorf("verify id token: %w", err)
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("decode id token: %w", err)
	}
	return identityFromClaims(claimSet)
}

// identityFromClaims accepts only claim sets carrying a verified email.
func identityFromClaims(claimSet *googleAuthIDTokenVerifier.ClaimSet) (auth.Identity, error) {
	if claimSet.Email == "" || !claimSet.EmailVerified {
		return auth.Identity{}, auth.ErrIdentityNoEmail
	}

	return auth.Identity{
		Subject: claimSet.Sub,
		Email:   claimSet.Email,
		Name:    claimSet.Name,
	}, nil
}

package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and verifies HS256 identity tokens signed with a shared secret.
// It plays the external identity provider in development and tests.
type Service interface {
	auth.IdentityProvider

	GenerateAccessToken(subject string, email string, name string) (token string, expiresAt int64, err error)
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(subject string, email string, name string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	now := time.Now()
	expiresAt = now.Add(expDuration).Unix()

	claims := map[string]interface{}{
		"sub":   subject,
		"email": email,
		"type":  "access",
		"iat":   now.Unix(),
		"exp":   expiresAt,
	}
	if name != "" {
		claims["name"] = name
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// VerifyToken implements auth.IdentityProvider.
func (j *JWTService) VerifyToken(ctx context.Context, tokenString string) (auth.Identity, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("verify token: %w", err)
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "access" {
		return auth.Identity{}, errors.New("verify token: not an access token")
	}

	identity := auth.Identity{
		Subject:   token.Subject(),
		Email:     stringClaim(token, "email"),
		Name:      stringClaim(token, "name"),
		AvatarURL: stringClaim(token, "picture"),
	}
	if identity.Email == "" {
		return auth.Identity{}, auth.ErrIdentityNoEmail
	}
	return identity, nil
}

func stringClaim(token jwt.Token, key string) string {
	v, ok := token.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

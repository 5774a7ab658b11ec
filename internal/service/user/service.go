package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository}
}

func (s *UserServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.authorizeCreate(ctx, req); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return user.UserResponse{}, user.ErrUsernameExists
	}

	existing, err = s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return user.UserResponse{}, user.ErrEmailExists
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		FullName:     req.FullName,
		AvatarURL:    req.AvatarURL,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return toUserResponse(created), nil
}

// authorizeCreate lets admins create any account. Anyone else may only
// register the email they authenticated with, as staff. While no account
// exists at all, the first registrant may pick any role.
func (s *UserServiceImpl) authorizeCreate(ctx context.Context, req user.CreateUserRequest) error {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok || identity.Email == "" {
		return auth.ErrNotAuthenticated
	}

	caller, err := s.UserRepository.GetByEmail(ctx, identity.Email)
	if err != nil {
		return fmt.Errorf("failed to get caller: %w", err)
	}
	if caller != nil && caller.IsAdmin() {
		return nil
	}

	if !strings.EqualFold(identity.Email, req.Email) {
		return user.ErrSelfRegistrationOnly
	}

	if req.Role != user.RoleStaff {
		total, err := s.UserRepository.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		if total > 0 {
			return user.ErrRoleAssignmentDenied
		}
	}
	return nil
}

// Me implements user.UserService.
func (s *UserServiceImpl) Me(ctx context.Context) (user.UserResponse, error) {
	profile, err := auth.MustProfile(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	userData, err := s.UserRepository.GetByID(ctx, profile.ID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if userData == nil {
		return user.UserResponse{}, user.ErrUserNotFound
	}

	return toUserResponse(*userData), nil
}

func toUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

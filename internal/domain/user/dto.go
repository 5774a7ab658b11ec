package user

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required"`
	Email     string  `json:"email" validate:"required"`
	Password  string  `json:"password" validate:"required,min=8"`
	Role      Role    `json:"role"`
	FullName  *string `json:"fullName,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	errs := validator.Struct(r)

	if r.Username != "" && !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, digits, '.', '_' or '-'",
		})
	}

	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Role == "" {
		r.Role = RoleStaff
	} else if !r.Role.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, staff",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Role      Role    `json:"role"`
	FullName  *string `json:"fullName"`
	AvatarURL *string `json:"avatarUrl"`
	CreatedAt string  `json:"createdAt"`
}

type UserService interface {
	// Create registers a local account. Admins may create any account;
	// everyone else may only register the email they authenticated with.
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// Me returns the authenticated user's account.
	Me(ctx context.Context) (UserResponse, error)
}

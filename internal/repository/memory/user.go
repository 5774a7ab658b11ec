package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
)

type userRepository struct {
	store *Store
}

func cloneUser(u user.User) *user.User {
	u.FullName = cloneString(u.FullName)
	u.AvatarURL = cloneString(u.AvatarURL)
	return &u
}

func (r *userRepository) find(ctx context.Context, match func(user.User) bool) (*user.User, error) {
	var found *user.User
	err := r.store.read(ctx, func(st *state) error {
		for _, u := range st.users {
			if match(u) {
				found = cloneUser(u)
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	return r.find(ctx, func(u user.User) bool { return u.ID == id })
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.find(ctx, func(u user.User) bool { return u.Username == username })
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.find(ctx, func(u user.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	var created user.User
	err := r.store.write(ctx, func(st *state) error {
		for _, u := range st.users {
			if u.Username == newUser.Username {
				return user.ErrUsernameExists
			}
			if u.Email == newUser.Email {
				return user.ErrEmailExists
			}
		}

		now := r.store.now()
		created = *cloneUser(newUser)
		created.ID = newID()
		if created.Role == "" {
			created.Role = user.RoleStaff
		}
		created.CreatedAt = now
		created.UpdatedAt = now
		st.users[created.ID] = created
		return nil
	})
	if err != nil {
		return user.User{}, err
	}
	return *cloneUser(created), nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.store.read(ctx, func(st *state) error {
		n = int64(len(st.users))
		return nil
	})
	return n, err
}

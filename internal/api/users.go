package api

import (
	"context"
	"net/url"

	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
)

// UsersService covers the /users endpoint group (admin back-office).
type UsersService struct {
	c *Client
}

// UserFilter narrows the user list.
type UserFilter struct {
	ListParams
	Role   entity.Role
	Active *bool
}

func (f UserFilter) values() url.Values {
	q := f.ListParams.values()
	if f.Role != "" {
		q.Set("role", string(f.Role))
	}
	if f.Active != nil {
		if *f.Active {
			q.Set("isActive", "true")
		} else {
			q.Set("isActive", "false")
		}
	}
	return q
}

// UserPage is one page of the user list.
type UserPage struct {
	Items      []entity.UserProfile `json:"items"`
	Pagination Pagination           `json:"pagination"`
}

// List returns a filtered, paginated slice of users.
func (s *UsersService) List(ctx context.Context, filter UserFilter) (*UserPage, error) {
	var page UserPage
	if err := s.c.get(ctx, "/users", filter.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches one user.
func (s *UsersService) Get(ctx context.Context, id string) (*entity.UserProfile, error) {
	var user entity.UserProfile
	if err := s.c.get(ctx, "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserInput is the create/update payload.
type UserInput struct {
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	Role      entity.Role `json:"role"`
	Password  string      `json:"password,omitempty"`
}

// Create adds a user with the given role.
func (s *UsersService) Create(ctx context.Context, in UserInput) (*entity.UserProfile, error) {
	var user entity.UserProfile
	if err := s.c.post(ctx, "/users", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update edits a user.
func (s *UsersService) Update(ctx context.Context, id string, in UserInput) (*entity.UserProfile, error) {
	var user entity.UserProfile
	if err := s.c.put(ctx, "/users/"+id, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Deactivate disables an account. Accounts are never hard-deleted.
func (s *UsersService) Deactivate(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/users/"+id)
}

// Drivers returns the delivery drivers available for assignment.
func (s *UsersService) Drivers(ctx context.Context) ([]entity.UserProfile, error) {
	var drivers []entity.UserProfile
	if err := s.c.get(ctx, "/users/drivers", nil, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

package api

import (
	"context"

	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
)

// AuthService covers the /auth endpoint group.
type AuthService struct {
	c *Client
}

// RegisterRequest is the payload of account creation.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Password  string `json:"password"`
}

// ProfileUpdate carries editable profile fields.
type ProfileUpdate struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// credentialGrant is the login/register response payload.
type credentialGrant struct {
	User         entity.UserProfile `json:"user"`
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken"`
}

// Login exchanges credentials. On success the issued token pair is persisted
// to the client's token store before returning.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.UserProfile, error) {
	var grant credentialGrant
	body := map[string]string{"email": email, "password": password}
	if err := s.c.post(ctx, "/auth/login", body, &grant); err != nil {
		return nil, err
	}
	if err := s.c.storeCredentials(TokenPair{AccessToken: grant.AccessToken, RefreshToken: grant.RefreshToken}); err != nil {
		return nil, err
	}
	return &grant.User, nil
}

// Register creates an account; same credential contract as Login.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*entity.UserProfile, error) {
	var grant credentialGrant
	if err := s.c.post(ctx, "/auth/register", req, &grant); err != nil {
		return nil, err
	}
	if err := s.c.storeCredentials(TokenPair{AccessToken: grant.AccessToken, RefreshToken: grant.RefreshToken}); err != nil {
		return nil, err
	}
	return &grant.User, nil
}

// Logout notifies the server. It does not touch the stored credentials;
// callers clear those regardless of this call's outcome.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.post(ctx, "/auth/logout", nil, nil)
}

// Profile fetches the authenticated user.
func (s *AuthService) Profile(ctx context.Context) (*entity.UserProfile, error) {
	var user entity.UserProfile
	if err := s.c.get(ctx, "/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile persists profile edits and returns the updated user.
func (s *AuthService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*entity.UserProfile, error) {
	var user entity.UserProfile
	if err := s.c.put(ctx, "/auth/profile", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword rotates the account password.
func (s *AuthService) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return s.c.put(ctx, "/auth/change-password", body, nil)
}

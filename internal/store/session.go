package store

import (
	"context"
	"errors"
	"sync"

	"github.com/Hamza99-sudo/wondershop-client/internal/api"
	"github.com/Hamza99-sudo/wondershop-client/internal/domain"
	"github.com/Hamza99-sudo/wondershop-client/internal/domain/entity"
	"github.com/Hamza99-sudo/wondershop-client/pkg/logger"
)

const sessionKey = "session"

// Result is what network-calling store operations hand back to the view
// layer: a flag plus a user-facing message on failure. They never propagate
// raw errors.
type Result struct {
	Success bool
	Message string
}

func ok() Result { return Result{Success: true} }

// failure translates an error into a Result, preferring the server's own
// message when one came back.
func failure(err error, fallback string) Result {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return Result{Message: apiErr.Message}
	}
	return Result{Message: fallback}
}

// AuthAPI is the slice of the API client the session store needs.
// *api.AuthService satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*entity.UserProfile, error)
	Register(ctx context.Context, req api.RegisterRequest) (*entity.UserProfile, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*entity.UserProfile, error)
	ChangePassword(ctx context.Context, current, next string) error
}

// CredentialKeeper is the credential side of the API client the session store
// needs. *api.Client satisfies it.
type CredentialKeeper interface {
	HasCredentials() bool
	ClearCredentials()
}

// sessionState is the persisted shape of the session.
type sessionState struct {
	User            *entity.UserProfile `json:"user"`
	IsAuthenticated bool                `json:"isAuthenticated"`
}

// SessionStore is the single source of truth for who the current actor is.
// Invariant: authenticated iff user is present.
type SessionStore struct {
	auth    AuthAPI
	creds   CredentialKeeper
	storage Storage
	log     *logger.Logger

	mu    sync.Mutex
	state sessionState
}

// NewSessionStore builds the store and restores the persisted session, if any.
func NewSessionStore(auth AuthAPI, creds CredentialKeeper, storage Storage, log *logger.Logger) *SessionStore {
	if log == nil {
		log = logger.Nop()
	}
	s := &SessionStore{auth: auth, creds: creds, storage: storage, log: log}
	if _, err := storage.Load(sessionKey, &s.state); err != nil {
		log.Warn().Err(err).Msg("restoring session")
		s.state = sessionState{}
	}
	// Repair a persisted state that violates the invariant.
	s.state.IsAuthenticated = s.state.User != nil
	return s
}

func (s *SessionStore) persistLocked() {
	if err := s.storage.Save(sessionKey, s.state); err != nil {
		s.log.Warn().Err(err).Msg("persisting session")
	}
}

func (s *SessionStore) setUserLocked(user *entity.UserProfile) {
	s.state.User = user
	s.state.IsAuthenticated = user != nil
	s.persistLocked()
}

// Login exchanges credentials and stores the authenticated user. The API
// client persists the issued token pair as part of the exchange.
func (s *SessionStore) Login(ctx context.Context, email, password string) Result {
	user, err := s.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return failure(err, "Invalid email or password")
		}
		return failure(err, "Login failed. Please try again.")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setUserLocked(user)
	s.log.Info().Str("user", user.Email).Msg("logged in")
	return ok()
}

// Register creates an account; same contract as Login.
func (s *SessionStore) Register(ctx context.Context, req api.RegisterRequest) Result {
	user, err := s.auth.Register(ctx, req)
	if err != nil {
		return failure(err, "Registration failed. Please try again.")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setUserLocked(user)
	return ok()
}

// Logout notifies the server best-effort, then clears credentials and the
// in-memory user. It always succeeds locally; a failed server call only logs.
func (s *SessionStore) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Debug().Err(err).Msg("server logout failed, clearing locally anyway")
	}
	s.creds.ClearCredentials()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setUserLocked(nil)
}

// FetchProfile re-fetches the user from the server. An unauthorized response
// forces a logout: a stale token must not leave a half-authenticated session
// behind.
func (s *SessionStore) FetchProfile(ctx context.Context) error {
	user, err := s.auth.Profile(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrSessionExpired) {
			s.Logout(ctx)
		}
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setUserLocked(user)
	return nil
}

// CheckAuth is the idempotent startup bootstrap: when credentials are stored
// but no user is loaded, fetch the profile.
func (s *SessionStore) CheckAuth(ctx context.Context) {
	s.mu.Lock()
	hasUser := s.state.User != nil
	s.mu.Unlock()
	if s.creds.HasCredentials() && !hasUser {
		if err := s.FetchProfile(ctx); err != nil {
			s.log.Debug().Err(err).Msg("startup profile fetch failed")
		}
	}
}

// UpdateProfile persists profile edits. On failure the session is untouched.
func (s *SessionStore) UpdateProfile(ctx context.Context, update api.ProfileUpdate) Result {
	user, err := s.auth.UpdateProfile(ctx, update)
	if err != nil {
		return failure(err, "Could not update profile")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setUserLocked(user)
	return ok()
}

// ChangePassword rotates the account password.
func (s *SessionStore) ChangePassword(ctx context.Context, current, next string) Result {
	if err := s.auth.ChangePassword(ctx, current, next); err != nil {
		return failure(err, "Could not change password")
	}
	return ok()
}

// User returns a copy of the current user, or nil.
func (s *SessionStore) User() *entity.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	user := *s.state.User
	return &user
}

// IsAuthenticated reports whether an actor is signed in.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAuthenticated
}

// HasRole reports whether the current user's role is in the given set.
func (s *SessionStore) HasRole(roles ...entity.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return false
	}
	return s.state.User.Role.In(roles...)
}

// IsAdmin reports whether the current user is an administrator.
func (s *SessionStore) IsAdmin() bool { return s.HasRole(entity.RoleAdmin) }

// IsStaff reports whether the current user may enter the back-office.
func (s *SessionStore) IsStaff() bool { return s.HasRole(entity.StaffRoles()...) }

// IsDriver reports whether the current user is a delivery driver.
func (s *SessionStore) IsDriver() bool { return s.HasRole(entity.RoleDelivery) }

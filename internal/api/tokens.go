package api

import "sync"

// TokenPair is the credential pair issued by the API: a short-lived access
// token sent on each request and a longer-lived refresh token used to mint a
// new access token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenStore persists the credential pair across client restarts.
// Implementations must be safe for use from the client's retry path.
type TokenStore interface {
	// Pair returns the stored credentials; ok is false when none are stored.
	Pair() (pair TokenPair, ok bool)
	// Set replaces the stored credentials.
	Set(pair TokenPair) error
	// Clear removes the stored credentials.
	Clear() error
}

// InMemoryTokenStore keeps the pair in memory only. Used in tests and for
// ephemeral sessions that should not survive a restart.
type InMemoryTokenStore struct {
	mu   sync.Mutex
	pair TokenPair
	set  bool
}

// NewInMemoryTokenStore builds an empty in-memory token store.
func NewInMemoryTokenStore() *InMemoryTokenStore {
	return &InMemoryTokenStore{}
}

func (s *InMemoryTokenStore) Pair() (TokenPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair, s.set
}

func (s *InMemoryTokenStore) Set(pair TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair, s.set = pair, true
	return nil
}

func (s *InMemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair, s.set = TokenPair{}, false
	return nil
}

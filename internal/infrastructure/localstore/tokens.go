package localstore

import (
	"github.com/Hamza99-sudo/wondershop-client/internal/api"
	"github.com/Hamza99-sudo/wondershop-client/pkg/logger"
)

const credentialsKey = "credentials"

// TokenStore is the file-backed api.TokenStore: the credential pair survives
// client restarts, which is what lets CheckAuth restore a session on startup.
type TokenStore struct {
	store *Store
	log   *logger.Logger
}

// NewTokenStore builds a token store over the given state store.
func NewTokenStore(store *Store, log *logger.Logger) *TokenStore {
	if log == nil {
		log = logger.Nop()
	}
	return &TokenStore{store: store, log: log}
}

func (t *TokenStore) Pair() (api.TokenPair, bool) {
	var pair api.TokenPair
	ok, err := t.store.Load(credentialsKey, &pair)
	if err != nil {
		// A corrupt credentials file behaves like a logged-out state.
		t.log.Warn().Err(err).Msg("loading credentials")
		return api.TokenPair{}, false
	}
	if !ok || pair.AccessToken == "" {
		return api.TokenPair{}, false
	}
	return pair, true
}

func (t *TokenStore) Set(pair api.TokenPair) error {
	return t.store.Save(credentialsKey, pair)
}

func (t *TokenStore) Clear() error {
	return t.store.Delete(credentialsKey)
}

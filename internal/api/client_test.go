package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hamza99-sudo/wondershop-client/internal/api"
	"github.com/Hamza99-sudo/wondershop-client/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

// writeEnvelope writes the server's uniform JSON response shape.
func writeEnvelope(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]any{"success": status < 300, "message": message}
	if data != nil {
		body["data"] = data
	}
	_ = json.NewEncoder(w).Encode(body)
}

// signedToken mints a parseable HS256 token expiring at exp. The client only
// reads the exp claim; it never verifies the signature.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func newClient(t *testing.T, srv *httptest.Server, tokens api.TokenStore, opts ...func(*api.Options)) *api.Client {
	t.Helper()
	o := api.Options{BaseURL: srv.URL + "/api", Timeout: 5 * time.Second, Tokens: tokens}
	for _, apply := range opts {
		apply(&o)
	}
	return api.New(o)
}

// ──────────────────────────────────────────────────────────────────────────────
// Request pipeline
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestCarriesBearerAndRequestID(t *testing.T) {
	tokens := api.NewInMemoryTokenStore()
	require.NoError(t, tokens.Set(api.TokenPair{AccessToken: "acc-1", RefreshToken: "ref-1"}))

	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		writeEnvelope(w, http.StatusOK, "", []any{})
	}))
	defer srv.Close()

	_, err := newClient(t, srv, tokens).Categories.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer acc-1", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestErrorMapsOntoDomainSentinels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, "Produit introuvable", nil)
	}))
	defer srv.Close()

	_, err := newClient(t, srv, api.NewInMemoryTokenStore()).Products.Get(context.Background(), "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Produit introuvable", apiErr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Credential refresh
// ──────────────────────────────────────────────────────────────────────────────

func Test401RefreshesOnceThenRetriesWithNewToken(t *testing.T) {
	tokens := api.NewInMemoryTokenStore()
	require.NoError(t, tokens.Set(api.TokenPair{AccessToken: "stale", RefreshToken: "ref-1"}))

	var refreshCalls, productCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ref-1", body["refreshToken"])
		assert.Empty(t, r.Header.Get("Authorization"), "refresh call carries no bearer")
		writeEnvelope(w, http.StatusOK, "", api.TokenPair{AccessToken: "fresh", RefreshToken: "ref-2"})
	})
	mux.HandleFunc("/api/products/p1", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&productCalls, 1)
		if r.Header.Get("Authorization") != "Bearer fresh" {
			writeEnvelope(w, http.StatusUnauthorized, "Token expired", nil)
			return
		}
		writeEnvelope(w, http.StatusOK, "", map[string]string{"id": "p1", "name": "Boubou"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	product, err := newClient(t, srv, tokens).Products.Get(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "Boubou", product.Name)
	assert.EqualValues(t, 1, refreshCalls)
	assert.EqualValues(t, 2, productCalls, "original request re-issued exactly once")

	pair, ok := tokens.Pair()
	require.True(t, ok)
	assert.Equal(t, "fresh", pair.AccessToken)
	assert.Equal(t, "ref-2", pair.RefreshToken, "rotated refresh token persisted")
}

func TestRefreshFailureClearsCredentialsAndNotifiesOnce(t *testing.T) {
	tokens := api.NewInMemoryTokenStore()
	require.NoError(t, tokens.Set(api.TokenPair{AccessToken: "stale", RefreshToken: "dead"}))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "Refresh token revoked", nil)
	})
	mux.HandleFunc("/api/orders/my-orders", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "Token expired", nil)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var expired int32
	client := newClient(t, srv, tokens, func(o *api.Options) {
		o.OnSessionExpired = func() { atomic.AddInt32(&expired, 1) }
	})

	_, err := client.Orders.MyOrders(context.Background(), api.ListParams{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	_, ok := tokens.Pair()
	assert.False(t, ok, "credentials cleared after irrecoverable refresh failure")
	assert.EqualValues(t, 1, expired)
	assert.False(t, client.HasCredentials())
}

// Two requests hitting a 401 at the same time must produce exactly one
// refresh call; the loser reuses the winner's rotated pair.
func TestConcurrent401sAreSerializedIntoOneRefresh(t *testing.T) {
	tokens := api.NewInMemoryTokenStore()
	require.NoError(t, tokens.Set(api.TokenPair{AccessToken: "stale", RefreshToken: "ref-1"}))

	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		time.Sleep(50 * time.Millisecond) // widen the race window
		writeEnvelope(w, http.StatusOK, "", api.TokenPair{AccessToken: "fresh", RefreshToken: "ref-2"})
	})
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh" {
			writeEnvelope(w, http.StatusUnauthorized, "Token expired", nil)
			return
		}
		writeEnvelope(w, http.StatusOK, "", []map[string]string{{"id": "c1", "name": "Tissus"}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newClient(t, srv, tokens)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.Categories.List(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, fmt.Sprintf("worker %d", i))
	}
	assert.EqualValues(t, 1, refreshCalls, "duplicate refresh calls would rotate the pair twice")
}

func TestProactiveRefreshBeforeExpiry(t *testing.T) {
	tokens := api.NewInMemoryTokenStore()

	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		writeEnvelope(w, http.StatusOK, "", api.TokenPair{AccessToken: "fresh", RefreshToken: "ref-2"})
	})
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer fresh", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, "", []any{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// Token expires in 5s, skew is 30s: the client refreshes before calling.
	almostExpired := signedToken(t, time.Now().Add(5*time.Second))
	require.NoError(t, tokens.Set(api.TokenPair{AccessToken: almostExpired, RefreshToken: "ref-1"}))

	client := newClient(t, srv, tokens, func(o *api.Options) { o.RefreshSkew = 30 * time.Second })

	_, err := client.Categories.List(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 1, refreshCalls)
}

func TestHealthyTokenIsNotProactivelyRefreshed(t *testing.T) {
	tokens := api.NewInMemoryTokenStore()
	healthy := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, tokens.Set(api.TokenPair{AccessToken: healthy, RefreshToken: "ref-1"}))

	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		writeEnvelope(w, http.StatusOK, "", api.TokenPair{})
	})
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "", []any{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newClient(t, srv, tokens, func(o *api.Options) { o.RefreshSkew = 30 * time.Second })

	_, err := client.Categories.List(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 0, refreshCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth service
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginPersistsIssuedCredentialPair(t *testing.T) {
	tokens := api.NewInMemoryTokenStore()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "awa@example.sn", body["email"])
		writeEnvelope(w, http.StatusOK, "", map[string]any{
			"user":         map[string]any{"id": "u1", "email": "awa@example.sn", "role": "CUSTOMER"},
			"accessToken":  "acc-1",
			"refreshToken": "ref-1",
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	user, err := newClient(t, srv, tokens).Auth.Login(context.Background(), "awa@example.sn", "secret")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	pair, ok := tokens.Pair()
	require.True(t, ok)
	assert.Equal(t, "acc-1", pair.AccessToken)
	assert.Equal(t, "ref-1", pair.RefreshToken)
}

func TestLogoutDoesNotTouchStoredCredentials(t *testing.T) {
	tokens := api.NewInMemoryTokenStore()
	require.NoError(t, tokens.Set(api.TokenPair{AccessToken: "acc-1", RefreshToken: "ref-1"}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, "boom", nil)
	}))
	defer srv.Close()

	err := newClient(t, srv, tokens).Auth.Logout(context.Background())

	require.Error(t, err, "the session store decides to ignore this")
	_, ok := tokens.Pair()
	assert.True(t, ok, "clearing is the session store's call, not the transport's")
}

// ──────────────────────────────────────────────────────────────────────────────
// Image URL resolution
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveImageURL(t *testing.T) {
	client := api.New(api.Options{BaseURL: "https://shop.example.sn/api"})

	cases := []struct {
		name, in, want string
	}{
		{"absolute https passes through", "https://cdn.example.sn/img/a.jpg", "https://cdn.example.sn/img/a.jpg"},
		{"absolute http passes through", "http://cdn.example.sn/img/a.jpg", "http://cdn.example.sn/img/a.jpg"},
		{"relative resolves against origin without /api", "/uploads/a.jpg", "https://shop.example.sn/uploads/a.jpg"},
		{"missing leading slash", "uploads/a.jpg", "https://shop.example.sn/uploads/a.jpg"},
		{"empty stays empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, client.ResolveImageURL(tc.in))
		})
	}
}

func TestResolveImageURL_BaseWithoutAPISuffix(t *testing.T) {
	client := api.New(api.Options{BaseURL: "https://shop.example.sn"})
	assert.Equal(t, "https://shop.example.sn/uploads/a.jpg", client.ResolveImageURL("/uploads/a.jpg"))
}

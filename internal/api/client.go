// Package api is the typed HTTP client for the Wondershop platform API.
// It speaks the server's JSON envelope, attaches bearer credentials from a
// TokenStore and transparently refreshes an expired access token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Hamza99-sudo/wondershop-client/internal/domain"
	"github.com/Hamza99-sudo/wondershop-client/pkg/logger"
)

// refreshState is the explicit state of the credential-refresh machine.
// Transitions happen only under Client.refreshMu, so concurrent 401s are
// serialized into a single refresh call.
type refreshState int

const (
	refreshIdle refreshState = iota
	refreshInFlight
	refreshFailed
)

// Client calls the remote Wondershop API. All methods are safe for concurrent
// use; the refresh path is serialized internally.
type Client struct {
	baseURL     string // normalized, no trailing slash
	httpClient  *http.Client
	tokens      TokenStore
	log         *logger.Logger
	refreshSkew time.Duration

	// onSessionExpired is invoked (once per expiry) after a failed refresh has
	// cleared the stored credentials, so the front end can route to login.
	onSessionExpired func()

	refreshMu sync.Mutex
	state     refreshState

	// Service groups, mirroring the server's endpoint layout.
	Auth       *AuthService
	Users      *UsersService
	Categories *CategoriesService
	Products   *ProductsService
	Stock      *StockService
	Orders     *OrdersService
	Deliveries *DeliveriesService
	Dashboard  *DashboardService
	Upload     *UploadService
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenStore
	Logger  *logger.Logger
	// RefreshSkew triggers a proactive refresh when the access token expires
	// within this window. Zero disables proactive refresh; the 401 path still
	// applies.
	RefreshSkew time.Duration
	// OnSessionExpired is called after an irrecoverable refresh failure.
	OnSessionExpired func()
}

// New builds a Client. The base URL should include the /api prefix.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	tokens := opts.Tokens
	if tokens == nil {
		tokens = NewInMemoryTokenStore()
	}
	c := &Client{
		baseURL:          strings.TrimRight(opts.BaseURL, "/"),
		httpClient:       &http.Client{Timeout: timeout},
		tokens:           tokens,
		log:              log,
		refreshSkew:      opts.RefreshSkew,
		onSessionExpired: opts.OnSessionExpired,
	}
	c.Auth = &AuthService{c: c}
	c.Users = &UsersService{c: c}
	c.Categories = &CategoriesService{c: c}
	c.Products = &ProductsService{c: c}
	c.Stock = &StockService{c: c}
	c.Orders = &OrdersService{c: c}
	c.Deliveries = &DeliveriesService{c: c}
	c.Dashboard = &DashboardService{c: c}
	c.Upload = &UploadService{c: c}
	return c
}

// HasCredentials reports whether a credential pair is stored.
func (c *Client) HasCredentials() bool {
	_, ok := c.tokens.Pair()
	return ok
}

// ClearCredentials drops the stored credential pair. Local operation only.
func (c *Client) ClearCredentials() {
	if err := c.tokens.Clear(); err != nil {
		c.log.Warn().Err(err).Msg("clearing credentials")
	}
}

// storeCredentials persists a freshly issued pair and resets the refresh
// machine, so a new login recovers from an earlier expiry.
func (c *Client) storeCredentials(pair TokenPair) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()
	c.state = refreshIdle
	return c.tokens.Set(pair)
}

// Error is a non-2xx API response translated into a Go error. It wraps the
// matching domain sentinel so callers can use errors.Is.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Unwrap maps well-known statuses onto domain sentinels.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	}
	return nil
}

// envelope is the server's uniform JSON response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// get issues an authenticated GET and decodes the envelope data into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do runs one request through the full pipeline: bearer attachment, proactive
// refresh, and a single retry after a 401-triggered refresh.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}
	return c.doPayload(ctx, method, path, query, payload, "application/json", out)
}

// doPayload is the pipeline below do, for callers that build their own body
// (multipart uploads).
func (c *Client) doPayload(ctx context.Context, method, path string, query url.Values, payload []byte, contentType string, out any) error {
	access := c.currentAccessToken(ctx)

	status, data, err := c.send(ctx, method, path, query, payload, contentType, access)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized && access != "" {
		// One retry only: refresh (serialized across requests) and re-issue
		// the original request with the rotated token.
		if err := c.refresh(ctx, access); err != nil {
			return err
		}
		pair, _ := c.tokens.Pair()
		status, data, err = c.send(ctx, method, path, query, payload, contentType, pair.AccessToken)
		if err != nil {
			return err
		}
	}
	return decodeEnvelope(status, data, out)
}

// send performs a single HTTP round trip and returns the raw status and body.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, contentType, access string) (int, []byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("building request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response of %s %s: %w", method, path, err)
	}
	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("api call")
	return resp.StatusCode, data, nil
}

// decodeEnvelope translates a raw response into either out or an *Error.
func decodeEnvelope(status int, data []byte, out any) error {
	var env envelope
	// Tolerate an empty or non-envelope body; the status code still decides.
	if len(data) > 0 {
		_ = json.Unmarshal(data, &env)
	}
	if status < 200 || status >= 300 {
		return &Error{Status: status, Message: env.Message}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decoding response data: %w", err)
	}
	return nil
}

// currentAccessToken returns the access token to attach, refreshing first when
// the token expires within the configured skew.
func (c *Client) currentAccessToken(ctx context.Context) string {
	pair, ok := c.tokens.Pair()
	if !ok || pair.AccessToken == "" {
		return ""
	}
	if c.refreshSkew > 0 {
		if exp, ok := tokenExpiry(pair.AccessToken); ok && time.Until(exp) < c.refreshSkew {
			if err := c.refresh(ctx, pair.AccessToken); err == nil {
				if fresh, ok := c.tokens.Pair(); ok {
					return fresh.AccessToken
				}
			}
		}
	}
	return pair.AccessToken
}

// tokenExpiry reads the unverified exp claim from an access token. The client
// never validates signatures; only the server does.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// refreshResponse is the payload of the refresh endpoint.
type refreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// refresh exchanges the refresh token for a new pair. staleAccess is the
// access token the caller observed failing; when the stored token already
// differs, another request won the race and the result is reused.
func (c *Client) refresh(ctx context.Context, staleAccess string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	pair, ok := c.tokens.Pair()
	if !ok || pair.RefreshToken == "" {
		return c.expireLocked(fmt.Errorf("%w: no refresh token", domain.ErrSessionExpired))
	}
	if pair.AccessToken != staleAccess {
		// Already rotated by a concurrent request.
		return nil
	}

	c.state = refreshInFlight
	c.log.Debug().Msg("refreshing access token")

	body, err := json.Marshal(map[string]string{"refreshToken": pair.RefreshToken})
	if err != nil {
		c.state = refreshIdle
		return fmt.Errorf("encoding refresh request: %w", err)
	}
	// The refresh call itself never carries a bearer token and never retries.
	status, data, err := c.send(ctx, http.MethodPost, "/auth/refresh", nil, body, "application/json", "")
	if err != nil {
		c.state = refreshIdle
		return err
	}
	if status < 200 || status >= 300 {
		return c.expireLocked(fmt.Errorf("%w: refresh rejected with status %d", domain.ErrSessionExpired, status))
	}

	var out refreshResponse
	if err := decodeEnvelope(status, data, &out); err != nil {
		return c.expireLocked(fmt.Errorf("%w: %v", domain.ErrSessionExpired, err))
	}
	if out.AccessToken == "" {
		return c.expireLocked(fmt.Errorf("%w: refresh returned no access token", domain.ErrSessionExpired))
	}
	if err := c.tokens.Set(TokenPair{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}); err != nil {
		c.state = refreshIdle
		return fmt.Errorf("persisting refreshed credentials: %w", err)
	}
	c.state = refreshIdle
	c.log.Info().Msg("access token refreshed")
	return nil
}

// expireLocked clears credentials after an irrecoverable refresh failure and
// notifies the front end. Caller holds refreshMu.
func (c *Client) expireLocked(cause error) error {
	notify := c.state != refreshFailed
	c.state = refreshFailed
	if err := c.tokens.Clear(); err != nil {
		c.log.Warn().Err(err).Msg("clearing credentials after refresh failure")
	}
	c.log.Warn().Err(cause).Msg("session expired")
	if notify && c.onSessionExpired != nil {
		c.onSessionExpired()
	}
	return cause
}

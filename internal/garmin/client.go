// ABOUTME: Authenticated Garmin Connect API client handle.
// ABOUTME: Token-first connect, refresh-on-expiry, one retry per expired call.
package garmin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Options configures a Client.
type Options struct {
	Email    string
	Password string
	TokenDir string
	Domain   string // garmin.com or garmin.cn
	Logger   *slog.Logger

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
	// APIBase and SSOBase override the derived endpoints, mainly for tests.
	APIBase string
	SSOBase string
}

// Client is the process-wide authenticated handle to Garmin Connect.
// All API methods return the upstream payload as opaque JSON.
type Client struct {
	http     *http.Client
	store    *TokenStore
	log      *slog.Logger
	domain   string
	email    string
	password string
	apiBase  string
	ssoBase  string

	mu      sync.RWMutex
	oauth1  *OAuth1Token
	oauth2  *OAuth2Token
	profile *socialProfile

	refresh singleflight.Group
}

// socialProfile carries the two profile fields some endpoints embed in
// their URLs. Everything else in the payload stays opaque.
type socialProfile struct {
	DisplayName string `json:"displayName"`
	ProfileID   int64  `json:"profileId"`
}

// New builds a client. No network traffic happens until Connect.
func New(opts Options) *Client {
	domain := opts.Domain
	if domain == "" {
		domain = "garmin.com"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	apiBase := opts.APIBase
	if apiBase == "" {
		apiBase = "https://connectapi." + domain
	}
	ssoBase := opts.SSOBase
	if ssoBase == "" {
		ssoBase = "https://sso." + domain + "/sso"
	}

	return &Client{
		http:     hc,
		store:    NewTokenStore(opts.TokenDir),
		log:      logger,
		domain:   domain,
		email:    opts.Email,
		password: opts.Password,
		apiBase:  apiBase,
		ssoBase:  ssoBase,
	}
}

// Connect establishes the authenticated session: stored tokens first,
// credential login as the fallback. Tokens are persisted after login so
// later runs skip authentication entirely.
func (c *Client) Connect(ctx context.Context) error {
	t1, t2, err := c.store.Load()
	switch {
	case err == nil:
		c.setTokens(t1, t2)
		c.log.Info("loaded stored tokens", "token_dir", c.store.Dir, "expired", t2.Expired())
		return nil
	case errors.Is(err, ErrNoTokens):
		c.log.Info("no stored tokens, logging in with credentials")
		return c.Login(ctx)
	default:
		return err
	}
}

// Login always authenticates with email+password and persists the
// resulting token pair.
func (c *Client) Login(ctx context.Context) error {
	t1, t2, err := c.login(ctx)
	if err != nil {
		return err
	}
	c.setTokens(t1, t2)
	if err := c.store.Save(t1, t2); err != nil {
		return err
	}
	c.log.Info("authenticated with credentials", "token_dir", c.store.Dir)
	return nil
}

// Logout clears persisted and in-memory tokens.
func (c *Client) Logout() error {
	c.setTokens(nil, nil)
	return c.store.Clear()
}

// Tokens returns the current token pair. Used by the CLI for the base64
// export after login.
func (c *Client) Tokens() (*OAuth1Token, *OAuth2Token) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.oauth1, c.oauth2
}

// TokenStore exposes the on-disk store for CLI commands.
func (c *Client) TokenStore() *TokenStore { return c.store }

func (c *Client) setTokens(t1 *OAuth1Token, t2 *OAuth2Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.oauth1 = t1
	c.oauth2 = t2
}

func (c *Client) currentTokens() (*OAuth1Token, *OAuth2Token) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.oauth1, c.oauth2
}

// refreshOAuth2 mints a new bearer token from the stored OAuth1 token.
// Concurrent callers share a single exchange via singleflight, so an
// expired token triggers exactly one re-authentication.
func (c *Client) refreshOAuth2(ctx context.Context) error {
	_, err, _ := c.refresh.Do("oauth2", func() (any, error) {
		t1, _ := c.currentTokens()
		if t1 == nil {
			return nil, &AuthError{Reason: "not connected"}
		}
		t2, err := c.exchange(ctx, t1)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.oauth2 = t2
		c.mu.Unlock()
		if err := c.store.Save(t1, t2); err != nil {
			c.log.Warn("failed to persist refreshed token", "error", err)
		}
		c.log.Debug("refreshed oauth2 token")
		return nil, nil
	})
	return err
}

// getJSON issues an authenticated GET and returns the raw payload.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// postJSON issues an authenticated POST with a JSON body.
func (c *Client) postJSON(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// putJSON issues an authenticated PUT with a JSON body.
func (c *Client) putJSON(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// do performs one API call. An expired or rejected bearer is refreshed
// once and the original request retried once; a second rejection is an
// authentication error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	u := c.apiBase + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	for attempt := 0; ; attempt++ {
		_, t2 := c.currentTokens()
		if t2 == nil {
			return nil, &AuthError{Reason: "not connected"}
		}
		if t2.Expired() && attempt == 0 {
			if err := c.refreshOAuth2(ctx); err != nil {
				return nil, err
			}
			_, t2 = c.currentTokens()
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", t2.Authorization())
		req.Header.Set("User-Agent", mobileUserAgent)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("garmin api: %s: %w", path, err)
		}
		data, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("garmin api: read %s: %w", path, err)
		}

		switch {
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == 419:
			if attempt > 0 {
				return nil, &AuthError{Reason: fmt.Sprintf("token rejected for %s after refresh", path)}
			}
			c.log.Debug("bearer rejected, refreshing", "path", path, "status", resp.StatusCode)
			if err := c.refreshOAuth2(ctx); err != nil {
				return nil, err
			}
			continue
		case resp.StatusCode >= 400:
			return nil, &APIError{StatusCode: resp.StatusCode, Path: path}
		}

		if len(data) == 0 {
			return json.RawMessage(`{}`), nil
		}
		return json.RawMessage(data), nil
	}
}

// ensureProfile lazily fetches and caches the social profile; several
// endpoints embed the display name or profile ID in their URL.
func (c *Client) ensureProfile(ctx context.Context) (*socialProfile, error) {
	c.mu.RLock()
	p := c.profile
	c.mu.RUnlock()
	if p != nil {
		return p, nil
	}

	raw, err := c.getJSON(ctx, "/userprofile-service/socialProfile", nil)
	if err != nil {
		return nil, err
	}
	var sp socialProfile
	if err := json.Unmarshal(raw, &sp); err != nil {
		return nil, fmt.Errorf("parse social profile: %w", err)
	}
	if sp.DisplayName == "" {
		return nil, fmt.Errorf("social profile missing display name")
	}

	c.mu.Lock()
	c.profile = &sp
	c.mu.Unlock()
	return &sp, nil
}

// ABOUTME: Credential login against Garmin SSO and the OAuth token exchange.
// ABOUTME: Ports the upstream client library's ticket flow: embed, signin, preauthorize, exchange.
package garmin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	mobileUserAgent  = "com.garmin.android.apps.connectmobile"
)

var (
	csrfRe   = regexp.MustCompile(`name="_csrf"\s+value="(.+?)"`)
	ticketRe = regexp.MustCompile(`embed\?ticket=([^"]+)"`)
	titleRe  = regexp.MustCompile(`<title>(.+?)</title>`)
)

// login performs the full credential flow and returns a fresh token pair.
// It uses its own cookie-aware HTTP client; SSO is stateful across steps.
func (c *Client) login(ctx context.Context) (*OAuth1Token, *OAuth2Token, error) {
	if c.email == "" || c.password == "" {
		return nil, nil, &AuthError{Reason: "GARMIN_EMAIL and GARMIN_PASSWORD must be set"}
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("cookie jar: %w", err)
	}
	sso := &http.Client{Jar: jar, Timeout: 30 * time.Second}

	embedURL := c.ssoBase + "/embed"
	ssoHost := strings.TrimSuffix(c.ssoBase, "/sso")

	embedParams := url.Values{
		"id":          {"gauth-widget"},
		"embedWidget": {"true"},
		"gauthHost":   {c.ssoBase},
	}
	if _, err := c.ssoGet(ctx, sso, embedURL, embedParams); err != nil {
		return nil, nil, &AuthError{Reason: "sso embed request failed", Err: err}
	}

	signinParams := url.Values{
		"id":                              {"gauth-widget"},
		"embedWidget":                     {"true"},
		"gauthHost":                       {embedURL},
		"service":                         {embedURL},
		"source":                          {embedURL},
		"redirectAfterAccountLoginUrl":    {embedURL},
		"redirectAfterAccountCreationUrl": {embedURL},
	}
	signinURL := c.ssoBase + "/signin"

	page, err := c.ssoGet(ctx, sso, signinURL, signinParams)
	if err != nil {
		return nil, nil, &AuthError{Reason: "sso signin page failed", Err: err}
	}
	csrf := csrfRe.FindStringSubmatch(page)
	if csrf == nil {
		return nil, nil, &AuthError{Reason: "csrf token not found in signin page"}
	}

	form := url.Values{
		"username": {c.email},
		"password": {c.password},
		"embed":    {"true"},
		"_csrf":    {csrf[1]},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		signinURL+"?"+signinParams.Encode(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Referer", signinURL)
	req.Header.Set("Origin", ssoHost)

	resp, err := sso.Do(req)
	if err != nil {
		return nil, nil, &AuthError{Reason: "sso signin request failed", Err: err}
	}
	body, err := readBody(resp)
	if err != nil {
		return nil, nil, &AuthError{Reason: "sso signin response unreadable", Err: err}
	}

	if title := titleRe.FindStringSubmatch(body); title != nil {
		switch {
		case strings.Contains(title[1], "MFA"):
			return nil, nil, &AuthError{Reason: "multi-factor authentication is enabled on this account; log in without MFA or provide a token directory"}
		case strings.Contains(title[1], "Locked"):
			return nil, nil, &AuthError{Reason: "account is temporarily locked"}
		}
	}

	ticket := ticketRe.FindStringSubmatch(body)
	if ticket == nil {
		return nil, nil, &AuthError{Reason: "invalid credentials"}
	}

	t1, err := c.preauthorize(ctx, sso, ticket[1], embedURL)
	if err != nil {
		return nil, nil, err
	}
	t1.Domain = c.domain

	t2, err := c.exchange(ctx, t1)
	if err != nil {
		return nil, nil, err
	}
	return t1, t2, nil
}

// preauthorize trades the SSO ticket for the long-lived OAuth1 token.
func (c *Client) preauthorize(ctx context.Context, hc *http.Client, ticket, loginURL string) (*OAuth1Token, error) {
	q := url.Values{
		"ticket":             {ticket},
		"login-url":          {loginURL},
		"accepts-mfa-tokens": {"true"},
	}
	u := c.apiBase + "/oauth-service/oauth/preauthorized?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	auth, err := oauth1Header(http.MethodGet, u, "", "")
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", auth)
	req.Header.Set("User-Agent", mobileUserAgent)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, &AuthError{Reason: "preauthorization request failed", Err: err}
	}
	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &AuthError{Reason: fmt.Sprintf("preauthorization returned status %d", resp.StatusCode)}
	}

	// The response body is form-encoded: oauth_token=...&oauth_token_secret=...
	vals, err := url.ParseQuery(body)
	if err != nil {
		return nil, &AuthError{Reason: "malformed preauthorization response", Err: err}
	}
	t1 := &OAuth1Token{
		OAuthToken:       vals.Get("oauth_token"),
		OAuthTokenSecret: vals.Get("oauth_token_secret"),
		MFAToken:         vals.Get("mfa_token"),
	}
	if t1.OAuthToken == "" || t1.OAuthTokenSecret == "" {
		return nil, &AuthError{Reason: "preauthorization response missing token"}
	}
	return t1, nil
}

// exchange mints a fresh OAuth2 bearer from the OAuth1 token. Called at
// login and again whenever the bearer expires.
func (c *Client) exchange(ctx context.Context, t1 *OAuth1Token) (*OAuth2Token, error) {
	u := c.apiBase + "/oauth-service/oauth/exchange/user/2.0"

	form := url.Values{}
	if t1.MFAToken != "" {
		form.Set("mfa_token", t1.MFAToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	auth, err := oauth1Header(http.MethodPost, u, t1.OAuthToken, t1.OAuthTokenSecret)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", auth)
	req.Header.Set("User-Agent", mobileUserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &AuthError{Reason: "token exchange request failed", Err: err}
	}
	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &AuthError{Reason: fmt.Sprintf("token exchange returned status %d", resp.StatusCode)}
	}

	t2 := &OAuth2Token{}
	if err := json.Unmarshal([]byte(body), t2); err != nil {
		return nil, &AuthError{Reason: "malformed token exchange response", Err: err}
	}
	t2.stamp(time.Now())
	return t2, nil
}

func (c *Client) ssoGet(ctx context.Context, hc *http.Client, rawURL string, params url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := hc.Do(req)
	if err != nil {
		return "", err
	}
	body, err := readBody(resp)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s returned status %d", rawURL, resp.StatusCode)
	}
	return body, nil
}

func readBody(resp *http.Response) (string, error) {
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

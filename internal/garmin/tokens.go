// ABOUTME: OAuth token types for Garmin Connect authentication.
// ABOUTME: OAuth1 is the long-lived credential, OAuth2 the short-lived bearer.
package garmin

import (
	"strings"
	"time"
)

// OAuth1Token is the long-lived token issued after SSO login. It is valid
// for roughly a year and is only used to mint OAuth2 bearer tokens.
type OAuth1Token struct {
	OAuthToken       string `json:"oauth_token"`
	OAuthTokenSecret string `json:"oauth_token_secret"`
	MFAToken         string `json:"mfa_token,omitempty"`
	Domain           string `json:"domain,omitempty"`
}

// OAuth2Token is the short-lived bearer token sent on every API request.
type OAuth2Token struct {
	Scope                 string `json:"scope"`
	JTI                   string `json:"jti"`
	TokenType             string `json:"token_type"`
	AccessToken           string `json:"access_token"`
	RefreshToken          string `json:"refresh_token"`
	ExpiresIn             int64  `json:"expires_in"`
	ExpiresAt             int64  `json:"expires_at"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in,omitempty"`
	RefreshTokenExpiresAt int64  `json:"refresh_token_expires_at,omitempty"`
}

// Expired reports whether the access token has passed its expiry time.
func (t *OAuth2Token) Expired() bool {
	return t == nil || time.Now().Unix() >= t.ExpiresAt
}

// Authorization returns the value for the Authorization request header.
// The exchange endpoint reports the token type in lower case.
func (t *OAuth2Token) Authorization() string {
	tt := t.TokenType
	if tt == "" {
		tt = "Bearer"
	}
	return strings.ToUpper(tt[:1]) + tt[1:] + " " + t.AccessToken
}

// stamp fills in absolute expiry times from the relative ones the
// exchange endpoint returns.
func (t *OAuth2Token) stamp(now time.Time) {
	t.ExpiresAt = now.Unix() + t.ExpiresIn
	if t.RefreshTokenExpiresIn > 0 {
		t.RefreshTokenExpiresAt = now.Unix() + t.RefreshTokenExpiresIn
	}
	if t.TokenType == "" {
		t.TokenType = "Bearer"
	}
}

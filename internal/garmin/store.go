// ABOUTME: On-disk persistence for OAuth tokens.
// ABOUTME: Stores oauth1_token.json and oauth2_token.json in the token dir.
package garmin

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	oauth1File = "oauth1_token.json"
	oauth2File = "oauth2_token.json"
)

// ErrNoTokens indicates the token store holds no usable token pair.
var ErrNoTokens = errors.New("no stored tokens")

// TokenStore persists the OAuth token pair across restarts so the server
// can come up without re-authenticating.
type TokenStore struct {
	Dir string
}

// NewTokenStore returns a store rooted at dir. The directory is created
// lazily on the first Save.
func NewTokenStore(dir string) *TokenStore {
	return &TokenStore{Dir: dir}
}

// Load reads both tokens from disk. Returns ErrNoTokens when either file
// is missing.
func (s *TokenStore) Load() (*OAuth1Token, *OAuth2Token, error) {
	var t1 OAuth1Token
	if err := readJSON(filepath.Join(s.Dir, oauth1File), &t1); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, ErrNoTokens
		}
		return nil, nil, fmt.Errorf("load oauth1 token: %w", err)
	}

	var t2 OAuth2Token
	if err := readJSON(filepath.Join(s.Dir, oauth2File), &t2); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, ErrNoTokens
		}
		return nil, nil, fmt.Errorf("load oauth2 token: %w", err)
	}

	return &t1, &t2, nil
}

// Save writes both tokens to disk with owner-only permissions.
func (s *TokenStore) Save(t1 *OAuth1Token, t2 *OAuth2Token) error {
	if err := os.MkdirAll(s.Dir, 0700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := writeJSON(filepath.Join(s.Dir, oauth1File), t1); err != nil {
		return fmt.Errorf("save oauth1 token: %w", err)
	}
	if err := writeJSON(filepath.Join(s.Dir, oauth2File), t2); err != nil {
		return fmt.Errorf("save oauth2 token: %w", err)
	}
	return nil
}

// Clear removes any persisted tokens. Missing files are not an error.
func (s *TokenStore) Clear() error {
	for _, name := range []string{oauth1File, oauth2File} {
		if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// tokenBundle is the serialized form used for the base64 export.
type tokenBundle struct {
	OAuth1 *OAuth1Token `json:"oauth1_token"`
	OAuth2 *OAuth2Token `json:"oauth2_token"`
}

// ExportBase64 writes both tokens as a single base64-encoded JSON bundle,
// matching the original server's GARMINTOKENS_BASE64 file.
func (s *TokenStore) ExportBase64(path string, t1 *OAuth1Token, t2 *OAuth2Token) error {
	data, err := json.Marshal(tokenBundle{OAuth1: t1, OAuth2: t2})
	if err != nil {
		return err
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	return os.WriteFile(path, []byte(encoded), 0600)
}

// ImportBase64 decodes a bundle produced by ExportBase64.
func ImportBase64(encoded string) (*OAuth1Token, *OAuth2Token, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, nil, fmt.Errorf("decode token bundle: %w", err)
	}
	var b tokenBundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, nil, fmt.Errorf("parse token bundle: %w", err)
	}
	if b.OAuth1 == nil || b.OAuth2 == nil {
		return nil, nil, ErrNoTokens
	}
	return b.OAuth1, b.OAuth2, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Package auth persists the Plane API key between invocations. The OS
// keyring is preferred; a plain-text credentials file under the settings
// home is the fallback for headless environments.
package auth

import (
	"path/filepath"
)

// Source names where a stored API key came from.
type Source string

const (
	SourceNone      Source = "none"
	SourceKeyring   Source = "keyring"
	SourcePlainText Source = "plaintext"
)

// Store reads and writes the saved API key.
type Store struct {
	credentialsPath string
}

// NewStore returns a Store whose plain-text fallback lives under
// <home>/config/credentials.json, next to the settings files.
func NewStore(homeDir string) *Store {
	return &Store{
		credentialsPath: filepath.Join(homeDir, "config", "credentials.json"),
	}
}

// Save stores the API key and reports where it ended up. The keyring is
// tried first; when it is unavailable the plain-text file is used.
func (s *Store) Save(apiKey string) (Source, error) {
	if err := keyringSet(apiKey); err == nil {
		return SourceKeyring, nil
	}
	if err := plainTextSet(s.credentialsPath, apiKey); err != nil {
		return SourceNone, err
	}
	return SourcePlainText, nil
}

// APIKey returns the stored key and its source. A missing key is not an
// error; it is reported as SourceNone with an empty key.
func (s *Store) APIKey() (string, Source, error) {
	key, err := keyringGet()
	if err == nil && key != "" {
		return key, SourceKeyring, nil
	}

	// Keyring missing the entry or unavailable (headless session): fall
	// back to the credentials file.
	key, err = plainTextGet(s.credentialsPath)
	if err != nil {
		return "", SourceNone, err
	}
	if key != "" {
		return key, SourcePlainText, nil
	}
	return "", SourceNone, nil
}

// Delete removes the stored key from every location it may live in. Keyring
// failures are ignored so logout still works where the keyring never did.
func (s *Store) Delete() error {
	_ = keyringDelete()
	return plainTextDelete(s.credentialsPath)
}

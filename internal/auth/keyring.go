package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "plane-cli"
	keyringKey     = "api_key"
)

var errKeyNotFound = errors.New("api key not found")

func keyringSet(apiKey string) error {
	return keyring.Set(keyringService, keyringKey, apiKey)
}

func keyringGet() (string, error) {
	key, err := keyring.Get(keyringService, keyringKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", errKeyNotFound
		}
		return "", err
	}
	return key, nil
}

func keyringDelete() error {
	err := keyring.Delete(keyringService, keyringKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

package core

import (
	"errors"
	"fmt"

	"overlay/internal/ports"
)

const tokenKeyName = "github-token"

var ErrTokenNotStored = errors.New("no token stored")

// TokenStore keeps the GitHub access token in the operating system keyring.
type TokenStore struct {
	keyring ports.Keyring
}

func ProvideTokenStore(keyring ports.Keyring) *TokenStore {
	return &TokenStore{keyring: keyring}
}

// Lookup returns the stored token, or ErrTokenNotStored.
func (s *TokenStore) Lookup() (string, error) {
	exists, err := s.keyring.HasKey(tokenKeyName)
	if err != nil {
		return "", fmt.Errorf("failed to access keyring: %w", err)
	}
	if !exists {
		return "", ErrTokenNotStored
	}
	token, err := s.keyring.GetKey(tokenKeyName)
	if err != nil {
		return "", fmt.Errorf("failed to read token from keyring: %w", err)
	}
	return token, nil
}

func (s *TokenStore) Store(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if err := s.keyring.SetKey(tokenKeyName, token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

func (s *TokenStore) Delete() error {
	exists, err := s.keyring.HasKey(tokenKeyName)
	if err != nil {
		return fmt.Errorf("failed to access keyring: %w", err)
	}
	if !exists {
		return ErrTokenNotStored
	}
	if err := s.keyring.DeleteKey(tokenKeyName); err != nil {
		return fmt.Errorf("failed to delete token from keyring: %w", err)
	}
	return nil
}

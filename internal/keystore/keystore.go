// Package keystore adapts the platform credential store (macOS
// Keychain, Windows Credential Manager, Linux Secret Service) behind a
// narrow interface. A missing entry and a broken backend are distinct,
// both recoverable: the caller decides whether to re-attempt later.
package keystore

import (
	"errors"
	"fmt"
)

// Client abstracts platform keyring operations so the backend can be
// faked in tests.
type Client interface {
	// Get retrieves the secret stored under service/account.
	Get(service, account string) (string, error)

	// Set stores a secret under service/account.
	Set(service, account, value string) error

	// Delete removes the entry stored under service/account.
	Delete(service, account string) error
}

// ErrNotFound is returned when the store has no entry for the
// requested service/account pair. This is the expected state before
// the user has run `fecops key set`.
var ErrNotFound = errors.New("no keyring entry")

// KeyringError wraps platform keyring backend failures with context.
// It covers the "store itself is unusable" case: no Secret Service
// provider on the host, locked and refused, unsupported platform.
type KeyringError struct {
	Op      string // Operation: "get", "set", "delete"
	Service string
	Account string
	Err     error
}

func (e *KeyringError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("keyring %s error for %s/%s: %v", e.Op, e.Service, e.Account, e.Err)
	}
	return fmt.Sprintf("keyring %s error for %s/%s", e.Op, e.Service, e.Account)
}

func (e *KeyringError) Unwrap() error {
	return e.Err
}

// Store reads and writes one fixed service/account entry in the
// platform credential store.
type Store struct {
	service string
	account string
	client  Client
}

// New creates a store bound to the given service/account pair, backed
// by the platform keyring.
func New(service, account string) *Store {
	return NewWithClient(service, account, systemClient{})
}

// NewWithClient creates a store with a custom keyring client. This is
// primarily for testing, allowing the platform backend to be faked.
func NewWithClient(service, account string, client Client) *Store {
	return &Store{
		service: service,
		account: account,
		client:  client,
	}
}

// Service returns the keyring service name this store is bound to.
func (s *Store) Service() string { return s.service }

// Account returns the keyring account name this store is bound to.
func (s *Store) Account() string { return s.account }

// Fetch retrieves the secret. Returns ErrNotFound when the vault has
// no entry, or a *KeyringError when the backend itself failed. The
// value is never logged. The platform may prompt the user to unlock
// the vault, so this call can block on user interaction.
func (s *Store) Fetch() (string, error) {
	value, err := s.client.Get(s.service, s.account)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", fmt.Errorf("%w for %s/%s", ErrNotFound, s.service, s.account)
		}
		return "", &KeyringError{Op: "get", Service: s.service, Account: s.account, Err: err}
	}
	if value == "" {
		// An empty entry is as unusable as a missing one.
		return "", fmt.Errorf("%w for %s/%s (entry is empty)", ErrNotFound, s.service, s.account)
	}
	return value, nil
}

// Put stores the secret, overwriting any existing entry.
func (s *Store) Put(value string) error {
	if value == "" {
		return fmt.Errorf("refusing to store an empty key")
	}
	if err := s.client.Set(s.service, s.account, value); err != nil {
		return &KeyringError{Op: "set", Service: s.service, Account: s.account, Err: err}
	}
	return nil
}

// Delete removes the entry. Deleting a missing entry returns
// ErrNotFound so callers can report it distinctly.
func (s *Store) Delete() error {
	if err := s.client.Delete(s.service, s.account); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w for %s/%s", ErrNotFound, s.service, s.account)
		}
		return &KeyringError{Op: "delete", Service: s.service, Account: s.account, Err: err}
	}
	return nil
}

// Package fakes provides test doubles shared across package tests.
package fakes

import (
	"errors"
	"sync"

	"github.com/systmms/fecops/internal/keystore"
)

// ErrFakeBackend simulates a broken keyring backend (no Secret Service
// provider, locked vault refusing access).
var ErrFakeBackend = errors.New("secret service unavailable")

// FakeKeyringClient is a test double for keystore.Client. All methods
// are safe for concurrent use so resolver concurrency tests can hammer
// it from multiple goroutines.
type FakeKeyringClient struct {
	mu sync.Mutex

	// Secrets maps service -> account -> value.
	Secrets map[string]map[string]string

	// GetErr is returned by Get if set, overriding the Secrets lookup.
	GetErr error

	// GetCalls counts Get invocations, for memoization assertions.
	GetCalls int
}

// NewFakeKeyringClient creates an empty fake keyring.
func NewFakeKeyringClient() *FakeKeyringClient {
	return &FakeKeyringClient{Secrets: make(map[string]map[string]string)}
}

// SetSecret seeds an entry in the fake keyring.
func (f *FakeKeyringClient) SetSecret(service, account, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Secrets == nil {
		f.Secrets = make(map[string]map[string]string)
	}
	if f.Secrets[service] == nil {
		f.Secrets[service] = make(map[string]string)
	}
	f.Secrets[service][account] = value
}

// SetGetErr makes subsequent Get calls fail with err.
func (f *FakeKeyringClient) SetGetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetErr = err
}

// Calls returns how many times Get has been invoked.
func (f *FakeKeyringClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.GetCalls
}

// Get retrieves a secret from the fake keyring.
func (f *FakeKeyringClient) Get(service, account string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetCalls++
	if f.GetErr != nil {
		return "", f.GetErr
	}
	if accounts, ok := f.Secrets[service]; ok {
		if value, ok := accounts[account]; ok {
			return value, nil
		}
	}
	return "", keystore.ErrNotFound
}

// Set stores a secret in the fake keyring.
func (f *FakeKeyringClient) Set(service, account, value string) error {
	f.SetSecret(service, account, value)
	return nil
}

// Delete removes a secret from the fake keyring.
func (f *FakeKeyringClient) Delete(service, account string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if accounts, ok := f.Secrets[service]; ok {
		if _, ok := accounts[account]; ok {
			delete(accounts, account)
			return nil
		}
	}
	return keystore.ErrNotFound
}

var _ keystore.Client = (*FakeKeyringClient)(nil)

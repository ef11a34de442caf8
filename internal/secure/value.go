// Package secure holds the resolved API key in a memguard enclave so
// the plaintext is encrypted at rest in process memory, mlocked against
// swapping, and wiped when opened buffers are destroyed. Callers open
// the value for the duration of one request and destroy the buffer
// immediately after.
package secure

import (
	"errors"
	"sync"

	"github.com/awnumar/memguard"
)

// ErrDestroyed is returned by Open after Destroy has been called.
var ErrDestroyed = errors.New("secure value destroyed")

// Value is an immutable secret held in a protected memory region.
type Value struct {
	enclave *memguard.Enclave
	mu      sync.RWMutex
	// destroyed allows idempotent Destroy() and prevents use after destroy
	destroyed bool
}

// NewValue seals the given bytes into a protected enclave. The input
// slice is wiped by memguard; callers must not reuse it.
func NewValue(data []byte) *Value {
	return &Value{
		enclave: memguard.NewEnclave(data),
	}
}

// Open decrypts the value into a locked buffer. The caller must call
// Destroy() on the returned buffer as soon as the plaintext has been
// used, typically via defer.
func (v *Value) Open() (*memguard.LockedBuffer, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.destroyed {
		return nil, ErrDestroyed
	}
	return v.enclave.Open()
}

// Destroy marks the value as unusable. Idempotent. The encrypted
// enclave contents are safe to leave for garbage collection; call
// memguard.Purge() at process exit for full cleanup.
func (v *Value) Destroy() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.destroyed {
		return
	}
	v.enclave = nil
	v.destroyed = true
}

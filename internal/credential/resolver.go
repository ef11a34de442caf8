// Package credential resolves the FEC API key and owns it for the
// lifetime of the process. The key crosses into this package once, on
// first use, and never leaves it as a value the dispatch layer could
// echo back to the caller: collaborators that need the key receive a
// Source capability, and everything else gets Redact.
package credential

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/systmms/fecops/internal/keystore"
	"github.com/systmms/fecops/internal/logging"
	"github.com/systmms/fecops/internal/redact"
	"github.com/systmms/fecops/internal/secure"
)

// commandTimeout bounds the override key command. A helper that hangs
// (e.g. waiting on a prompt that will never be answered) must not wedge
// the whole invocation.
const commandTimeout = 30 * time.Second

// Source is the capability handed to the query client. It yields the
// key for the duration of one outbound request and nothing more.
type Source interface {
	APIKey(ctx context.Context) (string, error)
}

// UnavailableError reports that no key could be resolved. It is
// user-actionable and safe to show across the trust boundary: the
// reason never embeds key material.
type UnavailableError struct {
	Reason  string
	Service string
	Account string
	Err     error
}

func (e *UnavailableError) Error() string {
	return "FEC API key unavailable: " + e.Reason
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Guidance returns setup instructions naming the configuration steps.
func (e *UnavailableError) Guidance() string {
	return fmt.Sprintf(
		"FEC API key not configured. Store your key in the system keyring under "+
			"service %q and account %q:\n\n"+
			"  fecops key set   (reads the key from stdin)\n\n"+
			"or configure an external helper via FEC_API_KEY_COMMAND. "+
			"Get an API key at https://api.open.fec.gov/developers/.\n\n"+
			"Detail: %s",
		e.Service, e.Account, e.Reason,
	)
}

// Resolver resolves the key lazily and memoizes the first success for
// the process lifetime. An unavailable outcome is never memoized: the
// vault may be unlocked, or the entry added, between invocations.
type Resolver struct {
	store   *keystore.Store
	command string // optional override command, "" to disable
	logger  *logging.Logger
	timeout time.Duration

	mu    sync.Mutex
	value *secure.Value // nil until first successful resolution
}

// New creates a resolver over the given store. command, when non-empty,
// is an external program whose trimmed stdout is the key; it takes
// precedence over the keyring.
func New(store *keystore.Store, command string, logger *logging.Logger) *Resolver {
	return &Resolver{
		store:   store,
		command: command,
		logger:  logger,
		timeout: commandTimeout,
	}
}

// APIKey returns the resolved key, fetching it on first use. The first
// resolution is serialized under a mutex so concurrent invocations
// converge on a single vault fetch; once memoized the value is
// immutable and reads only contend on opening the enclave.
func (r *Resolver) APIKey(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.value != nil {
		return r.open()
	}

	key, err := r.resolve(ctx)
	if err != nil {
		return "", err
	}

	r.value = secure.NewValue([]byte(key))
	r.logger.Debug("FEC API key resolved and memoized: %s", logging.Secret(key))
	return r.open()
}

// Resolved reports whether a key has already been memoized, without
// triggering resolution (and so without any vault-unlock prompt).
func (r *Resolver) Resolved() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value != nil
}

// Redact masks the literal resolved key wherever it appears in text.
// Before any key has been resolved there is nothing to mask and text
// passes through unchanged. This lets boundary layers scrub outbound
// strings without ever holding the key themselves.
func (r *Resolver) Redact(text string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.value == nil {
		return text
	}
	buf, err := r.value.Open()
	if err != nil {
		return text
	}
	defer buf.Destroy()
	return redact.Literal(text, buf.String())
}

// open copies the memoized key out of the enclave. Caller holds r.mu.
func (r *Resolver) open() (string, error) {
	buf, err := r.value.Open()
	if err != nil {
		return "", fmt.Errorf("opening key enclave: %w", err)
	}
	defer buf.Destroy()
	// buf.String() shares the locked memory, which the deferred Destroy
	// unmaps; copy the bytes so the returned string stays valid.
	return string(buf.Bytes()), nil
}

// resolve runs the resolution policy: override command first, then the
// platform keyring. Caller holds r.mu.
func (r *Resolver) resolve(ctx context.Context) (string, error) {
	if r.command != "" {
		return r.runOverride(ctx)
	}

	key, err := r.store.Fetch()
	if err != nil {
		if errors.Is(err, keystore.ErrNotFound) {
			return "", r.unavailable("no key stored in the system keyring", err)
		}
		return "", r.unavailable("keyring backend failed: "+err.Error(), err)
	}
	return key, nil
}

// runOverride executes the configured key command with a bounded
// timeout and returns its trimmed stdout. Stderr is discarded from the
// outcome but surfaced in the failure reason, redacted.
func (r *Resolver) runOverride(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", r.command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("Running key command override")
	if err := cmd.Run(); err != nil {
		reason := "key command failed: " + err.Error()
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			reason += ": " + redact.QueryParam(msg)
		}
		return "", r.unavailable(reason, err)
	}

	key := strings.TrimSpace(stdout.String())
	if key == "" {
		return "", r.unavailable("key command produced no output", nil)
	}
	return key, nil
}

func (r *Resolver) unavailable(reason string, err error) error {
	return &UnavailableError{
		Reason:  reason,
		Service: r.store.Service(),
		Account: r.store.Account(),
		Err:     err,
	}
}

// Package config holds process configuration for fecops. Settings come
// from the environment (with an optional .env file) plus CLI flags;
// there is no config file with secret material in it.
package config

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/systmms/fecops/internal/keystore"
	"github.com/systmms/fecops/internal/logging"
)

// Defaults for the FEC integration. The keyring pair is fixed by
// convention so setup instructions stay copy-pasteable.
const (
	DefaultAPIBase        = "https://api.open.fec.gov/v1"
	DefaultKeyringService = "fec-api"
	DefaultKeyringAccount = "api-key"
)

// Environment variable names read by Load.
const (
	EnvAPIBase        = "FEC_API_BASE"
	EnvKeyCommand     = "FEC_API_KEY_COMMAND"
	EnvKeyringService = "FEC_KEYRING_SERVICE"
	EnvKeyringAccount = "FEC_KEYRING_ACCOUNT"
)

// Config carries resolved settings plus injected collaborators.
type Config struct {
	APIBase        string
	KeyringService string
	KeyringAccount string

	// KeyCommand is an optional external command whose trimmed stdout
	// is the API key. Takes precedence over the keyring when set.
	KeyCommand string

	Logger *logging.Logger

	// Keyring overrides the platform keyring backend. Nil means the
	// real platform store. Set by tests.
	Keyring keystore.Client

	// HTTPClient overrides the FEC API HTTP client. Nil means a
	// default client with the standard timeout. Set by tests.
	HTTPClient *http.Client
}

// Load fills in settings from the environment. A .env file in the
// working directory is honored when present but never required.
func (c *Config) Load() error {
	_ = godotenv.Load()

	if c.APIBase == "" {
		c.APIBase = envOr(EnvAPIBase, DefaultAPIBase)
	}
	if c.KeyringService == "" {
		c.KeyringService = envOr(EnvKeyringService, DefaultKeyringService)
	}
	if c.KeyringAccount == "" {
		c.KeyringAccount = envOr(EnvKeyringAccount, DefaultKeyringAccount)
	}
	if c.KeyCommand == "" {
		c.KeyCommand = os.Getenv(EnvKeyCommand)
	}
	if c.Logger == nil {
		c.Logger = logging.New(false, false)
	}
	return nil
}

// Store builds the keystore bound to the configured service/account.
func (c *Config) Store() *keystore.Store {
	if c.Keyring != nil {
		return keystore.NewWithClient(c.KeyringService, c.KeyringAccount, c.Keyring)
	}
	return keystore.New(c.KeyringService, c.KeyringAccount)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package commands

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/systmms/fecops/internal/config"
	"github.com/systmms/fecops/internal/credential"
	"github.com/systmms/fecops/internal/fecapi"
	"github.com/systmms/fecops/internal/redact"
)

// Version is stamped by main from build metadata.
var Version = "dev"

func newResolver(cfg *config.Config) *credential.Resolver {
	return credential.New(cfg.Store(), cfg.KeyCommand, cfg.Logger)
}

func newClient(cfg *config.Config, resolver *credential.Resolver) *fecapi.Client {
	return fecapi.NewClient(fecapi.Config{
		BaseURL:    cfg.APIBase,
		Source:     resolver,
		HTTPClient: cfg.HTTPClient,
	})
}

// printJSON writes indented JSON to w, matching the tool output shape.
func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// sanitized converts an internal error into one safe to print at the
// process boundary. Credential problems become setup guidance; every
// other message is scrubbed of key material. CLI commands must route
// all failures through here before returning them.
func sanitized(resolver *credential.Resolver, err error) error {
	if err == nil {
		return nil
	}
	var unavailable *credential.UnavailableError
	if stderrors.As(err, &unavailable) {
		return stderrors.New(unavailable.Guidance())
	}
	return stderrors.New(resolver.Redact(redact.QueryParam(err.Error())))
}

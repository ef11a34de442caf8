package keystore

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// systemClient is the production Client backed by zalando/go-keyring,
// which speaks to the native store on each platform.
type systemClient struct{}

func (systemClient) Get(service, account string) (string, error) {
	secret, err := keyring.Get(service, account)
	if err != nil {
		return "", mapKeyringError(err)
	}
	return secret, nil
}

func (systemClient) Set(service, account, value string) error {
	if err := keyring.Set(service, account, value); err != nil {
		return mapKeyringError(err)
	}
	return nil
}

func (systemClient) Delete(service, account string) error {
	if err := keyring.Delete(service, account); err != nil {
		return mapKeyringError(err)
	}
	return nil
}

// mapKeyringError translates go-keyring sentinels into this package's
// vocabulary. Anything unrecognized passes through untouched and gets
// wrapped as a backend error by Store.
func mapKeyringError(err error) error {
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

var _ Client = systemClient{}

package keyring

import (
	"errors"

	"overlay/internal/ports"

	"github.com/zalando/go-keyring"
)

const service = "overlay"

type ZalandoKeyring struct{}

func ProvideZalandoKeyring() ports.Keyring {
	return ZalandoKeyring{}
}

func (z ZalandoKeyring) GetKey(keyName string) (string, error) {
	return keyring.Get(service, keyName)
}

func (z ZalandoKeyring) SetKey(keyName string, keyValue string) error {
	return keyring.Set(service, keyName, keyValue)
}

func (z ZalandoKeyring) HasKey(keyName string) (bool, error) {
	_, err := keyring.Get(service, keyName)
	if errors.Is(err, keyring.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (z ZalandoKeyring) DeleteKey(keyName string) error {
	err := keyring.Delete(service, keyName)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// "Service" groups the app's secrets in the OS keychain.
	KeyringService = "signalboost"

	envAPIKey = "HUNTER_API_KEY"
)

// GetHunterKey resolves the enrichment API key: OS keychain first, then the
// environment. An empty result is an error so callers can decide whether to
// run enrichment in disabled mode.
func GetHunterKey(keyringAccount string) (string, error) {
	if strings.TrimSpace(keyringAccount) != "" {
		key, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(key) != "" {
			return key, nil
		}
	}

	if key := strings.TrimSpace(os.Getenv(envAPIKey)); key != "" {
		return key, nil
	}

	return "", errors.New("hunter API key not found (set it in keychain or via " + envAPIKey + ")")
}

func SetHunterKey(keyringAccount string, key string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, key)
}

func DeleteHunterKey(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}

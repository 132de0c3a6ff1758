package config

import (
	"os"

	apierrors "github.com/diogo/promptrelay/internal/errors"
)

// EnvAPIKey is the environment variable holding the Gemini API key.
const EnvAPIKey = "GEMINI_API_KEY"

// Credentials represents the API key authorizing generation requests
type Credentials struct {
	APIKey string
}

// LoadCredentials reads the API key from the process environment.
// A missing variable is not an error here; the key comes back empty and
// client construction rejects it.
func LoadCredentials() *Credentials {
	return &Credentials{
		APIKey: os.Getenv(EnvAPIKey),
	}
}

// ValidateCredentials checks that the credentials are usable
func ValidateCredentials(creds *Credentials) error {
	if creds == nil || creds.APIKey == "" {
		return apierrors.ErrNoAPIKey
	}
	return nil
}

package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mailnode/pkg/domain/types"
)

// Credential holds the MailerLite API key supplied by the host.
// It is read-only for the duration of one invocation.
type Credential struct {
	APIKey types.APIKey `json:"apiKey" yaml:"apiKey"`
}

// NewCredential creates a Credential from a raw API key
func NewCredential(apiKey string) Credential {
	return Credential{APIKey: types.APIKey(apiKey)}
}

// Validate checks that the credential can be used for a request
func (c Credential) Validate() error {
	if c.APIKey == "" {
		return goerr.New("API key is required", goerr.T(ErrTagInvalidCredential))
	}
	return nil
}

// BearerToken returns the Authorization header value
func (c Credential) BearerToken() string {
	return "Bearer " + c.APIKey.String()
}

// LogValue returns structured log value without exposing the key
func (c Credential) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_api_key", c.APIKey != ""),
	)
}

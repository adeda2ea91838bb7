package config

import (
	"log/slog"

	"github.com/secmon-lab/mailnode/pkg/domain/model"
	"github.com/secmon-lab/mailnode/pkg/service/mailerlite"
	"github.com/urfave/cli/v3"
)

// MailerLite holds MailerLite API configuration
type MailerLite struct {
	APIKey  string
	BaseURL string
}

// Flags returns CLI flags for MailerLite configuration
func (m *MailerLite) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-key",
			Usage:       "MailerLite API key",
			Category:    "MailerLite",
			Sources:     cli.EnvVars("MAILNODE_API_KEY"),
			Destination: &m.APIKey,
		},
		&cli.StringFlag{
			Name:        "mailerlite-base-url",
			Usage:       "MailerLite API base URL",
			Category:    "MailerLite",
			Value:       model.DefaultBaseURL,
			Sources:     cli.EnvVars("MAILNODE_MAILERLITE_BASE_URL"),
			Destination: &m.BaseURL,
		},
	}
}

// Configure creates a MailerLite client
func (m *MailerLite) Configure() *mailerlite.Service {
	return mailerlite.New(mailerlite.WithBaseURL(m.BaseURL))
}

// Credential returns the credential built from the configured API key
func (m *MailerLite) Credential() model.Credential {
	return model.NewCredential(m.APIKey)
}

// IsConfigured checks if an API key is present
func (m *MailerLite) IsConfigured() bool {
	return m.APIKey != ""
}

// LogValue returns structured log value
func (m MailerLite) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_api_key", m.APIKey != ""),
		slog.String("base_url", m.BaseURL),
	)
}

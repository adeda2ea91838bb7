package config_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/mailnode/pkg/cli/config"
)

func TestLoggerValidate(t *testing.T) {
	testCases := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"defaults", "info", "auto", false},
		{"empty format", "debug", "", false},
		{"json", "error", "json", false},
		{"console", "warn", "console", false},
		{"bad level", "verbose", "json", true},
		{"bad format", "info", "xml", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Logger{Level: tc.level, Format: tc.format}
			err := cfg.Validate()
			if tc.wantErr {
				gt.Error(t, err)
				_, err = cfg.Configure()
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestMailerLiteLogValueHidesKey(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := config.MailerLite{APIKey: "very-secret", BaseURL: "https://example.test/api"}
	logger.Info("config", slog.Any("mailerlite", cfg))

	gt.False(t, strings.Contains(buf.String(), "very-secret"))
	gt.True(t, strings.Contains(buf.String(), "https://example.test/api"))
	gt.True(t, cfg.IsConfigured())
	gt.Equal(t, "very-secret", cfg.Credential().APIKey.String())
}

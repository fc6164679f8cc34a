package impl

import (
	"io"
	"log/slog"

	"habitar/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Identity: &config.IdentityConfig{
			SiteURL: "https://habitar.example",
		},
	}
}

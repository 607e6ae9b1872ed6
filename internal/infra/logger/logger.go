package logger

import (
	"io"
	"log/slog"
	"os"
)

// New cria o logger JSON do servidor: debug em "dev", info nos demais ambientes.
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter é New com destino configurável.
func NewWithWriter(env string, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("service", "bizcase")
}

/*
Copyright © 2025 The rigcheck Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package api wires the build store and verifier into the HTTP server.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rigcheck/rigcheck/pkg/checker"
	"github.com/rigcheck/rigcheck/pkg/config"
	"github.com/rigcheck/rigcheck/pkg/errors"
	"github.com/rigcheck/rigcheck/pkg/logging"
	"github.com/rigcheck/rigcheck/pkg/message"
	"github.com/rigcheck/rigcheck/pkg/serializer"
	"github.com/rigcheck/rigcheck/pkg/server"
	"github.com/rigcheck/rigcheck/pkg/store"
	"github.com/rigcheck/rigcheck/pkg/verifier"
)

const (
	name           = "rigcheck-api-server"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/rigcheck/rigcheck/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// BuildList is the body of GET /v1/builds.
type BuildList struct {
	Builds []string `json:"builds" yaml:"builds"`
}

// Routes returns the API handlers backed by st.
func Routes(st *store.Store, v *verifier.Verifier) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/verify": v.HandleVerify,
		"/v1/builds": handleBuilds(st),
	}
}

func handleBuilds(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
				"method not allowed", false, nil)
			return
		}
		serializer.RespondJSON(w, http.StatusOK, BuildList{Builds: st.IDs()})
	}
}

// VerifierOptions translates the language and skip settings of cfg.
func VerifierOptions(cfg *config.Config, version string) ([]verifier.Option, error) {
	opts := []verifier.Option{verifier.WithVersion(version)}
	if cfg.Language != "" {
		tag, err := message.ParseLanguage(cfg.Language)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid language", err,
				map[string]any{"field": "language", "value": cfg.Language})
		}
		opts = append(opts, verifier.WithLanguage(tag))
	}
	if len(cfg.Skip) > 0 {
		opts = append(opts, verifier.WithCheckers(checker.Skip(checker.Defaults(), cfg.Skip)...))
	}
	return opts, nil
}

// NewServer opens the store named by cfg and returns a server ready to Run.
func NewServer(cfg *config.Config) (*server.Server, error) {
	st, err := store.Open(cfg.Data)
	if err != nil {
		return nil, err
	}

	opts, err := VerifierOptions(cfg, version)
	if err != nil {
		return nil, err
	}
	v := verifier.New(st, opts...)

	return server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithConfig(cfg.ServerConfig()),
		server.WithHandler(Routes(st, v)),
	), nil
}

// Serve starts the API server and blocks until ctx is canceled or a
// termination signal arrives.
func Serve(ctx context.Context, cfg *config.Config) error {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.Log.Level)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, err := NewServer(cfg)
	if err != nil {
		slog.Error("failed to initialize server", "error", err)
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

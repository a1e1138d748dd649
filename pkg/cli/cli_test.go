/*
Copyright © 2025 The rigcheck Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rigcheck/rigcheck/pkg/api"
	"github.com/rigcheck/rigcheck/pkg/verifier"
)

// run executes the root command and returns what it wrote to --output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RIGCHECK_CONFIG", "")
	t.Setenv("RIGCHECK_DATA", "")

	out := filepath.Join(t.TempDir(), "out")
	argv := append([]string{name}, args[0])
	argv = append(argv, "--output", out)
	argv = append(argv, args[1:]...)

	err := NewCommand().Run(context.Background(), argv)
	b, readErr := os.ReadFile(out)
	if readErr != nil {
		return "", err
	}
	return string(b), err
}

func TestVerify_SingleBuild(t *testing.T) {
	out, err := run(t, "verify", "--format", "json", "gaming-rig")
	require.NoError(t, err)

	var r verifier.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "gaming-rig", r.BuildID)
	assert.True(t, r.Valid())
	assert.Equal(t, verifier.Kind, r.Kind)
}

func TestVerify_MultipleBuildsKeepOrder(t *testing.T) {
	out, err := run(t, "verify", "--format", "yaml", "-b", "starter-kit", "-b", "gaming-rig", "workstation")
	require.NoError(t, err)

	var reports []verifier.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 3)
	assert.Equal(t, "starter-kit", reports[0].BuildID)
	assert.Equal(t, "gaming-rig", reports[1].BuildID)
	assert.Equal(t, "workstation", reports[2].BuildID)
	assert.Len(t, reports[0].CompletenessViolations, 6)
}

func TestVerify_FailOnViolation(t *testing.T) {
	_, err := run(t, "verify", "--fail-on-violation", "gaming-rig")
	require.NoError(t, err)

	out, err := run(t, "verify", "--fail-on-violation", "--format", "json", "budget-build")
	require.ErrorIs(t, err, errInvalidBuilds)
	assert.Equal(t, exitInvalid, exitCode(err))
	assert.Contains(t, out, "budget-build", "report is written before failing")
}

func TestVerify_Skip(t *testing.T) {
	out, err := run(t, "verify", "--format", "json", "--skip", "*-power", "--skip", "fan-sizes", "--fail-on-violation", "budget-build")
	require.NoError(t, err, "budget-build only fails power rules")

	var r verifier.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Empty(t, r.CompatibilityViolations)
	assert.NotEmpty(t, r.OptimalityWarnings)
}

func TestVerify_Language(t *testing.T) {
	en, err := run(t, "verify", "--format", "json", "starter-kit")
	require.NoError(t, err)
	de, err := run(t, "verify", "--format", "json", "--lang", "de", "starter-kit")
	require.NoError(t, err)

	var enReport, deReport verifier.Report
	require.NoError(t, json.Unmarshal([]byte(en), &enReport))
	require.NoError(t, json.Unmarshal([]byte(de), &deReport))
	require.Len(t, deReport.CompletenessViolations, len(enReport.CompletenessViolations))
	assert.NotEqual(t, enReport.CompletenessViolations, deReport.CompletenessViolations)
}

func TestVerify_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "no ids", args: []string{"verify"}, wantMsg: "at least one build id"},
		{name: "unknown format", args: []string{"verify", "--format", "xml", "gaming-rig"}, wantMsg: "unknown output format"},
		{name: "suggestion", args: []string{"verify", "gaming-rg"}, wantMsg: `did you mean "gaming-rig"`},
		{name: "no suggestion", args: []string{"verify", "zzzzzzzzzzzz"}, wantMsg: `build "zzzzzzzzzzzz" not found`},
		{name: "bad language", args: []string{"verify", "--lang", "!!", "gaming-rig"}, wantMsg: "language"},
		{name: "missing data", args: []string{"verify", "--data", "/nonexistent/catalog.yaml", "gaming-rig"}, wantMsg: "failed to open store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, exitError, exitCode(err))
		})
	}
}

func TestBuilds(t *testing.T) {
	out, err := run(t, "builds", "--format", "json")
	require.NoError(t, err)

	var got api.BuildList
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"budget-build", "compact-build", "gaming-rig", "starter-kit", "workstation"}, got.Builds)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitError, exitCode(stderrors.New("boom")))
	assert.Equal(t, exitCanceled, exitCode(fmt.Errorf("wrapped: %w", context.Canceled)))
	assert.Equal(t, exitCanceled, exitCode(context.DeadlineExceeded))
	assert.Equal(t, exitInvalid, exitCode(errInvalidBuilds))
}

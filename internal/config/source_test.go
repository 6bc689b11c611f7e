// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── EnvironSource ─────────────────────────────────────────────────────────────

// TestEnvironSource_PrefixFilter verifies that only prefixed variables are
// captured and that the prefix is stripped.
func TestEnvironSource_PrefixFilter(t *testing.T) {
	t.Setenv("ENGO_APP_PORT", "3000")
	t.Setenv("ENGO_JWT_SECRET", "s3cret")
	t.Setenv("UNRELATED", "x")

	source := EnvironSource("ENGO_")

	assert.Equal(t, "environ", source.Name)
	assert.Equal(t, "3000", source.Values["APP_PORT"])
	assert.Equal(t, "s3cret", source.Values["JWT_SECRET"])
	assert.NotContains(t, source.Values, "UNRELATED")
	assert.NotContains(t, source.Values, "ENGO_APP_PORT")
}

// TestEnvironSource_NoPrefix verifies that an empty prefix captures the
// environment verbatim.
func TestEnvironSource_NoPrefix(t *testing.T) {
	t.Setenv("APP_PORT", "3000")

	source := EnvironSource("")

	assert.Equal(t, "3000", source.Values["APP_PORT"])
}

// ── DotenvSource ──────────────────────────────────────────────────────────────

// TestDotenvSource_ReadsFile verifies parsing of a dotenv layer.
func TestDotenvSource_ReadsFile(t *testing.T) {
	path := writeTempFile(t, ".env", "APP_PORT=3000\nJWT_SECRET=s3cret\n")

	source, err := DotenvSource(path)

	require.NoError(t, err)
	assert.Equal(t, path, source.Name)
	assert.Equal(t, map[string]string{
		"APP_PORT":   "3000",
		"JWT_SECRET": "s3cret",
	}, source.Values)
}

// TestDotenvSource_MissingFile verifies the SourceUnavailable contract and
// the IgnoreMissing escape hatch.
func TestDotenvSource_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), ".env.production")

	_, err := DotenvSource(missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)

	source, err := DotenvSource(missing, IgnoreMissing())
	require.NoError(t, err)
	assert.Empty(t, source.Values)
}

// ── YAMLSource ────────────────────────────────────────────────────────────────

// TestYAMLSource_FlatScalars verifies that scalar values of any YAML type are
// rendered back to raw strings.
func TestYAMLSource_FlatScalars(t *testing.T) {
	path := writeTempFile(t, "config.yaml",
		"APP_PORT: 3000\nMAINTENANCE_MODE: true\nJWT_SECRET: s3cret\n")

	source, err := YAMLSource(path)

	require.NoError(t, err)
	assert.Equal(t, "3000", source.Values["APP_PORT"])
	assert.Equal(t, "true", source.Values["MAINTENANCE_MODE"])
	assert.Equal(t, "s3cret", source.Values["JWT_SECRET"])
}

// TestYAMLSource_RejectsNested verifies that nested mappings fail as
// unavailable sources: layers are flat by contract.
func TestYAMLSource_RejectsNested(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "server:\n  port: 3000\n")

	_, err := YAMLSource(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

// TestYAMLSource_Malformed verifies that IgnoreMissing does not swallow
// parse errors.
func TestYAMLSource_Malformed(t *testing.T) {
	path := writeTempFile(t, "config.yaml", ":\n\t- broken")

	_, err := YAMLSource(path, IgnoreMissing())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

// ── JSONSource ────────────────────────────────────────────────────────────────

// TestJSONSource_FlatScalars verifies scalar rendering, including numbers
// kept verbatim via json.Number.
func TestJSONSource_FlatScalars(t *testing.T) {
	path := writeTempFile(t, "config.json",
		`{"APP_PORT": 3000, "MAINTENANCE_MODE": false, "JWT_SECRET": "s3cret"}`)

	source, err := JSONSource(path)

	require.NoError(t, err)
	assert.Equal(t, "3000", source.Values["APP_PORT"])
	assert.Equal(t, "false", source.Values["MAINTENANCE_MODE"])
	assert.Equal(t, "s3cret", source.Values["JWT_SECRET"])
}

// TestJSONSource_RejectsNested verifies the flat-layer contract for JSON.
func TestJSONSource_RejectsNested(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"server": {"port": 3000}}`)

	_, err := JSONSource(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

// TestJSONSource_MissingFile verifies IgnoreMissing for JSON layers.
func TestJSONSource_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.json")

	_, err := JSONSource(missing)
	assert.ErrorIs(t, err, ErrSourceUnavailable)

	source, err := JSONSource(missing, IgnoreMissing())
	require.NoError(t, err)
	assert.Empty(t, source.Values)
}

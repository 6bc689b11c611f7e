package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder_LayeredResolution verifies the documented precedence order:
// defaults file, then environment file, then process environment.
func TestBuilder_LayeredResolution(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("APP_PORT=1\nJWT_SECRET=shared\nDATABASE_URI=mongodb://localhost:27017/engo\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.staging"),
		[]byte("APP_PORT=2\n"), 0o600))
	t.Setenv("ENGO_APP_PORT", "3")

	// Act
	resolved, err := NewBuilder("staging").
		WithDotenvFile(filepath.Join(dir, ".env")).
		WithEnvironmentFile(dir).
		WithEnviron("ENGO_").
		Resolve(testSchema())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, EnvStaging, resolved.Environment())
	assert.Equal(t, 3, resolved.Int("APP_PORT"))
	assert.Equal(t, "shared", resolved.String("JWT_SECRET"))
}

// TestBuilder_EnvironmentFileOverridesShared verifies the middle rank when no
// process override exists.
func TestBuilder_EnvironmentFileOverridesShared(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("APP_PORT=1\nJWT_SECRET=shared\nDATABASE_URI=mongodb://localhost:27017/engo\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.production"),
		[]byte("APP_PORT=2\n"), 0o600))

	resolved, err := NewBuilder("production").
		WithDotenvFile(filepath.Join(dir, ".env")).
		WithEnvironmentFile(dir).
		Resolve(testSchema())

	require.NoError(t, err)
	assert.Equal(t, 2, resolved.Int("APP_PORT"))
}

// TestBuilder_MissingEnvironmentFileIsOptional verifies that an absent
// .env.<environment> contributes an empty layer instead of failing.
func TestBuilder_MissingEnvironmentFileIsOptional(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("JWT_SECRET=shared\nDATABASE_URI=mongodb://localhost:27017/engo\n"), 0o600))

	resolved, err := NewBuilder("local").
		WithDotenvFile(filepath.Join(dir, ".env")).
		WithEnvironmentFile(dir).
		Resolve(testSchema())

	require.NoError(t, err)
	assert.Equal(t, 8080, resolved.Int("APP_PORT"))
}

// TestBuilder_UnknownEnvironment verifies that a bad selector is captured at
// construction and surfaced by Resolve without loading anything further.
func TestBuilder_UnknownEnvironment(t *testing.T) {
	resolved, err := NewBuilder("qa").
		WithEnvironmentFile(t.TempDir()).
		Resolve(testSchema())

	assert.Nil(t, resolved)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEnvironment)
}

// TestBuilder_CapturesLoaderErrors verifies that broken layers fail the build
// and that resolution is never attempted over a partial source set.
func TestBuilder_CapturesLoaderErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	resolved, err := NewBuilder("local").
		WithYAMLFile(missing).
		Resolve(testSchema())

	assert.Nil(t, resolved)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

// TestBuilder_WithSource verifies that pre-loaded layers participate at their
// slice position.
func TestBuilder_WithSource(t *testing.T) {
	resolved, err := NewBuilder("local").
		WithSource(validLayer()).
		WithSource(Source{Name: "override", Values: map[string]string{"JWT_SECRET": "override"}}).
		Resolve(testSchema())

	require.NoError(t, err)
	assert.Equal(t, "override", resolved.String("JWT_SECRET"))
}

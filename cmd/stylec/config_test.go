package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylec.yaml")
	configContent := `
verbose: true

build:
  source: custom/styles
  out: custom/out.css
  classmap: custom/classmap.json
  include:
    - "components/**/*.style.yaml"

check:
  strict: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "custom/styles", k.String("build.source"))
	assert.Equal(t, "custom/out.css", k.String("build.out"))
	assert.Equal(t, "custom/classmap.json", k.String("build.classmap"))
	assert.Equal(t, []string{"components/**/*.style.yaml"}, k.Strings("build.include"))
	assert.True(t, k.Bool("check.strict"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.stylec.yaml"))

	// buildBundleConfig should return defaults
	config := buildBundleConfig()
	assert.Equal(t, "styles", config.SourceDir)
	assert.Equal(t, "dist/styles.css", config.OutFile)
	assert.Equal(t, "dist/classmap.json", config.ClassMapFile)
	assert.Equal(t, []string{"**/*.style.yaml"}, config.Includes)
	assert.False(t, config.Verbose)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylec.yaml")
	configContent := `
build:
  source: from-file
check:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("STYLEC_BUILD_SOURCE", "from-env")
	t.Setenv("STYLEC_CHECK_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env", k.String("build.source"))
	assert.True(t, k.Bool("check.strict"))
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("build.source", "from-config"))

	assert.Equal(t, "from-config", getStringWithFallback("source", "build.source", "default"))
	assert.Equal(t, "default", getStringWithFallback("missing", "also.missing", "default"))

	require.NoError(t, k.Set("source", "from-flag"))
	assert.Equal(t, "from-flag", getStringWithFallback("source", "build.source", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	assert.True(t, getBoolWithFallback("missing", "also.missing", true))

	require.NoError(t, k.Set("check.strict", true))
	assert.True(t, getBoolWithFallback("strict", "check.strict", false))

	require.NoError(t, k.Set("strict", false))
	assert.False(t, getBoolWithFallback("strict", "check.strict", true))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields and defaults for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Missing product.
	cfg := Default()
	cfg.ProductName = " "
	require.Error(t, Validate(cfg))

	// Product with a path separator.
	cfg = Default()
	cfg.ProductName = "dist/arduino-ide"
	require.Error(t, Validate(cfg))

	// Missing builder.
	cfg = Default()
	cfg.Builder = ""
	require.Error(t, Validate(cfg))

	// Missing manifest.
	cfg = Default()
	cfg.AppManifest = ""
	require.Error(t, Validate(cfg))

	// Optional fields are filled.
	cfg = &Config{
		ProductName: "my-ide",
		AppManifest: "package.json",
		Builder:     "electron-builder",
	}
	require.NoError(t, Validate(cfg))
	require.Equal(t, "my-ide", cfg.MetadataName)
	require.Equal(t, ".", cfg.RepositoryPath)
	require.Equal(t, DefaultLockFilename, cfg.LockFile)
}

// TestLoad_OverridesDefaults ensures file values are applied over Default.
func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "packager.yaml")
	contents := "product_name: my-ide\nbuilder: /opt/bin/electron-builder\nidentity_file: identity.yaml\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), DefaultFilePermissions))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "my-ide", cfg.ProductName)
	require.Equal(t, "/opt/bin/electron-builder", cfg.Builder)
	require.Equal(t, "identity.yaml", cfg.IdentityFile)
	require.Equal(t, "package.json", cfg.AppManifest)
	require.Equal(t, DefaultProductName, cfg.MetadataName)
}

// TestLoad_MissingFiles distinguishes the optional default file from an explicit path.
func TestLoad_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoad_BadYAML reports decoding errors.
func TestLoad_BadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "packager.yaml")
	require.NoError(t, os.WriteFile(path, []byte("product_name: [unterminated"), DefaultFilePermissions))

	_, err := Load(path)
	require.Error(t, err)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of a packaging run.
type Config struct {
	// ProductName prefixes every artifact file name.
	ProductName string `yaml:"product_name"`
	// MetadataName overrides the name in the packaged app's package.json.
	MetadataName string `yaml:"metadata_name"`
	// AppManifest is the application package.json holding the base and Electron versions.
	AppManifest string `yaml:"app_manifest"`
	// ToolManifest is the optional package.json holding the bundled CLI version.
	ToolManifest string `yaml:"tool_manifest"`
	// RepositoryPath is any path inside the git repository used for snapshot revisions.
	RepositoryPath string `yaml:"repository_path"`
	// Builder is the packaging tool executable.
	Builder string `yaml:"builder"`
	// MainEntry is the main module of the packaged application.
	MainEntry string `yaml:"main_entry"`
	// IdentityFile, when set, receives the resolved release identity as YAML.
	IdentityFile string `yaml:"identity_file"`
	// LockFile marks a packaging run in progress.
	LockFile string `yaml:"lock_file"`
}

const (
	// DefaultConfigFilename is read when no --config is given. It may be absent.
	DefaultConfigFilename = "ide-packager.yaml"

	// DefaultProductName is the artifact and metadata name of the IDE.
	DefaultProductName = "arduino-ide"

	// DefaultLockFilename is the lock file created in the working directory.
	DefaultLockFilename = "ide-packager.lock"

	// DefaultBuilder is the packaging tool invoked with the release identity.
	DefaultBuilder = "electron-builder"

	// DefaultFilePermissions is used for files written by the packager.
	DefaultFilePermissions = 0o644
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errProductNameRequired is returned when no artifact prefix is configured.
	errProductNameRequired = errors.New("product name must be provided")
	// errAppManifestRequired is returned when the application manifest path is missing.
	errAppManifestRequired = errors.New("application manifest must be provided")
	// errBuilderRequired is returned when no packaging tool is configured.
	errBuilderRequired = errors.New("builder command must be provided")
)

// Default returns the settings used for the Arduino IDE electron app.
func Default() *Config {
	return &Config{
		ProductName:    DefaultProductName,
		MetadataName:   DefaultProductName,
		AppManifest:    "package.json",
		ToolManifest:   filepath.Join("..", "arduino-ide-extension", "package.json"),
		RepositoryPath: ".",
		Builder:        DefaultBuilder,
		MainEntry:      "./arduino-ide-electron-main.js",
		LockFile:       DefaultLockFilename,
	}
}

// Load reads settings from path on top of Default and validates them.
// An empty path means DefaultConfigFilename, which may be missing.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = DefaultConfigFilename
	}

	cfg := Default()

	contents, err := os.ReadFile(filepath.Clean(path))

	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case optional && errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and fills optional ones.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	cfg.ProductName = strings.TrimSpace(cfg.ProductName)
	if cfg.ProductName == "" {
		return errProductNameRequired
	}

	if strings.ContainsAny(cfg.ProductName, `/\`) {
		return fmt.Errorf("invalid product name '%s': path separators are not allowed", cfg.ProductName)
	}

	if cfg.AppManifest == "" {
		return errAppManifestRequired
	}

	if strings.TrimSpace(cfg.Builder) == "" {
		return errBuilderRequired
	}

	if cfg.MetadataName == "" {
		cfg.MetadataName = cfg.ProductName
	}

	if cfg.RepositoryPath == "" {
		cfg.RepositoryPath = "."
	}

	if cfg.LockFile == "" {
		cfg.LockFile = DefaultLockFilename
	}

	return nil
}

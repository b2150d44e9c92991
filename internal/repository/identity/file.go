package identity

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/ide-packager/internal/config"
	"github.com/oshokin/ide-packager/internal/domain/release"
)

// Repository defines persistence operations for a release identity.
type Repository interface {
	Load(ctx context.Context) (*Record, error)
	Save(ctx context.Context, record *Record) error
}

// Record is the persisted form of a release identity.
type Record struct {
	release.Identity `yaml:",inline"`

	// ElectronVersion is the Electron version the app was packaged with.
	ElectronVersion string `yaml:"electron_version"`
	// CLIVersion is the bundled CLI version, possibly empty.
	CLIVersion string `yaml:"cli_version"`
	// BuildDate is the ISO-8601 instant passed to the app metadata.
	BuildDate string `yaml:"build_date"`
}

// dirPermissions is used for directories created next to the identity file.
const dirPermissions = 0o755

// FileRepository stores a Record in a YAML file.
type FileRepository struct {
	// path is the filesystem location of the YAML file.
	path string
}

var (
	// ErrNotFound is returned when the identity file does not exist yet.
	ErrNotFound = errors.New("identity not found")
	// errRecordIsNotSet is returned when saving a nil record.
	errRecordIsNotSet = errors.New("identity record is not set")
)

// NewFileRepository creates a repository that reads/writes YAML at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the location of the identity file.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the identity from disk.
func (r *FileRepository) Load(_ context.Context) (*Record, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read identity file: %w", err)
	}

	var record Record
	if err = yaml.Unmarshal(contents, &record); err != nil {
		return nil, fmt.Errorf("decode identity file: %w", err)
	}

	if record.Mode, err = release.ParseBuildMode(string(record.Mode)); err != nil {
		return nil, fmt.Errorf("decode identity file: %w", err)
	}

	return &record, nil
}

// Save writes the identity to disk, creating parent directories.
func (r *FileRepository) Save(_ context.Context, record *Record) error {
	if record == nil {
		return errRecordIsNotSet
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(r.path), dirPermissions); err != nil {
		return fmt.Errorf("create identity directory: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write identity file: %w", err)
	}

	return nil
}

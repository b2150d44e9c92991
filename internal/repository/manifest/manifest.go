package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/ide-packager/internal/domain/release"
)

// Manifest holds the versions a packaging run needs.
type Manifest struct {
	// Version is the application's base version, not validated here.
	Version string
	// ElectronVersion is the validated Electron version, range marker removed.
	ElectronVersion string
	// CLIVersion is the bundled CLI version, or empty when not declared as a string.
	CLIVersion string
}

// ErrMissingElectron is returned when the application manifest has no Electron dev dependency.
var ErrMissingElectron = errors.New("electron is not declared in devDependencies")

// appPackage is the subset of the application package.json in use.
type appPackage struct {
	Version         string            `json:"version"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// toolPackage is the subset of the extension package.json in use.
// The CLI version may be an object (a commitish) instead of a string.
type toolPackage struct {
	Arduino struct {
		CLI struct {
			Version json.RawMessage `json:"version"`
		} `json:"arduino-cli"`
	} `json:"arduino"`
}

// Read loads the application manifest and, when toolPath is not empty, the tool manifest.
func Read(appPath, toolPath string) (*Manifest, error) {
	var app appPackage
	if err := readJSON(appPath, &app); err != nil {
		return nil, err
	}

	rawElectron, ok := app.DevDependencies["electron"]
	if !ok {
		return nil, fmt.Errorf("%s: %w", appPath, ErrMissingElectron)
	}

	electron, err := release.ValidateSemver(rawElectron)
	if err != nil {
		return nil, fmt.Errorf("electron version: %w", err)
	}

	result := &Manifest{
		Version:         app.Version,
		ElectronVersion: electron,
	}

	if toolPath == "" {
		return result, nil
	}

	var tool toolPackage
	if err = readJSON(toolPath, &tool); err != nil {
		return nil, err
	}

	var cliVersion string
	if json.Unmarshal(tool.Arduino.CLI.Version, &cliVersion) == nil {
		result.CLIVersion = cliVersion
	}

	return result, nil
}

func readJSON(path string, target any) error {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	if err = json.Unmarshal(contents, target); err != nil {
		return fmt.Errorf("decode manifest %s: %w", path, err)
	}

	return nil
}

package integration

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/ide-packager/internal/domain/release"
	"github.com/oshokin/ide-packager/internal/repository/identity"
	"github.com/oshokin/ide-packager/internal/service/packager"
)

// fakeBuilder is a packaging tool that records its arguments, one per line.
const fakeBuilder = `#!/bin/sh
for arg in "$@"; do
  printf '%s\n' "$arg" >> "$(dirname "$0")/builder-args.txt"
done
`

// TestPackager_SnapshotEndToEnd runs the packager against a real repository and a stub builder.
func TestPackager_SnapshotEndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	dir := t.TempDir()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	writeFile(t, "package.json", `{"version":"2.3.0","devDependencies":{"electron":"^30.1.2"}}`, 0o600)
	writeFile(t, "extension.json", `{"arduino":{"arduino-cli":{"version":"1.0.4"}}}`, 0o600)
	writeFile(t, "builder.sh", fakeBuilder, 0o700)
	writeFile(t, "ide-packager.yaml", strings.Join([]string{
		"product_name: arduino-ide",
		"tool_manifest: extension.json",
		"builder: " + filepath.Join(dir, "builder.sh"),
		"identity_file: dist/identity.yaml",
	}, "\n"), 0o600)

	head := commitAll(t, dir)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := packager.Run(ctx, &packager.Options{
		Host: release.Host{OS: release.OSLinux, Arch: release.ArchArm64},
	})
	require.NoError(t, err)

	version := "2.3.0-snapshot-" + head[:7]

	contents, err := os.ReadFile(filepath.Join(dir, "builder-args.txt"))
	require.NoError(t, err)

	args := strings.Split(strings.TrimSuffix(string(contents), "\n"), "\n")
	require.Equal(t, []string{"--publish", "never", "-c.electronVersion", "30.1.2"}, args[:4])
	require.Contains(t, args, "-c.linux.artifactName")
	require.Contains(t, args, "arduino-ide_"+version+"_Linux_arm64.${ext}")

	record, err := identity.NewFileRepository(filepath.Join(dir, "dist", "identity.yaml")).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, version, record.Version)
	require.Equal(t, release.ModeSnapshot, record.Mode)
}

func writeFile(t *testing.T, name, contents string, mode os.FileMode) {
	t.Helper()

	require.NoError(t, os.WriteFile(name, []byte(contents), mode))
}

// commitAll commits the working tree and returns the commit hash.
func commitAll(t *testing.T, dir string) string {
	t.Helper()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, worktree.AddGlob("*.json"))

	hash, err := worktree.Commit("Release 2.3.0", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Packager Test",
			Email: "packager@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return hash.String()
}

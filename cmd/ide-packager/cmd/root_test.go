package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/ide-packager/internal/domain/release"
)

// TestRootCommand_UnknownLogLevel fails before any packaging work.
func TestRootCommand_UnknownLogLevel(t *testing.T) {
	rootCmd.SetArgs([]string{"--log-level", "loud"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		logLevel = "info"
	})

	err := rootCmd.Execute()
	require.ErrorContains(t, err, "unknown log level")
}

// TestTargetHost applies --os and --arch over the running host.
func TestTargetHost(t *testing.T) {
	t.Cleanup(func() {
		targetOS, targetArch = "", ""
	})

	require.Equal(t, release.CurrentHost(), targetHost())

	targetOS, targetArch = release.OSLinux, release.ArchArm
	require.Equal(t, release.Host{OS: release.OSLinux, Arch: release.ArchArm}, targetHost())

	// Go names are normalized like the running host's.
	targetOS, targetArch = "darwin", "amd64"
	require.Equal(t, release.Host{OS: release.OSMacOS, Arch: release.ArchX64}, targetHost())

	_, err := release.ResolvePlatform(targetHost().OS, targetHost().Arch)
	require.NoError(t, err)
}

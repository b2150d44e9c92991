package release

// Operating system identifiers accepted by ResolvePlatform.
const (
	OSWindows = "windows"
	OSMacOS   = "macOS"
	OSLinux   = "linux"
)

// Architecture identifiers accepted by ResolvePlatform.
const (
	ArchX64   = "x64"
	ArchArm64 = "arm64"
	ArchArm   = "arm"
	ArchIA32  = "ia32"
)

// Platform describes how a host is named in packaging configuration and artifact names.
type Platform struct {
	// Token is the packaging tool's platform key: win, mac or linux.
	Token string `yaml:"token"`
	// Label is the human readable platform part of the artifact name.
	Label string `yaml:"label"`
	// Arch is the architecture identifier the platform was resolved for.
	Arch string `yaml:"arch"`
}

// platformRule lists the recognized architectures of one operating system.
type platformRule struct {
	token  string
	labels map[string]string
	// fallback labels any architecture missing from labels; empty means none.
	fallback string
}

//nolint:gochecknoglobals // Read-only lookup table.
var platformTable = map[string]platformRule{
	OSWindows: {
		token: "win",
		labels: map[string]string{
			ArchX64: "Windows_64bit",
		},
	},
	OSMacOS: {
		token: "mac",
		labels: map[string]string{
			ArchArm64: "macOS_arm64",
		},
		fallback: "macOS_64bit",
	},
	OSLinux: {
		token: "linux",
		labels: map[string]string{
			ArchArm:   "Linux_armv7",
			ArchArm64: "Linux_arm64",
			ArchX64:   "Linux_64bit",
		},
	},
}

// ResolvePlatform looks up the platform for an OS/architecture pair.
// Only macOS accepts unlisted architectures; every other miss is an
// *UnsupportedPlatformError.
func ResolvePlatform(osID, archID string) (Platform, error) {
	rule, ok := platformTable[osID]
	if !ok {
		return Platform{}, &UnsupportedPlatformError{OS: osID, Arch: archID}
	}

	label, ok := rule.labels[archID]
	if !ok {
		if rule.fallback == "" {
			return Platform{}, &UnsupportedPlatformError{OS: osID, Arch: archID}
		}

		label = rule.fallback
	}

	return Platform{
		Token: rule.token,
		Label: label,
		Arch:  archID,
	}, nil
}

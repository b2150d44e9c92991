package release

import "runtime"

// Host identifies the machine a build runs on, in ResolvePlatform vocabulary.
type Host struct {
	OS   string
	Arch string
}

// CurrentHost describes the running process' host.
func CurrentHost() Host {
	return HostFromRuntime(runtime.GOOS, runtime.GOARCH)
}

// HostFromRuntime converts Go's GOOS/GOARCH names.
// Unknown names are kept verbatim so that ResolvePlatform can report them.
func HostFromRuntime(goos, goarch string) Host {
	host := Host{
		OS:   goos,
		Arch: goarch,
	}

	if goos == "darwin" {
		host.OS = OSMacOS
	}

	switch goarch {
	case "amd64":
		host.Arch = ArchX64
	case "386":
		host.Arch = ArchIA32
	}

	return host
}

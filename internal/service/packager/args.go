package packager

import (
	"github.com/oshokin/ide-packager/internal/config"
	"github.com/oshokin/ide-packager/internal/domain/release"
	"github.com/oshokin/ide-packager/internal/repository/manifest"
)

// builderArgs renders the packaging tool command line.
func builderArgs(cfg *config.Config, m *manifest.Manifest, id *release.Identity, buildDate string) []string {
	return []string{
		"--publish",
		"never",
		"-c.electronVersion",
		m.ElectronVersion,
		"-c.extraMetadata.version",
		id.Version,
		// Keeps the localStorage location of the installed app stable.
		"-c.extraMetadata.name",
		cfg.MetadataName,
		"-c." + id.Platform.Token + ".artifactName",
		id.ArtifactName,
		"-c.extraMetadata.theia.frontend.config.appVersion",
		id.Version,
		"-c.extraMetadata.theia.frontend.config.cliVersion",
		m.CLIVersion,
		"-c.extraMetadata.theia.frontend.config.buildDate",
		buildDate,
		"-c.extraMetadata.main",
		cfg.MainEntry,
	}
}

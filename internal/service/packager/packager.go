package packager

import (
	"context"
	"fmt"

	"github.com/oshokin/ide-packager/internal/config"
	"github.com/oshokin/ide-packager/internal/domain/release"
	"github.com/oshokin/ide-packager/internal/logger"
	"github.com/oshokin/ide-packager/internal/repository/identity"
	"github.com/oshokin/ide-packager/internal/repository/manifest"
	"github.com/oshokin/ide-packager/internal/repository/revision"
	"github.com/oshokin/ide-packager/internal/service/builder"
)

// Options contains inputs for the packager entry point.
type Options struct {
	// ConfigPath is an optional path to the settings YAML file.
	ConfigPath string
	// Flags select the build mode.
	Flags release.Flags
	// Host is the target platform; the zero value means the running host.
	Host release.Host
	// DryRun logs the packaging command instead of running it.
	DryRun bool
}

// Clock provides the date token for versions and the build date for metadata.
type Clock interface {
	release.TimestampSource
	BuildDate() string
}

// dependencies are the collaborators a packager talks to.
type dependencies struct {
	clock    Clock
	revision release.RevisionSource
	runner   builder.Runner
	// isRunning reports a packaging tool already running on the host.
	isRunning func(executable string) (bool, error)
}

// packager performs one packaging run.
// It is unexported: callers should use Run, which loads settings and wires collaborators.
type packager struct {
	// cfg holds the packaging settings.
	cfg *config.Config
	// opts are the command line inputs.
	opts *Options
	// deps are the injected collaborators.
	deps *dependencies
}

// Run executes the packaging workflow.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "ide-packager")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	deps := &dependencies{
		clock:     release.SystemClock{},
		revision:  revision.NewGitRevision(cfg.RepositoryPath),
		runner:    new(builder.ExecRunner),
		isRunning: builder.IsRunning,
	}

	if err = newPackager(cfg, opts, deps).Run(ctx); err != nil {
		return fmt.Errorf("packager failed: %w", err)
	}

	return nil
}

func newPackager(cfg *config.Config, opts *Options, deps *dependencies) *packager {
	return &packager{
		cfg:  cfg,
		opts: opts,
		deps: deps,
	}
}

// Run derives the release identity and hands it to the packaging tool.
func (p *packager) Run(ctx context.Context) error {
	m, err := manifest.Read(p.cfg.AppManifest, p.cfg.ToolManifest)
	if err != nil {
		return err
	}

	id, err := p.resolveIdentity(ctx, m)
	if err != nil {
		return err
	}

	ctx = logger.WithKV(ctx, "mode", id.Mode, "platform", id.Platform.Token)

	logger.InfoKV(ctx, "Resolved release identity",
		"version", id.Version,
		"artifact_name", id.ArtifactName,
		"electron_version", m.ElectronVersion,
	)

	buildDate := p.deps.clock.BuildDate()
	args := builderArgs(p.cfg, m, id, buildDate)

	if p.opts.DryRun {
		logger.InfoKV(ctx, "Dry run, packaging tool not started", "command", builder.FormatCommand(p.cfg.Builder, args))
	} else if err = p.invokeBuilder(ctx, args); err != nil {
		return err
	}

	return p.saveIdentity(ctx, &identity.Record{
		Identity:        *id,
		ElectronVersion: m.ElectronVersion,
		CLIVersion:      m.CLIVersion,
		BuildDate:       buildDate,
	})
}

func (p *packager) resolveIdentity(ctx context.Context, m *manifest.Manifest) (*release.Identity, error) {
	host := p.opts.Host
	if host == (release.Host{}) {
		host = release.CurrentHost()
	}

	input := release.Input{
		Product:     p.cfg.ProductName,
		BaseVersion: m.Version,
		Flags:       p.opts.Flags,
		Host:        host,
	}

	if input.Flags.IsRelease && input.Flags.IsNightly {
		logger.WarnKV(ctx, "Both release and nightly flags are set, building a release",
			"release", input.Flags.IsRelease,
			"nightly", input.Flags.IsNightly,
		)
	}

	logger.DebugKV(ctx, "Resolving release identity",
		"base_version", input.BaseVersion,
		"os", host.OS,
		"arch", host.Arch,
		"release", input.Flags.IsRelease,
		"nightly", input.Flags.IsNightly,
	)

	id, err := release.Resolve(ctx, input, release.Sources{
		Clock:    p.deps.clock,
		Revision: p.deps.revision,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve release identity: %w", err)
	}

	return id, nil
}

// invokeBuilder runs the packaging tool while holding the lock.
// It refuses to start while the tool already runs anywhere on the host.
func (p *packager) invokeBuilder(ctx context.Context, args []string) error {
	running, err := p.deps.isRunning(p.cfg.Builder)
	if err != nil {
		return err
	}

	if running {
		return fmt.Errorf("%w: %s is already running", builder.ErrBuilderRunning, p.cfg.Builder)
	}

	lock := builder.NewLock(p.cfg.LockFile)
	if err = lock.Acquire(); err != nil {
		return err
	}

	defer func() {
		if err := lock.Release(); err != nil {
			logger.WarnKV(ctx, "Unable to remove lock", "error", err)
		}
	}()

	logger.InfoKV(ctx, "Starting packaging tool", "command", builder.FormatCommand(p.cfg.Builder, args))

	if err = p.deps.runner.Run(ctx, p.cfg.Builder, args); err != nil {
		return fmt.Errorf("packaging tool: %w", err)
	}

	logger.Info(ctx, "Packaging completed successfully")

	return nil
}

// saveIdentity writes the identity file when one is configured.
func (p *packager) saveIdentity(ctx context.Context, record *identity.Record) error {
	if p.cfg.IdentityFile == "" {
		return nil
	}

	repo := identity.NewFileRepository(p.cfg.IdentityFile)
	if err := repo.Save(ctx, record); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Saved release identity", "path", repo.Path())

	return nil
}

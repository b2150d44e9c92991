package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oshokin/ide-packager/internal/domain/release"
)

const (
	// EnvRelease marks a release build when set to a true value.
	EnvRelease = "IS_RELEASE"
	// EnvNightly marks a nightly build when set to a true value.
	EnvNightly = "IS_NIGHTLY"

	// FlagRelease is the command line switch overriding EnvRelease.
	FlagRelease = "release"
	// FlagNightly is the command line switch overriding EnvNightly.
	FlagNightly = "nightly"
)

// BuildFlags reads the build mode switches. A flag set on the command line
// wins over the environment; flags may be nil.
func BuildFlags(flags *pflag.FlagSet) (release.Flags, error) {
	v := viper.New()

	bindings := map[string]string{
		FlagRelease: EnvRelease,
		FlagNightly: EnvNightly,
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return release.Flags{}, fmt.Errorf("bind %s: %w", env, err)
		}

		if flags == nil {
			continue
		}

		if flag := flags.Lookup(key); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return release.Flags{}, fmt.Errorf("bind --%s: %w", key, err)
			}
		}
	}

	return release.Flags{
		IsRelease: v.GetBool(FlagRelease),
		IsNightly: v.GetBool(FlagNightly),
	}, nil
}

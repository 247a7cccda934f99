package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/mj1618/pass-autotype/internal/autotype"
	"github.com/mj1618/pass-autotype/internal/config"
	"github.com/mj1618/pass-autotype/internal/picker"
	"github.com/mj1618/pass-autotype/internal/platform"
	"github.com/mj1618/pass-autotype/internal/resolve"
	"github.com/mj1618/pass-autotype/internal/sequence"
	"github.com/mj1618/pass-autotype/internal/store"
)

// newLogger returns the stderr logger: warnings only unless verbose.
func newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// newProvider checks OS permissions and returns the platform backends.
func newProvider() (*platform.Provider, error) {
	if platform.RequestPermissionsFunc != nil {
		if err := platform.RequestPermissionsFunc(); err != nil {
			return nil, err
		}
	}
	return platform.NewProvider()
}

func newScanner(c *config.Config) *store.Scanner {
	s := store.NewScanner(c.StoreDir, logger)
	s.DescriptorExt = c.DescriptorExt
	s.CredentialExt = c.CredentialExt
	s.DefaultSequence = c.Sequence
	return s
}

// newRunner wires the store, picker and platform backends into a Runner.
func newRunner(c *config.Config, provider *platform.Provider, dryRun bool) (*autotype.Runner, error) {
	p, err := picker.New(c.Picker, c.ZenityCommand)
	if err != nil {
		return nil, err
	}
	pass := store.NewPassCommand(c.PassCommand, c.StoreDir, logger)

	return &autotype.Runner{
		Windows:  provider.WindowManager,
		Inputter: provider.Inputter,
		Scanner:  newScanner(c),
		Resolver: &resolve.Resolver{
			Loader:    store.NewLoader(c.StoreDir, pass, logger),
			Picker:    p,
			UserField: c.UserField,
			Logger:    logger,
		},
		Interpreter: sequence.NewInterpreter(provider.Inputter, c.TypeDelay, logger),
		Options: autotype.Options{
			Sleep:     c.Sleep,
			Backspace: c.Backspace,
			DryRun:    dryRun,
		},
		Logger: logger,
	}, nil
}

package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/blackwell-systems/pkgswitch/internal/config"
	"github.com/blackwell-systems/pkgswitch/internal/engine"
	"github.com/blackwell-systems/pkgswitch/internal/history"
	"github.com/blackwell-systems/pkgswitch/internal/installer"
	"github.com/blackwell-systems/pkgswitch/internal/output"
	"github.com/blackwell-systems/pkgswitch/internal/registry"
)

// loadConfig resolves the effective configuration from the config file and
// global flags. The --registry flag wins over the file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(defaultConfigPath())
	if err != nil {
		return nil, err
	}
	if registryPath != "" {
		cfg.RegistryPath = registryPath
	}
	return cfg, nil
}

// newEngine builds the lifecycle engine for one command invocation. The
// returned cleanup closes the history database and must always be called.
// A history database that cannot be opened downgrades to a warning: the
// log is informational and no lifecycle operation depends on it.
func newEngine(cfg *config.Config) (*engine.Engine, func()) {
	opts := engine.Options{
		UserRoot:   cfg.UserRoot,
		SystemRoot: cfg.SystemRoot,
	}

	hist, err := history.New(cfg.HistoryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history log unavailable: %v\n", err)
	} else {
		opts.History = hist
	}

	if cfg.Installer != "" {
		// A forced backend replaces host probing.
		opts.Detect = func() (installer.Installer, error) {
			return installer.ByName(cfg.Installer)
		}
	}

	eng := engine.New(registry.NewStore(cfg.RegistryPath), opts)
	cleanup := func() {
		if hist != nil {
			hist.Close()
		}
	}
	return eng, cleanup
}

// reportNotFound prints entity-not-found errors as plain messages and
// swallows them: "nothing to do" is a normal outcome, not a failure exit.
func reportNotFound(err error) (handled bool) {
	switch {
	case errors.Is(err, engine.ErrPackageNotFound):
		fmt.Println(output.Red("Package not found:"), errDetail(err))
		return true
	case errors.Is(err, engine.ErrVersionNotFound):
		fmt.Println(output.Red("Version not found:"), errDetail(err))
		return true
	}
	return false
}

// errDetail strips the sentinel prefix so messages read naturally.
func errDetail(err error) string {
	msg := err.Error()
	msg = strings.TrimPrefix(msg, engine.ErrPackageNotFound.Error()+": ")
	msg = strings.TrimPrefix(msg, engine.ErrVersionNotFound.Error()+": ")
	return msg
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tower/internal/assets"
	"github.com/vovakirdan/tower/internal/config"
	"github.com/vovakirdan/tower/internal/core"
	"github.com/vovakirdan/tower/internal/logging"
	"github.com/vovakirdan/tower/internal/registry"
	"github.com/vovakirdan/tower/internal/storage"
)

// env bundles what every command needs: the loaded config, the logger and,
// when requested, the decoded assets and the session store.
type env struct {
	cfg    config.Config
	logger *log.Logger
	closer io.Closer
	bundle *assets.Bundle
	store  *storage.Store
}

type envOptions struct {
	assets bool // decode the image bundle
	store  bool // open the session database (best-effort)
	stderr bool // mirror logs to stderr
}

// prepare loads config and sets up logging, then the optional parts.
// Asset failures are fatal; a missing database only disables history.
func prepare(opts envOptions) (*env, error) {
	logger, closer, err := logging.New(logging.Options{
		File:   flagLogFile,
		Debug:  flagDebug,
		Stderr: opts.stderr,
		Prefix: "tower",
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	e := &env{logger: logger, closer: closer}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		e.Close()
		return nil, err
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	e.cfg = cfg
	logger.Debug("config loaded", "source", source)

	if opts.assets {
		bundle, err := assets.Load(cfg, logger)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("%w (run 'tower assets init %s' to create placeholders)", err, cfg.Assets.Dir)
		}
		e.bundle = bundle
	}

	if opts.store {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open sessions database", "err", err)
		} else {
			e.store = store
		}
	}
	return e, nil
}

// launch creates the named world from the loaded config.
func (e *env) launch(variant string) (registry.Game, config.Config, error) {
	if !registry.Exists(variant) {
		return nil, e.cfg, fmt.Errorf("unknown variant %q (run 'tower list' to see variants)", variant)
	}
	return registry.Launch(variant, e.cfg, flagFPS, e.bundle, e.logger)
}

// Close releases the store and the log file.
func (e *env) Close() {
	if e.store != nil {
		e.store.Close()
	}
	if e.closer != nil {
		e.closer.Close()
	}
}

// terminalRuntime returns the current terminal size as a RuntimeConfig.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{ScreenW: width, ScreenH: height}
}

// variantArg returns args[0] or the default variant.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.DefaultVariant
}

// Root command for the satchel CLI.
package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/petar-djukic/satchel/internal/bridge"
	"github.com/petar-djukic/satchel/internal/paths"
	"github.com/petar-djukic/satchel/internal/store"
	"github.com/petar-djukic/satchel/internal/syncer"
	"github.com/petar-djukic/satchel/pkg/sqlite"
	"github.com/petar-djukic/satchel/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "satchel",
	Short:   "Satchel is a local-first tab, task, and session organizer",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		timerSettings = timerConfigFrom(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.satchel)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.satchel-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(timerCmd)
}

// resolveDataDir returns the data directory path following the
// precedence: --data-dir flag > config.yaml data_dir >
// SATCHEL_DATA_DIR env > default $(CWD)/.satchel-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > SATCHEL_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// app bundles the running storage, store, and sync machinery behind a
// command.
type app struct {
	cupboard   types.Cupboard
	broker     *bridge.Broker
	background *bridge.Background
	store      *store.Store
	syncer     *syncer.Reconciler
}

// openApp attaches storage and hydrates the in-memory store. Callers
// must Close.
func openApp(ctx context.Context) (*app, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}

	cupboard := sqlite.NewBackend()
	if err := cupboard.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach storage: %w", err)
	}

	broker := bridge.NewBroker()
	background := bridge.NewBackground(broker, cupboard, nil, nil)
	st := store.New(cupboard, background)
	rec := syncer.New(st, cupboard, broker, nil)
	if err := rec.Hydrate(ctx); err != nil {
		st.Close()
		_ = cupboard.Detach()
		return nil, fmt.Errorf("hydrate store: %w", err)
	}
	rec.Start()

	return &app{
		cupboard:   cupboard,
		broker:     broker,
		background: background,
		store:      st,
		syncer:     rec,
	}, nil
}

// Close flushes pending writes and releases storage.
func (a *app) Close() error {
	a.syncer.Stop()
	a.store.Flush()
	a.store.Close()
	return a.cupboard.Detach()
}

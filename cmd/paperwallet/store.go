package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlexZinkM/tos-paper-wallet/internal/config"
	"github.com/AlexZinkM/tos-paper-wallet/internal/i18n"
	"github.com/AlexZinkM/tos-paper-wallet/internal/i18n/catalog"
	"github.com/AlexZinkM/tos-paper-wallet/internal/logger"
	"github.com/AlexZinkM/tos-paper-wallet/internal/prefs"
)

// env is what every local command needs: config, a quiet logger, the
// preference store and the translation engine.
type env struct {
	cfg     *config.Config
	log     *zap.Logger
	durable *prefs.BadgerBackend
	store   *prefs.Store
	engine  *i18n.Engine
}

func openEnv(cmd *cobra.Command) (*env, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log, err := logger.NewCLI(verbose)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	dir, err := cfg.PreferencesDir()
	if err != nil {
		return nil, err
	}
	c, err := catalog.LoadEmbedded()
	if err != nil {
		return nil, err
	}

	var backend prefs.Backend
	durable, err := prefs.OpenBadger(dir, log.Named("badger"))
	if err != nil {
		// Another process may hold the store; run on defaults.
		log.Warn("preferences unavailable, changes will not be kept", zap.String("dir", dir), zap.Error(err))
		backend = prefs.NewMemoryBackend()
	} else {
		backend = durable
	}

	return &env{
		cfg:     cfg,
		log:     log,
		durable: durable,
		store: prefs.NewStore(backend,
			prefs.WithDefault(prefs.Language, cfg.DefaultLanguage),
			prefs.WithDefault(prefs.Theme, cfg.DefaultTheme),
			prefs.WithLogger(log),
		),
		engine: i18n.NewEngine(c, log.Named("i18n")),
	}, nil
}

func (e *env) Close() {
	if e.durable != nil {
		if err := e.durable.Close(); err != nil {
			e.log.Warn("failed to close preference store", zap.Error(err))
		}
	}
	_ = e.log.Sync()
}

// language returns the stored language, falling back to the default when
// the stored code is not in the catalog.
func (e *env) language() string {
	lang := e.store.Language()
	if !e.engine.Catalog().HasLanguage(lang) {
		return e.store.Default(prefs.Language)
	}
	return lang
}

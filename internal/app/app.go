// Package app wires the long-lived collaborators of the wallet page into a
// single context built once at startup.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/AlexZinkM/tos-paper-wallet/internal/chrome"
	"github.com/AlexZinkM/tos-paper-wallet/internal/config"
	"github.com/AlexZinkM/tos-paper-wallet/internal/i18n"
	"github.com/AlexZinkM/tos-paper-wallet/internal/i18n/catalog"
	"github.com/AlexZinkM/tos-paper-wallet/internal/keygen"
	"github.com/AlexZinkM/tos-paper-wallet/internal/loader"
	"github.com/AlexZinkM/tos-paper-wallet/internal/metrics"
	"github.com/AlexZinkM/tos-paper-wallet/internal/model"
	"github.com/AlexZinkM/tos-paper-wallet/internal/page"
	"github.com/AlexZinkM/tos-paper-wallet/internal/prefs"
	"github.com/AlexZinkM/tos-paper-wallet/internal/qr"
	"github.com/AlexZinkM/tos-paper-wallet/internal/wallet"
)

// Catalog keys used outside translatable elements.
const (
	KeyGenerated      = "toast.generated"
	KeyGenerateFailed = "toast.generate_failed"
	KeyModuleMissing  = "toast.module_missing"
)

// App is the application context.
type App struct {
	Config  *config.Config
	Log     *zap.Logger
	Engine  *i18n.Engine
	Page    *page.Template
	Metrics *metrics.Metrics

	module *loader.Future[keygen.Module]
	qr     *loader.Future[*qr.Renderer]

	presenterOnce sync.Once
	presenter     *wallet.Presenter
}

// Option customizes New.
type Option func(*options)

type options struct {
	module  keygen.Module
	qrLoad  func(ctx context.Context) (*qr.Renderer, error)
	catalog *catalog.Catalog
	metrics *metrics.Metrics
}

// WithModule replaces the local crypto module.
func WithModule(m keygen.Module) Option {
	return func(o *options) { o.module = m }
}

// WithQRLoader replaces how the QR renderer is loaded.
func WithQRLoader(fn func(ctx context.Context) (*qr.Renderer, error)) Option {
	return func(o *options) { o.qrLoad = fn }
}

// WithCatalog replaces the embedded catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithMetrics shares a metrics registry.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New builds the context and starts loading the QR renderer and the crypto
// module in the background.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger, opts ...Option) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	o := options{
		module: keygen.NewLocalModule(),
		qrLoad: func(context.Context) (*qr.Renderer, error) { return qr.NewRenderer() },
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.catalog == nil {
		c, err := catalog.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("failed to load translations: %w", err)
		}
		o.catalog = c
	}
	if o.metrics == nil {
		o.metrics = metrics.New()
	}

	engine := i18n.NewEngine(o.catalog, log.Named("i18n"))
	for _, lang := range o.catalog.Languages() {
		if missing := o.catalog.MissingKeys(lang); len(missing) > 0 {
			log.Warn("translation incomplete, default text kept for missing keys",
				zap.String("lang", lang), zap.Strings("keys", missing))
		}
	}
	tmpl, err := page.New(engine.Languages())
	if err != nil {
		return nil, err
	}

	module := o.module
	a := &App{
		Config:  cfg,
		Log:     log,
		Engine:  engine,
		Page:    tmpl,
		Metrics: o.metrics,
		qr:      loader.Start(ctx, o.qrLoad),
		module: loader.Start(ctx, func(ctx context.Context) (keygen.Module, error) {
			if err := module.Init(ctx); err != nil {
				return nil, err
			}
			return module, nil
		}),
	}
	return a, nil
}

// Close stops any load still in flight.
func (a *App) Close() {
	a.qr.Cancel()
	a.module.Cancel()
}

// Module waits for the crypto module.
func (a *App) Module(ctx context.Context) (keygen.Module, error) {
	m, err := a.module.Await(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", keygen.ErrNotReady, err)
	}
	return m, nil
}

// Presenter returns the wallet presenter. The first call waits up to
// QRLoadTimeout for the QR renderer; without it wallets render without QR
// codes.
func (a *App) Presenter() *wallet.Presenter {
	a.presenterOnce.Do(func() {
		var drawer wallet.QRDrawer
		renderer, err := a.qr.AwaitDeadline(a.Config.QRLoadTimeout)
		switch {
		case errors.Is(err, loader.ErrDeadline):
			a.Log.Warn("QR renderer did not load in time, continuing without QR codes",
				zap.Duration("timeout", a.Config.QRLoadTimeout))
		case err != nil:
			a.Log.Error("failed to load QR renderer", zap.Error(err))
		default:
			drawer = renderer
		}
		a.presenter = wallet.NewPresenter(a.Engine, drawer, a.Log.Named("wallet"))
	})
	return a.presenter
}

// Ready waits for both background loads. Only a crypto module failure is
// reported; a missing QR renderer is tolerated.
func (a *App) Ready(ctx context.Context) error {
	a.Presenter()
	_, err := a.Module(ctx)
	return err
}

// Preferences wraps backend with the configured defaults.
func (a *App) Preferences(backend prefs.Backend) *prefs.Store {
	return prefs.NewStore(backend,
		prefs.WithDefault(prefs.Language, a.Config.DefaultLanguage),
		prefs.WithDefault(prefs.Theme, a.Config.DefaultTheme),
		prefs.WithLogger(a.Log.Named("prefs")),
	)
}

// Generate creates a wallet on network.
func (a *App) Generate(ctx context.Context, network model.Network) (model.WalletRecord, error) {
	m, err := a.Module(ctx)
	if err != nil {
		return model.WalletRecord{}, err
	}
	w, err := m.GenerateWallet(network.IsMainnet())
	if err != nil {
		return model.WalletRecord{}, fmt.Errorf("failed to generate wallet: %w", err)
	}
	a.Metrics.WalletGenerated(network.Kind())
	a.Log.Info("wallet generated", zap.String("network", network.Kind()))
	return w, nil
}

// View describes one rendering of the page.
type View struct {
	Language string
	// Explicit marks Language as chosen by the user, so it is persisted.
	Explicit bool
	// Network preselects the network radio when no wallet is shown.
	Network model.Network
	Wallet  *model.WalletRecord
	Notice  *chrome.Notice
}

type activeLanguage string

func (l activeLanguage) Language() string { return string(l) }

// Render builds the page for v in the theme stored in store.
func (a *App) Render(ctx context.Context, store *prefs.Store, v View) (*html.Node, error) {
	doc, err := a.Page.NewDocument()
	if err != nil {
		return nil, err
	}

	if err := chrome.ApplyTheme(doc, nil, store.Theme()); err != nil {
		a.Log.Debug("stored theme not recognized, using default", zap.Error(err))
		_ = chrome.ApplyTheme(doc, nil, a.Config.DefaultTheme)
	}
	chrome.CloseMenus(doc)

	lang := v.Language
	if lang == "" {
		lang = store.Language()
	}
	var setter i18n.LanguageSetter
	if v.Explicit {
		setter = store
	}
	a.Engine.Apply(doc, setter, lang)
	translate := func(key string) string {
		return a.Engine.Translate(lang, key)
	}

	if _, err := a.Module(ctx); err != nil {
		chrome.ShowModuleError(doc, translate(KeyModuleMissing), err)
	} else {
		chrome.HideOverlay(doc)
	}

	network := v.Network
	if v.Wallet != nil {
		if err := a.Presenter().Present(doc, activeLanguage(lang), *v.Wallet); err != nil {
			return nil, fmt.Errorf("failed to present wallet: %w", err)
		}
		network = v.Wallet.Network
	}
	if network != "" {
		chrome.SelectNetwork(doc, network.Kind())
	}

	chrome.AnnotateShortcuts(doc, wallet.Shown(doc))
	chrome.GuardPrint(doc, translate)

	if v.Notice != nil {
		if err := chrome.ShowToast(doc, v.Notice.Toast(translate)); err != nil {
			a.Log.Warn("failed to show notification", zap.Error(err))
		}
	} else {
		chrome.HideToast(doc)
	}
	return doc, nil
}

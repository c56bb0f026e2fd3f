// @title        TOS Paper Wallet API
// @version      1.0
// @description  Generates offline TOS paper wallets and serves their localized page.
// @BasePath     /
package api

import (
	"io/fs"
	"net/http"
	"os"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/AlexZinkM/tos-paper-wallet/docs"
	"github.com/AlexZinkM/tos-paper-wallet/internal/app"
	"github.com/AlexZinkM/tos-paper-wallet/internal/gateway"
	"github.com/AlexZinkM/tos-paper-wallet/internal/handler"
	"github.com/AlexZinkM/tos-paper-wallet/internal/page"
)

const serviceName = "paper-wallet"

// SetupRouter sets up router with handlers
func SetupRouter(a *app.App) http.Handler {
	pageHandler := handler.NewPageHandler(a)
	walletHandler := handler.NewWalletHandler(a)
	prefsHandler := handler.NewPreferencesHandler(a)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Prometheus
	mux.Handle("/metrics", a.Metrics.Handler())

	// Static bundle
	mux.Handle("/assets/", gateway.New(gateway.FSFetcher{FS: assets(a), Prefix: "/assets/"}, a.Log.Named("gateway")))

	// Page
	mux.HandleFunc("/", pageHandler.Index)
	mux.HandleFunc("/generate", pageHandler.Generate)

	// JSON API
	mux.HandleFunc("/api/wallet/generate", walletHandler.Generate)
	mux.HandleFunc("/api/languages", prefsHandler.Languages)
	mux.HandleFunc("/api/catalog/{lang}", prefsHandler.Catalog)
	mux.HandleFunc("/api/preferences", prefsHandler.Preferences)

	return RequestLogger(a.Log, a.Metrics.Middleware(serviceName, mux))
}

func assets(a *app.App) fs.FS {
	if a.Config.AssetsDir != "" {
		return os.DirFS(a.Config.AssetsDir)
	}
	return page.Static()
}

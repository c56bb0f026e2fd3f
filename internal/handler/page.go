package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/AlexZinkM/tos-paper-wallet/internal/app"
	"github.com/AlexZinkM/tos-paper-wallet/internal/chrome"
	"github.com/AlexZinkM/tos-paper-wallet/internal/common"
	"github.com/AlexZinkM/tos-paper-wallet/internal/keygen"
	"github.com/AlexZinkM/tos-paper-wallet/internal/model"
	"github.com/AlexZinkM/tos-paper-wallet/internal/page"
)

// PageHandler serves the server-rendered wallet page.
type PageHandler struct {
	app *app.App
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(a *app.App) *PageHandler {
	return &PageHandler{app: a}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed. should be GET", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s := newSession(h.app, w, r)
	if theme := r.URL.Query().Get("theme"); theme != "" {
		if chrome.IsTheme(theme) {
			if err := s.store.SetTheme(theme); err != nil {
				h.app.Log.Warn("failed to store theme", zap.Error(err))
			}
		}
	}

	lang, explicit := s.language(h.app, r.URL.Query().Get("lang"))
	if explicit {
		h.app.Metrics.LanguageSelected(lang)
	}

	h.render(w, r, s, http.StatusOK, app.View{Language: lang, Explicit: explicit})
}

// Generate handles POST /generate
func (h *PageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	s := newSession(h.app, w, r)
	lang, explicit := s.language(h.app, r.PostForm.Get("lang"))
	network := model.ParseNetwork(r.PostForm.Get("network"))

	record, err := h.app.Generate(r.Context(), network)
	if err != nil {
		status := http.StatusInternalServerError
		notice := chrome.Notice{Key: app.KeyGenerateFailed, Kind: chrome.KindError}
		if errors.Is(err, keygen.ErrNotReady) {
			status = http.StatusServiceUnavailable
			notice.Key = app.KeyModuleMissing
		}
		h.app.Log.Error("wallet generation failed", zap.Error(err))
		h.render(w, r, s, status, app.View{
			Language: lang,
			Explicit: explicit,
			Network:  network,
			Notice:   &notice,
		})
		return
	}

	common.NoStore(w)
	h.render(w, r, s, http.StatusOK, app.View{
		Language: lang,
		Explicit: explicit,
		Wallet:   &record,
		Notice:   &chrome.Notice{Key: app.KeyGenerated, Kind: chrome.KindSuccess},
	})
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, s session, status int, v app.View) {
	doc, err := h.app.Render(r.Context(), s.store, v)
	if err != nil {
		h.app.Log.Error("failed to render page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	common.SecurityHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if err := page.Render(w, doc); err != nil {
		h.app.Log.Warn("failed to write page", zap.Error(err))
	}
}

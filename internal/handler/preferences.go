package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AlexZinkM/tos-paper-wallet/internal/app"
	"github.com/AlexZinkM/tos-paper-wallet/internal/chrome"
	"github.com/AlexZinkM/tos-paper-wallet/internal/common"
	"github.com/AlexZinkM/tos-paper-wallet/internal/model"
)

// PreferencesHandler exposes languages, catalogs and stored preferences.
type PreferencesHandler struct {
	app *app.App
}

// NewPreferencesHandler creates a new PreferencesHandler
func NewPreferencesHandler(a *app.App) *PreferencesHandler {
	return &PreferencesHandler{app: a}
}

// Languages handles GET /api/languages
// @Summary      List languages
// @Description  Lists the offered languages with their own names and marks the active one
// @Tags         i18n
// @Produce      json
// @Success      200  {object}  model.LanguagesResponse
// @Router       /api/languages [get]
func (h *PreferencesHandler) Languages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. should be GET", http.StatusMethodNotAllowed)
		return
	}

	s := newSession(h.app, w, r)
	active, _ := s.language(h.app, "")

	resp := model.LanguagesResponse{Active: active}
	for _, lang := range h.app.Engine.Languages() {
		resp.Languages = append(resp.Languages, model.LanguageOption{
			Code:   lang.Code,
			Locale: lang.Locale,
			Label:  lang.Label,
			Active: lang.Code == active,
		})
	}
	common.WriteJSON(w, http.StatusOK, resp)
}

// Catalog handles GET /api/catalog/{lang}
// @Summary      Get translations
// @Description  Returns every message of one language
// @Tags         i18n
// @Produce      json
// @Param        lang  path      string  true  "Language code"  example(de)
// @Success      200   {object}  model.CatalogResponse
// @Failure      404   {object}  model.ErrorResponse
// @Router       /api/catalog/{lang} [get]
func (h *PreferencesHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. should be GET", http.StatusMethodNotAllowed)
		return
	}

	lang := r.PathValue("lang")
	c := h.app.Engine.Catalog()
	if !c.HasLanguage(lang) {
		common.WriteError(w, http.StatusNotFound, model.CodeUnknownLanguage, "unknown language: "+lang)
		return
	}
	common.WriteJSON(w, http.StatusOK, model.CatalogResponse{
		Language: lang,
		Messages: c.Messages(lang),
	})
}

// Preferences handles GET and POST /api/preferences
// @Summary      Read or update preferences
// @Description  GET returns the stored theme and language. POST stores the non-empty fields.
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        request  body      model.PreferencesRequest  false  "Preferences to store (POST only)"
// @Success      200      {object}  model.PreferencesResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/preferences [get]
// @Router       /api/preferences [post]
func (h *PreferencesHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	s := newSession(h.app, w, r)

	switch r.Method {
	case http.MethodGet:
	case http.MethodPost:
		var req model.PreferencesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(w, http.StatusBadRequest, model.CodeBadRequest, "invalid JSON body: "+err.Error())
			return
		}
		if req.Language != "" && !h.app.Engine.Catalog().HasLanguage(req.Language) {
			common.WriteError(w, http.StatusBadRequest, model.CodeUnknownLanguage, "unknown language: "+req.Language)
			return
		}
		if req.Theme != "" && !chrome.IsTheme(req.Theme) {
			common.WriteError(w, http.StatusBadRequest, model.CodeInvalidValue, "unknown theme: "+req.Theme)
			return
		}
		if req.Theme != "" {
			if err := s.store.SetTheme(req.Theme); err != nil {
				common.WriteError(w, http.StatusInternalServerError, model.CodeStorageFailed, err.Error())
				return
			}
		}
		if req.Language != "" {
			if err := s.store.SetLanguage(req.Language); err != nil {
				common.WriteError(w, http.StatusInternalServerError, model.CodeStorageFailed, err.Error())
				return
			}
			h.app.Metrics.LanguageSelected(req.Language)
		}
	default:
		http.Error(w, "Method not allowed. should be GET or POST", http.StatusMethodNotAllowed)
		return
	}

	lang, _ := s.language(h.app, "")
	common.WriteJSON(w, http.StatusOK, model.PreferencesResponse{
		Theme:    s.store.Theme(),
		Language: lang,
	})
}

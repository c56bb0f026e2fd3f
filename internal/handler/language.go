package handler

import (
	"net/http"

	"github.com/AlexZinkM/tos-paper-wallet/internal/app"
	"github.com/AlexZinkM/tos-paper-wallet/internal/i18n"
	"github.com/AlexZinkM/tos-paper-wallet/internal/prefs"
)

// session is the preference state of one request.
type session struct {
	r       *http.Request
	backend *prefs.CookieBackend
	store   *prefs.Store
}

func newSession(a *app.App, w http.ResponseWriter, r *http.Request) session {
	backend := prefs.NewCookieBackend(w, r)
	return session{r: r, backend: backend, store: a.Preferences(backend)}
}

// language picks the page language: an explicit known selection, then the
// stored preference, then the browser's Accept-Language, then the default.
// Unknown explicit selections are ignored.
func (s session) language(a *app.App, requested string) (lang string, explicit bool) {
	c := a.Engine.Catalog()
	if requested != "" && c.HasLanguage(requested) {
		return requested, true
	}
	if stored, err := s.backend.Get(prefs.LanguageKey); err == nil && c.HasLanguage(stored) {
		return stored, false
	}
	if matched, ok := i18n.MatchAcceptLanguage(c, s.r.Header.Get("Accept-Language")); ok {
		return matched, false
	}
	return s.store.Default(prefs.Language), false
}

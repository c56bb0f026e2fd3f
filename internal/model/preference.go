package model

// PreferencesResponse represents response for GET/POST /api/preferences
type PreferencesResponse struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// PreferencesRequest represents request for POST /api/preferences.
// Empty fields are left unchanged.
type PreferencesRequest struct {
	Theme    string `json:"theme,omitempty"`
	Language string `json:"language,omitempty"`
}

// LanguageOption is one entry of GET /api/languages
type LanguageOption struct {
	Code   string `json:"code"`
	Locale string `json:"locale"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// LanguagesResponse represents response for GET /api/languages
type LanguagesResponse struct {
	Active    string           `json:"active"`
	Languages []LanguageOption `json:"languages"`
}

// CatalogResponse represents response for GET /api/catalog/{lang}
type CatalogResponse struct {
	Language string            `json:"language"`
	Messages map[string]string `json:"messages"`
}

// Package i18n applies the translation catalog to a rendered page tree.
package i18n

import (
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
	"github.com/AlexZinkM/tos-paper-wallet/internal/i18n/catalog"
)

// DOM contract.
const (
	AttrKey        = "data-i18n"
	AttrLang       = "data-lang"
	AttrNetwork    = "data-network"
	NetworkBadgeID = "networkBadge"

	LanguageOptionClass = "language-option"
	LanguageIconClass   = "lang-icon"
	ActiveClass         = "active"

	KeyMainnet  = "network.mainnet"
	KeyTestnet  = "network.testnet"
	KeyLangName = "lang.name"
)

const selectedIcon = `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 20 20" fill="none"><circle cx="10" cy="10" r="10" fill="#DCE9F9"></circle><path d="M14.53 7a.47.47 0 0 0-.31.14l-5.13 5.03-3.31-3.25a.46.46 0 0 0-.64 0 .44.44 0 0 0 0 .63l3.63 3.57a.46.46 0 0 0 .64 0l5.45-5.35a.44.44 0 0 0-.33-.77Z" fill="#4A90E2"></path></svg>`

const unselectedIcon = `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 20 20" fill="none"><circle cx="10" cy="10" r="9.5" stroke="#D3D4D8"></circle></svg>`

// LanguageSetter persists the active language.
type LanguageSetter interface {
	SetLanguage(lang string) error
}

// Report summarizes one Apply call.
type Report struct {
	Language  string
	LocaleTag string
	Known     bool
	Applied   int
	Missing   []string
	Badge     bool
}

// Language is one entry of the language selector.
type Language struct {
	Code   string `json:"code"`
	Locale string `json:"locale"`
	Label  string `json:"label"`
}

// Engine rewrites translatable elements of a page tree.
type Engine struct {
	catalog *catalog.Catalog
	log     *zap.Logger
}

// NewEngine creates an engine over c.
func NewEngine(c *catalog.Catalog, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{catalog: c, log: log}
}

// Catalog returns the underlying catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Apply renders doc in lang. It never fails: unknown languages and missing
// keys leave the previous text in place.
func (e *Engine) Apply(doc *html.Node, prefs LanguageSetter, lang string) Report {
	report := Report{
		Language:  lang,
		LocaleTag: LocaleTag(lang),
		Known:     e.catalog.HasLanguage(lang),
	}

	if report.Known {
		for _, el := range dom.ElementsWithAttr(doc, AttrKey) {
			key, _ := dom.Attr(el, AttrKey)
			text, found := e.catalog.Lookup(lang, key)
			if !found {
				report.Missing = append(report.Missing, key)
				continue
			}
			if e.apply(el, Plan(text, true, shapeOf(el))) {
				report.Applied++
			}
		}
	} else {
		e.log.Warn("language not in catalog, keeping rendered text", zap.String("lang", lang))
	}

	if root := dom.DocumentElement(doc); root != nil {
		dom.SetAttr(root, "lang", report.LocaleTag)
	}

	report.Badge = e.refreshBadge(doc, lang)

	if prefs != nil {
		if err := prefs.SetLanguage(lang); err != nil {
			e.log.Error("failed to persist language", zap.String("lang", lang), zap.Error(err))
		}
	}
	e.refreshSelector(doc, lang)

	if len(report.Missing) > 0 {
		e.log.Debug("translation keys missing", zap.String("lang", lang), zap.Strings("keys", report.Missing))
	}
	return report
}

// NetworkLabel resolves the badge label for a network kind in lang.
func (e *Engine) NetworkLabel(lang, kind string) (string, bool) {
	return e.catalog.Lookup(lang, NetworkKey(kind))
}

// NetworkKey maps a badge tag to its catalog key.
func NetworkKey(kind string) string {
	if kind == "mainnet" {
		return KeyMainnet
	}
	return KeyTestnet
}

// Translate looks key up in lang, then in the default language, then gives
// the key back. Used for derived strings such as notifications.
func (e *Engine) Translate(lang, key string) string {
	if text, ok := e.catalog.Lookup(lang, key); ok {
		return text
	}
	if text, ok := e.catalog.Lookup(catalog.DefaultLanguage, key); ok {
		return text
	}
	return key
}

// Languages lists offered languages with their self-describing labels.
func (e *Engine) Languages() []Language {
	codes := e.catalog.Languages()
	out := make([]Language, 0, len(codes))
	for _, code := range codes {
		label, ok := e.catalog.Lookup(code, KeyLangName)
		if !ok {
			label = code
		}
		out = append(out, Language{Code: code, Locale: LocaleTag(code), Label: label})
	}
	return out
}

func shapeOf(el *html.Node) NodeShape {
	shape := NodeShape{Elements: len(dom.ElementChildren(el))}
	for _, t := range dom.TextChildren(el) {
		shape.Texts = append(shape.Texts, t.Data)
	}
	return shape
}

func (e *Engine) apply(el *html.Node, in Instruction) bool {
	switch in.Op {
	case OpReplaceMarkup:
		if err := dom.SetInnerHTML(el, in.Text); err != nil {
			e.log.Warn("failed to apply rich translation", zap.Error(err))
			return false
		}
	case OpReplaceTextNodes:
		for i, t := range dom.TextChildren(el) {
			if i < len(in.TextNodes) {
				t.Data = in.TextNodes[i]
			}
		}
	case OpReplaceText:
		dom.SetTextContent(el, in.Text)
	default:
		return false
	}
	return true
}

// refreshBadge re-resolves the badge label from its stored network tag.
func (e *Engine) refreshBadge(doc *html.Node, lang string) bool {
	badge := dom.ElementByID(doc, NetworkBadgeID)
	if badge == nil {
		return false
	}
	kind, ok := dom.Attr(badge, AttrNetwork)
	if !ok || kind == "" {
		return false
	}
	label, ok := e.NetworkLabel(lang, kind)
	if !ok {
		return false
	}
	dom.SetTextContent(badge, label)
	return true
}

func (e *Engine) refreshSelector(doc *html.Node, lang string) {
	for _, option := range dom.ElementsByClass(doc, LanguageOptionClass) {
		code, _ := dom.Attr(option, AttrLang)
		active := code == lang
		dom.ToggleClass(option, ActiveClass, active)

		icon := dom.FirstByClass(option, LanguageIconClass)
		if icon == nil {
			continue
		}
		markup := unselectedIcon
		if active {
			markup = selectedIcon
		}
		if dom.InnerHTML(icon) == markup {
			continue
		}
		if err := dom.SetInnerHTML(icon, markup); err != nil {
			e.log.Warn("failed to draw language indicator", zap.String("lang", code), zap.Error(err))
		}
	}
}

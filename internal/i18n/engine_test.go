package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
	"github.com/AlexZinkM/tos-paper-wallet/internal/i18n/catalog"
)

const page = `<!DOCTYPE html><html lang="en"><head><title data-i18n="app.title">TOS Paper Wallet</title></head><body>
<h2 id="header" data-i18n="wallet.header">Your Paper Wallet</h2>
<button id="gen" data-i18n="action.generate"><svg id="icon"></svg> Generate New Wallet</button>
<li id="warn" data-i18n="warning.security.item1"><i id="bullet"></i>Run offline</li>
<span id="untranslated" data-i18n="no.such.key">Keep me</span>
<span id="networkBadge"></span>
<div class="language-option" data-lang="en"><span class="lang-icon"></span></div>
<div class="language-option" data-lang="de"><span class="lang-icon"></span></div>
</body></html>`

type recordingPrefs struct {
	langs []string
}

func (r *recordingPrefs) SetLanguage(lang string) error {
	r.langs = append(r.langs, lang)
	return nil
}

func testCatalog() *catalog.Catalog {
	return catalog.New(map[string]map[string]string{
		"en": {
			"app.title":              "TOS Paper Wallet",
			"wallet.header":          "Your Paper Wallet",
			"action.generate":        "Generate New Wallet",
			"warning.security.item1": "Run this tool on an <strong>offline computer</strong>",
			"network.mainnet":        "Mainnet",
			"network.testnet":        "Testnet",
			"lang.name":              "English",
		},
		"de": {
			"app.title":              "TOS Papier-Wallet",
			"wallet.header":          "Ihre Papier-Wallet",
			"action.generate":        "Neue Wallet erstellen",
			"warning.security.item1": "Auf einem <strong>Offline-Computer</strong> ausführen",
			"network.mainnet":        "Hauptnetz",
			"network.testnet":        "Testnetz",
			"lang.name":              "Deutsch",
		},
	})
}

func parse(t *testing.T) *html.Node {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func byID(t *testing.T, doc *html.Node, id string) *html.Node {
	t.Helper()
	n := dom.ElementByID(doc, id)
	require.NotNil(t, n, id)
	return n
}

func render(t *testing.T, doc *html.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, dom.Render(&sb, doc))
	return sb.String()
}

func TestApplyPlainText(t *testing.T) {
	doc := parse(t)
	e := NewEngine(testCatalog(), nil)

	report := e.Apply(doc, nil, "de")

	assert.True(t, report.Known)
	assert.Equal(t, "Ihre Papier-Wallet", dom.TextContent(byID(t, doc, "header")))
	assert.Equal(t, []string{"no.such.key"}, report.Missing)
	assert.Equal(t, "Keep me", dom.TextContent(byID(t, doc, "untranslated")))
}

func TestApplyHeaderScenario(t *testing.T) {
	doc := parse(t)
	e := NewEngine(testCatalog(), nil)

	e.Apply(doc, nil, "en")
	assert.Equal(t, "Your Paper Wallet", dom.TextContent(byID(t, doc, "header")))

	e.Apply(doc, nil, "xx")
	assert.Equal(t, "Your Paper Wallet", dom.TextContent(byID(t, doc, "header")))
}

func TestApplyKeepsNonTextChildren(t *testing.T) {
	doc := parse(t)
	e := NewEngine(testCatalog(), nil)
	gen := byID(t, doc, "gen")
	icon := byID(t, doc, "icon")

	e.Apply(doc, nil, "de")

	children := dom.ElementChildren(gen)
	require.Len(t, children, 1)
	assert.Same(t, icon, children[0])
	assert.Same(t, icon, gen.FirstChild)
	assert.Equal(t, "Neue Wallet erstellen", dom.TextContent(gen))
}

func TestApplyRichTextReplacesChildren(t *testing.T) {
	doc := parse(t)
	e := NewEngine(testCatalog(), nil)
	warn := byID(t, doc, "warn")

	e.Apply(doc, nil, "de")

	assert.Nil(t, dom.ElementByID(warn, "bullet"))
	assert.Equal(t, "Auf einem <strong>Offline-Computer</strong> ausführen", dom.InnerHTML(warn))
}

func TestApplyRoundTripMatchesDirectRender(t *testing.T) {
	e := NewEngine(testCatalog(), nil)

	switched := parse(t)
	e.Apply(switched, nil, "en")
	e.Apply(switched, nil, "de")
	e.Apply(switched, nil, "en")

	direct := parse(t)
	e.Apply(direct, nil, "en")

	assert.Equal(t, render(t, direct), render(t, switched))
}

func TestApplyUnknownLanguageLeavesText(t *testing.T) {
	doc := parse(t)
	e := NewEngine(testCatalog(), nil)
	e.Apply(doc, nil, "de")
	before := dom.TextContent(byID(t, doc, "gen")) + dom.TextContent(byID(t, doc, "header"))

	report := e.Apply(doc, nil, "xx")

	assert.False(t, report.Known)
	assert.Zero(t, report.Applied)
	after := dom.TextContent(byID(t, doc, "gen")) + dom.TextContent(byID(t, doc, "header"))
	assert.Equal(t, before, after)
	lang, _ := dom.Attr(dom.DocumentElement(doc), "lang")
	assert.Equal(t, DefaultLocaleTag, lang)
}

func TestApplySetsLocaleTagAndPersists(t *testing.T) {
	doc := parse(t)
	e := NewEngine(testCatalog(), nil)
	prefs := &recordingPrefs{}

	e.Apply(doc, prefs, "de")

	lang, _ := dom.Attr(dom.DocumentElement(doc), "lang")
	assert.Equal(t, "de", lang)
	assert.Equal(t, []string{"de"}, prefs.langs)
}

func TestApplyRefreshesBadgeFromTag(t *testing.T) {
	doc := parse(t)
	e := NewEngine(testCatalog(), nil)
	badge := byID(t, doc, NetworkBadgeID)

	report := e.Apply(doc, nil, "de")
	assert.False(t, report.Badge)
	assert.Empty(t, dom.TextContent(badge))

	dom.SetAttr(badge, AttrNetwork, "mainnet")
	report = e.Apply(doc, nil, "de")
	assert.True(t, report.Badge)
	assert.Equal(t, "Hauptnetz", dom.TextContent(badge))

	e.Apply(doc, nil, "en")
	assert.Equal(t, "Mainnet", dom.TextContent(badge))

	dom.SetAttr(badge, AttrNetwork, "testnet")
	e.Apply(doc, nil, "xx")
	assert.Equal(t, "Mainnet", dom.TextContent(badge))
}

func TestApplyMarksActiveLanguageOption(t *testing.T) {
	doc := parse(t)
	e := NewEngine(testCatalog(), nil)

	e.Apply(doc, nil, "de")

	options := dom.ElementsByClass(doc, LanguageOptionClass)
	require.Len(t, options, 2)
	assert.False(t, dom.HasClass(options[0], ActiveClass))
	assert.True(t, dom.HasClass(options[1], ActiveClass))
	assert.Contains(t, dom.InnerHTML(dom.FirstByClass(options[1], LanguageIconClass)), `fill="#DCE9F9"`)
	assert.Contains(t, dom.InnerHTML(dom.FirstByClass(options[0], LanguageIconClass)), `stroke="#D3D4D8"`)
}

func TestTranslateFallsBackToDefault(t *testing.T) {
	e := NewEngine(catalog.New(map[string]map[string]string{
		"en": {"toast.copied": "Copied!"},
		"de": {},
	}), nil)

	assert.Equal(t, "Copied!", e.Translate("de", "toast.copied"))
	assert.Equal(t, "missing.key", e.Translate("de", "missing.key"))
}

func TestLanguagesUsesSelfLabels(t *testing.T) {
	e := NewEngine(testCatalog(), nil)

	langs := e.Languages()
	require.Len(t, langs, 2)
	assert.Equal(t, Language{Code: "en", Locale: "en", Label: "English"}, langs[0])
	assert.Equal(t, "Deutsch", langs[1].Label)
}

// Package page holds the wallet page template and its static bundle.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/net/html"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
	"github.com/AlexZinkM/tos-paper-wallet/internal/i18n"
)

//go:embed assets/index.html
var indexHTML []byte

//go:embed assets/static
var static embed.FS

// LanguageDropdownID is the container the language options are built into.
const LanguageDropdownID = "langDropdown"

// Template produces fresh copies of the wallet page.
type Template struct {
	source    []byte
	languages []i18n.Language
}

// New builds a template over the embedded page listing languages in the
// language menu.
func New(languages []i18n.Language) (*Template, error) {
	return NewFromSource(indexHTML, languages)
}

// NewFromSource builds a template over custom page markup.
func NewFromSource(source []byte, languages []i18n.Language) (*Template, error) {
	t := &Template{source: source, languages: languages}
	if _, err := t.NewDocument(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewDocument parses a private copy of the page. Callers may mutate it
// freely.
func (t *Template) NewDocument() (*html.Node, error) {
	doc, err := dom.Parse(bytes.NewReader(t.source))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	if dropdown := dom.ElementByID(doc, LanguageDropdownID); dropdown != nil {
		buildLanguageOptions(dropdown, t.languages)
	}
	return doc, nil
}

func buildLanguageOptions(dropdown *html.Node, languages []i18n.Language) {
	dom.RemoveChildren(dropdown)
	for _, lang := range languages {
		option := dom.NewElement("a",
			"class", i18n.LanguageOptionClass,
			i18n.AttrLang, lang.Code,
			"href", "/?lang="+lang.Code,
			"hreflang", lang.Locale,
		)
		option.AppendChild(dom.NewElement("span", "class", i18n.LanguageIconClass))
		label := dom.NewElement("span", "class", "lang-label")
		label.AppendChild(dom.NewText(lang.Label))
		option.AppendChild(label)
		dropdown.AppendChild(option)
	}
}

// Render writes doc as HTML.
func Render(w io.Writer, doc *html.Node) error {
	if err := dom.Render(w, doc); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// Static returns the stylesheet and script bundle.
func Static() fs.FS {
	sub, err := fs.Sub(static, "assets/static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Package chrome renders the page furniture around the wallet: theme,
// menus, notifications, the loading overlay and keyboard shortcuts.
package chrome

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
)

const (
	AttrTheme     = "data-theme"
	ThemeBtnClass = "theme-btn"
	activeClass   = "active"
	hiddenClass   = "hidden"
)

// Themes lists the selectable themes in menu order.
var Themes = []string{"dark", "light", "tos", "purple", "ocean"}

// ErrUnknownTheme is returned for names outside Themes.
var ErrUnknownTheme = errors.New("unknown theme")

// ThemeSetter persists the active theme.
type ThemeSetter interface {
	SetTheme(theme string) error
}

// IsTheme reports whether name is one of Themes.
func IsTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// ApplyTheme switches doc to theme, marks its menu button and persists the
// choice when prefs is non-nil.
func ApplyTheme(doc *html.Node, prefs ThemeSetter, theme string) error {
	if !IsTheme(theme) {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}
	if root := dom.DocumentElement(doc); root != nil {
		dom.SetAttr(root, AttrTheme, theme)
	}
	for _, btn := range dom.ElementsByClass(doc, ThemeBtnClass) {
		name, _ := dom.Attr(btn, AttrTheme)
		dom.ToggleClass(btn, activeClass, name == theme)
	}
	if prefs != nil {
		if err := prefs.SetTheme(theme); err != nil {
			return fmt.Errorf("failed to persist theme: %w", err)
		}
	}
	return nil
}

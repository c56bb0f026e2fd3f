package chrome

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
)

// Menu ids.
const (
	MainMenuID     = "menu"
	LanguageMenuID = "langMenu"
)

// SetMenuOpen opens or closes the <details> menu with the given id.
func SetMenuOpen(doc *html.Node, id string, open bool) error {
	menu := dom.ElementByID(doc, id)
	if menu == nil {
		return fmt.Errorf("menu #%s not found", id)
	}
	if open {
		dom.SetAttr(menu, "open", "")
	} else {
		dom.RemoveAttr(menu, "open")
	}
	return nil
}

// CloseMenus closes both menus, ignoring ones the page does not have.
func CloseMenus(doc *html.Node) {
	for _, id := range []string{MainMenuID, LanguageMenuID} {
		_ = SetMenuOpen(doc, id, false)
	}
}

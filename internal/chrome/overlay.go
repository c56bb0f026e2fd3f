package chrome

import (
	"golang.org/x/net/html"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
)

// Element ids used while the crypto module loads.
const (
	OverlayID     = "loadingOverlay"
	GenerateBtnID = "generateBtn"
	NewWalletID   = "newWalletBtn"
	failedClass   = "failed"
)

// HideOverlay hides the loading overlay once modules are ready.
func HideOverlay(doc *html.Node) {
	if el := dom.ElementByID(doc, OverlayID); el != nil {
		dom.AddClass(el, hiddenClass)
	}
}

// ShowModuleError keeps the loading overlay up with a persistent failure
// message and disables wallet generation.
func ShowModuleError(doc *html.Node, title string, err error) {
	el := dom.ElementByID(doc, OverlayID)
	if el != nil {
		dom.RemoveChildren(el)
		dom.RemoveClass(el, hiddenClass)
		dom.AddClass(el, failedClass)

		heading := dom.NewElement("h2")
		heading.AppendChild(dom.NewText(title))
		el.AppendChild(heading)
		if err != nil {
			detail := dom.NewElement("p", "class", "error-detail")
			detail.AppendChild(dom.NewText(err.Error()))
			el.AppendChild(detail)
		}
	}
	SetGenerateEnabled(doc, false)
}

// SetGenerateEnabled toggles the disabled state of the generate buttons.
func SetGenerateEnabled(doc *html.Node, enabled bool) {
	for _, id := range []string{GenerateBtnID, NewWalletID} {
		btn := dom.ElementByID(doc, id)
		if btn == nil {
			continue
		}
		if enabled {
			dom.RemoveAttr(btn, "disabled")
		} else {
			dom.SetAttr(btn, "disabled", "")
		}
	}
}

package chrome

import (
	"errors"

	"golang.org/x/net/html"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
)

// ToastID is the notification element.
const ToastID = "toast"

// Kind is the tone of a notification.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Toast is a transient notification.
type Toast struct {
	Message string
	Kind    Kind
}

// Notice is an untranslated notification: a catalog key and a tone.
type Notice struct {
	Key  string
	Kind Kind
}

// Toast resolves the notice text with translate.
func (n Notice) Toast(translate func(key string) string) Toast {
	return Toast{Message: translate(n.Key), Kind: n.Kind}
}

var errNoToast = errors.New("toast element not found")

// ShowToast writes t into the notification element and makes it visible.
func ShowToast(doc *html.Node, t Toast) error {
	el := dom.ElementByID(doc, ToastID)
	if el == nil {
		return errNoToast
	}
	kind := t.Kind
	if kind == "" {
		kind = KindInfo
	}
	dom.SetTextContent(el, t.Message)
	dom.SetAttr(el, "class", "toast toast-"+string(kind))
	return nil
}

// HideToast hides the notification element.
func HideToast(doc *html.Node) {
	if el := dom.ElementByID(doc, ToastID); el != nil {
		dom.AddClass(el, hiddenClass)
	}
}

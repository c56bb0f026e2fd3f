package chrome

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
)

// NetworkField is the name of the network radio group.
const NetworkField = "network"

// SelectNetwork checks the network radio whose value is kind and unchecks
// the others. It reports whether a radio matched.
func SelectNetwork(doc *html.Node, kind string) bool {
	matched := false
	dom.Walk(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.DataAtom != atom.Input {
			return true
		}
		if name, _ := dom.Attr(n, "name"); name != NetworkField {
			return true
		}
		if value, _ := dom.Attr(n, "value"); value == kind {
			dom.SetAttr(n, "checked", "")
			matched = true
		} else {
			dom.RemoveAttr(n, "checked")
		}
		return true
	})
	return matched
}

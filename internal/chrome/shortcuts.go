package chrome

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
)

// Chord is a key press with its modifiers.
type Chord struct {
	Key  string
	Ctrl bool
	Meta bool
}

// Action is what a chord triggers.
type Action int

const (
	ActionNone Action = iota
	ActionGenerate
	ActionReplace
	ActionPrint
)

func (a Action) String() string {
	switch a {
	case ActionGenerate:
		return "generate"
	case ActionReplace:
		return "replace"
	case ActionPrint:
		return "print"
	default:
		return "none"
	}
}

// Resolve maps a chord to an action. Ctrl/Cmd+G generates, or asks to
// replace when a wallet is already shown. Ctrl/Cmd+P is left to the
// browser's print.
func Resolve(c Chord, walletShown bool) Action {
	if !c.Ctrl && !c.Meta {
		return ActionNone
	}
	switch strings.ToLower(c.Key) {
	case "g":
		if walletShown {
			return ActionReplace
		}
		return ActionGenerate
	case "p":
		return ActionPrint
	}
	return ActionNone
}

// PrintBtnID is the print button.
const PrintBtnID = "printBtn"

var shortcutTargets = map[Action]string{
	ActionGenerate: GenerateBtnID,
	ActionReplace:  NewWalletID,
	ActionPrint:    PrintBtnID,
}

// AnnotateShortcuts advertises on each button the chords that trigger it in
// the current page state. Buttons no chord reaches lose the attribute.
func AnnotateShortcuts(doc *html.Node, walletShown bool) {
	bound := map[string][]string{}
	for _, key := range []string{"G", "P"} {
		id, ok := shortcutTargets[Resolve(Chord{Key: key, Ctrl: true}, walletShown)]
		if !ok {
			continue
		}
		bound[id] = append(bound[id], "Control+"+key, "Meta+"+key)
	}
	for _, id := range shortcutTargets {
		btn := dom.ElementByID(doc, id)
		if btn == nil {
			continue
		}
		if keys, ok := bound[id]; ok {
			dom.SetAttr(btn, "aria-keyshortcuts", strings.Join(keys, " "))
		} else {
			dom.RemoveAttr(btn, "aria-keyshortcuts")
		}
	}
}

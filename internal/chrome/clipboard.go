package chrome

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"golang.org/x/net/html"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
	"github.com/AlexZinkM/tos-paper-wallet/internal/model"
	"github.com/AlexZinkM/tos-paper-wallet/internal/wallet"
)

// Target is a copyable wallet field.
type Target string

const (
	TargetAddress    Target = "address"
	TargetPrivateKey Target = "private-key"
	TargetSeed       Target = "seed"
)

// Catalog keys of copy notifications.
const (
	KeyCopied        = "copy.success"
	KeyCopiedSeed    = "toast.copied_seed"
	KeyNothingToCopy = "toast.nothing_to_copy"
	KeyCopyFailed    = "toast.copy_failed"
	KeyPrintFirst    = "toast.print_first"
)

// ErrNothingToCopy is returned when the selected field is empty.
var ErrNothingToCopy = errors.New("nothing to copy")

// ParseTarget validates a copy target name.
func ParseTarget(s string) (Target, error) {
	switch t := Target(s); t {
	case TargetAddress, TargetPrivateKey, TargetSeed:
		return t, nil
	}
	return "", fmt.Errorf("unknown copy target %q", s)
}

// CopyText returns the text target selects from w.
func CopyText(target Target, w model.WalletRecord) (string, error) {
	var text string
	switch target {
	case TargetAddress:
		text = w.Address
	case TargetPrivateKey:
		text = w.PrivateKey
	case TargetSeed:
		text = w.SeedPhrase
	default:
		return "", fmt.Errorf("unknown copy target %q", target)
	}
	if text == "" {
		return "", ErrNothingToCopy
	}
	return text, nil
}

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard unsupported on this system")
	}
	return clipboard.WriteAll(text)
}

// Copy writes the selected field to cb and returns the notice to show.
func Copy(cb Clipboard, target Target, w model.WalletRecord) Notice {
	text, err := CopyText(target, w)
	if err != nil {
		return Notice{Key: KeyNothingToCopy, Kind: KindError}
	}
	if err := cb.WriteAll(text); err != nil {
		return Notice{Key: KeyCopyFailed, Kind: KindError}
	}
	if target == TargetSeed {
		return Notice{Key: KeyCopiedSeed, Kind: KindSuccess}
	}
	return Notice{Key: KeyCopied, Kind: KindSuccess}
}

// CanPrint reports whether doc has a wallet worth printing.
func CanPrint(doc *html.Node) bool {
	return wallet.Shown(doc)
}

// PrintGuard returns the notice shown when printing is refused, or false
// when printing may proceed.
func PrintGuard(doc *html.Node) (Notice, bool) {
	if CanPrint(doc) {
		return Notice{}, false
	}
	return Notice{Key: KeyPrintFirst, Kind: KindError}, true
}

// GuardPrint disables the print button with the refusal message as its
// title when PrintGuard refuses, and re-enables it otherwise.
func GuardPrint(doc *html.Node, translate func(key string) string) {
	btn := dom.ElementByID(doc, PrintBtnID)
	if btn == nil {
		return
	}
	if notice, refused := PrintGuard(doc); refused {
		dom.SetAttr(btn, "disabled", "")
		dom.SetAttr(btn, "title", notice.Toast(translate).Message)
		return
	}
	dom.RemoveAttr(btn, "disabled")
	dom.RemoveAttr(btn, "title")
}

// Package wallet renders a generated wallet record into the page tree.
package wallet

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
	"github.com/AlexZinkM/tos-paper-wallet/internal/i18n"
	"github.com/AlexZinkM/tos-paper-wallet/internal/keygen"
	"github.com/AlexZinkM/tos-paper-wallet/internal/model"
	"github.com/AlexZinkM/tos-paper-wallet/internal/qr"
)

// Element ids the presenter writes to.
const (
	DisplayID    = "walletDisplay"
	AddressID    = "addressText"
	PrivateKeyID = "privateKeyText"
	SeedWordsID  = "seedWords"
	AddressQRID  = "addressQR"
	PrivateQRID  = "privateKeyQR"

	AttrSeedPhrase = "data-seed-phrase"
	HiddenClass    = "hidden"
)

// ErrMissingElement is returned when the page lacks a wallet field.
var ErrMissingElement = errors.New("page element missing")

// QRDrawer draws a QR code into a target element.
type QRDrawer interface {
	Draw(target *html.Node, cfg qr.Config) error
}

// LanguageSource yields the active language.
type LanguageSource interface {
	Language() string
}

// Presenter writes wallet records into documents.
type Presenter struct {
	engine *i18n.Engine
	qr     QRDrawer
	log    *zap.Logger
}

// NewPresenter creates a presenter. drawer may be nil when the QR encoder
// failed to load; QR codes are then skipped.
func NewPresenter(engine *i18n.Engine, drawer QRDrawer, log *zap.Logger) *Presenter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Presenter{engine: engine, qr: drawer, log: log}
}

// Present replaces whatever wallet doc currently shows with w.
func (p *Presenter) Present(doc *html.Node, prefs LanguageSource, w model.WalletRecord) error {
	fields := map[string]*html.Node{}
	for _, id := range []string{DisplayID, i18n.NetworkBadgeID, AddressID, PrivateKeyID, SeedWordsID} {
		n := dom.ElementByID(doc, id)
		if n == nil {
			return fmt.Errorf("%w: #%s", ErrMissingElement, id)
		}
		fields[id] = n
	}

	p.presentBadge(fields[i18n.NetworkBadgeID], prefs, w.Network)

	dom.SetTextContent(fields[AddressID], w.Address)
	dom.SetTextContent(fields[PrivateKeyID], w.PrivateKey)

	p.presentSeed(fields[SeedWordsID], w)

	p.drawQR(doc, AddressQRID, w.Address)
	p.drawQR(doc, PrivateQRID, w.PrivateKey)

	dom.RemoveClass(fields[DisplayID], HiddenClass)
	return nil
}

func (p *Presenter) presentBadge(badge *html.Node, prefs LanguageSource, network model.Network) {
	kind := network.Kind()
	label := string(network)
	if prefs != nil {
		if translated, ok := p.engine.NetworkLabel(prefs.Language(), kind); ok {
			label = translated
		}
	}

	dom.SetAttr(badge, i18n.AttrNetwork, kind)
	dom.SetTextContent(badge, label)
	dom.ToggleClass(badge, "badge-mainnet", network.IsMainnet())
	dom.ToggleClass(badge, "badge-testnet", !network.IsMainnet())
}

func (p *Presenter) presentSeed(container *html.Node, w model.WalletRecord) {
	seedWords := w.SeedWords()
	if len(seedWords) != keygen.SeedWordCount {
		p.log.Warn("crypto module returned unexpected seed length",
			zap.Int("words", len(seedWords)),
			zap.Int("expected", keygen.SeedWordCount),
		)
	}

	dom.RemoveChildren(container)
	for i, word := range seedWords {
		entry := dom.NewElement("div", "class", "seed-word")
		number := dom.NewElement("span", "class", "seed-word-number")
		number.AppendChild(dom.NewText(strconv.Itoa(i + 1)))
		text := dom.NewElement("span", "class", "seed-word-text")
		text.AppendChild(dom.NewText(word))
		entry.AppendChild(number)
		entry.AppendChild(text)
		container.AppendChild(entry)
	}
	dom.SetAttr(container, AttrSeedPhrase, w.SeedPhrase)
}

func (p *Presenter) drawQR(doc *html.Node, id, text string) {
	target := dom.ElementByID(doc, id)
	if target == nil {
		p.log.Warn("QR target missing", zap.String("id", id))
		return
	}
	dom.RemoveChildren(target)
	if p.qr == nil {
		p.log.Warn("QR encoder not loaded, skipping", zap.String("id", id))
		return
	}
	if err := p.qr.Draw(target, qr.WalletConfig(text)); err != nil {
		p.log.Error("QR code generation failed", zap.String("id", id), zap.Error(err))
	}
}

// Shown reports whether doc currently displays a wallet.
func Shown(doc *html.Node) bool {
	display := dom.ElementByID(doc, DisplayID)
	return display != nil && !dom.HasClass(display, HiddenClass)
}

package wallet

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/net/html"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
	"github.com/AlexZinkM/tos-paper-wallet/internal/i18n"
	"github.com/AlexZinkM/tos-paper-wallet/internal/i18n/catalog"
	"github.com/AlexZinkM/tos-paper-wallet/internal/model"
	"github.com/AlexZinkM/tos-paper-wallet/internal/prefs"
	"github.com/AlexZinkM/tos-paper-wallet/internal/qr"
)

const fixture = `<!DOCTYPE html><html><body>
<section id="walletDisplay" class="wallet-display hidden">
  <span id="networkBadge" class="network-badge"></span>
  <div id="addressQR"></div><code id="addressText"></code>
  <div id="privateKeyQR"></div><code id="privateKeyText"></code>
  <div id="seedWords"></div>
</section>
</body></html>`

type fakeDrawer struct {
	calls []qr.Config
	err   error
}

func (f *fakeDrawer) Draw(target *html.Node, cfg qr.Config) error {
	f.calls = append(f.calls, cfg)
	if f.err != nil {
		return f.err
	}
	target.AppendChild(dom.NewElement("img", "alt", cfg.Text))
	return nil
}

func newEngine() *i18n.Engine {
	return i18n.NewEngine(catalog.New(map[string]map[string]string{
		"en": {"network.mainnet": "Mainnet", "network.testnet": "Testnet"},
		"de": {"network.mainnet": "Hauptnetz", "network.testnet": "Testnetz"},
	}), nil)
}

func parse(t *testing.T) *html.Node {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(fixture))
	require.NoError(t, err)
	return doc
}

func seedRecord(network model.Network, prefix string) model.WalletRecord {
	words := make([]string, 25)
	for i := range words {
		words[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return model.WalletRecord{
		Network:    network,
		Address:    "T1abc",
		PrivateKey: "K1xyz",
		SeedPhrase: strings.Join(words, " "),
	}
}

func TestPresentExampleWallet(t *testing.T) {
	doc := parse(t)
	drawer := &fakeDrawer{}
	store := prefs.NewStore(prefs.NewMemoryBackend())
	p := NewPresenter(newEngine(), drawer, nil)

	require.False(t, Shown(doc))
	require.NoError(t, p.Present(doc, store, seedRecord(model.NetworkTestnet, "w")))

	badge := dom.ElementByID(doc, i18n.NetworkBadgeID)
	assert.Equal(t, "Testnet", dom.TextContent(badge))
	tag, _ := dom.Attr(badge, i18n.AttrNetwork)
	assert.Equal(t, "testnet", tag)
	assert.True(t, dom.HasClass(badge, "badge-testnet"))
	assert.False(t, dom.HasClass(badge, "badge-mainnet"))

	assert.Equal(t, "T1abc", dom.TextContent(dom.ElementByID(doc, AddressID)))
	assert.Equal(t, "K1xyz", dom.TextContent(dom.ElementByID(doc, PrivateKeyID)))

	entries := dom.ElementsByClass(doc, "seed-word")
	require.Len(t, entries, 25)
	for i, entry := range entries {
		number := dom.FirstByClass(entry, "seed-word-number")
		text := dom.FirstByClass(entry, "seed-word-text")
		assert.Equal(t, fmt.Sprint(i+1), dom.TextContent(number))
		assert.Equal(t, fmt.Sprintf("w%d", i+1), dom.TextContent(text))
	}

	phrase, _ := dom.Attr(dom.ElementByID(doc, SeedWordsID), AttrSeedPhrase)
	assert.Equal(t, seedRecord(model.NetworkTestnet, "w").SeedPhrase, phrase)

	require.Len(t, drawer.calls, 2)
	assert.Equal(t, qr.WalletConfig("T1abc"), drawer.calls[0])
	assert.Equal(t, qr.WalletConfig("K1xyz"), drawer.calls[1])
	assert.Equal(t, 200, drawer.calls[0].Width)

	assert.True(t, Shown(doc))
}

func TestPresentReplacesPreviousWallet(t *testing.T) {
	doc := parse(t)
	store := prefs.NewStore(prefs.NewMemoryBackend())
	p := NewPresenter(newEngine(), &fakeDrawer{}, nil)

	require.NoError(t, p.Present(doc, store, seedRecord(model.NetworkTestnet, "a")))
	second := seedRecord(model.NetworkMainnet, "b")
	second.Address = "T2def"
	require.NoError(t, p.Present(doc, store, second))

	badge := dom.ElementByID(doc, i18n.NetworkBadgeID)
	assert.Equal(t, "Mainnet", dom.TextContent(badge))
	assert.True(t, dom.HasClass(badge, "badge-mainnet"))
	assert.False(t, dom.HasClass(badge, "badge-testnet"))
	assert.Equal(t, "T2def", dom.TextContent(dom.ElementByID(doc, AddressID)))

	entries := dom.ElementsByClass(doc, "seed-word-text")
	require.Len(t, entries, 25)
	assert.Equal(t, "b1", dom.TextContent(entries[0]))

	assert.Len(t, dom.ElementChildren(dom.ElementByID(doc, AddressQRID)), 1)
}

func TestBadgeFollowsLanguage(t *testing.T) {
	doc := parse(t)
	store := prefs.NewStore(prefs.NewMemoryBackend())
	require.NoError(t, store.SetLanguage("de"))
	engine := newEngine()
	p := NewPresenter(engine, &fakeDrawer{}, nil)

	require.NoError(t, p.Present(doc, store, seedRecord(model.NetworkMainnet, "w")))
	badge := dom.ElementByID(doc, i18n.NetworkBadgeID)
	assert.Equal(t, "Hauptnetz", dom.TextContent(badge))

	engine.Apply(doc, store, "en")
	assert.Equal(t, "Mainnet", dom.TextContent(badge))
}

func TestBadgeFallsBackToNetworkName(t *testing.T) {
	doc := parse(t)
	store := prefs.NewStore(prefs.NewMemoryBackend())
	require.NoError(t, store.SetLanguage("xx"))
	p := NewPresenter(newEngine(), nil, nil)

	require.NoError(t, p.Present(doc, store, seedRecord(model.NetworkTestnet, "w")))
	assert.Equal(t, "Testnet", dom.TextContent(dom.ElementByID(doc, i18n.NetworkBadgeID)))
}

func TestQRFailureDoesNotBlock(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	doc := parse(t)
	p := NewPresenter(newEngine(), &fakeDrawer{err: errors.New("encoder broke")}, zap.New(core))

	require.NoError(t, p.Present(doc, nil, seedRecord(model.NetworkTestnet, "w")))

	assert.True(t, Shown(doc))
	assert.Equal(t, "T1abc", dom.TextContent(dom.ElementByID(doc, AddressID)))
	assert.Equal(t, 2, logs.FilterMessage("QR code generation failed").Len())
}

func TestNilDrawerSkipsQR(t *testing.T) {
	doc := parse(t)
	p := NewPresenter(newEngine(), nil, nil)

	require.NoError(t, p.Present(doc, nil, seedRecord(model.NetworkTestnet, "w")))
	assert.Empty(t, dom.ElementChildren(dom.ElementByID(doc, AddressQRID)))
	assert.True(t, Shown(doc))
}

func TestUnexpectedSeedLengthIsRenderedAsIs(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	doc := parse(t)
	p := NewPresenter(newEngine(), nil, zap.New(core))

	w := seedRecord(model.NetworkTestnet, "w")
	w.SeedPhrase = "one two three"
	require.NoError(t, p.Present(doc, nil, w))

	assert.Len(t, dom.ElementsByClass(doc, "seed-word"), 3)
	assert.Equal(t, 1, logs.FilterMessage("crypto module returned unexpected seed length").Len())
}

func TestMissingElement(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(`<html><body><div id="walletDisplay"></div></body></html>`))
	require.NoError(t, err)

	err = NewPresenter(newEngine(), nil, nil).Present(doc, nil, seedRecord(model.NetworkTestnet, "w"))
	assert.ErrorIs(t, err, ErrMissingElement)
}

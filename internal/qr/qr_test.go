package qr

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
)

func TestPNGSize(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	data, err := r.PNG(WalletConfig("tst1qexample"))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestPNGRejectsEmptyText(t *testing.T) {
	r := &Renderer{}
	_, err := r.PNG(WalletConfig(""))
	assert.Error(t, err)
}

func TestPNGRejectsBadColor(t *testing.T) {
	r := &Renderer{}
	cfg := WalletConfig("x")
	cfg.Dark = "#12"
	_, err := r.PNG(cfg)
	assert.Error(t, err)
}

func TestDrawReplacesContent(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(`<html><body><div id="qr"><canvas></canvas></div></body></html>`))
	require.NoError(t, err)
	target := dom.ElementByID(doc, "qr")

	r := &Renderer{}
	require.NoError(t, r.Draw(target, WalletConfig("K1xyz")))
	require.NoError(t, r.Draw(target, WalletConfig("K2xyz")))

	children := dom.ElementChildren(target)
	require.Len(t, children, 1)
	assert.Equal(t, "img", children[0].Data)
	src, _ := dom.Attr(children[0], "src")
	assert.True(t, strings.HasPrefix(src, "data:image/png;base64,"))
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#ff8000", color.Black)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, c)

	c, err = parseHexColor("", color.White)
	require.NoError(t, err)
	assert.Equal(t, color.White, c)
}

func TestTerminal(t *testing.T) {
	out, err := Terminal("tos1qexample", LevelMedium)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

// Package qr draws QR codes into page elements as PNG data URIs.
package qr

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"
	"golang.org/x/net/html"

	"github.com/AlexZinkM/tos-paper-wallet/internal/dom"
)

// Level is the error-correction level.
type Level = qrcode.RecoveryLevel

const (
	LevelLow     = qrcode.Low
	LevelMedium  = qrcode.Medium
	LevelHigh    = qrcode.High
	LevelHighest = qrcode.Highest
)

// Config describes one drawing.
type Config struct {
	Text   string
	Width  int
	Height int
	Dark   string
	Light  string
	Level  Level
}

// WalletConfig returns the configuration used for wallet fields.
func WalletConfig(text string) Config {
	return Config{
		Text:   text,
		Width:  200,
		Height: 200,
		Dark:   "#000000",
		Light:  "#ffffff",
		Level:  LevelMedium,
	}
}

// Renderer draws QR codes.
type Renderer struct{}

// NewRenderer returns a renderer after checking the encoder works.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{}
	if _, err := r.PNG(WalletConfig("probe")); err != nil {
		return nil, fmt.Errorf("failed to initialize QR encoder: %w", err)
	}
	return r, nil
}

// PNG encodes cfg as a square PNG. The side is the larger of Width and Height.
func (r *Renderer) PNG(cfg Config) ([]byte, error) {
	if cfg.Text == "" {
		return nil, fmt.Errorf("nothing to encode")
	}
	q, err := qrcode.New(cfg.Text, cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}
	if q.ForegroundColor, err = parseHexColor(cfg.Dark, color.Black); err != nil {
		return nil, err
	}
	if q.BackgroundColor, err = parseHexColor(cfg.Light, color.White); err != nil {
		return nil, err
	}

	size := cfg.Width
	if cfg.Height > size {
		size = cfg.Height
	}
	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}

// DataURI encodes cfg as a base64 PNG data URI.
func (r *Renderer) DataURI(cfg Config) (string, error) {
	png, err := r.PNG(cfg)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// Draw clears target and appends an <img> holding the code.
func (r *Renderer) Draw(target *html.Node, cfg Config) error {
	if target == nil {
		return fmt.Errorf("no target element")
	}
	uri, err := r.DataURI(cfg)
	if err != nil {
		return err
	}
	dom.RemoveChildren(target)
	target.AppendChild(dom.NewElement("img",
		"src", uri,
		"width", strconv.Itoa(cfg.Width),
		"height", strconv.Itoa(cfg.Height),
		"alt", "QR",
	))
	return nil
}

// Terminal renders cfg.Text with half-block characters for a terminal.
func Terminal(text string, level Level) (string, error) {
	q, err := qrcode.New(text, level)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}
	return q.ToSmallString(false), nil
}

func parseHexColor(s string, fallback color.Color) (color.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return fallback, nil
	}
	if len(s) != 6 {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Package keygen is the boundary to the wallet-generating crypto module.
package keygen

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/curve25519"

	"github.com/AlexZinkM/tos-paper-wallet/internal/model"
)

// Address prefixes.
const (
	MainnetHRP = "tos"
	TestnetHRP = "tst"

	addressTypeNormal = 0
)

// ErrNotReady is returned when GenerateWallet is called before Init.
var ErrNotReady = errors.New("crypto module not loaded yet")

// Module generates wallets.
type Module interface {
	Init(ctx context.Context) error
	GenerateWallet(isMainnet bool) (model.WalletRecord, error)
}

// LocalModule generates wallets in-process.
type LocalModule struct {
	rand  io.Reader
	ready bool
}

// NewLocalModule creates a module reading entropy from crypto/rand.
func NewLocalModule() *LocalModule {
	return NewLocalModuleWithRand(rand.Reader)
}

// NewLocalModuleWithRand creates a module reading entropy from r.
func NewLocalModuleWithRand(r io.Reader) *LocalModule {
	return &LocalModule{rand: r}
}

// Init checks the word list and the entropy source.
func (m *LocalModule) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n := uint64(len(words)); n*n*n < 1<<32 {
		return fmt.Errorf("word list too short: %d words", n)
	}
	probe := make([]byte, keySize)
	if _, err := io.ReadFull(m.rand, probe); err != nil {
		return fmt.Errorf("failed to read entropy: %w", err)
	}
	clear(probe)
	m.ready = true
	return nil
}

// GenerateWallet creates a fresh wallet for the selected network.
func (m *LocalModule) GenerateWallet(isMainnet bool) (model.WalletRecord, error) {
	if !m.ready {
		return model.WalletRecord{}, ErrNotReady
	}

	priv, err := m.privateKey()
	if err != nil {
		return model.WalletRecord{}, err
	}
	defer clear(priv)

	pub, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return model.WalletRecord{}, fmt.Errorf("failed to derive public key: %w", err)
	}

	network, hrp := model.NetworkTestnet, TestnetHRP
	if isMainnet {
		network, hrp = model.NetworkMainnet, MainnetHRP
	}
	address, err := EncodeAddress(hrp, pub)
	if err != nil {
		return model.WalletRecord{}, err
	}

	seed, err := KeyToWords(priv)
	if err != nil {
		return model.WalletRecord{}, err
	}
	if !VerifyChecksum(seed) {
		return model.WalletRecord{}, errors.New("seed phrase failed its checksum")
	}

	return model.WalletRecord{
		Network:    network,
		Address:    address,
		PrivateKey: hex.EncodeToString(priv),
		SeedPhrase: strings.Join(seed, " "),
	}, nil
}

// privateKey draws 32 random bytes, resampling the all-zero key.
func (m *LocalModule) privateKey() ([]byte, error) {
	priv := make([]byte, keySize)
	for {
		if _, err := io.ReadFull(m.rand, priv); err != nil {
			return nil, fmt.Errorf("failed to read entropy: %w", err)
		}
		if !isZero(priv) {
			return priv, nil
		}
	}
}

// EncodeAddress encodes pub followed by the normal address type as bech32.
func EncodeAddress(hrp string, pub []byte) (string, error) {
	payload := make([]byte, 0, len(pub)+1)
	payload = append(payload, pub...)
	payload = append(payload, addressTypeNormal)

	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert address bits: %w", err)
	}
	address, err := bech32.Encode(hrp, conv)
	if err != nil {
		return "", fmt.Errorf("failed to encode address: %w", err)
	}
	return address, nil
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

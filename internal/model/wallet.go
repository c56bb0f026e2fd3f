package model

import "strings"

// Network is the network name reported by the crypto module.
type Network string

const (
	NetworkMainnet Network = "Mainnet"
	NetworkTestnet Network = "Testnet"
)

// Kind returns the badge tag of the network ("mainnet" or "testnet").
func (n Network) Kind() string {
	if n == NetworkMainnet {
		return "mainnet"
	}
	return "testnet"
}

// IsMainnet reports whether n is the main network.
func (n Network) IsMainnet() bool {
	return n == NetworkMainnet
}

// ParseNetwork maps a form/query value to a Network. Anything other than
// "mainnet" selects the test network.
func ParseNetwork(value string) Network {
	if strings.EqualFold(strings.TrimSpace(value), "mainnet") {
		return NetworkMainnet
	}
	return NetworkTestnet
}

// WalletRecord is one generated wallet. It is never written to disk.
type WalletRecord struct {
	Network    Network `json:"network"`
	Address    string  `json:"address"`
	PrivateKey string  `json:"private_key"`
	SeedPhrase string  `json:"seed_phrase"`
}

// SeedWords splits the seed phrase on single spaces.
func (w WalletRecord) SeedWords() []string {
	if w.SeedPhrase == "" {
		return nil
	}
	return strings.Split(w.SeedPhrase, " ")
}

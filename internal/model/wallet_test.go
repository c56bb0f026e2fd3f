package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNetwork(t *testing.T) {
	assert.Equal(t, NetworkMainnet, ParseNetwork("mainnet"))
	assert.Equal(t, NetworkMainnet, ParseNetwork(" MainNet "))
	assert.Equal(t, NetworkTestnet, ParseNetwork("testnet"))
	assert.Equal(t, NetworkTestnet, ParseNetwork(""))
}

func TestNetworkKind(t *testing.T) {
	assert.Equal(t, "mainnet", NetworkMainnet.Kind())
	assert.Equal(t, "testnet", NetworkTestnet.Kind())
	assert.True(t, NetworkMainnet.IsMainnet())
	assert.False(t, NetworkTestnet.IsMainnet())
}

func TestSeedWordsKeepsEveryToken(t *testing.T) {
	w := WalletRecord{SeedPhrase: "a b c"}
	assert.Equal(t, []string{"a", "b", "c"}, w.SeedWords())

	w = WalletRecord{SeedPhrase: "a  b"}
	assert.Equal(t, []string{"a", "", "b"}, w.SeedWords())

	assert.Nil(t, WalletRecord{}.SeedWords())
}

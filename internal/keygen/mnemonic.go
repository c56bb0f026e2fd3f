package keygen

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

const (
	keySize      = 32
	seedLength   = 24
	prefixLength = 3
)

// words is the seed word list. Its length must cube past 2^32 so three
// words can carry one uint32.
var words = wordlists.English

// SeedWordCount is the length of a seed phrase: 24 data words and one
// checksum word.
const SeedWordCount = seedLength + 1

// KeyToWords encodes a 32-byte private key as 24 words plus a checksum word.
func KeyToWords(key []byte) ([]string, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", keySize, len(key))
	}
	n := uint32(len(words))

	out := make([]string, 0, SeedWordCount)
	for i := 0; i < keySize; i += 4 {
		val := binary.LittleEndian.Uint32(key[i : i+4])
		a := val % n
		b := (val/n + a) % n
		c := (val/n/n + b) % n
		out = append(out, words[a], words[b], words[c])
	}
	out = append(out, out[checksumIndex(out)])
	return out, nil
}

// checksumIndex picks the word repeated as checksum from the CRC32 of the
// words' three-letter prefixes.
func checksumIndex(seed []string) int {
	var sb strings.Builder
	for _, w := range seed {
		w = strings.ToLower(w)
		if r := []rune(w); len(r) > prefixLength {
			w = string(r[:prefixLength])
		}
		sb.WriteString(w)
	}
	return int(crc32.ChecksumIEEE([]byte(sb.String())) % seedLength)
}

// VerifyChecksum reports whether the last word of a seed phrase matches its
// checksum.
func VerifyChecksum(phrase []string) bool {
	if len(phrase) != SeedWordCount {
		return false
	}
	data := phrase[:seedLength]
	return phrase[seedLength] == data[checksumIndex(data)]
}

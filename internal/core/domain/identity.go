package domain

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Address is an opaque caller identity supplied by the authentication layer.
type Address string

// IsZero returns true for the empty identity.
func (a Address) IsZero() bool {
	return a == ""
}

// Hash is a fixed-size opaque token derived from a caller-supplied external
// identifier. Raw identifier strings are never stored; equality checks hash
// the supplied value identically before comparing.
type Hash [32]byte

// HashID derives the Keccak-256 token for an external identifier.
func HashID(s string) Hash {
	var h Hash
	d := sha3.NewLegacyKeccak256()
	d.Write([]byte(s))
	copy(h[:], d.Sum(nil))
	return h
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalText encodes the hash as lowercase hex.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes a lowercase hex token.
func (h *Hash) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("decoding hash: %w", err)
	}
	if len(b) != len(h) {
		return fmt.Errorf("decoding hash: expected %d bytes, got %d", len(h), len(b))
	}
	copy(h[:], b)
	return nil
}

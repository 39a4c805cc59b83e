// Package pseudonym derives the opaque tenant_hash / owner_hash tokens the
// fact record stores instead of personal identifiers. The derivation is a
// keyed BLAKE2b hash: deterministic for a fixed key (the same person maps to
// the same token across records) and unlinkable without it.
package pseudonym

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Size of the derived token in bytes before hex encoding.
const Size = 16

// Hasher derives pseudonymous tokens under one key.
type Hasher struct {
	key []byte
}

// New builds a Hasher. Keys longer than 64 bytes are rejected by BLAKE2b.
func New(key []byte) (*Hasher, error) {
	// Validate the key once up front so Derive can stay infallible.
	if _, err := blake2b.New(Size, key); err != nil {
		return nil, err
	}
	return &Hasher{key: append([]byte(nil), key...)}, nil
}

// Derive maps an identifier to its hex-encoded pseudonym.
func (h *Hasher) Derive(identifier string) string {
	mac, _ := blake2b.New(Size, h.key)
	mac.Write([]byte(identifier))
	return hex.EncodeToString(mac.Sum(nil))
}

package codec

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/Neumenon/variant/variant"
)

// Digest returns the BLAKE3 hash of the value's deterministic CBOR
// encoding. Equal values produce equal digests regardless of how their
// objects were assembled, since object keys are sorted on the wire.
// Note that set-typed application data encodes in iteration order
// before it ever reaches the value model; the digest canonicalizes
// object keys, not array element order.
func Digest(v variant.Value) ([32]byte, error) {
	data, err := EncodeCBOR(v)
	if err != nil {
		return [32]byte{}, err
	}
	return blake3.Sum256(data), nil
}

// DigestString returns the digest in "blake3:<hex>" content-ID form.
func DigestString(v variant.Value) (string, error) {
	sum, err := Digest(v)
	if err != nil {
		return "", err
	}
	return "blake3:" + hex.EncodeToString(sum[:]), nil
}

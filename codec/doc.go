// Package codec provides encoders and decoders for variant values.
// The value model itself defines no wire format; everything here is
// built on the public accessor and visitor surface of package variant.
//
// Supported formats:
//   - JSON: insertion order of object fields is preserved both ways.
//   - CBOR: RFC 8949 Core Deterministic Encoding. Map keys are sorted
//     on the wire, so object insertion order does not survive a CBOR
//     round trip.
//   - YAML: insertion order preserved via node trees.
//   - Frame: a magic header plus zstd-compressed deterministic CBOR.
//
// Digest hashes the deterministic CBOR bytes with BLAKE3, giving a
// content address that is stable across object insertion orders.
package codec

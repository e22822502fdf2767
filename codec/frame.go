package codec

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/Neumenon/variant/variant"
)

// frameMagic identifies a compressed variant frame: 4 magic bytes
// followed by a zstd stream containing the deterministic CBOR encoding
// of the value.
var frameMagic = []byte{'V', 'R', 'Z', '1'}

var (
	zstdEnc *zstd.Encoder
	zstdDec *zstd.Decoder
)

func init() {
	var err error
	zstdEnc, err = zstd.NewWriter(nil)
	if err != nil {
		panic("codec: zstd encoder initialization failed: " + err.Error())
	}
	zstdDec, err = zstd.NewReader(nil)
	if err != nil {
		panic("codec: zstd decoder initialization failed: " + err.Error())
	}
}

// EncodeFrame renders v as a compressed binary frame.
func EncodeFrame(v variant.Value) ([]byte, error) {
	payload, err := EncodeCBOR(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(frameMagic), len(frameMagic)+len(payload)/2)
	copy(out, frameMagic)
	return zstdEnc.EncodeAll(payload, out), nil
}

// DecodeFrame parses a compressed binary frame into a value.
func DecodeFrame(data []byte) (variant.Value, error) {
	if len(data) < len(frameMagic) || !bytes.Equal(data[:len(frameMagic)], frameMagic) {
		return variant.Null(), fmt.Errorf("codec: bad frame magic")
	}
	payload, err := zstdDec.DecodeAll(data[len(frameMagic):], nil)
	if err != nil {
		return variant.Null(), fmt.Errorf("codec: decompress frame: %w", err)
	}
	return DecodeCBOR(payload)
}

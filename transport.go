package nanojson

import (
	"fmt"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// TransportCodec selects the compressor CompressOutput/DecompressOutput
// use. This operates purely on a finished Writer's output bytes for
// low-bandwidth embedded transport - it is not a descriptor-array store,
// which callers are expected to hold themselves (an explicit out-of-scope
// external collaborator for this package).
type TransportCodec uint8

const (
	// TransportS2 is block-mode S2 compression (a Snappy derivative): cheap,
	// favors encode speed over ratio.
	TransportS2 TransportCodec = iota
	// TransportZstd trades encode speed for a better compression ratio,
	// worthwhile once payloads are large enough to amortize the cost.
	TransportZstd
)

var zstdEncoder *zstd.Encoder
var zstdDecoder *zstd.Decoder

func init() {
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
}

// CompressOutput compresses written (typically the result of
// Writer.Written after Finalize) with codec. dst may be nil; when it has
// enough capacity it is reused, otherwise a new slice is allocated.
func CompressOutput(codec TransportCodec, dst, written []byte) ([]byte, error) {
	switch codec {
	case TransportS2:
		return s2.Encode(dst, written), nil
	case TransportZstd:
		return zstdEncoder.EncodeAll(written, dst), nil
	default:
		return nil, fmt.Errorf("nanojson: unknown transport codec %d", codec)
	}
}

// DecompressOutput reverses CompressOutput. dst may be nil; when it has
// enough capacity it is reused, otherwise a new slice is allocated.
func DecompressOutput(codec TransportCodec, dst, compressed []byte) ([]byte, error) {
	switch codec {
	case TransportS2:
		return s2.Decode(dst, compressed)
	case TransportZstd:
		return zstdDecoder.DecodeAll(compressed, dst)
	default:
		return nil, fmt.Errorf("nanojson: unknown transport codec %d", codec)
	}
}

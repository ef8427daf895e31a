package nanojson

import "testing"

func TestTransportRoundTrip(t *testing.T) {
	var buf [64]byte
	w := NewWriter(buf[:])
	w.ObjectBegin(nil)
	w.Bool([]byte("val1"), true)
	w.String([]byte("val2"), []byte("string"))
	w.ObjectEnd()
	n := w.Finalize()
	written := buf[:n]

	codecs := []struct {
		name  string
		codec TransportCodec
	}{
		{"s2", TransportS2},
		{"zstd", TransportZstd},
	}
	for _, tt := range codecs {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := CompressOutput(tt.codec, nil, written)
			if err != nil {
				t.Fatalf("CompressOutput(%s) failed: %v", tt.name, err)
			}
			decompressed, err := DecompressOutput(tt.codec, nil, compressed)
			if err != nil {
				t.Fatalf("DecompressOutput(%s) failed: %v", tt.name, err)
			}
			if string(decompressed) != string(written) {
				t.Errorf("%s round trip = %q, want %q", tt.name, decompressed, written)
			}
		})
	}
}

func TestTransportRoundTripReusesDst(t *testing.T) {
	written := []byte(`{"val1":true,"val2":"string"}`)
	for _, tt := range []struct {
		name  string
		codec TransportCodec
	}{
		{"s2", TransportS2},
		{"zstd", TransportZstd},
	} {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := CompressOutput(tt.codec, nil, written)
			if err != nil {
				t.Fatalf("CompressOutput(%s) failed: %v", tt.name, err)
			}
			dst := make([]byte, 0, len(written)+64)
			decompressed, err := DecompressOutput(tt.codec, dst, compressed)
			if err != nil {
				t.Fatalf("DecompressOutput(%s) failed: %v", tt.name, err)
			}
			if string(decompressed) != string(written) {
				t.Errorf("%s round trip with preallocated dst = %q, want %q", tt.name, decompressed, written)
			}
		})
	}
}

func TestTransportUnknownCodec(t *testing.T) {
	const unknown TransportCodec = 99
	if _, err := CompressOutput(unknown, nil, []byte("x")); err == nil {
		t.Error("CompressOutput with an unknown codec should return an error")
	}
	if _, err := DecompressOutput(unknown, nil, []byte("x")); err == nil {
		t.Error("DecompressOutput with an unknown codec should return an error")
	}
}

package assets

import (
	"bytes"
	"testing"
)

func samplePlane() []byte {
	plane := make([]byte, PlaneSize)
	for i := 0; i < 50; i++ {
		plane[i] = 0xAA // long run, encodes as a repeat
	}
	for i := 50; i < 60; i++ {
		plane[i] = byte(i) // literal run, no repeats
	}
	// leave the rest zeroed, another long run
	return plane
}

func TestEGARoundTrip(t *testing.T) {
	img := &Image{}
	for p := 0; p < NumPlanes; p++ {
		img.Planes[p] = samplePlane()
	}

	var buf bytes.Buffer
	if err := EncodeEGA(&buf, img); err != nil {
		t.Fatalf("EncodeEGA: %v", err)
	}

	decoded, err := DecodeEGA(&buf)
	if err != nil {
		t.Fatalf("DecodeEGA: %v", err)
	}
	for p := 0; p < NumPlanes; p++ {
		if !bytes.Equal(decoded.Planes[p], img.Planes[p]) {
			t.Fatalf("plane %d round-trip mismatch", p)
		}
	}
}

func TestEGAEncoderNeverEmits0x80(t *testing.T) {
	img := &Image{}
	for p := 0; p < NumPlanes; p++ {
		img.Planes[p] = samplePlane()
	}

	var buf bytes.Buffer
	if err := EncodeEGA(&buf, img); err != nil {
		t.Fatalf("EncodeEGA: %v", err)
	}

	data := buf.Bytes()[2:] // skip plane_size header
	i := 0
	for i < len(data) {
		ctrl := data[i]
		if ctrl == 0x80 {
			t.Fatalf("encoder emitted a 0x80 control byte at offset %d", i)
		}
		if ctrl < 0x80 {
			i += 1 + int(ctrl)
		} else {
			i += 2
		}
	}
}

func TestEGADecoderAcceptsZeroLengthRun(t *testing.T) {
	// A single plane: control byte 0x80 (zero-length repeat, consumes one
	// value byte) followed by a literal run filling the rest of the plane.
	var buf bytes.Buffer
	buf.WriteByte(0x80)
	buf.WriteByte(0x00) // value byte, contributes nothing

	remaining := PlaneSize
	for remaining > 0 {
		n := remaining
		if n > 127 {
			n = 127
		}
		buf.WriteByte(byte(n))
		buf.Write(make([]byte, n))
		remaining -= n
	}

	plane, err := rleDecodePlane(&buf, PlaneSize)
	if err != nil {
		t.Fatalf("rleDecodePlane: %v", err)
	}
	if len(plane) != PlaneSize {
		t.Fatalf("decoded plane length = %d, want %d", len(plane), PlaneSize)
	}
}

package assets

import (
	"encoding/binary"
	"fmt"
	"io"
)

// PlaneSize is the fixed byte size of one EGA bitplane: 320x200 pixels at
// one bit per pixel, 8 pixels per byte.
const PlaneSize = 8000

// NumPlanes is the number of EGA bitplanes (one per color bit: blue, green,
// red, intensity).
const NumPlanes = 4

// Image is a decoded EGA fullscreen asset: 4 RLE-decoded bitplanes of
// PlaneSize bytes each.
type Image struct {
	Planes [NumPlanes][]byte
}

// DecodeEGA reads an EGA fullscreen image asset: plane_size:u16, then
// RLE-encoded data for 4 planes in sequence.
func DecodeEGA(r io.Reader) (*Image, error) {
	var planeSize uint16
	if err := binary.Read(r, binary.LittleEndian, &planeSize); err != nil {
		return nil, fmt.Errorf("decode EGA header: %w", err)
	}

	img := &Image{}
	for p := 0; p < NumPlanes; p++ {
		plane, err := rleDecodePlane(r, int(planeSize))
		if err != nil {
			return nil, fmt.Errorf("decode EGA plane %d: %w", p, err)
		}
		img.Planes[p] = plane
	}
	return img, nil
}

// rleDecodePlane reads RLE-encoded control/data pairs from r until it has
// produced exactly size decoded bytes. A control byte < 0x80 means that many
// literal bytes follow; > 0x80 means the next byte repeats (b - 127) times.
// A control byte of exactly 0x80 is legal: it consumes its value byte and
// contributes zero bytes.
func rleDecodePlane(r io.Reader, size int) ([]byte, error) {
	out := make([]byte, 0, size)
	var ctrl [1]byte
	var val [1]byte
	for len(out) < size {
		if _, err := io.ReadFull(r, ctrl[:]); err != nil {
			return nil, fmt.Errorf("read control byte: %w", err)
		}
		b := ctrl[0]
		if b < 0x80 {
			n := int(b)
			buf := make([]byte, n)
			if n > 0 {
				if _, err := io.ReadFull(r, buf); err != nil {
					return nil, fmt.Errorf("read %d literal bytes: %w", n, err)
				}
			}
			out = append(out, buf...)
		} else {
			if _, err := io.ReadFull(r, val[:]); err != nil {
				return nil, fmt.Errorf("read repeat value: %w", err)
			}
			count := int(b) - 127
			if b == 0x80 {
				count = 0
			}
			for i := 0; i < count; i++ {
				out = append(out, val[0])
			}
		}
	}
	if len(out) != size {
		return nil, fmt.Errorf("decoded plane size %d, want %d", len(out), size)
	}
	return out, nil
}

// EncodeEGA writes img as an EGA fullscreen asset, RLE-encoding each plane.
// The encoder never emits a 0x80 control byte (a legal but degenerate
// zero-length run the decoder accepts but this encoder has no reason to
// produce).
func EncodeEGA(w io.Writer, img *Image) error {
	if err := binary.Write(w, binary.LittleEndian, uint16(PlaneSize)); err != nil {
		return fmt.Errorf("encode EGA header: %w", err)
	}
	for p := 0; p < NumPlanes; p++ {
		if err := rleEncodePlane(w, img.Planes[p]); err != nil {
			return fmt.Errorf("encode EGA plane %d: %w", p, err)
		}
	}
	return nil
}

// rleEncodePlane writes plane as a sequence of RLE control/data pairs,
// greedily preferring runs when a byte repeats at least 3 times (a run
// costs 2 bytes regardless of length, so 2 repeats cost the same as a
// 2-byte literal but 3+ repeats win).
func rleEncodePlane(w io.Writer, plane []byte) error {
	i := 0
	for i < len(plane) {
		runLen := 1
		for i+runLen < len(plane) && plane[i+runLen] == plane[i] && runLen < 128 {
			runLen++
		}

		if runLen >= 3 {
			if _, err := w.Write([]byte{byte(127 + runLen), plane[i]}); err != nil {
				return err
			}
			i += runLen
			continue
		}

		// Accumulate a literal run until a repeat of 3+ would pay off.
		start := i
		i++
		for i < len(plane) {
			look := 1
			for i+look < len(plane) && plane[i+look] == plane[i] && look < 128 {
				look++
			}
			if look >= 3 {
				break
			}
			i++
			if i-start >= 127 {
				break
			}
		}
		lit := plane[start:i]
		if _, err := w.Write([]byte{byte(len(lit))}); err != nil {
			return err
		}
		if _, err := w.Write(lit); err != nil {
			return err
		}
	}
	return nil
}

package assets

import (
	"fmt"
	"io"
)

// Horizontal frame-reuse modes for a sprite sheet's right-facing frames.
const (
	HorizontalDuplicated uint8 = 1
	HorizontalSeparate   uint8 = 2
)

// Animation playback modes.
const (
	AnimationLoop      uint8 = 0
	AnimationAlternate uint8 = 1
)

// SpriteSheet is a decoded SHP asset: a sequence of equally-sized masked
// sprite frames. Each frame is BGRI planes followed by an inverted mask
// (1 = transparent), per the original's planar sprite format.
type SpriteSheet struct {
	NumFrames  uint8
	Horizontal uint8
	Animation  uint8
	FrameSize  uint16 // bytes per frame, derived from the remaining data
	Frames     [][]byte
}

// DecodeSHP reads a SHP sprite-sheet asset: num_frames:u8, horizontal:u8,
// animation:u8, then raw frame data. Unlike TT2's fixed-size tile bitmaps, a
// SHP's per-frame byte size varies by sprite and is derived by dividing the
// remaining bytes evenly across num_frames rather than being stored
// explicitly in the header.
func DecodeSHP(r io.Reader) (*SpriteSheet, error) {
	var header [3]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("decode SHP header: %w", err)
	}
	numFrames, horizontal, animation := header[0], header[1], header[2]
	if numFrames == 0 {
		return nil, fmt.Errorf("decode SHP: num_frames is zero")
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode SHP frame data: %w", err)
	}
	if len(rest)%int(numFrames) != 0 {
		return nil, fmt.Errorf("decode SHP: %d frame bytes not evenly divisible by %d frames", len(rest), numFrames)
	}

	frameSize := len(rest) / int(numFrames)
	frames := make([][]byte, numFrames)
	for i := range frames {
		frames[i] = rest[i*frameSize : (i+1)*frameSize]
	}

	return &SpriteSheet{
		NumFrames:  numFrames,
		Horizontal: horizontal,
		Animation:  animation,
		FrameSize:  uint16(frameSize),
		Frames:     frames,
	}, nil
}

// FrameIndex resolves an animation index and facing into a concrete frame
// index, mirroring sim.FrameIndex's sprite frame-selection rule:
// ALTERNATE mirrors back (0,1,...,n-1,n-2,...,1), DUPLICATED reuses left
// frames for right facing, and SEPARATE doubles the frame table with right
// frames following the left ones.
func (s *SpriteSheet) FrameIndex(animIndex int, facingRight bool) int {
	n := int(s.NumFrames)
	if s.Horizontal == HorizontalSeparate {
		n /= 2
	}
	if n <= 0 {
		return 0
	}

	idx := animIndex
	if s.Animation == AnimationAlternate && n > 1 {
		period := 2 * (n - 1)
		if period > 0 {
			idx %= period
			if idx >= n {
				idx = period - idx
			}
		} else {
			idx = 0
		}
	} else {
		idx %= n
	}

	if facingRight && s.Horizontal == HorizontalSeparate {
		idx += n
	}
	return idx
}

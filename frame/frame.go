package frame

import (
	"fmt"
	"math"
	"math/rand"
)

// Pixel is a single sample value. Capture hardware delivers up to
// 16-bit samples; generated test frames usually stay in the low 8 bits.
type Pixel uint16

// Pos is a flat index into a frame's pixel array.
type Pos uint32

// Frame is a Rows x Cols image stored as one flat pixel slice, row-major.
// The flat layout is what the selection core scans; Coord maps back to
// two dimensions only for reporting.
type Frame struct {
	Pix  []Pixel
	Rows int
	Cols int
}

// New allocates a zeroed frame.
func New(rows, cols int) (*Frame, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("frame: invalid dimensions %dx%d", rows, cols)
	}
	if int64(rows)*int64(cols) > math.MaxUint32 {
		return nil, fmt.Errorf("frame: %dx%d exceeds addressable positions", rows, cols)
	}
	return &Frame{Pix: make([]Pixel, rows*cols), Rows: rows, Cols: cols}, nil
}

// NewRandom fills a frame with deterministic pseudo-random values in
// [0, maxValue]. Same seed, same frame.
func NewRandom(rows, cols int, maxValue Pixel, seed int64) (*Frame, error) {
	f, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	f.Pix = RandomPixels(f.N(), maxValue, seed)
	return f, nil
}

// RandomPixels generates n values in [0, maxValue] from a dedicated
// deterministic source, so a failing sweep case can be replayed from
// its seed alone.
func RandomPixels(n int, maxValue Pixel, seed int64) []Pixel {
	r := rand.New(rand.NewSource(seed))
	pix := make([]Pixel, n)
	for i := range pix {
		pix[i] = Pixel(r.Intn(int(maxValue) + 1))
	}
	return pix
}

// N returns the pixel count.
func (f *Frame) N() int { return len(f.Pix) }

// Coord decodes a flat position into row and column.
func (f *Frame) Coord(p Pos) (row, col int) {
	return int(p) / f.Cols, int(p) % f.Cols
}

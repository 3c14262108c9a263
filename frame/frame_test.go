package frame_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"brightpix/frame"
)

func TestNewValidation(t *testing.T) {
	_, err := frame.New(0, 10)
	require.Error(t, err)
	_, err = frame.New(10, -1)
	require.Error(t, err)

	f, err := frame.New(4, 8)
	require.NoError(t, err)
	require.Equal(t, 32, f.N())
	require.Equal(t, 4, f.Rows)
	require.Equal(t, 8, f.Cols)
}

func TestCoord(t *testing.T) {
	f, err := frame.New(4, 8)
	require.NoError(t, err)

	cases := []struct {
		pos      frame.Pos
		row, col int
	}{
		{0, 0, 0},
		{7, 0, 7},
		{8, 1, 0},
		{13, 1, 5},
		{31, 3, 7},
	}
	for _, c := range cases {
		row, col := f.Coord(c.pos)
		require.Equal(t, c.row, row, "pos %d", c.pos)
		require.Equal(t, c.col, col, "pos %d", c.pos)
	}
}

func TestNewRandomDeterministic(t *testing.T) {
	a, err := frame.NewRandom(16, 16, 255, 42)
	require.NoError(t, err)
	b, err := frame.NewRandom(16, 16, 255, 42)
	require.NoError(t, err)
	require.Equal(t, a.Pix, b.Pix)

	for _, v := range a.Pix {
		require.LessOrEqual(t, v, frame.Pixel(255))
	}

	c, err := frame.NewRandom(16, 16, 255, 43)
	require.NoError(t, err)
	require.NotEqual(t, a.Pix, c.Pix)
}

func TestRandomPixelsBounds(t *testing.T) {
	pix := frame.RandomPixels(4096, 3, 1)
	require.Len(t, pix, 4096)
	for _, v := range pix {
		require.LessOrEqual(t, v, frame.Pixel(3))
	}
}

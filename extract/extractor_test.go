package extract_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/atmai0829/wavecollapse/collapse"
	"github.com/atmai0829/wavecollapse/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solid returns a w×h image filled with one color.
func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	return img
}

// checker returns a w×h checkerboard of colors a and b, a at (0,0).
func checker(w, h int, a, b color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, a)
			} else {
				img.SetNRGBA(x, y, b)
			}
		}
	}

	return img
}

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

// TestNew_Errors verifies construction-time rejection of bad inputs.
func TestNew_Errors(t *testing.T) {
	_, err := extract.New(nil)
	assert.ErrorIs(t, err, extract.ErrNilImage)

	_, err = extract.New(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, extract.ErrEmptyImage)

	_, err = extract.New(solid(2, 2, red), extract.WithBlockSize(0))
	assert.ErrorIs(t, err, extract.ErrBadBlockSize)

	_, err = extract.New(solid(2, 2, red), extract.WithBlockSize(-2))
	assert.ErrorIs(t, err, extract.ErrBadBlockSize)
}

// TestAnalyze_UniformImage verifies the round-trip property: one solid
// color yields exactly one label whose allowed set is only itself.
func TestAnalyze_UniformImage(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 3}, {7, 2}} {
		e, err := extract.New(solid(size[0], size[1], blue))
		require.NoError(t, err)
		require.NoError(t, e.Analyze())

		assert.Equal(t, 1, e.TileCount(), "%d×%d solid image", size[0], size[1])
		assert.Equal(t, []string{"tile_0"}, e.Tiles())
		assert.Equal(t, []string{"tile_0"}, e.Rules().Neighbors("tile_0"))
	}
}

// TestAnalyze_Checkerboard verifies the 4×4 checkerboard: two labels,
// each allowing exactly {itself (self-seed), the other (observed)}.
func TestAnalyze_Checkerboard(t *testing.T) {
	e, err := extract.New(checker(4, 4, red, blue))
	require.NoError(t, err)
	require.NoError(t, e.Analyze())

	require.Equal(t, 2, e.TileCount())
	rt := e.Rules()
	assert.Equal(t, []string{"tile_0", "tile_1"}, rt.Neighbors("tile_0"))
	assert.Equal(t, []string{"tile_0", "tile_1"}, rt.Neighbors("tile_1"))
}

// TestAnalyze_TwoColorScenario runs the 2×2 image with (0,0)=blue,
// (1,0)=red, (0,1)=red, (1,1)=blue: every observed pair crosses colors,
// so each label's rules include the other.
func TestAnalyze_TwoColorScenario(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, blue)
	img.SetNRGBA(1, 0, red)
	img.SetNRGBA(0, 1, red)
	img.SetNRGBA(1, 1, blue)

	e, err := extract.New(img)
	require.NoError(t, err)
	require.NoError(t, e.Analyze())

	require.Equal(t, 2, e.TileCount())
	rt := e.Rules()
	assert.True(t, rt.Allowed("tile_0", "tile_1"), "blue must tolerate red")
	assert.True(t, rt.Allowed("tile_1", "tile_0"), "red must tolerate blue")
}

// TestAnalyze_ToleranceMergesNearColors verifies that colors within 1%
// per channel collapse into one tile even across bucket boundaries, and
// that the merged tile's rules stay self-only.
func TestAnalyze_ToleranceMergesNearColors(t *testing.T) {
	a := color.NRGBA{R: 100, A: 255}
	b := color.NRGBA{R: 101, A: 255} // Δ = 1/255 ≈ 0.39% of the range

	e, err := extract.New(checker(4, 4, a, b))
	require.NoError(t, err)
	require.NoError(t, e.Analyze())

	assert.Equal(t, 1, e.TileCount(), "near-identical colors must not mint separate tiles")
	assert.Equal(t, []string{"tile_0"}, e.Rules().Neighbors("tile_0"))
}

// TestAnalyze_ToleranceSeparatesFarColors verifies that colors beyond the
// tolerance stay distinct tiles.
func TestAnalyze_ToleranceSeparatesFarColors(t *testing.T) {
	a := color.NRGBA{R: 100, A: 255}
	b := color.NRGBA{R: 150, A: 255} // Δ ≈ 19.6% of the range

	e, err := extract.New(checker(4, 4, a, b))
	require.NoError(t, err)
	require.NoError(t, e.Analyze())

	assert.Equal(t, 2, e.TileCount())
}

// TestAnalyze_DiscoveryOrderAndColorMap verifies labels are minted in
// scan order and that ColorMap carries the representative colors.
func TestAnalyze_DiscoveryOrderAndColorMap(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, blue)

	e, err := extract.New(img)
	require.NoError(t, err)
	require.NoError(t, e.Analyze())

	assert.Equal(t, []string{"tile_0", "tile_1"}, e.Tiles())

	cm := e.ColorMap()
	require.Len(t, cm, 2)
	assert.InDelta(t, 1.0, cm["tile_0"].R, 1e-9, "tile_0 is the red at (0,0)")
	assert.InDelta(t, 0.0, cm["tile_0"].B, 1e-9)
	assert.InDelta(t, 1.0, cm["tile_1"].B, 1e-9, "tile_1 is the blue at (1,0)")
	assert.InDelta(t, 1.0, cm["tile_1"].A, 1e-9)
}

// TestAnalyze_BlockSampling verifies blockSize>1 samples one label per
// block: a 4×4 image of uniform 2×2 blocks in a checker arrangement
// reads as a 2×2 checkerboard.
func TestAnalyze_BlockSampling(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x/2+y/2)%2 == 0 {
				img.SetNRGBA(x, y, red)
			} else {
				img.SetNRGBA(x, y, blue)
			}
		}
	}

	e, err := extract.New(img, extract.WithBlockSize(2))
	require.NoError(t, err)
	require.NoError(t, e.Analyze())

	require.Equal(t, 2, e.TileCount())
	rt := e.Rules()
	assert.Equal(t, []string{"tile_0", "tile_1"}, rt.Neighbors("tile_0"))
	assert.Equal(t, []string{"tile_0", "tile_1"}, rt.Neighbors("tile_1"))
}

// TestAnalyze_BlockCenterClamped verifies an oversized block never reads
// outside the image: the center coordinate clamps to the nearest pixel.
func TestAnalyze_BlockCenterClamped(t *testing.T) {
	e, err := extract.New(solid(3, 3, red), extract.WithBlockSize(7))
	require.NoError(t, err)

	require.NoError(t, e.Analyze())
	assert.Equal(t, 1, e.TileCount())
	assert.Equal(t, []string{"tile_0"}, e.Rules().Neighbors("tile_0"))
}

// TestAnalyze_Idempotent verifies repeat Analyze calls neither error nor
// duplicate tiles or rules.
func TestAnalyze_Idempotent(t *testing.T) {
	e, err := extract.New(checker(4, 4, red, blue))
	require.NoError(t, err)

	require.NoError(t, e.Analyze())
	require.NoError(t, e.Analyze())

	assert.Equal(t, 2, e.TileCount())
	assert.Equal(t, []string{"tile_0", "tile_1"}, e.Rules().Neighbors("tile_0"))
}

// TestLargeAlphabet verifies the warning predicate: 64 well-separated
// colors trip the threshold, two do not.
func TestLargeAlphabet(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			// 64 colors spaced 4/255 apart per step — all beyond tolerance.
			img.SetNRGBA(x, y, color.NRGBA{R: uint8((y*8 + x) * 4), A: 255})
		}
	}

	e, err := extract.New(img)
	require.NoError(t, err)
	require.NoError(t, e.Analyze())
	assert.Equal(t, 64, e.TileCount())
	assert.True(t, e.LargeAlphabet())

	small, err := extract.New(checker(4, 4, red, blue))
	require.NoError(t, err)
	require.NoError(t, small.Analyze())
	assert.False(t, small.LargeAlphabet())
}

// TestRules_IndependentCopy verifies that mutating the returned table
// does not corrupt the extractor's internal state.
func TestRules_IndependentCopy(t *testing.T) {
	e, err := extract.New(solid(2, 2, red))
	require.NoError(t, err)
	require.NoError(t, e.Analyze())

	rt := e.Rules()
	rt.AllowPair("tile_0", "intruder")

	assert.False(t, e.Rules().Allowed("tile_0", "intruder"))
}

// TestExtractThenCollapse verifies the drop-in contract end to end: a
// checkerboard's alphabet and rules drive a successful generation whose
// every seam the extracted table permits.
func TestExtractThenCollapse(t *testing.T) {
	e, err := extract.New(checker(4, 4, red, blue))
	require.NoError(t, err)
	require.NoError(t, e.Analyze())

	rt := e.Rules()
	g, err := collapse.New(6, 6, e.Tiles(), rt, collapse.WithSeed(12345))
	require.NoError(t, err)
	require.NoError(t, g.Run())
	require.True(t, g.Complete())

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			label, ok := g.At(x, y)
			require.True(t, ok)
			if right, rok := g.At(x+1, y); rok {
				assert.True(t, rt.Allowed(label, right), "illegal seam at (%d,%d) east", x, y)
			}
			if below, bok := g.At(x, y+1); bok {
				assert.True(t, rt.Allowed(label, below), "illegal seam at (%d,%d) south", x, y)
			}
		}
	}
}

// File: resize/resize_test.go
package resize_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/siegegrid/resize"
	"github.com/katalvlaran/siegegrid/template"
	"github.com/katalvlaran/siegegrid/topology"
)

const rampText = `+-------+
|.......|
|.......|
|.......|
|.......+----+
|.......|
|.......|
|.......|
o---o---o`

const bridgeText = `+--------------+
|..............|
o--o--------o--o`

// ResizeSuite exercises the structural resizer over the catalog shapes.
type ResizeSuite struct {
	suite.Suite
}

func (s *ResizeSuite) extract(text string) *topology.Template {
	tpl, err := topology.Extract(template.MustParse(text))
	require.NoError(s.T(), err)
	return tpl
}

// TestMinSize checks the structural minimum of both axes.
func (s *ResizeSuite) TestMinSize() {
	w, h := resize.MinSize(s.extract(rampText))
	require.Equal(s.T(), 7, w)
	require.Equal(s.T(), 5, h)

	w, h = resize.MinSize(s.extract("+--+\n|..|\n|..|\n|..|\n|..|\no--o"))
	require.Equal(s.T(), 3, w)
	require.Equal(s.T(), 3, h)
}

// TestShrinkRamp checks the exact cell layout of the ramp compressed to
// 7×7: every wall run shrinks, the spur survives at length 1, and all
// three ground anchors stay on the bottom row.
func (s *ResizeSuite) TestShrinkRamp() {
	got, err := resize.Resize(s.extract(rampText), 7, 7)
	require.NoError(s.T(), err)

	want := "+---+\n" +
		"|...|\n" +
		"|...|\n" +
		"|...+-+\n" +
		"|...|\n" +
		"|...|\n" +
		"o-o-o"
	require.Equal(s.T(), want, got.Grid.String())

	grounds := 0
	for _, a := range got.Anchors {
		if a.Role == topology.RoleGround {
			require.Equal(s.T(), got.Grid.Height()-1, a.Y)
			grounds++
		}
	}
	require.Equal(s.T(), 3, grounds)
}

// TestIdentity checks that resizing to the original dimensions
// reproduces the original cell layout.
func (s *ResizeSuite) TestIdentity() {
	src := s.extract(rampText)
	got, err := resize.Resize(src, src.Grid.Width(), src.Grid.Height())
	require.NoError(s.T(), err)
	require.Equal(s.T(), src.Grid.String(), got.Grid.String())
	require.Equal(s.T(), src.Anchors, got.Anchors)
}

// TestClampedGaps checks the bridge at its minimum width: rounding
// alone would starve the last span, so the clamp and the settle pass
// must redistribute cells while keeping every span open.
func (s *ResizeSuite) TestClampedGaps() {
	got, err := resize.Resize(s.extract(bridgeText), 7, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "+-----+\n|.....|\no-o-o-o", got.Grid.String())
}

// TestGrow checks upscaling: exact target dimensions and preserved
// topology without asserting individual cell placement.
func (s *ResizeSuite) TestGrow() {
	src := s.extract(rampText)
	got, err := resize.Resize(src, 28, 18)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 28, got.Grid.Width())
	require.Equal(s.T(), 18, got.Grid.Height())
	require.Equal(s.T(), src.OrientationSequence(), got.OrientationSequence())
	require.Len(s.T(), got.Anchors, len(src.Anchors))
	for i := range src.Anchors {
		require.Equal(s.T(), src.Anchors[i].Role, got.Anchors[i].Role)
	}
}

// TestFeasibleRange walks every feasible size in a window above the
// minimum and checks exact dimensions plus isomorphism throughout.
func (s *ResizeSuite) TestFeasibleRange() {
	src := s.extract(rampText)
	minW, minH := resize.MinSize(src)
	for w := minW; w <= minW+6; w++ {
		for h := minH; h <= minH+6; h++ {
			got, err := resize.Resize(src, w, h)
			require.NoError(s.T(), err, "resize to %dx%d", w, h)
			require.Equal(s.T(), w, got.Grid.Width())
			require.Equal(s.T(), h, got.Grid.Height())
			require.Equal(s.T(), src.OrientationSequence(), got.OrientationSequence())
		}
	}
}

// TestDisjointStructures checks that secondary structures survive the
// re-lay: resizing a grid of two stacked boxes to its own dimensions is
// the identity, and growing it scales both boxes.
func (s *ResizeSuite) TestDisjointStructures() {
	const twin = "+--+\n|..|\no--o\n\n+--+\n|..|\no--o"
	src := s.extract(twin)

	same, err := resize.Resize(src, 4, 7)
	require.NoError(s.T(), err)
	require.Equal(s.T(), twin, same.Grid.String())

	grown, err := resize.Resize(src, 6, 9)
	require.NoError(s.T(), err)
	want := "+----+\n|....|\n|....|\no----o\n\n" +
		"+----+\n|....|\n|....|\no----o"
	require.Equal(s.T(), want, grown.Grid.String())
	require.Len(s.T(), topology.Trace(grown.Grid), 2)
}

// TestZeroInteriorHeight checks growing a template whose height axis
// has no scalable interior: the surplus rows go above the structure so
// the ground anchors keep the bottom row.
func (s *ResizeSuite) TestZeroInteriorHeight() {
	src := s.extract("+-+\no-o")
	w, h := resize.MinSize(src)
	require.Equal(s.T(), 3, w)
	require.Equal(s.T(), 2, h)

	got, err := resize.Resize(src, 3, 5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "\n\n\n+-+\no-o", got.Grid.String())
	for _, a := range got.Anchors {
		if a.Role == topology.RoleGround {
			require.Equal(s.T(), 4, a.Y)
		}
	}
}

// TestTooSmall checks both axes reject sub-minimum targets.
func (s *ResizeSuite) TestTooSmall() {
	src := s.extract(rampText)
	_, err := resize.Resize(src, 6, 9)
	require.ErrorIs(s.T(), err, resize.ErrTooSmall)
	_, err = resize.Resize(src, 14, 4)
	require.ErrorIs(s.T(), err, resize.ErrTooSmall)
}

func TestResizeSuite(t *testing.T) {
	suite.Run(t, new(ResizeSuite))
}

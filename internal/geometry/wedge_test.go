package geometry

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func collect(t *testing.T, current, total int) []Wedge {
	t.Helper()
	seq, err := ClockWedges(current, total, 100, Pt(100, 100))
	require.NoError(t, err)
	return slices.Collect(seq)
}

func angleOf(p, center Point) float64 {
	a := math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
	if a < 0 {
		a += 360
	}
	return a
}

func TestBoundaryPoint(t *testing.T) {
	c := Pt(10, -5)

	t.Run("index zero lies on the positive x axis", func(t *testing.T) {
		for _, total := range []int{1, 2, 3, 7, 12, 60} {
			p := BoundaryPoint(0, total, 25, c)
			assert.Equal(t, Pt(35, -5), p)
		}
	})

	t.Run("half turn for even totals", func(t *testing.T) {
		for _, total := range []int{2, 4, 8, 10, 24} {
			p := BoundaryPoint(total/2, total, 25, c)
			assert.InDelta(t, -15, p.X, eps)
			assert.InDelta(t, -5, p.Y, eps)
		}
	})

	t.Run("quarter turn points down in screen space", func(t *testing.T) {
		p := BoundaryPoint(1, 4, 100, Pt(100, 100))
		assert.InDelta(t, 100, p.X, eps)
		assert.InDelta(t, 200, p.Y, eps)
	})

	t.Run("zero total is not guarded", func(t *testing.T) {
		p := BoundaryPoint(1, 0, 100, Pt(0, 0))
		assert.False(t, p.Finite())
	})
}

func TestWedgePath(t *testing.T) {
	got := WedgePath(Pt(200, 100), Pt(100, 200), Pt(100, 100), 100)
	assert.Equal(t, "M100,100 L200,100 A100,100 0 0,1 100,200 Z", got)

	got = WedgePath(Pt(1.5, -2), Pt(0.25, 3), Pt(0, 0), 2.5)
	assert.Equal(t, "M0,0 L1.5,-2 A2.5,2.5 0 0,1 0.25,3 Z", got)
}

func TestClockWedgesRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		radius float64
		center Point
	}{
		{"zero total", 0, 100, Pt(0, 0)},
		{"negative total", -3, 100, Pt(0, 0)},
		{"zero radius", 4, 0, Pt(0, 0)},
		{"nan radius", 4, math.NaN(), Pt(0, 0)},
		{"infinite center", 4, 10, Pt(math.Inf(1), 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := ClockWedges(1, tt.total, tt.radius, tt.center)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, seq)
		})
	}
}

func TestClockWedgesFilledPrefix(t *testing.T) {
	for total := 1; total <= 16; total++ {
		for current := 0; current <= total; current++ {
			wedges := collect(t, current, total)
			require.Len(t, wedges, total)

			filled := 0
			for i, w := range wedges {
				assert.Equal(t, i, w.Index)
				assert.Equal(t, i < current, w.Filled, "total=%d current=%d index=%d", total, current, i)
				if w.Filled {
					filled++
				}
			}
			assert.Equal(t, current, filled)
		}
	}
}

func TestClockWedgesTileTheCircle(t *testing.T) {
	for _, total := range []int{1, 2, 3, 5, 8, 13, 100} {
		wedges := collect(t, 0, total)
		for i := 0; i < total-1; i++ {
			assert.Equal(t, wedges[i].End, wedges[i+1].Start)
		}
		assert.Equal(t, wedges[0].Start, wedges[total-1].End)
	}
}

func TestClockWedgesOutOfRangeProgress(t *testing.T) {
	t.Run("above total fills everything", func(t *testing.T) {
		wedges := collect(t, 5, 4)
		require.Len(t, wedges, 4)
		for _, w := range wedges {
			assert.True(t, w.Filled)
		}
	})

	t.Run("negative behaves as zero", func(t *testing.T) {
		for _, w := range collect(t, -2, 4) {
			assert.False(t, w.Filled)
		}
	})
}

func TestClockWedgesThreeOfEight(t *testing.T) {
	center := Pt(100, 100)
	wedges := collect(t, 3, 8)
	require.Len(t, wedges, 8)

	for i, w := range wedges {
		assert.Equal(t, i < 3, w.Filled)
	}

	assert.InDelta(t, 0, angleOf(wedges[0].Start, center), eps)
	assert.InDelta(t, 45, angleOf(wedges[0].End, center), eps)
	assert.InDelta(t, 315, angleOf(wedges[7].Start, center), eps)
	assert.InDelta(t, 0, angleOf(wedges[7].End, center), eps)
	assert.Equal(t, "M100,100 L200,100 A100,100 0 0,1 "+wedges[0].End.String()+" Z", wedges[0].Path)
}

func TestClockWedgesRestartable(t *testing.T) {
	seq, err := ClockWedges(2, 6, 50, Pt(0, 0))
	require.NoError(t, err)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	var seen int
	for range seq {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

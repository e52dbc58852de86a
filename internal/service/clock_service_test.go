package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"progress_clock_backend/internal/config"
	"progress_clock_backend/internal/geometry"
	"progress_clock_backend/internal/model"
	"progress_clock_backend/internal/render"
	"progress_clock_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	gets   int
	sets   int
	getErr error
	setErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = data
	return nil
}

func filledCount(shapes []model.Shape) int {
	n := 0
	for _, s := range shapes {
		if s.Filled {
			n++
		}
	}
	return n
}

func TestClockServiceRenderScenarios(t *testing.T) {
	svc := NewClockService(model.DefaultClockStyle(), nil)
	ctx := context.Background()

	tests := []struct {
		name          string
		current       int
		total         int
		wantFilled    int
		wantFilledIdx []int
	}{
		{"three of eight", 3, 8, 3, []int{0, 1, 2}},
		{"none of four", 0, 4, 0, nil},
		{"all of four", 4, 4, 4, []int{0, 1, 2, 3}},
		{"current exceeds total", 5, 4, 4, []int{0, 1, 2, 3}},
		{"negative current", -1, 3, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shapes, err := svc.Wedges(ctx, tt.current, tt.total)
			require.NoError(t, err)
			require.Len(t, shapes, tt.total)
			assert.Equal(t, tt.wantFilled, filledCount(shapes))

			for _, idx := range tt.wantFilledIdx {
				assert.True(t, shapes[idx].Filled)
				assert.Equal(t, "red", shapes[idx].Fill)
			}
			for i, s := range shapes {
				assert.Equal(t, i, s.Index)
				assert.Equal(t, "black", s.Stroke)
				if !s.Filled {
					assert.Equal(t, "white", s.Fill)
				}
			}
		})
	}
}

func TestClockServiceRenderIsIdempotent(t *testing.T) {
	svc := NewClockService(model.DefaultClockStyle(), nil)
	list := &render.ShapeList{}

	require.NoError(t, svc.Render(context.Background(), 3, 8, list))
	first := append([]model.Shape(nil), list.Shapes...)

	require.NoError(t, svc.Render(context.Background(), 3, 8, list))
	assert.Equal(t, first, list.Shapes)
	assert.Len(t, list.Shapes, 8)
}

func TestClockServiceRenderErrors(t *testing.T) {
	svc := NewClockService(model.DefaultClockStyle(), nil)
	ctx := context.Background()

	t.Run("invalid total leaves surface untouched", func(t *testing.T) {
		list := &render.ShapeList{Shapes: []model.Shape{{Index: 7}}}
		err := svc.Render(ctx, 1, 0, list)
		assert.ErrorIs(t, err, util.ErrInvalidArgument)
		assert.Equal(t, []model.Shape{{Index: 7}}, list.Shapes)
	})

	t.Run("missing surface", func(t *testing.T) {
		err := svc.Render(ctx, 1, 4, nil)
		assert.ErrorIs(t, err, util.ErrPreconditionFailed)
	})

	t.Run("typed nil surfaces", func(t *testing.T) {
		var list *render.ShapeList
		var canvas *render.SVGCanvas
		for _, surface := range []render.Surface{list, canvas} {
			assert.NotPanics(t, func() {
				err := svc.Render(ctx, 1, 4, surface)
				assert.ErrorIs(t, err, util.ErrPreconditionFailed)
			})
		}
	})
}

func TestClockServiceMaxTotal(t *testing.T) {
	cache := newMemoryCache()
	svc := NewClockService(model.DefaultClockStyle(), cache)
	svc.SetMaxTotal(12)
	ctx := context.Background()

	shapes, err := svc.Wedges(ctx, 3, 12)
	require.NoError(t, err)
	assert.Len(t, shapes, 12)

	list := &render.ShapeList{Shapes: []model.Shape{{Index: 9}}}
	err = svc.Render(ctx, 3, 13, list)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
	assert.Equal(t, []model.Shape{{Index: 9}}, list.Shapes)

	_, err = svc.SVG(ctx, 1, 1<<31-1)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
	assert.Equal(t, 0, cache.gets)

	svc.SetMaxTotal(0)
	shapes, err = svc.Wedges(ctx, 0, 13)
	require.NoError(t, err)
	assert.Len(t, shapes, 13)
}

func TestClockServiceStyleReload(t *testing.T) {
	svc := NewClockService(model.DefaultClockStyle(), nil)

	cfg := &config.ClockConfig{Radius: 10, CenterX: 10, CenterY: 10, FilledColor: "green", EmptyColor: "gray", StrokeColor: "navy"}
	svc.SetStyle(StyleFromConfig(cfg))

	shapes, err := svc.Wedges(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, shapes, 2)
	assert.Equal(t, "green", shapes[0].Fill)
	assert.Equal(t, "gray", shapes[1].Fill)
	assert.Equal(t, "navy", shapes[0].Stroke)
	assert.Equal(t, geometry.Pt(20, 10), shapes[0].Start)
	assert.True(t, strings.HasPrefix(shapes[0].Path, "M10,10 L20,10 A10,10 0 0,1 "))
}

func TestClockServiceSVGCache(t *testing.T) {
	cache := newMemoryCache()
	svc := NewClockService(model.DefaultClockStyle(), cache)
	ctx := context.Background()

	first, err := svc.SVG(ctx, 3, 8)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 8, strings.Count(string(first), "<path "))

	second, err := svc.SVG(ctx, 3, 8)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 2, cache.gets)

	// 超出范围的进度与边界值共用缓存
	_, err = svc.SVG(ctx, 8, 8)
	require.NoError(t, err)
	_, err = svc.SVG(ctx, 12, 8)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.sets)

	// 样式变化后不会命中旧缓存
	style := model.DefaultClockStyle()
	style.FilledColor = "blue"
	svc.SetStyle(style)
	third, err := svc.SVG(ctx, 3, 8)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
	assert.Contains(t, string(third), `fill="blue"`)
}

func TestClockServiceSVGCacheFailuresAreIgnored(t *testing.T) {
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")
	svc := NewClockService(model.DefaultClockStyle(), cache)

	data, err := svc.SVG(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.Contains(t, string(data), `viewBox="0 0 200 200"`)
}

func TestClockServiceSVGInvalidTotal(t *testing.T) {
	cache := newMemoryCache()
	svc := NewClockService(model.DefaultClockStyle(), cache)

	_, err := svc.SVG(context.Background(), 0, -4)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
	assert.Equal(t, 0, cache.gets)
	assert.Equal(t, 0, cache.sets)
}

package service

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"sync/atomic"

	"progress_clock_backend/internal/config"
	"progress_clock_backend/internal/geometry"
	"progress_clock_backend/internal/model"
	"progress_clock_backend/internal/render"
	"progress_clock_backend/internal/util"
	"progress_clock_backend/pkg/logger"
	"progress_clock_backend/pkg/monitoring"
	"progress_clock_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// SVGCache 渲染结果缓存，nil 表示不缓存
type SVGCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
}

type ClockService struct {
	style    atomic.Pointer[model.ClockStyle]
	maxTotal atomic.Int64
	Cache    SVGCache
}

func NewClockService(style model.ClockStyle, cache SVGCache) *ClockService {
	s := &ClockService{Cache: cache}
	s.SetStyle(style)
	return s
}

// StyleFromConfig 由配置生成表盘样式
func StyleFromConfig(cfg *config.ClockConfig) model.ClockStyle {
	return model.ClockStyle{
		Radius:      cfg.Radius,
		Center:      geometry.Pt(cfg.CenterX, cfg.CenterY),
		FilledColor: cfg.FilledColor,
		EmptyColor:  cfg.EmptyColor,
		StrokeColor: cfg.StrokeColor,
	}
}

func (s *ClockService) Style() model.ClockStyle {
	return *s.style.Load()
}

// SetStyle 配置热更新时替换样式，正在进行的渲染仍使用旧样式
func (s *ClockService) SetStyle(style model.ClockStyle) {
	s.style.Store(&style)
}

// MaxTotal 单次渲染允许的最大扇区数，0 表示不限制
func (s *ClockService) MaxTotal() int {
	return int(s.maxTotal.Load())
}

func (s *ClockService) SetMaxTotal(n int) {
	s.maxTotal.Store(int64(n))
}

// Render 清空 surface 后按索引顺序写入 total 个扇区。
// 参数非法或 surface 为空时不会触碰 surface。
func (s *ClockService) Render(ctx context.Context, current, total int, surface render.Surface) error {
	_, err := s.render(ctx, s.Style(), current, total, surface)
	return err
}

func (s *ClockService) render(ctx context.Context, style model.ClockStyle, current, total int, surface render.Surface) (int, error) {
	_, span := tracing.Tracer().Start(ctx, "ClockService.Render")
	defer span.End()
	span.SetAttributes(attribute.Int("clock.current", current), attribute.Int("clock.total", total))

	if isNilSurface(surface) {
		monitoring.ClockRenders.WithLabelValues("no_surface").Inc()
		span.SetStatus(codes.Error, "no surface")
		return 0, fmt.Errorf("%w: no rendering surface", util.ErrPreconditionFailed)
	}

	if err := util.CheckTotal(total, s.MaxTotal()); err != nil {
		monitoring.ClockRenders.WithLabelValues("invalid").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	wedges, err := geometry.ClockWedges(current, total, style.Radius, style.Center)
	if err != nil {
		monitoring.ClockRenders.WithLabelValues("invalid").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	surface.Clear()
	n := 0
	for w := range wedges {
		surface.Append(model.Shape{
			Index:  w.Index,
			Path:   w.Path,
			Fill:   style.Fill(w.Filled),
			Stroke: style.StrokeColor,
			Filled: w.Filled,
			Start:  w.Start,
			End:    w.End,
		})
		n++
	}

	monitoring.ClockRenders.WithLabelValues("ok").Inc()
	monitoring.ClockWedges.Observe(float64(n))
	logger.Log.Debug("Clock rendered", zap.Int("current", current), zap.Int("total", total), zap.Int("wedges", n))
	return n, nil
}

// Wedges 渲染为图元列表
func (s *ClockService) Wedges(ctx context.Context, current, total int) ([]model.Shape, error) {
	list := &render.ShapeList{}
	if err := s.Render(ctx, current, total, list); err != nil {
		return nil, err
	}
	return list.Shapes, nil
}

// SVG 渲染为完整 SVG 文档，启用缓存时优先读取缓存
func (s *ClockService) SVG(ctx context.Context, current, total int) ([]byte, error) {
	style := s.Style()
	key := cacheKey(style, current, total)

	if s.Cache != nil && total > 0 && util.CheckTotal(total, s.MaxTotal()) == nil {
		data, ok, err := s.Cache.Get(ctx, key)
		switch {
		case err != nil:
			monitoring.ClockCache.WithLabelValues("error").Inc()
			logger.Log.Warn("Clock cache read failed", zap.String("key", key), zap.Error(err))
		case ok:
			monitoring.ClockCache.WithLabelValues("hit").Inc()
			return data, nil
		default:
			monitoring.ClockCache.WithLabelValues("miss").Inc()
		}
	}

	canvas := render.NewSVGCanvas(style)
	if _, err := s.render(ctx, style, current, total, canvas); err != nil {
		return nil, err
	}
	data, err := canvas.Bytes()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, data); err != nil {
			logger.Log.Warn("Clock cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return data, nil
}

// cacheKey 进度超出 [0,total] 时与边界值渲染结果相同，归一化后共用缓存
func cacheKey(style model.ClockStyle, current, total int) string {
	current = max(0, min(current, total))
	return util.CacheKeyPrefix + style.Fingerprint() + "|" + strconv.Itoa(current) + "/" + strconv.Itoa(total)
}

// isNilSurface 同时识别 nil 接口和包着 nil 指针的接口
func isNilSurface(surface render.Surface) bool {
	if surface == nil {
		return true
	}
	v := reflect.ValueOf(surface)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

package geometry

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Wedge 表盘上的一个扇区
type Wedge struct {
	Index  int
	Start  Point
	End    Point
	Path   string
	Filled bool
}

// BoundaryPoint 计算第 index 条分界线与圆的交点。
// total 为 0 时按 IEEE 规则得到 NaN/Inf 坐标，需要校验的调用方应使用 ClockWedges。
func BoundaryPoint(index, total int, radius float64, center Point) Point {
	theta := float64(index) * Tau / float64(total)
	return Point{
		X: center.X + radius*math.Cos(theta),
		Y: center.Y + radius*math.Sin(theta),
	}
}

// WedgePath 生成闭合扇形路径：移动到 ref，直线到 start，顺时针小弧到 end，闭合
func WedgePath(start, end, ref Point, arcRadius float64) string {
	r := formatCoord(arcRadius)

	var b strings.Builder
	b.Grow(64)
	b.WriteString("M")
	b.WriteString(ref.String())
	b.WriteString(" L")
	b.WriteString(start.String())
	b.WriteString(" A")
	b.WriteString(r)
	b.WriteString(",")
	b.WriteString(r)
	b.WriteString(" 0 0,1 ")
	b.WriteString(end.String())
	b.WriteString(" Z")
	return b.String()
}

// ClockWedges 按索引顺序惰性生成 total 个扇区，前 current 个为填充状态。
// 相邻扇区共用同一个分界点值，最后一个扇区的终点复用第一个扇区的起点，保证严格闭合。
// 返回的序列可以重复遍历，每次遍历都会重新计算。
func ClockWedges(current, total int, radius float64, center Point) (iter.Seq[Wedge], error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: total must be positive, got %d", ErrInvalidArgument, total)
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be a positive finite number, got %v", ErrInvalidArgument, radius)
	}
	if !center.Finite() {
		return nil, fmt.Errorf("%w: center must be finite, got %v", ErrInvalidArgument, center)
	}

	return func(yield func(Wedge) bool) {
		first := BoundaryPoint(0, total, radius, center)
		start := first
		for i := 0; i < total; i++ {
			end := first
			if i+1 < total {
				end = BoundaryPoint(i+1, total, radius, center)
			}
			w := Wedge{
				Index:  i,
				Start:  start,
				End:    end,
				Path:   WedgePath(start, end, center, radius),
				Filled: i < current,
			}
			if !yield(w) {
				return
			}
			start = end
		}
	}, nil
}

package geometry

import (
	"math"
	"strconv"
)

// Tau 一整圈的弧度
const Tau = 2 * math.Pi

// Point 平面坐标，不可变值类型
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add 返回 p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Finite 坐标均为有限数
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String 输出 "x,y"，与路径中的坐标写法一致
func (p Point) String() string {
	return formatCoord(p.X) + "," + formatCoord(p.Y)
}

// formatCoord 使用最短可还原的十进制表示
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseCount 解析数量参数。数值向零截断，非数字、NaN、无穷或超出 int32 返回 ErrInvalidArgument
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidArgument)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return countInRange(float64(n), s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidArgument, s)
	}
	return CountFromFloat(f)
}

// CountFromFloat 向零截断到 int
func CountFromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrInvalidArgument, f)
	}
	return countInRange(math.Trunc(f), f)
}

// countInRange 整数与小数两条路径共用同一个范围检查
func countInRange(t float64, raw any) (int, error) {
	if t > math.MaxInt32 || t < math.MinInt32 {
		return 0, fmt.Errorf("%w: %v is out of range", ErrInvalidArgument, raw)
	}
	return int(t), nil
}

// CheckTotal 限制单次渲染的扇区数，maxTotal <= 0 表示不限制
func CheckTotal(total, maxTotal int) error {
	if maxTotal > 0 && total > maxTotal {
		return fmt.Errorf("%w: total %d exceeds limit %d", ErrInvalidArgument, total, maxTotal)
	}
	return nil
}

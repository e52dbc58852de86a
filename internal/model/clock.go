package model

import (
	"fmt"

	"progress_clock_backend/internal/geometry"
)

// ClockStyle 表盘外观
type ClockStyle struct {
	Radius      float64        `json:"radius"`
	Center      geometry.Point `json:"center"`
	FilledColor string         `json:"filled_color"`
	EmptyColor  string         `json:"empty_color"`
	StrokeColor string         `json:"stroke_color"`
}

func DefaultClockStyle() ClockStyle {
	return ClockStyle{
		Radius:      100,
		Center:      geometry.Pt(100, 100),
		FilledColor: "red",
		EmptyColor:  "white",
		StrokeColor: "black",
	}
}

// Fill 根据扇区状态选择填充色
func (s ClockStyle) Fill(filled bool) string {
	if filled {
		return s.FilledColor
	}
	return s.EmptyColor
}

// Fingerprint 用于缓存键，样式任一字段变化都会改变结果
func (s ClockStyle) Fingerprint() string {
	return fmt.Sprintf("%g|%s|%s|%s|%s", s.Radius, s.Center, s.FilledColor, s.EmptyColor, s.StrokeColor)
}

// Shape 渲染面上的一个图元
type Shape struct {
	Index  int            `json:"index"`
	Path   string         `json:"path"`
	Fill   string         `json:"fill"`
	Stroke string         `json:"stroke"`
	Filled bool           `json:"filled"`
	Start  geometry.Point `json:"start"`
	End    geometry.Point `json:"end"`
}

// ExportRequest 导出请求体，非整数会被截断
type ExportRequest struct {
	Current float64 `json:"current"`
	Total   float64 `json:"total"`
}

// ExportResult 导出结果
type ExportResult struct {
	Key     string `json:"key"`
	URL     string `json:"url"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Wedges  int    `json:"wedges"`
	Subject string `json:"subject,omitempty"`
}

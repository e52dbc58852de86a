package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"progress_clock_backend/internal/model"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	ContentType  = "image/svg+xml"
)

type svgDocument struct {
	XMLName xml.Name  `xml:"svg"`
	Xmlns   string    `xml:"xmlns,attr"`
	Width   string    `xml:"width,attr"`
	Height  string    `xml:"height,attr"`
	ViewBox string    `xml:"viewBox,attr"`
	Paths   []svgPath `xml:"path"`
}

type svgPath struct {
	D      string `xml:"d,attr"`
	Fill   string `xml:"fill,attr"`
	Stroke string `xml:"stroke,attr"`
}

// SVGCanvas 以 SVG 文档为渲染面，viewBox 恰好容纳整个表盘
type SVGCanvas struct {
	doc svgDocument
}

func NewSVGCanvas(style model.ClockStyle) *SVGCanvas {
	size := 2 * style.Radius
	return &SVGCanvas{
		doc: svgDocument{
			Xmlns:   svgNamespace,
			Width:   fmt.Sprintf("%g", size),
			Height:  fmt.Sprintf("%g", size),
			ViewBox: fmt.Sprintf("%g %g %g %g", style.Center.X-style.Radius, style.Center.Y-style.Radius, size, size),
		},
	}
}

func (c *SVGCanvas) Clear() {
	c.doc.Paths = c.doc.Paths[:0]
}

func (c *SVGCanvas) Append(shape model.Shape) {
	c.doc.Paths = append(c.doc.Paths, svgPath{D: shape.Path, Fill: shape.Fill, Stroke: shape.Stroke})
}

// Len 当前图元数量
func (c *SVGCanvas) Len() int {
	return len(c.doc.Paths)
}

func (c *SVGCanvas) WriteTo(w io.Writer) (int64, error) {
	data, err := c.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

func (c *SVGCanvas) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(c.doc); err != nil {
		return nil, fmt.Errorf("encode svg: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

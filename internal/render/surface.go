package render

import "progress_clock_backend/internal/model"

// Surface 渲染目标。每次渲染先 Clear 再按顺序 Append
type Surface interface {
	Clear()
	Append(shape model.Shape)
}

// ShapeList 内存中的图元列表，用于 JSON 输出
type ShapeList struct {
	Shapes []model.Shape
}

func (l *ShapeList) Clear() {
	l.Shapes = l.Shapes[:0]
}

func (l *ShapeList) Append(shape model.Shape) {
	l.Shapes = append(l.Shapes, shape)
}

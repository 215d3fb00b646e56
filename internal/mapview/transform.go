package mapview

import "github.com/zoo-visit-planner/internal/domain"

// DefaultPadding - отступ в пикселях поверхности, чтобы маркеры у края не обрезались
const DefaultPadding = 36.0

// Transform - аффинное отображение логических координат в координаты поверхности
type Transform struct {
	Padding float64 `json:"padding"`
	ScaleX  float64 `json:"scale_x"`
	ScaleY  float64 `json:"scale_y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// ComputeTransform строит Transform для поверхности surfaceW x surfaceH.
// Логические границы [0, logicalW] x [0, logicalH] попадают в [padding, surface - padding].
func ComputeTransform(surfaceW, surfaceH, logicalW, logicalH, padding float64) Transform {
	return Transform{
		Padding: padding,
		ScaleX:  (surfaceW - 2*padding) / logicalW,
		ScaleY:  (surfaceH - 2*padding) / logicalH,
		Width:   surfaceW,
		Height:  surfaceH,
	}
}

// Apply переводит логическую точку в координаты поверхности
func (t Transform) Apply(p domain.Point) (float64, float64) {
	return t.Padding + p.X*t.ScaleX, t.Padding + p.Y*t.ScaleY
}

// Invert переводит координаты поверхности обратно в логические
func (t Transform) Invert(x, y float64) domain.Point {
	var p domain.Point
	if t.ScaleX != 0 {
		p.X = (x - t.Padding) / t.ScaleX
	}
	if t.ScaleY != 0 {
		p.Y = (y - t.Padding) / t.ScaleY
	}
	return p
}

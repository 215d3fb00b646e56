package mapview

import (
	"math"

	"github.com/zoo-visit-planner/internal/pkg/utils"
)

const (
	// DefaultDisplayWidth - ширина поверхности, если клиент не сообщил свою
	DefaultDisplayWidth = 800.0
	// MaxPixelRatio - потолок device pixel ratio
	MaxPixelRatio = 2.0

	aspectWidth  = 800.0
	aspectHeight = 350.0
)

// Surface - размеры поверхности отрисовки в CSS-пикселях и плотность пикселей
type Surface struct {
	DisplayWidth  float64 `json:"display_width"`
	DisplayHeight float64 `json:"display_height"`
	PixelRatio    float64 `json:"pixel_ratio"`
}

// NewSurface вычисляет поверхность по ширине отображения, сохраняя пропорцию 800:350
func NewSurface(displayWidth, pixelRatio float64) Surface {
	if displayWidth <= 0 || math.IsNaN(displayWidth) {
		displayWidth = DefaultDisplayWidth
	}
	return Surface{
		DisplayWidth:  displayWidth,
		DisplayHeight: math.Round(displayWidth * aspectHeight / aspectWidth),
		PixelRatio:    utils.ClampPixelRatio(pixelRatio, MaxPixelRatio),
	}
}

// PhysicalSize - размер буфера в физических пикселях
func (s Surface) PhysicalSize() (float64, float64) {
	return s.DisplayWidth * s.PixelRatio, s.DisplayHeight * s.PixelRatio
}

package mapview

import (
	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/pkg/utils"
)

// DefaultHitTolerance - радиус попадания в пикселях поверхности
const DefaultHitTolerance = 40.0

// HitTest возвращает первую локацию каталога, чей маркер ближе tolerance к точке (x, y) поверхности
func HitTest(x, y float64, all []domain.Location, t Transform, tolerance float64) (domain.Location, bool) {
	for _, loc := range all {
		if !loc.HasCoords() {
			continue
		}
		px, py := t.Apply(*loc.Coords)
		if utils.EuclideanDistance(x, y, px, py) < tolerance {
			return loc, true
		}
	}
	return domain.Location{}, false
}

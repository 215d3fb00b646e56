package domain

import "time"

// Логическое пространство карты зоопарка: все координаты каталога лежат в нём
const (
	LogicalWidth  = 1000.0
	LogicalHeight = 600.0
)

// Point - точка в логических координатах карты
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// BoundingBox - прямоугольник в логических координатах
type BoundingBox struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// LogicalBounds возвращает границы логического пространства
func LogicalBounds() BoundingBox {
	return BoundingBox{MaxX: LogicalWidth, MaxY: LogicalHeight}
}

// Contains проверяет, лежит ли точка внутри прямоугольника (границы включительно)
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Statistics представляет сводную статистику по каталогу и сохранённым планам
type Statistics struct {
	Catalog     CatalogStats `json:"catalog"`
	Plans       PlanStats    `json:"plans"`
	LastUpdated time.Time    `json:"last_updated"`
}

// CatalogStats статистика по каталогу
type CatalogStats struct {
	Animals int            `json:"animals"`
	Places  int            `json:"places"`
	Tours   int            `json:"tours"`
	ByType  map[string]int `json:"by_type"`
}

// PlanStats статистика по сохранённым планам
type PlanStats struct {
	TotalPlans    int             `json:"total_plans"`
	AverageStops  float64         `json:"average_stops"`
	TotalVisitors int             `json:"total_visitors"`
	MostPlanned   []LocationCount `json:"most_planned"`
}

// LocationCount - сколько раз локация встречается в сохранённых планах
type LocationCount struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

package mapview

import (
	"strconv"

	"github.com/zoo-visit-planner/internal/domain"
)

// EmptyRouteMessage - надпись на пустой карте
const EmptyRouteMessage = "Select locations to see your route"

const (
	backgroundFrom = "#2d5a27"
	backgroundTo   = "#4a7c42"
	gridColor      = "rgba(255,255,255,0.06)"
	gridColumns    = 8
	gridRows       = 6

	pathColor    = "rgba(255,255,255,0.9)"
	pathWidth    = 2.5
	ghostColor   = "rgba(255,255,255,0.18)"
	ghostRadius  = 5.0
	glowRadius   = 18.0
	markerRadius = 14.0
	markerStroke = 2.5

	animalColor = "#c89b3c"
	placeColor  = "#2176ae"
	white       = "#fff"

	labelOffset   = 22.0
	labelHeight   = 16.0
	labelRadius   = 4.0
	labelPadding  = 12.0
	labelFontSize = 10.0
	labelBg       = "rgba(0,0,0,0.55)"
	maxLabelRunes = 12

	legendInset = 90.0
	legendTop   = 12.0
	legendStep  = 18.0
)

var pathDash = []float64{10, 6}

// Renderer рисует маршрут поверх схемы зоопарка. Входные срезы не изменяются.
type Renderer struct {
	padding  float64
	logicalW float64
	logicalH float64
}

// NewRenderer создает Renderer; padding <= 0 означает DefaultPadding
func NewRenderer(padding float64) *Renderer {
	if padding <= 0 {
		padding = DefaultPadding
	}
	return &Renderer{
		padding:  padding,
		logicalW: domain.LogicalWidth,
		logicalH: domain.LogicalHeight,
	}
}

// TransformFor - преобразование, которым Renderer рисует на данной поверхности.
// Hit-test должен использовать его же, чтобы клики совпадали с маркерами.
func (r *Renderer) TransformFor(s Surface) Transform {
	return ComputeTransform(s.DisplayWidth, s.DisplayHeight, r.logicalW, r.logicalH, r.padding)
}

// Render рисует карту. nil canvas - no-op.
// Порядок: фон, линия маршрута, бледные маркеры остальных локаций, маркеры маршрута, легенда.
func (r *Renderer) Render(canvas Canvas, route, all []domain.Location) {
	if canvas == nil {
		return
	}
	surface := canvas.Surface()
	t := r.TransformFor(surface)
	w, h := surface.DisplayWidth, surface.DisplayHeight

	r.drawBackground(canvas, t, w, h)

	if len(route) == 0 {
		canvas.Text(w/2, h/2, EmptyRouteMessage, TextStyle{
			Color: "rgba(255,255,255,0.5)", Size: 14, Weight: 500, Anchor: AnchorMiddle,
		})
		return
	}

	r.drawPath(canvas, t, route)
	r.drawGhosts(canvas, t, route, all)
	r.drawMarkers(canvas, t, route)
	r.drawLegend(canvas, w)
}

func (r *Renderer) drawBackground(c Canvas, t Transform, w, h float64) {
	c.LinearGradientRect(0, 0, w, h, backgroundFrom, backgroundTo)

	grid := Stroke{Color: gridColor, Width: 1}
	pad := t.Padding
	stepX := (w - 2*pad) / gridColumns
	stepY := (h - 2*pad) / gridRows
	if stepX <= 0 || stepY <= 0 {
		return
	}
	for i := 0; i < gridColumns; i++ {
		x := pad + float64(i)*stepX
		c.Line(x, pad, x, h-pad, grid)
	}
	for i := 0; i < gridRows; i++ {
		y := pad + float64(i)*stepY
		c.Line(pad, y, w-pad, y, grid)
	}
}

func (r *Renderer) drawPath(c Canvas, t Transform, route []domain.Location) {
	xs := make([]float64, 0, len(route))
	ys := make([]float64, 0, len(route))
	for _, loc := range route {
		if !loc.HasCoords() {
			continue
		}
		x, y := t.Apply(*loc.Coords)
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if len(xs) < 2 {
		return
	}
	c.Polyline(xs, ys, Stroke{Color: pathColor, Width: pathWidth, Dash: pathDash})
}

func (r *Renderer) drawGhosts(c Canvas, t Transform, route, all []domain.Location) {
	inRoute := make(map[string]struct{}, len(route))
	for _, loc := range route {
		inRoute[loc.ID] = struct{}{}
	}
	for _, loc := range all {
		if !loc.HasCoords() {
			continue
		}
		if _, ok := inRoute[loc.ID]; ok {
			continue
		}
		x, y := t.Apply(*loc.Coords)
		c.Circle(x, y, ghostRadius, ghostColor, nil)
	}
}

func (r *Renderer) drawMarkers(c Canvas, t Transform, route []domain.Location) {
	for i, loc := range route {
		if !loc.HasCoords() {
			continue
		}
		x, y := t.Apply(*loc.Coords)
		order := i + 1

		c.Circle(x, y, glowRadius, ghostColor, nil)
		c.Circle(x, y, markerRadius, MarkerColor(loc.Partition), &Stroke{Color: white, Width: markerStroke})

		numberSize := 13.0
		if order > 9 {
			numberSize = 11
		}
		c.Text(x, y, strconv.Itoa(order), TextStyle{Color: white, Size: numberSize, Weight: 700, Anchor: AnchorMiddle})

		label := TruncateLabel(loc.Name)
		labelY := y + labelOffset
		labelW := estimateTextWidth(label, labelFontSize) + labelPadding
		c.RoundedRect(x-labelW/2, labelY-labelHeight/2, labelW, labelHeight, labelRadius, labelBg)
		c.Text(x, labelY, label, TextStyle{Color: white, Size: labelFontSize, Weight: 500, Anchor: AnchorMiddle})
	}
}

func (r *Renderer) drawLegend(c Canvas, w float64) {
	items := []domain.Partition{domain.PartitionAnimal, domain.PartitionPlace}
	for i, p := range items {
		lx := w - legendInset
		ly := legendTop + float64(i)*legendStep
		c.Circle(lx, ly+5, 5, MarkerColor(p), &Stroke{Color: white, Width: 1.5})
		c.Text(lx+9, ly+5, p.Label(), TextStyle{
			Color: "rgba(255,255,255,0.85)", Size: labelFontSize, Weight: 500, Anchor: AnchorStart,
		})
	}
}

// MarkerColor - цвет маркера по разделу каталога
func MarkerColor(p domain.Partition) string {
	if p == domain.PartitionAnimal {
		return animalColor
	}
	return placeColor
}

// TruncateLabel обрезает длинные имена до 11 символов с многоточием
func TruncateLabel(name string) string {
	runes := []rune(name)
	if len(runes) > maxLabelRunes {
		return string(runes[:maxLabelRunes-1]) + "…"
	}
	return name
}

// estimateTextWidth - приблизительная ширина строки для подложки подписи
func estimateTextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.55
}

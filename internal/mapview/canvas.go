package mapview

// Stroke - параметры линии
type Stroke struct {
	Color string
	Width float64
	Dash  []float64
}

// Anchor - горизонтальное выравнивание текста
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
)

// TextStyle - параметры текста, текст всегда центрируется по вертикали
type TextStyle struct {
	Color  string
	Size   float64
	Weight int
	Anchor Anchor
}

// Canvas - примитивы рисования в координатах отображения.
// Реализация сама масштабирует вывод на PixelRatio своей поверхности.
type Canvas interface {
	Surface() Surface
	LinearGradientRect(x, y, w, h float64, from, to string)
	Line(x1, y1, x2, y2 float64, stroke Stroke)
	Polyline(xs, ys []float64, stroke Stroke)
	Circle(cx, cy, r float64, fill string, stroke *Stroke)
	RoundedRect(x, y, w, h, r float64, fill string)
	Text(x, y float64, text string, style TextStyle)
}

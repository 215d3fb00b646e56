package mapview

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/zoo-visit-planner/internal/domain"
)

const fontFamily = "DM Sans, sans-serif"

// SVGCanvas рисует в SVG-документ.
// viewBox задан в координатах отображения, width/height - в физических пикселях.
type SVGCanvas struct {
	surface  Surface
	body     strings.Builder
	gradient int
}

// NewSVGCanvas создает пустой холст для поверхности
func NewSVGCanvas(surface Surface) *SVGCanvas {
	return &SVGCanvas{surface: surface}
}

func (c *SVGCanvas) Surface() Surface {
	return c.surface
}

func (c *SVGCanvas) LinearGradientRect(x, y, w, h float64, from, to string) {
	c.gradient++
	id := fmt.Sprintf("bg%d", c.gradient)
	fmt.Fprintf(&c.body,
		`<defs><linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`+
			`<stop offset="0" stop-color="%s"/><stop offset="1" stop-color="%s"/></linearGradient></defs>`,
		id, formatFloat(x), formatFloat(y), formatFloat(x+w), formatFloat(y+h), from, to)
	fmt.Fprintf(&c.body, `<rect x="%s" y="%s" width="%s" height="%s" fill="url(#%s)"/>`,
		formatFloat(x), formatFloat(y), formatFloat(w), formatFloat(h), id)
}

func (c *SVGCanvas) Line(x1, y1, x2, y2 float64, stroke Stroke) {
	fmt.Fprintf(&c.body, `<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`,
		formatFloat(x1), formatFloat(y1), formatFloat(x2), formatFloat(y2), strokeAttrs(&stroke))
}

func (c *SVGCanvas) Polyline(xs, ys []float64, stroke Stroke) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	points := make([]string, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, formatFloat(xs[i])+","+formatFloat(ys[i]))
	}
	fmt.Fprintf(&c.body, `<polyline points="%s" fill="none" stroke-linecap="round" stroke-linejoin="round"%s/>`,
		strings.Join(points, " "), strokeAttrs(&stroke))
}

func (c *SVGCanvas) Circle(cx, cy, r float64, fill string, stroke *Stroke) {
	fmt.Fprintf(&c.body, `<circle cx="%s" cy="%s" r="%s" fill="%s"%s/>`,
		formatFloat(cx), formatFloat(cy), formatFloat(r), fill, strokeAttrs(stroke))
}

func (c *SVGCanvas) RoundedRect(x, y, w, h, r float64, fill string) {
	fmt.Fprintf(&c.body, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/>`,
		formatFloat(x), formatFloat(y), formatFloat(w), formatFloat(h), formatFloat(r), fill)
}

func (c *SVGCanvas) Text(x, y float64, text string, style TextStyle) {
	anchor := style.Anchor
	if anchor == "" {
		anchor = AnchorStart
	}
	weight := style.Weight
	if weight == 0 {
		weight = 400
	}
	fmt.Fprintf(&c.body,
		`<text x="%s" y="%s" fill="%s" font-family="%s" font-size="%s" font-weight="%d" text-anchor="%s" dominant-baseline="central">%s</text>`,
		formatFloat(x), formatFloat(y), style.Color, fontFamily, formatFloat(style.Size), weight, anchor,
		html.EscapeString(text))
}

// Bytes возвращает готовый SVG-документ
func (c *SVGCanvas) Bytes() []byte {
	pw, ph := c.surface.PhysicalSize()
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatFloat(pw), formatFloat(ph), formatFloat(c.surface.DisplayWidth), formatFloat(c.surface.DisplayHeight))
	b.WriteString(c.body.String())
	b.WriteString("</svg>")
	return []byte(b.String())
}

func strokeAttrs(s *Stroke) string {
	if s == nil {
		return ""
	}
	attrs := fmt.Sprintf(` stroke="%s" stroke-width="%s"`, s.Color, formatFloat(s.Width))
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = formatFloat(d)
		}
		attrs += fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, ","))
	}
	return attrs
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// RenderSVG рисует карту на новом SVG-холсте и возвращает документ
func (r *Renderer) RenderSVG(surface Surface, route, all []domain.Location) []byte {
	c := NewSVGCanvas(surface)
	r.Render(c, route, all)
	return c.Bytes()
}

package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/insights"
)

const (
	defaultWidth    = 720
	defaultHeight   = 320
	defaultFontSize = 13

	marginLeft   = 80.0
	marginRight  = 56.0
	marginTop    = 44.0
	marginBottom = 44.0

	maxOrdinal = 3
	// Pollen is reported on a 1-12 scale; AQI is drawn against 0-300.
	pollenMax = 12.0
	aqiMax    = 300.0
)

var (
	colorBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorGrid       = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	colorAxis       = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	colorText       = color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}
	colorPrimary    = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	colorPollen     = color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	colorAQI        = color.RGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
)

type Options struct {
	Width    int
	Height   int
	FontPath string
	FontSize float64
}

// Renderer draws trend points as PNG line charts.
type Renderer struct {
	width  int
	height int
	face   font.Face
}

// Series picks which ordinal labels go on the y axis.
type Series int

const (
	SeriesRisk Series = iota
	SeriesSeverity
)

func (s Series) label(ordinal int) string {
	if s == SeriesSeverity {
		return insights.SeverityLabel(ordinal)
	}
	return insights.RiskLabel(ordinal)
}

func (s Series) name() string {
	if s == SeriesSeverity {
		return "Severity"
	}
	return "Risk"
}

func New(opts Options) (*Renderer, error) {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.FontSize <= 0 {
		opts.FontSize = defaultFontSize
	}
	face, err := loadFontFace(opts.FontPath, opts.FontSize)
	if err != nil {
		return nil, err
	}
	return &Renderer{width: opts.Width, height: opts.Height, face: face}, nil
}

// loadFontFace reads a TTF from fontPath, or uses the bundled Go Regular face
// when no path is set.
func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes := goregular.TTF
	if strings.TrimSpace(fontPath) != "" {
		b, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file: %w", err)
		}
		fontBytes = b
	}
	parsed, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	return truetype.NewFace(parsed, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}

type plot struct {
	dc            *gg.Context
	x0, y0, w, h  float64
	n             int
	width, height float64
}

func (p plot) x(i int) float64 {
	if p.n <= 1 {
		return p.x0 + p.w/2
	}
	return p.x0 + p.w*float64(i)/float64(p.n-1)
}

// y maps v in [0, top] onto the plot area, clamping out-of-range values.
func (p plot) y(v, top float64) float64 {
	v = math.Max(0, math.Min(v, top))
	return p.y0 + p.h - p.h*v/top
}

// Render writes a PNG of points, which must already be oldest first. Pollen and
// AQI lines are drawn when any point carries them.
func (r *Renderer) Render(w io.Writer, title string, series Series, points []insights.TrendPoint) error {
	dc := gg.NewContext(r.width, r.height)
	dc.SetFontFace(r.face)
	dc.SetColor(colorBackground)
	dc.Clear()

	p := plot{
		dc:     dc,
		x0:     marginLeft,
		y0:     marginTop,
		w:      float64(r.width) - marginLeft - marginRight,
		h:      float64(r.height) - marginTop - marginBottom,
		n:      len(points),
		width:  float64(r.width),
		height: float64(r.height),
	}

	dc.SetColor(colorText)
	dc.DrawStringAnchored(title, p.width/2, marginTop/2, 0.5, 0.5)

	r.drawGrid(p, series)

	if len(points) == 0 {
		dc.SetColor(colorAxis)
		dc.DrawStringAnchored("No data yet", p.x0+p.w/2, p.y0+p.h/2, 0.5, 0.5)
		return encode(dc, w)
	}

	drawLine(p, colorPrimary, 3, points, func(tp insights.TrendPoint) (float64, bool) {
		return float64(tp.Ordinal), true
	}, maxOrdinal)
	drawLine(p, colorPollen, 2, points, func(tp insights.TrendPoint) (float64, bool) {
		if tp.Pollen == nil {
			return 0, false
		}
		return *tp.Pollen, true
	}, pollenMax)
	drawLine(p, colorAQI, 2, points, func(tp insights.TrendPoint) (float64, bool) {
		if tp.AQI == nil {
			return 0, false
		}
		return *tp.AQI, true
	}, aqiMax)

	dc.SetColor(colorText)
	for i, tp := range points {
		dc.DrawStringAnchored(tp.Date, p.x(i), p.y0+p.h+marginBottom/2, 0.5, 0.5)
	}
	r.drawLegend(p, series, points)
	return encode(dc, w)
}

func (r *Renderer) drawGrid(p plot, series Series) {
	dc := p.dc
	dc.SetLineWidth(1)
	for o := 0; o <= maxOrdinal; o++ {
		y := p.y(float64(o), maxOrdinal)
		dc.SetColor(colorGrid)
		dc.DrawLine(p.x0, y, p.x0+p.w, y)
		dc.Stroke()
		if label := series.label(o); label != "" {
			dc.SetColor(colorText)
			dc.DrawStringAnchored(label, p.x0-10, y, 1, 0.5)
		}
	}
	dc.SetColor(colorAxis)
	dc.DrawLine(p.x0, p.y0, p.x0, p.y0+p.h)
	dc.DrawLine(p.x0, p.y0+p.h, p.x0+p.w, p.y0+p.h)
	dc.Stroke()
}

func drawLine(p plot, c color.Color, width float64, points []insights.TrendPoint, value func(insights.TrendPoint) (float64, bool), top float64) {
	dc := p.dc
	dc.SetColor(c)
	dc.SetLineWidth(width)
	started := false
	for i, tp := range points {
		v, ok := value(tp)
		if !ok {
			continue
		}
		x, y := p.x(i), p.y(v, top)
		if !started {
			dc.MoveTo(x, y)
			started = true
		} else {
			dc.LineTo(x, y)
		}
	}
	if !started {
		return
	}
	dc.Stroke()
	for i, tp := range points {
		if v, ok := value(tp); ok {
			dc.DrawCircle(p.x(i), p.y(v, top), width+1)
			dc.Fill()
		}
	}
}

func (r *Renderer) drawLegend(p plot, series Series, points []insights.TrendPoint) {
	type entry struct {
		name string
		c    color.Color
	}
	entries := []entry{{series.name(), colorPrimary}}
	for _, tp := range points {
		if tp.Pollen != nil || tp.AQI != nil {
			entries = append(entries, entry{"Pollen", colorPollen}, entry{"AQI", colorAQI})
			break
		}
	}
	dc := p.dc
	x := p.x0 + p.w
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		tw, _ := dc.MeasureString(e.name)
		x -= tw
		dc.SetColor(colorText)
		dc.DrawStringAnchored(e.name, x, p.y0-12, 0, 0.5)
		x -= 14
		dc.SetColor(e.c)
		dc.DrawRectangle(x, p.y0-17, 10, 10)
		dc.Fill()
		x -= 16
	}
}

func encode(dc *gg.Context, w io.Writer) error {
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Package render draws detection boxes and labels onto images using the
// 1000-scale normalized coordinate convention of Gemini vision responses.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"

	"github.com/visionlab/gemini-annotator/pkg/types"
)

// Style selects how boxes are colored and labeled.
type Style int

const (
	// Objects cycles a fixed palette by record index and writes the label
	// inside the box.
	Objects Style = iota
	// Emotions colors by the emotion keyword in a "Person: <emotion>" label
	// and writes the emotion on a plate below the box.
	Emotions
)

const (
	objectStroke    = 4.0
	emotionStroke   = 6.0
	objectFontSize  = 14.0
	emotionFontSize = 36.0

	// Label placement inside the box for the object style.
	labelOffsetX = 8.0
	labelOffsetY = 6.0

	// Plate geometry for the emotion style.
	plateGap = 10.0
	platePad = 5.0
)

// palette is cycled by record index for object annotations.
var palette = []color.NRGBA{
	{R: 255, A: 255},                 // red
	{G: 128, A: 255},                 // green
	{B: 255, A: 255},                 // blue
	{R: 255, G: 255, A: 255},         // yellow
	{R: 255, G: 165, A: 255},         // orange
	{R: 255, G: 192, B: 203, A: 255}, // pink
	{R: 128, B: 128, A: 255},         // purple
}

// emotionColors maps recognized emotion keywords to box colors.
var emotionColors = map[string]color.NRGBA{
	"happy":    {G: 128, A: 255},
	"sad":      {B: 255, A: 255},
	"angry":    {R: 255, A: 255},
	"surprise": {R: 255, G: 255, A: 255},
	"disgust":  {R: 128, B: 128, A: 255},
	"fear":     {R: 255, G: 165, A: 255},
	"neutral":  {R: 128, G: 128, B: 128, A: 255},
}

// fallbackEmotionColor is used when the emotion keyword is unrecognized.
var fallbackEmotionColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Skip records one detection that could not be drawn.
type Skip struct {
	Index  int
	Reason string
}

// Report summarizes an annotation pass. A bad record never aborts the pass;
// it lands here instead.
type Report struct {
	Drawn   int
	Skipped []Skip
}

// Config controls renderer behavior.
type Config struct {
	Style Style
	// FontChain is evaluated in order until a face loads. Nil means
	// DefaultFontChain.
	FontChain []FaceLoader
}

// Renderer draws detection records onto a canvas. It holds no per-image
// state and is safe to reuse across annotation passes.
type Renderer struct {
	cfg Config
}

// New creates a renderer with the default font chain.
func New(style Style) *Renderer {
	return NewWithConfig(Config{Style: style})
}

// NewWithConfig creates a renderer with custom configuration.
func NewWithConfig(cfg Config) *Renderer {
	if cfg.FontChain == nil {
		cfg.FontChain = DefaultFontChain()
	}
	return &Renderer{cfg: cfg}
}

// PixelRect maps a box_2d tuple onto a W x H canvas. The four values arrive
// as [y1, x1, y2, x2]: values at even positions scale by the height, odd
// positions by the width, each via round(v/1000*scale). Corners are then
// reordered so the rectangle always satisfies x1 <= x2 and y1 <= y2.
func PixelRect(box []float64, w, h int) (types.Rect, error) {
	if len(box) < 4 {
		return types.Rect{}, fmt.Errorf("box_2d has %d values, want 4", len(box))
	}

	var px [4]int
	for i, v := range box[:4] {
		scale := float64(h)
		if i%2 != 0 {
			scale = float64(w)
		}
		px[i] = int(math.Round(v / 1000 * scale))
	}

	y1, x1, y2, x2 := px[0], px[1], px[2], px[3]
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return types.Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}

// Annotate draws every record onto img, which is modified in place. Records
// that cannot be processed are collected as skips; processing always
// continues with the next record.
func (r *Renderer) Annotate(img *image.RGBA, records []types.DetectionRecord) Report {
	dc := gg.NewContextForRGBA(img)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var rep Report
	for i, rec := range records {
		var err error
		switch r.cfg.Style {
		case Emotions:
			err = r.drawEmotion(dc, rec, w, h)
		default:
			err = r.drawObject(dc, rec, i, w, h)
		}
		if err != nil {
			rep.Skipped = append(rep.Skipped, Skip{Index: i, Reason: err.Error()})
			continue
		}
		rep.Drawn++
	}
	return rep
}

func (r *Renderer) drawObject(dc *gg.Context, rec types.DetectionRecord, idx, w, h int) error {
	rect, err := PixelRect(rec.Box2D, w, h)
	if err != nil {
		return err
	}

	col := palette[idx%len(palette)]
	strokeRect(dc, rect, col, objectStroke)

	if rec.Label != "" {
		dc.SetFontFace(loadFace(r.cfg.FontChain, objectFontSize))
		dc.SetColor(col)
		// ay=1 anchors the top of the text at the given y.
		dc.DrawStringAnchored(rec.Label, float64(rect.X1)+labelOffsetX, float64(rect.Y1)+labelOffsetY, 0, 1)
	}
	return nil
}

func (r *Renderer) drawEmotion(dc *gg.Context, rec types.DetectionRecord, w, h int) error {
	if !strings.Contains(rec.Label, "Person:") {
		return fmt.Errorf("label %q does not describe a person", rec.Label)
	}
	parts := strings.SplitN(rec.Label, ": ", 2)
	if len(parts) != 2 {
		return fmt.Errorf("label %q has no emotion suffix", rec.Label)
	}
	emotion := strings.ToLower(parts[1])

	col, ok := emotionColors[emotion]
	if !ok {
		col = fallbackEmotionColor
	}

	rect, err := PixelRect(rec.Box2D, w, h)
	if err != nil {
		return err
	}
	strokeRect(dc, rect, col, emotionStroke)

	dc.SetFontFace(loadFace(r.cfg.FontChain, emotionFontSize))
	tw, th := dc.MeasureString(emotion)

	// Center the text horizontally under the box on a solid plate.
	tx := float64(rect.X1) + (float64(rect.Width())-tw)/2
	ty := float64(rect.Y2) + plateGap

	dc.SetColor(color.Black)
	dc.DrawRectangle(tx-platePad, ty-platePad, tw+2*platePad, th+2*platePad)
	dc.Fill()

	dc.SetColor(col)
	dc.DrawStringAnchored(emotion, tx, ty, 0, 1)
	return nil
}

func strokeRect(dc *gg.Context, rect types.Rect, col color.NRGBA, width float64) {
	dc.SetColor(col)
	dc.SetLineWidth(width)
	dc.DrawRectangle(float64(rect.X1), float64(rect.Y1), float64(rect.Width()), float64(rect.Height()))
	dc.Stroke()
}

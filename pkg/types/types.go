package types

// DetectionRecord is one entry of the model's output array, describing one
// located region and an optional label.
type DetectionRecord struct {
	// Box2D holds [y1, x1, y2, x2] on the 0-1000 normalized scale.
	Box2D []float64 `json:"box_2d"`
	Label string    `json:"label,omitempty"`
}

// HasBox reports whether the record carries a usable four-value box.
func (r DetectionRecord) HasBox() bool {
	return len(r.Box2D) >= 4
}

// Rect is a pixel-space rectangle with ordered corners, so X1 <= X2 and
// Y1 <= Y2 always hold after mapping.
type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Width returns the horizontal extent in pixels.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the vertical extent in pixels.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

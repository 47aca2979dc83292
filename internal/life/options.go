package life

// Canonical text symbols used when a TextOptions field is unset.
const (
	DefaultAlive     = '#'
	DefaultDead      = '.'
	DefaultSeparator = '\n'
)

// Default SVG styling used when an SVGOptions field is unset.
const (
	DefaultCellSize    = 20
	DefaultStrokeWidth = 2
	DefaultStrokeColor = "white"
	DefaultFillColor   = "black"
)

// TextOptions selects the symbols for the delimited-text board encoding.
// Zero-value fields are defaulted independently.
type TextOptions struct {
	Alive     rune
	Dead      rune
	Separator rune
}

// WithDefaults fills unset symbols with the canonical '#', '.' and newline.
func (o TextOptions) WithDefaults() TextOptions {
	if o.Alive == 0 {
		o.Alive = DefaultAlive
	}
	if o.Dead == 0 {
		o.Dead = DefaultDead
	}
	if o.Separator == 0 {
		o.Separator = DefaultSeparator
	}
	return o
}

// SVGOptions selects cell geometry and colors for the SVG renderer.
// Zero-value fields are defaulted independently.
type SVGOptions struct {
	CellSize    int
	StrokeWidth int
	StrokeColor string
	FillColor   string
}

// WithDefaults fills unset styling with the canonical 20/2/white/black set.
func (o SVGOptions) WithDefaults() SVGOptions {
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = DefaultStrokeWidth
	}
	if o.StrokeColor == "" {
		o.StrokeColor = DefaultStrokeColor
	}
	if o.FillColor == "" {
		o.FillColor = DefaultFillColor
	}
	return o
}

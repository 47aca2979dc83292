package life

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// captionBand is the fixed footer height reserved for the caption text.
const captionBand = 20

// SVG renders the board as a vector image: one filled square per live cell
// (dead cells emit no markup) and a centered caption reading
// "t = {generation}, Δ = {delta}" in the footer band. Writer failures
// surface as RenderError.
func (b *Board) SVG(opts SVGOptions) (string, error) {
	opts = opts.WithDefaults()

	width := b.Cols() * opts.CellSize
	height := b.Rows()*opts.CellSize + captionBand

	var buf strings.Builder
	w := tokenWriter{enc: xml.NewEncoder(&buf)}

	root := element("svg",
		attr("xmlns", "http://www.w3.org/2000/svg"),
		attr("width", strconv.Itoa(width)),
		attr("height", strconv.Itoa(height)),
	)
	w.start(root)

	for row := range b.grid {
		for col, alive := range b.grid[row] {
			if !alive {
				continue
			}
			rect := element("rect",
				attr("x", strconv.Itoa(col*opts.CellSize)),
				attr("y", strconv.Itoa(row*opts.CellSize)),
				attr("width", strconv.Itoa(opts.CellSize)),
				attr("height", strconv.Itoa(opts.CellSize)),
				attr("fill", opts.FillColor),
				attr("stroke", opts.StrokeColor),
				attr("stroke-width", strconv.Itoa(opts.StrokeWidth)),
			)
			w.start(rect)
			w.end(rect)
		}
	}

	caption := element("text",
		attr("x", "50%"),
		attr("y", strconv.Itoa(height-5)),
		attr("font-family", "monospace"),
		attr("font-size", "12"),
		attr("fill", opts.FillColor),
		attr("dominant-baseline", "center"),
		attr("text-anchor", "middle"),
	)
	w.start(caption)
	w.text(fmt.Sprintf("t = %d, Δ = %d", b.generation, b.delta))
	w.end(caption)

	w.end(root)

	if err := w.flush(); err != nil {
		return "", RenderError{Err: err}
	}
	return buf.String(), nil
}

// tokenWriter sequences XML tokens and remembers the first failure so the
// render loop stays linear.
type tokenWriter struct {
	enc *xml.Encoder
	err error
}

func (w *tokenWriter) start(el xml.StartElement) {
	if w.err == nil {
		w.err = w.enc.EncodeToken(el)
	}
}

func (w *tokenWriter) end(el xml.StartElement) {
	if w.err == nil {
		w.err = w.enc.EncodeToken(el.End())
	}
}

func (w *tokenWriter) text(s string) {
	if w.err == nil {
		w.err = w.enc.EncodeToken(xml.CharData(s))
	}
}

func (w *tokenWriter) flush() error {
	if w.err != nil {
		return w.err
	}
	return w.enc.Flush()
}

func element(name string, attrs ...xml.Attr) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

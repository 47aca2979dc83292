package web

import (
	"fmt"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/louisbranch/life.space/internal/life"
)

// badRequestError marks malformed client input for status mapping.
type badRequestError struct {
	msg string
}

func (e badRequestError) Error() string { return e.msg }

func badRequestf(format string, args ...any) error {
	return badRequestError{msg: fmt.Sprintf(format, args...)}
}

// renderParams carries everything a render request can customize. Absent
// parameters stay zero and are defaulted by the engine options.
type renderParams struct {
	next bool
	text life.TextOptions
	svg  life.SVGOptions
}

func parseRenderParams(query url.Values) (renderParams, error) {
	var params renderParams
	var err error

	if params.next, err = boolParam(query, "next"); err != nil {
		return params, err
	}
	if params.text, err = parseTextOptions(query); err != nil {
		return params, err
	}
	if params.svg.CellSize, err = intParam(query, "cell_size"); err != nil {
		return params, err
	}
	if params.svg.StrokeWidth, err = intParam(query, "stroke_width"); err != nil {
		return params, err
	}
	params.svg.StrokeColor = query.Get("stroke_color")
	params.svg.FillColor = query.Get("fill_color")
	return params, nil
}

func parseTextOptions(query url.Values) (life.TextOptions, error) {
	var opts life.TextOptions
	var err error

	if opts.Alive, err = runeParam(query, "alive"); err != nil {
		return opts, err
	}
	if opts.Dead, err = runeParam(query, "dead"); err != nil {
		return opts, err
	}
	if opts.Separator, err = runeParam(query, "separator"); err != nil {
		return opts, err
	}
	return opts, nil
}

// runeParam reads a single-character query parameter, counted in Unicode
// scalars rather than bytes.
func runeParam(query url.Values, key string) (rune, error) {
	raw := query.Get(key)
	if raw == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(raw)
	if r == utf8.RuneError || size != len(raw) {
		return 0, badRequestf("query parameter %q must be a single character", key)
	}
	return r, nil
}

func intParam(query url.Values, key string) (int, error) {
	raw := query.Get(key)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, badRequestf("query parameter %q must be a non-negative integer", key)
	}
	return value, nil
}

func boolParam(query url.Values, key string) (bool, error) {
	raw := query.Get(key)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, badRequestf("query parameter %q must be a boolean", key)
	}
	return value, nil
}

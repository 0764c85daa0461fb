package scad

import (
	"math"
	"strconv"
	"strings"
)

// measurementTerms mark number parameters that hold lengths in millimetres.
var measurementTerms = []string{
	"width", "height", "length", "depth", "thickness", "radius", "diameter",
	"distance", "size", "offset", "gap", "spacing", "margin", "padding",
	"inset", "extrude", "dimension",
}

// SliderRange returns slider bounds for a number parameter. An explicit
// min and max from the comment metadata win. Otherwise the bound is the next
// "nice" number (1, 2, 5 or 10 times a power of ten) clearly above the
// default value: 94 gives 0..100, 2.7 gives 0..10, 0.5 gives 0..1. Negative
// defaults get a symmetric range; an explicit min is always honored.
func SliderRange(p Parameter) (lo, hi float64) {
	if p.Range != nil && p.Range.Min != nil && p.Range.Max != nil {
		return *p.Range.Min, *p.Range.Max
	}

	def, ok := toNumber(p.DefaultValue)
	ref := math.Abs(def)
	if !ok || ref <= 0.001 {
		return 0, 1
	}

	magnitude := math.Floor(math.Log10(ref))
	scale := math.Pow(10, magnitude)
	multiplier := niceMultiplier(ref / scale)
	hi = multiplier * scale

	if ref > hi*0.5 {
		switch multiplier {
		case 1:
			multiplier = 2
		case 2:
			multiplier = 5
		default:
			multiplier = 10
		}
		hi = multiplier * scale
	}

	switch {
	case p.Range != nil && p.Range.Min != nil:
		lo = *p.Range.Min
	case def < 0:
		lo = -hi
	}
	return lo, hi
}

// SliderStep returns the explicit step, or roughly 1% of the slider range
// rounded to a nice number.
func SliderStep(p Parameter) float64 {
	if p.Range != nil && p.Range.Step != nil {
		return *p.Range.Step
	}

	lo, hi := SliderRange(p)
	span := hi - lo
	if span <= 0.001 {
		return 0.001
	}

	raw := span / 100
	scale := math.Pow(10, math.Floor(math.Log10(raw)))
	return niceMultiplier(raw/scale) * scale
}

func niceMultiplier(normalized float64) float64 {
	switch {
	case normalized <= 1:
		return 1
	case normalized <= 2:
		return 2
	case normalized <= 5:
		return 5
	default:
		return 10
	}
}

// IsMeasurement reports whether p is a number whose name suggests a length.
func IsMeasurement(p Parameter) bool {
	if p.Type != TypeNumber && p.Type != "" {
		return false
	}

	name := strings.ToLower(p.Name)
	display := strings.ToLower(p.DisplayName)
	for _, term := range measurementTerms {
		if strings.Contains(name, term) || strings.Contains(display, term) {
			return true
		}
	}
	return false
}

// ValidateValue sanitises a user-entered value before it is patched in.
// Number (and untyped) parameters fall back to their default when v is not
// numeric; other types pass through.
func ValidateValue(p Parameter, v any) any {
	if p.Type != TypeNumber && p.Type != "" {
		return v
	}
	if n, ok := toNumber(v); ok {
		return n
	}
	n, _ := toNumber(p.DefaultValue)
	return n
}

// toNumber converts v the way a lenient numeric input does: blank text is
// zero, booleans are 0 or 1.
func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case nil:
		return 0, false
	}
	f, err := coerceNumber(v)
	return f, err == nil
}

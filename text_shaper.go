package layout

import (
	"github.com/rivo/uniseg"
)

// TextShaper is the external measurement capability the layout core consumes
// but never implements itself: real glyph metrics come from a font/shaping
// library the caller owns. TextMetricsProvider (text.go) is the measurement
// half of this contract; UnisegTextShaper additionally exposes Unicode-correct
// segmentation so the inline line builder does not have to re-derive grapheme
// and line-break boundaries on its own.
type TextShaper interface {
	TextMetricsProvider

	// Segments splits text into line-break units: runs of text that must stay
	// together, separated at UAX #14 line-break opportunities. Each returned
	// string is a candidate word/cluster for the line builder to place;
	// concatenating the slice reproduces the input exactly.
	Segments(text string) []string
}

// UnisegTextShaper is the default TextShaper, grounded on
// github.com/rivo/uniseg for grapheme clustering and line-break opportunity
// detection instead of a hand-rolled UAX table walk. Width measurement still
// falls back to the font-metrics-free heuristic of approxMetrics; plug in a
// real font via a different TextMetricsProvider and wrap it with
// NewUnisegTextShaperWithMetrics to keep uniseg's segmentation with accurate
// glyph widths.
type UnisegTextShaper struct {
	metrics TextMetricsProvider
}

// NewUnisegTextShaper returns a shaper using the package's default
// approximate metrics.
func NewUnisegTextShaper() *UnisegTextShaper {
	return &UnisegTextShaper{metrics: &approxMetrics{}}
}

// NewUnisegTextShaperWithMetrics returns a shaper using uniseg for
// segmentation and the supplied provider for advance/ascent/descent.
func NewUnisegTextShaperWithMetrics(metrics TextMetricsProvider) *UnisegTextShaper {
	if metrics == nil {
		metrics = &approxMetrics{}
	}
	return &UnisegTextShaper{metrics: metrics}
}

// Measure implements TextMetricsProvider by delegating to the wrapped
// metrics provider.
func (s *UnisegTextShaper) Measure(text string, style TextStyle) (advance, ascent, descent float64) {
	return s.metrics.Measure(text, style)
}

// Segments breaks text at UAX #14 line-break opportunities using uniseg's
// boundary classification, keeping grapheme clusters (including emoji ZWJ
// sequences and combining marks) intact within a single segment.
func (s *UnisegTextShaper) Segments(text string) []string {
	if text == "" {
		return nil
	}

	var segments []string
	var current []byte
	state := -1
	remaining := text

	for len(remaining) > 0 {
		cluster, rest, boundaries, newState := uniseg.StepString(remaining, state)
		current = append(current, cluster...)

		lineBreak := (boundaries & uniseg.MaskLine) >> uniseg.ShiftLine
		if lineBreak == uniseg.LineCanBreak || lineBreak == uniseg.LineMustBreak {
			segments = append(segments, string(current))
			current = current[:0]
		}

		remaining = rest
		state = newState
	}
	if len(current) > 0 {
		segments = append(segments, string(current))
	}
	return segments
}

// graphemeCount counts user-perceived characters using uniseg, replacing the
// naive len(text) used for letter-spacing elsewhere in approxMetrics-derived
// providers when a caller wants Unicode-correct spacing.
func graphemeCount(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

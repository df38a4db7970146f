package layout

// style.go derives the CSS Display Module Level 3 (outer, inner) display
// pair from the single Display enum (types.go) instead of replacing it.
// Every layout routine in this package was written against the single enum
// (Layout's switch, blockLayoutChildren's switch, the flexbox/grid item
// classifiers); Outer/Inner give callers - and the new dom.go/arena.go/
// table.go/bfc.go modules - the two-value model the rest of the CSS stack
// expects without forcing a simultaneous rewrite of every call site.
//
// See https://www.w3.org/TR/css-display-3/#the-display-properties

// OuterDisplay is the "display-outside" value: how the box participates in
// its parent's formatting context.
type OuterDisplay int

const (
	OuterBlock OuterDisplay = iota
	OuterInline
	OuterRunIn
	OuterNone
)

// InnerDisplay is the "display-inside" value: the formatting context the
// box itself establishes for its children.
type InnerDisplay int

const (
	InnerFlow InnerDisplay = iota
	InnerFlowRoot
	InnerFlex
	InnerGrid
	InnerTable
	InnerTableRowGroup
	InnerTableRow
	InnerTableCell
)

// Outer returns the display-outside half of this style's computed display.
func (s Style) Outer() OuterDisplay {
	switch s.Display {
	case DisplayNone:
		return OuterNone
	case DisplayInlineText, DisplayInlineBlock:
		return OuterInline
	default:
		return OuterBlock
	}
}

// Inner returns the display-inside half of this style's computed display.
func (s Style) Inner() InnerDisplay {
	switch s.Display {
	case DisplayFlex:
		return InnerFlex
	case DisplayGrid:
		return InnerGrid
	case DisplayFlowRoot, DisplayInlineBlock:
		return InnerFlowRoot
	case DisplayTable:
		return InnerTable
	case DisplayTableRowGroup:
		return InnerTableRowGroup
	case DisplayTableRow:
		return InnerTableRow
	case DisplayTableCell:
		return InnerTableCell
	default:
		return InnerFlow
	}
}

// EstablishesBFC reports whether a box of this style establishes its own
// block formatting context (CSS2.1 ยง9.4.1): its floats and margins don't
// interact with those of its ancestors, and it contains any floated
// descendants for height purposes.
func (s Style) EstablishesBFC() bool {
	switch s.Inner() {
	case InnerFlowRoot, InnerFlex, InnerGrid, InnerTableCell:
		return true
	}
	return s.Float != FloatNone || s.Position == PositionAbsolute || s.Position == PositionFixed
}

// DisplayPair returns the (outer, inner) display pair, i.e. Outer() and
// Inner(), as enum values; it does no string formatting.
func (s Style) DisplayPair() (OuterDisplay, InnerDisplay) {
	return s.Outer(), s.Inner()
}

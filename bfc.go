package layout

// bfc.go implements the float-placement and clearance half of the block
// formatting context (CSS2.1 ยง9.4.1, ยง9.5): tracking the active left/right
// float edges as a block's children are stacked, so later floats pack
// against earlier ones instead of overlapping, clear pushes a box below
// the floats it names, and a box that establishes its own BFC (style.go's
// EstablishesBFC) reports a height that includes any floats it contains.
// Margin collapsing (blockLayoutChildren's existing max-of-margins logic)
// does not reach through a float or a new BFC, so float placement is kept
// as a separate concern threaded alongside it rather than folded in.

// floatEdge records one already-placed float's outer rect within its BFC,
// in the BFC's own coordinate space (Y==0 at the BFC's content top).
type floatEdge struct {
	side Float
	rect Rect
}

// BfcContext accumulates the floats placed so far in one block formatting
// context. Created per box that establishes a BFC (the root block layout,
// or any descendant with Style.EstablishesBFC()).
type BfcContext struct {
	containerWidth float64
	floats         []floatEdge
}

// NewBfcContext starts a fresh block formatting context containerWidth
// pixels wide with no floats placed yet.
func NewBfcContext(containerWidth float64) *BfcContext {
	return &BfcContext{containerWidth: containerWidth}
}

// leftEdge returns how far the left float edge has advanced inward at
// vertical position y (0 if no left float occupies that line).
func (b *BfcContext) leftEdge(y, height float64) float64 {
	edge := 0.0
	for _, f := range b.floats {
		if f.side != FloatLeft {
			continue
		}
		if y < f.rect.Y+f.rect.Height && y+height > f.rect.Y {
			if r := f.rect.X + f.rect.Width; r > edge {
				edge = r
			}
		}
	}
	return edge
}

// rightEdge returns how far the right float edge has advanced inward
// (i.e. the available width's right boundary) at vertical position y.
func (b *BfcContext) rightEdge(y, height float64) float64 {
	edge := b.containerWidth
	for _, f := range b.floats {
		if f.side != FloatRight {
			continue
		}
		if y < f.rect.Y+f.rect.Height && y+height > f.rect.Y {
			if f.rect.X < edge {
				edge = f.rect.X
			}
		}
	}
	return edge
}

// PlaceFloat finds the highest y at or after minY where size fits between
// the active left/right edges, registers the float there, and returns its
// placed rect (CSS2.1 ยง9.5.1 rules 3-5, simplified to single-pass packing:
// try minY first, then step down to the next float edge until size fits).
func (b *BfcContext) PlaceFloat(side Float, size Size, minY float64) Rect {
	y := minY
	for i := 0; i < len(b.floats)+1; i++ {
		left := b.leftEdge(y, size.Height)
		right := b.rightEdge(y, size.Height)
		available := right - left
		if available >= size.Width || len(b.floats) == 0 {
			x := left
			if side == FloatRight {
				x = right - size.Width
			}
			rect := Rect{X: x, Y: y, Width: size.Width, Height: size.Height}
			b.floats = append(b.floats, floatEdge{side: side, rect: rect})
			return rect
		}
		// Doesn't fit at y: advance to the bottom of the nearest
		// obstructing float and retry.
		next := y
		for _, f := range b.floats {
			if f.rect.Y+f.rect.Height > y && (next == y || f.rect.Y+f.rect.Height < next) {
				next = f.rect.Y + f.rect.Height
			}
		}
		if next <= y {
			break
		}
		y = next
	}
	rect := Rect{X: 0, Y: y, Width: size.Width, Height: size.Height}
	b.floats = append(b.floats, floatEdge{side: side, rect: rect})
	return rect
}

// ClearY returns the first y at or after minY that is clear of floats on
// the side(s) named by clear (CSS2.1 ยง9.5.2).
func (b *BfcContext) ClearY(clear Clear, minY float64) float64 {
	if clear == ClearNone {
		return minY
	}
	y := minY
	for _, f := range b.floats {
		if clear == ClearBoth || (clear == ClearLeft && f.side == FloatLeft) || (clear == ClearRight && f.side == FloatRight) {
			if bottom := f.rect.Y + f.rect.Height; bottom > y {
				y = bottom
			}
		}
	}
	return y
}

// FloatsBottom returns the lowest edge of any float placed in this
// context, used by an auto-height BFC-establishing box so its own height
// includes floats it contains (CSS2.1 ยง10.6.7).
func (b *BfcContext) FloatsBottom() float64 {
	bottom := 0.0
	for _, f := range b.floats {
		if edge := f.rect.Y + f.rect.Height; edge > bottom {
			bottom = edge
		}
	}
	return bottom
}

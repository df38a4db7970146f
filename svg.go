package layout

import (
	"fmt"
	"strings"
)

// GetSVGTransform returns the SVG transform attribute string for a node
// This is useful when rendering layouts to SVG
func GetSVGTransform(node *Node) string {
	if node.Style.Transform.IsIdentity() {
		return ""
	}
	return node.Style.Transform.ToSVGString()
}

// GetFinalRect returns the final rectangle position after applying transforms
// This accounts for both positioning and transforms
func GetFinalRect(node *Node) Rect {
	rect := node.Rect
	
	// If there's a transform, apply it to get the bounding box
	if !node.Style.Transform.IsIdentity() {
		// For layout purposes, we might want the original rect
		// But for rendering, we want the transformed bounding box
		return node.Style.Transform.ApplyToRect(rect)
	}
	
	return rect
}

// CollectNodesForSVG collects all nodes in the tree with their final positions
// Useful for iterating over all elements when rendering to SVG
func CollectNodesForSVG(root *Node, nodes *[]*Node) {
	*nodes = append(*nodes, root)
	for _, child := range root.Children {
		CollectNodesForSVG(child, nodes)
	}
}

// RenderViewTreeSVG renders a frozen ViewTree (see arena.go) to an SVG
// document. Unlike GetSVGTransform/GetFinalRect, which work against the
// mutable *Node scratch tree mid-layout, this renders the stable,
// caller-facing output: the tree CLI's "run" command hands to this to let
// a fixture be eyeballed without a browser.
//
// Table blocks additionally get their column/row grid drawn in a muted
// stroke, since a ViewTableInfo's widths/heights are otherwise invisible
// in a plain box render.
func RenderViewTreeSVG(tree *ViewTree) string {
	var b strings.Builder
	w, h := viewTreeExtent(tree)
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n", w, h, w, h)
	if tree.Root != NoView {
		renderViewBlockSVG(&b, tree, tree.Root)
	}
	b.WriteString("</svg>\n")
	return b.String()
}

func viewTreeExtent(tree *ViewTree) (width, height float64) {
	for _, blk := range tree.Blocks {
		if right := blk.Rect.X + blk.Rect.Width; right > width {
			width = right
		}
		if bottom := blk.Rect.Y + blk.Rect.Height; bottom > height {
			height = bottom
		}
	}
	return width, height
}

func renderViewBlockSVG(b *strings.Builder, tree *ViewTree, id ViewID) {
	blk := tree.Blocks[id]
	switch blk.Kind {
	case ViewTextKind:
		fmt.Fprintf(b, "<text x=\"%g\" y=\"%g\">%s</text>\n", blk.Rect.X, blk.Rect.Y+blk.Rect.Height, svgEscape(blk.Text))
	default:
		fmt.Fprintf(b, "<rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"none\" stroke=\"black\"/>\n",
			blk.Rect.X, blk.Rect.Y, blk.Rect.Width, blk.Rect.Height)
		if blk.Kind == ViewTableKind && blk.Table != nil {
			renderTableGridSVG(b, blk)
		}
	}
	for _, childID := range blk.Children {
		renderViewBlockSVG(b, tree, childID)
	}
}

// renderTableGridSVG draws the column and row boundaries recorded in a
// ViewTableInfo so the table's track sizing is visible without hovering
// over individual cells.
func renderTableGridSVG(b *strings.Builder, blk ViewBlock) {
	x := blk.Rect.X
	for _, colWidth := range blk.Table.ColumnWidths {
		x += colWidth
		fmt.Fprintf(b, "<line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"lightgray\"/>\n",
			x, blk.Rect.Y, x, blk.Rect.Y+blk.Rect.Height)
	}
	y := blk.Rect.Y
	for _, rowHeight := range blk.Table.RowHeights {
		y += rowHeight
		fmt.Fprintf(b, "<line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"lightgray\"/>\n",
			blk.Rect.X, y, blk.Rect.X+blk.Rect.Width, y)
	}
}

func svgEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}


// Package layout provides a pure Go implementation of CSS Grid, Flexbox, and Block layout engines.
//
// This library implements layout algorithms similar to CSS, allowing you to create complex
// layouts programmatically in Go. It's designed to be reusable across different rendering
// backends: terminal UIs (Bubble Tea), web layouts, SVG rendering, PDF generation, etc.
//
// # Layout Systems
//
// The library supports multiple layout systems:
//
//   - Flexbox: Flexible box layout with support for direction, wrap, alignment, and flex properties
//   - Grid: CSS Grid layout with support for unlimited columns via GridTemplateColumns,
//     template rows, fractional units (fr), gaps, and item positioning
//   - Block: Basic block layout for stacking elements vertically, including floats
//     and clearance within a block formatting context (see BfcContext in bfc.go)
//   - Table: Automatic table column/row sizing per CSS 2.1 §17 (table.go); there is
//     no separate fixed-layout (table-layout: fixed) algorithm
//   - Positioned: Absolute, relative, fixed, and sticky positioning (sticky
//     boxes are offset like relative ones; scrolling is not modelled)
//
// # Output model
//
// Layout mutates a *Node tree in place. Once a pass is done, BuildViewTree
// snapshots it into an immutable ViewTree: a flat slice of ViewBlock values
// addressed by stable ViewID, safe to hand to a caller without aliasing the
// scratch tree (see arena.go). DOMNode (dom.go) is the read-only input side
// of the same boundary: layout never needs to mutate a caller's DOM.
//
// # Quick Start
//
// Create a simple horizontal stack:
//
//	root := layout.HStack(
//	    layout.Fixed(100, 50),
//	    layout.Spacer(),
//	    layout.Fixed(100, 50),
//	)
//	constraints := layout.Loose(800, 600)
//	size := layout.Layout(root, constraints)
//
// # Usage Patterns
//
// The library supports multiple usage patterns:
//
//  1. High-level API: Use HStack, VStack, Spacer for simple layouts
//  2. CSS-like API: Direct Node creation with Style properties
//  3. Embedded pattern: Embed Node in your own types
//  4. Builder pattern: Create custom builders for your domain
//
// # SVG Rendering
//
// The library includes helpers for SVG rendering:
//
//	transform := layout.GetSVGTransform(node)
//	rect := layout.GetFinalRect(node)
//
// # Transforms
//
// Support for 2D transformations (translate, rotate, scale, skew) for visual effects:
//
//	node.Style.Transform = layout.RotateDegrees(15)
//
// # Examples
//
// The package's _test.go files build and lay out complete trees for each
// layout system.
package layout

package layout

// dom.go defines the read-only input contract this package consumes. The
// layout algorithms (LayoutBlock, LayoutFlexbox, LayoutGrid, ...) mutate
// *Node.Rect in place as they run - that's the inner scratch tree, and it's
// deliberate: re-allocating a node per layout pass would thrash the arena
// this package builds its output from (see arena.go). What must never be
// mutated is the caller's own document tree, so callers hand this package
// a DOMNode instead of a *Node: NewScratchTree copies it once into the
// mutable Node tree the algorithms already know how to walk, and the
// caller's tree is never touched again.

// DOMNode is a read-only view of one element (or text run) in the source
// document tree. Implementations are supplied by the caller - an HTML/CSS
// cascade, a test fixture, a hand-built fixture tree - and must not be
// mutated by this package.
type DOMNode interface {
	// ComputedStyle is this node's style after cascade/inheritance/
	// computed-value resolution; layout never resolves specified values.
	ComputedStyle() Style
	// Text is the node's text content, or "" for non-text nodes.
	Text() string
	// Children returns the node's element/text children in document order.
	Children() []DOMNode
}

// StaticDOMNode is the simplest DOMNode: a fixed Style/Text/Children triple.
// Most callers that already build a layout.Node by hand can wrap it instead
// via NodeAsDOM rather than duplicating the tree into StaticDOMNode.
type StaticDOMNode struct {
	Style_    Style
	Text_     string
	Children_ []DOMNode
}

func (n StaticDOMNode) ComputedStyle() Style { return n.Style_ }
func (n StaticDOMNode) Text() string         { return n.Text_ }
func (n StaticDOMNode) Children() []DOMNode  { return n.Children_ }

// domNodeAdapter lets an existing *Node satisfy DOMNode read-only, so
// callers already holding a Node tree (most of this package's own tests)
// can exercise the DOMNode-consuming path without a second tree type.
type domNodeAdapter struct{ node *Node }

// NodeAsDOM wraps an existing *Node as a read-only DOMNode. The wrapped
// node is never written to through this adapter.
func NodeAsDOM(n *Node) DOMNode {
	if n == nil {
		return nil
	}
	return domNodeAdapter{node: n}
}

func (a domNodeAdapter) ComputedStyle() Style { return a.node.Style }
func (a domNodeAdapter) Text() string         { return a.node.Text }
func (a domNodeAdapter) Children() []DOMNode {
	children := make([]DOMNode, len(a.node.Children))
	for i, c := range a.node.Children {
		children[i] = domNodeAdapter{node: c}
	}
	return children
}

// NewScratchTree snapshots a read-only DOMNode tree into the mutable *Node
// tree the layout algorithms operate on. This is the one point where the
// immutable outer contract (DOMNode) and the mutable inner scratch layer
// (Node, as mutated by LayoutBlock/LayoutFlexbox/LayoutGrid/LayoutText) are
// bridged: every Node returned here is newly allocated, so mutating it
// during layout can never be observed by the caller's DOM tree.
func NewScratchTree(dom DOMNode) *Node {
	if dom == nil {
		return nil
	}
	style := dom.ComputedStyle()
	domChildren := dom.Children()
	node := &Node{
		Style: style,
		Text:  dom.Text(),
	}
	if len(domChildren) > 0 {
		node.Children = make([]*Node, len(domChildren))
		for i, child := range domChildren {
			node.Children[i] = NewScratchTree(child)
		}
	}
	return node
}

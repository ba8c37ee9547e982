package domain

// NavNode is one entry of the navigation tree: either a Leaf pointing at a
// content page, or a Section grouping an ordered list of child nodes.
// Order is significant; it defines the rendered menu order.
type NavNode interface {
	// NavTitle returns the display title of the node.
	// It may be empty for leaves declared as a bare path.
	NavTitle() string

	isNavNode()
}

// Leaf maps a display title to a content page, relative to the docs root.
// Example: {Title: "About", Path: "getting-started/index.en.md"}
type Leaf struct {
	Title string
	Path  string
}

// Section groups an ordered list of child nodes under a display title.
type Section struct {
	Title    string
	Children []NavNode
}

func (l Leaf) NavTitle() string { return l.Title }
func (l Leaf) isNavNode()       {}

func (s Section) NavTitle() string { return s.Title }
func (s Section) isNavNode()       {}

// WalkLeaves visits every leaf of the tree in menu order.
func WalkLeaves(nodes []NavNode, fn func(Leaf)) {
	for _, node := range nodes {
		switch n := node.(type) {
		case Leaf:
			fn(n)
		case Section:
			WalkLeaves(n.Children, fn)
		}
	}
}

// CountLeaves returns the number of content pages referenced by the tree.
func CountLeaves(nodes []NavNode) int {
	count := 0
	WalkLeaves(nodes, func(Leaf) { count++ })
	return count
}

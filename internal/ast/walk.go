package ast

// Walk visits c and its descendants in pre-order. Returning false from fn skips
// the children of the visited node.
func Walk(c Child, fn func(Child) bool) {
	if c == nil || !fn(c) {
		return
	}
	if n, ok := c.(*Node); ok {
		for _, ch := range n.Children {
			Walk(ch, fn)
		}
	}
}

// FindAll returns every node under root (root included) tagged tag, in pre-order.
func FindAll(root Child, tag Tag) []*Node {
	var out []*Node
	Walk(root, func(c Child) bool {
		if n, ok := c.(*Node); ok && n.Tag == tag {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Shape flattens a tree into production names and leaf text. Nodes open with
// "<tag" and close with ">", so two trees with equal shapes have identical
// structure, tags and leaves.
func Shape(root Child) []string {
	var out []string
	var visit func(Child)
	visit = func(c Child) {
		switch c := c.(type) {
		case *Node:
			out = append(out, "<"+c.Tag.String())
			for _, ch := range c.Children {
				visit(ch)
			}
			out = append(out, ">")
		case Leaf:
			out = append(out, string(c))
		case *Ref:
			out = append(out, "${"+c.Kind.String()+"}")
		}
	}
	visit(root)
	return out
}

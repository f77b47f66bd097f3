package trie

// node is one position in the trie.
// a node owns its children exclusively, there are no parent pointers.
type node struct {
	children map[rune]*node // edge label -> child
	end      bool           // a stored string ends at this node
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// checks if the node has no children.
func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

// a node that is neither the end of a string nor on the way to one
// has no reason to exist and must be detached from its parent.
func (n *node) isDangling() bool {
	return !n.end && n.isLeaf()
}

// returns the child for r, creating it if it does not exist yet.
func (n *node) attachChildIfNotExist(r rune) *node {
	child, ok := n.children[r]
	if !ok {
		child = newNode()
		n.children[r] = child
	}
	return child
}

// insert consumes the path one rune at a time, creating missing nodes on the way,
// and marks the last node as the end of a string.
// returns false if the path was already stored.
func (n *node) insert(path []rune) bool {
	if len(path) == 0 {
		added := !n.end
		n.end = true
		return added
	}
	return n.attachChildIfNotExist(path[0]).insert(path[1:])
}

// getNode descends the path and returns the node it ends on.
// it never mutates the tree.
func (n *node) getNode(path []rune) (*node, bool) {
	current := n
	for _, r := range path {
		child, ok := current.children[r]
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

// remove unmarks the string at the end of path and prunes every node
// that became dangling while unwinding.
// the tree is not touched if the path does not lead to a stored string.
func (n *node) remove(path []rune) bool {
	if len(path) == 0 {
		if !n.end {
			return false
		}
		n.end = false
		return true
	}

	child, ok := n.children[path[0]]
	if !ok {
		return false
	}
	if !child.remove(path[1:]) {
		return false
	}
	if child.isDangling() {
		delete(n.children, path[0])
	}
	return true
}

// removeSubtree detaches the node at the end of a non-empty prefix, together with
// everything below it, and hands it to the caller.
// ancestors left dangling by the cut are pruned on the way back up.
func (n *node) removeSubtree(prefix []rune) (*node, bool) {
	if len(prefix) == 0 {
		panic("[BUG] removeSubtree: the prefix must not be empty, a node can not detach itself")
	}

	child, ok := n.children[prefix[0]]
	if !ok {
		return nil, false
	}

	if len(prefix) == 1 {
		delete(n.children, prefix[0])
		return child, true
	}

	detached, ok := child.removeSubtree(prefix[1:])
	if ok && child.isDangling() {
		delete(n.children, prefix[0])
	}
	return detached, ok
}

// counts this node and all of its descendants.
func (n *node) countNodes() int {
	count := 0
	stack := []*node{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, child := range current.children {
			stack = append(stack, child)
		}
	}
	return count
}

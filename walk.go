package cmdtree

// descend is the one traversal step every consumer of the hierarchy shares:
// the child reached from node by token, or false when node is not a group or
// names no such child.
func descend(node Node, token string) (Node, bool) {
	group, ok := node.(*Group)
	if !ok {
		return nil, false
	}
	return group.Child(token)
}

// walkGroups descends from the root by child name, consuming tokens until one
// does not match, a command is reached, or the tokens run out. It returns the
// last node reached, the tokens consumed to reach it, and the tokens left
// over. The resolver, completion, and help all descend through [descend] so
// their traversal semantics cannot drift apart.
func (r *Registry) walkGroups(tokens []string) (node Node, consumed, rest []string) {
	node = r.root
	for i, token := range tokens {
		child, ok := descend(node, token)
		if !ok {
			return node, consumed, tokens[i:]
		}
		node = child
		consumed = append(consumed, token)
	}
	return node, consumed, nil
}

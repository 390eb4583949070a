package internal

// ReconstructPath rebuilds a root-to-leaf path from parent links.
// parentOf returns a negative index for the root.
func ReconstructPath[NodeType any](
	leaf int,
	parentOf func(index int) int,
	valueOf func(index int) NodeType,
) []NodeType {
	path := []NodeType{valueOf(leaf)}
	for current := parentOf(leaf); current >= 0; current = parentOf(current) {
		path = append(path, valueOf(current))
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

package gridpath

import "slices"

// searchNode lives only for one search. Two nodes are the same node iff
// their coordinates match, which the arena enforces by keying on Coords.
type searchNode struct {
	coords    Coords
	parent    int // arena index, -1 for the start node
	costSoFar float64
	heuristic float64
}

func (n *searchNode) score() float64 { return n.costSoFar + n.heuristic }

// estimate is max(goal.X-c.X, goal.Y-c.Y). It is not an absolute
// distance and goes negative once c has passed the goal on both axes.
func estimate(c, goal Coords) float64 {
	return float64(max(goal.X-c.X, goal.Y-c.Y))
}

// nodeArena owns every node created during a search: the all-nodes map
// keyed by coordinate and the currently open set.
type nodeArena struct {
	goal  Coords
	nodes []searchNode
	index map[Coords]int
	open  []int // arena indices in insertion order
}

func newNodeArena(goal Coords) *nodeArena {
	return &nodeArena{
		goal:  goal,
		index: make(map[Coords]int),
	}
}

// add creates the node for c and opens it. Callers check seen first.
func (a *nodeArena) add(c Coords, parent int, cellCost float64) int {
	costSoFar := 0.0
	if parent >= 0 {
		costSoFar = a.nodes[parent].costSoFar + cellCost
	}
	a.nodes = append(a.nodes, searchNode{
		coords:    c,
		parent:    parent,
		costSoFar: costSoFar,
		heuristic: estimate(c, a.goal),
	})
	i := len(a.nodes) - 1
	a.index[c] = i
	a.open = append(a.open, i)
	return i
}

func (a *nodeArena) seen(c Coords) bool {
	_, ok := a.index[c]
	return ok
}

func (a *nodeArena) lookup(c Coords) (int, bool) {
	i, ok := a.index[c]
	return i, ok
}

// close removes the entry at position pos of the open set.
func (a *nodeArena) close(pos int) {
	a.open = slices.Delete(a.open, pos, pos+1)
}

// best scans the whole open set for the lowest score. Ties keep the
// earliest entry. It returns the position in the open set, or -1 if empty.
func (a *nodeArena) best() int {
	bestPos := -1
	for pos, i := range a.open {
		if bestPos < 0 || a.nodes[i].score() < a.nodes[a.open[bestPos]].score() {
			bestPos = pos
		}
	}
	return bestPos
}

func (a *nodeArena) parentOf(i int) int   { return a.nodes[i].parent }
func (a *nodeArena) coordsOf(i int) Coords { return a.nodes[i].coords }

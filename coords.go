package gridpath

import (
	"fmt"
	"hash/maphash"
)

// Coords is an immutable grid position. X is the column and Y the row.
type Coords struct {
	X int
	Y int
}

// Unit offsets. Up increases Y.
var (
	Up    = Coords{X: 0, Y: 1}
	Down  = Coords{X: 0, Y: -1}
	Right = Coords{X: 1, Y: 0}
	Left  = Coords{X: -1, Y: 0}
)

// Directions is the order in which neighbors are generated during expansion.
var Directions = [4]Coords{Up, Down, Right, Left}

var coordsSeed = maphash.MakeSeed()

func NewCoords(x, y int) Coords {
	return Coords{X: x, Y: y}
}

// Add returns the component-wise sum.
func (c Coords) Add(other Coords) Coords {
	return Coords{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns the component-wise difference.
func (c Coords) Sub(other Coords) Coords {
	return Coords{X: c.X - other.X, Y: c.Y - other.Y}
}

func (c Coords) Equal(other Coords) bool {
	return c.X == other.X && c.Y == other.Y
}

// Hash is derived only from X and Y and is stable for the life of the process.
func (c Coords) Hash() uint64 {
	return maphash.Comparable(coordsSeed, c)
}

func (c Coords) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

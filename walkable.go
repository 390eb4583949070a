package gridpath

// Walkable is implemented by any cell that can take part in a search.
// The search only reads these values and never mutates the cell.
type Walkable interface {
	// IsOpenable reports whether the cell may be entered.
	IsOpenable() bool
	// Cost is the price of entering the cell. Negative costs void any
	// optimality reasoning about the returned route.
	Cost() float64
}

// Grid is a read-only 2D accessor indexed by [row, column], where row is Y
// and column is X.
type Grid interface {
	Rows() int
	Columns() int
	Cell(row, column int) Walkable
}

// Matrix adapts a rectangular [row][column] slice of cells to Grid.
// The column count is taken from the first row.
type Matrix[CellType Walkable] [][]CellType

func (m Matrix[CellType]) Rows() int { return len(m) }

func (m Matrix[CellType]) Columns() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m Matrix[CellType]) Cell(row, column int) Walkable { return m[row][column] }

// inBounds reports whether c addresses a cell of grid.
func inBounds(grid Grid, c Coords) bool {
	return c.Y >= 0 && c.Y < grid.Rows() && c.X >= 0 && c.X < grid.Columns()
}

package gridpath

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/pdrpinto/gridpath/internal"
)

// ErrGoalUnreachable is matched by every GoalUnreachableError.
var ErrGoalUnreachable = errors.New("goal unreachable")

// GoalUnreachableError reports that the open set ran dry without a node
// ever being created for Goal.
type GoalUnreachableError struct {
	Start    Coords
	Goal     Coords
	Explored int
}

func (e *GoalUnreachableError) Error() string {
	return fmt.Sprintf("goal %v unreachable from %v after exploring %d cells", e.Goal, e.Start, e.Explored)
}

func (e *GoalUnreachableError) Is(target error) bool { return target == ErrGoalUnreachable }

// Result contains the outcome of a search
type Result struct {
	Path          []Coords
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	Logger          *slog.Logger
	Trace           func(Step)
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used for per-search debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return searchOptions
}

// FindPath returns the route from start to goal, both inclusive.
// The error is a *GoalUnreachableError when no route exists.
func FindPath(start, goal Coords, grid Grid, options ...Option) ([]Coords, error) {
	result, err := Search(start, goal, grid, options...)
	if err != nil {
		return nil, err
	}
	return result.Path, nil
}

// Search explores every cell reachable from start before looking up goal.
//
// Neighbors out of bounds, not openable, or already holding a node are
// skipped, so a coordinate keeps the parent it was first discovered from
// even if a cheaper route to it turns up later. The start cell itself is
// never checked for walkability, and start and goal are expected to lie
// inside the grid.
func Search(start, goal Coords, grid Grid, options ...Option) (Result, error) {
	searchOptions := applyOptions(options)

	// --- Initialize state ---
	arena := newNodeArena(goal)
	current := arena.add(start, -1, 0)
	currentPos := 0

	// --- Expansion loop ---
	expandedNodes := 0
	for len(arena.open) > 0 {
		expandedNodes++

		var opened []Coords
		for _, direction := range Directions {
			next := arena.coordsOf(current).Add(direction)
			if !inBounds(grid, next) {
				continue
			}
			cell := grid.Cell(next.Y, next.X)
			if !cell.IsOpenable() || arena.seen(next) {
				continue
			}
			arena.add(next, current, cell.Cost())
			opened = append(opened, next)
		}

		if searchOptions.Trace != nil {
			searchOptions.Trace(Step{
				Index:     expandedNodes,
				Current:   arena.coordsOf(current),
				CostSoFar: arena.nodes[current].costSoFar,
				Opened:    opened,
				OpenCount: len(arena.open) - 1,
			})
		}

		arena.close(currentPos)

		if currentPos = arena.best(); currentPos >= 0 {
			current = arena.open[currentPos]
		}
	}

	goalIndex, ok := arena.lookup(goal)
	searchOptions.Logger.Debug("search finished",
		"start", start,
		"goal", goal,
		"expanded", expandedNodes,
		"found", ok,
	)
	if !ok {
		return Result{ExpandedNodes: expandedNodes}, &GoalUnreachableError{
			Start:    start,
			Goal:     goal,
			Explored: len(arena.nodes),
		}
	}

	return Result{
		Path:          internal.ReconstructPath(goalIndex, arena.parentOf, arena.coordsOf),
		TotalCost:     arena.nodes[goalIndex].costSoFar,
		ExpandedNodes: expandedNodes,
		Found:         true,
	}, nil
}

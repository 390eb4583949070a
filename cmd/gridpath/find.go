package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/gridmap"
)

func newFindCmd() *cobra.Command {
	findCmd := &cobra.Command{
		Use:   "find",
		Short: "Find a route between cells of a map",
		Long: `Searches a route from --from to every --to cell of the map.
With a single goal the route is printed and drawn over the map; with several
goals the searches run concurrently and one summary line is printed per goal.`,
		Example: `  gridpath find --map maze.yaml --from 0,0 --to 4,0
  gridpath find --map maze.yaml --from 0,0 --to 4,0 --to 2,3 --workers 2`,
		RunE: runFind,
	}
	findCmd.Flags().String("map", "", "Map file (.yaml, .yml or .json)")
	findCmd.Flags().String("from", "", "Start cell as x,y")
	findCmd.Flags().StringArray("to", nil, "Goal cell as x,y (repeatable)")
	findCmd.Flags().Bool("trace", false, "Print every expansion of a single search")
	findCmd.Flags().Int("workers", 0, "Concurrent searches for several goals (default: number of CPUs)")
	return findCmd
}

func runFind(cmd *cobra.Command, args []string) error {
	logger, err := loggerFor(cmd)
	if err != nil {
		return err
	}
	m, err := loadMap(cmd)
	if err != nil {
		return err
	}

	fromFlag, _ := cmd.Flags().GetString("from")
	start, err := gridmap.ParseCoords(fromFlag)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	toFlags, _ := cmd.Flags().GetStringArray("to")
	if len(toFlags) == 0 {
		return fmt.Errorf("at least one --to is required")
	}
	goals := make([]gridpath.Coords, 0, len(toFlags))
	for _, s := range toFlags {
		goal, err := gridmap.ParseCoords(s)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}
		goals = append(goals, goal)
	}

	// The search assumes both endpoints lie on the map.
	for _, c := range append([]gridpath.Coords{start}, goals...) {
		if !m.InBounds(c) {
			return fmt.Errorf("%v is outside the %dx%d map", c, m.Columns(), m.Rows())
		}
	}

	options := []gridpath.Option{gridpath.WithLogger(logger)}
	out := cmd.OutOrStdout()

	if len(goals) == 1 {
		if trace, _ := cmd.Flags().GetBool("trace"); trace {
			options = append(options, gridpath.WithTrace(func(step gridpath.Step) { printStep(out, step) }))
		}
		result, err := gridpath.Search(start, goals[0], m, options...)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "path: %s\n", formatPath(result.Path))
		fmt.Fprintf(out, "cost: %g\n", result.TotalCost)
		fmt.Fprintf(out, "expanded: %d\n", result.ExpandedNodes)
		fmt.Fprint(out, m.Render(result.Path))
		return nil
	}

	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		options = append(options, gridpath.WithWorkers(workers))
	}
	queries := make([]gridpath.Query, 0, len(goals))
	for _, goal := range goals {
		queries = append(queries, gridpath.Query{Start: start, Goal: goal})
	}
	routes, err := gridpath.FindPaths(cmd.Context(), m, queries, options...)
	if err != nil {
		return err
	}
	for _, route := range routes {
		if route.Err != nil {
			logger.Warn("route failed", "goal", route.Query.Goal, "error", route.Err)
			fmt.Fprintf(out, "%v: unreachable\n", route.Query.Goal)
			continue
		}
		fmt.Fprintf(out, "%v: cost %g, %d steps\n", route.Query.Goal, route.Result.TotalCost, len(route.Result.Path)-1)
	}
	return nil
}

func printStep(w io.Writer, step gridpath.Step) {
	fmt.Fprintf(w, "step %d: %v cost=%g opened=[%s] open=%d\n",
		step.Index, step.Current, step.CostSoFar, formatCoords(step.Opened, " "), step.OpenCount)
}

func formatPath(path []gridpath.Coords) string {
	return formatCoords(path, " -> ")
}

func formatCoords(cs []gridpath.Coords, sep string) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, sep)
}

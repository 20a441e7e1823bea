package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/lineq/pkg/line"
)

// parseLinePair parses the two "m,b" arguments of a comparison command.
func parseLinePair(args []string) (line.Line, line.Line, error) {
	a, err := parseLine(args[0])
	if err != nil {
		return line.Line{}, line.Line{}, err
	}
	b, err := parseLine(args[1])
	if err != nil {
		return line.Line{}, line.Line{}, err
	}
	return a, b, nil
}

// equalCommand creates the equal command.
func (c *CLI) equalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "equal M,B M,B",
		Short: "Check whether two lines are the same to 3 decimal places",
		Example: `  lineq equal 2,3 2.0001,3
  lineq equal -- -1,2 -1,2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseLinePair(args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.Equal(b) {
				printSuccess(w, "%s and %s are equal", a, b)
			} else {
				printWarning(w, "%s and %s are not equal", a, b)
			}
			printDetail(w, "parallel: %s", yesNo(a.IsParallel(b)))
			return nil
		},
	}
}

// parallelCommand creates the parallel command.
func (c *CLI) parallelCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "parallel M,B M,B",
		Short:   "Check whether two lines are parallel to 3 decimal places",
		Example: `  lineq parallel 2,3 2,5`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseLinePair(args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.IsParallel(b) {
				printSuccess(w, "%s and %s are parallel", a, b)
			} else {
				printWarning(w, "%s and %s are not parallel", a, b)
			}
			printDetail(w, "perpendicular: %s", yesNo(a.IsPerpendicular(b)))
			return nil
		},
	}
}

// throughCommand creates the through command.
func (c *CLI) throughCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "through X1 Y1 X2 Y2",
		Short: "Compute the slope and line through two points",
		Example: `  lineq through 0 1 2 5
  lineq through -- -1 0 1 -4`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseNumbers([]string{"x1", "y1", "x2", "y2"}, args)
			if err != nil {
				return err
			}

			l, err := line.Through(p[0], p[1], p[2], p[3])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printKeyNumber(w, "Slope", l.Slope)
			printKeyValue(w, "Line", l.String())
			return nil
		},
	}
}

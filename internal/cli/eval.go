package cli

import (
	"github.com/spf13/cobra"
)

// showCommand creates the show command, which prints a line's equation.
func (c *CLI) showCommand() *cobra.Command {
	var lf lineFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the equation of a line",
		Example: `  lineq show -m 2 -b -3
  lineq show --slope 0.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lf.line()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			printKeyValue(w, "Line", l.String())
			printKeyNumber(w, "Slope", l.Slope)
			printKeyNumber(w, "Intercept", l.Intercept)
			if l.IsHorizontal() {
				printKeyValue(w, "Root", "none (horizontal)")
			} else {
				x, _ := l.X(0)
				printKeyNumber(w, "Root", x)
			}
			return nil
		},
	}

	lf.register(cmd)
	return cmd
}

// yCommand creates the y command, which evaluates y at a given x.
func (c *CLI) yCommand() *cobra.Command {
	var lf lineFlags

	cmd := &cobra.Command{
		Use:     "y X",
		Short:   "Evaluate y at x",
		Example: `  lineq y -m 2 -b 3 4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lf.line()
			if err != nil {
				return err
			}
			x, err := parseNumber("x", args[0])
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("evaluate y", "line", l, "x", x)

			w := cmd.OutOrStdout()
			printKeyValue(w, "Line", l.String())
			printKeyNumber(w, "y", l.Y(x))
			return nil
		},
	}

	lf.register(cmd)
	return cmd
}

// xCommand creates the x command, which solves for x at a given y.
func (c *CLI) xCommand() *cobra.Command {
	var lf lineFlags

	cmd := &cobra.Command{
		Use:   "x Y",
		Short: "Solve for x at y",
		Long: `Solve for x at y.

Fails for horizontal lines (slope 0), even when y equals the intercept.`,
		Example: `  lineq x -m 2 -b 3 7`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lf.line()
			if err != nil {
				return err
			}
			y, err := parseNumber("y", args[0])
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("solve x", "line", l, "y", y)

			x, err := l.X(y)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printKeyValue(w, "Line", l.String())
			printKeyNumber(w, "x", x)
			return nil
		},
	}

	lf.register(cmd)
	return cmd
}

// perpCommand creates the perp command, which builds a perpendicular line.
func (c *CLI) perpCommand() *cobra.Command {
	var lf lineFlags

	cmd := &cobra.Command{
		Use:   "perp INTERCEPT",
		Short: "Print the perpendicular line with the given intercept",
		Example: `  lineq perp -m 2 5
  lineq perp -m 2 -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lf.line()
			if err != nil {
				return err
			}
			b, err := parseNumber("intercept", args[0])
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("perpendicular", "line", l, "intercept", b)

			p, err := l.Perpendicular(b)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printKeyValue(w, "Line", l.String())
			printKeyValue(w, "Perpendicular", p.String())
			return nil
		},
	}

	lf.register(cmd)
	return cmd
}

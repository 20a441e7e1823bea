package cli

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lineq/pkg/errors"
	"github.com/matzehuels/lineq/pkg/line"
)

// point is one evaluated sample.
type point struct {
	X, Y float64
}

// samplePoints evaluates l at from, from+step, ... up to and including to.
// x is computed as from + i*step so error does not accumulate, and is
// clamped to to when representation error carries the last sample past it.
func samplePoints(l line.Line, from, to, step float64) ([]point, error) {
	if err := errors.ValidateRange(from, to, step); err != nil {
		return nil, err
	}

	// Tolerate representation error at the upper bound (e.g. 0.1 steps).
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	pts := make([]point, n)
	for i := range pts {
		x := from + float64(i)*step
		if x > to {
			x = to
		}
		pts[i] = point{X: x, Y: l.Y(x)}
	}
	return pts, nil
}

// renderSamples draws the samples as a two-column table.
func renderSamples(pts []point) string {
	rows := make([][]string, len(pts))
	for i, p := range pts {
		rows[i] = []string{formatFloat(p.X), formatFloat(p.Y)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("x", "y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return headerStyle
			}
			if col == 1 {
				return cellStyle.Foreground(colorCyan)
			}
			return cellStyle
		})

	return t.Render()
}

// sampleCommand creates the sample command.
func (c *CLI) sampleCommand() *cobra.Command {
	var (
		lf             lineFlags
		from, to, step float64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Tabulate y over a range of x",
		Long: `Tabulate y over a range of x.

The range defaults to the [sample] section of the config file
(from -5 to 5, step 1, when unset).`,
		Example: `  lineq sample -m 2 -b -3
  lineq sample -m 0.5 --from 0 --to 1 --step 0.25`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lf.line()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("from") {
				from = c.Config.Sample.From
			}
			if !flags.Changed("to") {
				to = c.Config.Sample.To
			}
			if !flags.Changed("step") {
				step = c.Config.Sample.Step
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("sample", "line", l, "from", from, "to", to, "step", step)

			pts, err := samplePoints(l, from, to, step)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render(l.String()))
			fmt.Fprintln(w, renderSamples(pts))
			printInfo(w, "%d samples", len(pts))
			return nil
		},
	}

	lf.register(cmd)
	cmd.Flags().Float64Var(&from, "from", 0, "first x (default from config)")
	cmd.Flags().Float64Var(&to, "to", 0, "last x (default from config)")
	cmd.Flags().Float64Var(&step, "step", 0, "x increment (default from config)")

	return cmd
}

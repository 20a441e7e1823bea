package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lineq/pkg/errors"
	"github.com/matzehuels/lineq/pkg/line"
)

// lineFlags binds --slope/-m and --intercept/-b to a command.
type lineFlags struct {
	slope     float64
	intercept float64
}

func (f *lineFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.slope, "slope", "m", 0, "slope of the line")
	cmd.Flags().Float64VarP(&f.intercept, "intercept", "b", 0, "y-intercept of the line")
}

// line validates the flag values and builds the Line.
func (f *lineFlags) line() (line.Line, error) {
	if err := errors.ValidateFinite("slope", f.slope); err != nil {
		return line.Zero(), err
	}
	if err := errors.ValidateFinite("intercept", f.intercept); err != nil {
		return line.Zero(), err
	}
	return line.New(f.slope, f.intercept), nil
}

// parseNumber parses a finite float. name identifies the argument in errors.
func parseNumber(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s %q: not a number", name, s)
	}
	if err := errors.ValidateFinite(name, v); err != nil {
		return 0, err
	}
	return v, nil
}

// parseNumbers parses args positionally, naming each after names[i].
func parseNumbers(names []string, args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := parseNumber(names[i], a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseLine parses an "m,b" pair like "2,-3" into a Line.
func parseLine(s string) (line.Line, error) {
	m, b, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(b, ",") {
		return line.Line{}, errors.New(errors.ErrCodeInvalidInput, "invalid line %q: want slope,intercept", s)
	}
	slope, err := parseNumber("slope", m)
	if err != nil {
		return line.Line{}, err
	}
	intercept, err := parseNumber("intercept", b)
	if err != nil {
		return line.Line{}, err
	}
	return line.New(slope, intercept), nil
}

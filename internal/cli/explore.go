package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lineq/pkg/errors"
	"github.com/matzehuels/lineq/pkg/line"
)

// maxHistory is the number of evaluations kept on screen.
const maxHistory = 8

// numberRunes are the characters accepted at the prompt.
const numberRunes = "0123456789.-+eE"

// SolveMode selects which coordinate the explorer computes.
type SolveMode int

const (
	SolveY SolveMode = iota // input x, output y
	SolveX                  // input y, output x
)

// Evaluation is one completed explorer query.
type Evaluation struct {
	X, Y float64
}

// =============================================================================
// ExploreModel - Interactive line evaluator
// =============================================================================

// ExploreModel is the bubbletea model for the explore command.
type ExploreModel struct {
	Line    line.Line
	Mode    SolveMode
	Input   string
	History []Evaluation
	Err     string
}

// NewExploreModel creates an explorer for l, starting in SolveY mode.
func NewExploreModel(l line.Line) ExploreModel {
	return ExploreModel{Line: l}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		m.Mode = 1 - m.Mode
		m.Err = ""
	case tea.KeyBackspace:
		if m.Input != "" {
			m.Input = m.Input[:len(m.Input)-1]
		}
	case tea.KeyEnter:
		m = m.evaluate()
	case tea.KeyRunes:
		for _, r := range key.Runes {
			if r == 'q' && m.Input == "" {
				return m, tea.Quit
			}
			if strings.ContainsRune(numberRunes, r) {
				m.Input += string(r)
			}
		}
	}
	return m, nil
}

// evaluate solves the current input and appends the result to History.
func (m ExploreModel) evaluate() ExploreModel {
	if m.Input == "" {
		return m
	}

	name := "x"
	if m.Mode == SolveX {
		name = "y"
	}
	v, err := parseNumber(name, m.Input)
	if err != nil {
		m.Err = errors.UserMessage(err)
		return m
	}

	e := Evaluation{X: v, Y: m.Line.Y(v)}
	if m.Mode == SolveX {
		x, err := m.Line.X(v)
		if err != nil {
			m.Err = errors.UserMessage(err)
			return m
		}
		e = Evaluation{X: x, Y: v}
	}

	m.History = append(m.History, e)
	if len(m.History) > maxHistory {
		m.History = m.History[len(m.History)-maxHistory:]
	}
	m.Input = ""
	m.Err = ""
	return m
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Line.String()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("type a number  tab: switch x/y  enter: evaluate  q: quit"))
	b.WriteString("\n\n")

	prompt := "x = "
	if m.Mode == SolveX {
		prompt = "y = "
	}
	b.WriteString(StyleValue.Render(prompt + m.Input + "▌"))
	b.WriteString("\n")

	if m.Err != "" {
		b.WriteString(StyleError.Render(iconError + " " + m.Err))
		b.WriteString("\n")
	}

	if len(m.History) > 0 {
		rows := make([][]string, len(m.History))
		for i, e := range m.History {
			rows[i] = []string{formatFloat(e.X), formatFloat(e.Y)}
		}
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
			Headers("x", "y").
			Rows(rows...)
		b.WriteString("\n")
		b.WriteString(t.Render())
		b.WriteString("\n")
	}

	return b.String()
}

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var lf lineFlags

	cmd := &cobra.Command{
		Use:     "explore",
		Short:   "Evaluate a line interactively",
		Example: `  lineq explore -m 2 -b -3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lf.line()
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewExploreModel(l),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("explore: %w", err)
			}

			if m, ok := final.(ExploreModel); ok {
				loggerFromContext(cmd.Context()).Debug("explore finished", "evaluations", len(m.History))
			}
			return nil
		},
	}

	lf.register(cmd)
	return cmd
}

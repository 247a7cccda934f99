package picker

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle   = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// Terminal is an inline terminal list. It renders to stderr so stdout
// stays free for command output.
type Terminal struct {
	Input  io.Reader
	Output io.Writer
}

// NewTerminal returns a Terminal picker on stdin/stderr.
func NewTerminal() *Terminal {
	return &Terminal{Input: os.Stdin, Output: os.Stderr}
}

// Pick runs the list until the user chooses a row or cancels.
func (t *Terminal) Pick(ctx context.Context, columns []string, rows [][]string) (int, bool, error) {
	if len(rows) == 0 {
		return 0, false, nil
	}
	p := tea.NewProgram(newListModel(columns, rows),
		tea.WithContext(ctx),
		tea.WithInput(t.Input),
		tea.WithOutput(t.Output),
	)
	final, err := p.Run()
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	m := final.(listModel)
	if m.chosen < 0 {
		return 0, false, nil
	}
	return m.chosen, true, nil
}

// listModel is the bubbletea model behind Terminal.
type listModel struct {
	columns []string
	rows    [][]string
	widths  []int
	cursor  int
	chosen  int
}

func newListModel(columns []string, rows [][]string) listModel {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	return listModel{columns: columns, rows: rows, widths: widths, chosen: -1}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k", "shift+tab":
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(m.rows) - 1
		}
	case "down", "j", "tab":
		m.cursor++
		if m.cursor >= len(m.rows) {
			m.cursor = 0
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.rows) - 1
	case "enter":
		m.chosen = m.cursor
		return m, tea.Quit
	case "esc", "q", "ctrl+c":
		m.chosen = -1
		return m, tea.Quit
	default:
		if s := key.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			if i := int(s[0] - '0'); i < len(m.rows) {
				m.cursor = i
			}
		}
	}
	return m, nil
}

func (m listModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(Title+": "+Prompt) + "\n\n")
	b.WriteString("  " + headerStyle.Render(m.line(m.columns)) + "\n")
	for i, row := range m.rows {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+m.line(row)) + "\n")
			continue
		}
		b.WriteString("  " + m.line(row) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ move • enter choose • esc cancel") + "\n")
	return b.String()
}

func (m listModel) line(cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if i < len(m.widths) {
			cell += strings.Repeat(" ", m.widths[i]-lipgloss.Width(cell))
		}
		parts[i] = cell
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

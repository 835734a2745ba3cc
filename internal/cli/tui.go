package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mpavel/cliquer/pkg/bench"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Report Table
// =============================================================================

// renderReportTable renders a suite report as a bordered table with one row
// per dataset/algorithm pair.
func renderReportTable(report *bench.Report) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, entry := range report.Entries {
		for _, res := range entry.Results {
			verdict := iconError
			if res.Found {
				verdict = iconSuccess
			}
			rows = append(rows, []string{
				entry.Dataset,
				fmt.Sprintf("%d/%d", entry.Nodes, entry.Edges),
				fmt.Sprintf("%d", entry.Target),
				res.Algorithm,
				verdict,
				fmt.Sprintf("%d", res.Size()),
				fmt.Sprintf("%d", res.Explored),
				res.Elapsed.String(),
			})
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Dataset", "N/E", "k", "Algorithm", "", "Size", "Explored", "Elapsed").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 4 {
				if row < len(rows) && rows[row][4] == iconSuccess {
					return StyleSuccess
				}
				return lipgloss.NewStyle().Foreground(colorRed)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// =============================================================================
// ReportModel - Interactive result browsing
// =============================================================================

// ReportModel is the bubbletea model for browsing a benchmark report.
// The list shows one line per dataset; the pane below shows every solver's
// result for the dataset under the cursor.
type ReportModel struct {
	Report *bench.Report
	Cursor int
	Height int
	Offset int
}

// NewReportModel creates a report browser model.
func NewReportModel(report *bench.Report) ReportModel {
	return ReportModel{
		Report: report,
		Height: 15,
	}
}

func (m ReportModel) Init() tea.Cmd {
	return nil
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Report.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 12
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ReportModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Benchmark: %s", m.Report.Suite)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Report.Entries) {
		end = len(m.Report.Entries)
	}

	for i := m.Offset; i < end; i++ {
		entry := m.Report.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		best := entry.Best()
		verdict := StyleWarning.Render(iconError)
		if best.Found {
			verdict = StyleSuccess.Render(iconSuccess)
		}

		line := fmt.Sprintf("%s%s %-20s k=%-3d best=%d", cursor, verdict, entry.Dataset, entry.Target, best.Size())
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if len(m.Report.Entries) > 0 {
		entry := m.Report.Entries[m.Cursor]
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%s · %d nodes · %d edges · %s",
			entry.Dataset, entry.Nodes, entry.Edges, shortHash(entry.GraphHash))))
		b.WriteString("\n\n")

		for _, res := range entry.Results {
			status := StyleWarning.Render("miss ")
			if res.Found {
				status = StyleSuccess.Render("found")
			}
			b.WriteString(fmt.Sprintf("  %s %-16s size=%-3d explored=%-8d %s\n",
				status, res.Algorithm, res.Size(), res.Explored, listDimStyle.Render(res.Elapsed.String())))
			if res.Found {
				b.WriteString(listDimStyle.Render("        " + formatClique(res.Clique)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Report.Entries))))

	return b.String()
}

// shortHash abbreviates a content hash for display.
func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/marketlint/marketlint/internal/finding"
	"github.com/marketlint/marketlint/internal/i18n"
	"github.com/marketlint/marketlint/internal/report"
)

// tierFilter selects which priority tier is shown in the list.
type tierFilter int

const (
	tierAll tierFilter = iota
	tierP0
	tierP1
	tierP2
)

func (t tierFilter) label() string {
	switch t {
	case tierP0:
		return "P0"
	case tierP1:
		return "P1"
	case tierP2:
		return "P2"
	default:
		return "all"
	}
}

func (t tierFilter) next() tierFilter {
	return (t + 1) % 4
}

// Model is the bubbletea model for the finding browser
type Model struct {
	report        *report.ValidationReport
	items         []finding.Finding
	filteredItems []finding.Finding
	cursor        int
	width         int
	height        int
	searchInput   textinput.Model
	tier          tierFilter
	quitting      bool
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	criticalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	importantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	recommendedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// NewModel creates a new browser model for a validation report
func NewModel(rep *report.ValidationReport) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 50
	ti.Width = 30

	// The bucketed copies carry Priority and Effort; the raw findings do
	// not.
	items := rep.Priorities.All()

	return Model{
		report:        rep,
		items:         items,
		filteredItems: items,
		searchInput:   ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "enter", "q":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		// If search has text, clear it; otherwise quit
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.applyFilter()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down":
		if m.cursor < len(m.filteredItems)-1 {
			m.cursor++
		}

	case "tab":
		m.tier = m.tier.next()
		m.applyFilter()

	case "backspace":
		val := m.searchInput.Value()
		if len(val) > 0 {
			m.searchInput.SetValue(val[:len(val)-1])
			m.applyFilter()
		}

	default:
		// Any other printable character goes to search
		if len(msg.String()) == 1 && msg.String()[0] >= 32 && msg.String()[0] < 127 {
			m.searchInput.SetValue(m.searchInput.Value() + msg.String())
			m.applyFilter()
		}
	}

	return m, nil
}

func (m *Model) applyFilter() {
	base := m.items
	if m.tier != tierAll {
		var want finding.Priority
		switch m.tier {
		case tierP0:
			want = finding.PriorityP0
		case tierP1:
			want = finding.PriorityP1
		case tierP2:
			want = finding.PriorityP2
		}
		base = nil
		for _, f := range m.items {
			if f.Priority == want {
				base = append(base, f)
			}
		}
	}

	query := m.searchInput.Value()
	if query == "" {
		m.filteredItems = base
		if m.cursor >= len(m.filteredItems) {
			m.cursor = max(0, len(m.filteredItems)-1)
		}
		return
	}

	searchables := make([]string, len(base))
	for i, f := range base {
		parts := []string{f.Message, string(f.Category), string(f.Severity), f.Location}
		searchables[i] = strings.ToLower(strings.Join(parts, " "))
	}

	matches := fuzzy.Find(strings.ToLower(query), searchables)
	m.filteredItems = make([]finding.Finding, len(matches))
	for i, match := range matches {
		m.filteredItems[i] = base[match.Index]
	}

	if m.cursor >= len(m.filteredItems) {
		m.cursor = max(0, len(m.filteredItems)-1)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return m.renderListView()
}

func (m Model) renderListView() string {
	var b strings.Builder

	header := titleStyle.Render(i18n.T("BrowserHeader", map[string]any{
		"Count": len(m.items),
		"Score": m.report.Score.Value,
	}))
	b.WriteString(header)
	b.WriteString("\n\n")

	listWidth := 50
	previewWidth := max(30, m.width-listWidth-6)
	listHeight := max(5, m.height-8)

	var listLines []string
	for i, f := range m.filteredItems {
		listLines = append(listLines, m.renderItem(i, f))
	}

	// Paginate if needed
	start := 0
	if m.cursor >= listHeight {
		start = m.cursor - listHeight + 1
	}
	end := min(start+listHeight, len(listLines))

	visibleList := strings.Join(listLines[start:end], "\n")

	preview := m.renderPreview()

	listBox := lipgloss.NewStyle().Width(listWidth).Render(visibleList)
	previewBox := previewStyle.Width(previewWidth).Height(listHeight).Render(preview)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listBox, "  ", previewBox)
	b.WriteString(content)
	b.WriteString("\n\n")

	searchQuery := m.searchInput.Value()
	if searchQuery != "" {
		b.WriteString("> " + searchQuery + "_")
	} else {
		b.WriteString(helpStyle.Render("> type to filter..."))
	}
	b.WriteString("\n")

	help := helpStyle.Render(fmt.Sprintf("↑/↓: move | Tab: tier (%s) | Esc: clear/quit", m.tier.label()))
	b.WriteString(help)

	return b.String()
}

func severityStyle(s finding.Severity) lipgloss.Style {
	switch s {
	case finding.SeverityCritical, finding.SeverityHigh:
		return criticalStyle
	case finding.SeverityImportant, finding.SeverityMedium:
		return importantStyle
	case finding.SeverityRecommended, finding.SeverityLow:
		return recommendedStyle
	default:
		return normalStyle
	}
}

func (m Model) renderItem(idx int, f finding.Finding) string {
	cursor := "  "
	if idx == m.cursor {
		cursor = "> "
	}

	tier := string(f.Priority)
	if tier == "" {
		tier = "--"
	}

	text := fmt.Sprintf("%s[%s] %-11s %s", cursor, tier, f.Severity, f.Message)
	if len(text) > 48 {
		text = text[:45] + "..."
	}

	if idx == m.cursor {
		return selectedStyle.Render(text)
	}
	return severityStyle(f.Severity).Render(text)
}

func (m Model) renderPreview() string {
	if len(m.filteredItems) == 0 || m.cursor >= len(m.filteredItems) {
		return i18n.T("BrowserPreviewEmpty", nil)
	}

	f := m.filteredItems[m.cursor]

	var b strings.Builder

	b.WriteString(severityStyle(f.Severity).Render(fmt.Sprintf("Severity: %s", f.Severity)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Category: %s\n", f.Category))
	if f.Priority != "" {
		b.WriteString(fmt.Sprintf("Priority: %s", f.Priority))
		if f.Effort != "" {
			b.WriteString(fmt.Sprintf("  Effort: %s", f.Effort))
		}
		b.WriteString("\n")
	}
	if f.ScoreImpact != 0 {
		b.WriteString(fmt.Sprintf("Score impact: %d\n", f.ScoreImpact))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s\n", f.Message))

	if f.Location != "" {
		b.WriteString(fmt.Sprintf("\nLocation:\n  %s\n", f.Location))
	}

	if f.SuggestedFix != "" {
		b.WriteString(fmt.Sprintf("\nSuggested fix:\n  %s\n", f.SuggestedFix))
	}

	return b.String()
}

// RunBrowser launches the interactive finding browser for a report
func RunBrowser(rep *report.ValidationReport) error {
	if len(rep.Findings) == 0 {
		return fmt.Errorf("%s", i18n.T("BrowserNoFindings", nil))
	}

	model := NewModel(rep)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}

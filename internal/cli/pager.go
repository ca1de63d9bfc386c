package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// showPager displays a build file in a scrollable full-screen view.
func showPager(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	m := newPagerModel(name, string(data))
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// pagerModel is the bubbletea model for read-only file viewing.
type pagerModel struct {
	title  string
	lines  []string
	offset int
	height int
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{
		title:  title,
		lines:  strings.Split(strings.TrimRight(content, "\n"), "\n"),
		height: 20,
	}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		case "pgup", "b":
			m.offset = max(0, m.offset-m.height)
		case "pgdown", "f", " ":
			m.offset = min(m.maxOffset(), m.offset+m.height)
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = m.maxOffset()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 3
		if m.height < 5 {
			m.height = 5
		}
		if m.offset > m.maxOffset() {
			m.offset = m.maxOffset()
		}
	}
	return m, nil
}

func (m pagerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("PKGBUILD: " + m.title))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d%%", m.percent())))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ scroll  space page  q close"))
	b.WriteString("\n")

	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m pagerModel) maxOffset() int {
	return max(0, len(m.lines)-m.height)
}

func (m pagerModel) percent() int {
	if m.maxOffset() == 0 {
		return 100
	}
	return m.offset * 100 / m.maxOffset()
}

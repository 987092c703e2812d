package presenter

import "github.com/charmbracelet/lipgloss"

// Styles bundles the lipgloss styles used by the presenter.
type Styles struct {
	Header    lipgloss.Style
	TableHead lipgloss.Style
	Title     lipgloss.Style
	Label     lipgloss.Style
	Link      lipgloss.Style
	Note      lipgloss.Style
	Notice    lipgloss.Style
}

// DefaultStyles returns the colored style set for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		TableHead: lipgloss.NewStyle().Bold(true),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Link:      lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Underline(true),
		Note:      lipgloss.NewStyle().Faint(true),
		Notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// PlainStyles returns a style set that leaves text unmodified, for
// non-terminal output and tests.
func PlainStyles() Styles {
	return Styles{}
}

package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/roadmapper/internal/ui/theme"
)

// Picker cycles through a fixed option list with left/right keys.
type Picker struct {
	Label    string
	Options  []string
	Selected int
	focused  bool
}

// NewPicker creates a picker over the given options.
func NewPicker(label string, options []string) Picker {
	return Picker{Label: label, Options: options}
}

// Init returns nil.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update handles left/right cycling while focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if p.Selected > 0 {
			p.Selected--
		}
	case "right", "l":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}

	return p, nil
}

// View renders the picker as "label  ◂ option ▸".
func (p Picker) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	arrowStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if p.focused {
		valueStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		arrowStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	}

	value := ""
	if p.Selected >= 0 && p.Selected < len(p.Options) {
		value = p.Options[p.Selected]
	}

	return fmt.Sprintf("%s  %s %s %s",
		labelStyle.Render(p.Label),
		arrowStyle.Render("◂"),
		valueStyle.Render(value),
		arrowStyle.Render("▸"),
	)
}

// Value returns the selected option text.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// Focus marks the picker as the active form field.
func (p *Picker) Focus() { p.focused = true }

// Blur removes focus.
func (p *Picker) Blur() { p.focused = false }

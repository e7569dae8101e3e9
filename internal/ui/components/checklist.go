package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/roadmapper/internal/ui/theme"
)

// Checklist is a vertical list of toggleable items.
type Checklist struct {
	Items   []string
	Checked map[int]bool
	Cursor  int
	focused bool
}

// NewChecklist creates a checklist with the given items, none checked.
func NewChecklist(items []string) Checklist {
	return Checklist{
		Items:   items,
		Checked: make(map[int]bool),
	}
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// ToggledMsg is emitted when an item's checked state flips.
type ToggledMsg struct {
	Index   int
	Item    string
	Checked bool
}

// Update handles cursor movement and toggling while focused.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	if !c.focused || len(c.Items) == 0 {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case " ", "enter":
		i := c.Cursor
		c.Checked[i] = !c.Checked[i]
		item := c.Items[i]
		checked := c.Checked[i]
		return c, func() tea.Msg {
			return ToggledMsg{Index: i, Item: item, Checked: checked}
		}
	}

	return c, nil
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		box := "[ ]"
		if c.Checked[i] {
			box = "[x]"
		}
		prefix := "  "
		if c.focused && i == c.Cursor {
			prefix = "▸ "
		}

		line := prefix + box + " " + item

		switch {
		case c.focused && i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case c.Checked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Success).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// CheckedItems returns the checked item texts in list order.
func (c Checklist) CheckedItems() []string {
	var out []string
	for i, item := range c.Items {
		if c.Checked[i] {
			out = append(out, item)
		}
	}
	return out
}

// SetChecked sets an item's state by value, ignoring unknown items.
func (c *Checklist) SetChecked(item string, checked bool) {
	for i, it := range c.Items {
		if it == item {
			c.Checked[i] = checked
			return
		}
	}
}

// Focus marks the checklist as the active field.
func (c *Checklist) Focus() { c.focused = true }

// Blur removes focus.
func (c *Checklist) Blur() { c.focused = false }

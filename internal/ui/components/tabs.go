package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/arjun/roadmapper/internal/ui/theme"
)

// TabBar is a horizontal tab strip navigated with tab/shift+tab or
// bracket keys.
type TabBar struct {
	Labels []string
	Active int
}

// NewTabBar creates a tab bar over the given labels.
func NewTabBar(labels []string) TabBar {
	return TabBar{Labels: labels}
}

// Init returns nil.
func (t TabBar) Init() tea.Cmd {
	return nil
}

// Update handles tab switching keys.
func (t TabBar) Update(msg tea.Msg) (TabBar, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "tab", "]":
		t.Active = (t.Active + 1) % len(t.Labels)
	case "shift+tab", "[":
		t.Active = (t.Active - 1 + len(t.Labels)) % len(t.Labels)
	}

	return t, nil
}

// View renders the tab strip.
func (t TabBar) View() string {
	parts := make([]string, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts[i] = theme.TabActive.Render(label)
		} else {
			parts[i] = theme.TabInactive.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/roadmapper/internal/roadmap"
	"github.com/arjun/roadmapper/internal/router"
	"github.com/arjun/roadmapper/internal/screen"
	"github.com/arjun/roadmapper/internal/screens/form"
	"github.com/arjun/roadmapper/internal/session"
	"github.com/arjun/roadmapper/internal/ui/layout"
	"github.com/arjun/roadmapper/internal/xp"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	State     *session.State
	Generator *roadmap.Service
	XP        *xp.Service
	Timeout   time.Duration
}

// streakLoadedMsg delivers the journal-derived daily streak.
type streakLoadedMsg struct {
	Streak int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	streak int
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the profile form.
func newAppModel(opts Options) AppModel {
	formScreen := form.New(opts.State, opts.Generator, opts.Timeout)
	return AppModel{
		opts:   opts,
		router: router.New(formScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.loadStreak()
}

func (m AppModel) loadStreak() tea.Cmd {
	return func() tea.Msg {
		streak, err := m.opts.XP.Streak(context.Background())
		if err != nil {
			return streakLoadedMsg{}
		}
		return streakLoadedMsg{Streak: streak}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case streakLoadedMsg:
		m.streak = msg.Streak
		return m, nil

	case router.PushScreenMsg:
		// A push follows a generation; the streak may have just started.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadStreak())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.opts.State.XP, m.streak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

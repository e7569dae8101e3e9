// Package dashboard implements the tabbed roadmap explorer screen.
package dashboard

import (
	"context"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/arjun/roadmapper/internal/export"
	"github.com/arjun/roadmapper/internal/quiz"
	"github.com/arjun/roadmapper/internal/screen"
	"github.com/arjun/roadmapper/internal/session"
	"github.com/arjun/roadmapper/internal/timeline"
	"github.com/arjun/roadmapper/internal/ui/components"
	"github.com/arjun/roadmapper/internal/ui/layout"
)

// Tab indices.
const (
	tabRoadmap = iota
	tabTimeline
	tabProgress
	tabQuiz
	tabRadar
	tabPlanner
	tabExport
)

var tabLabels = []string{"Roadmap", "Timeline", "Progress", "Quiz", "Radar", "Planner", "Export"}

// DashboardScreen presents the generated roadmap across tabs.
type DashboardScreen struct {
	state *session.State
	tabs  components.TabBar
	spans []timeline.Span

	topics components.Checklist

	mc       components.MultiChoice
	feedback *quiz.SubmitResult

	habits components.Checklist

	scroll    int
	exportMsg string
	exportErr string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard over an already-populated session.
func New(state *session.State) *DashboardScreen {
	d := &DashboardScreen{
		state:  state,
		tabs:   components.NewTabBar(tabLabels),
		habits: components.NewChecklist([]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}),
	}
	d.habits.Focus()

	if rm := state.Roadmap; rm != nil {
		d.spans = timeline.Build(rm.Phases, time.Now())

		var topics []string
		for _, p := range rm.Phases {
			topics = append(topics, p.Topics...)
		}
		d.topics = components.NewChecklist(topics)
		d.topics.Focus()

		d.loadQuestion()
	}

	return d
}

// loadQuestion syncs the multiple-choice component with the quiz machine.
func (d *DashboardScreen) loadQuestion() {
	d.feedback = nil
	if q := d.state.Quiz.Current(); q != nil {
		d.mc = components.NewMultiChoice(q.Question, q.Options)
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	area := d.state.Profile.AreaOfInterest
	if area == "" {
		return "Roadmap"
	}
	return area
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch tab"},
	}

	switch d.tabs.Active {
	case tabProgress:
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle topic"})
	case tabQuiz:
		switch {
		case d.feedback != nil:
			hints = append(hints, layout.KeyHint{Key: "any key", Description: "Continue"})
		case d.state.Quiz.State() == quiz.Done:
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry quiz"})
		case d.state.Quiz.State() == quiz.InProgress:
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit answer"})
		}
	case tabExport:
		hints = append(hints,
			layout.KeyHint{Key: "M", Description: "Save Markdown"},
			layout.KeyHint{Key: "J", Description: "Save JSON"},
		)
	default:
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Scroll"})
	}

	return append(hints,
		layout.KeyHint{Key: "Esc", Description: "New profile"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ToggledMsg:
		// Topic checklist toggles flow through the session for XP.
		d.state.SetTopicCompleted(context.Background(), msg.Item, msg.Checked)
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	return d, nil
}

func (d *DashboardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "[", "]":
		d.tabs, _ = d.tabs.Update(msg)
		d.scroll = 0
		d.exportMsg = ""
		d.exportErr = ""
		return d, nil
	}

	switch d.tabs.Active {
	case tabProgress:
		if d.state.Roadmap != nil {
			var cmd tea.Cmd
			d.topics, cmd = d.topics.Update(msg)
			return d, cmd
		}

	case tabQuiz:
		return d.handleQuizKey(msg)

	case tabPlanner:
		// Habit ticks are session-local and cosmetic; the toggle message
		// is swallowed rather than routed anywhere.
		d.habits, _ = d.habits.Update(msg)
		return d, nil

	case tabExport:
		return d.handleExportKey(msg)

	default:
		return d, d.handleScroll(msg)
	}

	return d, nil
}

func (d *DashboardScreen) handleScroll(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if d.scroll > 0 {
			d.scroll--
		}
	case "down", "j":
		d.scroll++
	case "pgup":
		d.scroll -= 10
		if d.scroll < 0 {
			d.scroll = 0
		}
	case "pgdown":
		d.scroll += 10
	}
	return nil
}

func (d *DashboardScreen) handleQuizKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	machine := d.state.Quiz

	// Feedback is showing: any key moves on.
	if d.feedback != nil {
		d.loadQuestion()
		return d, nil
	}

	switch machine.State() {
	case quiz.NotStarted:
		return d, nil

	case quiz.Done:
		if msg.String() == "r" {
			d.state.RetryQuiz()
			d.loadQuestion()
		}
		return d, nil
	}

	d.mc, _ = d.mc.Update(msg)

	if d.mc.Submitted {
		res, err := d.state.SubmitQuizAnswer(context.Background(), d.mc.Choice())
		if err == nil {
			d.feedback = &res
			d.mc.Reveal(res.Answer)
		}
	}

	return d, nil
}

func (d *DashboardScreen) handleExportKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if d.state.Roadmap == nil {
		return d, nil
	}

	area := d.state.Profile.AreaOfInterest

	switch msg.String() {
	case "m":
		name := export.Filename(area, "md")
		md := export.Markdown(area, d.state.Roadmap)
		if err := os.WriteFile(name, []byte(md), 0o644); err != nil {
			d.exportErr = err.Error()
		} else {
			d.exportMsg = "Saved " + name
			d.exportErr = ""
		}
	case "j":
		name := export.Filename(area, "json")
		data, err := export.JSON(d.state.Roadmap)
		if err == nil {
			err = os.WriteFile(name, data, 0o644)
		}
		if err != nil {
			d.exportErr = err.Error()
		} else {
			d.exportMsg = "Saved " + name
			d.exportErr = ""
		}
	}

	return d, nil
}

// scrollWindow clips content to the visible height at the current offset.
func (d *DashboardScreen) scrollWindow(content string, height int) string {
	lines := strings.Split(content, "\n")

	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if d.scroll > maxScroll {
		d.scroll = maxScroll
	}

	end := d.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[d.scroll:end], "\n")
}

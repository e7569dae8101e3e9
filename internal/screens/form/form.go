// Package form implements the profile entry screen.
package form

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/roadmapper/internal/profile"
	"github.com/arjun/roadmapper/internal/roadmap"
	"github.com/arjun/roadmapper/internal/router"
	"github.com/arjun/roadmapper/internal/screen"
	"github.com/arjun/roadmapper/internal/screens/dashboard"
	"github.com/arjun/roadmapper/internal/session"
	"github.com/arjun/roadmapper/internal/ui/components"
	"github.com/arjun/roadmapper/internal/ui/layout"
	"github.com/arjun/roadmapper/internal/ui/theme"
)

// Form field indices, in tab order.
const (
	fieldArea = iota
	fieldQualification
	fieldHours
	fieldDuration
	fieldExperience
	fieldStyles
	fieldGoal
	fieldCount
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// FormScreen collects the learner profile and kicks off generation.
type FormScreen struct {
	state     *session.State
	generator *roadmap.Service
	timeout   time.Duration

	area          components.TextInput
	qualification components.Picker
	hours         components.Picker
	duration      components.Picker
	experience    components.Picker
	styles        components.Checklist
	goal          components.TextInput

	focus      int
	generating bool
	spinFrame  int
	errMsg     string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates the profile form with default selections.
func New(state *session.State, generator *roadmap.Service, timeout time.Duration) *FormScreen {
	def := profile.Default()

	hourOptions := make([]string, 0, 16)
	for h := profile.MinDailyHours; h <= profile.MaxDailyHours; h += profile.DailyHoursStep {
		hourOptions = append(hourOptions, strconv.FormatFloat(h, 'g', -1, 64))
	}

	styleItems := make([]string, len(profile.LearningStyles))
	for i, s := range profile.LearningStyles {
		styleItems[i] = string(s)
	}

	f := &FormScreen{
		state:         state,
		generator:     generator,
		timeout:       timeout,
		area:          components.NewTextInput("e.g., Web Development, Data Science", 60),
		qualification: components.NewPicker("Qualification   ", enumOptions(profile.Qualifications)),
		hours:         components.NewPicker("Hours per day   ", hourOptions),
		duration:      components.NewPicker("Duration        ", enumOptions(profile.Durations)),
		experience:    components.NewPicker("Experience      ", enumOptions(profile.Experiences)),
		styles:        components.NewChecklist(styleItems),
		goal:          components.NewTextInput("e.g., Get a job, Build a project (optional)", 80),
	}

	// Preselect the form defaults.
	f.hours.Selected = indexOf(hourOptions, strconv.FormatFloat(def.DailyHours, 'g', -1, 64))
	for _, s := range def.LearningStyles {
		f.styles.SetChecked(string(s), true)
	}

	f.setFocus(fieldArea)
	return f
}

func enumOptions[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}

func (f *FormScreen) Init() tea.Cmd {
	return f.area.Init()
}

func (f *FormScreen) Title() string {
	return "Your Profile"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	if f.generating {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+G", Description: "Generate"},
	}
	if f.focus == fieldStyles {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		return f.handleResult(msg)

	case spinnerTickMsg:
		if !f.generating {
			return f, nil
		}
		f.spinFrame = (f.spinFrame + 1) % len(spinnerFrames)
		return f, spinnerTick()

	case tea.KeyMsg:
		if f.generating {
			return f, nil
		}
		switch msg.String() {
		case "tab", "enter":
			return f, f.advanceFocus(1)
		case "shift+tab":
			return f, f.advanceFocus(-1)
		case "ctrl+g":
			return f.startGeneration()
		}
	}

	if f.generating {
		return f, nil
	}

	return f, f.updateFocused(msg)
}

func (f *FormScreen) advanceFocus(delta int) tea.Cmd {
	// Enter on the last field submits the form.
	if delta > 0 && f.focus == fieldGoal {
		_, cmd := f.startGeneration()
		return cmd
	}
	next := (f.focus + delta + fieldCount) % fieldCount
	return f.setFocus(next)
}

func (f *FormScreen) setFocus(field int) tea.Cmd {
	f.focus = field

	f.area.Blur()
	f.goal.Blur()
	f.qualification.Blur()
	f.hours.Blur()
	f.duration.Blur()
	f.experience.Blur()
	f.styles.Blur()

	switch field {
	case fieldArea:
		return f.area.Focus()
	case fieldQualification:
		f.qualification.Focus()
	case fieldHours:
		f.hours.Focus()
	case fieldDuration:
		f.duration.Focus()
	case fieldExperience:
		f.experience.Focus()
	case fieldStyles:
		f.styles.Focus()
	case fieldGoal:
		return f.goal.Focus()
	}
	return nil
}

func (f *FormScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldArea:
		f.area, cmd = f.area.Update(msg)
	case fieldQualification:
		f.qualification, cmd = f.qualification.Update(msg)
	case fieldHours:
		f.hours, cmd = f.hours.Update(msg)
	case fieldDuration:
		f.duration, cmd = f.duration.Update(msg)
	case fieldExperience:
		f.experience, cmd = f.experience.Update(msg)
	case fieldStyles:
		f.styles, cmd = f.styles.Update(msg)
	case fieldGoal:
		f.goal, cmd = f.goal.Update(msg)
	}
	return cmd
}

// buildProfile assembles a Profile from the current form values.
func (f *FormScreen) buildProfile() profile.Profile {
	hours, _ := strconv.ParseFloat(f.hours.Value(), 64)

	styles := make([]profile.LearningStyle, 0)
	for _, s := range f.styles.CheckedItems() {
		styles = append(styles, profile.LearningStyle(s))
	}

	return profile.Profile{
		AreaOfInterest: f.area.Value(),
		Qualification:  profile.Qualification(f.qualification.Value()),
		DailyHours:     hours,
		Duration:       profile.Duration(f.duration.Value()),
		Experience:     profile.Experience(f.experience.Value()),
		LearningStyles: styles,
		Goal:           f.goal.Value(),
	}
}

func (f *FormScreen) startGeneration() (screen.Screen, tea.Cmd) {
	p := f.buildProfile()
	if err := p.Validate(); err != nil {
		f.errMsg = err.Error()
		return f, f.setFocus(fieldArea)
	}

	f.errMsg = ""
	f.generating = true
	return f, tea.Batch(f.generateCmd(p), spinnerTick())
}

func (f *FormScreen) generateCmd(p profile.Profile) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
		defer cancel()

		res, err := f.generator.Generate(ctx, p)
		return resultMsg{Result: res, Err: err}
	}
}

func (f *FormScreen) handleResult(msg resultMsg) (screen.Screen, tea.Cmd) {
	f.generating = false

	if msg.Err != nil {
		f.errMsg = "Generation failed: " + msg.Err.Error()
		return f, nil
	}

	f.state.ApplyResult(context.Background(), f.buildProfile(), msg.Result)

	next := dashboard.New(f.state)
	return f, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (f *FormScreen) View(width, height int) string {
	if f.generating {
		msg := fmt.Sprintf("%s  Building your personalized roadmap…", spinnerFrames[f.spinFrame])
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Text).
			Render(msg)
	}

	label := func(s string, focused bool) string {
		st := lipgloss.NewStyle().Foreground(theme.Text)
		if focused {
			st = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return st.Render(s)
	}

	var body string
	body += theme.Title.Width(width - 8).Render("AI Skill Roadmap Generator") + "\n"
	body += theme.Subtitle.Width(width - 8).Render("Your personalized, interactive learning journey") + "\n\n"

	body += label("Area of Interest", f.focus == fieldArea) + "\n"
	body += "  " + f.area.View() + "\n\n"

	body += "  " + f.qualification.View() + "\n"
	body += "  " + f.hours.View() + "\n"
	body += "  " + f.duration.View() + "\n"
	body += "  " + f.experience.View() + "\n\n"

	body += label("Learning Styles", f.focus == fieldStyles) + "\n"
	body += f.styles.View() + "\n"

	body += label("Goal (optional)", f.focus == fieldGoal) + "\n"
	body += "  " + f.goal.View() + "\n"

	if f.errMsg != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("⚠ "+f.errMsg) + "\n"
	}

	card := theme.Card.Width(width - 8).Render(body)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

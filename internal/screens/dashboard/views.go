package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arjun/roadmapper/internal/quiz"
	"github.com/arjun/roadmapper/internal/radar"
	"github.com/arjun/roadmapper/internal/ui/components"
	"github.com/arjun/roadmapper/internal/ui/theme"
)

func (d *DashboardScreen) View(width, height int) string {
	tabBar := " " + d.tabs.View()
	contentHeight := height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch d.tabs.Active {
	case tabRoadmap:
		content = d.renderRoadmapTab(width)
	case tabTimeline:
		content = d.renderTimelineTab(width)
	case tabProgress:
		content = d.renderProgressTab(width)
	case tabQuiz:
		content = d.renderQuizTab(width)
	case tabRadar:
		content = d.renderRadarTab(width)
	case tabPlanner:
		content = d.renderPlannerTab(width)
	case tabExport:
		content = d.renderExportTab()
	}

	return tabBar + "\n\n" + d.scrollWindow(content, contentHeight)
}

func (d *DashboardScreen) renderRoadmapTab(width int) string {
	rm := d.state.Roadmap
	if rm == nil {
		notice := theme.Hint.Render("Basic mode: the response could not be structured, raw roadmap below.")
		return " " + notice + "\n\n" + d.state.RawText
	}

	var b strings.Builder

	b.WriteString(" " + theme.Body.Bold(true).Render("Overview") + "\n")
	b.WriteString(" " + theme.Body.Render(rm.Overview) + "\n\n")

	if len(rm.CareerPaths) > 0 {
		b.WriteString(" " + theme.Body.Bold(true).Render("Career Paths:") + " ")
		badges := make([]string, len(rm.CareerPaths))
		for i, c := range rm.CareerPaths {
			badges[i] = theme.Badge.Render(c)
		}
		b.WriteString(strings.Join(badges, "  ") + "\n")
	}
	if rm.AvgSalaryRange != "" {
		b.WriteString(" " + theme.Body.Bold(true).Render("Avg Salary:") + " " +
			lipgloss.NewStyle().Foreground(theme.Success).Render(rm.AvgSalaryRange) + "\n")
	}
	if rm.MotivationalQuote != "" {
		b.WriteString("\n " + theme.Quote.Render("“"+rm.MotivationalQuote+"”") + "\n")
	}
	b.WriteString("\n")

	for _, p := range rm.Phases {
		title := fmt.Sprintf("Phase %d: %s  (%s)", p.Phase, p.Title, p.Duration)
		b.WriteString(" " + theme.Selected.Render(title) + "\n")

		if len(p.Topics) > 0 {
			b.WriteString("   " + theme.Body.Bold(true).Render("Topics") + "\n")
			for _, t := range p.Topics {
				b.WriteString("   · " + theme.Body.Render(t) + "\n")
			}
		}
		if p.Project != "" {
			b.WriteString("   " + theme.Body.Bold(true).Render("Mini Project: ") + theme.Body.Render(p.Project) + "\n")
		}
		if len(p.FreeResources) > 0 {
			b.WriteString("   " + theme.Body.Bold(true).Render("Free Resources") + "\n")
			for _, r := range p.FreeResources {
				line := fmt.Sprintf("   · %s  %s  %s",
					lipgloss.NewStyle().Foreground(theme.Info).Render(r.Type),
					theme.Body.Render(r.Name),
					theme.Hint.Render(r.URL),
				)
				b.WriteString(line + "\n")
			}
		}
		if len(p.SkillsGained) > 0 {
			skills := make([]string, len(p.SkillsGained))
			for i, s := range p.SkillsGained {
				skills[i] = theme.Badge.Render(s)
			}
			b.WriteString("   " + theme.Body.Bold(true).Render("Skills: ") + strings.Join(skills, "  ") + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (d *DashboardScreen) renderTimelineTab(width int) string {
	if len(d.spans) == 0 {
		return " " + theme.Hint.Render("No structured phases to place on a timeline.")
	}

	var b strings.Builder
	b.WriteString(" " + theme.Body.Bold(true).Render("Learning Timeline") + "  " +
		theme.Hint.Render("(calculated from today)") + "\n\n")

	// Widest label determines the bar column.
	labelWidth := 0
	labels := make([]string, len(d.spans))
	for i, s := range d.spans {
		labels[i] = fmt.Sprintf("Phase %d: %s", s.Phase, s.Title)
		if w := lipgloss.Width(labels[i]); w > labelWidth {
			labelWidth = w
		}
	}

	totalWeeks := 0
	for _, s := range d.spans {
		totalWeeks += s.Weeks
	}

	barSpace := width - labelWidth - 30
	if barSpace < 10 {
		barSpace = 10
	}

	for i, s := range d.spans {
		barLen := 1
		if totalWeeks > 0 {
			barLen = s.Weeks * barSpace / totalWeeks
			if barLen < 1 {
				barLen = 1
			}
		}
		bar := lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("█", barLen))
		dates := fmt.Sprintf("%s – %s", s.Start.Format("Jan 02"), s.End.Format("Jan 02"))

		b.WriteString(fmt.Sprintf(" %-*s  %s  %s %s\n",
			labelWidth, labels[i],
			bar,
			theme.Hint.Render(dates),
			theme.Hint.Render(fmt.Sprintf("(%dw)", s.Weeks)),
		))
	}

	b.WriteString("\n " + theme.Hint.Render(fmt.Sprintf("Total: %d weeks", totalWeeks)) + "\n")
	return b.String()
}

func (d *DashboardScreen) renderProgressTab(width int) string {
	rm := d.state.Roadmap
	if rm == nil {
		return " " + theme.Hint.Render("Progress tracking needs a structured roadmap.")
	}

	var b strings.Builder

	done := d.state.CompletedCount()
	total := rm.TotalTopics()
	pct := d.state.ProgressPercent()

	bar := components.NewProgressBar("Overall", float64(pct)/100, true, width-10)
	b.WriteString(" " + bar.View() + "\n")
	b.WriteString(" " + theme.Hint.Render(fmt.Sprintf("%d of %d topics completed", done, total)) + "\n\n")

	switch {
	case pct == 100:
		b.WriteString(" " + theme.Correct.Render("Congratulations! You've completed the entire roadmap!") + "\n\n")
	case pct >= 50:
		b.WriteString(" " + theme.Correct.Render("You're over halfway there, keep going!") + "\n\n")
	}

	b.WriteString(d.topics.View())
	return b.String()
}

func (d *DashboardScreen) renderQuizTab(width int) string {
	machine := d.state.Quiz

	switch machine.State() {
	case quiz.NotStarted:
		return " " + theme.Hint.Render("No quiz available for this roadmap.")

	case quiz.Done:
		var b strings.Builder
		score := machine.Score()
		total := machine.Total()
		b.WriteString(" " + theme.Title.Render(fmt.Sprintf("Your Score: %d/%d (%d%%)", score, total, machine.Percent())) + "\n\n")
		b.WriteString(" " + theme.Body.Render(machine.Verdict()) + "\n\n")
		b.WriteString(" " + theme.Hint.Render("Press R to retry the quiz. XP already earned is kept.") + "\n")
		return b.String()
	}

	var b strings.Builder
	idx := machine.Index()
	total := machine.Total()

	b.WriteString(" " + theme.Body.Bold(true).Render(fmt.Sprintf("Question %d of %d", idx+1, total)) + "\n")
	bar := components.NewProgressBar("", float64(idx)/float64(total), false, width/2)
	b.WriteString(" " + bar.View() + "\n\n")

	b.WriteString(indent(d.mc.View(), " "))

	if d.feedback != nil {
		b.WriteString("\n")
		if d.feedback.Correct {
			b.WriteString(" " + theme.Correct.Render("✓ Correct!  +20 XP") + "\n")
		} else {
			b.WriteString(" " + theme.Incorrect.Render("✗ Incorrect. Correct answer: "+d.feedback.Answer) + "\n")
		}
		if d.feedback.Explanation != "" {
			b.WriteString(" " + theme.Hint.Render(d.feedback.Explanation) + "\n")
		}
	}

	return b.String()
}

func (d *DashboardScreen) renderRadarTab(width int) string {
	rm := d.state.Roadmap
	if rm == nil {
		return " " + theme.Hint.Render("The skill radar needs a structured roadmap.")
	}

	scores := radar.Scores(rm.Phases, d.state.PhaseCompletionRatio)
	if scores == nil {
		return " " + theme.Hint.Render("No skills listed in this roadmap.")
	}

	var b strings.Builder
	b.WriteString(" " + theme.Body.Bold(true).Render("Skill Radar") + "  " +
		theme.Hint.Render("(updates as you tick off topics)") + "\n\n")

	labelWidth := 0
	for _, s := range scores {
		if w := lipgloss.Width(s.Skill); w > labelWidth {
			labelWidth = w
		}
	}

	for _, s := range scores {
		bar := components.NewProgressBar("", s.Value/100, true, width-labelWidth-10)
		b.WriteString(fmt.Sprintf(" %-*s  %s\n", labelWidth, s.Skill, bar.View()))
	}

	b.WriteString("\n " + theme.Body.Bold(true).Render("Your Stats") + "\n")
	b.WriteString(fmt.Sprintf("   Total XP      %d\n", d.state.XP))
	b.WriteString(fmt.Sprintf("   Topics Done   %d\n", d.state.CompletedCount()))
	b.WriteString(fmt.Sprintf("   Quiz Score    %d/%d\n", d.state.Quiz.Score(), d.state.Quiz.Total()))

	return b.String()
}

func (d *DashboardScreen) renderPlannerTab(width int) string {
	rm := d.state.Roadmap
	if rm == nil {
		return " " + theme.Hint.Render("The daily planner needs a structured roadmap.")
	}

	var b strings.Builder
	sched := rm.DailySchedule

	block := func(title, body string) string {
		inner := theme.Body.Bold(true).Render(title) + "\n" + theme.Body.Render(body)
		return theme.Card.Width((width - 12) / 3).Render(inner)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		block("Morning", sched.Morning), " ",
		block("Afternoon", sched.Afternoon), " ",
		block("Evening", sched.Evening),
	)
	b.WriteString(indent(row, " ") + "\n\n")

	b.WriteString(" " + theme.Body.Bold(true).Render("Weekly Habit Tracker") + "\n")
	b.WriteString(d.habits.View() + "\n")

	b.WriteString(" " + theme.Body.Bold(true).Render("Pomodoro Study Tips") + "\n")
	b.WriteString("   · 25 min focused study, then a 5 min break\n")
	b.WriteString("   · After 4 rounds, take a 15-30 min long break\n")
	b.WriteString("   · Match blocks to your daily schedule above\n")

	return b.String()
}

func (d *DashboardScreen) renderExportTab() string {
	if d.state.Roadmap == nil {
		return " " + theme.Hint.Render("Exporting needs a structured roadmap.")
	}

	var b strings.Builder
	b.WriteString(" " + theme.Body.Bold(true).Render("Export Your Roadmap") + "\n\n")
	b.WriteString(" " + theme.Body.Render("M  Save as Markdown") + "\n")
	b.WriteString(" " + theme.Body.Render("J  Save as JSON") + "\n\n")

	if d.exportMsg != "" {
		b.WriteString(" " + theme.Correct.Render(d.exportMsg) + "\n")
	}
	if d.exportErr != "" {
		b.WriteString(" " + theme.Incorrect.Render("Export failed: "+d.exportErr) + "\n")
	}

	b.WriteString(" " + theme.Hint.Render("Files are written to the current directory.") + "\n")
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}

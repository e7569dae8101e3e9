// Package export renders a roadmap as Markdown or JSON documents.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arjun/roadmapper/internal/roadmap"
)

// Markdown renders the roadmap as a shareable Markdown document.
func Markdown(area string, rm *roadmap.Roadmap) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Learning Roadmap\n\n", area)
	fmt.Fprintf(&b, "**Overview:** %s\n\n", rm.Overview)
	fmt.Fprintf(&b, "**Career Paths:** %s\n\n", strings.Join(rm.CareerPaths, ", "))
	fmt.Fprintf(&b, "**Salary Range:** %s\n\n", rm.AvgSalaryRange)

	for _, p := range rm.Phases {
		fmt.Fprintf(&b, "## Phase %d: %s (%s)\n\n", p.Phase, p.Title, p.Duration)

		b.WriteString("### Topics\n")
		for _, t := range p.Topics {
			fmt.Fprintf(&b, "- %s\n", t)
		}
		b.WriteString("\n")

		fmt.Fprintf(&b, "### Mini Project\n%s\n\n", p.Project)

		b.WriteString("### Free Resources\n")
		for _, r := range p.FreeResources {
			fmt.Fprintf(&b, "- [%s](%s) (%s)\n", r.Name, r.URL, r.Type)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// JSON renders the roadmap as pretty-printed JSON with 2-space indent.
// The output mirrors the in-memory structure exactly: re-parsing it yields
// an equal Roadmap.
func JSON(rm *roadmap.Roadmap) ([]byte, error) {
	return json.MarshalIndent(rm, "", "  ")
}

// Filename derives an export filename from the area of interest, replacing
// spaces with underscores. ext is given without the dot.
func Filename(area, ext string) string {
	return strings.ReplaceAll(area, " ", "_") + "_roadmap." + ext
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjun/roadmapper/internal/export"
	"github.com/arjun/roadmapper/internal/llm"
	"github.com/arjun/roadmapper/internal/profile"
	"github.com/arjun/roadmapper/internal/roadmap"
	"github.com/arjun/roadmapper/internal/session"
	"github.com/arjun/roadmapper/internal/store"
	"github.com/arjun/roadmapper/internal/xp"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a roadmap without the TUI",
	Long:  "Generates a roadmap for the given profile and prints it as Markdown or JSON, or writes both files to a directory with --out.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profileFromFlags(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()
		repo := s.EventRepo()

		cfg, err := resolveLLMConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()

		provider, err := llm.NewProvider(ctx, cfg, repo)
		if err != nil {
			return err
		}

		res, err := roadmap.NewService(provider).Generate(ctx, p)
		if err != nil {
			return err
		}

		// One-shot generations feed the same XP journal as the TUI so the
		// daily streak stays alive.
		state := session.New(xp.NewService(repo))
		state.ApplyResult(ctx, p, res)

		if res.Basic() {
			fmt.Fprintln(os.Stderr, "warning: response was not structured, printing raw text")
			fmt.Println(res.RawText)
			return nil
		}

		outDir, _ := cmd.Flags().GetString("out")
		if outDir != "" {
			return writeExports(outDir, p.AreaOfInterest, res.Roadmap)
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "md", "markdown":
			fmt.Print(export.Markdown(p.AreaOfInterest, res.Roadmap))
		case "json":
			data, err := export.JSON(res.Roadmap)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		default:
			return fmt.Errorf("unknown format %q (want md or json)", format)
		}
		return nil
	},
}

func profileFromFlags(cmd *cobra.Command) (profile.Profile, error) {
	area, _ := cmd.Flags().GetString("area")
	qual, _ := cmd.Flags().GetString("qualification")
	hours, _ := cmd.Flags().GetFloat64("hours")
	duration, _ := cmd.Flags().GetString("duration")
	level, _ := cmd.Flags().GetString("level")
	stylesCSV, _ := cmd.Flags().GetString("styles")
	goal, _ := cmd.Flags().GetString("goal")

	var styles []profile.LearningStyle
	for _, s := range strings.Split(stylesCSV, ",") {
		if s = strings.TrimSpace(s); s != "" {
			styles = append(styles, profile.LearningStyle(s))
		}
	}

	p := profile.Profile{
		AreaOfInterest: area,
		Qualification:  profile.Qualification(qual),
		DailyHours:     hours,
		Duration:       profile.Duration(duration),
		Experience:     profile.Experience(level),
		LearningStyles: styles,
		Goal:           goal,
	}
	if err := p.Validate(); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func writeExports(dir, area string, rm *roadmap.Roadmap) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	mdPath := filepath.Join(dir, export.Filename(area, "md"))
	if err := os.WriteFile(mdPath, []byte(export.Markdown(area, rm)), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	data, err := export.JSON(rm)
	if err != nil {
		return err
	}
	jsonPath := filepath.Join(dir, export.Filename(area, "json"))
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}

	fmt.Printf("Wrote %s\nWrote %s\n", mdPath, jsonPath)
	return nil
}

func init() {
	def := profile.Default()

	generateCmd.Flags().String("area", "", "Area of interest (required)")
	generateCmd.Flags().String("qualification", string(def.Qualification), "Current qualification")
	generateCmd.Flags().Float64("hours", def.DailyHours, "Hours available per day (0.5-8)")
	generateCmd.Flags().String("duration", string(def.Duration), "Roadmap duration")
	generateCmd.Flags().String("level", string(def.Experience), "Experience level")
	generateCmd.Flags().String("styles", "Videos,Hands-on Projects", "Comma-separated learning styles")
	generateCmd.Flags().String("goal", "", "Learning goal (optional)")
	generateCmd.Flags().String("format", "md", "Output format: md or json")
	generateCmd.Flags().String("out", "", "Directory to write both export files instead of printing")

	_ = generateCmd.MarkFlagRequired("area")
}

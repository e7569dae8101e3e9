package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjun/roadmapper/internal/app"
	"github.com/arjun/roadmapper/internal/llm"
	"github.com/arjun/roadmapper/internal/roadmap"
	"github.com/arjun/roadmapper/internal/session"
	"github.com/arjun/roadmapper/internal/store"
	"github.com/arjun/roadmapper/internal/xp"
)

var rootCmd = &cobra.Command{
	Use:   "roadmapper",
	Short: "AI skill roadmap generator",
	Long:  "Roadmapper — terminal app that turns a learner profile into a phased, trackable learning roadmap with quizzes, timelines, and XP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ROADMAPPER_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ROADMAPPER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLLMConfig builds provider configuration from ROADMAPPER_* vars,
// probing the standard provider key vars when those are not set.
func resolveLLMConfig() (llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return llm.Config{}, err
		}
		cfg = discovered
	}
	return cfg, nil
}

func runApp(cmd *cobra.Command) error {
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

	provider, err := llm.NewProvider(context.Background(), cfg, repo)
	if err != nil {
		return err
	}

	xpService := xp.NewService(repo)

	return app.Run(app.Options{
		State:     session.New(xpService),
		Generator: roadmap.NewService(provider),
		XP:        xpService,
		Timeout:   cfg.Timeout,
	})
}

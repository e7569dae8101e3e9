package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjun/roadmapper/internal/store"
	"github.com/arjun/roadmapper/internal/xp"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime XP and daily streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()
		xpService := xp.NewService(repo)

		total, err := xpService.Total(ctx)
		if err != nil {
			return fmt.Errorf("total XP: %w", err)
		}

		streak, err := xpService.Streak(ctx)
		if err != nil {
			return fmt.Errorf("streak: %w", err)
		}

		days, err := repo.ActivityDays(ctx)
		if err != nil {
			return fmt.Errorf("activity days: %w", err)
		}

		fmt.Printf("Total XP:      %d\n", total)
		fmt.Printf("Daily streak:  %d day(s)\n", streak)
		fmt.Printf("Active days:   %d\n", len(days))
		return nil
	},
}

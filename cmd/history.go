package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/edugen/tka/internal/auth"
	"github.com/edugen/tka/internal/history"
	"github.com/edugen/tka/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed exams for the logged-in student",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

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
		if user == "" {
			authSvc := auth.NewService(s.UserRepo(), s.SessionRepo())
			username, ok, err := authSvc.Current(ctx)
			if err != nil {
				return fmt.Errorf("read session: %w", err)
			}
			if !ok {
				return fmt.Errorf("nobody is logged in; pass --user")
			}
			user = username
		}

		histSvc := history.NewService(s.ResultRepo())
		records, err := histSvc.List(ctx, user)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Printf("No completed exams for %s.\n", user)
			return nil
		}

		summary, err := histSvc.Summarize(ctx, user)
		if err != nil {
			return err
		}
		fmt.Printf("%s — %d exams, best %d, average %d\n\n",
			user, summary.Attempts, summary.BestScore, summary.AvgScore)

		fmt.Printf("%-19s  %-5s  %-7s  %s\n", "Taken", "Score", "Correct", "Topics")
		fmt.Println(strings.Repeat("─", 80))
		for _, r := range records {
			topicList := strings.Join(r.Topics, ", ")
			if len(topicList) > 45 {
				topicList = topicList[:42] + "..."
			}
			fmt.Printf("%-19s  %-5d  %2d/%-4d  %s\n",
				r.TakenAt.Local().Format("2006-01-02 15:04:05"),
				r.Score,
				r.CorrectCount, r.TotalQuestions,
				topicList,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("user", "", "Username to list history for (defaults to the logged-in session)")
}

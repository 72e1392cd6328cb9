package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/quiz"
	"github.com/dakia/mathquiz/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved quiz results",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		results, err := s.ResultRepo().ListResults(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("No results yet.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-5s  %-7s  %-32s  %7s  %7s\n",
			"ID", "Timestamp", "Grade", "Source", "Title", "Correct", "Score")
		fmt.Println(strings.Repeat("─", 94))
		for _, r := range results {
			fmt.Printf("%-5d  %-16s  %-5d  %-7s  %-32s  %7s  %7.1f\n",
				r.ID,
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				r.Grade,
				r.Source,
				truncate(r.Title, 32),
				fmt.Sprintf("%d/%d", r.Correct, r.Total),
				r.Score,
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show every question and answer of a result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.ResultRepo().GetResult(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get result: %w", err)
		}
		if r == nil {
			return fmt.Errorf("result %d not found", id)
		}

		l := i18n.New(i18n.LocaleEnglish)
		fmt.Printf("ID:      %d\n", r.ID)
		fmt.Printf("Time:    %s\n", r.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Title:   %s\n", r.Title)
		fmt.Printf("Grade:   %s\n", quiz.Grade(r.Grade).Label(l))
		fmt.Printf("Source:  %s\n", r.Source)
		fmt.Printf("Score:   %.1f/10 (%d of %d correct)\n", r.Score, r.Correct, r.Total)
		fmt.Println()

		for _, a := range r.Answers {
			mark := "✓"
			if !a.Correct {
				mark = "✗"
			}
			answer := "(blank)"
			if a.UserAnswer != nil && strings.TrimSpace(*a.UserAnswer) != "" {
				answer = *a.UserAnswer
			}
			fmt.Printf("%s %2d. %s\n", mark, a.QuestionID, a.Text)
			fmt.Printf("       answer: %s   expected: %s\n", answer, a.CorrectAnswer)
		}
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of results to show")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type questionsFlags struct {
	questionsPath string
}

func newQuestionsCmd() *cobra.Command {
	f := &questionsFlags{}

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the active question catalogue",
		Long:  "Print the active question catalogue grouped by pillar. Also serves as a validation check for custom questionnaire files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuestions(f)
		},
	}

	cmd.Flags().StringVar(&f.questionsPath, "questions", "", "Questionnaire file (default: builtin catalogue)")

	return cmd
}

func runQuestions(f *questionsFlags) error {
	q, err := loadQuestionnaire(f.questionsPath)
	if err != nil {
		return err
	}

	out := os.Stdout
	for _, p := range q.Pillars {
		fmt.Fprintf(out, "%s (%s)\n", p.Name, p.ID)
		for _, qu := range q.Questions {
			if qu.Pillar != p.ID {
				continue
			}
			fmt.Fprintf(out, "  [%s] %s (weight %v, risk points %d)\n",
				qu.ID, qu.Text, qu.Weight, qu.RiskPoints)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "%d questions across %d pillars (%s)\n",
		len(q.Questions), len(q.Pillars), q.Hash)

	return nil
}

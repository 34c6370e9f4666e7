package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/answers"
	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/mailer"
	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/report"
	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/scoring"
)

type reportFlags struct {
	questionsPath string
	format        string
	out           string
	pdfOut        string
	emailTo       string
	verbose       bool
}

func newReportCmd() *cobra.Command {
	f := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report <answers-file>",
		Short: "Score a saved answers file and produce a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.questionsPath, "questions", "", "Questionnaire file (default: builtin catalogue)")
	flags.StringVar(&f.format, "format", "json", "Output format: json or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.pdfOut, "pdf-out", "", "Also write the PDF report to this path")
	flags.StringVar(&f.emailTo, "email-to", "", "Email the PDF report to this address")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runReport(answersPath string, f *reportFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	q, err := loadQuestionnaire(f.questionsPath)
	if err != nil {
		return err
	}
	verbose("Loaded %d questions from %s", len(q.Questions), q.FilePath)

	verbose("Loading answers: %s", answersPath)
	af, err := answers.Load(answersPath)
	if err != nil {
		return exitError(3, "failed to load answers: %v", err)
	}
	if unknown := af.Unknown(q); len(unknown) > 0 {
		return exitError(3, "answers file references unknown question IDs: %s",
			strings.Join(unknown, ", "))
	}

	res := scoring.Compute(q, af.Answers)
	rpt := report.New(version, report.Input{
		QuestionnaireFile: filepath.Base(q.FilePath),
		QuestionnaireHash: q.Hash,
	}, af.Participant, res)

	var output string
	switch f.format {
	case "json":
		data, err := json.MarshalIndent(rpt, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = report.Markdown(rpt)
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	if f.pdfOut == "" && f.emailTo == "" {
		return nil
	}

	verbose("Rendering charts and PDF")
	pdfBytes, err := buildPDF(rpt, logger.Printf)
	if err != nil {
		return exitError(5, "failed to build PDF report: %v", err)
	}
	if f.pdfOut != "" {
		verbose("Writing PDF to %s", f.pdfOut)
		if err := os.WriteFile(f.pdfOut, pdfBytes, 0644); err != nil {
			return exitError(5, "failed to write PDF report: %v", err)
		}
	}

	if f.emailTo != "" {
		verbose("Emailing report to %s", f.emailTo)
		cfg := mailer.LoadConfig()
		if err := mailer.Send(context.Background(), cfg, f.emailTo, rpt, pdfBytes); err != nil {
			return exitError(4, "failed to email report: %v", err)
		}
	}

	return nil
}

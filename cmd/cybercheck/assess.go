package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/chart"
	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/mailer"
	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/pdf"
	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/questionnaire"
	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/report"
	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/scoring"
)

const defaultPDFName = "cybersecurity_assessment_report.pdf"

type assessFlags struct {
	questionsPath string
	pdfOut        string
	email         bool
	verbose       bool
}

func newAssessCmd() *cobra.Command {
	f := &assessFlags{}

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Run an interactive assessment in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssess(f, os.Stdin, os.Stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.questionsPath, "questions", "", "Questionnaire file (default: builtin catalogue)")
	flags.StringVar(&f.pdfOut, "pdf-out", defaultPDFName, "Where to write the PDF report")
	flags.BoolVar(&f.email, "email", false, "Email the PDF report to the participant's address")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runAssess(f *assessFlags, in io.Reader, out io.Writer) error {
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

	sc := bufio.NewScanner(in)

	fmt.Fprintln(out, "Cybersecurity Self-Assessment Tool")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "This tool helps Australian small and medium businesses perform a quick")
	fmt.Fprintln(out, "cybersecurity self-check. Enter your details, then answer the yes/no")
	fmt.Fprintln(out, "questions to get a risk score and practical recommendations.")
	fmt.Fprintln(out)

	participant, err := askParticipant(sc, out)
	if err != nil {
		return err
	}

	answers, err := askQuestions(sc, out, q)
	if err != nil {
		return err
	}

	// One computation feeds every surface: summary, charts, PDF, email.
	res := scoring.Compute(q, answers)
	rpt := report.New(version, report.Input{
		QuestionnaireFile: filepath.Base(q.FilePath),
		QuestionnaireHash: q.Hash,
	}, participant, res)

	fmt.Fprint(out, report.Text(rpt))

	verbose("Rendering charts and PDF")
	pdfBytes, err := buildPDF(rpt, logger.Printf)
	if err != nil {
		return exitError(5, "failed to build PDF report: %v", err)
	}
	if err := os.WriteFile(f.pdfOut, pdfBytes, 0644); err != nil {
		return exitError(5, "failed to write PDF report: %v", err)
	}
	fmt.Fprintf(out, "\nFull report written to %s\n", f.pdfOut)

	if f.email {
		sendReport(out, participant.Email, rpt, pdfBytes, f.pdfOut)
	}

	return nil
}

// sendReport is best effort: any failure is a notice, never an error,
// and the PDF already written stays retrievable.
func sendReport(out io.Writer, to string, rpt *report.Report, pdfBytes []byte, pdfPath string) {
	cfg := mailer.LoadConfig()
	if !cfg.Enabled() {
		fmt.Fprintf(out, "Could not send email: %v\n", mailer.ErrNotConfigured)
		fmt.Fprintf(out, "The PDF report is still available at %s.\n", pdfPath)
		return
	}
	if err := mailer.Send(context.Background(), cfg, to, rpt, pdfBytes); err != nil {
		fmt.Fprintf(out, "Could not send email: %v\n", err)
		fmt.Fprintf(out, "The PDF report is still available at %s.\n", pdfPath)
		return
	}
	fmt.Fprintf(out, "Report emailed to %s.\n", to)
}

// buildPDF renders both charts and assembles the PDF. A chart failure is
// reported and tolerated; the PDF then carries its fallback paragraph.
func buildPDF(rpt *report.Report, warn func(string, ...any)) ([]byte, error) {
	radar, err := chart.Radar(rpt.Result.Pillars)
	if err != nil {
		warn("Warning: radar chart not rendered: %v", err)
		radar = nil
	}
	bar, err := chart.Bar(rpt.Result.Pillars)
	if err != nil {
		warn("Warning: bar chart not rendered: %v", err)
		bar = nil
	}
	return pdf.Build(rpt, radar, bar)
}

// loadQuestionnaire loads and validates the catalogue; an empty path
// selects the builtin one. Any structural problem is fatal before
// scoring is attempted.
func loadQuestionnaire(path string) (*questionnaire.Questionnaire, error) {
	var q *questionnaire.Questionnaire
	var err error
	if path == "" {
		q, err = questionnaire.LoadBuiltin()
	} else {
		q, err = questionnaire.Load(path)
	}
	if err != nil {
		return nil, exitError(3, "failed to load questionnaire: %v", err)
	}

	if errs := questionnaire.Validate(q); len(errs) > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "invalid questionnaire %s:", q.FilePath)
		for _, e := range errs {
			fmt.Fprintf(&b, "\n  %s", e)
		}
		return nil, exitError(3, "%s", b.String())
	}
	return q, nil
}

func askParticipant(sc *bufio.Scanner, out io.Writer) (report.Participant, error) {
	name, err := promptLine(sc, out, "Your name", "")
	if err != nil {
		return report.Participant{}, err
	}
	business, err := promptLine(sc, out, "Business name", "")
	if err != nil {
		return report.Participant{}, err
	}
	email, err := promptLine(sc, out, "Email address", "it should contain '@'")
	if err != nil {
		return report.Participant{}, err
	}
	return report.Participant{Name: name, Business: business, Email: email}, nil
}

// promptLine asks until a non-empty (and, for the email field, plausible)
// value is entered.
func promptLine(sc *bufio.Scanner, out io.Writer, label, hint string) (string, error) {
	emailField := strings.Contains(label, "Email")
	for {
		fmt.Fprintf(out, "%s: ", label)
		if !sc.Scan() {
			return "", inputClosed(sc)
		}
		v := strings.TrimSpace(sc.Text())
		if v == "" {
			fmt.Fprintf(out, "Please enter a value.\n")
			continue
		}
		if emailField && !strings.Contains(v, "@") {
			fmt.Fprintf(out, "Please enter a valid email address (%s).\n", hint)
			continue
		}
		return v, nil
	}
}

// askQuestions walks the catalogue in declaration order and records one
// yes/no answer per question.
func askQuestions(sc *bufio.Scanner, out io.Writer, q *questionnaire.Questionnaire) (scoring.AnswerSet, error) {
	fmt.Fprintln(out, "\nPlease answer the following questions about your business.")

	answers := make(scoring.AnswerSet, len(q.Questions))
	for _, qu := range q.Questions {
		fmt.Fprintf(out, "\n[%s] %s\n", qu.ID, qu.Text)
		ans, err := promptYesNo(sc, out, "Your answer")
		if err != nil {
			return nil, err
		}
		answers[qu.ID] = ans
	}
	return answers, nil
}

func promptYesNo(sc *bufio.Scanner, out io.Writer, label string) (bool, error) {
	for {
		fmt.Fprintf(out, "%s (yes/no): ", label)
		if !sc.Scan() {
			return false, inputClosed(sc)
		}
		if v, ok := parseYesNo(sc.Text()); ok {
			return v, nil
		}
		fmt.Fprintln(out, "Please answer with 'yes' or 'no' (or y/n).")
	}
}

// parseYesNo interprets a yes/no reply; ok is false for anything else.
func parseYesNo(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return true, true
	case "no", "n":
		return false, true
	}
	return false, false
}

func inputClosed(sc *bufio.Scanner) error {
	if err := sc.Err(); err != nil {
		return exitError(1, "reading input: %v", err)
	}
	return exitError(1, "input closed before the assessment was complete")
}

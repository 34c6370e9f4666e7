// Package pdf assembles the downloadable assessment report.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/report"
)

const (
	pageMargin  = 20.0
	maxImgWidth = 150.0
	lineHeight  = 6.0
)

const introText = "This report summarises the results of your cybersecurity self-assessment " +
	"and provides simple recommendations to help reduce risk."

const interpretText = "The overall security score is a simple 0-100 rating based on your answers. " +
	"Internal risk points show how many important cybersecurity controls are currently missing or weak. " +
	"The higher this number (relative to the maximum), the more exposed your business is to cyber incidents."

const chartsMissingText = "Charts could not be embedded in this PDF. You can still see " +
	"the visual overview in the assessment summary."

// cleanText replaces characters the Latin-1 core fonts cannot encode.
var cleanText = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"’", "'", // curly apostrophe
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"•", "-", // bullet
	" ", " ", // non-breaking space
).Replace

// Build renders a report as PDF bytes. Chart images are optional;
// a placeholder paragraph is emitted when both are missing. Output is
// reproducible for a given report: the document creation date is pinned
// to the report's Generated timestamp.
func Build(r *report.Report, radarPNG, barPNG []byte) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCatalogSort(true)
	doc.SetCreationDate(r.Generated)
	doc.SetModificationDate(r.Generated)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")
	write := func(h float64, s string) {
		doc.CellFormat(0, h, tr(cleanText(s)), "", 1, "", false, 0, "")
	}
	writeWrapped := func(s string) {
		doc.MultiCell(0, lineHeight, tr(cleanText(s)), "", "", false)
	}

	// Title
	doc.SetFont("Arial", "B", 16)
	write(10, "Cybersecurity Self-Assessment Report")

	// Participant details
	doc.Ln(4)
	doc.SetFont("Arial", "B", 12)
	write(7, "Assessment details")
	doc.SetFont("Arial", "", 11)
	write(6, "Participant name: "+r.Participant.Name)
	write(6, "Business name: "+r.Participant.Business)
	write(6, "Email address: "+r.Participant.Email)

	// Intro
	doc.Ln(4)
	doc.SetFont("Arial", "", 11)
	writeWrapped(introText)

	// Overall results
	doc.Ln(6)
	doc.SetFont("Arial", "B", 13)
	write(8, "Overall results")
	doc.SetFont("Arial", "", 11)
	write(6, fmt.Sprintf("Overall security score: %.1f / 100", r.Result.OverallScore))
	write(6, fmt.Sprintf("Overall risk level: %s", r.Result.RiskLevel))
	write(6, fmt.Sprintf("Internal risk points: %d out of %d", r.Result.RiskPoints, r.Result.MaxRiskPoints))

	doc.Ln(4)
	doc.SetFont("Arial", "B", 12)
	write(7, "How to interpret these scores")
	doc.SetFont("Arial", "", 11)
	writeWrapped(interpretText)

	// Security by area
	doc.Ln(4)
	doc.SetFont("Arial", "B", 12)
	write(7, "Security by area")
	for _, p := range r.Result.Pillars {
		doc.Ln(2)
		doc.SetFont("Arial", "B", 11)
		write(6, fmt.Sprintf("%s: %.1f / 100", p.Name, p.Percent()))
		doc.SetFont("Arial", "", 11)
		writeWrapped(p.Explanation)
	}

	// Visual overview
	doc.Ln(4)
	doc.SetFont("Arial", "B", 12)
	write(7, "Visual overview")
	if len(radarPNG) == 0 && len(barPNG) == 0 {
		doc.Ln(2)
		doc.SetFont("Arial", "", 11)
		writeWrapped(chartsMissingText)
	} else {
		if len(radarPNG) > 0 {
			doc.Ln(2)
			embedPNG(doc, "radar", radarPNG)
		}
		if len(barPNG) > 0 {
			doc.Ln(8)
			embedPNG(doc, "bars", barPNG)
		}
	}

	// Recommendations
	doc.Ln(4)
	doc.SetFont("Arial", "B", 12)
	write(7, "Recommended actions")
	doc.SetFont("Arial", "", 11)
	if len(r.Result.Recommendations) == 0 {
		writeWrapped(report.NoRecommendationsNote)
	} else {
		for i, rec := range r.Result.Recommendations {
			writeWrapped(fmt.Sprintf("%d. %s", i+1, rec))
			doc.Ln(1)
		}
	}

	// Footer line with the report identity
	doc.Ln(6)
	doc.SetFont("Arial", "I", 9)
	write(5, fmt.Sprintf("Report %s, generated %s", r.ReportID, r.Generated.Format("2 Jan 2006 15:04 MST")))

	if doc.Err() {
		return nil, fmt.Errorf("pdf.Build: %v", doc.Error())
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf.Build: %w", err)
	}
	return buf.Bytes(), nil
}

// embedPNG places an image horizontally centered at the configured
// maximum width, flowing with the text cursor.
func embedPNG(doc *fpdf.Fpdf, name string, png []byte) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))

	pageW, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	imgW := pageW - left - right
	if imgW > maxImgWidth {
		imgW = maxImgWidth
	}
	x := (pageW - imgW) / 2
	doc.ImageOptions(name, x, -1, imgW, 0, true, opts, 0, "")
}

// Package formatter renders proof verification reports for terminal
// output.
package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/prooflabs/pcheck/internal/proof"
)

var (
	okStyle      = color.New(color.FgGreen, color.Bold)
	invalidStyle = color.New(color.FgRed, color.Bold)
	errorStyle   = color.New(color.FgRed, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	noteStyle    = color.New(color.FgHiYellow, color.Bold)
)

// reportTemplate lays out one verified proof: an optional file header,
// a gutter row per proof line, any ingestion failure, and a summary.
const reportTemplate = `{{header .Filename .Padding}}{{range .Verdicts}}{{verdict . $.MaxLineNumWidth $.Padding}}{{end}}{{failure .Err .Padding}}{{summary .SummaryText .Status .Padding}}`

type reportData struct {
	Filename        string
	Status          proof.Status
	Verdicts        []proof.Verdict
	Err             error
	SummaryText     string
	MaxLineNumWidth int
	Padding         string
}

// Format renders a report in a human-readable, colored layout. filename
// may be empty for proofs read from stdin. The canonical machine-oriented
// transcript is report.Transcript; this rendering is for people.
func Format(filename string, report *proof.Report) string {
	width := maxLineNumWidth(report)
	data := reportData{
		Filename:        filename,
		Status:          report.Status,
		Verdicts:        report.Verdicts,
		Err:             report.Err,
		SummaryText:     report.Summary(),
		MaxLineNumWidth: width,
		Padding:         strings.Repeat(" ", width+1),
	}

	funcMap := template.FuncMap{
		"header":  header,
		"verdict": verdict,
		"failure": failure,
		"summary": summary,
	}
	tmpl := template.Must(template.New("report").Funcs(funcMap).Parse(reportTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting report: %v", err)
	}
	return buf.String()
}

// template helpers

func header(filename, padding string) string {
	if filename == "" {
		return ""
	}
	return lineStyle.Sprintf("%s--> ", padding) + fileStyle.Sprintf("%s\n", filename)
}

func verdict(v proof.Verdict, maxLineNumWidth int, padding string) string {
	lineNum := fmt.Sprintf("%*d", maxLineNumWidth, v.Line)
	s := lineStyle.Sprintf("%s | ", lineNum)
	if v.OK {
		s += okStyle.Sprint("OK      ")
	} else {
		s += invalidStyle.Sprint("INVALID ")
	}
	s += v.Formula
	s += ruleStyle.Sprintf("    [%s]\n", v.Justification)
	if v.Note != "" {
		s += lineStyle.Sprintf("%s= ", padding)
		s += noteStyle.Sprintf("%s\n", v.Note)
	}
	return s
}

func failure(err error, padding string) string {
	if err == nil {
		return ""
	}
	return lineStyle.Sprintf("%s= ", padding) + errorStyle.Sprintf("%s\n", err.Error())
}

func summary(text string, status proof.Status, padding string) string {
	style := okStyle
	switch status {
	case proof.StatusInvalid:
		style = invalidStyle
	case proof.StatusError:
		style = errorStyle
	}
	return lineStyle.Sprintf("%s= ", padding) + style.Sprintf("%s\n", text)
}

func maxLineNumWidth(report *proof.Report) int {
	if n := len(report.Verdicts); n > 0 {
		return len(fmt.Sprintf("%d", report.Verdicts[n-1].Line))
	}
	return 1
}

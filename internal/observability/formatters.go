// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedCV outputs a human-readable summary of the parsed CV.
func (p *Printer) PrintParsedCV(cv *types.ParsedCV) {
	if cv == nil {
		return
	}

	var sb strings.Builder

	summary := cv.ProfessionalSummary
	if len(summary) > 50 {
		summary = summary[:47] + "..."
	}
	if summary != "" {
		sb.WriteString(fmt.Sprintf("Summary: %s\n\n", summary))
	}

	if len(cv.WorkExperience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(cv.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			job := cv.WorkExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s", job.Title, job.Company))
			if job.Dates != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", job.Dates))
			}
			sb.WriteString(fmt.Sprintf(" [%d bullets]\n", len(job.BulletPoints)))
		}
		if len(cv.WorkExperience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cv.WorkExperience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(cv.Skills) > 0 {
		skills := strings.Join(cv.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills: %s\n", skills))
	}

	p.printBox("PARSED CV", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSignals outputs the detected signal families.
func (p *Printer) PrintSignals(signals *types.Signals) {
	if signals == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Structure: order=%s formatting=%s ats_risks=%d\n",
		signals.Structure.SectionOrderQuality,
		signals.Structure.FormattingConsistency,
		len(signals.Structure.ATSRiskElements)))
	sb.WriteString(fmt.Sprintf("Keywords:  density=%s alignment=%s missing=%d\n",
		signals.Keywords.KeywordDensityLevel,
		signals.Keywords.RoleAlignment,
		len(signals.Keywords.MissingKeywords)))
	sb.WriteString(fmt.Sprintf("Impact:    quantification=%s verbs=%s quantified=%d\n",
		signals.Impact.QuantificationLevel,
		signals.Impact.ActionVerbStrength,
		signals.Impact.QuantifiedBulletCount))
	sb.WriteString(fmt.Sprintf("Alignment: role=%s seniority=%s industry=%s\n",
		signals.Alignment.RoleFit,
		signals.Alignment.SeniorityMatch,
		signals.Alignment.IndustryRelevance))
	sb.WriteString(fmt.Sprintf("Clarity:   readability=%s summary=%s buzzwords=%s",
		signals.Clarity.Readability,
		signals.Clarity.SummaryQuality,
		signals.Clarity.BuzzwordDensity))

	p.printBox("DETECTED SIGNALS", sb.String())
}

// PrintScores outputs the score breakdown and risk tier.
func (p *Printer) PrintScores(scores *types.Scores) {
	if scores == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Structure:  %2d / 20\n", scores.Structure))
	sb.WriteString(fmt.Sprintf("Keywords:   %2d / 20\n", scores.Keywords))
	sb.WriteString(fmt.Sprintf("Impact:     %2d / 20\n", scores.Impact))
	sb.WriteString(fmt.Sprintf("Alignment:  %2d / 20\n", scores.Alignment))
	sb.WriteString(fmt.Sprintf("Clarity:    %2d / 20\n", scores.Clarity))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall:    %d / 100\n", scores.Overall))
	sb.WriteString(fmt.Sprintf("ATS Risk:   %s", scores.ATSRiskLevel))

	p.printBox("CV SCORES", sb.String())
}

// PrintReport outputs the narrative strengths and weaknesses.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder

	if len(report.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		for _, s := range report.Strengths {
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  + %s\n", s))
		}
		sb.WriteString("\n")
	}

	if len(report.Weaknesses) > 0 {
		sb.WriteString("Weaknesses:\n")
		for _, w := range report.Weaknesses {
			if len(w) > 50 {
				w = w[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", w))
		}
		sb.WriteString("\n")
	}

	explanation := report.ATSRiskExplanation
	if len(explanation) > 50 {
		explanation = explanation[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("ATS: %s", explanation))

	p.printBox("ANALYSIS REPORT", sb.String())
}

// PrintOptimizeResult outputs a rewrite result, whichever form it took.
func (p *Printer) PrintOptimizeResult(result *types.OptimizeResult) {
	if result == nil {
		return
	}

	if result.Summary != nil {
		text := result.Summary.Text
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		p.printBox("OPTIMIZED SUMMARY", text)
	}

	if len(result.Bullets) > 0 {
		var sb strings.Builder
		count := min(len(result.Bullets), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := result.Bullets[i]
			sb.WriteString(fmt.Sprintf("%s, %s:\n", entry.Title, entry.Company))
			for _, bullet := range entry.BulletPoints {
				if len(bullet) > 48 {
					bullet = bullet[:45] + "..."
				}
				sb.WriteString(fmt.Sprintf("  • %s\n", bullet))
			}
			if i < count-1 {
				sb.WriteString("\n")
			}
		}
		if len(result.Bullets) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(result.Bullets)-maxItemsToShow))
		}
		p.printBox("OPTIMIZED BULLETS", strings.TrimSuffix(sb.String(), "\n"))
	}
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-pipeline/internal/types"
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

// PrintRequirements outputs a human-readable summary of the extracted
// requirement set.
func (p *Printer) PrintRequirements(reqs *types.RequirementSet) {
	if reqs == nil {
		return
	}

	var sb strings.Builder

	if len(reqs.RequiredSkills) > 0 {
		sb.WriteString("Required skills:\n")
		count := min(len(reqs.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", reqs.RequiredSkills[i]))
		}
		if len(reqs.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(reqs.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(reqs.PreferredSkills) > 0 {
		sb.WriteString("Preferred skills:\n")
		count := min(len(reqs.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", reqs.PreferredSkills[i]))
		}
		if len(reqs.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(reqs.PreferredSkills)-3))
		}
		sb.WriteString("\n")
	}

	if reqs.MinYearsExperience != nil {
		sb.WriteString(fmt.Sprintf("Experience: %d+ years\n", *reqs.MinYearsExperience))
	}
	if reqs.EducationLevel != types.EducationNone {
		sb.WriteString(fmt.Sprintf("Education:  %s\n", reqs.EducationLevel))
	}
	if reqs.Seniority != types.SeniorityUnspecified {
		sb.WriteString(fmt.Sprintf("Seniority:  %s\n", reqs.Seniority))
	}

	p.printBox("EXTRACTED REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top N scored repositories with matched skills.
func (p *Printer) PrintRanking(ranked []types.ScoredArtifact) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total repositories scored: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		art := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, art.Repository.Name))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (%d stars)\n", art.Score, art.Repository.StarCount))
		matched := append([]string{}, art.MatchedRequired...)
		matched = append(matched, art.MatchedPreferred...)
		if len(matched) > 0 {
			skills := strings.Join(matched, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("REPOSITORY RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTailoredContent outputs the synthesized resume content.
func (p *Printer) PrintTailoredContent(content *types.TailoredContent) {
	if content == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mode: %s\n\n", content.SynthesisMode))
	sb.WriteString(fmt.Sprintf("Summary: %s\n", content.Summary))
	if len(content.SkillsHighlighted) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:  %s\n", strings.Join(content.SkillsHighlighted, ", ")))
	}
	if len(content.ProjectBullets) > 0 {
		sb.WriteString("\nProjects:\n")
		for _, proj := range content.ProjectBullets {
			sb.WriteString(fmt.Sprintf("  %s (%d bullets)\n", proj.Name, len(proj.Bullets)))
		}
	}

	p.printBox("TAILORED CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInterviewPrep outputs a summary of the interview prep guide.
func (p *Printer) PrintInterviewPrep(prep *types.InterviewPrep) {
	if prep == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mode: %s\n\n", prep.SynthesisMode))

	count := min(len(prep.Tips), maxItemsToShow)
	if count > 0 {
		sb.WriteString("Tips:\n")
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", prep.Tips[i]))
		}
		if len(prep.Tips) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(prep.Tips)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Technical questions:   %d\n", len(prep.TechnicalQuestions)))
	sb.WriteString(fmt.Sprintf("Behavioral questions:  %d\n", len(prep.BehavioralQuestions)))
	sb.WriteString(fmt.Sprintf("Situational questions: %d\n", len(prep.SituationalQuestions)))

	p.printBox("INTERVIEW PREP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRenderResult outputs the final document outcome.
func (p *Printer) PrintRenderResult(doc *types.RenderedDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mode:   %s\n", doc.RenderMode))
	sb.WriteString(fmt.Sprintf("Type:   %s\n", doc.MIMEType))
	sb.WriteString(fmt.Sprintf("Size:   %d bytes", len(doc.Bytes)))

	p.printBox("RENDERED DOCUMENT", sb.String())
}

package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-pipeline/internal/types"
)

const bannerWidth = 60

// RenderPlainText formats tailored content as a plain-text resume. It is the
// guaranteed fallback path: plain-text formatting cannot fail.
func RenderPlainText(content *types.TailoredContent, ident Identity) string {
	name := ident.Name
	if name == "" {
		name = "Your Name"
	}

	var sb strings.Builder
	banner := strings.Repeat("=", bannerWidth)
	sb.WriteString(banner + "\n")
	sb.WriteString(center(name, bannerWidth) + "\n")
	sb.WriteString(banner + "\n\n")

	if ident.Email != "" || ident.Location != "" {
		sb.WriteString("Contact Information:\n")
		if ident.Email != "" {
			sb.WriteString(fmt.Sprintf("  Email: %s\n", ident.Email))
		}
		if ident.Location != "" {
			sb.WriteString(fmt.Sprintf("  Location: %s\n", ident.Location))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Professional Summary:\n")
	sb.WriteString(fmt.Sprintf("  %s\n\n", content.Summary))

	if content.ExperienceNarrative != "" {
		sb.WriteString("Experience:\n")
		sb.WriteString(fmt.Sprintf("  %s\n\n", content.ExperienceNarrative))
	}

	if len(content.ProjectBullets) > 0 {
		sb.WriteString("Notable Projects:\n")
		for _, project := range content.ProjectBullets {
			sb.WriteString(fmt.Sprintf("  %s\n", project.Name))
			for _, bullet := range project.Bullets {
				sb.WriteString(fmt.Sprintf("    - %s\n", bullet))
			}
		}
		sb.WriteString("\n")
	}

	if len(content.SkillsHighlighted) > 0 {
		sb.WriteString("Technical Skills:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(content.SkillsHighlighted, ", ")))
	}

	return sb.String()
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	pad := (width - len(text)) / 2
	return strings.Repeat(" ", pad) + text
}

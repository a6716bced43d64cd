package rendering

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/jonathan/resume-pipeline/internal/types"
)

//go:embed resume.tex.tmpl
var resumeTemplate string

// resumeTmpl is parsed once at startup; the template is static and embedded,
// so a parse failure is a programming error.
var resumeTmpl = template.Must(template.New("resume").Parse(resumeTemplate))

// Identity carries optional candidate contact details for the document
// header. Fields are untrusted and sanitized like everything else.
type Identity struct {
	Name     string
	Email    string
	Location string
}

// TemplateData is the fully sanitized data passed to the LaTeX template.
// Every field has already been through EscapeLaTeX by the time the template
// executes.
type TemplateData struct {
	Name        string
	ContactLine string
	Summary     string
	Experience  string
	SkillsLine  string
	Projects    []ProjectSection
}

// ProjectSection is one sanitized project block.
type ProjectSection struct {
	Name    string
	Bullets []string
}

// buildTemplateData sanitizes all free-text fields of the tailored content
// and identity. This is the single choke point between untrusted text and
// the markup template.
func buildTemplateData(content *types.TailoredContent, ident Identity) *TemplateData {
	name := ident.Name
	if name == "" {
		name = "Your Name"
	}

	contactItems := make([]string, 0, 2)
	if ident.Location != "" {
		contactItems = append(contactItems, EscapeLaTeX(ident.Location))
	}
	if ident.Email != "" {
		contactItems = append(contactItems, EscapeLaTeX(ident.Email))
	}

	skills := make([]string, 0, len(content.SkillsHighlighted))
	for _, skill := range content.SkillsHighlighted {
		skills = append(skills, EscapeLaTeX(skill))
	}

	projects := make([]ProjectSection, 0, len(content.ProjectBullets))
	for _, project := range content.ProjectBullets {
		bullets := make([]string, 0, len(project.Bullets))
		for _, bullet := range project.Bullets {
			bullets = append(bullets, EscapeLaTeX(bullet))
		}
		projects = append(projects, ProjectSection{
			Name:    EscapeLaTeX(project.Name),
			Bullets: bullets,
		})
	}

	return &TemplateData{
		Name:        EscapeLaTeX(name),
		ContactLine: strings.Join(contactItems, ` $|$ `),
		Summary:     EscapeLaTeX(content.Summary),
		Experience:  EscapeLaTeX(content.ExperienceNarrative),
		SkillsLine:  strings.Join(skills, ", "),
		Projects:    projects,
	}
}

// executeTemplate renders the LaTeX source for sanitized data.
func executeTemplate(data *TemplateData) (string, error) {
	var out strings.Builder
	if err := resumeTmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute resume template",
			Cause:   err,
		}
	}
	return out.String(), nil
}

package types

// RenderMode indicates whether the final document came from the external
// compiler or the plain-text fallback.
type RenderMode string

// Render modes.
const (
	RenderCompiled RenderMode = "compiled"
	RenderFallback RenderMode = "fallback"
)

// MIMEType identifies the format of a rendered document.
type MIMEType string

// Supported output formats.
const (
	MIMEPDF       MIMEType = "application/pdf"
	MIMEPlainText MIMEType = "text/plain"
)

// RenderedDocument is the terminal artifact of the pipeline. It is
// constructed once per request and handed to the caller for delivery.
type RenderedDocument struct {
	Bytes      []byte     `json:"-"`
	MIMEType   MIMEType   `json:"mime_type"`
	RenderMode RenderMode `json:"render_mode"`
}

// Filename returns a download filename appropriate for the document format.
func (d *RenderedDocument) Filename() string {
	if d.MIMEType == MIMEPDF {
		return "resume.pdf"
	}
	return "resume.txt"
}

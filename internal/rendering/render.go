package rendering

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-pipeline/internal/toolexec"
	"github.com/jonathan/resume-pipeline/internal/types"
)

// Defaults for the rendering stage.
const (
	DefaultCompiler = "pdflatex"
	DefaultTimeout  = 30 * time.Second

	texFileName = "resume.tex"
	pdfFileName = "resume.pdf"
)

// Renderer compiles tailored content into a PDF via an external LaTeX
// toolchain, falling back to plain text when the compiler is unavailable,
// fails, or times out. It holds no per-request state and is safe for
// concurrent use.
type Renderer struct {
	compiler string
	timeout  time.Duration
	workRoot string
}

// Options configures a Renderer. Zero values use the defaults; WorkRoot
// defaults to the system temp directory.
type Options struct {
	Compiler string
	Timeout  time.Duration
	WorkRoot string
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	if opts.Compiler == "" {
		opts.Compiler = DefaultCompiler
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.WorkRoot == "" {
		opts.WorkRoot = os.TempDir()
	}
	return &Renderer{
		compiler: opts.Compiler,
		timeout:  opts.Timeout,
		workRoot: opts.WorkRoot,
	}
}

// Render sanitizes the content, attempts exactly one compiler run, and falls
// back to a plain-text rendering on any ordinary compiler failure. The two
// surfaced errors are SecurityError (compiled output escaped the scoped work
// directory; fatal, no fallback) and RenderError (both paths failed, which
// plain-text formatting makes unreachable in practice).
func (r *Renderer) Render(ctx context.Context, content *types.TailoredContent, ident Identity) (*types.RenderedDocument, error) {
	if content == nil {
		return nil, &RenderError{Message: "no content to render"}
	}

	data := buildTemplateData(content, ident)

	texSource, err := executeTemplate(data)
	if err == nil {
		pdfBytes, compileErr := r.compile(ctx, texSource)
		if compileErr == nil {
			return &types.RenderedDocument{
				Bytes:      pdfBytes,
				MIMEType:   types.MIMEPDF,
				RenderMode: types.RenderCompiled,
			}, nil
		}

		var secErr *SecurityError
		if errors.As(compileErr, &secErr) {
			return nil, secErr
		}
		// Ordinary compilation failure: fall through to plain text.
	}

	return &types.RenderedDocument{
		Bytes:      []byte(RenderPlainText(content, ident)),
		MIMEType:   types.MIMEPlainText,
		RenderMode: types.RenderFallback,
	}, nil
}

// compile writes the LaTeX source into a fresh per-request work directory,
// invokes the compiler once with a hard deadline, validates that the
// produced file stayed inside the work directory, and reads it back. The
// work directory is removed on every exit path.
func (r *Renderer) compile(ctx context.Context, texSource string) ([]byte, error) {
	workDir := filepath.Join(r.workRoot, "resume-render-"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, &RenderError{Message: "failed to create work directory", Cause: err}
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	texPath := filepath.Join(workDir, texFileName)
	if err := os.WriteFile(texPath, []byte(texSource), 0o644); err != nil {
		return nil, &RenderError{Message: "failed to write LaTeX source", Cause: err}
	}

	// -interaction=nonstopmode prevents interactive prompts;
	// -output-directory keeps all compiler artifacts inside the work dir.
	_, runErr := toolexec.Run(ctx, r.timeout, workDir, r.compiler,
		"-interaction=nonstopmode", "-output-directory", workDir, texPath)
	if runErr != nil {
		return nil, runErr
	}

	pdfPath := filepath.Join(workDir, pdfFileName)
	if _, err := os.Stat(pdfPath); err != nil {
		return nil, &RenderError{Message: "compiler exited cleanly but produced no output", Cause: err}
	}

	if err := validateOutputPath(workDir, pdfPath); err != nil {
		return nil, err
	}

	pdfBytes, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, &RenderError{Message: "failed to read compiled output", Cause: err}
	}
	return pdfBytes, nil
}

// validateOutputPath resolves path (following symlinks) and requires it to be
// a descendant of root. A path that resolves outside root indicates a
// traversal attempt, not an ordinary compiler failure.
func validateOutputPath(root, path string) error {
	resolvedRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return &RenderError{Message: "failed to resolve work directory", Cause: err}
	}
	resolvedPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return &RenderError{Message: "failed to resolve output path", Cause: err}
	}

	rel, err := filepath.Rel(resolvedRoot, resolvedPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return &SecurityError{AttemptedPath: resolvedPath}
	}
	return nil
}

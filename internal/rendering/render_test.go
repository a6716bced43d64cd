package rendering

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-pipeline/internal/types"
)

// writeScript creates an executable shell script standing in for the
// compiler. The script receives the standard arguments:
// -interaction=nonstopmode -output-directory <workDir> <texPath>.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-compiler.sh")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestRender_CompiledPath(t *testing.T) {
	compiler := writeScript(t, `printf '%%PDF-1.4 fake' > "$3/resume.pdf"`)
	r := New(Options{Compiler: compiler, WorkRoot: t.TempDir()})

	doc, err := r.Render(context.Background(), sampleContent(), Identity{Name: "Ada"})
	require.NoError(t, err)

	assert.Equal(t, types.RenderCompiled, doc.RenderMode)
	assert.Equal(t, types.MIMEPDF, doc.MIMEType)
	assert.Contains(t, string(doc.Bytes), "%PDF-1.4")
	assert.Equal(t, "resume.pdf", doc.Filename())
}

func TestRender_MissingCompilerFallsBack(t *testing.T) {
	r := New(Options{Compiler: "definitely-not-a-real-compiler-binary", WorkRoot: t.TempDir()})

	doc, err := r.Render(context.Background(), sampleContent(), Identity{Name: "Ada"})
	require.NoError(t, err)

	assert.Equal(t, types.RenderFallback, doc.RenderMode)
	assert.Equal(t, types.MIMEPlainText, doc.MIMEType)
	assert.Contains(t, string(doc.Bytes), "Ada")
	assert.Equal(t, "resume.txt", doc.Filename())
}

func TestRender_CompilerFailureFallsBack(t *testing.T) {
	compiler := writeScript(t, "exit 1")
	r := New(Options{Compiler: compiler, WorkRoot: t.TempDir()})

	doc, err := r.Render(context.Background(), sampleContent(), Identity{})
	require.NoError(t, err)
	assert.Equal(t, types.RenderFallback, doc.RenderMode)
}

func TestRender_NoOutputFallsBack(t *testing.T) {
	// Exits cleanly but never writes resume.pdf
	compiler := writeScript(t, "exit 0")
	r := New(Options{Compiler: compiler, WorkRoot: t.TempDir()})

	doc, err := r.Render(context.Background(), sampleContent(), Identity{})
	require.NoError(t, err)
	assert.Equal(t, types.RenderFallback, doc.RenderMode)
}

func TestRender_TimeoutFallsBack(t *testing.T) {
	compiler := writeScript(t, "sleep 5")
	r := New(Options{Compiler: compiler, Timeout: 100 * time.Millisecond, WorkRoot: t.TempDir()})

	start := time.Now()
	doc, err := r.Render(context.Background(), sampleContent(), Identity{})
	require.NoError(t, err)

	assert.Equal(t, types.RenderFallback, doc.RenderMode)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestRender_SymlinkEscapeIsFatal(t *testing.T) {
	outside := filepath.Join(t.TempDir(), "outside.pdf")
	require.NoError(t, os.WriteFile(outside, []byte("%PDF-1.4 outside"), 0o644))

	// Plants a symlink where the output should be instead of a real file
	compiler := writeScript(t, `ln -s "`+outside+`" "$3/resume.pdf"`)
	r := New(Options{Compiler: compiler, WorkRoot: t.TempDir()})

	doc, err := r.Render(context.Background(), sampleContent(), Identity{})
	assert.Nil(t, doc)

	var secErr *SecurityError
	require.ErrorAs(t, err, &secErr)
	// The message never reveals the resolved path
	assert.NotContains(t, err.Error(), "outside.pdf")
	assert.Contains(t, secErr.AttemptedPath, "outside.pdf")
}

func TestRender_NilContent(t *testing.T) {
	r := New(Options{})
	doc, err := r.Render(context.Background(), nil, Identity{})
	assert.Nil(t, doc)

	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRender_WorkDirCleanedUp(t *testing.T) {
	workRoot := t.TempDir()
	compiler := writeScript(t, `printf '%%PDF-1.4' > "$3/resume.pdf"`)
	r := New(Options{Compiler: compiler, WorkRoot: workRoot})

	_, err := r.Render(context.Background(), sampleContent(), Identity{})
	require.NoError(t, err)

	entries, err := os.ReadDir(workRoot)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestValidateOutputPath(t *testing.T) {
	root := t.TempDir()
	inside := filepath.Join(root, "resume.pdf")
	require.NoError(t, os.WriteFile(inside, []byte("x"), 0o644))

	assert.NoError(t, validateOutputPath(root, inside))

	outside := filepath.Join(t.TempDir(), "escape.pdf")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))
	link := filepath.Join(root, "link.pdf")
	require.NoError(t, os.Symlink(outside, link))

	err := validateOutputPath(root, link)
	var secErr *SecurityError
	require.ErrorAs(t, err, &secErr)
}

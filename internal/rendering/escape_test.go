package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"ampersand", "R&D", `R\&D`},
		{"percent", "50% faster", `50\% faster`},
		{"dollar", "$10 saved", `\$10 saved`},
		{"hash", "issue #42", `issue \#42`},
		{"underscore", "my_repo", `my\_repo`},
		{"braces", "{config}", `\{config\}`},
		{"tilde", "~user", `\textasciitilde{}user`},
		{"caret", "x^2", `x\textasciicircum{}2`},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"mixed", "50% faster & $10 saved", `50\% faster \& \$10 saved`},
		{"unicode untouched", "naïve café", "naïve café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLaTeX(tt.input))
		})
	}
}

func TestEscapeLaTeX_InjectionNeutralized(t *testing.T) {
	malicious := `\input{/etc/passwd}`
	escaped := EscapeLaTeX(malicious)
	assert.NotContains(t, escaped, `\input`)
	assert.Contains(t, escaped, `\textbackslash{}input`)
}

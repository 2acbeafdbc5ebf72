package csscomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldTrigger(t *testing.T) {
	tests := []struct {
		name     string
		language string
		prefix   string
		want     bool
	}{
		{name: "html class attribute", language: "html", prefix: `<div class="`, want: true},
		{name: "html no attribute", language: "html", prefix: `<div>`, want: false},
		{name: "html className is not html", language: "html", prefix: `<div className=`, want: false},
		{name: "html mid attribute", language: "html", prefix: `<div class="flex ite`, want: true},
		{name: "html past closing quote still triggers", language: "html", prefix: `<div class="a">text`, want: true},
		{name: "jsx className", language: "javascriptreact", prefix: `<div className="`, want: true},
		{name: "tsx className", language: "typescriptreact", prefix: `return <span className="`, want: true},
		{name: "jsx html attribute accepted", language: "javascriptreact", prefix: `<div class="`, want: true},
		{name: "js template", language: "javascript", prefix: "el.innerHTML = `<p class=\"", want: true},
		{name: "ts plain code", language: "typescript", prefix: `const x = 1`, want: false},
		{name: "single quotes do not trigger", language: "html", prefix: `<div class='`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldTrigger(tt.language, tt.prefix))
		})
	}
}

func TestShouldTrigger_UnsupportedLanguages(t *testing.T) {
	lines := []string{
		"",
		`<div class="`,
		`<div className="`,
		`class="class="`,
	}

	for _, lang := range []string{"css", "go", "markdown", "vue", "HTML", ""} {
		for _, line := range lines {
			assert.False(t, ShouldTrigger(lang, line), "language %q line %q", lang, line)
		}
	}
}

func TestIsSupportedLanguage(t *testing.T) {
	for _, lang := range SupportedLanguages {
		assert.True(t, IsSupportedLanguage(lang), lang)
	}
	assert.False(t, IsSupportedLanguage("css"))
	assert.False(t, IsSupportedLanguage("svelte"))
}

func TestOpenTag(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{prefix: `<button class="`, want: "button"},
		{prefix: `  <div class="`, want: "div"},
		{prefix: `<a>`, want: "a"},
		{prefix: `<span`, want: ""}, // needs whitespace or '>'
		{prefix: `<div><span class="`, want: "span"},
		{prefix: `<div><span`, want: "div"},
		{prefix: `no tags here`, want: ""},
		{prefix: `</div >`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			require.Equal(t, tt.want, OpenTag(tt.prefix))
		})
	}
}

func TestWordAt(t *testing.T) {
	line := `<div class="text-sm hover:bg-gray-100">`

	tests := []struct {
		name string
		col  int
		want string
	}{
		{name: "start of word", col: 12, want: "text-sm"},
		{name: "inside word", col: 15, want: "text-sm"},
		{name: "end of word", col: 19, want: "text-sm"},
		{name: "variant with colon", col: 25, want: "hover:bg-gray-100"},
		{name: "tag name", col: 2, want: "div"},
		{name: "beyond line", col: 200, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordAt(line, tt.col))
		})
	}
}

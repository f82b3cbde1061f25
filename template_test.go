package okie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderContent(t *testing.T) {
	t.Parallel()
	ctx := Context{Name: "proj"}
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"none", "no placeholders here", "no placeholders here"},
		{"one", `name = "{{name}}"`, `name = "proj"`},
		{"many", "{{name}}/{{name}}-{{name}}", "proj/proj-proj"},
		{"path token untouched", "$name stays", "$name stays"},
		{"spaced is not a token", "{{ name }}", "{{ name }}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RenderContent(tt.in, ctx))
		})
	}
}

func TestRenderContent_AllOccurrences(t *testing.T) {
	t.Parallel()
	ctx := Context{Name: "V"}
	for n := 0; n < 20; n++ {
		in := strings.Repeat("a{{name}}b", n)
		got := RenderContent(in, ctx)
		assert.Equal(t, strings.Repeat("aVb", n), got)
		assert.NotContains(t, got, ContentPlaceholder)
	}
}

func TestRenderPath(t *testing.T) {
	t.Parallel()
	ctx := Context{Name: "proj"}
	assert.Equal(t, "a/b/proj.txt", RenderPath("a/b/$name.txt", ctx))
	assert.Equal(t, "proj/proj.go", RenderPath("$name/$name.go", ctx))
	assert.Equal(t, "{{name}}.txt", RenderPath("{{name}}.txt", ctx))
}

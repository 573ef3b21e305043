package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_FieldOrder_IsInsertionOrder(t *testing.T) {
	doc := NewDoc().
		QuotedStr("title", "Chapter 1 — Basics").
		Str("parent", "Terraform").
		Int("nav_order", 1)

	out, err := doc.Render()
	require.NoError(t, err)
	require.Equal(t, "---\ntitle: \"Chapter 1 — Basics\"\nparent: Terraform\nnav_order: 1\n---\n", string(out))
}

func TestRender_QuotedTitle_AlwaysDoubleQuoted(t *testing.T) {
	out, err := NewDoc().QuotedStr("title", "Notes").Render()
	require.NoError(t, err)
	require.Equal(t, "---\ntitle: \"Notes\"\n---\n", string(out))
}

func TestRender_BoolFields_RenderedLowercase(t *testing.T) {
	out, err := NewDoc().
		Str("title", "Terraform").
		Bool("has_children", false).
		Bool("nav_exclude", true).
		Render()
	require.NoError(t, err)
	require.Equal(t, "---\ntitle: Terraform\nhas_children: false\nnav_exclude: true\n---\n", string(out))
}

func TestRender_IndexShape_MatchesContract(t *testing.T) {
	out, err := NewDoc().
		Str("title", "Terraform").
		Int("nav_order", 20).
		Bool("has_children", true).
		Bool("toc", false).
		Render()
	require.NoError(t, err)
	require.Equal(t, "---\ntitle: Terraform\nnav_order: 20\nhas_children: true\ntoc: false\n---\n", string(out))
}

// Package markdown provides small Markdown analysis helpers built on Goldmark.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// LinkTitle extracts the text of the first inline link in a Markdown snippet,
// typically a TOC entry of the form "- [Title](file.md)".
//
// ok is false when the snippet contains no link; callers fall back to the raw
// snippet for ordering purposes.
func LinkTitle(snippet string) (title string, ok bool) {
	source := []byte(snippet)
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering || ok {
			return gmast.WalkContinue, nil
		}
		if link, isLink := n.(*gmast.Link); isLink {
			title = nodeText(link, source)
			ok = true
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title, ok
}

func nodeText(n gmast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, isText := c.(*gmast.Text); isText {
			sb.Write(t.Segment.Value(source))
			continue
		}
		sb.WriteString(nodeText(c, source))
	}
	return sb.String()
}

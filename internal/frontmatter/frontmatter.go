// Package frontmatter builds the YAML front matter blocks injected into
// synced notes and generated index pages.
package frontmatter

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// Doc is an order-preserving front matter document. Field order is part of
// the output contract (title first, then parent, nav_order, ...), so a plain
// map cannot serve here.
type Doc struct {
	node yaml.Node
}

// NewDoc creates an empty front matter document.
func NewDoc() *Doc {
	return &Doc{node: yaml.Node{Kind: yaml.MappingNode}}
}

// Str appends a plain string field.
func (d *Doc) Str(key, value string) *Doc {
	return d.add(key, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value})
}

// QuotedStr appends a string field rendered with double quotes regardless of
// content.
func (d *Doc) QuotedStr(key, value string) *Doc {
	return d.add(key, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle})
}

// Int appends an integer field.
func (d *Doc) Int(key string, value int) *Doc {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int"}
	if err := n.Encode(value); err != nil {
		return d
	}
	return d.add(key, n)
}

// Bool appends a boolean field.
func (d *Doc) Bool(key string, value bool) *Doc {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"}
	if value {
		n.Value = "true"
	}
	return d.add(key, n)
}

func (d *Doc) add(key string, value *yaml.Node) *Doc {
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	d.node.Content = append(d.node.Content, keyNode, value)
	return d
}

// Render serializes the document as a `---` delimited block with a trailing
// newline after the closing delimiter.
func (d *Doc) Render() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&d.node); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteString("---\n")
	return buf.Bytes(), nil
}

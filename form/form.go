// Package form extracts the typed control hierarchy from a parsed form
// file. It reads the concrete syntax tree; nothing here touches the source
// text directly.
package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vb6tools/vbcst/diag"
	"github.com/vb6tools/vbcst/parser"
	"github.com/vb6tools/vbcst/source"
	"github.com/vb6tools/vbcst/syntax"
)

// Property is one serialized setting on a control: a scalar Value, or a
// named Group of nested properties (a BeginProperty…EndProperty block).
type Property struct {
	Name  string
	Value string
	Group []Property
}

// IsGroup reports whether the property is a nested group.
func (p Property) IsGroup () bool {
	return p.Group != nil
}

// Control is one node of a form's control tree. Menus are kept apart from
// the other nested controls, as menu entries nest under their parent menu
// rather than the form surface.
type Control struct {
	Namespace  string
	Kind       string
	Name       string
	Properties []Property
	Controls   []*Control
	Menus      []*Control
}

// Property returns the first scalar property with the given name,
// case-insensitively, or the zero value.
func (c *Control) Property (name string) (Property, bool) {
	for _, p := range c.Properties {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Property{}, false
}

// Parse parses content as a form file and extracts the top-level control.
// The control is nil when the file has no parseable control block; the
// diagnostics are returned either way.
func Parse (name string, content []byte) (*Control, diag.List) {
	tree, diags := parser.ParseForm(source.New(name, content))
	return FromTree(tree), diags
}

// FromTree extracts the top-level control from an already parsed form tree.
func FromTree (tree *syntax.Tree) *Control {
	block := tree.Root.FirstChild(syntax.PropertiesBlock)
	if block == nil {
		return nil
	}
	return extractControl(block)
}

func extractControl (block *syntax.Node) *Control {
	c := &Control{}
	if t := block.FirstChild(syntax.PropertiesType); t != nil {
		full := significantText(t)
		if i := strings.Index(full, "."); i >= 0 {
			c.Namespace, c.Kind = full[:i], full[i+1:]
		} else {
			c.Kind = full
		}
	}
	if n := block.FirstChild(syntax.PropertiesName); n != nil {
		c.Name = significantText(n)
	}
	for _, child := range block.Children {
		switch child.Kind {
		case syntax.Property:
			c.Properties = append(c.Properties, extractProperty(child))
		case syntax.PropertyGroup:
			c.Properties = append(c.Properties, extractGroup(child))
		case syntax.PropertiesBlock:
			nested := extractControl(child)
			if strings.EqualFold(nested.Kind, "Menu") {
				c.Menus = append(c.Menus, nested)
			} else {
				c.Controls = append(c.Controls, nested)
			}
		}
	}
	return c
}

func extractProperty (node *syntax.Node) Property {
	p := Property{}
	if k := node.FirstChild(syntax.PropertyKey); k != nil {
		p.Name = significantText(k)
	}
	if v := node.FirstChild(syntax.PropertyValue); v != nil {
		p.Value = significantText(v)
	}
	return p
}

func extractGroup (node *syntax.Node) Property {
	p := Property{Group: []Property{}}
	if n := node.FirstChild(syntax.PropertyGroupName); n != nil {
		p.Name = significantText(n)
	}
	for _, child := range node.Children {
		switch child.Kind {
		case syntax.Property:
			p.Group = append(p.Group, extractProperty(child))
		case syntax.PropertyGroup:
			p.Group = append(p.Group, extractGroup(child))
		}
	}
	return p
}

// significantText concatenates a node's non-trivia leaf texts.
func significantText (n *syntax.Node) string {
	var sb strings.Builder
	n.Walk(func (d *syntax.Node) bool {
		if d.Token != nil && !d.Token.IsTrivia() {
			sb.WriteString(d.Token.Text)
		}
		return true
	})
	return strings.TrimSpace(sb.String())
}

// Resource is a reference into a companion binary resource file, such as
// the `"Form1.frx":0000` values icon and picture properties carry. The blob
// itself is resolved outside this package.
type Resource struct {
	File   string
	Offset int64
}

// SplitResource splits a serialized resource reference into its file name
// and hexadecimal byte offset.
func SplitResource (value string) (Resource, error) {
	i := strings.LastIndex(value, ":")
	if i < 0 {
		return Resource{}, errors.New(diag.NoColonForOffsetSplit.Message())
	}
	file := strings.Trim(value[:i], `"`)
	offset, err := strconv.ParseInt(value[i+1:], 16, 64)
	if err != nil {
		return Resource{}, fmt.Errorf("resource offset %q is not hexadecimal", value[i+1:])
	}
	return Resource{File: file, Offset: offset}, nil
}

// Package project extracts a typed view of a parsed project manifest:
// references, file lists, and startup configuration, in file order.
package project

import (
	"strings"

	"github.com/vb6tools/vbcst/diag"
	"github.com/vb6tools/vbcst/parser"
	"github.com/vb6tools/vbcst/source"
	"github.com/vb6tools/vbcst/syntax"
)

// Reference is one Reference= line. Compiled references carry a registry
// uuid and version; subproject references (*\A) carry only the path.
type Reference struct {
	Compiled    bool
	Uuid        string
	Version     string
	Unknown     string
	Path        string
	Description string
}

// Object is one Object= line: a licensed control dependency.
type Object struct {
	Uuid    string
	Version string
	Path    string
}

// NamedPath is a "Name; Path" pair from a Module= or Class= line.
type NamedPath struct {
	Name string
	Path string
}

// KeyValue is a configuration property line that needs no further
// structure, such as Startup or Command32.
type KeyValue struct {
	Key   string
	Value string
}

// Project is the typed view of one manifest.
type Project struct {
	Type          string
	References    []Reference
	Objects       []Object
	Modules       []NamedPath
	Classes       []NamedPath
	Forms         []string
	Designers     []string
	UserControls  []string
	UserDocuments []string
	RelatedDocs   []string
	PropertyPages []string
	Properties    []KeyValue
	Sections      []string
}

// Property returns the first property with the given key,
// case-insensitively.
func (p *Project) Property (key string) (string, bool) {
	for _, kv := range p.Properties {
		if strings.EqualFold(kv.Key, key) {
			return kv.Value, true
		}
	}
	return "", false
}

// Parse parses content as a project manifest and extracts the typed view.
func Parse (name string, content []byte) (*Project, diag.List) {
	tree, diags := parser.ParseProject(source.New(name, content))
	return FromTree(tree), diags
}

// FromTree extracts the typed view from an already parsed manifest tree.
func FromTree (tree *syntax.Tree) *Project {
	p := &Project{}
	for _, line := range tree.Root.Children {
		key, value := splitLine(line)
		switch line.Kind {
		case syntax.ProjectTypeLine:
			p.Type = value
		case syntax.ProjectReferenceLine:
			p.References = append(p.References, parseReference(value))
		case syntax.ProjectObjectLine:
			p.Objects = append(p.Objects, parseObject(value))
		case syntax.ProjectModuleLine:
			p.Modules = append(p.Modules, splitNamedPath(value))
		case syntax.ProjectClassLine:
			p.Classes = append(p.Classes, splitNamedPath(value))
		case syntax.ProjectFormLine:
			p.Forms = append(p.Forms, value)
		case syntax.ProjectDesignerLine:
			p.Designers = append(p.Designers, value)
		case syntax.ProjectUserControlLine:
			p.UserControls = append(p.UserControls, value)
		case syntax.ProjectUserDocumentLine:
			p.UserDocuments = append(p.UserDocuments, value)
		case syntax.ProjectRelatedDocLine:
			p.RelatedDocs = append(p.RelatedDocs, value)
		case syntax.ProjectPropertyPageLine:
			p.PropertyPages = append(p.PropertyPages, value)
		case syntax.ProjectPropertyLine:
			p.Properties = append(p.Properties, KeyValue{Key: key, Value: value})
		case syntax.ProjectSectionHeader:
			section := strings.TrimSpace(lineText(line))
			section = strings.TrimSuffix(strings.TrimPrefix(section, "["), "]")
			p.Sections = append(p.Sections, section)
		}
	}
	return p
}

// splitLine pulls the key and value out of one "Key=Value" line node.
// Interior spaces in the value survive; reference descriptions depend on
// them.
func splitLine (line *syntax.Node) (key, value string) {
	text := lineText(line)
	i := strings.Index(text, "=")
	if i < 0 {
		return strings.TrimSpace(text), ""
	}
	return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:])
}

// parseReference splits a compiled reference of the form
// *\G{uuid}#version#unknown#path#description. Anything else, including
// subproject references, keeps only the raw path.
func parseReference (value string) Reference {
	if !strings.HasPrefix(value, `*\G`) {
		return Reference{Path: strings.TrimPrefix(value, `*\A`)}
	}
	r := Reference{Compiled: true}
	sections := strings.Split(strings.TrimPrefix(value, `*\G`), "#")
	if len(sections) > 0 {
		r.Uuid = strings.Trim(sections[0], "{}")
	}
	if len(sections) > 1 {
		r.Version = sections[1]
	}
	if len(sections) > 2 {
		r.Unknown = sections[2]
	}
	if len(sections) > 3 {
		r.Path = sections[3]
	}
	if len(sections) > 4 {
		r.Description = sections[4]
	}
	return r
}

// parseObject splits an object line of the form {uuid}#version#n; path.
func parseObject (value string) Object {
	o := Object{}
	rest := value
	if i := strings.Index(rest, ";"); i >= 0 {
		o.Path = strings.TrimSpace(rest[i+1:])
		rest = rest[:i]
	}
	sections := strings.Split(rest, "#")
	if len(sections) > 0 {
		o.Uuid = strings.Trim(sections[0], "{}")
	}
	if len(sections) > 1 {
		o.Version = sections[1]
	}
	return o
}

func splitNamedPath (value string) NamedPath {
	i := strings.Index(value, ";")
	if i < 0 {
		return NamedPath{Name: value}
	}
	return NamedPath{
		Name: strings.TrimSpace(value[:i]),
		Path: strings.TrimSpace(value[i+1:]),
	}
}

// lineText reconstructs a line node's text without its terminating newline.
func lineText (n *syntax.Node) string {
	var sb strings.Builder
	n.Walk(func (d *syntax.Node) bool {
		if d.Token != nil && d.Token.Kind != syntax.Newline {
			sb.WriteString(d.Token.Text)
		}
		return true
	})
	return sb.String()
}

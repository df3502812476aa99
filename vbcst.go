// Package vbcst parses legacy VB6-family source files into lossless
// concrete syntax trees. Modules (.bas), classes (.cls), forms (.frm), and
// project manifests (.vbp) each get their own grammar; concatenating the
// leaf tokens of any resulting tree reproduces the input byte-for-byte.
package vbcst

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/vb6tools/vbcst/diag"
	"github.com/vb6tools/vbcst/parser"
	"github.com/vb6tools/vbcst/source"
	"github.com/vb6tools/vbcst/syntax"
)

// FileKind selects the grammar for a file. It is resolved once, from the
// file extension, at the public entry point.
type FileKind int

const (
	KindUnknown FileKind = iota
	KindModule
	KindClass
	KindForm
	KindProject
)

func (k FileKind) String () string {
	switch k {
	case KindModule:
		return "module"
	case KindClass:
		return "class"
	case KindForm:
		return "form"
	case KindProject:
		return "project"
	}
	return "unknown"
}

// DetectKind maps a file path to its grammar by extension.
func DetectKind (path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bas":
		return KindModule
	case ".cls":
		return KindClass
	case ".frm":
		return KindForm
	case ".vbp":
		return KindProject
	}
	return KindUnknown
}

// ParseRecover parses content under the grammar DetectKind selects for
// name, returning a best-effort tree and every diagnostic found. Files with
// an unrecognized extension parse under the module grammar.
func ParseRecover (name string, content []byte) (*syntax.Tree, diag.List) {
	src := source.New(name, content)
	switch DetectKind(name) {
	case KindClass:
		return parser.ParseClass(src)
	case KindForm:
		return parser.ParseForm(src)
	case KindProject:
		return parser.ParseProject(src)
	}
	return parser.ParseModule(src)
}

// Parse is the strict entry point: the error is non-nil exactly when
// parsing produced diagnostics, and carries the first one. The tree is
// returned either way.
func Parse (name string, content []byte) (*syntax.Tree, error) {
	tree, diags := ParseRecover(name, content)
	if len(diags) > 0 {
		return tree, errors.New(diags[0].Error())
	}
	return tree, nil
}

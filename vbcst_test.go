package vbcst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vb6tools/vbcst/syntax"
)

func TestDetectKind (t *testing.T) {
	cases := []struct {
		path string
		want FileKind
	}{
		{"modMain.bas", KindModule},
		{"CWidget.cls", KindClass},
		{"frmMain.frm", KindForm},
		{"Sample.vbp", KindProject},
		{"SHOUTY.BAS", KindModule},
		{"src\\ui\\Form1.Frm", KindForm},
		{"readme.txt", KindUnknown},
		{"noextension", KindUnknown},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DetectKind(c.path), c.path)
	}
}

func TestFileKindString (t *testing.T) {
	assert.Equal(t, "module", KindModule.String())
	assert.Equal(t, "project", KindProject.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestParseCleanModule (t *testing.T) {
	text := "Option Explicit\r\n\r\nSub Main()\r\n    Beep\r\nEnd Sub\r\n"
	tree, err := Parse("modMain.bas", []byte(text))
	require.NoError(t, err)
	require.NotNil(t, tree)
	assert.Equal(t, text, tree.Root.Text())
}

func TestParseReportsFirstDiagnostic (t *testing.T) {
	text := "Startup=\"frmMain\"\r\nType=Exe\r\n"
	tree, err := Parse("Sample.vbp", []byte(text))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'Type'")
	// The tree is still usable for recovery tooling.
	require.NotNil(t, tree)
	assert.Equal(t, text, tree.Root.Text())
}

func TestParseRecoverDispatch (t *testing.T) {
	tree, diags := ParseRecover("Sample.vbp", []byte("Type=Exe\r\n"))
	assert.Empty(t, diags)
	assert.NotNil(t, tree.Root.FirstChild(syntax.ProjectTypeLine))

	tree, _ = ParseRecover("CWidget.cls", []byte("Option Explicit\r\n"))
	assert.NotNil(t, tree.Root.FirstChild(syntax.OptionStatement))

	// Unknown extensions fall back to the module grammar.
	tree, diags = ParseRecover("scratch.txt", []byte("Dim x As Long\r\n"))
	assert.Empty(t, diags)
	assert.NotNil(t, tree.Root.FirstChild(syntax.DimStatement))
}

func TestRoundTripAcrossKinds (t *testing.T) {
	cases := map[string]string{
		"m.bas": "' header\r\nPublic Const N = 3\r\n",
		"c.cls": "VERSION 1.0 CLASS\r\nBEGIN\r\n  MultiUse = -1\r\nEND\r\n",
		"f.frm": "VERSION 5.00\r\nBegin VB.Form Form1 \r\nEnd\r\n",
		"p.vbp": "Type=OleDll\r\nName=\"Lib\"\r\n",
	}
	for name, text := range cases {
		tree, _ := ParseRecover(name, []byte(text))
		assert.Equal(t, text, tree.Root.Text(), name)
	}
}

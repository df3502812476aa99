package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vb6tools/vbcst/diag"
	"github.com/vb6tools/vbcst/source"
	"github.com/vb6tools/vbcst/syntax"
)

func parseProjectText (t *testing.T, text string) (*syntax.Tree, diag.List) {
	t.Helper()
	return ParseProject(source.New("test.vbp", []byte(text)))
}

const sampleProject = "Type=Exe\r\n" +
	"Reference=*\\G{00020430-0000-0000-C000-000000000046}#2.0#0#C:\\Windows\\stdole2.tlb#OLE Automation\r\n" +
	"Form=frmMain.frm\r\n" +
	"Module=Helpers; Helpers.bas\r\n" +
	"Class=Thing; Thing.cls\r\n" +
	"Startup=\"frmMain\"\r\n" +
	"IconForm=\"frmMain\"\r\n" +
	"MajorVer=1\r\n" +
	"MinorVer=0\r\n" +
	"RevisionVer=42\r\n" +
	"Name=\"Sample\"\r\n" +
	"[MS Transaction Server]\r\n" +
	"AutoRefresh=1\r\n"

func TestProjectRoundTrip (t *testing.T) {
	tree, diags := parseProjectText(t, sampleProject)
	require.Empty(t, diags)
	assert.Equal(t, sampleProject, tree.Text())
}

func TestProjectLineKinds (t *testing.T) {
	tree, _ := parseProjectText(t, sampleProject)

	for _, kind := range []syntax.Kind{
		syntax.ProjectTypeLine, syntax.ProjectReferenceLine,
		syntax.ProjectFormLine, syntax.ProjectModuleLine,
		syntax.ProjectClassLine, syntax.ProjectSectionHeader,
		syntax.ProjectPropertyLine,
	} {
		assert.NotNil(t, findKind(tree.Root, kind), "missing %v", kind)
	}
}

func TestFirstLineNotProject (t *testing.T) {
	text := "Startup=\"frmMain\"\r\nType=Exe\r\nForm=frmMain.frm\r\n"
	tree, diags := parseProjectText(t, text)
	require.True(t, diags.Has(diag.FirstLineNotProject))

	// Later lines still classify.
	assert.NotNil(t, findKind(tree.Root, syntax.ProjectTypeLine))
	assert.NotNil(t, findKind(tree.Root, syntax.ProjectFormLine))
	assert.Equal(t, text, tree.Text())
}

func TestFirstLineNotProjectOddShapes (t *testing.T) {
	// A section header or an unsplittable line in first position is still
	// not a Type entry.
	_, diags := parseProjectText(t, "[MS Transaction Server]\r\nType=Exe\r\n")
	assert.True(t, diags.Has(diag.FirstLineNotProject))

	_, diags = parseProjectText(t, "JustSomeWords\r\nType=Exe\r\n")
	assert.True(t, diags.Has(diag.FirstLineNotProject))
	assert.True(t, diags.Has(diag.NoEqualSplit))

	_, diags = parseProjectText(t, "Type=Exe\r\n[MS Transaction Server]\r\n")
	assert.False(t, diags.Has(diag.FirstLineNotProject))
}

func TestProjectTypeUnknown (t *testing.T) {
	_, diags := parseProjectText(t, "Type=Widget\r\n")
	assert.True(t, diags.Has(diag.ProjectTypeUnknown))
}

func TestReferenceSectionCounts (t *testing.T) {
	base := "Type=Exe\r\n"

	_, diags := parseProjectText(t, base+
		"Reference=*\\G{00000000-0000-0000-0000-000000000000}#1.0#0#a.tlb#Desc#extra\r\n")
	assert.True(t, diags.Has(diag.ReferenceExtraSections))

	_, diags = parseProjectText(t, base+
		"Reference=*\\G{00000000-0000-0000-0000-000000000000}#1.0#0\r\n")
	assert.True(t, diags.Has(diag.ReferenceMissingSections))

	_, diags = parseProjectText(t, base+
		"Reference=*\\A..\\Sub\\Sub.vbp\r\n")
	assert.Empty(t, diags)
}

func TestModuleLineNeedsSemicolon (t *testing.T) {
	_, diags := parseProjectText(t, "Type=Exe\r\nModule=Helpers Helpers.bas\r\n")
	assert.True(t, diags.Has(diag.NoSemicolonSplit))
}

func TestMissingEquals (t *testing.T) {
	tree, diags := parseProjectText(t, "Type=Exe\r\nJustSomeWords\r\n")
	assert.True(t, diags.Has(diag.NoEqualSplit))
	assert.NotNil(t, findKind(tree.Root, syntax.ErrorNode))
	assert.Equal(t, "Type=Exe\r\nJustSomeWords\r\n", tree.Text())
}

func TestUnknownKey (t *testing.T) {
	_, diags := parseProjectText(t, "Type=Exe\r\nFrobnicate=1\r\n")
	assert.True(t, diags.Has(diag.LineTypeUnknown))
}

func TestNumericPropertyValidation (t *testing.T) {
	_, diags := parseProjectText(t, "Type=Exe\r\nMajorVer=one\r\n")
	assert.True(t, diags.Has(diag.MajorVersionUnparsable))

	_, diags = parseProjectText(t, "Type=Exe\r\nThreadingModel=maybe\r\n")
	assert.True(t, diags.Has(diag.ThreadingModelUnparsable))

	_, diags = parseProjectText(t, "Type=Exe\r\nThreadingModel=7\r\n")
	assert.True(t, diags.Has(diag.ThreadingModelInvalid))

	_, diags = parseProjectText(t, "Type=Exe\r\nCompilationType=5\r\n")
	assert.True(t, diags.Has(diag.CompilationTypeUnparsable))
}

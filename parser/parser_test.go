package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vb6tools/vbcst/diag"
	"github.com/vb6tools/vbcst/source"
	"github.com/vb6tools/vbcst/syntax"
)

func parseModuleText (t *testing.T, text string) (*syntax.Tree, diag.List) {
	t.Helper()
	return ParseModule(source.New("test.bas", []byte(text)))
}

func parseClassText (t *testing.T, text string) (*syntax.Tree, diag.List) {
	t.Helper()
	return ParseClass(source.New("test.cls", []byte(text)))
}

// findKind returns the first node of the given kind in depth-first order.
func findKind (root *syntax.Node, kind syntax.Kind) *syntax.Node {
	var found *syntax.Node
	root.Walk(func (n *syntax.Node) bool {
		if found != nil {
			return false
		}
		if n.Kind == kind {
			found = n
			return false
		}
		return true
	})
	return found
}

func countKind (root *syntax.Node, kind syntax.Kind) int {
	count := 0
	root.Walk(func (n *syntax.Node) bool {
		if n.Kind == kind {
			count++
		}
		return true
	})
	return count
}

func TestModuleRoundTrip (t *testing.T) {
	samples := []string{
		"",
		"Option Explicit\r\n",
		"Dim x As Integer\n",
		"Sub Greet()\n    MsgBox \"hi\"\nEnd Sub\n",
		"Function Add(a, b)\n  Add = a + b\nEnd Function",
		"If x Then y = 1 Else y = 2\n",
		"Private Const N As Long = 10\r\nPublic g_count As Integer\r\n",
		"' leading comment\n\nSub T()\n  x = 1: y = 2\nEnd Sub\n",
		"Sub C()\n  total = a _\n    + b\nEnd Sub\n",
		"%%% not a statement\n",
	}
	for _, sample := range samples {
		tree, _ := parseModuleText(t, sample)
		assert.Equal(t, sample, tree.Text(), "sample %q", sample)
	}
}

func TestSubStructure (t *testing.T) {
	tree, diags := parseModuleText(t, "Sub Greet()\n    MsgBox \"hi\"\nEnd Sub\n")
	require.Empty(t, diags)

	require.Len(t, tree.Root.Children, 1)
	sub := tree.Root.Children[0]
	assert.Equal(t, syntax.SubStatement, sub.Kind)
	assert.NotNil(t, sub.FirstChild(syntax.ParameterList))

	body := sub.FirstChild(syntax.CodeBlock)
	require.NotNil(t, body)
	call := body.FirstChild(syntax.CallStatement)
	require.NotNil(t, call)
	assert.Equal(t, "MsgBox \"hi\"\n", call.Text())
}

func TestFunctionParameters (t *testing.T) {
	tree, diags := parseModuleText(t,
		"Function Area(ByVal w As Double, Optional h As Double = 1) As Double\nEnd Function\n")
	require.Empty(t, diags)

	fn := tree.Root.Children[0]
	assert.Equal(t, syntax.FunctionStatement, fn.Kind)
	params := fn.FirstChild(syntax.ParameterList)
	require.NotNil(t, params)
	list := params.ChildrenOfKind(syntax.Parameter)
	require.Len(t, list, 2)
	assert.Equal(t, "ByVal w As Double", list[0].Text())
	assert.Equal(t, "Optional h As Double = 1", list[1].Text())
}

func TestExitStatement (t *testing.T) {
	tree, diags := parseModuleText(t, "Sub A\nExit Sub\nEnd Sub\n")
	require.Empty(t, diags)
	exit := findKind(tree.Root, syntax.ExitStatement)
	require.NotNil(t, exit)
	assert.Equal(t, "Exit Sub\n", exit.Text())

	tree, diags = parseModuleText(t, "Sub A\nExit Foo\nEnd Sub\n")
	require.Len(t, diags, 1)
	assert.Equal(t, diag.KeywordNotFound, diags[0].Code)
	exit = findKind(tree.Root, syntax.ExitStatement)
	require.NotNil(t, exit)
	assert.Equal(t, "Exit Foo\n", exit.Text())
}

func TestResumePreservesLabel (t *testing.T) {
	text := "Sub A\nOn Error GoTo CleanUp\nResume Next\nResume CleanUp\nCleanUp:\nEnd Sub\n"
	tree, diags := parseModuleText(t, text)
	require.Empty(t, diags)
	assert.Equal(t, text, tree.Text())

	assert.NotNil(t, findKind(tree.Root, syntax.OnErrorStatement))
	assert.Equal(t, 2, countKind(tree.Root, syntax.ResumeStatement))
	label := findKind(tree.Root, syntax.LabelStatement)
	require.NotNil(t, label)
	assert.Equal(t, "CleanUp:", label.Text())

	body := findKind(tree.Root, syntax.CodeBlock)
	resumes := body.ChildrenOfKind(syntax.ResumeStatement)
	require.Len(t, resumes, 2)
	assert.Equal(t, "Resume Next\n", resumes[0].Text())
	assert.Equal(t, "Resume CleanUp\n", resumes[1].Text())
}

func TestAssignmentAndSet (t *testing.T) {
	tree, diags := parseModuleText(t, "x = 1 + 2\nSet obj = New Thing\n")
	require.Empty(t, diags)

	asg := findKind(tree.Root, syntax.AssignmentStatement)
	require.NotNil(t, asg)
	assert.NotNil(t, asg.FirstChild(syntax.BinaryExpression))

	set := findKind(tree.Root, syntax.SetStatement)
	require.NotNil(t, set)
	assert.NotNil(t, findKind(set, syntax.NewExpression))
}

func TestImplicitCallWithArguments (t *testing.T) {
	tree, diags := parseModuleText(t, "Sub T()\n  Log \"msg\", 2\nEnd Sub\n")
	require.Empty(t, diags)
	call := findKind(tree.Root, syntax.CallStatement)
	require.NotNil(t, call)
	assert.Equal(t, "Log \"msg\", 2\n", call.Text())
}

func TestErrorRecoveryKeepsGoing (t *testing.T) {
	tree, diags := parseModuleText(t, "Dim x\n%%%\nDim y\n")
	require.True(t, diags.Has(diag.Unparsable))
	assert.Equal(t, "Dim x\n%%%\nDim y\n", tree.Text())

	require.NotNil(t, findKind(tree.Root, syntax.ErrorNode))
	assert.Equal(t, 2, countKind(tree.Root, syntax.DimStatement))
}

func TestDeclarationKinds (t *testing.T) {
	text := "Option Explicit\n" +
		"DefInt A-Z\n" +
		"Private Declare Function GetTickCount Lib \"kernel32\" () As Long\n" +
		"Public Type Point\n  X As Long\n  Y As Long\nEnd Type\n" +
		"Private Enum Color\n  Red\n  Green\nEnd Enum\n" +
		"Public Event Changed(ByVal value As Long)\n" +
		"Implements IComparable\n"
	tree, diags := parseModuleText(t, text)
	require.Empty(t, diags)
	assert.Equal(t, text, tree.Text())

	for _, kind := range []syntax.Kind{
		syntax.OptionStatement, syntax.DefTypeStatement, syntax.DeclareStatement,
		syntax.TypeStatement, syntax.EnumStatement, syntax.EventStatement,
		syntax.ImplementsStatement,
	} {
		assert.NotNil(t, findKind(tree.Root, kind), "missing %v", kind)
	}
	typ := findKind(tree.Root, syntax.TypeStatement)
	assert.Equal(t, "Public Type Point\n  X As Long\n  Y As Long\nEnd Type\n", typ.Text())
}

func TestClassHeader (t *testing.T) {
	text := "VERSION 1.0 CLASS\n" +
		"BEGIN\n" +
		"  MultiUse = -1  'True\n" +
		"END\n" +
		"Attribute VB_Name = \"Thing\"\n" +
		"Public Sub Go()\nEnd Sub\n"
	tree, diags := parseClassText(t, text)
	require.Empty(t, diags)
	assert.Equal(t, text, tree.Text())

	require.GreaterOrEqual(t, len(tree.Root.Children), 4)
	assert.Equal(t, syntax.VersionStatement, tree.Root.Children[0].Kind)
	assert.Equal(t, syntax.ClassStatement, tree.Root.Children[1].Kind)

	prop := findKind(tree.Root, syntax.Property)
	require.NotNil(t, prop)
	key := prop.FirstChild(syntax.PropertyKey)
	require.NotNil(t, key)
	assert.Equal(t, "MultiUse", key.Text())
	require.NotNil(t, prop.FirstChild(syntax.PropertyValue))

	assert.NotNil(t, findKind(tree.Root, syntax.AttributeStatement))
	assert.NotNil(t, findKind(tree.Root, syntax.SubStatement))
}

func TestClassWithoutHeader (t *testing.T) {
	tree, diags := parseClassText(t, "Public Sub Go()\nEnd Sub\n")
	require.Empty(t, diags)
	assert.Nil(t, findKind(tree.Root, syntax.ClassStatement))
	assert.NotNil(t, findKind(tree.Root, syntax.SubStatement))
}

func TestVersionDiagnostics (t *testing.T) {
	_, diags := parseClassText(t, "VERSION CLASS\n")
	assert.True(t, diags.Has(diag.MajorVersionUnparsable))
}

func TestPropertyProcedures (t *testing.T) {
	text := "Public Property Get Count() As Long\n  Count = n\nEnd Property\n" +
		"Public Property Let Count(ByVal value As Long)\n  n = value\nEnd Property\n"
	tree, diags := parseModuleText(t, text)
	require.Empty(t, diags)
	assert.Equal(t, 2, countKind(tree.Root, syntax.PropertyStatement))
}

func TestDollarIntrinsicMerges (t *testing.T) {
	tree, diags := parseModuleText(t, "x = Mid$(s, 1)\n")
	require.Empty(t, diags)

	var merged *syntax.Node
	tree.Root.Walk(func (n *syntax.Node) bool {
		if n.Token != nil && n.Token.Text == "Mid$" {
			merged = n
		}
		return true
	})
	require.NotNil(t, merged)
	assert.Equal(t, syntax.Identifier, merged.Kind)
	assert.Nil(t, findKind(tree.Root, syntax.DollarSign))
}

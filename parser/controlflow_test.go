package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vb6tools/vbcst/syntax"
)

func TestIfBlock (t *testing.T) {
	text := "Sub T()\n" +
		"If x > 1 Then\n" +
		"  y = 1\n" +
		"ElseIf x > 0 Then\n" +
		"  y = 2\n" +
		"Else\n" +
		"  y = 3\n" +
		"End If\n" +
		"End Sub\n"
	tree, diags := parseModuleText(t, text)
	require.Empty(t, diags)
	assert.Equal(t, text, tree.Text())

	ifStmt := findKind(tree.Root, syntax.IfStatement)
	require.NotNil(t, ifStmt)
	assert.NotNil(t, ifStmt.FirstChild(syntax.BinaryExpression))
	assert.Len(t, ifStmt.ChildrenOfKind(syntax.ElseIfClause), 1)
	assert.Len(t, ifStmt.ChildrenOfKind(syntax.ElseClause), 1)
	assert.Equal(t, 3, countKind(ifStmt, syntax.AssignmentStatement))
}

func TestSingleLineIf (t *testing.T) {
	tree, diags := parseModuleText(t, "If x Then y = 1 Else y = 2\n")
	require.Empty(t, diags)

	ifStmt := findKind(tree.Root, syntax.IfStatement)
	require.NotNil(t, ifStmt)
	assert.Equal(t, "If x Then y = 1 Else y = 2\n", ifStmt.Text())
	assert.Nil(t, ifStmt.FirstChild(syntax.CodeBlock))
}

func TestNestedIf (t *testing.T) {
	text := "If a Then\n" +
		"  If b Then\n" +
		"    c = 1\n" +
		"  End If\n" +
		"End If\n"
	tree, diags := parseModuleText(t, text)
	require.Empty(t, diags)
	assert.Equal(t, text, tree.Text())
	assert.Equal(t, 2, countKind(tree.Root, syntax.IfStatement))

	outer := findKind(tree.Root, syntax.IfStatement)
	inner := findKind(outer.FirstChild(syntax.CodeBlock), syntax.IfStatement)
	require.NotNil(t, inner)
	assert.Equal(t, 1, countKind(inner, syntax.AssignmentStatement))
}

func TestForLoops (t *testing.T) {
	text := "For i = 1 To 10 Step 2\n  Print i\nNext i\n" +
		"For Each e In items\n  count = count + 1\nNext\n"
	tree, diags := parseModuleText(t, text)
	require.Empty(t, diags)
	assert.Equal(t, text, tree.Text())

	forStmt := findKind(tree.Root, syntax.ForStatement)
	require.NotNil(t, forStmt)
	assert.NotNil(t, findKind(forStmt, syntax.PrintStatement))

	forEach := findKind(tree.Root, syntax.ForEachStatement)
	require.NotNil(t, forEach)
	assert.NotNil(t, findKind(forEach, syntax.AssignmentStatement))
}

func TestDoLoops (t *testing.T) {
	samples := []string{
		"Do While x > 0\n  x = x - 1\nLoop\n",
		"Do\n  x = x - 1\nLoop Until x = 0\n",
		"Do Until done\n  Step\nLoop\n",
	}
	for _, text := range samples {
		tree, _ := parseModuleText(t, text)
		assert.Equal(t, text, tree.Text(), "sample %q", text)
		assert.NotNil(t, findKind(tree.Root, syntax.DoStatement), "sample %q", text)
	}
}

func TestWhileWend (t *testing.T) {
	text := "While n < 10\n  n = n + 1\nWend\n"
	tree, diags := parseModuleText(t, text)
	require.Empty(t, diags)
	assert.Equal(t, text, tree.Text())

	while := findKind(tree.Root, syntax.WhileStatement)
	require.NotNil(t, while)
	assert.NotNil(t, while.FirstChild(syntax.BinaryExpression))
	assert.NotNil(t, while.FirstChild(syntax.CodeBlock))
}

func TestSelectCase (t *testing.T) {
	text := "Select Case x\n" +
		"Case 1, 2\n" +
		"  y = 1\n" +
		"Case Is > 5\n" +
		"  y = 2\n" +
		"Case Else\n" +
		"  y = 3\n" +
		"End Select\n"
	tree, diags := parseModuleText(t, text)
	require.Empty(t, diags)
	assert.Equal(t, text, tree.Text())

	sel := findKind(tree.Root, syntax.SelectCaseStatement)
	require.NotNil(t, sel)
	assert.Len(t, sel.ChildrenOfKind(syntax.CaseClause), 2)
	assert.Len(t, sel.ChildrenOfKind(syntax.CaseElseClause), 1)
}

func TestWithBlock (t *testing.T) {
	text := "With frm.Caption\n  .Value = 1\n  !Item = 2\nEnd With\n"
	tree, diags := parseModuleText(t, text)
	require.Empty(t, diags)
	assert.Equal(t, text, tree.Text())

	with := findKind(tree.Root, syntax.WithStatement)
	require.NotNil(t, with)
	assert.NotNil(t, findKind(with, syntax.MemberAccessExpression))
	assert.Equal(t, 2, countKind(with.FirstChild(syntax.CodeBlock), syntax.AssignmentStatement))
}

func TestOnGoToAndGoSub (t *testing.T) {
	text := "On x GoTo First, Second\nOn y GoSub Third\n"
	tree, diags := parseModuleText(t, text)
	require.Empty(t, diags)
	assert.NotNil(t, findKind(tree.Root, syntax.OnGoToStatement))
	assert.NotNil(t, findKind(tree.Root, syntax.OnGoSubStatement))
}

func TestGotoGosubReturn (t *testing.T) {
	text := "Sub T()\nGoSub Work\nGoTo Done\nWork:\nReturn\nDone:\nEnd Sub\n"
	tree, diags := parseModuleText(t, text)
	require.Empty(t, diags)
	assert.Equal(t, text, tree.Text())

	assert.NotNil(t, findKind(tree.Root, syntax.GoSubStatement))
	assert.NotNil(t, findKind(tree.Root, syntax.GotoStatement))
	assert.NotNil(t, findKind(tree.Root, syntax.ReturnStatement))
	assert.Equal(t, 2, countKind(tree.Root, syntax.LabelStatement))
}

func TestBuiltinStatements (t *testing.T) {
	text := "Open \"data.txt\" For Input As #1\n" +
		"Close #1\n" +
		"Kill \"data.txt\"\n" +
		"Beep\n" +
		"Stop\n"
	tree, diags := parseModuleText(t, text)
	require.Empty(t, diags)
	assert.Equal(t, text, tree.Text())

	for _, kind := range []syntax.Kind{
		syntax.OpenStatement, syntax.CloseStatement, syntax.KillStatement,
		syntax.BeepStatement, syntax.StopStatement,
	} {
		assert.NotNil(t, findKind(tree.Root, kind), "missing %v", kind)
	}
}

func TestBuiltinKeywordAsAssignmentTarget (t *testing.T) {
	// A builtin leading keyword still swallows its whole line, '=' included.
	tree, diags := parseModuleText(t, "Mid(s, 2, 3) = \"abc\"\n")
	require.Empty(t, diags)
	mid := findKind(tree.Root, syntax.MidStatement)
	require.NotNil(t, mid)
	assert.Equal(t, "Mid(s, 2, 3) = \"abc\"\n", mid.Text())
}

func TestRaiseEvent (t *testing.T) {
	tree, diags := parseModuleText(t, "RaiseEvent Changed(42)\n")
	require.Empty(t, diags)
	re := findKind(tree.Root, syntax.RaiseEventStatement)
	require.NotNil(t, re)
	assert.NotNil(t, findKind(re, syntax.CallExpression))
}

func TestReDimAndErase (t *testing.T) {
	text := "ReDim Preserve arr(1 To 20)\nErase arr\n"
	tree, diags := parseModuleText(t, text)
	require.Empty(t, diags)
	assert.NotNil(t, findKind(tree.Root, syntax.ReDimStatement))
	assert.NotNil(t, findKind(tree.Root, syntax.EraseStatement))
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vb6tools/vbcst/syntax"
)

// parseRHS parses "x = <expr>" and returns the expression node after the
// assignment operator.
func parseRHS (t *testing.T, expr string) *syntax.Node {
	t.Helper()
	tree, diags := parseModuleText(t, "x = "+expr+"\n")
	require.Empty(t, diags)
	require.Equal(t, "x = "+expr+"\n", tree.Text())

	asg := findKind(tree.Root, syntax.AssignmentStatement)
	require.NotNil(t, asg)
	seenEquals := false
	for _, child := range asg.Children {
		if child.IsLeaf() && child.Kind == syntax.EqualityOperator {
			seenEquals = true
			continue
		}
		if seenEquals && !child.IsLeaf() {
			return child
		}
	}
	t.Fatalf("no expression after '=' in %q", expr)
	return nil
}

func TestArithmeticPrecedence (t *testing.T) {
	top := parseRHS(t, "1 + 2 * 3")
	require.Equal(t, syntax.BinaryExpression, top.Kind)
	assert.Equal(t, "1 + 2 * 3", top.Text())

	inner := top.FirstChild(syntax.BinaryExpression)
	require.NotNil(t, inner)
	assert.Equal(t, "2 * 3", inner.Text())
}

func TestParenthesesOverridePrecedence (t *testing.T) {
	top := parseRHS(t, "(1 + 2) * 3")
	require.Equal(t, syntax.BinaryExpression, top.Kind)

	paren := top.FirstChild(syntax.ParenthesizedExpression)
	require.NotNil(t, paren)
	assert.Equal(t, "(1 + 2)", paren.Text())
}

func TestConcatenationBindsTighterThanComparison (t *testing.T) {
	top := parseRHS(t, "a & b = c")
	require.Equal(t, syntax.BinaryExpression, top.Kind)
	assert.Equal(t, "a & b = c", top.Text())

	left := top.FirstChild(syntax.BinaryExpression)
	require.NotNil(t, left)
	assert.Equal(t, "a & b", left.Text())
}

func TestUnaryMinusAndExponent (t *testing.T) {
	top := parseRHS(t, "-y ^ 2")
	require.Equal(t, syntax.UnaryExpression, top.Kind)
	assert.Equal(t, "-y ^ 2", top.Text())
	assert.NotNil(t, top.FirstChild(syntax.BinaryExpression))
}

func TestNotBindsLooserThanComparison (t *testing.T) {
	top := parseRHS(t, "Not a = b")
	require.Equal(t, syntax.UnaryExpression, top.Kind)
	assert.Equal(t, "Not a = b", top.Text())
}

func TestLogicalOperatorChain (t *testing.T) {
	top := parseRHS(t, "a And b Or c")
	require.Equal(t, syntax.BinaryExpression, top.Kind)
	assert.Equal(t, "a And b Or c", top.Text())

	left := top.FirstChild(syntax.BinaryExpression)
	require.NotNil(t, left)
	assert.Equal(t, "a And b", left.Text())
}

func TestMemberAndCallChain (t *testing.T) {
	top := parseRHS(t, "obj.Items(1).Name")
	require.Equal(t, syntax.MemberAccessExpression, top.Kind)
	assert.Equal(t, "obj.Items(1).Name", top.Text())

	call := top.FirstChild(syntax.CallExpression)
	require.NotNil(t, call)
	args := findKind(call, syntax.ArgumentList)
	require.NotNil(t, args)
	assert.Len(t, args.ChildrenOfKind(syntax.Argument), 1)
}

func TestAddressOfAndNew (t *testing.T) {
	top := parseRHS(t, "AddressOf Handler")
	assert.Equal(t, syntax.AddressOfExpression, top.Kind)

	top = parseRHS(t, "New Collection")
	assert.Equal(t, syntax.NewExpression, top.Kind)
}

func TestLiteralOperands (t *testing.T) {
	for _, expr := range []string{"True", "Nothing", "Null", "Empty", "\"s\"", "3.14", "#1/15/1998#"} {
		top := parseRHS(t, expr)
		assert.Equal(t, syntax.LiteralExpression, top.Kind, "expr %q", expr)
	}
}

func TestKeywordAsOperand (t *testing.T) {
	top := parseRHS(t, "Len(s)")
	require.Equal(t, syntax.CallExpression, top.Kind)
	name := findKind(top, syntax.IdentifierExpression)
	require.NotNil(t, name)
	assert.Equal(t, "Len", name.Text())
}

func TestMultipleArguments (t *testing.T) {
	top := parseRHS(t, "Lookup(key, 2 + 3, \"d\")")
	require.Equal(t, syntax.CallExpression, top.Kind)
	args := findKind(top, syntax.ArgumentList)
	require.NotNil(t, args)
	assert.Len(t, args.ChildrenOfKind(syntax.Argument), 3)
}

func TestIsComparison (t *testing.T) {
	top := parseRHS(t, "obj Is Nothing")
	require.Equal(t, syntax.BinaryExpression, top.Kind)
	assert.Equal(t, "obj Is Nothing", top.Text())
}

package parser

import (
	"strings"

	"github.com/vb6tools/vbcst/diag"
	"github.com/vb6tools/vbcst/source"
	"github.com/vb6tools/vbcst/syntax"
)

// ParseForm parses a form file (.frm): version line, optional Object lines,
// the control tree, then attribute lines and the code body.
func ParseForm (src *source.Source) (*syntax.Tree, diag.List) {
	p := newParser(src)
	p.parseFormHeader()
	p.parseTopLevelControl()
	p.parseDeclarations()
	return p.finish()
}

func (p *Parser) parseFormHeader () {
	p.trivia()
	if p.at(syntax.VersionKeyword) {
		p.parseVersionStatement()
	} else {
		p.report(diag.VersionKeywordMissing)
	}
	for !p.atEnd() {
		p.trivia()
		if p.at(syntax.Newline) {
			p.bump()
			continue
		}
		if p.at(syntax.ObjectKeyword) {
			p.parseLineStatement(syntax.ObjectStatement)
			continue
		}
		break
	}
}

// parseTopLevelControl parses the outermost Begin…End block. Only VB.Form
// and VB.MDIForm are legal at the top level; any other type is reported and
// its whole block is skipped into an error node.
func (p *Parser) parseTopLevelControl () {
	if !p.at(syntax.BeginKeyword) {
		p.report(diag.BeginKeywordMissing)
		return
	}
	ns, kindName := p.controlTypeAhead()
	if !strings.EqualFold(ns, "VB") ||
		!(strings.EqualFold(kindName, "Form") || strings.EqualFold(kindName, "MDIForm")) {
		p.reportValue(diag.InvalidTopLevelControl, ns+"."+kindName)
		p.skipControlBlock()
		return
	}
	p.parseControlBlock()
}

// controlTypeAhead reads the "Namespace.Kind" pair after a Begin keyword
// without consuming anything.
func (p *Parser) controlTypeAhead () (ns, kind string) {
	i := p.pos + 1
	skip := func () {
		for i < len(p.tokens) && p.tokens[i].Kind.IsTrivia() {
			i++
		}
	}
	skip()
	if i < len(p.tokens) && p.tokens[i].Kind == syntax.Identifier {
		ns = p.tokens[i].Text
		i++
	}
	if i < len(p.tokens) && p.tokens[i].Kind == syntax.PeriodOperator {
		i++
		skip()
		if i < len(p.tokens) && p.tokens[i].Kind == syntax.Identifier {
			kind = p.tokens[i].Text
		}
	}
	return ns, kind
}

// skipControlBlock consumes a balanced Begin…End block into an error node.
func (p *Parser) skipControlBlock () {
	p.b.StartNode(syntax.ErrorNode)
	depth := 0
	for !p.atEnd() {
		switch p.cur() {
		case syntax.BeginKeyword:
			depth++
		case syntax.EndKeyword:
			depth--
			if depth == 0 {
				p.endLine()
				p.b.FinishNode()
				return
			}
		}
		p.bump()
	}
	p.b.FinishNode()
}

// parseControlBlock parses one "Begin Namespace.Kind Name" block, its
// properties and property groups, nested controls, and the closing End.
func (p *Parser) parseControlBlock () {
	p.b.StartNode(syntax.PropertiesBlock)
	p.bump() // Begin
	p.trivia()

	kindName := ""
	p.b.StartNode(syntax.PropertiesType)
	if p.at(syntax.Identifier) {
		p.bump()
		if p.at(syntax.PeriodOperator) {
			p.bump()
			if p.at(syntax.Identifier) {
				kindName = p.curText()
				p.bump()
			} else {
				p.report(diag.NoUserControlNameAfterDot)
			}
		} else {
			p.report(diag.NoDotAfterNamespace)
		}
	} else {
		p.report(diag.NoNamespaceAfterBegin)
	}
	p.b.FinishNode()
	if kindName != "" && !knownControlKinds[strings.ToLower(kindName)] {
		p.report(diag.UnknownControlKind)
	}

	hadSpace := p.at(syntax.Whitespace)
	p.trivia()
	if p.at(syntax.Identifier) || p.cur().IsKeyword() {
		if !hadSpace {
			p.report(diag.NoSpaceAfterControlKind)
		}
		p.b.StartNode(syntax.PropertiesName)
		p.bumpName()
		p.b.FinishNode()
	} else {
		p.report(diag.NoControlNameAfterControlKind)
	}
	p.trivia()
	if !p.at(syntax.Newline) && !p.atEnd() {
		p.report(diag.NoLineEndingAfterControlName)
	}
	p.endLine()

	for !p.atEnd() {
		p.trivia()
		if p.at(syntax.Newline) {
			p.bump()
			continue
		}
		switch {
		case p.at(syntax.EndKeyword):
			p.endLine()
			p.b.FinishNode()
			return
		case p.at(syntax.BeginKeyword):
			p.parseControlBlock()
		case p.at(syntax.Identifier) && strings.EqualFold(p.curText(), "BeginProperty"):
			p.parsePropertyGroup(kindName)
		default:
			p.parseFormProperty(kindName)
		}
	}
	p.b.FinishNode()
}

// parsePropertyGroup parses "BeginProperty Name [{guid}]" … "EndProperty".
func (p *Parser) parsePropertyGroup (controlKind string) {
	p.b.StartNode(syntax.PropertyGroup)
	p.bump() // BeginProperty
	p.trivia()
	if p.at(syntax.Identifier) || p.cur().IsKeyword() {
		p.b.StartNode(syntax.PropertyGroupName)
		p.bumpName()
		p.b.FinishNode()
	} else {
		p.report(diag.NoPropertyName)
	}
	p.endLine() // optional {guid} stays on the group line

	for {
		p.trivia()
		if p.atEnd() {
			p.report(diag.NoEndProperty)
			break
		}
		if p.at(syntax.Newline) {
			p.bump()
			continue
		}
		if p.at(syntax.Identifier) && strings.EqualFold(p.curText(), "EndProperty") {
			p.bump()
			p.trivia()
			if !p.at(syntax.Newline) && !p.atEnd() {
				p.report(diag.NoLineEndingAfterEndProperty)
			}
			p.endLine()
			break
		}
		if p.at(syntax.Identifier) && strings.EqualFold(p.curText(), "BeginProperty") {
			p.parsePropertyGroup(controlKind)
			continue
		}
		if p.at(syntax.EndKeyword) {
			// The enclosing block's End: the group never closed.
			p.report(diag.NoEndProperty)
			break
		}
		p.parseFormProperty(controlKind)
	}
	p.b.FinishNode()
}

// parseFormProperty parses one "Key = value" line inside a control block and
// validates the value when the property has a closed value set.
func (p *Parser) parseFormProperty (controlKind string) {
	if !p.at(syntax.Identifier) && !p.cur().IsKeyword() {
		p.errorLine(diag.KeyValueParseError)
		return
	}
	key := p.curText()
	p.b.StartNode(syntax.Property)

	p.b.StartNode(syntax.PropertyKey)
	p.bumpName()
	p.b.FinishNode()

	p.trivia()
	if p.at(syntax.EqualityOperator) {
		p.bump()
		p.trivia()
		valuePos := p.pos
		p.b.StartNode(syntax.PropertyValue)
		p.consumeUntil(syntax.Newline)
		p.b.FinishNode()
		p.validateFormProperty(controlKind, key, valuePos)
	} else {
		p.report(diag.NoKeyValueDividerFound)
		p.consumeUntil(syntax.Newline)
	}
	if p.at(syntax.Newline) {
		p.bump()
	}
	p.b.FinishNode()
}

// validateFormProperty checks the significant text of a property value
// against the per-property catalog. The offending literal is reported at
// the value's own position; the tree keeps it either way.
func (p *Parser) validateFormProperty (controlKind, key string, valuePos int) {
	rule, ok := formPropertyRule(controlKind, key)
	if !ok {
		return
	}
	value := p.significantText(valuePos, p.pos)
	if value == "" || rule.ok(value) {
		return
	}
	offset := p.curOffset()
	if valuePos < len(p.tokens) {
		offset = p.tokens[valuePos].Pos
	}
	line, col := p.src.LineCol(offset)
	if rule.code.Parameterized() {
		p.diags.Add(diag.NewValue(rule.code, value, p.src.Name(), line, col, offset))
	} else {
		p.diags.Add(diag.New(rule.code, p.src.Name(), line, col, offset))
	}
}

// significantText concatenates non-trivia token texts in a token range.
func (p *Parser) significantText (from, to int) string {
	var sb strings.Builder
	for i := from; i < to && i < len(p.tokens); i++ {
		if p.tokens[i].Kind.IsTrivia() {
			continue
		}
		sb.WriteString(p.tokens[i].Text)
	}
	return sb.String()
}

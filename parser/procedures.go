package parser

import "github.com/vb6tools/vbcst/syntax"

// parseSub parses a Sub definition through its End Sub line.
func (p *Parser) parseSub () {
	p.parseProcedure(syntax.SubStatement, syntax.SubKeyword)
}

// parseFunction parses a Function definition through its End Function line.
func (p *Parser) parseFunction () {
	p.parseProcedure(syntax.FunctionStatement, syntax.FunctionKeyword)
}

// parseProperty parses a Property Get/Let/Set definition through its End
// Property line.
func (p *Parser) parseProperty () {
	p.parseProcedure(syntax.PropertyStatement, syntax.PropertyKeyword)
}

// parseProcedure handles the shared procedure shape:
//
//	[Public|Private|Friend] [Static] <intro> name [(params)] [As type]
//	  body
//	End <intro>
func (p *Parser) parseProcedure (kind, intro syntax.Kind) {
	p.inHeader = false
	p.b.StartNode(kind)
	p.parseProcedureSignature(intro)

	p.parseCodeBlock(func (p *Parser) bool {
		return p.at(syntax.EndKeyword) && p.peek() == intro
	})

	if p.at(syntax.EndKeyword) {
		p.endLine()
	}
	p.b.FinishNode()
}

// parseProcedureSignature consumes the definition line, structuring the
// parenthesized parameter list and leaving the rest as raw tokens.
func (p *Parser) parseProcedureSignature (intro syntax.Kind) {
	for !p.atEnd() && !p.at(syntax.Newline) {
		if p.at(syntax.LeftParenthesis) {
			p.parseParameterList()
			continue
		}
		if p.at(intro) && intro == syntax.PropertyKeyword {
			// Property is followed by Get, Let, or Set before the name.
			p.bump()
			continue
		}
		p.bump()
	}
	if p.at(syntax.Newline) {
		p.bump()
	}
}

// parseParameterList parses "(param, param, …)". Each parameter keeps its
// modifiers, name, and type annotation as raw tokens inside a Parameter
// node.
func (p *Parser) parseParameterList () {
	p.b.StartNode(syntax.ParameterList)
	p.bump() // (
	for {
		p.trivia()
		switch p.cur() {
		case syntax.RightParenthesis:
			p.bump()
			p.b.FinishNode()
			return
		case eof, syntax.Newline:
			p.b.FinishNode()
			return
		case syntax.Comma:
			p.bump()
			continue
		}
		p.parseParameter()
	}
}

func (p *Parser) parseParameter () {
	p.b.StartNode(syntax.Parameter)
	depth := 0
	for !p.atEnd() && !p.at(syntax.Newline) {
		switch p.cur() {
		case syntax.LeftParenthesis:
			depth++
		case syntax.RightParenthesis:
			if depth == 0 {
				p.b.FinishNode()
				return
			}
			depth--
		case syntax.Comma:
			if depth == 0 {
				p.b.FinishNode()
				return
			}
		}
		p.bump()
	}
	p.b.FinishNode()
}

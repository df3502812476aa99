package parser

import (
	"github.com/vb6tools/vbcst/diag"
	"github.com/vb6tools/vbcst/source"
	"github.com/vb6tools/vbcst/syntax"
)

// ParseModule parses a standard code module (.bas).
func ParseModule (src *source.Source) (*syntax.Tree, diag.List) {
	p := newParser(src)
	p.parseDeclarations()
	return p.finish()
}

// ParseClass parses a class module (.cls): a version line and a Begin…End
// header block, then attribute lines and ordinary module code.
func ParseClass (src *source.Source) (*syntax.Tree, diag.List) {
	p := newParser(src)
	p.parseClassHeader()
	p.parseDeclarations()
	return p.finish()
}

// parseClassHeader handles the class preamble:
//
//	VERSION 1.0 CLASS
//	BEGIN
//	  MultiUse = -1  'True
//	END
//
// Files saved without the preamble are legal; parsing falls through to the
// module grammar untouched.
func (p *Parser) parseClassHeader () {
	p.trivia()
	if p.at(syntax.VersionKeyword) {
		p.parseVersionStatement()
		p.trivia()
	}
	for p.at(syntax.Newline) {
		p.bump()
		p.trivia()
	}
	if !p.at(syntax.BeginKeyword) {
		return
	}

	p.b.StartNode(syntax.ClassStatement)
	p.bump() // Begin
	p.endLine()
	for !p.atEnd() {
		p.trivia()
		if p.at(syntax.Newline) {
			p.bump()
			continue
		}
		if p.at(syntax.EndKeyword) {
			p.endLine()
			break
		}
		p.parseHeaderProperty()
	}
	p.b.FinishNode()
}

// parseVersionStatement parses "VERSION major.minor [CLASS]". The version
// number must be two dot-separated integers.
func (p *Parser) parseVersionStatement () {
	p.b.StartNode(syntax.VersionStatement)
	p.bump() // VERSION
	p.trivia()

	if p.at(syntax.IntegerLiteral) {
		p.bump()
		if p.at(syntax.PeriodOperator) {
			p.bump()
			if p.at(syntax.IntegerLiteral) {
				p.bump()
			} else {
				p.report(diag.MinorVersionUnparsable)
			}
		} else {
			p.report(diag.PeriodExpectedInVersionNumber)
		}
	} else if p.at(syntax.SingleLiteral) || p.at(syntax.DoubleLiteral) {
		// The lexer reads "5.00" as one fractional literal.
		p.bump()
	} else {
		p.report(diag.MajorVersionUnparsable)
	}

	p.endLine()
	p.b.FinishNode()
}

// parseHeaderProperty parses one "Key = Value" line inside a header block,
// such as MultiUse = -1 in a class preamble.
func (p *Parser) parseHeaderProperty () {
	if !p.at(syntax.Identifier) && !p.cur().IsKeyword() {
		p.errorLine(diag.KeyValueParseError)
		return
	}
	p.b.StartNode(syntax.Property)

	p.b.StartNode(syntax.PropertyKey)
	p.bumpName()
	p.b.FinishNode()

	p.trivia()
	if p.at(syntax.EqualityOperator) {
		p.bump()
		p.trivia()
		p.b.StartNode(syntax.PropertyValue)
		p.consumeUntil(syntax.Newline)
		p.b.FinishNode()
	} else {
		p.report(diag.KeyValueParseError)
		p.consumeUntil(syntax.Newline)
	}
	if p.at(syntax.Newline) {
		p.bump()
	}
	p.b.FinishNode()
}

// parseDeclarations is the module-level loop: attribute and option lines,
// declarations, and procedure definitions.
func (p *Parser) parseDeclarations () {
	for !p.atEnd() {
		switch p.cur() {
		case syntax.AttributeKeyword:
			p.parseAttributeStatement()
		case syntax.OptionKeyword:
			p.parseLineStatement(syntax.OptionStatement)
		case syntax.SubKeyword:
			p.parseSub()
		case syntax.FunctionKeyword:
			p.parseFunction()
		case syntax.PropertyKeyword:
			p.parseProperty()
		case syntax.DeclareKeyword:
			p.parseLineStatement(syntax.DeclareStatement)
		case syntax.ImplementsKeyword:
			p.parseLineStatement(syntax.ImplementsStatement)
		case syntax.EventKeyword:
			p.parseLineStatement(syntax.EventStatement)
		case syntax.TypeKeyword:
			p.parseBlockStatement(syntax.TypeStatement, syntax.TypeKeyword)
		case syntax.EnumKeyword:
			p.parseBlockStatement(syntax.EnumStatement, syntax.EnumKeyword)
		case syntax.DimKeyword:
			p.parseLineStatement(syntax.DimStatement)
		case syntax.ConstKeyword:
			p.parseLineStatement(syntax.ConstStatement)
		case syntax.PrivateKeyword, syntax.PublicKeyword,
			syntax.FriendKeyword, syntax.StaticKeyword:
			p.parseVisibilityPrefixed()
		case syntax.Whitespace, syntax.Newline, syntax.EndOfLineComment,
			syntax.RemComment, syntax.LineContinuation:
			p.bump()
		default:
			if p.atDefTypeKeyword() {
				p.parseLineStatement(syntax.DefTypeStatement)
				continue
			}
			p.parseBodyStatement()
		}
	}
}

// parseVisibilityPrefixed resolves what follows a Public/Private/Friend/
// Static prefix by peeking at the next two significant tokens.
func (p *Parser) parseVisibilityPrefixed () {
	first, second := p.peek2()
	next := first
	if first == syntax.StaticKeyword {
		next = second
	}
	switch next {
	case syntax.FunctionKeyword:
		p.parseFunction()
	case syntax.SubKeyword:
		p.parseSub()
	case syntax.PropertyKeyword:
		p.parseProperty()
	default:
		switch first {
		case syntax.DeclareKeyword:
			p.parseLineStatement(syntax.DeclareStatement)
		case syntax.TypeKeyword:
			p.parseBlockStatement(syntax.TypeStatement, syntax.TypeKeyword)
		case syntax.EnumKeyword:
			p.parseBlockStatement(syntax.EnumStatement, syntax.EnumKeyword)
		case syntax.EventKeyword:
			p.parseLineStatement(syntax.EventStatement)
		case syntax.ConstKeyword:
			p.parseLineStatement(syntax.ConstStatement)
		default:
			p.parseLineStatement(syntax.DimStatement)
		}
	}
}

func (p *Parser) atDefTypeKeyword () bool {
	switch p.cur() {
	case syntax.DefBoolKeyword, syntax.DefByteKeyword, syntax.DefCurKeyword,
		syntax.DefDateKeyword, syntax.DefDblKeyword, syntax.DefDecKeyword,
		syntax.DefIntKeyword, syntax.DefLngKeyword, syntax.DefObjKeyword,
		syntax.DefSngKeyword, syntax.DefStrKeyword, syntax.DefVarKeyword:
		return true
	}
	return false
}

// parseAttributeStatement parses one "Attribute Name = value" line.
// Attribute lines are part of the header preamble and do not clear the
// header flag.
func (p *Parser) parseAttributeStatement () {
	p.b.StartNode(syntax.AttributeStatement)
	p.bump() // Attribute
	p.endLine()
	p.b.FinishNode()
}

// parseLineStatement wraps a whole physical line in a node of the given
// kind: the introducing token, everything up to the newline, and the newline
// itself.
func (p *Parser) parseLineStatement (kind syntax.Kind) {
	p.inHeader = false
	p.b.StartNode(kind)
	p.bump()
	p.endLine()
	p.b.FinishNode()
}

// parseBlockStatement parses a multi-line declaration block such as
// Type…End Type or Enum…End Enum, ending at "End <closer>". Member lines are
// kept as raw tokens inside the node.
func (p *Parser) parseBlockStatement (kind, closer syntax.Kind) {
	p.inHeader = false
	p.b.StartNode(kind)
	p.bump()
	p.endLine()

	for !p.atEnd() {
		p.trivia()
		if p.at(syntax.EndKeyword) && p.peek() == closer {
			p.endLine()
			break
		}
		p.endLine()
	}
	p.b.FinishNode()
}

package parser

import (
	"github.com/vb6tools/vbcst/diag"
	"github.com/vb6tools/vbcst/syntax"
)

// Binding powers for binary operators, weakest first. Comparison sits below
// concatenation, which sits below arithmetic, matching legacy evaluation
// order.
var binaryPower = map[syntax.Kind]int{
	syntax.ImpKeyword: 1,
	syntax.EqvKeyword: 2,
	syntax.XorKeyword: 3,
	syntax.OrKeyword:  4,
	syntax.AndKeyword: 5,

	syntax.EqualityOperator:           7,
	syntax.InequalityOperator:         7,
	syntax.LessThanOperator:           7,
	syntax.GreaterThanOperator:        7,
	syntax.LessThanOrEqualOperator:    7,
	syntax.GreaterThanOrEqualOperator: 7,
	syntax.LikeKeyword:                7,
	syntax.IsKeyword:                  7,

	syntax.Ampersand: 8,

	syntax.AdditionOperator:    9,
	syntax.SubtractionOperator: 9,

	syntax.ModKeyword:            10,
	syntax.BackwardSlashOperator: 11,

	syntax.MultiplicationOperator: 12,
	syntax.DivisionOperator:       12,

	syntax.ExponentiationOperator: 14,
}

const (
	notPower   = 6
	unaryPower = 13
)

// parseExpression is a precedence-climbing parser. It consumes one operand
// plus any trailing binary-operator chains whose operators bind at least as
// tightly as minPower. It stops cleanly at statement structure tokens such
// as Then, Newline, and colon.
func (p *Parser) parseExpression (minPower int) {
	p.trivia()
	cp := p.b.Checkpoint()
	p.parsePrimary()

	for {
		p.trivia()
		power, ok := binaryPower[p.cur()]
		if !ok || power < minPower {
			return
		}
		p.b.StartNodeAt(cp, syntax.BinaryExpression)
		p.bump()
		p.parseExpression(power + 1)
		p.b.FinishNode()
	}
}

func (p *Parser) parsePrimary () {
	switch p.cur() {
	case syntax.NotKeyword:
		p.b.StartNode(syntax.UnaryExpression)
		p.bump()
		p.parseExpression(notPower)
		p.b.FinishNode()
	case syntax.SubtractionOperator, syntax.AdditionOperator:
		p.b.StartNode(syntax.UnaryExpression)
		p.bump()
		p.parseExpression(unaryPower)
		p.b.FinishNode()
	case syntax.AddressOfKeyword:
		p.b.StartNode(syntax.AddressOfExpression)
		p.bump()
		p.trivia()
		p.parsePostfix()
		p.b.FinishNode()
	case syntax.NewKeyword:
		p.b.StartNode(syntax.NewExpression)
		p.bump()
		p.trivia()
		p.parsePostfix()
		p.b.FinishNode()
	case syntax.LeftParenthesis:
		p.b.StartNode(syntax.ParenthesizedExpression)
		p.bump()
		p.parseExpression(0)
		p.trivia()
		if p.at(syntax.RightParenthesis) {
			p.bump()
		}
		p.b.FinishNode()
	default:
		p.parsePostfix()
	}
}

// parsePostfix parses an atom followed by any chain of member accesses and
// call argument lists.
func (p *Parser) parsePostfix () {
	cp := p.b.Checkpoint()
	if !p.parseAtom() {
		return
	}
	for {
		p.trivia()
		switch p.cur() {
		case syntax.PeriodOperator, syntax.ExclamationMark:
			p.b.StartNodeAt(cp, syntax.MemberAccessExpression)
			p.bump()
			p.bumpName()
			p.b.FinishNode()
		case syntax.LeftParenthesis:
			p.b.StartNodeAt(cp, syntax.CallExpression)
			p.parseArgumentList()
			p.b.FinishNode()
		default:
			return
		}
	}
}

// parseAtom consumes one operand and reports whether anything was consumed.
// Structure tokens that end an expression are left untouched.
func (p *Parser) parseAtom () bool {
	kind := p.cur()
	switch {
	case kind == eof || kind == syntax.Newline || kind == syntax.ColonOperator ||
		kind == syntax.Comma || kind == syntax.RightParenthesis ||
		kind == syntax.ThenKeyword:
		return false
	case kind.IsLiteral() ||
		kind == syntax.TrueKeyword || kind == syntax.FalseKeyword ||
		kind == syntax.NothingKeyword || kind == syntax.NullKeyword ||
		kind == syntax.EmptyKeyword:
		p.b.StartNode(syntax.LiteralExpression)
		p.bump()
		p.b.FinishNode()
		return true
	case kind == syntax.Identifier || kind == syntax.MeKeyword || p.atDollarName():
		p.b.StartNode(syntax.IdentifierExpression)
		p.bumpName()
		p.b.FinishNode()
		return true
	case kind == syntax.PeriodOperator || kind == syntax.ExclamationMark:
		// Leading-dot access to the enclosing With target.
		p.b.StartNode(syntax.MemberAccessExpression)
		p.bump()
		p.bumpName()
		p.b.FinishNode()
		return true
	case kind.IsKeyword():
		// Keyword in operand position, e.g. an intrinsic like Len used as
		// a call. Read it as a plain name.
		p.b.StartNode(syntax.IdentifierExpression)
		p.bumpName()
		p.b.FinishNode()
		return true
	default:
		p.report(diag.Unparsable)
		p.b.StartNode(syntax.ErrorNode)
		p.bump()
		p.b.FinishNode()
		return true
	}
}

// bumpName consumes a name token: a merged dollar intrinsic, an identifier,
// or a keyword standing in a name position, which is retagged as an
// identifier.
func (p *Parser) bumpName () {
	switch {
	case p.atDollarName():
		p.bumpDollarName()
	case p.at(syntax.Identifier):
		p.bump()
	case p.cur().IsKeyword():
		p.bumpAs(syntax.Identifier)
	}
}

// parseArgumentList consumes a parenthesized, comma-separated argument list.
// A missing closing parenthesis ends the list at the line break.
func (p *Parser) parseArgumentList () {
	p.b.StartNode(syntax.ArgumentList)
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
		p.b.StartNode(syntax.Argument)
		p.parseExpression(0)
		p.b.FinishNode()
		p.trivia()
		if !p.at(syntax.Comma) && !p.at(syntax.RightParenthesis) &&
			!p.at(syntax.Newline) && !p.atEnd() {
			// Guarantees progress on malformed argument text.
			p.bump()
		}
	}
}

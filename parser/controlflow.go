package parser

import "github.com/vb6tools/vbcst/syntax"

// parseIf handles both forms of If. A block If runs through End If with any
// number of ElseIf clauses; a single-line If keeps everything after Then as
// part of the same line.
func (p *Parser) parseIf () {
	p.b.StartNode(syntax.IfStatement)
	p.bump()
	p.trivia()
	p.parseExpression(0)
	p.trivia()
	if p.at(syntax.ThenKeyword) {
		p.bump()
	}
	p.trivia()

	if !p.at(syntax.Newline) && !p.atEnd() {
		// Single-line form: the branch shares the condition's line.
		p.endLine()
		p.b.FinishNode()
		return
	}
	if p.at(syntax.Newline) {
		p.bump()
	}

	p.parseCodeBlock(atIfBoundary)
	for p.at(syntax.ElseIfKeyword) || (p.at(syntax.ElseKeyword) && p.peek() == syntax.IfKeyword) {
		p.parseElseIfClause()
	}
	if p.at(syntax.ElseKeyword) {
		p.b.StartNode(syntax.ElseClause)
		p.endLine()
		p.parseCodeBlock(atIfBoundary)
		p.b.FinishNode()
	}
	if p.at(syntax.EndKeyword) {
		p.endLine()
	}
	p.b.FinishNode()
}

func atIfBoundary (p *Parser) bool {
	switch p.cur() {
	case syntax.ElseIfKeyword, syntax.ElseKeyword:
		return true
	case syntax.EndKeyword:
		return p.peek() == syntax.IfKeyword
	}
	return false
}

func (p *Parser) parseElseIfClause () {
	p.b.StartNode(syntax.ElseIfClause)
	p.bump()
	p.trivia()
	if p.at(syntax.IfKeyword) {
		// "Else If" written as two words.
		p.bump()
		p.trivia()
	}
	p.parseExpression(0)
	p.trivia()
	if p.at(syntax.ThenKeyword) {
		p.bump()
	}
	p.endLine()
	p.parseCodeBlock(atIfBoundary)
	p.b.FinishNode()
}

// parseFor handles For…Next and For Each…Next. The header line stays as raw
// tokens; the exact counter grammar carries no structural weight here.
func (p *Parser) parseFor () {
	kind := syntax.ForStatement
	if p.peek() == syntax.EachKeyword {
		kind = syntax.ForEachStatement
	}
	p.b.StartNode(kind)
	p.endLine()

	p.parseCodeBlock(func (p *Parser) bool {
		return p.at(syntax.NextKeyword)
	})

	if p.at(syntax.NextKeyword) {
		p.endLine()
	}
	p.b.FinishNode()
}

// parseDo handles Do [While|Until cond] … Loop [While|Until cond].
func (p *Parser) parseDo () {
	p.b.StartNode(syntax.DoStatement)
	p.bump()
	p.trivia()
	if p.at(syntax.WhileKeyword) || p.at(syntax.UntilKeyword) {
		p.bump()
		p.trivia()
		p.parseExpression(0)
	}
	p.endLine()

	p.parseCodeBlock(func (p *Parser) bool {
		return p.at(syntax.LoopKeyword)
	})

	if p.at(syntax.LoopKeyword) {
		p.bump()
		p.trivia()
		if p.at(syntax.WhileKeyword) || p.at(syntax.UntilKeyword) {
			p.bump()
			p.trivia()
			p.parseExpression(0)
		}
		p.endLine()
	}
	p.b.FinishNode()
}

// parseWhile handles While…Wend.
func (p *Parser) parseWhile () {
	p.b.StartNode(syntax.WhileStatement)
	p.bump()
	p.trivia()
	if !p.at(syntax.Newline) && !p.atEnd() {
		p.parseExpression(0)
	}
	p.endLine()

	p.parseCodeBlock(func (p *Parser) bool {
		return p.at(syntax.WendKeyword)
	})

	if p.at(syntax.WendKeyword) {
		p.endLine()
	}
	p.b.FinishNode()
}

// parseSelect handles Select Case through End Select, with each Case arm
// wrapped in its own clause.
func (p *Parser) parseSelect () {
	p.b.StartNode(syntax.SelectCaseStatement)
	p.bump()
	p.trivia()
	if p.at(syntax.CaseKeyword) {
		p.bump()
		p.trivia()
	}
	if !p.at(syntax.Newline) && !p.atEnd() {
		p.parseExpression(0)
	}
	p.endLine()

	for !p.atEnd() {
		p.trivia()
		if p.at(syntax.Newline) {
			p.bump()
			continue
		}
		if p.at(syntax.EndKeyword) && p.peek() == syntax.SelectKeyword {
			break
		}
		if p.at(syntax.CaseKeyword) {
			p.parseCaseClause()
			continue
		}
		// Stray line before the first Case arm.
		p.parseBodyStatement()
	}

	if p.at(syntax.EndKeyword) {
		p.endLine()
	}
	p.b.FinishNode()
}

func (p *Parser) parseCaseClause () {
	kind := syntax.CaseClause
	if p.peek() == syntax.ElseKeyword {
		kind = syntax.CaseElseClause
	}
	p.b.StartNode(kind)
	// Case values (ranges, Is comparisons, lists) stay as raw tokens.
	p.endLine()

	p.parseCodeBlock(func (p *Parser) bool {
		if p.at(syntax.CaseKeyword) {
			return true
		}
		return p.at(syntax.EndKeyword) && p.peek() == syntax.SelectKeyword
	})
	p.b.FinishNode()
}

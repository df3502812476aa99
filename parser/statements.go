package parser

import (
	"github.com/vb6tools/vbcst/diag"
	"github.com/vb6tools/vbcst/syntax"
)

// builtinStatements maps a leading keyword to the statement node wrapping
// the rest of its line. These are the simple built-in commands whose
// operands stay as raw tokens.
var builtinStatements = map[syntax.Kind]syntax.Kind{
	syntax.AppActivateKeyword:   syntax.AppActivateStatement,
	syntax.BeepKeyword:          syntax.BeepStatement,
	syntax.ChDirKeyword:         syntax.ChDirStatement,
	syntax.ChDriveKeyword:       syntax.ChDriveStatement,
	syntax.CloseKeyword:         syntax.CloseStatement,
	syntax.DateKeyword:          syntax.DateStatement,
	syntax.DeleteSettingKeyword: syntax.DeleteSettingStatement,
	syntax.ErrorKeyword:         syntax.ErrorStatement,
	syntax.FileCopyKeyword:      syntax.FileCopyStatement,
	syntax.GetKeyword:           syntax.GetStatement,
	syntax.InputKeyword:         syntax.InputStatement,
	syntax.KillKeyword:          syntax.KillStatement,
	syntax.LineKeyword:          syntax.LineInputStatement,
	syntax.LoadKeyword:          syntax.LoadStatement,
	syntax.LockKeyword:          syntax.LockStatement,
	syntax.LSetKeyword:          syntax.LSetStatement,
	syntax.MidBKeyword:          syntax.MidBStatement,
	syntax.MidKeyword:           syntax.MidStatement,
	syntax.MkDirKeyword:         syntax.MkDirStatement,
	syntax.NameKeyword:          syntax.NameStatement,
	syntax.OpenKeyword:          syntax.OpenStatement,
	syntax.PrintKeyword:         syntax.PrintStatement,
	syntax.PutKeyword:           syntax.PutStatement,
	syntax.RandomizeKeyword:     syntax.RandomizeStatement,
	syntax.ResetKeyword:         syntax.ResetStatement,
	syntax.RmDirKeyword:         syntax.RmDirStatement,
	syntax.RSetKeyword:          syntax.RSetStatement,
	syntax.SavePictureKeyword:   syntax.SavePictureStatement,
	syntax.SaveSettingKeyword:   syntax.SaveSettingStatement,
	syntax.SeekKeyword:          syntax.SeekStatement,
	syntax.SendKeysKeyword:      syntax.SendKeysStatement,
	syntax.SetAttrKeyword:       syntax.SetAttrStatement,
	syntax.StopKeyword:          syntax.StopStatement,
	syntax.TimeKeyword:          syntax.TimeStatement,
	syntax.UnloadKeyword:        syntax.UnloadStatement,
	syntax.UnlockKeyword:        syntax.UnlockStatement,
	syntax.WidthKeyword:         syntax.WidthStatement,
	syntax.WriteKeyword:         syntax.WriteStatement,
}

// parseCodeBlock parses statements into a CodeBlock node until stop reports
// true at a statement boundary or the input runs out. Trivia and newlines
// between statements belong to the block.
func (p *Parser) parseCodeBlock (stop func (*Parser) bool) {
	p.b.StartNode(syntax.CodeBlock)
	for !p.atEnd() {
		p.trivia()
		if p.atEnd() || stop(p) {
			break
		}
		if p.at(syntax.Newline) || p.at(syntax.ColonOperator) {
			p.bump()
			continue
		}
		p.parseBodyStatement()
	}
	p.b.FinishNode()
}

// parseBodyStatement parses one executable statement. It always makes
// forward progress.
func (p *Parser) parseBodyStatement () {
	p.inHeader = false
	switch p.cur() {
	case syntax.IfKeyword:
		p.parseIf()
	case syntax.ForKeyword:
		p.parseFor()
	case syntax.DoKeyword:
		p.parseDo()
	case syntax.WhileKeyword:
		p.parseWhile()
	case syntax.SelectKeyword:
		p.parseSelect()
	case syntax.WithKeyword:
		p.parseWith()
	case syntax.CallKeyword:
		p.parseCall()
	case syntax.SetKeyword:
		p.parseSet()
	case syntax.LetKeyword:
		p.parseLet()
	case syntax.RaiseEventKeyword:
		p.parseRaiseEvent()
	case syntax.GotoKeyword:
		p.parseLineStatement(syntax.GotoStatement)
	case syntax.GoSubKeyword:
		p.parseLineStatement(syntax.GoSubStatement)
	case syntax.ReturnKeyword:
		p.parseLineStatement(syntax.ReturnStatement)
	case syntax.OnKeyword:
		p.parseOn()
	case syntax.ResumeKeyword:
		p.parseLineStatement(syntax.ResumeStatement)
	case syntax.ExitKeyword:
		p.parseExit()
	case syntax.StopKeyword:
		p.parseLineStatement(syntax.StopStatement)
	case syntax.DimKeyword, syntax.StaticKeyword:
		p.parseLineStatement(syntax.DimStatement)
	case syntax.ConstKeyword:
		p.parseLineStatement(syntax.ConstStatement)
	case syntax.ReDimKeyword:
		p.parseLineStatement(syntax.ReDimStatement)
	case syntax.EraseKeyword:
		p.parseLineStatement(syntax.EraseStatement)
	case syntax.Newline:
		p.bump()
	default:
		if kind, ok := builtinStatements[p.cur()]; ok && !p.atAssignment() {
			p.parseLineStatement(kind)
			return
		}
		if p.atLabel() {
			p.parseLabel()
			return
		}
		if p.atAssignment() {
			p.parseAssignment()
			return
		}
		if p.at(syntax.Identifier) || p.cur().IsKeyword() || p.atDollarName() {
			// Bare procedure invocation without Call.
			p.parseImplicitCall()
			return
		}
		p.errorLine(diag.Unparsable)
	}
}

// parseCall handles "Call Target(args)".
func (p *Parser) parseCall () {
	p.b.StartNode(syntax.CallStatement)
	p.bump()
	p.trivia()
	if !p.at(syntax.Newline) && !p.atEnd() {
		p.parsePostfix()
	}
	p.endLine()
	p.b.FinishNode()
}

// parseImplicitCall handles a statement-position invocation without the Call
// keyword: "Target arg1, arg2". The callee becomes an expression; arguments
// stay as raw tokens since they carry no parentheses.
func (p *Parser) parseImplicitCall () {
	p.b.StartNode(syntax.CallStatement)
	p.parsePostfix()
	p.endLine()
	p.b.FinishNode()
}

// parseSet handles "Set target = expression".
func (p *Parser) parseSet () {
	p.b.StartNode(syntax.SetStatement)
	p.bump()
	p.trivia()
	p.parsePostfix()
	p.trivia()
	if p.at(syntax.EqualityOperator) {
		p.bump()
		p.trivia()
		p.parseExpression(0)
	}
	p.endLine()
	p.b.FinishNode()
}

// parseLet handles the archaic "Let target = expression".
func (p *Parser) parseLet () {
	p.b.StartNode(syntax.LetStatement)
	p.bump()
	p.trivia()
	p.parsePostfix()
	p.trivia()
	if p.at(syntax.EqualityOperator) {
		p.bump()
		p.trivia()
		p.parseExpression(0)
	}
	p.endLine()
	p.b.FinishNode()
}

// parseAssignment handles "target = expression" where target is a postfix
// chain (member access, indexing).
func (p *Parser) parseAssignment () {
	p.b.StartNode(syntax.AssignmentStatement)
	p.parsePostfix()
	p.trivia()
	if p.at(syntax.EqualityOperator) {
		p.bump()
		p.trivia()
		p.parseExpression(0)
	}
	p.endLine()
	p.b.FinishNode()
}

// parseRaiseEvent handles "RaiseEvent Name(args)".
func (p *Parser) parseRaiseEvent () {
	p.b.StartNode(syntax.RaiseEventStatement)
	p.bump()
	p.trivia()
	if !p.at(syntax.Newline) && !p.atEnd() {
		p.parsePostfix()
	}
	p.endLine()
	p.b.FinishNode()
}

// parseWith handles a With block through its End With line.
func (p *Parser) parseWith () {
	p.b.StartNode(syntax.WithStatement)
	p.bump()
	p.trivia()
	if !p.at(syntax.Newline) && !p.atEnd() {
		p.parseExpression(0)
	}
	p.endLine()

	p.parseCodeBlock(func (p *Parser) bool {
		return p.at(syntax.EndKeyword) && p.peek() == syntax.WithKeyword
	})

	if p.at(syntax.EndKeyword) {
		p.endLine()
	}
	p.b.FinishNode()
}

// parseOn dispatches On Error, On … GoTo, and On … GoSub. Which one it is
// only becomes clear part way into the line.
func (p *Parser) parseOn () {
	if p.peek() == syntax.ErrorKeyword {
		p.parseLineStatement(syntax.OnErrorStatement)
		return
	}
	kind := syntax.OnGoToStatement
	for i := p.pos; i < len(p.tokens); i++ {
		k := p.tokens[i].Kind
		if k == syntax.Newline {
			break
		}
		if k == syntax.GoSubKeyword {
			kind = syntax.OnGoSubStatement
			break
		}
		if k == syntax.GotoKeyword {
			break
		}
	}
	p.parseLineStatement(kind)
}

// parseExit handles "Exit Do|For|Function|Property|Sub".
func (p *Parser) parseExit () {
	p.b.StartNode(syntax.ExitStatement)
	p.bump()
	p.trivia()
	switch p.cur() {
	case syntax.DoKeyword, syntax.ForKeyword, syntax.FunctionKeyword,
		syntax.PropertyKeyword, syntax.SubKeyword:
		p.bump()
	default:
		p.report(diag.KeywordNotFound)
	}
	p.endLine()
	p.b.FinishNode()
}

// parseLabel handles "Name:" at the start of a line.
func (p *Parser) parseLabel () {
	p.b.StartNode(syntax.LabelStatement)
	p.bump()
	p.trivia()
	if p.at(syntax.ColonOperator) {
		p.bump()
	}
	p.b.FinishNode()
}

// atLabel reports whether the current token begins a line label: a name
// whose next significant token is a colon, with only the line end after it.
func (p *Parser) atLabel () bool {
	if !p.at(syntax.Identifier) && !(p.cur().IsNumeric() && p.cur() != syntax.DateLiteral) {
		return false
	}
	i := p.pos + 1
	for i < len(p.tokens) && p.tokens[i].Kind.IsTrivia() {
		i++
	}
	if i >= len(p.tokens) || p.tokens[i].Kind != syntax.ColonOperator {
		return false
	}
	i++
	for i < len(p.tokens) && p.tokens[i].Kind.IsTrivia() {
		i++
	}
	return i >= len(p.tokens) || p.tokens[i].Kind == syntax.Newline
}

// atAssignment scans ahead on the current line for a top-level "=" that
// would make this statement an assignment rather than an invocation.
func (p *Parser) atAssignment () bool {
	depth := 0
	afterPeriod := false
	for i := p.pos; i < len(p.tokens); i++ {
		k := p.tokens[i].Kind
		if k.IsTrivia() {
			continue
		}
		switch k {
		case syntax.Newline:
			return false
		case syntax.EqualityOperator:
			if depth == 0 {
				return true
			}
		case syntax.LeftParenthesis:
			depth++
		case syntax.RightParenthesis:
			depth--
		case syntax.PeriodOperator, syntax.ExclamationMark:
			afterPeriod = true
			continue
		case syntax.Identifier, syntax.Comma, syntax.DollarSign:
		case syntax.IntegerLiteral, syntax.LongLiteral, syntax.SingleLiteral,
			syntax.DoubleLiteral, syntax.DecimalLiteral, syntax.CurrencyLiteral,
			syntax.StringLiteral:
		default:
			if k.IsKeyword() && afterPeriod {
				// Keywords are legal member names after a period.
				afterPeriod = false
				continue
			}
			if depth == 0 {
				return false
			}
		}
		afterPeriod = false
	}
	return false
}

// Package parser builds lossless concrete syntax trees from token streams.
// One grammar entry point exists per file kind: code modules and classes,
// form files, and project manifests.
package parser

import (
	"strings"

	"github.com/vb6tools/vbcst/diag"
	"github.com/vb6tools/vbcst/lexer"
	"github.com/vb6tools/vbcst/source"
	"github.com/vb6tools/vbcst/syntax"
)

// eof is returned by cur past the last token. It is outside the Kind space.
const eof = syntax.Kind(0xFFFF)

// Parser holds the shared state all grammar rules work on. inHeader tracks
// whether we are still inside the attribute/header preamble; the first
// executable statement clears it.
type Parser struct {
	src      *source.Source
	tokens   []syntax.Token
	pos      int
	b        *syntax.Builder
	diags    diag.List
	inHeader bool
}

func newParser (src *source.Source) *Parser {
	tokens, diags := lexer.Scan(src)
	p := &Parser{
		src:      src,
		tokens:   tokens,
		b:        syntax.NewBuilder(),
		diags:    diags,
		inHeader: true,
	}
	if src.MostlyNonASCII() {
		p.diags.Add(diag.New(diag.LikelyNonEnglishCharacterSet, src.Name(), 1, 1, 0))
	}
	return p
}

func (p *Parser) atEnd () bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) cur () syntax.Kind {
	if p.atEnd() {
		return eof
	}
	return p.tokens[p.pos].Kind
}

func (p *Parser) at (kind syntax.Kind) bool {
	return p.cur() == kind
}

func (p *Parser) curText () string {
	if p.atEnd() {
		return ""
	}
	return p.tokens[p.pos].Text
}

// peek returns the next non-trivia kind strictly after the current token.
func (p *Parser) peek () syntax.Kind {
	for i := p.pos + 1; i < len(p.tokens); i++ {
		if !p.tokens[i].Kind.IsTrivia() {
			return p.tokens[i].Kind
		}
	}
	return eof
}

// peek2 returns the next two non-trivia kinds after the current token.
func (p *Parser) peek2 () (first, second syntax.Kind) {
	first, second = eof, eof
	n := 0
	for i := p.pos + 1; i < len(p.tokens); i++ {
		if p.tokens[i].Kind.IsTrivia() {
			continue
		}
		if n == 0 {
			first = p.tokens[i].Kind
		} else {
			second = p.tokens[i].Kind
			break
		}
		n++
	}
	return first, second
}

// peekRaw returns the kind of the token immediately after the current one,
// trivia included.
func (p *Parser) peekRaw () syntax.Kind {
	if p.pos+1 >= len(p.tokens) {
		return eof
	}
	return p.tokens[p.pos+1].Kind
}

// bump consumes the current token into the innermost open node.
func (p *Parser) bump () {
	if p.atEnd() {
		return
	}
	p.b.Token(p.tokens[p.pos])
	p.pos++
}

// bumpAs consumes the current token but tags it with a different kind. Used
// where keywords stand in identifier positions.
func (p *Parser) bumpAs (kind syntax.Kind) {
	if p.atEnd() {
		return
	}
	tok := p.tokens[p.pos]
	tok.Kind = kind
	p.b.Token(tok)
	p.pos++
}

// trivia consumes any run of whitespace, comments, and line continuations,
// attaching them to the innermost open node. Newlines stay put.
func (p *Parser) trivia () {
	for !p.atEnd() && p.tokens[p.pos].Kind.IsTrivia() {
		p.bump()
	}
}

// consumeUntil consumes tokens up to, but not including, the stop kind,
// merging name+$ pairs on the way. Line continuations are single trivia
// tokens, so a continued logical line never stops early at a newline.
func (p *Parser) consumeUntil (stop syntax.Kind) {
	for !p.atEnd() && !p.at(stop) {
		if p.atDollarName() {
			p.bumpDollarName()
			continue
		}
		p.bump()
	}
}

// endLine consumes the remainder of the line, the terminating newline
// included.
func (p *Parser) endLine () {
	p.consumeUntil(syntax.Newline)
	if p.at(syntax.Newline) {
		p.bump()
	}
}

// skipPast is the recovery primitive: it consumes tokens through the first
// occurrence of the given kind, or to the end of input.
func (p *Parser) skipPast (kind syntax.Kind) {
	p.consumeUntil(kind)
	if p.at(kind) {
		p.bump()
	}
}

// errorLine wraps the rest of the line in an ErrorNode and reports the given
// code at the current token. The parser resynchronizes on the next line.
func (p *Parser) errorLine (code diag.Code) {
	p.report(code)
	p.b.StartNode(syntax.ErrorNode)
	p.endLine()
	p.b.FinishNode()
}

func (p *Parser) report (code diag.Code) {
	p.reportAt(code, p.curOffset())
}

func (p *Parser) reportValue (code diag.Code, value string) {
	line, col := p.src.LineCol(p.curOffset())
	p.diags.Add(diag.NewValue(code, value, p.src.Name(), line, col, p.curOffset()))
}

func (p *Parser) reportAt (code diag.Code, offset int) {
	line, col := p.src.LineCol(offset)
	p.diags.Add(diag.New(code, p.src.Name(), line, col, offset))
}

func (p *Parser) curOffset () int {
	if p.atEnd() {
		return p.src.Len()
	}
	return p.tokens[p.pos].Pos
}

// dollarKeywords are the reserved words with $-suffixed string variants.
var dollarKeywords = map[syntax.Kind]bool{
	syntax.ErrorKeyword:  true,
	syntax.LenKeyword:    true,
	syntax.MidKeyword:    true,
	syntax.MidBKeyword:   true,
	syntax.DateKeyword:   true,
	syntax.StringKeyword: true,
	syntax.TimeKeyword:   true,
}

// dollarFunctions are the intrinsic names whose identifier+$ spelling merges
// into a single identifier token.
var dollarFunctions = map[string]bool{
	"CHR": true, "CHRB": true, "CHRW": true, "COMMAND": true, "CURDIR": true,
	"DATE": true, "ENVIRON": true, "ERROR": true, "FORMAT": true, "HEX": true,
	"LCASE": true, "LEFT": true, "LEFTB": true, "LTRIM": true, "MID": true,
	"MIDB": true, "OCT": true, "RIGHT": true, "RIGHTB": true, "RTRIM": true,
	"SPACE": true, "STR": true, "TIME": true, "TRIM": true, "UCASE": true,
}

// atDollarName reports whether the current token plus an immediately
// following dollar sign spell a string intrinsic such as Mid$ or UCase$.
func (p *Parser) atDollarName () bool {
	if p.peekRaw() != syntax.DollarSign {
		return false
	}
	if dollarKeywords[p.cur()] {
		return true
	}
	return p.at(syntax.Identifier) && dollarFunctions[strings.ToUpper(p.curText())]
}

// bumpDollarName merges the current token and the dollar sign after it into
// one Identifier leaf.
func (p *Parser) bumpDollarName () {
	first := p.tokens[p.pos]
	dollar := p.tokens[p.pos+1]
	p.b.Token(syntax.Token{
		Kind: syntax.Identifier,
		Text: first.Text + dollar.Text,
		Pos:  first.Pos,
	})
	p.pos += 2
}

// finish closes the tree. An unbalanced builder stack is a parser defect: it
// is reported as an internal diagnostic and the tree degrades to a flat token
// list so losslessness still holds.
func (p *Parser) finish () (*syntax.Tree, diag.List) {
	root, err := p.b.Finish()
	if err != nil {
		p.reportAt(diag.InternalParseError, p.src.Len())
		root = &syntax.Node{Kind: syntax.Root}
		for i := range p.tokens {
			tok := p.tokens[i]
			root.Children = append(root.Children, &syntax.Node{Kind: tok.Kind, Token: &tok})
		}
	}
	return &syntax.Tree{SourceName: p.src.Name(), Root: root}, p.diags
}

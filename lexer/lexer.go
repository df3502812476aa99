// Package lexer turns a source buffer into a gap-free token sequence.
// Every input byte lands in exactly one token, so the token texts
// concatenated in order reproduce the buffer.
package lexer

import (
	"strings"

	"github.com/vb6tools/vbcst/diag"
	"github.com/vb6tools/vbcst/source"
	"github.com/vb6tools/vbcst/syntax"
)

type scanner struct {
	src     *source.Source
	content []byte
	pos     int
	tokens  []syntax.Token
	diags   diag.List
}

// Scan tokenizes the whole buffer. It never fails: unrecognized bytes become
// Unknown tokens, and the only diagnostics it reports are unterminated
// strings.
func Scan (src *source.Source) ([]syntax.Token, diag.List) {
	s := &scanner{src: src, content: src.Content()}
	for s.pos < len(s.content) {
		s.next()
	}
	return s.tokens, s.diags
}

func (s *scanner) emit (kind syntax.Kind, start int) {
	s.tokens = append(s.tokens, syntax.Token{
		Kind: kind,
		Text: string(s.content[start:s.pos]),
		Pos:  start,
	})
}

func (s *scanner) report (code diag.Code, offset int) {
	line, col := s.src.LineCol(offset)
	s.diags.Add(diag.New(code, s.src.Name(), line, col, offset))
}

func (s *scanner) peek (off int) byte {
	if s.pos+off >= len(s.content) {
		return 0
	}
	return s.content[s.pos+off]
}

func (s *scanner) next () {
	start := s.pos
	c := s.content[s.pos]

	switch {
	case c == '\r' || c == '\n':
		s.scanNewline()
		s.emit(syntax.Newline, start)
	case c == ' ' || c == '\t':
		for s.pos < len(s.content) && (s.content[s.pos] == ' ' || s.content[s.pos] == '\t') {
			s.pos++
		}
		s.emit(syntax.Whitespace, start)
	case c == '\'':
		s.scanToLineEnd()
		s.emit(syntax.EndOfLineComment, start)
	case isLetter(c):
		s.scanWord(start)
	case isDigit(c):
		s.scanNumber()
		s.emit(s.numberKind(start), start)
	case c == '"':
		s.scanString(start)
	case c == '#':
		if s.scanDate() {
			s.emit(syntax.DateLiteral, start)
		} else {
			s.pos++
			s.emit(syntax.Octothorpe, start)
		}
	case c == '&':
		if s.scanRadixLiteral() {
			s.emit(syntax.LongLiteral, start)
		} else {
			s.pos++
			s.emit(syntax.Ampersand, start)
		}
	case c == '_':
		if s.scanContinuation() {
			s.emit(syntax.LineContinuation, start)
		} else {
			s.pos++
			s.emit(syntax.Underscore, start)
		}
	case c == '<':
		s.pos++
		switch s.peek(0) {
		case '>':
			s.pos++
			s.emit(syntax.InequalityOperator, start)
		case '=':
			s.pos++
			s.emit(syntax.LessThanOrEqualOperator, start)
		default:
			s.emit(syntax.LessThanOperator, start)
		}
	case c == '>':
		s.pos++
		if s.peek(0) == '=' {
			s.pos++
			s.emit(syntax.GreaterThanOrEqualOperator, start)
		} else {
			s.emit(syntax.GreaterThanOperator, start)
		}
	default:
		kind, ok := singleSymbols[c]
		if !ok {
			kind = syntax.Unknown
		}
		s.pos++
		s.emit(kind, start)
	}
}

var singleSymbols = map[byte]syntax.Kind{
	'=':  syntax.EqualityOperator,
	'$':  syntax.DollarSign,
	'%':  syntax.Percent,
	'(':  syntax.LeftParenthesis,
	')':  syntax.RightParenthesis,
	'{':  syntax.LeftCurlyBrace,
	'}':  syntax.RightCurlyBrace,
	'[':  syntax.LeftSquareBracket,
	']':  syntax.RightSquareBracket,
	',':  syntax.Comma,
	';':  syntax.Semicolon,
	'@':  syntax.AtSign,
	'!':  syntax.ExclamationMark,
	'+':  syntax.AdditionOperator,
	'-':  syntax.SubtractionOperator,
	'*':  syntax.MultiplicationOperator,
	'\\': syntax.BackwardSlashOperator,
	'/':  syntax.DivisionOperator,
	'.':  syntax.PeriodOperator,
	':':  syntax.ColonOperator,
	'^':  syntax.ExponentiationOperator,
}

func (s *scanner) scanNewline () {
	if s.content[s.pos] == '\r' && s.peek(1) == '\n' {
		s.pos += 2
		return
	}
	s.pos++
}

func (s *scanner) scanToLineEnd () {
	for s.pos < len(s.content) && s.content[s.pos] != '\r' && s.content[s.pos] != '\n' {
		s.pos++
	}
}

// scanWord consumes an identifier-shaped run and classifies it: a Rem
// comment swallows the rest of the line, reserved words become keyword
// tokens, everything else is an identifier.
func (s *scanner) scanWord (start int) {
	for s.pos < len(s.content) && isWordByte(s.content[s.pos]) {
		s.pos++
	}
	word := strings.ToLower(string(s.content[start:s.pos]))

	if word == "rem" {
		b := s.peek(0)
		if b == 0 || b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			s.scanToLineEnd()
			s.emit(syntax.RemComment, start)
			return
		}
	}

	if kind, ok := keywords[word]; ok {
		s.emit(kind, start)
		return
	}
	if s.pos-start >= 255 {
		s.report(diag.VariableNameTooLong, start)
	}
	s.emit(syntax.Identifier, start)
}

// scanNumber consumes digits, an optional fraction, and an optional E/D
// exponent with sign. The type suffix, if any, is consumed by numberKind.
func (s *scanner) scanNumber () {
	for s.pos < len(s.content) && isDigit(s.content[s.pos]) {
		s.pos++
	}
	if s.peek(0) == '.' {
		s.pos++
		for s.pos < len(s.content) && isDigit(s.content[s.pos]) {
			s.pos++
		}
	}
	if b := s.peek(0); b == 'e' || b == 'E' || b == 'd' || b == 'D' {
		s.pos++
		if b := s.peek(0); b == '+' || b == '-' {
			s.pos++
		}
		for s.pos < len(s.content) && isDigit(s.content[s.pos]) {
			s.pos++
		}
	}
}

// numberKind consumes the type suffix and picks the literal kind. Without a
// suffix, a fraction or exponent makes the literal a Single, otherwise it is
// an Integer.
func (s *scanner) numberKind (start int) syntax.Kind {
	switch s.peek(0) {
	case '%':
		s.pos++
		return syntax.IntegerLiteral
	case '&':
		s.pos++
		return syntax.LongLiteral
	case '!':
		s.pos++
		return syntax.SingleLiteral
	case '#':
		s.pos++
		return syntax.DoubleLiteral
	case '@':
		s.pos++
		return syntax.DecimalLiteral
	}
	text := s.content[start:s.pos]
	for _, b := range text {
		switch b {
		case '.', 'e', 'E', 'd', 'D':
			return syntax.SingleLiteral
		}
	}
	return syntax.IntegerLiteral
}

// scanString consumes a double-quoted string with "" escapes. A newline or
// end of input before the closing quote still yields a StringLiteral token
// plus an UnterminatedString diagnostic.
func (s *scanner) scanString (start int) {
	s.pos++
	for {
		if s.pos >= len(s.content) || s.content[s.pos] == '\r' || s.content[s.pos] == '\n' {
			s.emit(syntax.StringLiteral, start)
			s.report(diag.UnterminatedString, start)
			return
		}
		if s.content[s.pos] == '"' {
			if s.peek(1) == '"' {
				s.pos += 2
				continue
			}
			s.pos++
			s.emit(syntax.StringLiteral, start)
			return
		}
		s.pos++
	}
}

// scanDate tries to read a #date#, #time#, or #date time# literal. The body
// must close with '#' on the same line, hold at least one digit, and use a
// '/' or ':' divider; anything else leaves the stream untouched so the '#'
// lexes as a plain Octothorpe.
func (s *scanner) scanDate () bool {
	i := s.pos + 1
	hasDigit := false
	hasDivider := false
	for i < len(s.content) {
		b := s.content[i]
		if b == '#' {
			if hasDigit && hasDivider {
				s.pos = i + 1
				return true
			}
			return false
		}
		switch {
		case isDigit(b):
			hasDigit = true
		case b == '/' || b == ':':
			hasDivider = true
		case b == ' ' || b == '.' || b == '-':
		case b == 'A' || b == 'P' || b == 'M' || b == 'a' || b == 'p' || b == 'm':
		default:
			return false
		}
		i++
	}
	return false
}

// scanRadixLiteral tries to read an &H hex or &O octal literal with an
// optional trailing '&'.
func (s *scanner) scanRadixLiteral () bool {
	b := s.peek(1)
	switch {
	case b == 'H' || b == 'h':
		if !isHexDigit(s.peek(2)) {
			return false
		}
		s.pos += 2
		for s.pos < len(s.content) && isHexDigit(s.content[s.pos]) {
			s.pos++
		}
	case b == 'O' || b == 'o':
		if s.peek(2) < '0' || s.peek(2) > '7' {
			return false
		}
		s.pos += 2
		for s.pos < len(s.content) && s.content[s.pos] >= '0' && s.content[s.pos] <= '7' {
			s.pos++
		}
	default:
		return false
	}
	if s.peek(0) == '&' {
		s.pos++
	}
	return true
}

// scanContinuation checks for a line continuation: a lone underscore, then
// optional blanks, then the end of the line. The whole run, newline
// included, becomes one trivia token.
func (s *scanner) scanContinuation () bool {
	i := s.pos + 1
	for i < len(s.content) && (s.content[i] == ' ' || s.content[i] == '\t') {
		i++
	}
	if i < len(s.content) && s.content[i] != '\r' && s.content[i] != '\n' {
		return false
	}
	s.pos = i
	if s.pos < len(s.content) {
		s.scanNewline()
	}
	return true
}

func isLetter (b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isDigit (b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit (b byte) bool {
	return isDigit(b) || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func isWordByte (b byte) bool {
	return isLetter(b) || isDigit(b) || b == '_'
}

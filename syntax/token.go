package syntax

// Token is a leaf of the tree. Text holds the exact source bytes the token
// covers, trivia included, so concatenating every leaf in order reproduces
// the input.
type Token struct {
	Kind Kind
	Text string
	Pos  int
}

// End returns the offset one past the last byte of the token.
func (t Token) End () int {
	return t.Pos + len(t.Text)
}

// IsTrivia reports whether the token is whitespace, a comment, or a line
// continuation.
func (t Token) IsTrivia () bool {
	return t.Kind.IsTrivia()
}

func (t Token) String () string {
	return t.Kind.String() + "(" + t.Text + ")"
}

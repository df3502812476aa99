package diag

import "fmt"

// Diagnostic is one positioned finding. Line and Col are 1-based, Offset is
// the byte position in the source buffer.
type Diagnostic struct {
	Code       Code
	Message    string
	SourceName string
	Line       int
	Col        int
	Offset     int
}

// New builds a diagnostic for a code whose message takes no parameters.
func New (code Code, name string, line, col, offset int) Diagnostic {
	return Diagnostic{
		Code:       code,
		Message:    code.Message(),
		SourceName: name,
		Line:       line,
		Col:        col,
		Offset:     offset,
	}
}

// NewValue builds a diagnostic for a code whose message template carries a
// single %s parameter, usually the offending source text.
func NewValue (code Code, value, name string, line, col, offset int) Diagnostic {
	d := New(code, name, line, col, offset)
	d.Message = fmt.Sprintf(code.Message(), value)
	return d
}

func (d Diagnostic) Error () string {
	if d.SourceName == "" {
		return fmt.Sprintf("%d:%d: %s", d.Line, d.Col, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", d.SourceName, d.Line, d.Col, d.Message)
}

// List is an ordered collection of diagnostics, in the order the parser
// found them.
type List []Diagnostic

func (l *List) Add (d Diagnostic) {
	*l = append(*l, d)
}

// Has reports whether the list contains a diagnostic with the given code.
func (l List) Has (code Code) bool {
	for _, d := range l {
		if d.Code == code {
			return true
		}
	}
	return false
}

// First returns the first diagnostic with the given code, or nil.
func (l List) First (code Code) *Diagnostic {
	for i := range l {
		if l[i].Code == code {
			return &l[i]
		}
	}
	return nil
}

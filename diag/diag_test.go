package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew (t *testing.T) {
	d := New(FirstLineNotProject, "App.vbp", 1, 1, 0)
	assert.Equal(t, FirstLineNotProject, d.Code)
	assert.Equal(t, "The first line of a VB6 project file must be a project 'Type' entry.", d.Message)
	assert.Equal(t, "App.vbp:1:1: The first line of a VB6 project file must be a project 'Type' entry.", d.Error())
}

func TestNewValue (t *testing.T) {
	d := NewValue(InvalidBorderStyle, "7", "Main.frm", 12, 22, 340)
	assert.Equal(t, "The `BorderStyle` value is invalid: '7'. Only 0 (None) or 1 (FixedSingle) are valid values.", d.Message)

	d = NewValue(InvalidTopLevelControl, "VB.Label", "Main.frm", 2, 1, 30)
	assert.Equal(t, "Invalid top-level control type: 'VB.Label'. Form files must have either 'VB.Form' or 'VB.MDIForm' as the top-level element.", d.Message)
}

func TestErrorWithoutName (t *testing.T) {
	d := New(KeywordNotFound, "", 3, 5, 40)
	assert.Equal(t, "3:5: Keyword not found", d.Error())
}

func TestEveryCodeHasMessage (t *testing.T) {
	for c := InternalParseError; c <= Unparsable; c++ {
		assert.NotEmpty(t, c.Message(), "code %d", int(c))
	}
}

func TestList (t *testing.T) {
	var l List
	l.Add(New(NoEqualSplit, "App.vbp", 4, 1, 50))
	l.Add(New(LineTypeUnknown, "App.vbp", 5, 1, 70))

	assert.True(t, l.Has(NoEqualSplit))
	assert.False(t, l.Has(NoSemicolonSplit))

	d := l.First(LineTypeUnknown)
	assert.NotNil(t, d)
	assert.Equal(t, 5, d.Line)
}

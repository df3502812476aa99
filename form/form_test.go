package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vb6tools/vbcst/diag"
)

const sampleForm = "VERSION 5.00\r\n" +
	"Begin VB.Form frmMain \r\n" +
	"   Caption         =   \"Main Window\"\r\n" +
	"   ClientHeight    =   3090\r\n" +
	"   BeginProperty Font \r\n" +
	"      Name            =   \"MS Sans Serif\"\r\n" +
	"      Size            =   8.25\r\n" +
	"   EndProperty\r\n" +
	"   Begin VB.CommandButton cmdGo \r\n" +
	"      Caption         =   \"Go\"\r\n" +
	"   End\r\n" +
	"   Begin VB.Menu mnuFile \r\n" +
	"      Caption         =   \"&File\"\r\n" +
	"      Begin VB.Menu mnuFileOpen \r\n" +
	"         Caption         =   \"&Open\"\r\n" +
	"      End\r\n" +
	"   End\r\n" +
	"End\r\n" +
	"Attribute VB_Name = \"frmMain\"\r\n"

func TestExtractControlTree (t *testing.T) {
	root, diags := Parse("frmMain.frm", []byte(sampleForm))
	require.Empty(t, diags)
	require.NotNil(t, root)

	assert.Equal(t, "VB", root.Namespace)
	assert.Equal(t, "Form", root.Kind)
	assert.Equal(t, "frmMain", root.Name)

	caption, ok := root.Property("Caption")
	require.True(t, ok)
	assert.Equal(t, "\"Main Window\"", caption.Value)
	assert.False(t, caption.IsGroup())

	require.Len(t, root.Controls, 1)
	assert.Equal(t, "CommandButton", root.Controls[0].Kind)
	assert.Equal(t, "cmdGo", root.Controls[0].Name)

	require.Len(t, root.Menus, 1)
	menu := root.Menus[0]
	assert.Equal(t, "mnuFile", menu.Name)
	require.Len(t, menu.Menus, 1)
	assert.Equal(t, "mnuFileOpen", menu.Menus[0].Name)
}

func TestExtractPropertyGroup (t *testing.T) {
	root, diags := Parse("frmMain.frm", []byte(sampleForm))
	require.Empty(t, diags)

	font, ok := root.Property("Font")
	require.True(t, ok)
	require.True(t, font.IsGroup())
	require.Len(t, font.Group, 2)
	assert.Equal(t, "Name", font.Group[0].Name)
	assert.Equal(t, "\"MS Sans Serif\"", font.Group[0].Value)
	assert.Equal(t, "Size", font.Group[1].Name)
	assert.Equal(t, "8.25", font.Group[1].Value)
}

func TestPropertyOrderPreserved (t *testing.T) {
	root, _ := Parse("frmMain.frm", []byte(sampleForm))
	names := make([]string, len(root.Properties))
	for i, p := range root.Properties {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Caption", "ClientHeight", "Font"}, names)
}

func TestParseCarriesDiagnostics (t *testing.T) {
	text := "VERSION 5.00\r\n" +
		"Begin VB.Form frmMain \r\n" +
		"   Appearance      =   7\r\n" +
		"End\r\n"
	root, diags := Parse("bad.frm", []byte(text))
	require.NotNil(t, root)
	assert.True(t, diags.Has(diag.InvalidAppearance))

	// The invalid value still extracts.
	appearance, ok := root.Property("Appearance")
	require.True(t, ok)
	assert.Equal(t, "7", appearance.Value)
}

func TestNoControlBlock (t *testing.T) {
	root, diags := Parse("empty.frm", []byte("VERSION 5.00\r\n"))
	assert.Nil(t, root)
	assert.True(t, diags.Has(diag.BeginKeywordMissing))
}

func TestSplitResource (t *testing.T) {
	res, err := SplitResource("\"frmMain.frx\":0AB3")
	require.NoError(t, err)
	assert.Equal(t, "frmMain.frx", res.File)
	assert.Equal(t, int64(0x0AB3), res.Offset)

	_, err = SplitResource("\"frmMain.frx\"")
	require.Error(t, err)
	assert.EqualError(t, err, diag.NoColonForOffsetSplit.Message())

	_, err = SplitResource("\"frmMain.frx\":zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not hexadecimal")
}

package parser

import (
	"strconv"
	"strings"

	"github.com/vb6tools/vbcst/diag"
)

// valueRule ties one validated form property to its diagnostic code and the
// closed set of serialized values it accepts.
type valueRule struct {
	code diag.Code
	ok   func (value string) bool
}

func boolValue (value string) bool {
	switch strings.ToLower(value) {
	case "0", "1", "-1", "true", "false":
		return true
	}
	return false
}

func intIn (allowed ...int) func (string) bool {
	set := make(map[int]bool, len(allowed))
	for _, v := range allowed {
		set[v] = true
	}
	return func (value string) bool {
		n, err := strconv.Atoi(value)
		return err == nil && set[n]
	}
}

func intRange (lo, hi int) func (string) bool {
	return func (value string) bool {
		n, err := strconv.Atoi(value)
		return err == nil && n >= lo && n <= hi
	}
}

// formPropertyRules validates serialized enum and flag values regardless of
// which control carries them.
var formPropertyRules = map[string]valueRule{
	"activation":        {diag.InvalidActivation, boolValue},
	"align":             {diag.InvalidAlign, intRange(0, 4)},
	"alignment":         {diag.InvalidAlignment, intIn(0, 1, 2)},
	"appearance":        {diag.InvalidAppearance, intIn(0, 1)},
	"archive":           {diag.InvalidArchiveAttribute, boolValue},
	"autoactivate":      {diag.InvalidAutoActivate, intRange(0, 3)},
	"autoredraw":        {diag.InvalidAutoRedraw, boolValue},
	"autosize":          {diag.InvalidAutoSize, boolValue},
	"backcolor":         {diag.HexColorParseError, hexColor},
	"backstyle":         {diag.InvalidBackStyle, intIn(0, 1)},
	"bofaction":         {diag.InvalidBOFAction, intIn(0, 1)},
	"bordercolor":       {diag.HexColorParseError, hexColor},
	"borderstyle":       {diag.InvalidBorderStyle, intIn(0, 1)},
	"causesvalidation":  {diag.InvalidCausesValidation, boolValue},
	"clipcontrols":      {diag.InvalidClipControls, intIn(0, 1)},
	"controlbox":        {diag.InvalidControlBox, boolValue},
	"defaultcursortype": {diag.InvalidDefaultCursorType, intIn(0, 1, 2)},
	"defaulttype":       {diag.InvalidDatabaseDriverType, intIn(1, 2)},
	"displaytype":       {diag.InvalidDisplayType, intIn(0, 1)},
	"dragmode":          {diag.InvalidDragMode, intIn(0, 1)},
	"drawmode":          {diag.InvalidDrawMode, intRange(1, 16)},
	"drawstyle":         {diag.InvalidDrawStyle, intRange(0, 6)},
	"eofaction":         {diag.InvalidEOFAction, intIn(0, 1, 2)},
	"fillcolor":         {diag.HexColorParseError, hexColor},
	"fillstyle":         {diag.InvalidFillStyle, intRange(0, 7)},
	"fonttransparent":   {diag.InvalidFontTransparency, boolValue},
	"forecolor":         {diag.HexColorParseError, hexColor},
	"hasdc":             {diag.InvalidHasDeviceContext, boolValue},
	"hidden":            {diag.InvalidHiddenAttribute, boolValue},
	"linkmode":          {diag.InvalidLinkMode, intRange(0, 3)},
	"maskcolor":         {diag.HexColorParseError, hexColor},
	"maxbutton":         {diag.InvalidMaxButton, boolValue},
	"minbutton":         {diag.InvalidMinButton, boolValue},
	"mousepointer":      {diag.InvalidMousePointer, mousePointerValue},
	"moveable":          {diag.InvalidMovability, boolValue},
	"multiline":         {diag.InvalidMultiLine, boolValue},
	"multiselect":       {diag.InvalidMultiSelect, intIn(0, 1, 2)},
	"negotiateposition": {diag.InvalidNegotiatePosition, intRange(0, 3)},
	"normal":            {diag.InvalidNormalAttribute, boolValue},
	"oledragmode":       {diag.InvalidOLEDragMode, intIn(0, 1)},
	"oledropmode":       {diag.InvalidOLEDropMode, intIn(0, 1)},
	"oletypeallowed":    {diag.InvalidOLETypeAllowed, intIn(0, 1, 2)},
	"palettemode":       {diag.InvalidPaletteMode, intIn(0, 1, 2)},
	"readonly":          {diag.InvalidReadOnlyAttribute, boolValue},
	"recordsettype":     {diag.InvalidRecordSetType, intIn(0, 1, 2)},
	"righttoleft":       {diag.InvalidTextDirection, boolValue},
	"scalemode":         {diag.InvalidScaleMode, intRange(0, 10)},
	"scrollbars":        {diag.InvalidScrollBars, intRange(0, 3)},
	"shape":             {diag.InvalidShape, intRange(0, 5)},
	"showintaskbar":     {diag.InvalidShowInTaskbar, boolValue},
	"sizemode":          {diag.InvalidSizeMode, intRange(0, 3)},
	"style":             {diag.InvalidStyle, intIn(0, 1)},
	"system":            {diag.InvalidSystemAttribute, boolValue},
	"tabstop":           {diag.InvalidTabStop, boolValue},
	"updateoptions":     {diag.InvalidUpdateOptions, intIn(0, 1, 2)},
	"visible":           {diag.InvalidVisibility, boolValue},
	"whatsthisbutton":   {diag.InvalidWhatsThisButton, boolValue},
	"whatsthishelp":     {diag.InvalidWhatsThisHelp, boolValue},
	"windowstate":       {diag.InvalidWindowState, intIn(0, 1, 2)},
	"wordwrap":          {diag.InvalidWordWrap, boolValue},
}

// formKindRules override the shared table where a property's value set
// depends on which control carries it. Keys are lowercase control kinds.
var formKindRules = map[string]map[string]valueRule{
	"form": {
		"borderstyle": {diag.InvalidFormBorderStyle, intRange(0, 5)},
		"linkmode":    {diag.InvalidFormLinkMode, intIn(0, 1)},
	},
	"mdiform": {
		"borderstyle": {diag.InvalidFormBorderStyle, intRange(0, 5)},
		"linkmode":    {diag.InvalidFormLinkMode, intIn(0, 1)},
	},
	"checkbox": {
		"value":     {diag.InvalidCheckBoxValue, intIn(0, 1, 2)},
		"alignment": {diag.InvalidJustifyAlignment, intIn(0, 1)},
	},
	"optionbutton": {
		"value":     {diag.InvalidOptionButtonValue, intIn(0, 1)},
		"alignment": {diag.InvalidJustifyAlignment, intIn(0, 1)},
	},
	"combobox": {
		"style": {diag.InvalidComboBoxStyle, intIn(0, 1, 2)},
	},
	"listbox": {
		"style": {diag.InvalidListBoxStyle, intIn(0, 1)},
	},
	"data": {
		// Connect serializes as a quoted driver name from a fixed set.
		"connect": {diag.InvalidConnectionType, connectDriverValue},
	},
}

var connectDrivers = map[string]bool{
	"Access": true, "dBase III": true, "dBase IV": true, "dBase 5.0": true,
	"Excel 3.0": true, "Excel 4.0": true, "Excel 5.0": true, "Excel 8.0": true,
	"FoxPro 2.0": true, "FoxPro 2.5": true, "FoxPro 2.6": true, "FoxPro 3.0": true,
	"Lotus WK1": true, "Lotus WK3": true, "Lotus WK4": true,
	"Paradox 3.X": true, "Paradox 4.X": true, "Paradox 5.X": true,
	"Text": true,
}

func connectDriverValue (value string) bool {
	return connectDrivers[strings.Trim(value, `"`)]
}

func mousePointerValue (value string) bool {
	n, err := strconv.Atoi(value)
	return err == nil && ((n >= 0 && n <= 15) || n == 99)
}

// hexColor accepts the serialized color form &HKKBBGGRR& where KK is 00
// (RGB) or 80 (system palette index). The trailing ampersand is optional.
func hexColor (value string) bool {
	u := strings.ToUpper(value)
	if len(u) == 11 {
		if u[10] != '&' {
			return false
		}
		u = u[:10]
	}
	if len(u) != 10 || !strings.HasPrefix(u, "&H") {
		return false
	}
	for i := 2; i < 10; i++ {
		b := u[i]
		if !(b >= '0' && b <= '9' || b >= 'A' && b <= 'F') {
			return false
		}
	}
	return u[2:4] == "00" || u[2:4] == "80"
}

// knownControlKinds lists the built-in control types a form file can
// declare. Anything else in a Begin line is reported, custom controls
// included, though its block still parses.
var knownControlKinds = map[string]bool{
	"checkbox": true, "combobox": true, "commandbutton": true,
	"data": true, "dirlistbox": true, "drivelistbox": true,
	"filelistbox": true, "form": true, "frame": true, "hscrollbar": true,
	"image": true, "label": true, "line": true, "listbox": true,
	"mdiform": true, "menu": true, "ole": true, "optionbutton": true,
	"picturebox": true, "shape": true, "textbox": true, "vscrollbar": true,
}

// formPropertyRule resolves the rule for a property, preferring the
// control-kind-specific table.
func formPropertyRule (controlKind, key string) (valueRule, bool) {
	k := strings.ToLower(key)
	if byKind, ok := formKindRules[strings.ToLower(controlKind)]; ok {
		if rule, ok := byKind[k]; ok {
			return rule, ok
		}
	}
	rule, ok := formPropertyRules[k]
	return rule, ok
}

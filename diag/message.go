package diag

import "strings"

// messages holds the template text per code. Parameterized messages carry a
// single %s verb filled by NewValue. The wording, typos included, is frozen:
// consumers match it exactly.
var messages = map[Code]string{
	InternalParseError: "Internal Parser Error - please report this issue to the developers.",

	UnterminatedString:           "String is unterminated",
	UnknownToken:                 "Unknown token",
	LikelyNonEnglishCharacterSet: "The file contains more than a significant number of non-ASCII characters. This file was likely saved in a non-English character set. Non-English source files are not currently supported.",

	VersionKeywordMissing:            "The 'VERSION' keyword is missing from the form file header.",
	PeriodExpectedInVersionNumber:    "Period expected in version number",
	MajorVersionUnparsable:           "Major version is not a number.",
	MinorVersionUnparsable:           "Minor version is not a number.",
	MissingNameAttribute:             "No name in the attribute section of the VB6 file",
	UnknownAttribute:                 "Unknown attribute in class header file. Must be one of: VB_Name, VB_GlobalNameSpace, VB_Creatable, VB_PredeclaredId, VB_Exposed, VB_Description, VB_Ext_KEY",
	TrueFalseOneZeroNegOneUnparsable: "Error parsing true/false from header. Must be a 0 (false), -1 (true), or 1 (true)",
	Header:                           "Error parsing header",
	FileContent:                      "Error parsing the VB6 file contents",

	KeywordNotFound:     "Keyword not found",
	VariableNameTooLong: "Variable names must be less than 255 characters in VB6.",

	BeginKeywordMissing:           "The 'Begin' keyword is missing from the form file header.",
	NoForm:                        "Form parse error. No Form found in form file.",
	InvalidTopLevelControl:        "Invalid top-level control type: '%s'. Form files must have either 'VB.Form' or 'VB.MDIForm' as the top-level element.",
	NoNamespaceAfterBegin:         "Expected namespace after Begin keyword",
	NoDotAfterNamespace:           "No dot found after namespace",
	NoUserControlNameAfterDot:     "No User Control name found after namespace and '.'",
	NoSpaceAfterControlKind:       "No space after Control kind",
	NoControlNameAfterControlKind: "No control name found after Control kind",
	NoLineEndingAfterControlName:  "No line ending after Control name",
	NoPropertyName:                "No property name found after BeginProperty keyword.",
	NoEndProperty:                 "No EndProperty found after BeginProperty",
	NoLineEndingAfterEndProperty:  "No line ending after EndProperty",
	NoColonForOffsetSplit:         "While trying to parse the offset into the resource file, no colon ':' was found.",
	NoKeyValueDividerFound:        "No key value divider found in the line.",
	KeyValueParseError:            "Key value pair format is incorrect",
	UnknownControlKind:            "Unknown control in control list",
	HexColorParseError:            "Unable to parse hex color value",
	StringParseError:              "Unable to parse VB6 string.",
	PropertyError:                 "Property parsing error",
	AttributeParseError:           "Parse error while processing Form attributes.",
	TokenParseError:               "Parse error while attempting to parse Form tokens.",

	InvalidActivation:         "The `Activation` value is invalid: '%s'. Only 0 (Disabled) or -1 (Enabled) are valid values.",
	InvalidAlign:              "The `Align` value is invalid: '%s'. Only 0 (None), 1 (Top), 2 (Bottom), 3 (Left), or 4 (Right) are valid values.",
	InvalidAlignment:          "The `Alignment` value is invalid: '%s'. Only 0 (Left), 1 (Center), or 2 (Right) are valid values.",
	InvalidAppearance:         "The `Appearance` value is invalid: '%s'. Only 0 (Flat) or 1 (ThreeD) are valid values.",
	InvalidArchiveAttribute:   "The `ArchiveAttribute` value is invalid: '%s'. Only 0 (Exclude) or -1 (Include) are valid values.",
	InvalidAutoActivate:       "The `AutoActivate` value is invalid: '%s'. Only 0 (Manual), 1 (GetFocus), 2 (DoubleClick), or 3 (Automatic) are valid values.",
	InvalidAutoRedraw:         "The `AutoRedraw` value is invalid: '%s'. Only 0 (Manual) or -1 (Automatic) are valid values.",
	InvalidAutoSize:           "The `AutoSize` value is invalid: '%s'. Only 0 (Fixed) or -1 (Resize) are valid values.",
	InvalidBOFAction:          "The `BOFAction` value is invalid: '%s'. Only 0 (MoveFirst), or 1 (BOF) are valid values.",
	InvalidBackStyle:          "The `BackStyle` value is invalid: '%s'. Only 0 (Transparent) or 1 (Opaque) are valid values.",
	InvalidBorderStyle:        "The `BorderStyle` value is invalid: '%s'. Only 0 (None) or 1 (FixedSingle) are valid values.",
	InvalidCausesValidation:   "The `CausesValidation` value is invalid: '%s'. Only 0 (No) or -1 (Yes) are valid values.",
	InvalidCheckBoxValue:      "The `CheckBox` value is invalid: '%s'. Only 0 (Unchecked), 1 (Checked), or 2 (Grayed) are valid values.",
	InvalidClipControls:       "The `ClipControls` value is invalid: '%s'. Only 0 (Unbounded) or 1 (Clipped) are valid values.",
	InvalidComboBoxStyle:      "The `ComboBox` style is invalid: '%s'. Only 0 (Dropdown Combo), 1 (Simple Combo), or 2 (Dropdown List) are valid styles.",
	InvalidConnectionType:     "The `ConnectionType` value is invalid: '%s'. Only 'Access', 'dBase III', 'dBase IV', 'dBase 5.0', 'Excel 3.0', 'Excel 4.0', 'Excel 5.0', 'Excel 8.0', 'FoxPro 2.0', 'FoxPro 2.5', 'FoxPro 2.6', 'FoxPro 3.0', 'Lotus WK1', 'Lotus WK3', 'Lotus WK4', 'Paradox 3.X', 'Paradox 4.X', 'Paradox 5.X', or 'Text' are valid values.",
	InvalidControlBox:         "The `ControlBox` value is invalid: '%s'. Only 0 (Excluded) or -1 (Included) are valid values.",
	InvalidDatabaseDriverType: "The `DatabaseDriverType` value is invalid: '%s'. Only 1 (ODBC), or 2 (Jet) are valid values.",
	InvalidDefaultCursorType:  "The `DefaultCursorType` value is invalid: '%s'. Only 0 (Default), 1 (Odbc), or 2 (ServerSide) are valid values.",
	InvalidDisplayType:        "The `DisplayType` value is invalid: '%s'. Only 0 (Content) or 1 (Icon) are valid values.",
	InvalidDragMode:           "The `DragMode` value is invalid: '%s'. Only 0 (Manual) or 1 (Automatic) are valid values.",
	InvalidDrawMode:           "The `DrawMode` value is invalid: '%s'. Only 1 (Blackness), 2 (NotMergePen), 3 (MaskNotPen), 4 (NotCopyPen), 5 (MaskPenNot), 6 (Invert), 7 (XorPen), 8 (NotMaskPen), 9 (MaskPen), 10 (NotXorPen), 11 (Nop), 12 (MergeNotPen), 13 (CopyPen), 14 (MergePenNot), 15 (Merge Pen), or 16 (Whiteness) are valid values.",
	InvalidDrawStyle:          "The `DrawStyle` value is invalid: '%s'. Only 0 (Solid), 1 (Dash), 2 (Dot), 3 (DashDot), 4 (DashDotDot), 5 (Transparent), or 6 (InsideSolid) are valid values.",
	InvalidEOFAction:          "The `EOFAction` value is invalid: '%s'. Only 0 (MoveLast), 1 (EOF), or 2 (AddNew) are valid values.",
	InvalidFillStyle:          "The `FillStyle` value is invalid: '%s'. Only 0 (Solid), 1 (Transparent), 2 (HorizontalLine), 3 (VerticalLine), 4 (UpwardDiagonal), 5 (DownwardDiagonal), 6 (Cross), or 7 (DiagonalCross) are valid values.",
	InvalidFontTransparency:   "The `FontTransparency` value is invalid: '%s'. Only 0 (Opaque) or -1 (Transparent) are valid values.",
	InvalidFormBorderStyle:    "The `FormBorderStyle` value is invalid: '%s'. Only 0 (None), 1 (FixedSingle), 2 (Sizable), 3 (FixedDialog), 4 (FixedToolWindow), or 5 (SizableToolWindow) are valid values.",
	InvalidFormLinkMode:       "The `LinkMode` value is invalid: '%s'. Only 0 (None) or 1 (Source).",
	InvalidHasDeviceContext:   "The `HasDeviceContext` value is invalid: '%s'. Only 0 (No) or -1 (Yes) are valid values.",
	InvalidHiddenAttribute:    "The `Hidden` valud is invalid: '%s'. Only 0 (Exclude) or -1 (Include) are valid values.",
	InvalidJustifyAlignment:   "The `JustifyAlignment` value is invalid: '%s'. Only 0 (Left), 1 (Right) are valid values.",
	InvalidLinkMode:           "The `LinkMode` value is invalid: '%s'. Only 0 (None), 1 (Automatic), 2 (Manual), or 3 (Notify) are valid values.",
	InvalidListBoxStyle:       "The `ListBoxStyle` value is invalid: '%s'. Only 0 (Standard) or 1 (Checkbox) are valid values.",
	InvalidMaxButton:          "The `MaxButton` value is invalid: '%s'. Only 0 (Excluded) or -1 (Included) are valid values.",
	InvalidMinButton:          "The `MinButton` value is invalid: '%s'. Only 0 (Excluded) or -1 (Included) are valid values.",
	InvalidMousePointer:       "The `MousePointer` value is invalid: '%s'. Only 0 (Default), 1 (Arrow), 2 (Cross), 3 (IBeam), 4 (Icon), 5 (Size), 6 (SizeNESW), 7 (SizeNS), 8 (SizeNWSE), 9 (SizeWE), 10 (UpArrow), 11 (Hourglass), 12 (NoDrop), 13 (ArrowHourglass), 14 (ArrowQuestion), 15 (SizeAll), or 99 (Custom) are valid values.",
	InvalidMovability:         "The `Movability` value is invalid: '%s'. Only 0 (Fixed) or -1 (Movable) are valid values.",
	InvalidMultiLine:          "The `MultiLine` value is invalid: '%s'. Only 0 (SingleLine) or -1 (MultiLine) are valid values.",
	InvalidMultiSelect:        "The `MultiSelect` value is invalid: '%s'. Only 0 (None), 1 (Simple), or 2 (Extended) are valid values.",
	InvalidNegotiatePosition:  "The `NegotiatePosition` value is invalid: '%s'. Only 0 (None), 1 (Left), 2 (Middle), or 3 (Right) are valid values.",
	InvalidNormalAttribute:    "The `Normal` value is invalid: '%s'. Only 0 (Exclude) or -1 (Include) are valid values.",
	InvalidOLEDragMode:        "The `OLEDragMode` value is invalid: '%s'. Only 0 (Manual), or 1 (Automatic) are valid values.",
	InvalidOLEDropMode:        "The `OLEDropMode` value is invalid: '%s'. Only 0 (None), or 1 (Manual) are valid values.",
	InvalidOLETypeAllowed:     "The `OLETypeAllowed` value is invalid: '%s'. Only 0 (Link), 1 (Embedded), or 2 (Either) are valid values.",
	InvalidOptionButtonValue:  "The `OptionButtonValue` value is invalid: '%s'. Only 0 (UnSelected), or 1 (Selected) are valid values.",
	InvalidPaletteMode:        "The `PaletteMode` value is invalid: '%s'. Only 0 (HalfTone), 1 (UseZOrder), or 2 (Custom) are valid values.",
	InvalidReadOnlyAttribute:  "The `ReadOnly` value is invalid: '%s'. Only 0 (Exclude) or -1 (Include) are valid values.",
	InvalidRecordSetType:      "The `RecordSetType` value is invalid: '%s'. Only 0 (Table), 1 (Dynaset), or 2 (Snapshot) are valid values.",
	InvalidScaleMode:          "The `ScaleMode` value is invalid: '%s'. Only 0 (User), 1 (Twips), 2 (Points), 3 (Pixels), 4 (Characters), 5 (Inches), 6 (Millimeters), 7 (Centimeters), 8 (HiMetric), 9 (ContainerPosition), 10 (ContainerSize) are valid values.",
	InvalidScrollBars:         "The `ScrollBars` value is invalid: '%s'. Only 0 (None), 1 (Horizontal), 2 (Vertical), or 3 (Both) are valid values.",
	InvalidShape:              "The `Shape` value is invalid: '%s'. Only 0 (Rectangle), 1 (Square), 2 (Oval), 3 (Circle), 4 (RoundedRectangle), or 5 (RoundSquare) are valid values.",
	InvalidShowInTaskbar:      "The `ShowInTaskbar` value is invalid: '%s'. Only 0 (Hide) or -1 (Show) are valid values.",
	InvalidSizeMode:           "The `SizeMode` value is invalid: '%s'. Only 0 (Clip), 1 (Stretch), 2 (AutoSize), or 3 (Zoom) are valid values.",
	InvalidStyle:              "The `Style` value is invalid: '%s'. Only 0 (Standard) or 1 (Graphical) are valid values.",
	InvalidSystemAttribute:    "The `System` value is invalid: '%s'. Only 0 (Exclude) or -1 (Include) are valid values.",
	InvalidTabStop:            "The `TabStop` value is invalid: '%s'. Only 0 (ProgrammaticOnly) or -1 (Included) are valid values.",
	InvalidTextDirection:      "The `TextAlign` value is invalid: '%s'. Only 0 (LeftToRight) or -1 (RightToLeft) are valid values.",
	InvalidUpdateOptions:      "The `UpdateOptions` value is invalid: '%s'. Only 0 (Automatic), 1 (Frozen), or 2 (Manual) are valid values.",
	InvalidVisibility:         "The `Visibility` value is invalid: '%s'. Only 0 (Hidden) or -1 (Visible) are valid values.",
	InvalidWhatsThisButton:    "The `WhatsThisButton` value is invalid: '%s'. Only 0 (Excluded) or -1 (Included) are valid values.",
	InvalidWhatsThisHelp:      "The `WhatsThisHelp` value is invalid: '%s'. Only 0 (F1Help) or -1 (WhatsThisHelp) are valid values.",
	InvalidWindowState:        "The `WindowState` value is invalid: '%s'. Only 0 (Normal), 1 (Minimized), or 2 (Maximized) are valid values.",
	InvalidWordWrap:           "The `WordWrap` value is invalid: '%s'. Only 0 (False) or -1 (True) are valid values.",

	FirstLineNotProject:          "The first line of a VB6 project file must be a project 'Type' entry.",
	LineTypeUnknown:              "Line type is unknown.",
	ProjectTypeUnknown:           "Project type is not Exe, OleDll, Control, or OleExe",
	NoVersion:                    "Project lacks a version number.",
	NoObjects:                    "Project parse error while processing an Object line.",
	NoBegin:                      "Project parse error, failure to find BEGIN element.",
	NoLineEnding:                 "Project line entry is not ended with a recognized line ending.",
	UnableToParseUuid:            "Unable to parse the Uuid",
	NoSemicolonSplit:             "Unable to find a semicolon ';' in this line.",
	NoEqualSplit:                 "Unable to find an equal '=' in this line.",
	ReferenceExtraSections:       "The reference line has too many elements",
	ReferenceMissingSections:     "The reference line has too few elements",
	RevisionVersionUnparsable:    "Revision version is not a number.",
	ThreadingModelUnparsable:     "Unable to parse the value after ThreadingModel key",
	ThreadingModelInvalid:        "ThreadingModel can only be 0 (Apartment Threaded), or 1 (Single Threaded)",
	ThreadPerObjectUnparsable:    "Thread Per Object is not a number.",
	MaxThreadsUnparsable:         "Max Threads is not a number.",
	DllBaseAddressUnparsable:     "Unable to parse hex address from DllBaseAddress key",
	StartupUnparsable:            "The Startup object is not a valid parameter. Must be a quoted startup method/object, \"(None)\", !(None)!, \"\", or \"!!\"",
	NameUnparsable:               "The Name parameter is invalid. Must be a quoted name, \"(None)\", !(None)!, \"\", or \"!!\"",
	CommandLineUnparsable:        "The CommandLine parameter is invalid. Must be a quoted command line, \"(None)\", !(None)!, \"\", or \"!!\"",
	HelpContextIdUnparsable:      "The HelpContextId parameter is not a valid parameter line. Must be a quoted help context id, \"(None)\", !(None)!, \"\", or \"!!\"",
	TitleUnparsable:              "Title text was unparsable",
	CommentUnparsable:            "Comment line was unparsable",
	PropertyPageUnparsable:       "PropertyPage line was unparsable",
	RelatedDocLineUnparsable:     "Unable to parse the RelatedDoc property line.",
	DesignerLineUnparsable:       "Designer line is unparsable",
	FormLineUnparsable:           "Form line is unparsable",
	UserControlLineUnparsable:    "UserControl line is unparsable",
	UserDocumentLineUnparsable:   "UserDocument line is unparsable",
	AutoIncrementUnparsable:      "AutoIncrement can only be a 0 (false) or a -1 (true)",
	CompatibilityModeUnparsable:  "CompatibilityMode can only be a 0 (NoCompatibility), 1 (Project), or 2 (CompatibleExe)",
	NoControlUpgradeUnparsable:   "NoControlUpgrade can only be a 0 (Upgrade) or a 1 (NoUpgrade)",
	ServerSupportFilesUnparsable: "ServerSupportFiles can only be a 0 (false) or a -1 (true)",
	CompilationTypeUnparsable:    "CompilationType can only be a 0 (false) or a -1 (true)",
	OptimizationTypeUnparsable:   "OptimizationType can only be a 0 (FastCode) or 1 (SmallCode), or 2 (NoOptimization)",
	FavorPentiumProUnparsable:    "FavorPentiumPro(tm) can only be a 0 (false) or a -1 (true)",
	CodeViewDebugInfoUnparsable:  "CodeViewDebugInfo can only be a 0 (false) or a -1 (true)",
	NoAliasingUnparsable:         "NoAliasing can only be a 0 (false) or a -1 (true)",
	UnusedControlInfoUnparsable:  "RemoveUnusedControlInfo can only be 0 (Retain) or -1 (Remove)",
	BoundsCheckUnparsable:        "BoundsCheck can only be a 0 (false) or a -1 (true)",
	OverflowCheckUnparsable:      "OverflowCheck can only be a 0 (false) or a -1 (true)",
	FlPointCheckUnparsable:       "FlPointCheck can only be a 0 (false) or a -1 (true)",
	FDIVCheckUnparsable:          "FDIVCheck can only be a 0 (CheckPentiumFDivBug) or a -1 (NoPentiumFDivBugCheck)",
	UnroundedFPUnparsable:        "UnroundedFP can only be a 0 (DoNotAllow) or a -1 (Allow)",
	StartModeUnparsable:          "StartMode can only be a 0 (StandAlone) or a 1 (Automation)",
	UnattendedUnparsable:         "Unattended can only be a 0 (false) or a -1 (true)",
	RetainedUnparsable:           "Retained can only be a 0 (UnloadOnExit) or a 1 (RetainedInMemory)",
	DebugStartupOptionUnparsable: "DebugStartup can only be a 0 (false) or a -1 (true)",
	UseExistingBrowserUnparsable: "UseExistingBrowser can only be a 0 (DoNotUse) or a -1 (Use)",
	AutoRefreshUnparsable:        "AutoRefresh can only be a 0 (false) or a -1 (true)",
	ShortCutUnparsable:           "Unable to parse the ShortCut property.",
	Unparsable:                   "Unknown parser error",
}

// Message returns the template text for c. Parameterized templates keep the
// %s verb.
func (c Code) Message () string {
	return messages[c]
}

// Parameterized reports whether c's message template takes a value.
func (c Code) Parameterized () bool {
	return strings.Contains(messages[c], "%s")
}

// Package diag defines the closed diagnostic taxonomy and positioned
// diagnostics produced while parsing. Message text is a stable contract:
// downstream tools match on exact wording.
package diag

// Code identifies one diagnostic in the taxonomy.
type Code int

const (
	InternalParseError Code = iota

	// Lexing
	UnterminatedString
	UnknownToken
	LikelyNonEnglishCharacterSet

	// Header
	VersionKeywordMissing
	PeriodExpectedInVersionNumber
	MajorVersionUnparsable
	MinorVersionUnparsable
	MissingNameAttribute
	UnknownAttribute
	TrueFalseOneZeroNegOneUnparsable
	Header
	FileContent

	// Statements
	KeywordNotFound
	VariableNameTooLong

	// Form structure
	BeginKeywordMissing
	NoForm
	InvalidTopLevelControl
	NoNamespaceAfterBegin
	NoDotAfterNamespace
	NoUserControlNameAfterDot
	NoSpaceAfterControlKind
	NoControlNameAfterControlKind
	NoLineEndingAfterControlName
	NoPropertyName
	NoEndProperty
	NoLineEndingAfterEndProperty
	NoColonForOffsetSplit
	NoKeyValueDividerFound
	KeyValueParseError
	UnknownControlKind
	HexColorParseError
	StringParseError
	PropertyError
	AttributeParseError
	TokenParseError

	// Form property values
	InvalidActivation
	InvalidAlign
	InvalidAlignment
	InvalidAppearance
	InvalidArchiveAttribute
	InvalidAutoActivate
	InvalidAutoRedraw
	InvalidAutoSize
	InvalidBOFAction
	InvalidBackStyle
	InvalidBorderStyle
	InvalidCausesValidation
	InvalidCheckBoxValue
	InvalidClipControls
	InvalidComboBoxStyle
	InvalidConnectionType
	InvalidControlBox
	InvalidDatabaseDriverType
	InvalidDefaultCursorType
	InvalidDisplayType
	InvalidDragMode
	InvalidDrawMode
	InvalidDrawStyle
	InvalidEOFAction
	InvalidFillStyle
	InvalidFontTransparency
	InvalidFormBorderStyle
	InvalidFormLinkMode
	InvalidHasDeviceContext
	InvalidHiddenAttribute
	InvalidJustifyAlignment
	InvalidLinkMode
	InvalidListBoxStyle
	InvalidMaxButton
	InvalidMinButton
	InvalidMousePointer
	InvalidMovability
	InvalidMultiLine
	InvalidMultiSelect
	InvalidNegotiatePosition
	InvalidNormalAttribute
	InvalidOLEDragMode
	InvalidOLEDropMode
	InvalidOLETypeAllowed
	InvalidOptionButtonValue
	InvalidPaletteMode
	InvalidReadOnlyAttribute
	InvalidRecordSetType
	InvalidScaleMode
	InvalidScrollBars
	InvalidShape
	InvalidShowInTaskbar
	InvalidSizeMode
	InvalidStyle
	InvalidSystemAttribute
	InvalidTabStop
	InvalidTextDirection
	InvalidUpdateOptions
	InvalidVisibility
	InvalidWhatsThisButton
	InvalidWhatsThisHelp
	InvalidWindowState
	InvalidWordWrap

	// Project manifest
	FirstLineNotProject
	LineTypeUnknown
	ProjectTypeUnknown
	NoVersion
	NoObjects
	NoBegin
	NoLineEnding
	UnableToParseUuid
	NoSemicolonSplit
	NoEqualSplit
	ReferenceExtraSections
	ReferenceMissingSections
	RevisionVersionUnparsable
	ThreadingModelUnparsable
	ThreadingModelInvalid
	ThreadPerObjectUnparsable
	MaxThreadsUnparsable
	DllBaseAddressUnparsable
	StartupUnparsable
	NameUnparsable
	CommandLineUnparsable
	HelpContextIdUnparsable
	TitleUnparsable
	CommentUnparsable
	PropertyPageUnparsable
	RelatedDocLineUnparsable
	DesignerLineUnparsable
	FormLineUnparsable
	UserControlLineUnparsable
	UserDocumentLineUnparsable
	AutoIncrementUnparsable
	CompatibilityModeUnparsable
	NoControlUpgradeUnparsable
	ServerSupportFilesUnparsable
	CompilationTypeUnparsable
	OptimizationTypeUnparsable
	FavorPentiumProUnparsable
	CodeViewDebugInfoUnparsable
	NoAliasingUnparsable
	UnusedControlInfoUnparsable
	BoundsCheckUnparsable
	OverflowCheckUnparsable
	FlPointCheckUnparsable
	FDIVCheckUnparsable
	UnroundedFPUnparsable
	StartModeUnparsable
	UnattendedUnparsable
	RetainedUnparsable
	DebugStartupOptionUnparsable
	UseExistingBrowserUnparsable
	AutoRefreshUnparsable
	ShortCutUnparsable
	Unparsable
)

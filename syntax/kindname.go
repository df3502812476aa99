package syntax

import "strconv"

var kindNames = map[Kind]string{
	Root: "Root",

	ModuleStatement:      "ModuleStatement",
	ClassStatement:       "ClassStatement",
	SubStatement:         "SubStatement",
	FunctionStatement:    "FunctionStatement",
	PropertyStatement:    "PropertyStatement",
	DeclareStatement:     "DeclareStatement",
	EventStatement:       "EventStatement",
	ImplementsStatement:  "ImplementsStatement",
	DefTypeStatement:     "DefTypeStatement",
	DimStatement:         "DimStatement",
	ReDimStatement:       "ReDimStatement",
	EraseStatement:       "EraseStatement",
	ConstStatement:       "ConstStatement",
	TypeStatement:        "TypeStatement",
	EnumStatement:        "EnumStatement",
	IfStatement:          "IfStatement",
	ElseIfClause:         "ElseIfClause",
	ElseClause:           "ElseClause",
	ForStatement:         "ForStatement",
	ForEachStatement:     "ForEachStatement",
	WhileStatement:       "WhileStatement",
	DoStatement:          "DoStatement",
	SelectCaseStatement:  "SelectCaseStatement",
	CaseClause:           "CaseClause",
	CaseElseClause:       "CaseElseClause",
	WithStatement:        "WithStatement",
	CallStatement:        "CallStatement",
	RaiseEventStatement:  "RaiseEventStatement",
	SetStatement:         "SetStatement",
	LetStatement:         "LetStatement",
	AssignmentStatement:  "AssignmentStatement",
	GotoStatement:        "GotoStatement",
	GoSubStatement:       "GoSubStatement",
	ReturnStatement:      "ReturnStatement",
	ResumeStatement:      "ResumeStatement",
	ExitStatement:        "ExitStatement",
	OnErrorStatement:     "OnErrorStatement",
	OnGoToStatement:      "OnGoToStatement",
	OnGoSubStatement:     "OnGoSubStatement",
	StopStatement:        "StopStatement",

	AppActivateStatement:   "AppActivateStatement",
	BeepStatement:          "BeepStatement",
	ChDirStatement:         "ChDirStatement",
	ChDriveStatement:       "ChDriveStatement",
	CloseStatement:         "CloseStatement",
	DateStatement:          "DateStatement",
	DeleteSettingStatement: "DeleteSettingStatement",
	ErrorStatement:         "ErrorStatement",
	FileCopyStatement:      "FileCopyStatement",
	GetStatement:           "GetStatement",
	InputStatement:         "InputStatement",
	KillStatement:          "KillStatement",
	LineInputStatement:     "LineInputStatement",
	LoadStatement:          "LoadStatement",
	LockStatement:          "LockStatement",
	LSetStatement:          "LSetStatement",
	MidBStatement:          "MidBStatement",
	MidStatement:           "MidStatement",
	MkDirStatement:         "MkDirStatement",
	NameStatement:          "NameStatement",
	OpenStatement:          "OpenStatement",
	PrintStatement:         "PrintStatement",
	PutStatement:           "PutStatement",
	RandomizeStatement:     "RandomizeStatement",
	ResetStatement:         "ResetStatement",
	RmDirStatement:         "RmDirStatement",
	RSetStatement:          "RSetStatement",
	SavePictureStatement:   "SavePictureStatement",
	SaveSettingStatement:   "SaveSettingStatement",
	SeekStatement:          "SeekStatement",
	SendKeysStatement:      "SendKeysStatement",
	SetAttrStatement:       "SetAttrStatement",
	TimeStatement:          "TimeStatement",
	UnloadStatement:        "UnloadStatement",
	UnlockStatement:        "UnlockStatement",
	WidthStatement:         "WidthStatement",
	WriteStatement:         "WriteStatement",

	LabelStatement:       "LabelStatement",
	AttributeStatement:   "AttributeStatement",
	OptionStatement:      "OptionStatement",
	ObjectStatement:      "ObjectStatement",
	LibraryStatement:     "LibraryStatement",

	VersionStatement:  "VersionStatement",
	PropertiesBlock:   "PropertiesBlock",
	PropertiesType:    "PropertiesType",
	PropertiesName:    "PropertiesName",
	Property:          "Property",
	PropertyKey:       "PropertyKey",
	PropertyValue:     "PropertyValue",
	PropertyGroup:     "PropertyGroup",
	PropertyGroupName: "PropertyGroupName",

	BinaryExpression:        "BinaryExpression",
	UnaryExpression:         "UnaryExpression",
	LiteralExpression:       "LiteralExpression",
	IdentifierExpression:    "IdentifierExpression",
	MemberAccessExpression:  "MemberAccessExpression",
	CallExpression:          "CallExpression",
	ParenthesizedExpression: "ParenthesizedExpression",
	AddressOfExpression:     "AddressOfExpression",
	TypeOfExpression:        "TypeOfExpression",
	NewExpression:           "NewExpression",
	ArgumentList:            "ArgumentList",
	Argument:                "Argument",
	ParameterList:           "ParameterList",
	Parameter:               "Parameter",
	CodeBlock:               "CodeBlock",

	ProjectTypeLine:         "ProjectTypeLine",
	ProjectReferenceLine:    "ProjectReferenceLine",
	ProjectObjectLine:       "ProjectObjectLine",
	ProjectModuleLine:       "ProjectModuleLine",
	ProjectClassLine:        "ProjectClassLine",
	ProjectFormLine:         "ProjectFormLine",
	ProjectDesignerLine:     "ProjectDesignerLine",
	ProjectUserControlLine:  "ProjectUserControlLine",
	ProjectUserDocumentLine: "ProjectUserDocumentLine",
	ProjectRelatedDocLine:   "ProjectRelatedDocLine",
	ProjectPropertyPageLine: "ProjectPropertyPageLine",
	ProjectPropertyLine:     "ProjectPropertyLine",
	ProjectSectionHeader:    "ProjectSectionHeader",

	ErrorNode: "ErrorNode",

	Whitespace:       "Whitespace",
	Newline:          "Newline",
	EndOfLineComment: "EndOfLineComment",
	RemComment:       "RemComment",
	LineContinuation: "LineContinuation",

	AccessKeyword:        "AccessKeyword",
	AddressOfKeyword:     "AddressOfKeyword",
	AliasKeyword:         "AliasKeyword",
	AndKeyword:           "AndKeyword",
	AnyKeyword:           "AnyKeyword",
	AppActivateKeyword:   "AppActivateKeyword",
	AppendKeyword:        "AppendKeyword",
	AsKeyword:            "AsKeyword",
	AttributeKeyword:     "AttributeKeyword",
	BaseKeyword:          "BaseKeyword",
	BeepKeyword:          "BeepKeyword",
	BeginKeyword:         "BeginKeyword",
	BinaryKeyword:        "BinaryKeyword",
	BooleanKeyword:       "BooleanKeyword",
	ByRefKeyword:         "ByRefKeyword",
	ByteKeyword:          "ByteKeyword",
	ByValKeyword:         "ByValKeyword",
	CallKeyword:          "CallKeyword",
	CaseKeyword:          "CaseKeyword",
	ChDirKeyword:         "ChDirKeyword",
	ChDriveKeyword:       "ChDriveKeyword",
	ClassKeyword:         "ClassKeyword",
	CloseKeyword:         "CloseKeyword",
	CompareKeyword:       "CompareKeyword",
	ConstKeyword:         "ConstKeyword",
	CurrencyKeyword:      "CurrencyKeyword",
	DatabaseKeyword:      "DatabaseKeyword",
	DateKeyword:          "DateKeyword",
	DecimalKeyword:       "DecimalKeyword",
	DeclareKeyword:       "DeclareKeyword",
	DefBoolKeyword:       "DefBoolKeyword",
	DefByteKeyword:       "DefByteKeyword",
	DefCurKeyword:        "DefCurKeyword",
	DefDateKeyword:       "DefDateKeyword",
	DefDblKeyword:        "DefDblKeyword",
	DefDecKeyword:        "DefDecKeyword",
	DefIntKeyword:        "DefIntKeyword",
	DefLngKeyword:        "DefLngKeyword",
	DefObjKeyword:        "DefObjKeyword",
	DefSngKeyword:        "DefSngKeyword",
	DefStrKeyword:        "DefStrKeyword",
	DefVarKeyword:        "DefVarKeyword",
	DeleteSettingKeyword: "DeleteSettingKeyword",
	DimKeyword:           "DimKeyword",
	DoKeyword:            "DoKeyword",
	DoubleKeyword:        "DoubleKeyword",
	EachKeyword:          "EachKeyword",
	ElseIfKeyword:        "ElseIfKeyword",
	ElseKeyword:          "ElseKeyword",
	EmptyKeyword:         "EmptyKeyword",
	EndKeyword:           "EndKeyword",
	EnumKeyword:          "EnumKeyword",
	EqvKeyword:           "EqvKeyword",
	EraseKeyword:         "EraseKeyword",
	ErrorKeyword:         "ErrorKeyword",
	EventKeyword:         "EventKeyword",
	ExitKeyword:          "ExitKeyword",
	ExplicitKeyword:      "ExplicitKeyword",
	FalseKeyword:         "FalseKeyword",
	FileCopyKeyword:      "FileCopyKeyword",
	ForKeyword:           "ForKeyword",
	FriendKeyword:        "FriendKeyword",
	FunctionKeyword:      "FunctionKeyword",
	GetKeyword:           "GetKeyword",
	GoSubKeyword:         "GoSubKeyword",
	GotoKeyword:          "GotoKeyword",
	IfKeyword:            "IfKeyword",
	ImpKeyword:           "ImpKeyword",
	ImplementsKeyword:    "ImplementsKeyword",
	InKeyword:            "InKeyword",
	InputKeyword:         "InputKeyword",
	IntegerKeyword:       "IntegerKeyword",
	IsKeyword:            "IsKeyword",
	KillKeyword:          "KillKeyword",
	LenKeyword:           "LenKeyword",
	LetKeyword:           "LetKeyword",
	LibKeyword:           "LibKeyword",
	LikeKeyword:          "LikeKeyword",
	LineKeyword:          "LineKeyword",
	LoadKeyword:          "LoadKeyword",
	LockKeyword:          "LockKeyword",
	LongKeyword:          "LongKeyword",
	LoopKeyword:          "LoopKeyword",
	LSetKeyword:          "LSetKeyword",
	MeKeyword:            "MeKeyword",
	MidBKeyword:          "MidBKeyword",
	MidKeyword:           "MidKeyword",
	MkDirKeyword:         "MkDirKeyword",
	ModKeyword:           "ModKeyword",
	ModuleKeyword:        "ModuleKeyword",
	NameKeyword:          "NameKeyword",
	NewKeyword:           "NewKeyword",
	NextKeyword:          "NextKeyword",
	NothingKeyword:       "NothingKeyword",
	NotKeyword:           "NotKeyword",
	NullKeyword:          "NullKeyword",
	ObjectKeyword:        "ObjectKeyword",
	OffKeyword:           "OffKeyword",
	OnKeyword:            "OnKeyword",
	OpenKeyword:          "OpenKeyword",
	OptionalKeyword:      "OptionalKeyword",
	OptionKeyword:        "OptionKeyword",
	OrKeyword:            "OrKeyword",
	OutputKeyword:        "OutputKeyword",
	ParamArrayKeyword:    "ParamArrayKeyword",
	PreserveKeyword:      "PreserveKeyword",
	PrintKeyword:         "PrintKeyword",
	PrivateKeyword:       "PrivateKeyword",
	PropertyKeyword:      "PropertyKeyword",
	PublicKeyword:        "PublicKeyword",
	PutKeyword:           "PutKeyword",
	RaiseEventKeyword:    "RaiseEventKeyword",
	RandomizeKeyword:     "RandomizeKeyword",
	RandomKeyword:        "RandomKeyword",
	ReadKeyword:          "ReadKeyword",
	ReDimKeyword:         "ReDimKeyword",
	ResetKeyword:         "ResetKeyword",
	ResumeKeyword:        "ResumeKeyword",
	ReturnKeyword:        "ReturnKeyword",
	RmDirKeyword:         "RmDirKeyword",
	RSetKeyword:          "RSetKeyword",
	SavePictureKeyword:   "SavePictureKeyword",
	SaveSettingKeyword:   "SaveSettingKeyword",
	SeekKeyword:          "SeekKeyword",
	SelectKeyword:        "SelectKeyword",
	SendKeysKeyword:      "SendKeysKeyword",
	SetAttrKeyword:       "SetAttrKeyword",
	SetKeyword:           "SetKeyword",
	SingleKeyword:        "SingleKeyword",
	StaticKeyword:        "StaticKeyword",
	StepKeyword:          "StepKeyword",
	StopKeyword:          "StopKeyword",
	StringKeyword:        "StringKeyword",
	SubKeyword:           "SubKeyword",
	TextKeyword:          "TextKeyword",
	ThenKeyword:          "ThenKeyword",
	TimeKeyword:          "TimeKeyword",
	ToKeyword:            "ToKeyword",
	TrueKeyword:          "TrueKeyword",
	TypeKeyword:          "TypeKeyword",
	UnloadKeyword:        "UnloadKeyword",
	UnlockKeyword:        "UnlockKeyword",
	UntilKeyword:         "UntilKeyword",
	VariantKeyword:       "VariantKeyword",
	VersionKeyword:       "VersionKeyword",
	WendKeyword:          "WendKeyword",
	WhileKeyword:         "WhileKeyword",
	WidthKeyword:         "WidthKeyword",
	WithEventsKeyword:    "WithEventsKeyword",
	WithKeyword:          "WithKeyword",
	WriteKeyword:         "WriteKeyword",
	XorKeyword:           "XorKeyword",

	Identifier:      "Identifier",
	StringLiteral:   "StringLiteral",
	IntegerLiteral:  "IntegerLiteral",
	LongLiteral:     "LongLiteral",
	SingleLiteral:   "SingleLiteral",
	DoubleLiteral:   "DoubleLiteral",
	DecimalLiteral:  "DecimalLiteral",
	CurrencyLiteral: "CurrencyLiteral",
	DateLiteral:     "DateLiteral",

	DollarSign:                 "DollarSign",
	Underscore:                 "Underscore",
	Ampersand:                  "Ampersand",
	Percent:                    "Percent",
	Octothorpe:                 "Octothorpe",
	LeftParenthesis:            "LeftParenthesis",
	RightParenthesis:           "RightParenthesis",
	LeftCurlyBrace:             "LeftCurlyBrace",
	RightCurlyBrace:            "RightCurlyBrace",
	LeftSquareBracket:          "LeftSquareBracket",
	RightSquareBracket:         "RightSquareBracket",
	Comma:                      "Comma",
	Semicolon:                  "Semicolon",
	AtSign:                     "AtSign",
	ExclamationMark:            "ExclamationMark",
	EqualityOperator:           "EqualityOperator",
	InequalityOperator:         "InequalityOperator",
	LessThanOrEqualOperator:    "LessThanOrEqualOperator",
	GreaterThanOrEqualOperator: "GreaterThanOrEqualOperator",
	LessThanOperator:           "LessThanOperator",
	GreaterThanOperator:        "GreaterThanOperator",
	MultiplicationOperator:     "MultiplicationOperator",
	SubtractionOperator:        "SubtractionOperator",
	AdditionOperator:           "AdditionOperator",
	DivisionOperator:           "DivisionOperator",
	BackwardSlashOperator:      "BackwardSlashOperator",
	PeriodOperator:             "PeriodOperator",
	ColonOperator:              "ColonOperator",
	ExponentiationOperator:     "ExponentiationOperator",

	Unknown: "Unknown",
}

func (k Kind) String () string {
	name := kindNames[k]
	if name == "" {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return name
}

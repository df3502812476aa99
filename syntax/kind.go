// Package syntax defines the lossless concrete syntax tree: the closed kind
// set, tokens, nodes, and the stack-disciplined tree builder.
package syntax

// Kind tags every node and token in the tree, one tag per grammar production.
type Kind uint16

const (
	Root Kind = iota

	// Statement nodes
	ModuleStatement
	ClassStatement
	SubStatement
	FunctionStatement
	PropertyStatement
	DeclareStatement
	EventStatement
	ImplementsStatement
	DefTypeStatement
	DimStatement
	ReDimStatement
	EraseStatement
	ConstStatement
	TypeStatement
	EnumStatement
	IfStatement
	ElseIfClause
	ElseClause
	ForStatement
	ForEachStatement
	WhileStatement
	DoStatement
	SelectCaseStatement
	CaseClause
	CaseElseClause
	WithStatement
	CallStatement
	RaiseEventStatement
	SetStatement
	LetStatement
	AssignmentStatement
	GotoStatement
	GoSubStatement
	ReturnStatement
	ResumeStatement
	ExitStatement
	OnErrorStatement
	OnGoToStatement
	OnGoSubStatement
	StopStatement

	// Built-in statement nodes, one per intrinsic statement keyword
	AppActivateStatement
	BeepStatement
	ChDirStatement
	ChDriveStatement
	CloseStatement
	DateStatement
	DeleteSettingStatement
	ErrorStatement
	FileCopyStatement
	GetStatement
	InputStatement
	KillStatement
	LineInputStatement
	LoadStatement
	LockStatement
	LSetStatement
	MidBStatement
	MidStatement
	MkDirStatement
	NameStatement
	OpenStatement
	PrintStatement
	PutStatement
	RandomizeStatement
	ResetStatement
	RmDirStatement
	RSetStatement
	SavePictureStatement
	SaveSettingStatement
	SeekStatement
	SendKeysStatement
	SetAttrStatement
	TimeStatement
	UnloadStatement
	UnlockStatement
	WidthStatement
	WriteStatement

	LabelStatement
	AttributeStatement
	OptionStatement
	ObjectStatement
	LibraryStatement

	// Header nodes shared by class and form files
	VersionStatement
	PropertiesBlock
	PropertiesType
	PropertiesName
	Property
	PropertyKey
	PropertyValue
	PropertyGroup
	PropertyGroupName

	// Expression nodes
	BinaryExpression
	UnaryExpression
	LiteralExpression
	IdentifierExpression
	MemberAccessExpression
	CallExpression
	ParenthesizedExpression
	AddressOfExpression
	TypeOfExpression
	NewExpression
	ArgumentList
	Argument
	ParameterList
	Parameter
	CodeBlock

	// Project manifest line nodes
	ProjectTypeLine
	ProjectReferenceLine
	ProjectObjectLine
	ProjectModuleLine
	ProjectClassLine
	ProjectFormLine
	ProjectDesignerLine
	ProjectUserControlLine
	ProjectUserDocumentLine
	ProjectRelatedDocLine
	ProjectPropertyPageLine
	ProjectPropertyLine
	ProjectSectionHeader

	// Error recovery node
	ErrorNode

	// Token kinds. Everything from Whitespace on tags a leaf token.
	Whitespace
	Newline
	EndOfLineComment
	RemComment
	LineContinuation

	// Keywords
	AccessKeyword
	AddressOfKeyword
	AliasKeyword
	AndKeyword
	AnyKeyword
	AppActivateKeyword
	AppendKeyword
	AsKeyword
	AttributeKeyword
	BaseKeyword
	BeepKeyword
	BeginKeyword
	BinaryKeyword
	BooleanKeyword
	ByRefKeyword
	ByteKeyword
	ByValKeyword
	CallKeyword
	CaseKeyword
	ChDirKeyword
	ChDriveKeyword
	ClassKeyword
	CloseKeyword
	CompareKeyword
	ConstKeyword
	CurrencyKeyword
	DatabaseKeyword
	DateKeyword
	DecimalKeyword
	DeclareKeyword
	DefBoolKeyword
	DefByteKeyword
	DefCurKeyword
	DefDateKeyword
	DefDblKeyword
	DefDecKeyword
	DefIntKeyword
	DefLngKeyword
	DefObjKeyword
	DefSngKeyword
	DefStrKeyword
	DefVarKeyword
	DeleteSettingKeyword
	DimKeyword
	DoKeyword
	DoubleKeyword
	EachKeyword
	ElseIfKeyword
	ElseKeyword
	EmptyKeyword
	EndKeyword
	EnumKeyword
	EqvKeyword
	EraseKeyword
	ErrorKeyword
	EventKeyword
	ExitKeyword
	ExplicitKeyword
	FalseKeyword
	FileCopyKeyword
	ForKeyword
	FriendKeyword
	FunctionKeyword
	GetKeyword
	GoSubKeyword
	GotoKeyword
	IfKeyword
	ImpKeyword
	ImplementsKeyword
	InKeyword
	InputKeyword
	IntegerKeyword
	IsKeyword
	KillKeyword
	LenKeyword
	LetKeyword
	LibKeyword
	LikeKeyword
	LineKeyword
	LoadKeyword
	LockKeyword
	LongKeyword
	LoopKeyword
	LSetKeyword
	MeKeyword
	MidBKeyword
	MidKeyword
	MkDirKeyword
	ModKeyword
	ModuleKeyword
	NameKeyword
	NewKeyword
	NextKeyword
	NothingKeyword
	NotKeyword
	NullKeyword
	ObjectKeyword
	OffKeyword
	OnKeyword
	OpenKeyword
	OptionalKeyword
	OptionKeyword
	OrKeyword
	OutputKeyword
	ParamArrayKeyword
	PreserveKeyword
	PrintKeyword
	PrivateKeyword
	PropertyKeyword
	PublicKeyword
	PutKeyword
	RaiseEventKeyword
	RandomizeKeyword
	RandomKeyword
	ReadKeyword
	ReDimKeyword
	ResetKeyword
	ResumeKeyword
	ReturnKeyword
	RmDirKeyword
	RSetKeyword
	SavePictureKeyword
	SaveSettingKeyword
	SeekKeyword
	SelectKeyword
	SendKeysKeyword
	SetAttrKeyword
	SetKeyword
	SingleKeyword
	StaticKeyword
	StepKeyword
	StopKeyword
	StringKeyword
	SubKeyword
	TextKeyword
	ThenKeyword
	TimeKeyword
	ToKeyword
	TrueKeyword
	TypeKeyword
	UnloadKeyword
	UnlockKeyword
	UntilKeyword
	VariantKeyword
	VersionKeyword
	WendKeyword
	WhileKeyword
	WidthKeyword
	WithEventsKeyword
	WithKeyword
	WriteKeyword
	XorKeyword

	// Literals and identifiers
	Identifier
	StringLiteral
	IntegerLiteral
	LongLiteral
	SingleLiteral
	DoubleLiteral
	DecimalLiteral
	CurrencyLiteral
	DateLiteral

	// Operators and punctuation
	DollarSign
	Underscore
	Ampersand
	Percent
	Octothorpe
	LeftParenthesis
	RightParenthesis
	LeftCurlyBrace
	RightCurlyBrace
	LeftSquareBracket
	RightSquareBracket
	Comma
	Semicolon
	AtSign
	ExclamationMark
	EqualityOperator
	InequalityOperator
	LessThanOrEqualOperator
	GreaterThanOrEqualOperator
	LessThanOperator
	GreaterThanOperator
	MultiplicationOperator
	SubtractionOperator
	AdditionOperator
	DivisionOperator
	BackwardSlashOperator
	PeriodOperator
	ColonOperator
	ExponentiationOperator

	Unknown
)

// IsToken reports whether k tags a leaf token rather than an interior node.
func (k Kind) IsToken () bool {
	return k >= Whitespace
}

// IsTrivia reports whether k is whitespace, a comment, or a line continuation.
// Newlines are statement terminators, not trivia.
func (k Kind) IsTrivia () bool {
	switch k {
	case Whitespace, EndOfLineComment, RemComment, LineContinuation:
		return true
	}
	return false
}

// IsKeyword reports whether k is a reserved-word token.
func (k Kind) IsKeyword () bool {
	return k >= AccessKeyword && k <= XorKeyword
}

// IsLiteral reports whether k is a literal token.
func (k Kind) IsLiteral () bool {
	return k >= StringLiteral && k <= DateLiteral
}

// IsNumeric reports whether k is a numeric literal token.
func (k Kind) IsNumeric () bool {
	return k >= IntegerLiteral && k <= CurrencyLiteral
}

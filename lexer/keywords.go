package lexer

import "github.com/vb6tools/vbcst/syntax"

// keywords maps each lowercased reserved word to its token kind. Lookup is
// case-insensitive; the matched source text is kept verbatim.
var keywords = map[string]syntax.Kind{
	"access":        syntax.AccessKeyword,
	"addressof":     syntax.AddressOfKeyword,
	"alias":         syntax.AliasKeyword,
	"and":           syntax.AndKeyword,
	"any":           syntax.AnyKeyword,
	"appactivate":   syntax.AppActivateKeyword,
	"append":        syntax.AppendKeyword,
	"as":            syntax.AsKeyword,
	"attribute":     syntax.AttributeKeyword,
	"base":          syntax.BaseKeyword,
	"beep":          syntax.BeepKeyword,
	"begin":         syntax.BeginKeyword,
	"binary":        syntax.BinaryKeyword,
	"boolean":       syntax.BooleanKeyword,
	"byref":         syntax.ByRefKeyword,
	"byte":          syntax.ByteKeyword,
	"byval":         syntax.ByValKeyword,
	"call":          syntax.CallKeyword,
	"case":          syntax.CaseKeyword,
	"chdir":         syntax.ChDirKeyword,
	"chdrive":       syntax.ChDriveKeyword,
	"class":         syntax.ClassKeyword,
	"close":         syntax.CloseKeyword,
	"compare":       syntax.CompareKeyword,
	"const":         syntax.ConstKeyword,
	"currency":      syntax.CurrencyKeyword,
	"database":      syntax.DatabaseKeyword,
	"date":          syntax.DateKeyword,
	"decimal":       syntax.DecimalKeyword,
	"declare":       syntax.DeclareKeyword,
	"defbool":       syntax.DefBoolKeyword,
	"defbyte":       syntax.DefByteKeyword,
	"defcur":        syntax.DefCurKeyword,
	"defdate":       syntax.DefDateKeyword,
	"defdbl":        syntax.DefDblKeyword,
	"defdec":        syntax.DefDecKeyword,
	"defint":        syntax.DefIntKeyword,
	"deflng":        syntax.DefLngKeyword,
	"defobj":        syntax.DefObjKeyword,
	"defsng":        syntax.DefSngKeyword,
	"defstr":        syntax.DefStrKeyword,
	"defvar":        syntax.DefVarKeyword,
	"deletesetting": syntax.DeleteSettingKeyword,
	"dim":           syntax.DimKeyword,
	"do":            syntax.DoKeyword,
	"double":        syntax.DoubleKeyword,
	"each":          syntax.EachKeyword,
	"else":          syntax.ElseKeyword,
	"elseif":        syntax.ElseIfKeyword,
	"empty":         syntax.EmptyKeyword,
	"end":           syntax.EndKeyword,
	"enum":          syntax.EnumKeyword,
	"eqv":           syntax.EqvKeyword,
	"erase":         syntax.EraseKeyword,
	"error":         syntax.ErrorKeyword,
	"event":         syntax.EventKeyword,
	"exit":          syntax.ExitKeyword,
	"explicit":      syntax.ExplicitKeyword,
	"false":         syntax.FalseKeyword,
	"filecopy":      syntax.FileCopyKeyword,
	"for":           syntax.ForKeyword,
	"friend":        syntax.FriendKeyword,
	"function":      syntax.FunctionKeyword,
	"get":           syntax.GetKeyword,
	"gosub":         syntax.GoSubKeyword,
	"goto":          syntax.GotoKeyword,
	"if":            syntax.IfKeyword,
	"imp":           syntax.ImpKeyword,
	"implements":    syntax.ImplementsKeyword,
	"in":            syntax.InKeyword,
	"input":         syntax.InputKeyword,
	"integer":       syntax.IntegerKeyword,
	"is":            syntax.IsKeyword,
	"kill":          syntax.KillKeyword,
	"len":           syntax.LenKeyword,
	"let":           syntax.LetKeyword,
	"lib":           syntax.LibKeyword,
	"like":          syntax.LikeKeyword,
	"line":          syntax.LineKeyword,
	"load":          syntax.LoadKeyword,
	"lock":          syntax.LockKeyword,
	"long":          syntax.LongKeyword,
	"loop":          syntax.LoopKeyword,
	"lset":          syntax.LSetKeyword,
	"me":            syntax.MeKeyword,
	"mid":           syntax.MidKeyword,
	"midb":          syntax.MidBKeyword,
	"mkdir":         syntax.MkDirKeyword,
	"mod":           syntax.ModKeyword,
	"module":        syntax.ModuleKeyword,
	"name":          syntax.NameKeyword,
	"new":           syntax.NewKeyword,
	"next":          syntax.NextKeyword,
	"not":           syntax.NotKeyword,
	"nothing":       syntax.NothingKeyword,
	"null":          syntax.NullKeyword,
	"object":        syntax.ObjectKeyword,
	"off":           syntax.OffKeyword,
	"on":            syntax.OnKeyword,
	"open":          syntax.OpenKeyword,
	"option":        syntax.OptionKeyword,
	"optional":      syntax.OptionalKeyword,
	"or":            syntax.OrKeyword,
	"output":        syntax.OutputKeyword,
	"paramarray":    syntax.ParamArrayKeyword,
	"preserve":      syntax.PreserveKeyword,
	"print":         syntax.PrintKeyword,
	"private":       syntax.PrivateKeyword,
	"property":      syntax.PropertyKeyword,
	"public":        syntax.PublicKeyword,
	"put":           syntax.PutKeyword,
	"raiseevent":    syntax.RaiseEventKeyword,
	"random":        syntax.RandomKeyword,
	"randomize":     syntax.RandomizeKeyword,
	"read":          syntax.ReadKeyword,
	"redim":         syntax.ReDimKeyword,
	"reset":         syntax.ResetKeyword,
	"resume":        syntax.ResumeKeyword,
	"return":        syntax.ReturnKeyword,
	"rmdir":         syntax.RmDirKeyword,
	"rset":          syntax.RSetKeyword,
	"savepicture":   syntax.SavePictureKeyword,
	"savesetting":   syntax.SaveSettingKeyword,
	"seek":          syntax.SeekKeyword,
	"select":        syntax.SelectKeyword,
	"sendkeys":      syntax.SendKeysKeyword,
	"set":           syntax.SetKeyword,
	"setattr":       syntax.SetAttrKeyword,
	"single":        syntax.SingleKeyword,
	"static":        syntax.StaticKeyword,
	"step":          syntax.StepKeyword,
	"stop":          syntax.StopKeyword,
	"string":        syntax.StringKeyword,
	"sub":           syntax.SubKeyword,
	"text":          syntax.TextKeyword,
	"then":          syntax.ThenKeyword,
	"time":          syntax.TimeKeyword,
	"to":            syntax.ToKeyword,
	"true":          syntax.TrueKeyword,
	"type":          syntax.TypeKeyword,
	"unload":        syntax.UnloadKeyword,
	"unlock":        syntax.UnlockKeyword,
	"until":         syntax.UntilKeyword,
	"variant":       syntax.VariantKeyword,
	"version":       syntax.VersionKeyword,
	"wend":          syntax.WendKeyword,
	"while":         syntax.WhileKeyword,
	"width":         syntax.WidthKeyword,
	"with":          syntax.WithKeyword,
	"withevents":    syntax.WithEventsKeyword,
	"write":         syntax.WriteKeyword,
	"xor":           syntax.XorKeyword,
}

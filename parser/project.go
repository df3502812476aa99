package parser

import (
	"strconv"
	"strings"

	"github.com/vb6tools/vbcst/diag"
	"github.com/vb6tools/vbcst/source"
	"github.com/vb6tools/vbcst/syntax"
)

// ParseProject parses a project manifest (.vbp). Every physical line becomes
// one node: a typed project line, a bracketed section header, or an error
// node.
func ParseProject (src *source.Source) (*syntax.Tree, diag.List) {
	p := newParser(src)
	first := true
	for !p.atEnd() {
		p.trivia()
		if p.at(syntax.Newline) {
			p.bump()
			continue
		}
		if p.atEnd() {
			break
		}
		p.parseProjectLine(first)
		first = false
	}
	return p.finish()
}

func (p *Parser) parseProjectLine (first bool) {
	if first && !p.at(syntax.TypeKeyword) {
		p.report(diag.FirstLineNotProject)
	}
	if p.at(syntax.LeftSquareBracket) {
		p.b.StartNode(syntax.ProjectSectionHeader)
		p.endLine()
		p.b.FinishNode()
		return
	}
	if !p.at(syntax.Identifier) && !p.cur().IsKeyword() {
		p.errorLine(diag.LineTypeUnknown)
		return
	}

	key := strings.ToLower(p.curText())
	if !p.lineHasEquals() {
		p.errorLine(diag.NoEqualSplit)
		return
	}

	kind, known := projectLineKinds[key]
	if !known {
		kind = syntax.ProjectPropertyLine
		p.report(diag.LineTypeUnknown)
	}

	p.b.StartNode(kind)
	p.bumpName()
	p.trivia()
	if p.at(syntax.EqualityOperator) {
		p.bump()
	}
	valuePos := p.pos
	p.consumeUntil(syntax.Newline)
	if known {
		p.validateProjectLine(key, valuePos)
	}
	if p.at(syntax.Newline) {
		p.bump()
	}
	p.b.FinishNode()
}

// lineHasEquals scans the rest of the physical line for an equals sign.
func (p *Parser) lineHasEquals () bool {
	for i := p.pos; i < len(p.tokens); i++ {
		switch p.tokens[i].Kind {
		case syntax.Newline:
			return false
		case syntax.EqualityOperator:
			return true
		}
	}
	return false
}

var projectLineKinds = map[string]syntax.Kind{
	"type":         syntax.ProjectTypeLine,
	"reference":    syntax.ProjectReferenceLine,
	"object":       syntax.ProjectObjectLine,
	"module":       syntax.ProjectModuleLine,
	"class":        syntax.ProjectClassLine,
	"form":         syntax.ProjectFormLine,
	"designer":     syntax.ProjectDesignerLine,
	"usercontrol":  syntax.ProjectUserControlLine,
	"userdocument": syntax.ProjectUserDocumentLine,
	"relateddoc":   syntax.ProjectRelatedDocLine,
	"propertypage": syntax.ProjectPropertyPageLine,

	"startup":                 syntax.ProjectPropertyLine,
	"name":                    syntax.ProjectPropertyLine,
	"command32":               syntax.ProjectPropertyLine,
	"title":                   syntax.ProjectPropertyLine,
	"exename32":               syntax.ProjectPropertyLine,
	"path32":                  syntax.ProjectPropertyLine,
	"description":             syntax.ProjectPropertyLine,
	"helpfile":                syntax.ProjectPropertyLine,
	"iconform":                syntax.ProjectPropertyLine,
	"helpcontextid":           syntax.ProjectPropertyLine,
	"majorver":                syntax.ProjectPropertyLine,
	"minorver":                syntax.ProjectPropertyLine,
	"revisionver":             syntax.ProjectPropertyLine,
	"autoincrementver":        syntax.ProjectPropertyLine,
	"compatiblemode":          syntax.ProjectPropertyLine,
	"compatibleexe32":         syntax.ProjectPropertyLine,
	"versioncompanyname":      syntax.ProjectPropertyLine,
	"versionfiledescription":  syntax.ProjectPropertyLine,
	"versionlegalcopyright":   syntax.ProjectPropertyLine,
	"versionlegaltrademarks":  syntax.ProjectPropertyLine,
	"versionproductname":      syntax.ProjectPropertyLine,
	"versioncomments":         syntax.ProjectPropertyLine,
	"condcomp":                syntax.ProjectPropertyLine,
	"compilationtype":         syntax.ProjectPropertyLine,
	"optimizationtype":        syntax.ProjectPropertyLine,
	"favorpentiumpro(tm)":     syntax.ProjectPropertyLine,
	"codeviewdebuginfo":       syntax.ProjectPropertyLine,
	"noaliasing":              syntax.ProjectPropertyLine,
	"removeunusedcontrolinfo": syntax.ProjectPropertyLine,
	"boundscheck":             syntax.ProjectPropertyLine,
	"overflowcheck":           syntax.ProjectPropertyLine,
	"flpointcheck":            syntax.ProjectPropertyLine,
	"fdivcheck":               syntax.ProjectPropertyLine,
	"unroundedfp":             syntax.ProjectPropertyLine,
	"startmode":               syntax.ProjectPropertyLine,
	"unattended":              syntax.ProjectPropertyLine,
	"retained":                syntax.ProjectPropertyLine,
	"threadperobject":         syntax.ProjectPropertyLine,
	"maxnumberofthreads":      syntax.ProjectPropertyLine,
	"threadingmodel":          syntax.ProjectPropertyLine,
	"nocontrolupgrade":        syntax.ProjectPropertyLine,
	"serversupportfiles":      syntax.ProjectPropertyLine,
	"dllbaseaddress":          syntax.ProjectPropertyLine,
	"debugstartupoption":      syntax.ProjectPropertyLine,
	"useexistingbrowser":      syntax.ProjectPropertyLine,
	"autorefresh":             syntax.ProjectPropertyLine,
}

// validateProjectLine applies per-key value checks. The raw line stays in
// the tree; only diagnostics come out of here.
func (p *Parser) validateProjectLine (key string, valuePos int) {
	value := p.significantText(valuePos, p.pos)
	report := func (code diag.Code) {
		offset := p.curOffset()
		if valuePos < len(p.tokens) {
			offset = p.tokens[valuePos].Pos
		}
		line, col := p.src.LineCol(offset)
		p.diags.Add(diag.New(code, p.src.Name(), line, col, offset))
	}

	switch key {
	case "type":
		switch strings.ToLower(value) {
		case "exe", "oledll", "control", "oleexe":
		default:
			report(diag.ProjectTypeUnknown)
		}
	case "reference":
		p.validateReference(value, report)
	case "object":
		if !strings.Contains(value, "{") || !strings.Contains(value, "}") {
			report(diag.UnableToParseUuid)
		}
		if !strings.Contains(value, ";") {
			report(diag.NoSemicolonSplit)
		}
	case "module", "class":
		if !strings.Contains(value, ";") {
			report(diag.NoSemicolonSplit)
		}
	case "form":
		requireNonEmpty(value, diag.FormLineUnparsable, report)
	case "designer":
		requireNonEmpty(value, diag.DesignerLineUnparsable, report)
	case "usercontrol":
		requireNonEmpty(value, diag.UserControlLineUnparsable, report)
	case "userdocument":
		requireNonEmpty(value, diag.UserDocumentLineUnparsable, report)
	case "relateddoc":
		requireNonEmpty(value, diag.RelatedDocLineUnparsable, report)
	case "propertypage":
		requireNonEmpty(value, diag.PropertyPageUnparsable, report)
	case "startup":
		requireQuoted(value, diag.StartupUnparsable, report)
	case "name":
		requireQuoted(value, diag.NameUnparsable, report)
	case "command32":
		requireQuoted(value, diag.CommandLineUnparsable, report)
	case "title":
		requireQuoted(value, diag.TitleUnparsable, report)
	case "description":
		requireQuoted(value, diag.CommentUnparsable, report)
	case "helpcontextid":
		requireQuoted(value, diag.HelpContextIdUnparsable, report)
	case "majorver":
		requireInt(value, diag.MajorVersionUnparsable, report)
	case "minorver":
		requireInt(value, diag.MinorVersionUnparsable, report)
	case "revisionver":
		requireInt(value, diag.RevisionVersionUnparsable, report)
	case "autoincrementver":
		requireBool(value, diag.AutoIncrementUnparsable, report)
	case "compatiblemode":
		requireQuotedIn(value, diag.CompatibilityModeUnparsable, report, "0", "1", "2")
	case "compilationtype":
		requireBool(value, diag.CompilationTypeUnparsable, report)
	case "optimizationtype":
		requireIntIn(value, diag.OptimizationTypeUnparsable, report, 0, 1, 2)
	case "favorpentiumpro(tm)":
		requireBool(value, diag.FavorPentiumProUnparsable, report)
	case "codeviewdebuginfo":
		requireBool(value, diag.CodeViewDebugInfoUnparsable, report)
	case "noaliasing":
		requireBool(value, diag.NoAliasingUnparsable, report)
	case "removeunusedcontrolinfo":
		requireBool(value, diag.UnusedControlInfoUnparsable, report)
	case "boundscheck":
		requireBool(value, diag.BoundsCheckUnparsable, report)
	case "overflowcheck":
		requireBool(value, diag.OverflowCheckUnparsable, report)
	case "flpointcheck":
		requireBool(value, diag.FlPointCheckUnparsable, report)
	case "fdivcheck":
		requireBool(value, diag.FDIVCheckUnparsable, report)
	case "unroundedfp":
		requireBool(value, diag.UnroundedFPUnparsable, report)
	case "startmode":
		requireIntIn(value, diag.StartModeUnparsable, report, 0, 1)
	case "unattended":
		requireBool(value, diag.UnattendedUnparsable, report)
	case "retained":
		requireBool(value, diag.RetainedUnparsable, report)
	case "threadperobject":
		requireInt(value, diag.ThreadPerObjectUnparsable, report)
	case "maxnumberofthreads":
		requireInt(value, diag.MaxThreadsUnparsable, report)
	case "threadingmodel":
		if _, err := strconv.Atoi(value); err != nil {
			report(diag.ThreadingModelUnparsable)
		} else if value != "0" && value != "1" {
			report(diag.ThreadingModelInvalid)
		}
	case "nocontrolupgrade":
		requireBool(value, diag.NoControlUpgradeUnparsable, report)
	case "serversupportfiles":
		requireBool(value, diag.ServerSupportFilesUnparsable, report)
	case "dllbaseaddress":
		if !strings.HasPrefix(strings.ToLower(value), "&h") {
			report(diag.DllBaseAddressUnparsable)
		}
	case "debugstartupoption":
		requireInt(value, diag.DebugStartupOptionUnparsable, report)
	case "useexistingbrowser":
		requireBool(value, diag.UseExistingBrowserUnparsable, report)
	case "autorefresh":
		requireBool(value, diag.AutoRefreshUnparsable, report)
	}
}

// validateReference checks a Reference line. Compiled references carry a
// braced uuid and exactly five #-separated sections; subproject references
// start with *\A and pass through.
func (p *Parser) validateReference (value string, report func (diag.Code)) {
	if strings.HasPrefix(value, `*\A`) {
		return
	}
	if !strings.HasPrefix(value, `*\G{`) || !strings.Contains(value, "}") {
		report(diag.UnableToParseUuid)
		return
	}
	sections := strings.Count(value, "#") + 1
	switch {
	case sections > 5:
		report(diag.ReferenceExtraSections)
	case sections < 5:
		report(diag.ReferenceMissingSections)
	}
}

func requireNonEmpty (value string, code diag.Code, report func (diag.Code)) {
	if value == "" {
		report(code)
	}
}

func requireQuoted (value string, code diag.Code, report func (diag.Code)) {
	if !strings.HasPrefix(value, `"`) || !strings.HasSuffix(value, `"`) || len(value) < 2 {
		report(code)
	}
}

func requireQuotedIn (value string, code diag.Code, report func (diag.Code), allowed ...string) {
	inner := strings.TrimSuffix(strings.TrimPrefix(value, `"`), `"`)
	for _, a := range allowed {
		if inner == a {
			return
		}
	}
	report(code)
}

func requireInt (value string, code diag.Code, report func (diag.Code)) {
	if _, err := strconv.Atoi(value); err != nil {
		report(code)
	}
}

func requireIntIn (value string, code diag.Code, report func (diag.Code), allowed ...int) {
	n, err := strconv.Atoi(value)
	if err != nil {
		report(code)
		return
	}
	for _, a := range allowed {
		if n == a {
			return
		}
	}
	report(code)
}

func requireBool (value string, code diag.Code, report func (diag.Code)) {
	switch value {
	case "0", "1", "-1":
	default:
		report(code)
	}
}

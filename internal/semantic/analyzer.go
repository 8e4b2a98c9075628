package semantic

import (
	"fmt"

	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/errors"
	"github.com/minilang/minilang/internal/token"
)

// Option configures an Analyzer at construction time.
type Option func(*Analyzer)

// WithStrictUnknown disables the permissive unification rule of spec
// §4.3/§9 that treats the Unknown type as numeric, so a prior error no
// longer suppresses downstream arithmetic errors on the same operand.
// This is an opt-in debugging mode for observing cascades; the default
// (false) is the spec-mandated permissive behavior.
func WithStrictUnknown(strict bool) Option {
	return func(a *Analyzer) {
		a.strictUnknown = strict
	}
}

// WithWarningSink installs a sink called once per warning as it is
// produced, in addition to the warnings returned in Result. It defaults
// to a no-op; the analyzer never performs I/O on its own.
func WithWarningSink(sink func(string)) Option {
	return func(a *Analyzer) {
		a.warningSink = sink
	}
}

// Analyzer walks an ast.Program once, populating a SymbolTable and
// collecting errors non-fatally. It does not stop at the first error:
// every statement is visited so a single compilation surfaces every
// problem it can.
type Analyzer struct {
	table         *SymbolTable
	errs          []string
	warnings      []string
	strictUnknown bool
	warningSink   func(string)
}

// New returns an Analyzer with a fresh, empty SymbolTable.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{table: NewSymbolTable()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Result is what Analyze returns on success: the populated symbol table
// and any non-fatal warnings.
type Result struct {
	Table    *SymbolTable
	Warnings []string
}

// Analyze walks prog in source order. If any errors were collected, it
// returns a single aggregated *errors.SemanticError and a nil Result;
// otherwise it returns a populated Result and a nil error.
func (a *Analyzer) Analyze(prog *ast.Program) (*Result, error) {
	for _, stmt := range prog.Statements {
		a.visitStatement(stmt)
	}
	if len(a.errs) > 0 {
		return nil, errors.NewSemanticError(a.errs)
	}
	warnings := append([]string{}, a.warnings...)
	for _, w := range a.table.Warnings() {
		warnings = append(warnings, w)
		a.emitWarning(w)
	}
	return &Result{Table: a.table, Warnings: warnings}, nil
}

func (a *Analyzer) emitWarning(msg string) {
	if a.warningSink != nil {
		a.warningSink(msg)
	}
}

func (a *Analyzer) fail(line int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.errs = append(a.errs, fmt.Sprintf("%s at line %d", msg, line))
}

func (a *Analyzer) visitStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDeclaration:
		a.visitVarDeclaration(s)
	case *ast.Assignment:
		a.visitAssignment(s)
	case *ast.If:
		a.visitIf(s)
	case *ast.While:
		a.visitWhile(s)
	case *ast.Print:
		a.visitPrint(s)
	default:
		panic(fmt.Sprintf("semantic: unhandled statement type %T", stmt))
	}
}

func (a *Analyzer) visitVarDeclaration(s *ast.VarDeclaration) {
	if existing := a.table.Lookup(s.Name); existing != nil {
		a.fail(s.Line(), "variable '%s' already declared at line %d", s.Name, existing.DeclLine)
		return
	}
	if err := a.table.Declare(s.Name, Variable, s.Line()); err != nil {
		panic(err)
	}
}

func (a *Analyzer) visitAssignment(s *ast.Assignment) {
	a.visitExpression(s.Value)

	if a.table.Lookup(s.Name) == nil {
		a.fail(s.Line(), "variable '%s' not declared", s.Name)
		return
	}
	a.table.MarkInitialized(s.Name)
}

func (a *Analyzer) visitIf(s *ast.If) {
	a.visitExpression(s.Cond)
	for _, stmt := range s.Then {
		a.visitStatement(stmt)
	}
	for _, stmt := range s.Else {
		a.visitStatement(stmt)
	}
}

func (a *Analyzer) visitWhile(s *ast.While) {
	a.visitExpression(s.Cond)
	for _, stmt := range s.Body {
		a.visitStatement(stmt)
	}
}

func (a *Analyzer) visitPrint(s *ast.Print) {
	a.visitExpression(s.Value)
}

// visitExpression returns the inferred DataType of expr, collecting
// errors/warnings along the way.
func (a *Analyzer) visitExpression(expr ast.Expression) DataType {
	switch e := expr.(type) {
	case *ast.Number:
		if e.IsFloat {
			return Float
		}
		return Int
	case *ast.Identifier:
		return a.visitIdentifier(e)
	case *ast.BinaryOp:
		return a.visitBinaryOp(e)
	case *ast.UnaryOp:
		return a.visitUnaryOp(e)
	default:
		panic(fmt.Sprintf("semantic: unhandled expression type %T", expr))
	}
}

func (a *Analyzer) visitIdentifier(e *ast.Identifier) DataType {
	sym := a.table.Lookup(e.Name)
	if sym == nil {
		a.fail(e.Line(), "variable '%s' not declared", e.Name)
		return Unknown
	}
	a.table.MarkUsed(e.Name)
	if !sym.Initialized {
		a.warn(e.Line(), "variable '%s' may not be initialized", e.Name)
	}
	return sym.DataType
}

var comparisonOps = map[token.Type]bool{
	token.EQUAL: true, token.NOT_EQUAL: true,
	token.LESS_THAN: true, token.GREATER_THAN: true,
	token.LESS_EQUAL: true, token.GREATER_EQUAL: true,
}

func (a *Analyzer) isNumeric(t DataType) bool {
	if t == Unknown {
		return !a.strictUnknown
	}
	return t == Int || t == Float
}

func (a *Analyzer) visitBinaryOp(e *ast.BinaryOp) DataType {
	left := a.visitExpression(e.Left)
	right := a.visitExpression(e.Right)

	if !a.isNumeric(left) || !a.isNumeric(right) {
		a.fail(e.Line(), "non-numeric operand to '%s'", e.Op)
		return Unknown
	}

	if comparisonOps[e.Op] {
		return Bool
	}
	if left == Float || right == Float {
		return Float
	}
	return Int
}

func (a *Analyzer) visitUnaryOp(e *ast.UnaryOp) DataType {
	operand := a.visitExpression(e.Operand)
	if !a.isNumeric(operand) {
		a.fail(e.Line(), "non-numeric operand to unary '%s'", e.Op)
		return Unknown
	}
	return operand
}

// warnings collected during the traversal (initialization warnings at
// point of use), separate from the end-of-traversal SymbolTable.Warnings.
func (a *Analyzer) warn(line int, format string, args ...any) {
	msg := fmt.Sprintf("%s at line %d", fmt.Sprintf(format, args...), line)
	a.warnings = append(a.warnings, msg)
	a.emitWarning(msg)
}

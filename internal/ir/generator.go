package ir

import (
	"fmt"

	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/token"
)

// Generator performs the AST-to-IR lowering traversal. Its temp/label
// counters reset only at construction; Generate builds a fresh Generator
// on every call, so each call starts at t0 and L0.
type Generator struct {
	prog      Program
	nextTemp  int
	nextLabel int
}

// New returns a Generator with its temp and label counters at zero.
func New() *Generator {
	return &Generator{}
}

// Generate lowers prog into a three-address Program. It never fails:
// Generate only ever runs against an AST that has already passed
// semantic analysis.
func Generate(prog *ast.Program) *Program {
	g := New()
	for _, stmt := range prog.Statements {
		g.emitStatement(stmt)
	}
	return &g.prog
}

func (g *Generator) newTemp() string {
	name := fmt.Sprintf("t%d", g.nextTemp)
	g.nextTemp++
	return name
}

func (g *Generator) newLabel() string {
	name := fmt.Sprintf("L%d", g.nextLabel)
	g.nextLabel++
	return name
}

func (g *Generator) emit(ins Instruction) {
	g.prog.Instructions = append(g.prog.Instructions, ins)
}

func (g *Generator) emitStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDeclaration:
		// Declarations are a symbol-table fact only; nothing to emit.
	case *ast.Assignment:
		value := g.emitExpression(s.Value)
		g.emit(Instruction{Op: ASSIGN, Arg1: value, Result: s.Name})
	case *ast.If:
		g.emitIf(s)
	case *ast.While:
		g.emitWhile(s)
	case *ast.Print:
		value := g.emitExpression(s.Value)
		g.emit(Instruction{Op: PRINT, Arg1: value})
	default:
		panic(fmt.Sprintf("ir: unhandled statement type %T", stmt))
	}
}

func (g *Generator) emitIf(s *ast.If) {
	lelse := g.newLabel()
	lend := g.newLabel()

	cond := g.emitExpression(s.Cond)
	g.emit(Instruction{Op: IF_FALSE, Arg1: cond, Result: lelse})
	for _, stmt := range s.Then {
		g.emitStatement(stmt)
	}
	// The GOTO Lend is emitted unconditionally, even with no else block,
	// jumping over the (possibly empty) else region to the shared end.
	g.emit(Instruction{Op: GOTO, Result: lend})
	g.emit(Instruction{Op: LABEL, Result: lelse})
	for _, stmt := range s.Else {
		g.emitStatement(stmt)
	}
	g.emit(Instruction{Op: LABEL, Result: lend})
}

func (g *Generator) emitWhile(s *ast.While) {
	lstart := g.newLabel()
	lend := g.newLabel()

	g.emit(Instruction{Op: LABEL, Result: lstart})
	cond := g.emitExpression(s.Cond)
	g.emit(Instruction{Op: IF_FALSE, Arg1: cond, Result: lend})
	for _, stmt := range s.Body {
		g.emitStatement(stmt)
	}
	g.emit(Instruction{Op: GOTO, Result: lstart})
	g.emit(Instruction{Op: LABEL, Result: lend})
}

// emitExpression lowers expr and returns the operand name holding its
// value: an identifier, a literal's decimal text, or a fresh temporary.
func (g *Generator) emitExpression(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Number:
		return formatNumber(e.Value, e.IsFloat)
	case *ast.Identifier:
		return e.Name
	case *ast.BinaryOp:
		left := g.emitExpression(e.Left)
		right := g.emitExpression(e.Right)
		temp := g.newTemp()
		opText, ok := binaryOpText[e.Op]
		if !ok {
			panic(fmt.Sprintf("ir: unsupported binary operator %s", e.Op))
		}
		g.emit(Instruction{Op: Op(opText), Arg1: left, Arg2: right, Result: temp})
		return temp
	case *ast.UnaryOp:
		operand := g.emitExpression(e.Operand)
		temp := g.newTemp()
		switch e.Op {
		case token.MINUS:
			g.emit(Instruction{Op: UNARY_MINUS, Arg1: operand, Result: temp})
		case token.PLUS:
			g.emit(Instruction{Op: UNARY_PLUS, Arg1: operand, Result: temp})
		default:
			panic(fmt.Sprintf("ir: unsupported unary operator %s", e.Op))
		}
		return temp
	default:
		panic(fmt.Sprintf("ir: unhandled expression type %T", expr))
	}
}

// Package ir lowers a validated MiniLang AST into a flat three-address
// instruction sequence.
package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minilang/minilang/internal/token"
)

// Op identifies an instruction's operation. The set mirrors the AST's
// binary operator tokens plus a handful of IR-only opcodes.
type Op string

const (
	ASSIGN      Op = "ASSIGN"
	LABEL       Op = "LABEL"
	GOTO        Op = "GOTO"
	IF_FALSE    Op = "IF_FALSE"
	IF_TRUE     Op = "IF_TRUE" // reserved; never emitted by Generate
	PRINT       Op = "PRINT"
	UNARY_MINUS Op = "UNARY_MINUS"
	UNARY_PLUS  Op = "UNARY_PLUS"
)

// binaryOpText maps a binary AST operator token to its IR rendering,
// which doubles as the instruction's Op value.
var binaryOpText = map[token.Type]string{
	token.PLUS:          "+",
	token.MINUS:         "-",
	token.MULTIPLY:      "*",
	token.DIVIDE:        "/",
	token.EQUAL:         "==",
	token.NOT_EQUAL:     "!=",
	token.LESS_THAN:     "<",
	token.GREATER_THAN:  ">",
	token.LESS_EQUAL:    "<=",
	token.GREATER_EQUAL: ">=",
}

// Instruction is one three-address instruction. Arg1, Arg2, and Result
// are opaque operand strings: an identifier name, a generated temporary
// (t0, t1, …), a generated label (L0, L1, …), or a literal's decimal
// text. Which fields are populated depends on Op.
type Instruction struct {
	Op     Op
	Arg1   string
	Arg2   string
	Result string
}

// String renders an instruction in the canonical text format used for
// golden-file comparisons.
func (ins Instruction) String() string {
	switch ins.Op {
	case ASSIGN:
		return fmt.Sprintf("%s = %s", ins.Result, ins.Arg1)
	case LABEL:
		return fmt.Sprintf("%s:", ins.Result)
	case GOTO:
		return fmt.Sprintf("goto %s", ins.Result)
	case IF_FALSE:
		return fmt.Sprintf("if_false %s goto %s", ins.Arg1, ins.Result)
	case IF_TRUE:
		return fmt.Sprintf("if_true %s goto %s", ins.Arg1, ins.Result)
	case PRINT:
		return fmt.Sprintf("print %s", ins.Arg1)
	case UNARY_MINUS:
		return fmt.Sprintf("%s = -%s", ins.Result, ins.Arg1)
	case UNARY_PLUS:
		return fmt.Sprintf("%s = +%s", ins.Result, ins.Arg1)
	default:
		return fmt.Sprintf("%s = %s %s %s", ins.Result, ins.Arg1, string(ins.Op), ins.Arg2)
	}
}

// Program is the ordered instruction sequence a Generator produces.
type Program struct {
	Instructions []Instruction
}

// Render joins every instruction's canonical text, one per line, in
// generation order. This is the text the golden-file snapshot tests
// compare.
func (p *Program) Render() string {
	var b strings.Builder
	for i, ins := range p.Instructions {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(ins.String())
	}
	return b.String()
}

func formatNumber(value float64, isFloat bool) string {
	if isFloat {
		text := strconv.FormatFloat(value, 'g', -1, 64)
		if !strings.ContainsAny(text, ".eE") {
			text += ".0"
		}
		return text
	}
	return strconv.FormatInt(int64(value), 10)
}

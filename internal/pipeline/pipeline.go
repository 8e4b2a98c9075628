// Package pipeline sequences the lexer, parser, semantic analyzer, and
// IR generator into a single Compile entry point.
package pipeline

import (
	"fmt"

	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/ir"
	"github.com/minilang/minilang/internal/lexer"
	"github.com/minilang/minilang/internal/parser"
	"github.com/minilang/minilang/internal/semantic"
)

// Stage identifies which pipeline stage produced a failure.
type Stage string

const (
	Lexical   Stage = "Lexical"
	Syntactic Stage = "Syntactic"
	Semantic  Stage = "Semantic"
)

// StageError wraps the underlying stage error with the stage that
// raised it, so callers can branch on failure kind without type-
// asserting the wrapped error itself.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Result holds every artifact a successful Compile produces.
type Result struct {
	Tokens   []lexer.Token
	AST      *ast.Program
	Table    *semantic.SymbolTable
	IR       *ir.Program
	Warnings []string
}

// String renders a compact debug dump of a Result: the IR text followed
// by any warnings. It is a convenience for collaborators, not part of
// any stability contract.
func (r *Result) String() string {
	out := r.IR.Render()
	for _, w := range r.Warnings {
		out += "\nwarning: " + w
	}
	return out
}

// Compile runs the lexer, parser, analyzer, and IR generator over
// source in order, stopping at the first stage that fails. Each call
// uses fresh stage state: counters and tables never carry over between
// invocations.
func Compile(source string) (*Result, error) {
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return nil, &StageError{Stage: Lexical, Err: err}
	}

	program, err := parser.New(tokens).Parse()
	if err != nil {
		return nil, &StageError{Stage: Syntactic, Err: err}
	}

	analysis, err := semantic.New().Analyze(program)
	if err != nil {
		return nil, &StageError{Stage: Semantic, Err: err}
	}

	irProgram := ir.Generate(program)

	return &Result{
		Tokens:   tokens,
		AST:      program,
		Table:    analysis.Table,
		IR:       irProgram,
		Warnings: analysis.Warnings,
	}, nil
}

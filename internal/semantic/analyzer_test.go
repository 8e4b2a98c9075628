package semantic

import (
	"testing"

	"github.com/minilang/minilang/internal/errors"
	"github.com/minilang/minilang/internal/lexer"
	"github.com/minilang/minilang/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, source string) (*Result, error) {
	t.Helper()
	tokens, err := lexer.New(source).Tokenize()
	require.NoError(t, err)
	prog, err := parser.New(tokens).Parse()
	require.NoError(t, err)
	return New().Analyze(prog)
}

func TestRedeclarationCitesPriorLine(t *testing.T) {
	_, err := analyze(t, "var x;\nvar x;")
	require.Error(t, err)

	semErr, ok := err.(*errors.SemanticError)
	require.True(t, ok, "expected *errors.SemanticError, got %T", err)
	assert.Contains(t, semErr.Error(), "already declared at line 1")
	assert.Contains(t, semErr.Error(), "line 2")
}

func TestUseBeforeDeclareIsSemanticError(t *testing.T) {
	_, err := analyze(t, "y = 1;")
	require.Error(t, err)

	semErr, ok := err.(*errors.SemanticError)
	require.True(t, ok)
	assert.Contains(t, semErr.Error(), "'y' not declared")
	assert.Contains(t, semErr.Error(), "line 1")
}

func TestUninitializedReadWarns(t *testing.T) {
	result, err := analyze(t, "var x; print(x);")
	require.NoError(t, err)
	assert.Contains(t, result.Warnings, "variable 'x' may not be initialized at line 1")
}

func TestDeclaredButNeverUsedWarns(t *testing.T) {
	result, err := analyze(t, "var x; x = 1;")
	require.NoError(t, err)
	assert.Contains(t, result.Warnings, "variable 'x' declared but never used")
}

func TestAssignmentInitializesWithoutMarkingUsed(t *testing.T) {
	result, err := analyze(t, "var x; x = 1;")
	require.NoError(t, err)
	sym := result.Table.Lookup("x")
	require.NotNil(t, sym)
	assert.True(t, sym.Initialized)
	assert.False(t, sym.Used)
}

func TestNonNumericOperandIsErrorButUnknownIsPermissive(t *testing.T) {
	// 'y' is undeclared, so its use already produced an error and its
	// type is Unknown; Unknown must not cascade into a second error
	// when used as an arithmetic operand.
	_, err := analyze(t, "var x; x = y + 1;")
	require.Error(t, err)
	semErr := err.(*errors.SemanticError)
	assert.Len(t, semErr.Messages, 1)
}

func TestMixedIntFloatArithmeticProducesNoErrors(t *testing.T) {
	_, err := analyze(t, "var x; var y; x = 1; y = 2.0; var s; s = x + y;")
	require.NoError(t, err)
}

func TestComparisonProducesNoErrors(t *testing.T) {
	_, err := analyze(t, "var x; x = 1; if (x > 0) { print(x); }")
	require.NoError(t, err)
}

func TestEmptySourceHasNoWarningsOrErrors(t *testing.T) {
	result, err := analyze(t, "")
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Table.AllSymbols())
}

func TestWithStrictUnknownCascadesErrors(t *testing.T) {
	tokens, err := lexer.New("var x; x = y + 1;").Tokenize()
	require.NoError(t, err)
	prog, err := parser.New(tokens).Parse()
	require.NoError(t, err)

	_, err = New(WithStrictUnknown(true)).Analyze(prog)
	require.Error(t, err)
	semErr := err.(*errors.SemanticError)
	assert.Len(t, semErr.Messages, 2, "strict mode should report the undeclared-variable error and the resulting non-numeric-operand error")
}

func TestWithWarningSinkReceivesEachWarning(t *testing.T) {
	tokens, err := lexer.New("var x; print(x);").Tokenize()
	require.NoError(t, err)
	prog, err := parser.New(tokens).Parse()
	require.NoError(t, err)

	var sunk []string
	_, err = New(WithWarningSink(func(msg string) { sunk = append(sunk, msg) })).Analyze(prog)
	require.NoError(t, err)
	assert.Contains(t, sunk, "variable 'x' may not be initialized at line 1")
}

func TestSymbolTableInsertionOrderPreserved(t *testing.T) {
	result, err := analyze(t, "var b; var a; var c;")
	require.NoError(t, err)
	var names []string
	for _, sym := range result.Table.AllSymbols() {
		names = append(names, sym.Name)
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}

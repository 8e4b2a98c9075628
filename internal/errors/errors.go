// Package errors defines the three typed errors the MiniLang pipeline can
// raise — one per front-end stage — plus shared position-formatting
// helpers collaborators can use to render them.
package errors

import (
	"fmt"
	"strings"

	"github.com/minilang/minilang/internal/token"
)

// LexicalError reports a problem the lexer could not recover from: an
// unrecognized character or a malformed number literal.
type LexicalError struct {
	Message string
	Pos     token.Position
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Pos.Line, e.Pos.Column)
}

// NewLexicalError builds a LexicalError at the given position.
func NewLexicalError(pos token.Position, format string, args ...any) *LexicalError {
	return &LexicalError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// SyntaxError reports a token the parser did not expect: a missing
// terminator, a wrong leading token for a statement, or an unexpected
// end of input during expect().
type SyntaxError struct {
	Message  string
	Pos      token.Position
	Expected token.Type
	Got      token.Type
	hasTypes bool
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Pos.Line, e.Pos.Column)
}

// NewSyntaxError builds a SyntaxError carrying only a message and a
// position, for cases without a single well-defined expected/got pair
// (e.g. "unexpected statement").
func NewSyntaxError(pos token.Position, format string, args ...any) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// NewUnexpectedTokenError builds a SyntaxError for an expect() mismatch,
// recording both the expected and actual token kinds.
func NewUnexpectedTokenError(pos token.Position, expected, got token.Type) *SyntaxError {
	return &SyntaxError{
		Message:  fmt.Sprintf("expected %s but found %s", expected, got),
		Pos:      pos,
		Expected: expected,
		Got:      got,
		hasTypes: true,
	}
}

// HasTokenTypes reports whether Expected/Got were populated by
// NewUnexpectedTokenError, as opposed to a free-form SyntaxError.
func (e *SyntaxError) HasTokenTypes() bool {
	return e.hasTypes
}

// NewUnexpectedEOFError builds the distinct "ran out of input" variant
// of a SyntaxError, per spec: end-of-input during expect() is reported
// differently from a wrong-token mismatch.
func NewUnexpectedEOFError(pos token.Position, expected token.Type) *SyntaxError {
	return &SyntaxError{
		Message:  fmt.Sprintf("expected %s but reached end of input", expected),
		Pos:      pos,
		Expected: expected,
		hasTypes: true,
	}
}

// SemanticError aggregates every error the semantic analyzer collected
// during a single traversal into one multi-line error, per spec §4.3/§7.
type SemanticError struct {
	Messages []string
}

func (e *SemanticError) Error() string {
	if len(e.Messages) == 1 {
		return e.Messages[0]
	}
	return strings.Join(e.Messages, "\n")
}

// NewSemanticError builds a SemanticError from the collected error
// strings. Callers must not call this with an empty slice; an empty
// traversal has no SemanticError to report at all.
func NewSemanticError(messages []string) *SemanticError {
	return &SemanticError{Messages: messages}
}

// Caret renders the source line the position points at, with a '^'
// marker under the offending column. It is a presentation helper for
// collaborators (e.g. a future CLI or editor integration); the core
// never calls it itself.
func Caret(source string, pos token.Position) string {
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}
	line := lines[pos.Line-1]
	col := pos.Column
	if col < 1 {
		col = 1
	}
	return line + "\n" + strings.Repeat(" ", col-1) + "^"
}

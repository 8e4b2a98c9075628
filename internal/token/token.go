// Package token defines the token vocabulary shared by the lexer, the
// parser, and the error types: splitting it out (mirroring the
// teacher's pkg/token) lets internal/errors depend on position and
// token-kind information without internal/lexer having to depend back
// on internal/errors.
package token

import "fmt"

// Type identifies the lexical category of a token. The set is closed:
// MiniLang has five keywords, a handful of operators and punctuation
// marks, and two literal kinds.
type Type int

const (
	// ILLEGAL marks a character the lexer could not classify. The lexer
	// never actually hands an ILLEGAL token to callers — an unrecognized
	// character is reported as a LexicalError instead — but the constant
	// is kept for parity with the token taxonomy.
	ILLEGAL Type = iota
	EOF

	IDENT
	NUMBER

	// Keywords
	VAR
	IF
	ELSE
	WHILE
	PRINT

	// Operators
	PLUS
	MINUS
	MULTIPLY
	DIVIDE

	// Comparisons
	EQUAL
	NOT_EQUAL
	LESS_THAN
	GREATER_THAN
	LESS_EQUAL
	GREATER_EQUAL

	// Punctuation
	ASSIGN
	SEMICOLON
	LPAREN
	RPAREN
	LBRACE
	RBRACE
)

var names = map[Type]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	IDENT:         "IDENTIFIER",
	NUMBER:        "NUMBER",
	VAR:           "VAR",
	IF:            "IF",
	ELSE:          "ELSE",
	WHILE:         "WHILE",
	PRINT:         "PRINT",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	MULTIPLY:      "MULTIPLY",
	DIVIDE:        "DIVIDE",
	EQUAL:         "EQUAL",
	NOT_EQUAL:     "NOT_EQUAL",
	LESS_THAN:     "LESS_THAN",
	GREATER_THAN:  "GREATER_THAN",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER_EQUAL: "GREATER_EQUAL",
	ASSIGN:        "ASSIGN",
	SEMICOLON:     "SEMICOLON",
	LPAREN:        "LPAREN",
	RPAREN:        "RPAREN",
	LBRACE:        "LBRACE",
	RBRACE:        "RBRACE",
}

// String renders the token type's canonical name, e.g. "IDENTIFIER".
func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Keywords maps reserved words to their keyword token type. Matching is
// case-sensitive: "IF" is an identifier, not a keyword.
var Keywords = map[string]Type{
	"var":   VAR,
	"if":    IF,
	"else":  ELSE,
	"while": WHILE,
	"print": PRINT,
}

// LookupIdent classifies a scanned identifier lexeme as a keyword or a
// plain identifier.
func LookupIdent(lexeme string) Type {
	if kind, ok := Keywords[lexeme]; ok {
		return kind
	}
	return IDENT
}

// Position locates a token in the source text. Line and Column are both
// 1-based and point at the first character of the lexeme.
type Position struct {
	Line   int
	Column int
}

// String renders the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is the unit the lexer produces and the parser consumes.
//
// NumberValue and IsFloat are only meaningful when Type is NUMBER;
// IsFloat distinguishes "3" (int) from "3.0" (float) since both belong
// to the same token kind but carry different semantic types downstream.
type Token struct {
	Type        Type
	Lexeme      string
	Pos         Position
	NumberValue float64
	IsFloat     bool
}

// String renders a token for debugging, e.g. "IDENTIFIER(x) at 1:5".
func (t Token) String() string {
	return fmt.Sprintf("%s(%s) at %s", t.Type, t.Lexeme, t.Pos)
}

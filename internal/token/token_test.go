package token

import "testing"

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{ILLEGAL, "ILLEGAL"},
		{EOF, "EOF"},
		{IDENT, "IDENTIFIER"},
		{NUMBER, "NUMBER"},
		{VAR, "VAR"},
		{IF, "IF"},
		{ELSE, "ELSE"},
		{WHILE, "WHILE"},
		{PRINT, "PRINT"},
		{PLUS, "PLUS"},
		{MINUS, "MINUS"},
		{MULTIPLY, "MULTIPLY"},
		{DIVIDE, "DIVIDE"},
		{EQUAL, "EQUAL"},
		{NOT_EQUAL, "NOT_EQUAL"},
		{LESS_THAN, "LESS_THAN"},
		{GREATER_THAN, "GREATER_THAN"},
		{LESS_EQUAL, "LESS_EQUAL"},
		{GREATER_EQUAL, "GREATER_EQUAL"},
		{ASSIGN, "ASSIGN"},
		{SEMICOLON, "SEMICOLON"},
		{LPAREN, "LPAREN"},
		{RPAREN, "RPAREN"},
		{LBRACE, "LBRACE"},
		{RBRACE, "RBRACE"},
		{Type(999), "Type(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("Type(%d).String() = %q, want %q", int(tt.typ), got, tt.want)
			}
		})
	}
}

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		lexeme string
		want   Type
	}{
		{"var", VAR},
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"print", PRINT},
		{"IF", IDENT}, // keyword matching is case-sensitive
		{"x", IDENT},
		{"printable", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			if got := LookupIdent(tt.lexeme); got != tt.want {
				t.Errorf("LookupIdent(%q) = %s, want %s", tt.lexeme, got, tt.want)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	pos := Position{Line: 3, Column: 7}
	if got, want := pos.String(), "3:7"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: IDENT, Lexeme: "x", Pos: Position{Line: 1, Column: 5}}
	if got, want := tok.String(), "IDENTIFIER(x) at 1:5"; got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}

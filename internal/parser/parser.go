// Package parser implements a recursive-descent parser over the MiniLang
// token stream, producing an ast.Program.
package parser

import (
	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/errors"
	"github.com/minilang/minilang/internal/lexer"
	"github.com/minilang/minilang/internal/token"
)

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithMaxErrors documents, rather than changes, the parser's fail-fast
// contract: recursive descent here stops at the first SyntaxError (spec
// §4.2/§7), so panic-mode recovery and multi-error collection were never
// built. The option is accepted and stored for a future recovery-mode
// parser but has no effect on today's Parse.
func WithMaxErrors(n int) Option {
	return func(p *Parser) {
		p.maxErrors = n
	}
}

// Parser consumes a fixed token slice (already fully lexed) and builds an
// AST. It holds no lookahead beyond the current and next token.
type Parser struct {
	tokens    []lexer.Token
	pos       int
	maxErrors int
}

// New constructs a Parser over tokens, which must end with exactly one
// EOF token as produced by lexer.Tokenize.
func New(tokens []lexer.Token, opts ...Option) *Parser {
	p := &Parser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if tok.Type != token.EOF {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it has the given kind, else
// returns a SyntaxError. End-of-input gets its own distinct message.
func (p *Parser) expect(kind token.Type) (lexer.Token, error) {
	cur := p.current()
	if cur.Type == kind {
		return p.advance(), nil
	}
	if cur.Type == token.EOF {
		return lexer.Token{}, errors.NewUnexpectedEOFError(cur.Pos, kind)
	}
	return lexer.Token{}, errors.NewUnexpectedTokenError(cur.Pos, kind, cur.Type)
}

// Parse consumes the entire token stream and returns the resulting
// Program, or the first SyntaxError encountered. The parser does not
// attempt recovery: it stops at the first error.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.current().Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current().Type {
	case token.VAR:
		return p.parseVarDecl()
	case token.IDENT:
		return p.parseAssignment()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.PRINT:
		return p.parsePrint()
	default:
		cur := p.current()
		return nil, errors.NewSyntaxError(cur.Pos, "unexpected token %s at start of statement", cur.Type)
	}
}

func (p *Parser) parseVarDecl() (ast.Statement, error) {
	kw := p.advance() // 'var'
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return ast.NewVarDeclaration(name.Lexeme, kw.Pos.Line), nil
}

func (p *Parser) parseAssignment() (ast.Statement, error) {
	name := p.advance() // IDENT
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return ast.NewAssignment(name.Lexeme, value, name.Pos.Line), nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	kw := p.advance() // 'if'
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var els []ast.Statement
	if p.current().Type == token.ELSE {
		p.advance()
		els, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIf(cond, then, els, kw.Pos.Line), nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	kw := p.advance() // 'while'
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(cond, body, kw.Pos.Line), nil
}

func (p *Parser) parsePrint() (ast.Statement, error) {
	kw := p.advance() // 'print'
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return ast.NewPrint(value, kw.Pos.Line), nil
}

func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for p.current().Type != token.RBRACE {
		if p.current().Type == token.EOF {
			return nil, errors.NewUnexpectedEOFError(p.current().Pos, token.RBRACE)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.advance() // '}'
	return stmts, nil
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseComparison()
}

var comparisonOps = map[token.Type]bool{
	token.LESS_THAN:     true,
	token.GREATER_THAN:  true,
	token.LESS_EQUAL:    true,
	token.GREATER_EQUAL: true,
	token.EQUAL:         true,
	token.NOT_EQUAL:     true,
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for comparisonOps[p.current().Type] {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(op.Type, left, right, op.Pos.Line)
	}
	return left, nil
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.current().Type == token.PLUS || p.current().Type == token.MINUS {
		op := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(op.Type, left, right, op.Pos.Line)
	}
	return left, nil
}

func (p *Parser) parseFactor() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.current().Type == token.MULTIPLY || p.current().Type == token.DIVIDE {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryOp(op.Type, left, right, op.Pos.Line)
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.current().Type == token.PLUS || p.current().Type == token.MINUS {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOp(op.Type, operand, op.Pos.Line), nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	cur := p.current()
	switch cur.Type {
	case token.NUMBER:
		p.advance()
		return ast.NewNumber(cur.NumberValue, cur.IsFloat, cur.Pos.Line), nil
	case token.IDENT:
		p.advance()
		return ast.NewIdentifier(cur.Lexeme, cur.Pos.Line), nil
	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.EOF:
		return nil, errors.NewUnexpectedEOFError(cur.Pos, token.NUMBER)
	default:
		return nil, errors.NewSyntaxError(cur.Pos, "unexpected token %s in expression", cur.Type)
	}
}

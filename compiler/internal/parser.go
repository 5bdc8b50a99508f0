package internal

import (
	"io"
)

// TokenStream is a forward only token source. Next returns io.EOF when no tokens remain.
type TokenStream interface {
	Next() (*Token, error)
}

// Parser is a recursive descent parser with one token of lookahead. The semantic checks
// (identifiers are declared once, and before they are used) are done while parsing, so a
// returned ProgramAst is always safe to generate code for.
type Parser struct {
	tokens      TokenStream
	peekedToken *Token
	// declared maps every name bound by a let to whether its value can be referenced yet. A name
	// is added as soon as its let identifier is accepted, and becomes referenceable once the
	// let statement is complete.
	declared map[string]bool
}

func NewParser(tokens TokenStream) *Parser {
	return &Parser{tokens: tokens, declared: map[string]bool{}}
}

// Parse reads source from rd and returns its ast.
func Parse(rd io.Reader) (*ProgramAst, error) {
	return NewParser(NewTokenizer(rd)).Parse()
}

// Parse consumes the whole token stream. On error no partial program is returned.
func (parser *Parser) Parse() (*ProgramAst, error) {
	program := &ProgramAst{}
	for {
		_, err := parser.peekToken()
		if err == io.EOF {
			return program, nil
		}
		if err != nil {
			return nil, err
		}
		statement, err := parser.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, statement)
	}
}

// Statement := "exit" "(" Expr ")" ";" | "let" Ident "=" Expr ";"
func (parser *Parser) parseStatement() (StatementAst, error) {
	token, err := parser.nextToken()
	if err != nil {
		return nil, err
	}
	switch token.Type {
	case LetTP:
		return parser.parseLetStatement()
	case ExitTP:
		return parser.parseExitStatement()
	default:
		return nil, &UnexpectedTokenError{Token: token}
	}
}

// let Ident = Expr ;
func (parser *Parser) parseLetStatement() (*LetStatementAst, error) {
	identToken, err := parser.expectToken(IdentifierTP)
	if err != nil {
		return nil, err
	}
	name := identToken.Content
	if _, ok := parser.declared[name]; ok {
		return nil, &DuplicateDeclarationError{Name: name, Token: identToken}
	}
	parser.declared[name] = false
	_, err = parser.expectToken(EqTP)
	if err != nil {
		return nil, err
	}
	expr, err := parser.parseExpression()
	if err != nil {
		return nil, err
	}
	_, err = parser.expectToken(SemiColonTP)
	if err != nil {
		return nil, err
	}
	parser.declared[name] = true
	return &LetStatementAst{Ident: name, Expr: expr}, nil
}

// exit ( Expr ) ;
func (parser *Parser) parseExitStatement() (*ExitStatementAst, error) {
	_, err := parser.expectToken(LeftParenthesesTP)
	if err != nil {
		return nil, err
	}
	expr, err := parser.parseExpression()
	if err != nil {
		return nil, err
	}
	_, err = parser.expectToken(RightParenthesesTP)
	if err != nil {
		return nil, err
	}
	_, err = parser.expectToken(SemiColonTP)
	if err != nil {
		return nil, err
	}
	return &ExitStatementAst{Expr: expr}, nil
}

// Expr := I64Literal | Ident
func (parser *Parser) parseExpression() (ExprAst, error) {
	token, err := parser.nextToken()
	if err != nil {
		return nil, err
	}
	switch token.Type {
	case I64LiteralTP:
		return &I64ExprAst{Value: token.Value}, nil
	case IdentifierTP:
		if !parser.declared[token.Content] {
			return nil, &UndeclaredReferenceError{Name: token.Content, Token: token}
		}
		return &IdentExprAst{Name: token.Content}, nil
	default:
		return nil, &UnexpectedTokenError{Token: token}
	}
}

// peekToken returns the next token without consuming it, or io.EOF at the end of the stream.
func (parser *Parser) peekToken() (*Token, error) {
	if parser.peekedToken != nil {
		return parser.peekedToken, nil
	}
	token, err := parser.tokens.Next()
	if err != nil {
		return nil, err
	}
	parser.peekedToken = token
	return token, nil
}

// nextToken consumes the next token. Running out of tokens here is an error since the grammar
// requires one.
func (parser *Parser) nextToken() (*Token, error) {
	token, err := parser.peekToken()
	if err == io.EOF {
		return nil, ErrTokenStreamExhausted
	}
	if err != nil {
		return nil, err
	}
	parser.peekedToken = nil
	return token, nil
}

// expectToken consumes the next token and checks its type. Only the type is compared, so
// any identifier matches IdentifierTP.
func (parser *Parser) expectToken(tp TokenType) (*Token, error) {
	token, err := parser.nextToken()
	if err != nil {
		return nil, err
	}
	if token.Type != tp {
		return nil, &ExpectedTokenError{Expected: tp, Got: token}
	}
	return token, nil
}

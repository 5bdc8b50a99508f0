package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(content string) (*ProgramAst, error) {
	return Parse(strings.NewReader(content))
}

func TestParser_Parse(t *testing.T) {
	testData := []struct {
		content  string
		expected *ProgramAst
	}{
		{content: "", expected: &ProgramAst{}},
		{content: "exit(3);", expected: &ProgramAst{Statements: []StatementAst{
			&ExitStatementAst{Expr: &I64ExprAst{Value: 3}},
		}}},
		{content: "let x = 5; exit(x);", expected: &ProgramAst{Statements: []StatementAst{
			&LetStatementAst{Ident: "x", Expr: &I64ExprAst{Value: 5}},
			&ExitStatementAst{Expr: &IdentExprAst{Name: "x"}},
		}}},
		{content: "let a = 1; let b = a; let c = -2; exit(b); exit(c);", expected: &ProgramAst{Statements: []StatementAst{
			&LetStatementAst{Ident: "a", Expr: &I64ExprAst{Value: 1}},
			&LetStatementAst{Ident: "b", Expr: &IdentExprAst{Name: "a"}},
			&LetStatementAst{Ident: "c", Expr: &I64ExprAst{Value: -2}},
			&ExitStatementAst{Expr: &IdentExprAst{Name: "b"}},
			&ExitStatementAst{Expr: &IdentExprAst{Name: "c"}},
		}}},
	}
	for _, data := range testData {
		program, err := parseString(data.content)
		assert.Nil(t, err, data.content)
		assert.Equal(t, data.expected, program, data.content)
	}
}

func TestParser_TokenStreamExhausted(t *testing.T) {
	testData := []string{
		"let",
		"let x",
		"let x =",
		"let x = 1",
		"exit",
		"exit(",
		"exit(1",
		"exit(1)",
	}
	for _, content := range testData {
		program, err := parseString(content)
		assert.Nil(t, program, content)
		assert.Equal(t, ErrTokenStreamExhausted, err, content)
	}
}

func TestParser_ExpectedToken(t *testing.T) {
	testData := []struct {
		content  string
		expected TokenType
		got      TokenType
	}{
		{content: "let 1 = 2;", expected: IdentifierTP, got: I64LiteralTP},
		{content: "let x 2;", expected: EqTP, got: I64LiteralTP},
		{content: "let x = 2)", expected: SemiColonTP, got: RightParenthesesTP},
		{content: "exit 1;", expected: LeftParenthesesTP, got: I64LiteralTP},
		{content: "exit(1;", expected: RightParenthesesTP, got: SemiColonTP},
		{content: "exit(1) exit(2);", expected: SemiColonTP, got: ExitTP},
	}
	for _, data := range testData {
		program, err := parseString(data.content)
		assert.Nil(t, program, data.content)
		var expectedErr *ExpectedTokenError
		require.True(t, errors.As(err, &expectedErr), data.content)
		assert.Equal(t, data.expected, expectedErr.Expected, data.content)
		assert.Equal(t, data.got, expectedErr.Got.Type, data.content)
	}
}

func TestParser_UnexpectedToken(t *testing.T) {
	testData := []struct {
		content string
		got     TokenType
	}{
		{content: "x = 1;", got: IdentifierTP},
		{content: "5;", got: I64LiteralTP},
		{content: ";", got: SemiColonTP},
		{content: "exit(let);", got: LetTP},
		{content: "let x = (1);", got: LeftParenthesesTP},
		{content: "exit(1); )", got: RightParenthesesTP},
	}
	for _, data := range testData {
		program, err := parseString(data.content)
		assert.Nil(t, program, data.content)
		var unexpectedErr *UnexpectedTokenError
		require.True(t, errors.As(err, &unexpectedErr), data.content)
		assert.Equal(t, data.got, unexpectedErr.Token.Type, data.content)
	}
}

func TestParser_DuplicateDeclaration(t *testing.T) {
	program, err := parseString("let x = 1; let x = 2; exit(x);")
	assert.Nil(t, program)
	var duplicateErr *DuplicateDeclarationError
	require.True(t, errors.As(err, &duplicateErr))
	assert.Equal(t, "x", duplicateErr.Name)
	assert.Equal(t, 1, duplicateErr.Token.Line)
	assert.Equal(t, 16, duplicateErr.Token.Column)
	assert.Contains(t, err.Error(), "x")
}

func TestParser_UndeclaredReference(t *testing.T) {
	testData := []struct {
		content string
		name    string
	}{
		{content: "exit(y);", name: "y"},
		{content: "let a = b;", name: "b"},
		{content: "exit(a); let a = 1;", name: "a"},
		{content: "let x = x;", name: "x"},
	}
	for _, data := range testData {
		program, err := parseString(data.content)
		assert.Nil(t, program, data.content)
		var undeclaredErr *UndeclaredReferenceError
		require.True(t, errors.As(err, &undeclaredErr), data.content)
		assert.Equal(t, data.name, undeclaredErr.Name, data.content)
		assert.Contains(t, err.Error(), data.name, data.content)
	}
}

func TestParser_TokenizerErrorStopsParsing(t *testing.T) {
	program, err := parseString("let x = 1; exit(x) # comment")
	assert.Nil(t, program)
	var invalidChar *InvalidControlCharError
	assert.True(t, errors.As(err, &invalidChar))
}

// recordingStream hands out tokens one by one and remembers how many were pulled.
type recordingStream struct {
	tokenizer *Tokenizer
	pulled    int
}

func (stream *recordingStream) Next() (*Token, error) {
	token, err := stream.tokenizer.Next()
	if err == nil {
		stream.pulled++
	}
	return token, err
}

func TestParser_PullsTokensLazily(t *testing.T) {
	// The parser stops at the duplicate declaration, the remaining tokens are never read.
	stream := &recordingStream{tokenizer: NewTokenizer(strings.NewReader("let x = 1; let x = 2; exit(x);"))}
	_, err := NewParser(stream).Parse()
	var duplicateErr *DuplicateDeclarationError
	require.True(t, errors.As(err, &duplicateErr))
	assert.Equal(t, 7, stream.pulled)
}

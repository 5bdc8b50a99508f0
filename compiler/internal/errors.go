package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrTokenStreamExhausted is returned when the token stream ends where a token is required.
	ErrTokenStreamExhausted = errors.New("Parser: unexpected end of token stream")
	// ErrInvalidEncoding is returned by the tokenizer when the input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid utf-8 encoding")
)

type InvalidTokenError struct {
	Word   string
	Line   int
	Column int
}

func (err *InvalidTokenError) Error() string {
	return fmt.Sprintf("Tokenizer: invalid token %q at line %d, column %d", err.Word, err.Line, err.Column)
}

type InvalidControlCharError struct {
	Char   rune
	Line   int
	Column int
}

func (err *InvalidControlCharError) Error() string {
	return fmt.Sprintf("Tokenizer: invalid control character %q at line %d, column %d", err.Char, err.Line,
		err.Column)
}

type UnexpectedTokenError struct {
	Token *Token
}

func (err *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("Parser: unexpected token %s at line %d, column %d", err.Token, err.Token.Line,
		err.Token.Column)
}

// ExpectedTokenError means the next token's type is not the one the grammar requires.
type ExpectedTokenError struct {
	Expected TokenType
	Got      *Token
}

func (err *ExpectedTokenError) Error() string {
	return fmt.Sprintf("Parser: expected %s but got %s at line %d, column %d", err.Expected, err.Got,
		err.Got.Line, err.Got.Column)
}

type DuplicateDeclarationError struct {
	Name  string
	Token *Token
}

func (err *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("Parser: identifier %s is already declared, redeclared at line %d, column %d", err.Name,
		err.Token.Line, err.Token.Column)
}

type UndeclaredReferenceError struct {
	Name  string
	Token *Token
}

func (err *UndeclaredReferenceError) Error() string {
	return fmt.Sprintf("Parser: identifier %s is not declared, referenced at line %d, column %d", err.Name,
		err.Token.Line, err.Token.Column)
}

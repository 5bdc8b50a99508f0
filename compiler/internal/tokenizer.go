package internal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xiaobogaga/hydrogen/util"
)

// A simple Tokenizer for hydrogen.

// Hydrogen language has those elements:
// * KeyWord: let, exit.
// * Symbol: =, ;, (, ).
// * Constant: signed 64 bit integer.
// * Identifier: letters, digits, underscore, starting with a letter.
// Whitespace separates words and is never returned as a token.

type TokenType int

const (
	EqTP               TokenType = iota // =
	LetTP                               // let
	ExitTP                              // exit
	SemiColonTP                         // ;
	LeftParenthesesTP                   // (
	RightParenthesesTP                  // )
	IdentifierTP                        // varA
	I64LiteralTP                        // 1010
)

// keyWordTokenTPMap is the mapping from keyword to the corresponding TokenType.
var keyWordTokenTPMap = map[string]TokenType{
	"let":  LetTP,
	"exit": ExitTP,
}

// simpleSymbolTokenTPMap is the mapping from single character symbols to the corresponding TokenType.
// None of them needs a lookahead.
var simpleSymbolTokenTPMap = map[rune]TokenType{
	'=': EqTP,
	';': SemiColonTP,
	'(': LeftParenthesesTP,
	')': RightParenthesesTP,
}

func (tp TokenType) String() string {
	switch tp {
	case EqTP:
		return "EQ"
	case LetTP:
		return "LET"
	case ExitTP:
		return "EXIT"
	case SemiColonTP:
		return "SEMI"
	case LeftParenthesesTP:
		return "PAREN_OPEN"
	case RightParenthesesTP:
		return "PAREN_CLOSE"
	case IdentifierTP:
		return "IDENT"
	case I64LiteralTP:
		return "I64"
	}
	return fmt.Sprintf("TokenType(%d)", int(tp))
}

type Token struct {
	Type    TokenType
	Content string
	Value   int64 // only meaningful for I64LiteralTP
	Line    int
	Column  int
}

func (t *Token) String() string {
	switch t.Type {
	case IdentifierTP:
		return fmt.Sprintf("%s(%s)", t.Type, t.Content)
	case I64LiteralTP:
		return fmt.Sprintf("%s(%d)", t.Type, t.Value)
	}
	return t.Type.String()
}

// Tokenizer pulls runes from a reader and produces one token per Next call. It never rewinds,
// the only buffered state is the current word and one rune of lookahead.
type Tokenizer struct {
	rd            io.RuneReader
	currentLine   int
	currentColumn int
	lookAhead     rune
	hasLookAhead  bool
}

func NewTokenizer(rd io.Reader) *Tokenizer {
	runeReader, ok := rd.(io.RuneReader)
	if !ok {
		runeReader = bufio.NewReader(rd)
	}
	return &Tokenizer{rd: runeReader, currentLine: 1, currentColumn: 1}
}

// Next returns the next token, or io.EOF once the input is exhausted. Errors from the
// underlying reader are returned unchanged.
func (tokenizer *Tokenizer) Next() (*Token, error) {
	for {
		r, line, column, err := tokenizer.readRune()
		if err != nil {
			return nil, err
		}
		if unicode.IsSpace(r) {
			continue
		}
		if tp, ok := simpleSymbolTokenTPMap[r]; ok {
			return &Token{Type: tp, Content: string(r), Line: line, Column: column}, nil
		}
		if !util.IsWordCharacter(r) {
			return nil, &InvalidControlCharError{Char: r, Line: line, Column: column}
		}
		return tokenizer.tokenWord(r, line, column)
	}
}

// tokenWord buffers characters starting at first until whitespace or a symbol is ahead, then
// classifies the word as a keyword, an integer literal or an identifier.
func (tokenizer *Tokenizer) tokenWord(first rune, line, column int) (*Token, error) {
	var word strings.Builder
	word.WriteRune(first)
	for {
		r, err := tokenizer.peekRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if unicode.IsSpace(r) || !util.IsWordCharacter(r) {
			break
		}
		tokenizer.readRune()
		word.WriteRune(r)
	}
	content := word.String()
	if tp, isKeyWord := keyWordTokenTPMap[content]; isKeyWord {
		return &Token{Type: tp, Content: content, Line: line, Column: column}, nil
	}
	if value, err := strconv.ParseInt(content, 10, 64); err == nil {
		return &Token{Type: I64LiteralTP, Content: content, Value: value, Line: line, Column: column}, nil
	}
	if util.IsIdentifier(content) {
		return &Token{Type: IdentifierTP, Content: content, Line: line, Column: column}, nil
	}
	return nil, &InvalidTokenError{Word: content, Line: line, Column: column}
}

// readRune consumes one rune and returns it with its position.
func (tokenizer *Tokenizer) readRune() (r rune, line int, column int, err error) {
	r, err = tokenizer.peekRune()
	if err != nil {
		return
	}
	tokenizer.hasLookAhead = false
	line, column = tokenizer.currentLine, tokenizer.currentColumn
	if r == '\n' {
		tokenizer.currentLine++
		tokenizer.currentColumn = 1
	} else {
		tokenizer.currentColumn++
	}
	return
}

// peekRune returns the next rune without consuming it.
func (tokenizer *Tokenizer) peekRune() (rune, error) {
	if tokenizer.hasLookAhead {
		return tokenizer.lookAhead, nil
	}
	r, size, err := tokenizer.rd.ReadRune()
	if err != nil {
		return 0, err
	}
	if r == utf8.RuneError && size == 1 {
		return 0, fmt.Errorf("Tokenizer: %w at line %d, column %d", ErrInvalidEncoding, tokenizer.currentLine,
			tokenizer.currentColumn)
	}
	tokenizer.lookAhead, tokenizer.hasLookAhead = r, true
	return r, nil
}

// Tokenize drains the tokenizer. It is used by the debug token dump and tests, the parser pulls
// tokens one at a time instead.
func (tokenizer *Tokenizer) Tokenize() ([]*Token, error) {
	var tokens []*Token
	for {
		token, err := tokenizer.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
}

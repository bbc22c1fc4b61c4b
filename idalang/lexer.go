package idalang

import (
	"bufio"
	"io"
	"strings"

	"github.com/samber/lo"
)

type Lexer struct {
	source *bufio.Reader
	tokens []Token

	column     int
	prevColumn int
}

func NewLexer(source io.Reader) *Lexer {
	return &Lexer{
		source: bufio.NewReader(source),
	}
}

func Tokenize(text string) ([]Token, error) {
	return NewLexer(strings.NewReader(text)).Tokenize()
}

func (l *Lexer) readRune() (rune, error) {
	r, _, err := l.source.ReadRune()
	if err != nil {
		return 0, err
	}
	l.prevColumn = l.column
	l.column++
	return r, nil
}

func (l *Lexer) unreadRune() {
	_ = l.source.UnreadRune()
	l.column = l.prevColumn
}

// accept consumes the next rune only if it equals r
func (l *Lexer) accept(r rune) (bool, error) {
	next, err := l.readRune()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if next == r {
		return true, nil
	}
	l.unreadRune()
	return false, nil
}

func (l *Lexer) Tokenize() ([]Token, error) {
	for {
		token, err := l.next()
		if err != nil {
			return nil, err
		}
		if token.Kind == TokenEOF {
			break
		}
		l.tokens = append(l.tokens, token)
	}
	if l.tokens == nil {
		return []Token{}, nil
	}
	return l.tokens, nil
}

func (l *Lexer) next() (Token, error) {
	for {
		r, err := l.readRune()
		if err == io.EOF {
			return Token{Kind: TokenEOF}, nil
		}
		if err != nil {
			return Token{}, err
		}

		switch {
		case isWhitespace(r):
			continue
		case isDigit(r):
			l.unreadRune()
			return l.lexNumber()
		case isLetter(r):
			l.unreadRune()
			return l.lexWord()
		case r == '\'':
			return l.lexString()
		}

		switch r {
		case '+':
			return Token{Kind: TokenAdd}, nil
		case '-':
			return Token{Kind: TokenSub}, nil
		case '*':
			return Token{Kind: TokenMul}, nil
		case '/':
			return Token{Kind: TokenDiv}, nil
		case '%':
			return Token{Kind: TokenMod}, nil
		case '(':
			return Token{Kind: TokenLP}, nil
		case ')':
			return Token{Kind: TokenRP}, nil
		case '=':
			return l.lexOrEqual(TokenEQ, TokenEquals)
		case '<':
			return l.lexOrEqual(TokenLessThan, TokenLessOrEq)
		case '>':
			return l.lexOrEqual(TokenGreaterThan, TokenGreaterOrEq)
		case '!':
			ok, err := l.accept('=')
			if err != nil {
				return Token{}, err
			}
			if !ok {
				return Token{}, newError(InvalidSyntax, "Expected = after ! at column %d", l.column-1)
			}
			return Token{Kind: TokenNotEquals}, nil
		}

		column := l.column - 1
		return Token{}, newError(
			IllegalCharacter,
			"(char: %s) (char_code: %d) at column %d is an IllegalCharacter",
			string(r), r, column,
		)
	}
}

func (l *Lexer) lexOrEqual(single, withEqual TokenKind) (Token, error) {
	ok, err := l.accept('=')
	if err != nil {
		return Token{}, err
	}
	if ok {
		return Token{Kind: withEqual}, nil
	}
	return Token{Kind: single}, nil
}

func (l *Lexer) lexNumber() (Token, error) {
	var buf strings.Builder
	hasDot := false
	for {
		r, err := l.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if isDigit(r) {
			buf.WriteRune(r)
		} else if r == '.' && !hasDot {
			hasDot = true
			buf.WriteRune(r)
		} else if r == '.' {
			return Token{}, newError(InvalidSyntax, "Unexpected . in number %s at column %d", buf.String(), l.column-1)
		} else {
			l.unreadRune()
			break
		}
	}

	text := buf.String()
	if strings.HasSuffix(text, ".") {
		return Token{}, newError(InvalidSyntax, "Expected digit after . in number %s", text)
	}
	if hasDot {
		return Token{Kind: TokenFloat, Text: text}, nil
	}
	return Token{Kind: TokenInt, Text: text}, nil
}

func (l *Lexer) lexWord() (Token, error) {
	var buf strings.Builder
	for {
		r, err := l.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if !isLetter(r) && !isDigit(r) {
			l.unreadRune()
			break
		}
		buf.WriteRune(r)
	}

	word := buf.String()
	switch {
	case word == "true" || word == "false":
		return Token{Kind: TokenBool, Text: word}, nil
	case lo.Contains(keywords, word):
		return Token{Kind: TokenKeyword, Text: word}, nil
	}
	return Token{Kind: TokenIdentifier, Text: word}, nil
}

func (l *Lexer) lexString() (Token, error) {
	var buf strings.Builder
	for {
		r, err := l.readRune()
		if err == io.EOF {
			return Token{}, newError(InvalidSyntax, "Expected '")
		}
		if err != nil {
			return Token{}, err
		}
		if r == '\'' {
			break
		}

		if r == '\\' {
			next, err := l.readRune()
			if err == io.EOF {
				return Token{}, newError(InvalidSyntax, "Expected '")
			}
			if err != nil {
				return Token{}, err
			}
			switch next {
			case 'n':
				buf.WriteRune('\n')
			case 't':
				buf.WriteRune('\t')
			default:
				buf.WriteRune(next)
			}
		} else {
			buf.WriteRune(r)
		}
	}
	return Token{Kind: TokenString, Text: buf.String()}, nil
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

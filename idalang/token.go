package idalang

type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) Is(kind TokenKind, text string) bool {
	return t.Kind == kind && t.Text == text
}

func (t Token) String() string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + ":" + t.Text
}

type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenInt
	TokenFloat
	TokenString
	TokenBool
	TokenIdentifier
	TokenKeyword

	TokenAdd
	TokenSub
	TokenMul
	TokenDiv
	TokenMod
	TokenLP
	TokenRP
	TokenEQ

	TokenEquals
	TokenNotEquals
	TokenLessThan
	TokenGreaterThan
	TokenLessOrEq
	TokenGreaterOrEq
)

var tokenKindNames = [...]string{
	TokenEOF:         "EOF",
	TokenInt:         "INT",
	TokenFloat:       "FLOAT",
	TokenString:      "STRING",
	TokenBool:        "BOOL",
	TokenIdentifier:  "IDENTIFIER",
	TokenKeyword:     "KEYWORD",
	TokenAdd:         "ADD",
	TokenSub:         "SUB",
	TokenMul:         "MUL",
	TokenDiv:         "DIV",
	TokenMod:         "MOD",
	TokenLP:          "LP",
	TokenRP:          "RP",
	TokenEQ:          "EQ",
	TokenEquals:      "EQUALS",
	TokenNotEquals:   "NOT_EQUALS",
	TokenLessThan:    "LESS_THAN",
	TokenGreaterThan: "GREATER_THAN",
	TokenLessOrEq:    "LESS_OR_EQ",
	TokenGreaterOrEq: "GREATER_OR_EQ",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "INVALID"
}

const (
	KeywordLet = "let"
	KeywordNot = "not"
	KeywordAnd = "and"
	KeywordOr  = "or"
)

var keywords = []string{
	KeywordLet,
	KeywordNot,
	KeywordAnd,
	KeywordOr,
}

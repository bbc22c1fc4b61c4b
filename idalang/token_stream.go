package idalang

type TokenStream interface {
	Current() Token
	Consume()
}

type SliceTokenStream struct {
	tokens []Token
	idx    int
}

var _ TokenStream = new(SliceTokenStream)

func NewSliceTokenStream(tokens []Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

// Current returns an EOF token once all tokens are consumed
func (s *SliceTokenStream) Current() Token {
	if s.idx >= len(s.tokens) {
		return Token{Kind: TokenEOF}
	}
	return s.tokens[s.idx]
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}


package idalang

import "github.com/samber/lo"

const DefaultMaxDepth = 512

type Parser struct {
	tokens   TokenStream
	maxDepth int
	depth    int
}

func NewParser(tokens TokenStream, maxDepth int) *Parser {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Parser{
		tokens:   tokens,
		maxDepth: maxDepth,
	}
}

func Parse(tokens []Token) (Node, error) {
	return ParseDepth(tokens, DefaultMaxDepth)
}

func ParseDepth(tokens []Token, maxDepth int) (Node, error) {
	if len(tokens) == 0 {
		return nil, newError(RuntimeError, "Empty expression")
	}
	return NewParser(NewSliceTokenStream(tokens), maxDepth).Parse()
}

// Parse reads one complete expression. Tokens left after it are an error.
func (p *Parser) Parse() (Node, error) {
	node, err := p.expression()
	if err != nil {
		return nil, err
	}
	if token := p.tokens.Current(); token.Kind != TokenEOF {
		return nil, newError(UnexpectedToken, "Unexpected %s after %s", token, node)
	}
	return node, nil
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return newError(InvalidSyntax, "Maximum nesting depth exceeded => %d", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

var (
	logicalOps    = []Token{{Kind: TokenKeyword, Text: KeywordAnd}, {Kind: TokenKeyword, Text: KeywordOr}}
	comparisonOps = []Token{{Kind: TokenEquals}, {Kind: TokenNotEquals}, {Kind: TokenLessThan}, {Kind: TokenLessOrEq}, {Kind: TokenGreaterThan}, {Kind: TokenGreaterOrEq}}
	arithOps      = []Token{{Kind: TokenAdd}, {Kind: TokenSub}}
	termOps       = []Token{{Kind: TokenMul}, {Kind: TokenDiv}, {Kind: TokenMod}}
)

func (p *Parser) expression() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.tokens.Current().Is(TokenKeyword, KeywordLet) {
		return p.declaration()
	}
	return p.binary(p.comparison, logicalOps)
}

func (p *Parser) declaration() (Node, error) {
	p.tokens.Consume()
	identifier := p.tokens.Current()
	if identifier.Kind != TokenIdentifier {
		return nil, newError(InvalidSyntax, "Expected identifier after let, got %s", identifier)
	}
	p.tokens.Consume()

	if p.tokens.Current().Kind != TokenEQ {
		return &DeclareNode{Name: identifier.Text}, nil
	}
	p.tokens.Consume()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &DeclareAssignNode{
		Name:  identifier.Text,
		Value: value,
	}, nil
}

func (p *Parser) comparison() (Node, error) {
	if op := p.tokens.Current(); op.Is(TokenKeyword, KeywordNot) {
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		p.tokens.Consume()
		operand, err := p.comparison()
		if err != nil {
			return nil, err
		}
		return &UnaryNode{Op: op, Operand: operand}, nil
	}
	return p.binary(p.arith, comparisonOps)
}

func (p *Parser) arith() (Node, error) {
	return p.binary(p.term, arithOps)
}

func (p *Parser) term() (Node, error) {
	return p.binary(p.factor, termOps)
}

// binary folds left: a - b - c is (a - b) - c
func (p *Parser) binary(operand func() (Node, error), ops []Token) (Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for lo.Contains(ops, p.tokens.Current()) {
		op := p.tokens.Current()
		p.tokens.Consume()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{
			Left:  left,
			Op:    op,
			Right: right,
		}
	}
	return left, nil
}

func (p *Parser) factor() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	token := p.tokens.Current()
	switch token.Kind {

	case TokenAdd, TokenSub:
		p.tokens.Consume()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &UnaryNode{Op: token, Operand: operand}, nil

	case TokenInt, TokenFloat:
		p.tokens.Consume()
		return &NumberNode{Token: token}, nil

	case TokenIdentifier:
		p.tokens.Consume()
		if p.tokens.Current().Kind != TokenEQ {
			return &AccessNode{Name: token.Text}, nil
		}
		p.tokens.Consume()
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &AssignNode{Name: token.Text, Value: value}, nil

	case TokenLP:
		p.tokens.Consume()
		nested, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.tokens.Current().Kind != TokenRP {
			return nil, newError(InvalidSyntax, "Expected ) but got %s", p.tokens.Current())
		}
		p.tokens.Consume()
		return nested, nil

	}

	return nil, newError(InvalidSyntax, "Expected factor but got %s", token)
}

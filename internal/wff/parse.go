package wff

import "fmt"

// ParseError reports why an input failed to parse as a WFF.
type ParseError struct {
	Input  string // original input text
	Offset int    // byte offset of the failure
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid WFF %q at offset %d: %s", e.Input, e.Offset, e.Reason)
}

// Parse reads a complete formula in prefix notation.
//
// Whitespace between tokens is skipped. The whole input must be consumed:
// a valid formula followed by trailing characters is an error, as is an
// input that ends before the formula is complete. On failure the returned
// error is a *ParseError and the Formula is nil.
func Parse(input string) (Formula, error) {
	p := parser{input: input}
	f, err := p.formula()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, p.errorf("trailing characters after formula")
	}
	return f, nil
}

// MustParse is like Parse but panics on malformed input. It is intended
// for axiom schemas and other literal formulas known to be valid.
func MustParse(input string) Formula {
	f, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return f
}

// IsWFF reports whether input is a complete well-formed formula.
func IsWFF(input string) bool {
	_, err := Parse(input)
	return err == nil
}

// parser walks the input with one byte of lookahead. The grammar is
// prefix-deterministic, so no backtracking is ever needed.
type parser struct {
	input string
	pos   int
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{Input: p.input, Offset: p.pos, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *parser) formula() (Formula, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, p.errorf("unexpected end of input")
	}
	tok := p.input[p.pos]
	switch {
	case tok >= 'A' && tok <= 'Z':
		p.pos++
		return Atom{Letter: tok}, nil
	case tok == 'n':
		p.pos++
		operand, err := p.formula()
		if err != nil {
			return nil, err
		}
		return Negation{Operand: operand}, nil
	case tok == 'c':
		p.pos++
		antecedent, err := p.formula()
		if err != nil {
			return nil, err
		}
		consequent, err := p.formula()
		if err != nil {
			return nil, err
		}
		return Implication{Antecedent: antecedent, Consequent: consequent}, nil
	default:
		return nil, p.errorf("unexpected character %q", tok)
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

package wff

// Bindings maps schema variables 'A'..'Z' to the subformulas they were
// bound to during a match. Index 0 holds the binding for 'A'. A nil entry
// means the variable is unbound. The zero value is ready to use, and a
// fresh Bindings must be used for every match attempt.
//
// Bound formulas are references into the matched formula, not copies;
// they must be treated as read-only.
type Bindings [26]Formula

// Binding returns the formula bound to letter, or nil when the letter is
// unbound or out of range.
func (b *Bindings) Binding(letter byte) Formula {
	if letter < 'A' || letter > 'Z' {
		return nil
	}
	return b[letter-'A']
}

// Match reports whether f is an instance of pattern, accumulating variable
// bindings in b. Every atom in the pattern is a schema variable: its first
// occurrence binds to the corresponding subformula of f, and every later
// occurrence must be structurally equal to what was bound. Negations and
// implications in the pattern require the same shape in f.
func (b *Bindings) Match(pattern, f Formula) bool {
	if pattern == nil || f == nil {
		return false
	}
	switch p := pattern.(type) {
	case Atom:
		slot := int(p.Letter - 'A')
		if slot < 0 || slot >= len(b) {
			return false
		}
		if b[slot] == nil {
			b[slot] = f
			return true
		}
		return Equal(b[slot], f)
	case Negation:
		g, ok := f.(Negation)
		return ok && b.Match(p.Operand, g.Operand)
	case Implication:
		g, ok := f.(Implication)
		return ok && b.Match(p.Antecedent, g.Antecedent) && b.Match(p.Consequent, g.Consequent)
	default:
		return false
	}
}

// Matches reports whether f is an instance of pattern under some
// assignment of formulas to the pattern's variables. Bindings are
// discarded.
func Matches(pattern, f Formula) bool {
	var b Bindings
	return b.Match(pattern, f)
}

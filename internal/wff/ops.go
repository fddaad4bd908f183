package wff

// Equal reports whether a and b are structurally identical. Atom letters
// compare case-sensitively.
func Equal(a, b Formula) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch x := a.(type) {
	case Atom:
		y, ok := b.(Atom)
		return ok && x.Letter == y.Letter
	case Negation:
		y, ok := b.(Negation)
		return ok && Equal(x.Operand, y.Operand)
	case Implication:
		y, ok := b.(Implication)
		return ok && Equal(x.Antecedent, y.Antecedent) && Equal(x.Consequent, y.Consequent)
	default:
		return false
	}
}

// Clone returns a deep copy of f sharing no nodes with the original.
func Clone(f Formula) Formula {
	switch x := f.(type) {
	case Atom:
		return Atom{Letter: x.Letter}
	case Negation:
		return Negation{Operand: Clone(x.Operand)}
	case Implication:
		return Implication{Antecedent: Clone(x.Antecedent), Consequent: Clone(x.Consequent)}
	default:
		return nil
	}
}

// Substitute returns a new formula in which every occurrence of the atom
// with the given letter is replaced by a copy of replacement. All
// occurrences are replaced uniformly; f itself is never modified. A letter
// that does not occur in f yields a copy equal to f.
func Substitute(f Formula, letter byte, replacement Formula) Formula {
	switch x := f.(type) {
	case Atom:
		if x.Letter == letter {
			return Clone(replacement)
		}
		return x
	case Negation:
		return Negation{Operand: Substitute(x.Operand, letter, replacement)}
	case Implication:
		return Implication{
			Antecedent: Substitute(x.Antecedent, letter, replacement),
			Consequent: Substitute(x.Consequent, letter, replacement),
		}
	default:
		return nil
	}
}

package wff

// Formula represents a well-formed formula in prefix notation.
type Formula interface {
	isFormula()
	// String returns the compact prefix form, e.g. "cPcQP".
	String() string
	// Pretty returns an infix rendering for human output, e.g. "(P → (Q → P))".
	Pretty() string
}

// Atom represents a propositional variable, a single letter 'A'..'Z'.
type Atom struct {
	Letter byte
}

func (Atom) isFormula() {}
func (f Atom) String() string {
	return string(f.Letter)
}
func (f Atom) Pretty() string {
	return string(f.Letter)
}

// Negation represents the negation of a formula, written n<operand>.
type Negation struct {
	Operand Formula
}

func (Negation) isFormula() {}
func (f Negation) String() string {
	return "n" + f.Operand.String()
}
func (f Negation) Pretty() string {
	return "¬" + f.Operand.Pretty()
}

// Implication represents an implication, written c<antecedent><consequent>.
type Implication struct {
	Antecedent Formula
	Consequent Formula
}

func (Implication) isFormula() {}
func (f Implication) String() string {
	return "c" + f.Antecedent.String() + f.Consequent.String()
}
func (f Implication) Pretty() string {
	return "(" + f.Antecedent.Pretty() + " → " + f.Consequent.Pretty() + ")"
}

// Helper functions to construct formulas

// Var creates an atomic formula for the given letter.
func Var(letter byte) Formula {
	return Atom{Letter: letter}
}

// Not creates the negation of f.
func Not(f Formula) Formula {
	return Negation{Operand: f}
}

// Implies creates the implication antecedent -> consequent.
func Implies(antecedent, consequent Formula) Formula {
	return Implication{Antecedent: antecedent, Consequent: consequent}
}

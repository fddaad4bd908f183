package proof

import "github.com/prooflabs/pcheck/internal/wff"

// The three axiom schemas of the Lukasiewicz-Church system P2. Every atom
// letter in a schema is a variable that may stand for any WFF.
//
//	AX1: P -> (Q -> P)
//	AX2: (S -> (P -> Q)) -> ((S -> P) -> (S -> Q))
//	AX3: (¬P -> ¬Q) -> (Q -> P)
var (
	Axiom1 = wff.MustParse("cPcQP")
	Axiom2 = wff.MustParse("ccScPQccSPcSQ")
	Axiom3 = wff.MustParse("ccnPnQcQP")
)

// Axiom pairs a schema with the justification keyword that cites it.
type Axiom struct {
	Name   string
	Schema wff.Formula
}

// Axioms returns the schemas in citation order.
func Axioms() []Axiom {
	return []Axiom{
		{Name: "AX1", Schema: Axiom1},
		{Name: "AX2", Schema: Axiom2},
		{Name: "AX3", Schema: Axiom3},
	}
}

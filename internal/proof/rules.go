package proof

import (
	"strings"

	"github.com/prooflabs/pcheck/internal/wff"
)

// modusPonens reports whether cur follows by modus ponens from the cited
// lines i and j. The citation order is free: either line may be the
// implication, the other must be its antecedent, and cur must equal the
// consequent. Citations outside the table fail closed.
func (r *run) modusPonens(cur wff.Formula, lineNo, i, j int) bool {
	limit := r.citationLimit(lineNo)
	if i < 1 || j < 1 || i > limit || j > limit {
		return false
	}
	ai := r.table.Formula(i)
	aj := r.table.Formula(j)
	if impl, ok := aj.(wff.Implication); ok && wff.Equal(ai, impl.Antecedent) && wff.Equal(cur, impl.Consequent) {
		return true
	}
	if impl, ok := ai.(wff.Implication); ok && wff.Equal(aj, impl.Antecedent) && wff.Equal(cur, impl.Consequent) {
		return true
	}
	return false
}

// substitution reports whether cur is obtainable from some line of the
// table by uniform substitution. args is the justification text after the
// keyword: the first uppercase letter in it names the variable, '=' ends
// the left-hand side, and the trimmed remainder must be a complete WFF.
// No particular source line is cited, so every line is tried.
func (r *run) substitution(cur wff.Formula, lineNo int, args string) bool {
	var variable byte
	for i := 0; i < len(args); i++ {
		if args[i] >= 'A' && args[i] <= 'Z' {
			variable = args[i]
			break
		}
	}
	if variable == 0 {
		return false
	}
	eq := strings.IndexByte(args, '=')
	if eq < 0 {
		return false
	}
	rhs := strings.TrimSpace(args[eq+1:])
	if rhs == "" {
		return false
	}
	replacement, err := wff.Parse(rhs)
	if err != nil {
		return false
	}

	limit := r.citationLimit(lineNo)
	for k := 1; k <= limit; k++ {
		src := r.table.Formula(k)
		if wff.Equal(wff.Substitute(src, variable, replacement), cur) {
			return true
		}
	}
	return false
}

// citationLimit returns the highest line number a justification on lineNo
// may cite. The whole table is in reach unless strict citations are on.
func (r *run) citationLimit(lineNo int) int {
	if r.config.StrictCitations {
		return lineNo - 1
	}
	return r.table.Len()
}

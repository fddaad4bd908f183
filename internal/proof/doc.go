// Package proof checks linear Hilbert-style proofs in the
// Lukasiewicz-Church (P2) axiom system.
//
// A proof is plain text, one step per line:
//
//	<line-number> <formula> <justification>
//
// Line numbers run 1, 2, 3, ... with no gaps. Formulas use the prefix
// notation of package wff. The justification is one of Premise, AX1, AX2,
// AX3, MP i j, or Substitution X = <wff>, matched case-insensitively.
// Blank lines and lines starting with '#' are comments.
//
// Checking is purely syntactic. Each line is judged on its own: an axiom
// citation must pattern-match the schema, MP must point at an implication
// and its antecedent already in the table, and Substitution must obtain
// the line from some table entry by uniform substitution. The checker
// never derives anything itself and an invalid line does not stop the
// remaining lines from being checked.
package proof

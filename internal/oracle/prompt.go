package oracle

import (
	"fmt"
	"strings"
)

// promptTemplate instructs the model to emit proofs in exactly the line
// format the checker reads. The two worked examples anchor the output
// format; both verify cleanly.
const promptTemplate = `You are a professional proof solver for propositional logic using only the Lukasiewicz-Church (P2) axiom system.
Use Polish prefix notation with:
  c  = implication
  n  = negation
Propositional metavariables: A, B, C (use uppercase letters for atoms).

Axiom Schemas (compact, no arrows):
AX1: cAcBA
AX2: ccAcBCccABcAC
AX3: ccnBnAcAB

Rule of Inference:
  MP i j    (Modus Ponens: from lines i and j where line j is c<phi><psi>, infer psi)

Format for output (each line exactly):
  <line-number> <formula> <justification>
Justifications allowed: Premise, AX1, AX2, AX3, MP i j

Example 1:
Premises: cPQ, P
Goal: Q
Proof:
1 cPQ Premise
2 P Premise
3 Q MP 2 1

Example 2:
Premises: P
Goal: cQP
Proof:
1 P Premise
2 cPcQP AX1
3 cQP MP 1 2

Now, given the premises and goal below, generate a numbered proof using only the above axioms and MP. Do not use any parentheses.
Premises: %s
Goal: %s
Proof:
`

// BuildPrompt renders the initial prompt for proving goal from premises.
func BuildPrompt(premises []string, goal string) string {
	return fmt.Sprintf(promptTemplate, strings.Join(premises, ", "), goal)
}

// BuildRetryPrompt extends the initial prompt with the rejected candidate
// and the checker's feedback, asking for a corrected proof.
func BuildRetryPrompt(premises []string, goal, candidate, feedback string) string {
	var sb strings.Builder
	sb.WriteString(BuildPrompt(premises, goal))
	sb.WriteString("\nYour previous attempt was rejected by the proof checker.\n")
	sb.WriteString("\nPrevious attempt:\n")
	sb.WriteString(candidate)
	if !strings.HasSuffix(candidate, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("\nChecker output:\n")
	sb.WriteString(feedback)
	if !strings.HasSuffix(feedback, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("\nGenerate a corrected proof in the same format.\nProof:\n")
	return sb.String()
}

// Package wff models well-formed formulas of classical propositional
// logic in the implicational fragment used by the Lukasiewicz-Church
// (P2) axiom system.
//
// Formulas are written in Polish prefix notation over a three-symbol
// alphabet plus atoms:
//
//	WFF  := ATOM | 'n' WFF | 'c' WFF WFF
//	ATOM := 'A'..'Z'
//
// so cPcQP reads as P -> (Q -> P) and nA as not A. The package provides
// the formula tree, a deterministic single-pass parser, structural
// operations (equality, cloning, uniform substitution), and the schema
// pattern matcher used to recognize axiom instances.
//
// Formula values are immutable once built. Nothing in this package
// mutates a tree after construction, so formulas may be shared freely
// across goroutines.
package wff

// Package ffield computes addition and multiplication tables for the
// finite field F_{p^a}, used by the Reed-Solomon family of constructions
// and by Porat-Rothschild to evaluate codewords over a field of arbitrary
// (small) prime-power size.
//
// Elements of F_{p^a} are represented as integers 0..q-1, decoded as
// base-p digit vectors of length a — the coefficients of a polynomial of
// degree < a over F_p. Field multiplication reduces modulo a fixed
// irreducible polynomial of degree a found by brute-force trial division;
// any correct reduction polynomial yields a field isomorphic to any
// other, so the particular choice only affects which integer labels which
// element, never the resulting CFF's combinatorial properties.
package ffield

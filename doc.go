// Package arith implements a small calculator for arithmetic expressions.
//
// Expressions are made of decimal numbers, parentheses, the binary operators
// + - * / ^, and unary + and -. A term followed directly by a number or a
// parenthesized expression is multiplied by it, so "2(3)" is "2*3" and
// "2(3)^2" is "2*(3^2)". Every binary operator groups from the left,
// including exponentiation: "2^3^2" is "(2^3)^2". Unary operators apply to
// the term directly after them, so "-2^2" is "(-2)^2".
//
// Expressions are evaluated in double precision by Expr.Eval and EvalString,
// or to arbitrary precision with a Context. Division by anything closer to
// zero than DivisionEpsilon is an error rather than an infinity.
package arith

// Package calc implements the expression evaluator behind the abacus keypad.
//
// The evaluator works on a Buffer, the text the user is composing. Evaluation
// runs in four steps:
//
//  1. Preprocess rewrites display glyphs (×, ÷, −) to ASCII operators, ^ to **
//     and postfix % to /100.
//  2. Validate checks the rewritten text against a fixed character whitelist.
//  3. Parse builds an expression tree with a recursive-descent grammar
//     supporting + - * / ** ^ % ( ), unary minus and the usual precedence.
//  4. The tree is computed in float64 and the result is formatted for display
//     (12 significant digits, trailing zeros stripped).
//
// Any failure in steps 2-4 turns the buffer into the literal "Error". The
// returned error only tells the caller why, for logging; it never needs to be
// handled to keep the calculator usable.
package calc

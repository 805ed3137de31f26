// Package expr evaluates the address expressions accepted by debugger shell
// commands.
//
// # Syntax
//
// An expression is a sequence of terms joined by '+' and '-'. Terms are made
// of ASCII letters, digits and the characters '_', '$', '.' and ':'. Every
// other character ends the current term; '+' and '-' additionally select the
// sign of the next term, anything else (for example a space) leaves the sign
// as it was.
//
//	10            decimal literal
//	0x10          hexadecimal literal
//	main          symbol looked up through a Resolver
//	main+0x10-2   left to right, no precedence, no parentheses
//
// The sum is reduced to 16 bits, so "0-1" yields 0xffff.
//
// # Basic Usage
//
//	addr, err := expr.Evaluate("reset_vector+4", table)
//	if err != nil {
//	    // err matches expr.ErrUnknownToken for unresolved names
//	}
//
// Evaluation keeps all of its state in the call, so a Resolver may itself
// evaluate expressions.
package expr

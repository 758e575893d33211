// Package assert provides debug assertions for internal invariants.
//
// Assertions are compiled in only with the debug build tag:
//
//	go build -tags debug ./...
//
// In a debug build a failed assertion logs the message and call site, then
// panics with an *Error. Panicking is deliberate, a failed assertion is a
// programmer error and is never returned as an ordinary error value.
//
// Without the tag That and True have empty bodies and get inlined away, but
// Go still evaluates their arguments. Guard checks that are expensive or have
// side effects with the Enabled constant so the compiler drops them entirely:
//
//	if assert.Enabled {
//		assert.That(tree.isBalanced(), "tree out of balance")
//	}
package assert

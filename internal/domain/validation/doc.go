// Package validation holds the client-side rules of the inventory console: field predicates,
// the rule registry and message catalog, one validator per form, and the profit metrics shown
// while a product is being edited.
//
// Everything here is pure. Validators never short-circuit across fields, so a caller always
// receives every failing field at once, and running a validator twice on the same draft yields
// the same result.
package validation

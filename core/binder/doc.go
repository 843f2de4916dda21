// Package binder extracts and coerces request data into typed structs.
//
// Query parameter coercion is strict by design: booleans accept only "true"
// and "false", numbers parse locale-independently in base 10, arrays are
// comma-separated with per-element trimming, and a missing required parameter
// or a malformed value fails the bind with an error naming the field and the
// expected type. Optionality is declared with pointer fields, defaults with a
// `default:"..."` struct tag.
package binder

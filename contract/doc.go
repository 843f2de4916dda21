// Package contract exposes the sealed endpoint registry's type metadata to
// client-contract generators.
package contract

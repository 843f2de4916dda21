// Package pipeline assembles and runs the ordered, short-circuiting
// middleware chain executed before a business function.
//
// Steps are composed by capability, not by name: a handler declares what it
// needs (parsed query, parsed body, CORS headers, custom steps) and the
// assembler inserts the built-in steps in a fixed order: request attach,
// CORS, query extraction, body extraction, then custom steps in declaration
// order. A step that fails or marks the context finished stops everything
// after it, including the business function.
package pipeline

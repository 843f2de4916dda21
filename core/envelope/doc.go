// Package envelope defines the typed result container returned by business
// functions. An envelope carries either a body or an error message, plus a
// status code, a content type and a finished flag, and knows how to serialize
// itself to an http.ResponseWriter with the documented defaulting rules.
package envelope

// Package stylesheet is a lightweight stylesheet tree for build-time
// transforms. It splits CSS into rules, at-rules, declarations and comments
// while keeping every byte of whitespace, so that a tree whose declaration
// values or at-rule params were rewritten serializes to the original source
// with only those edits applied.
//
// It does not interpret selectors, values or at-rule preludes; the
// value grammar is handled by the value package.
package stylesheet

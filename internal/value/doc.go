// Package value parses the CSS value grammar: the text of a declaration value
// or of an at-rule's parameters. The result is a flat sequence of words,
// strings, separators, spaces, comments and (nested) function calls that can
// be edited in place and serialized back without losing a byte of the
// original formatting.
package value

// Package parser turns command text into commands.Command values.
//
// Parsing is pure: it never consults the model. Malformed input yields a
// *ParseError whose message is shown to the user, usually the offending
// command's usage. Whether an index is in range is only known when the
// command runs.
package parser

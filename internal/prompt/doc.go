// Package prompt reads free-form answers from a line-based console.
//
// This package is internal to roster. A [Reader] writes a label, reads one
// line and hands it back unchanged apart from the line terminator: no
// trimming, no validation and no type conversion. Empty answers are valid.
package prompt

// Package yay implements a strict, whitespace-sensitive, human-authored
// data-interchange format — YAML's readability without YAML's ambiguity.
//
// # Values
//
// A document is exactly one value: null, a bool, an arbitrary-precision
// integer, a float, a string, a byte string, an array, or an object.
// There is no date/timestamp type and no anchors/aliases.
//
//	null
//	true
//	42
//	1 000 000
//	3.14
//	infinity
//	nan
//	'a string'
//	<de ad be ef>
//
// # Numbers
//
// Integers may separate runs of digits with single spaces, by convention
// every three digits from the right (group sizes are not checked); this
// is purely cosmetic and has no effect on value. There
// is no hex, octal, or underscore-grouped integer syntax. Floats use a
// lowercase "e" for the exponent; an uppercase "E" is a syntax error.
//
//	1 234 567
//	-3.5e-10
//
// # Strings
//
// Double-quoted strings support C-style escapes plus a variable-length
// \u{...} Unicode escape. Single-quoted strings support no escapes at
// all except a doubled quote for a literal quote character.
//
//	"line one\nline two"
//	'it''s fine'
//
// Adjacent strings on the same property, joined only by a newline and
// deeper indentation, concatenate into one value.
//
// A backtick introduces a block string. `` ` `` followed directly by a
// newline starts a multi-line block whose content is everything more
// indented than the backtick's own line; `` ` `` followed by a space
// keeps the first line inline and only subsequent lines are block
// content.
//
// # Bytes
//
// Byte strings are written as lowercase hex between angle brackets,
// either inline (<de ad be ef>) or as a block introduced by a bare ">"
// the way a block string is introduced by a backtick.
//
// # Containers
//
// Arrays and objects each have an inline form using brackets/braces and
// commas, and a block form using leading dashes or "key:" lines and
// indentation. Inline punctuation is whitespace-pedantic: no space
// immediately inside a bracket or brace, none immediately before a
// comma or colon.
//
//	[1, 2, 3]
//	{a: 1, b: 2}
//
//	- 1
//	- 2
//
//	a: 1
//	b: 2
//
// Object keys must be unique; a repeated key is a syntax error, unlike
// some relatives of this format that silently merge or overwrite.
//
// # Disclaimer
//
// This package has no anchors, aliases, tags, multi-document streams, or
// any other part of YAML beyond surface resemblance. It exists to be
// strict and unambiguous, not compatible.
package yay

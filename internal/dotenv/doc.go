// Package dotenv implements the core .env text format: a character
// tokenizer and a single-pass state machine parser that turns raw file
// contents into a key/value Mapping.
//
// The format accepted is newline-delimited KEY=VALUE pairs. Values may be
// unquoted (terminated by whitespace, a comment marker, or the end of the
// line) or fully single- or double-quoted (terminated only by the matching
// quote, with every other character taken literally, including newlines).
// Comments start at an unquoted '#' and run to the end of the line. Keys
// are always unquoted.
//
// Parsing is fail-fast: the first malformed construct aborts the whole
// parse and is reported with its line (and usually column) position. The
// caller gets either a complete Mapping or exactly one error; there is no
// partial result.
//
// Known limitations, kept deliberately:
//
//   - An explicitly empty quoted value (KEY='' or KEY="") is rejected with
//     a missing-value error rather than producing an empty string.
//   - Carriage returns are not special-cased; a \r\n line ending leaves a
//     literal \r in the parsed text. Inputs should use \n line endings.
//   - No shell-style expansion ($VAR), export statements, or type coercion.
package dotenv

// Package helprender writes a [help.File] as terminal help text.
//
// Output is styled when the destination is a terminal and falls back to
// plain text otherwise, so help remains readable when piped or
// redirected.
package helprender

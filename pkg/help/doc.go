// Package help defines the in-memory model for command-line help text.
//
// A [File] is the mutable target that help loaders merge YAML-authored
// content into, and that the renderer turns into the text shown to the
// user. It can also populate itself directly from a [cobra.Command],
// which is the legacy behavior used when no versioned help document
// applies.
package help

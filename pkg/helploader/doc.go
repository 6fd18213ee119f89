// Package helploader merges YAML-authored help documents into
// [help.File] objects.
//
// Help content is versioned: each loader implementation declares the
// document version it understands, and a loader only takes effect when
// the located document's version matches its own. Version 0 is the
// legacy behavior, populating help directly from the command tree;
// version 1 reads `*help.yaml` documents placed beside command modules.
package helploader

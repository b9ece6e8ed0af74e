// Package laminar implements the configuration merge and evaluation core:
// tree paths and containers, the "@token" mini-language and its registry,
// the merge-tree builder and applicator, and the merge policy engine that
// arbitrates between competing operations.
//
// The stable external surface is Tokenize, CreateMergeTree, and
// ApplyMergeTree, plus direct structural access through MergeTree and
// PolicyRegistry. Built-in transforms and operations live in the sibling
// transforms package so this package stays free of any one source format's
// assumptions.
package laminar

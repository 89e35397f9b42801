// Package lang provides the built-in tree-sitter analyzers. Importing it
// adds a builder for each analyzer to the discovery table in the analyzers
// package; the analyzers themselves are instantiated and registered when
// Discover runs.
package lang

// Package ast holds the typed syntax tree produced by internal/parser and
// consumed by internal/javagen.
//
// The tree is small and strictly hierarchical, so nodes are plain structs
// linked by pointers. Statements implement the sealed Stmt interface;
// primaries implement the sealed Primary interface. Every node carries the
// source.Span it was parsed from.
package ast

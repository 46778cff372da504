// Package javagen turns a parsed Smergiel program into one Java compilation
// unit and checks that every referenced name was declared.
//
// Generation is a single walk over the tree. Each emitter returns the Java
// lines it produced; nesting adds one tab. While walking, the generator fills
// a symbols.Table: assignments, read targets, parameters and method headers
// declare keys, identifiers and calls record uses. The first declaration of
// a variable gets the "double" type, later assignments do not.
//
// Validation runs after the walk: a use with no matching declaration is an
// UnresolvedError, reported as
//
//	Line <line>:<col> - Identifier "<name>" is not declared
//
// where col is the 0-based character column of the use.
//
// Scopes are flat per method. A name assigned in the then-branch of an if is
// already declared when the else-branch is emitted, so the else-branch
// assigns it without a type.
package javagen

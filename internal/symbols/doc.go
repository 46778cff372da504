// Package symbols implements the flat, string-keyed symbol table used while
// generating Java.
//
// A variable key is "<scope>:<name>" where scope is "main" for top-level
// statements or the enclosing method's name. A method key is
// "<name>/<arity>" and is not scoped: methods are global. Parameters are
// declared under the method's scope like any other local.
//
// The table keeps two maps. Declarations record the first site where a key
// was introduced and never change afterwards. Uses record the most recent
// site where a key was referenced, plus the order in which keys were first
// referenced so that validation reports in a stable order.
package symbols

package javagen

import (
	"fmt"

	"smergiel/internal/ast"
	"smergiel/internal/diag"
	"smergiel/internal/symbols"
)

// javaReserved are the Java keywords and literals. None of them can name a
// variable or a method in the generated class.
var javaReserved = map[string]struct{}{
	"abstract": {}, "assert": {}, "boolean": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "class": {}, "const": {},
	"continue": {}, "default": {}, "do": {}, "double": {}, "else": {},
	"enum": {}, "extends": {}, "final": {}, "finally": {}, "float": {},
	"for": {}, "goto": {}, "if": {}, "implements": {}, "import": {},
	"instanceof": {}, "int": {}, "interface": {}, "long": {}, "native": {},
	"new": {}, "package": {}, "private": {}, "protected": {}, "public": {},
	"return": {}, "short": {}, "static": {}, "strictfp": {}, "super": {},
	"switch": {}, "synchronized": {}, "this": {}, "throw": {}, "throws": {},
	"transient": {}, "try": {}, "void": {}, "volatile": {}, "while": {},
	"true": {}, "false": {}, "null": {}, "_": {},
}

// checkVarName reports a variable or parameter name the generated code
// cannot declare. "System" would obscure java.lang.System in every
// println of the scope, "args" is already the entry point's parameter.
func (g *Generator) checkVarName(scope symbols.Scope, id ast.Ident) bool {
	var msg string
	switch {
	case isJavaReserved(id.Name):
		msg = fmt.Sprintf("variable %q is a reserved word in Java", id.Name)
	case id.Name == "System":
		msg = fmt.Sprintf("variable %q would hide java.lang.System", id.Name)
	case scope.IsMain() && id.Name == "args":
		msg = fmt.Sprintf("variable %q clashes with the parameter of main", id.Name)
	default:
		return true
	}
	g.fail(diag.SemaReservedName, id.Span, msg, nil)
	return false
}

// checkMethodName reports a method name the generated class cannot use.
// A method "main" would also share variable keys with top-level code.
func (g *Generator) checkMethodName(id ast.Ident) bool {
	var msg string
	switch {
	case isJavaReserved(id.Name):
		msg = fmt.Sprintf("method %q is a reserved word in Java", id.Name)
	case id.Name == "main":
		msg = fmt.Sprintf("method %q clashes with the entry point", id.Name)
	default:
		return true
	}
	g.fail(diag.SemaReservedName, id.Span, msg, nil)
	return false
}

func isJavaReserved(name string) bool {
	_, ok := javaReserved[name]
	return ok
}

package javagen

import (
	"smergiel/internal/ast"
	"smergiel/internal/symbols"
)

// emitProgram lays out the compilation unit:
//
//	import java.util.Scanner;
//
//	public class <Class> {
//		private static Scanner read = new Scanner(System.in);
//
//		public static void main(String[] args) {
//			<top-level statements>
//		}
//
//		<methods>
//	}
//
// Top-level statements are walked first, then the methods in source order.
// Validation happens after the whole walk, so a call may precede the method
// it refers to.
func (g *Generator) emitProgram(prog *ast.Program) string {
	main := symbols.MainScope()
	var body []string
	if prog.Body != nil {
		body = g.emitBlock(main, prog.Body)
	}

	methods := make([][]string, 0, len(prog.Methods))
	for _, m := range prog.Methods {
		if lines := g.emitMethod(m); lines != nil {
			methods = append(methods, lines)
		}
	}

	lines := []string{
		"import java.util.Scanner;",
		"",
		"public class " + g.opts.className() + " {",
		"\tprivate static Scanner read = new Scanner(System.in);",
		"",
		"\tpublic static void main(String[] args) {",
	}
	lines = append(lines, indent(indent(body))...)
	lines = append(lines, "\t}")
	for _, m := range methods {
		lines = append(lines, "")
		lines = append(lines, indent(m)...)
	}
	lines = append(lines, "}")
	return joinLines(lines)
}

package symbols

import (
	"strconv"
	"strings"
)

// Scope qualifies variable names. It is a value: emission code passes it
// down explicitly instead of keeping a shared "current scope".
//
// The entry point is told apart by kind, not by name: MethodScope("main")
// is an ordinary method scope. Such a method would share variable keys with
// the top-level code, so the generator refuses to declare it.
type Scope struct {
	name  string
	entry bool
}

const mainScopeName = "main"

// MainScope is the scope of top-level statements.
func MainScope() Scope { return Scope{name: mainScopeName, entry: true} }

// MethodScope is the scope of the parameters and locals of method name.
func MethodScope(name string) Scope { return Scope{name: name} }

// Name returns the qualifier, e.g. "main" or "f".
func (s Scope) Name() string { return s.name }

// IsMain reports whether s is the entry-point scope.
func (s Scope) IsMain() bool { return s.entry }

// Var returns the key of variable name inside s.
func (s Scope) Var(name string) Key {
	return Key(s.name + ":" + name)
}

func (s Scope) String() string { return s.name }

// Key identifies a variable or a method in the table.
type Key string

// MethodKey returns the global signature key "<name>/<arity>".
func MethodKey(name string, arity int) Key {
	return Key(name + "/" + strconv.Itoa(arity))
}

// DisplayName is the user-facing part of the key: everything after the
// last ':'. Method keys have no ':' and are shown whole ("f/2").
func (k Key) DisplayName() string {
	s := string(k)
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// IsMethod reports whether k is a signature key.
func (k Key) IsMethod() bool {
	return !strings.Contains(string(k), ":") && strings.Contains(string(k), "/")
}

// Qualifier returns the scope part of a variable key, "" for method keys.
func (k Key) Qualifier() string {
	s := string(k)
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		return s[:i]
	}
	return ""
}

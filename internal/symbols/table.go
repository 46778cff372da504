package symbols

import (
	"sort"

	"smergiel/internal/source"
)

// SiteKind tells what kind of construct produced a Site.
type SiteKind uint8

const (
	SiteAssign SiteKind = iota // x = ...
	SiteRead                   // read x
	SiteParam                  // f(x)
	SiteMethod                 // f(x) { ... }
	SiteIdent                  // x used in an expression
	SiteCall                   // f(...) used in an expression
)

func (k SiteKind) String() string {
	switch k {
	case SiteAssign:
		return "assign"
	case SiteRead:
		return "read"
	case SiteParam:
		return "param"
	case SiteMethod:
		return "method"
	case SiteIdent:
		return "ident"
	case SiteCall:
		return "call"
	}
	return "unknown"
}

// Site is a position in the source together with what happened there.
type Site struct {
	Span source.Span
	Kind SiteKind
}

// Use is a referenced key and the latest site that referenced it.
type Use struct {
	Key  Key
	Site Site
}

// Decl is a declared key and the site that first declared it.
type Decl struct {
	Key  Key
	Site Site
}

// Table is created per compilation unit and is not safe for concurrent use.
type Table struct {
	decls    map[Key]Site
	declKeys []Key
	uses     map[Key]Site
	useKeys  []Key // порядок первых использований
}

func NewTable() *Table {
	return &Table{
		decls: make(map[Key]Site),
		uses:  make(map[Key]Site),
	}
}

// DeclareIfAbsent records site as the declaration of key unless key is
// already declared. It reports whether the insertion happened; the caller
// uses that to decide whether the Java statement needs a type.
func (t *Table) DeclareIfAbsent(key Key, site Site) bool {
	if _, ok := t.decls[key]; ok {
		return false
	}
	t.decls[key] = site
	t.declKeys = append(t.declKeys, key)
	return true
}

// RecordUse stores site as the latest use of key.
func (t *Table) RecordUse(key Key, site Site) {
	if _, ok := t.uses[key]; !ok {
		t.useKeys = append(t.useKeys, key)
	}
	t.uses[key] = site
}

func (t *Table) IsDeclared(key Key) bool {
	_, ok := t.decls[key]
	return ok
}

// Declaration returns the first declaration site of key.
func (t *Table) Declaration(key Key) (Site, bool) {
	s, ok := t.decls[key]
	return s, ok
}

// LatestUse returns the most recent use site of key.
func (t *Table) LatestUse(key Key) (Site, bool) {
	s, ok := t.uses[key]
	return s, ok
}

// Declarations lists declared keys in declaration order.
func (t *Table) Declarations() []Decl {
	out := make([]Decl, 0, len(t.declKeys))
	for _, k := range t.declKeys {
		out = append(out, Decl{Key: k, Site: t.decls[k]})
	}
	return out
}

// Uses lists used keys in first-use order, each with its latest site.
func (t *Table) Uses() []Use {
	out := make([]Use, 0, len(t.useKeys))
	for _, k := range t.useKeys {
		out = append(out, Use{Key: k, Site: t.uses[k]})
	}
	return out
}

// Unresolved lists the used keys that have no declaration, in first-use order.
func (t *Table) Unresolved() []Use {
	var out []Use
	for _, k := range t.useKeys {
		if _, ok := t.decls[k]; ok {
			continue
		}
		out = append(out, Use{Key: k, Site: t.uses[k]})
	}
	return out
}

// Len returns the number of declared and used keys.
func (t *Table) Len() (decls, uses int) {
	return len(t.decls), len(t.uses)
}

// SortedKeys returns every key known to the table, sorted, for dumps.
func (t *Table) SortedKeys() []Key {
	seen := make(map[Key]struct{}, len(t.decls)+len(t.uses))
	keys := make([]Key, 0, len(t.decls)+len(t.uses))
	for _, group := range [][]Key{t.declKeys, t.useKeys} {
		for _, k := range group {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

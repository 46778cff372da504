package symbols

import (
	"testing"

	"smergiel/internal/source"
)

func site(start uint32, kind SiteKind) Site {
	return Site{Span: source.Span{Start: start, End: start + 1}, Kind: kind}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		key       Key
		want      string
		display   string
		qualifier string
		method    bool
	}{
		{MainScope().Var("x"), "main:x", "x", "main", false},
		{MethodScope("f").Var("a"), "f:a", "a", "f", false},
		{MethodKey("f", 2), "f/2", "f/2", "", true},
		{MethodKey("g", 0), "g/0", "g/0", "", true},
	}
	for _, tt := range tests {
		if string(tt.key) != tt.want {
			t.Errorf("key = %q, want %q", tt.key, tt.want)
		}
		if got := tt.key.DisplayName(); got != tt.display {
			t.Errorf("%q.DisplayName() = %q, want %q", tt.key, got, tt.display)
		}
		if got := tt.key.Qualifier(); got != tt.qualifier {
			t.Errorf("%q.Qualifier() = %q, want %q", tt.key, got, tt.qualifier)
		}
		if tt.key.IsMethod() != tt.method {
			t.Errorf("%q.IsMethod() = %v", tt.key, !tt.method)
		}
	}
	if !MainScope().IsMain() || MethodScope("f").IsMain() {
		t.Errorf("IsMain misreports")
	}
	if MainScope().Var("x") == MethodScope("f").Var("x") {
		t.Errorf("different scopes must give different keys")
	}
}

func TestMethodNamedMainIsNotEntryScope(t *testing.T) {
	s := MethodScope("main")
	if s.IsMain() {
		t.Fatalf("MethodScope(%q).IsMain() = true", "main")
	}
	if s == MainScope() {
		t.Fatalf("MethodScope(%q) equals MainScope()", "main")
	}
}

func TestDeclareIfAbsentIsIdempotent(t *testing.T) {
	tbl := NewTable()
	k := MainScope().Var("x")
	if !tbl.DeclareIfAbsent(k, site(0, SiteAssign)) {
		t.Fatalf("first declaration must insert")
	}
	if tbl.DeclareIfAbsent(k, site(10, SiteRead)) {
		t.Fatalf("second declaration must not insert")
	}
	got, ok := tbl.Declaration(k)
	if !ok || got.Span.Start != 0 || got.Kind != SiteAssign {
		t.Fatalf("first declaration must win, got %+v", got)
	}
	if decls, _ := tbl.Len(); decls != 1 {
		t.Fatalf("expected one declaration, got %d", decls)
	}
}

func TestRecordUseKeepsLatestSiteAndFirstOrder(t *testing.T) {
	tbl := NewTable()
	x, y := MainScope().Var("x"), MainScope().Var("y")
	tbl.RecordUse(y, site(1, SiteIdent))
	tbl.RecordUse(x, site(2, SiteIdent))
	tbl.RecordUse(y, site(7, SiteIdent))

	uses := tbl.Uses()
	if len(uses) != 2 || uses[0].Key != y || uses[1].Key != x {
		t.Fatalf("uses out of first-use order: %+v", uses)
	}
	if uses[0].Site.Span.Start != 7 {
		t.Fatalf("latest site must overwrite, got %+v", uses[0].Site)
	}
	if s, ok := tbl.LatestUse(y); !ok || s.Span.Start != 7 {
		t.Fatalf("LatestUse = %+v %v", s, ok)
	}
}

func TestUnresolved(t *testing.T) {
	tbl := NewTable()
	f := MethodKey("f", 1)
	tbl.DeclareIfAbsent(f, site(0, SiteMethod))
	tbl.DeclareIfAbsent(MethodScope("f").Var("a"), site(2, SiteParam))
	tbl.RecordUse(MethodScope("f").Var("a"), site(5, SiteIdent))
	tbl.RecordUse(MainScope().Var("a"), site(9, SiteIdent))
	tbl.RecordUse(MethodKey("f", 2), site(11, SiteCall))
	tbl.RecordUse(f, site(13, SiteCall))

	unresolved := tbl.Unresolved()
	if len(unresolved) != 2 {
		t.Fatalf("expected 2 unresolved, got %+v", unresolved)
	}
	if unresolved[0].Key != "main:a" || unresolved[1].Key != "f/2" {
		t.Fatalf("unexpected unresolved order: %+v", unresolved)
	}
	if !tbl.IsDeclared(f) || tbl.IsDeclared(MethodKey("f", 2)) {
		t.Fatalf("arity must be part of the signature")
	}

	keys := tbl.SortedKeys()
	want := []Key{"f/1", "f/2", "f:a", "main:a"}
	if len(keys) != len(want) {
		t.Fatalf("SortedKeys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("SortedKeys = %v, want %v", keys, want)
		}
	}
	if tbl.Declarations()[1].Site.Kind.String() != "param" {
		t.Fatalf("declaration order lost")
	}
}

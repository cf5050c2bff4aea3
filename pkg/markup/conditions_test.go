package markup_test

import (
	"testing"

	"github.com/goliatone/go-markup/pkg/markup"
)

func TestConditions_FirstTruthyWins(t *testing.T) {
	got := markup.NewConditions().
		When(true, "a").
		When(true, "b").
		Default("c").
		HTML()
	if got != "a" {
		t.Fatalf("resolved %q, want %q", got, "a")
	}
}

func TestConditions_SkipsFalsyBranches(t *testing.T) {
	got := markup.NewConditions().
		When(false, "a").
		When(true, "b").
		Default("c").
		HTML()
	if got != "b" {
		t.Fatalf("resolved %q, want %q", got, "b")
	}
}

func TestConditions_UsesDefaultWhenNoMatch(t *testing.T) {
	got := markup.NewConditions().
		When(false, "a").
		When(false, "b").
		Default("default").
		HTML()
	if got != "default" {
		t.Fatalf("resolved %q, want %q", got, "default")
	}
}

func TestConditions_EmptyWhenNoMatchAndNoDefault(t *testing.T) {
	if got := markup.NewConditions().When(false, "a").HTML(); got != "" {
		t.Fatalf("resolved %q, want empty", got)
	}
	if got := markup.NewConditions().HTML(); got != "" {
		t.Fatalf("empty builder resolved %q, want empty", got)
	}
}

func TestConditions_ResolveReportsAbsence(t *testing.T) {
	if _, ok := markup.NewConditions().When(false, "a").Resolve(); ok {
		t.Fatal("expected no resolution without match or default")
	}

	value, ok := markup.NewConditions().When(false, "a").Default(nil).Resolve()
	if !ok {
		t.Fatal("explicit nil default should still resolve")
	}
	if value != nil {
		t.Fatalf("resolved %v, want nil", value)
	}
}

func TestConditions_LastDefaultWins(t *testing.T) {
	got := markup.NewConditions().
		When(false, "a").
		Default("first").
		Default("second").
		HTML()
	if got != "second" {
		t.Fatalf("resolved %q, want %q", got, "second")
	}
}

func TestConditions_ThunkInvokedOnlyWhenSelected(t *testing.T) {
	calls := 0
	factory := markup.Thunk(func() any {
		calls++
		return "lazy"
	})

	markup.NewConditions().When(true, factory).HTML()
	if calls != 1 {
		t.Fatalf("selected thunk invoked %d times, want 1", calls)
	}

	calls = 0
	markup.NewConditions().When(false, factory).Default("other").HTML()
	if calls != 0 {
		t.Fatalf("skipped thunk invoked %d times, want 0", calls)
	}
}

func TestConditions_LazyDefault(t *testing.T) {
	calls := 0
	factory := func() any {
		calls++
		return "default"
	}

	got := markup.NewConditions().When(false, "a").Default(factory).HTML()
	if got != "default" {
		t.Fatalf("resolved %q, want %q", got, "default")
	}
	if calls != 1 {
		t.Fatalf("selected default thunk invoked %d times, want 1", calls)
	}

	calls = 0
	markup.NewConditions().When(true, "a").Default(factory).HTML()
	if calls != 0 {
		t.Fatalf("unselected default thunk invoked %d times, want 0", calls)
	}
}

func TestConditions_EarlierSkippedThunksNeverRun(t *testing.T) {
	skipped := 0
	got := markup.NewConditions().
		When(false, markup.Thunk(func() any { skipped++; return "a" })).
		When(true, "b").
		When(true, markup.Thunk(func() any { skipped++; return "c" })).
		HTML()
	if got != "b" {
		t.Fatalf("resolved %q, want %q", got, "b")
	}
	if skipped != 0 {
		t.Fatalf("unselected thunks invoked %d times, want 0", skipped)
	}
}

func TestConditions_EscapesPlainBranchValues(t *testing.T) {
	got := markup.NewConditions().When(true, "<b>bold</b>").HTML()
	if got != "&lt;b&gt;bold&lt;/b&gt;" {
		t.Fatalf("resolved %q", got)
	}

	got = markup.NewConditions().When(false, "ok").Default("<xss>").HTML()
	if got != "&lt;xss&gt;" {
		t.Fatalf("resolved default %q", got)
	}
}

func TestConditions_PassesThroughTrustedValues(t *testing.T) {
	got := markup.NewConditions().When(true, markup.Safe("<b>safe</b>")).HTML()
	if got != "<b>safe</b>" {
		t.Fatalf("resolved %q", got)
	}
}

func TestConditions_BranchValueMayBeRenderer(t *testing.T) {
	inner := markup.NewConditions().When(true, markup.Safe("<i>nested</i>"))
	got := markup.NewConditions().When(true, inner).HTML()
	if got != "<i>nested</i>" {
		t.Fatalf("resolved %q", got)
	}
}

func TestConditions_PanicInSelectedThunkPropagates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected the selected thunk's panic to propagate")
		}
	}()

	markup.NewConditions().
		When(true, markup.Thunk(func() any { panic("branch blew up") })).
		HTML()
}

func TestConditions_PanicInUnselectedThunkNeverFires(t *testing.T) {
	got := markup.NewConditions().
		When(false, markup.Thunk(func() any { panic("unreachable") })).
		When(true, "b").
		Default(markup.Thunk(func() any { panic("unreachable") })).
		HTML()
	if got != "b" {
		t.Fatalf("resolved %q, want %q", got, "b")
	}
}

func TestConditions_NilThunkResolvesEmpty(t *testing.T) {
	value, ok := markup.NewConditions().
		When(true, markup.Thunk(nil)).
		Resolve()
	if !ok {
		t.Fatal("nil thunk branch should still resolve")
	}
	if value != nil {
		t.Fatalf("resolved %v, want nil", value)
	}

	var deferred func() any
	if got := markup.NewConditions().When(true, deferred).HTML(); got != "" {
		t.Fatalf("nil deferred payload rendered %q, want empty", got)
	}
}

func TestConditions_ResolutionIsIdempotent(t *testing.T) {
	calls := 0
	c := markup.NewConditions().
		When(false, "a").
		When(true, markup.Thunk(func() any { calls++; return "b" }))

	first := c.HTML()
	second := c.HTML()
	if first != second {
		t.Fatalf("re-resolution changed result: %q vs %q", first, second)
	}
	if calls != 2 {
		t.Fatalf("thunk invoked %d times across two resolutions, want 2", calls)
	}
}

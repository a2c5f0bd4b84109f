package observe

import "testing"

func TestListAddRemove(t *testing.T) {
	l := NewList[string](nil, "styleClasses")

	l.Add("primary")
	l.Add("rounded")
	l.Add("primary") // duplicate, no-op

	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}
	if !l.Contains("primary") || !l.Contains("rounded") {
		t.Error("expected both classes present")
	}

	l.Remove("primary")
	if l.Contains("primary") {
		t.Error("primary should be removed")
	}
	l.Remove("missing") // no-op
	if l.Len() != 1 {
		t.Errorf("Len = %d, want 1", l.Len())
	}
}

func TestListInvalidation(t *testing.T) {
	l := NewList[string](nil, "stylesheets")

	var calls int
	il := OnInvalidated(func(Observable) { calls++ })
	l.AddInvalidationListener(il)

	l.Add("base.css")     // fires
	l.Add("base.css")     // duplicate, silent
	l.Remove("base.css")  // fires
	l.Remove("base.css")  // absent, silent
	l.Clear()             // already empty, silent
	l.SetAll("a.css", "b.css", "a.css") // fires once, dedupes

	if calls != 3 {
		t.Errorf("invalidation calls = %d, want 3", calls)
	}
	if l.Len() != 2 {
		t.Errorf("Len after SetAll = %d, want 2", l.Len())
	}

	l.RemoveInvalidationListener(il)
	l.Add("c.css")
	if calls != 3 {
		t.Errorf("invalidation calls after removal = %d, want 3", calls)
	}
}

func TestListItemsIsCopy(t *testing.T) {
	l := NewList[string](nil, "styleClasses")
	l.Add("a")

	items := l.Items()
	items[0] = "mutated"

	if got := l.Items()[0]; got != "a" {
		t.Errorf("list item = %q, want %q (Items must return a copy)", got, "a")
	}
}

func TestListAddNilListenerPanics(t *testing.T) {
	l := NewList[string](nil, "styleClasses")
	expectPanicCode(t, ErrCodeNilListener, func() {
		l.AddInvalidationListener(nil)
	})
}

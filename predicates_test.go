// predicates_test.go — verification of classification helpers.
package drifterror

import "testing"

func TestHasEventAndHasDomain_MatchAndMismatch(t *testing.T) {
	t.Parallel()

	e := New("IndexError", "lang.array")
	if !HasEvent(e, "IndexError") || HasEvent(e, "TypeError") {
		t.Fatalf("HasEvent misclassified %q", e.Event())
	}
	if !HasDomain(e, "lang.array") || HasDomain(e, "main") {
		t.Fatalf("HasDomain misclassified %q", e.Domain())
	}
}

func TestPredicates_NilMatchesNothing(t *testing.T) {
	t.Parallel()

	if HasEvent(nil, "IndexError") || HasDomain(nil, "main") || IsIndexError(nil) {
		t.Fatalf("nil must match no predicate")
	}
}

func TestIsIndexError_RequiresBothEventAndDomain(t *testing.T) {
	t.Parallel()

	if !IsIndexError(IndexError("Array", 0)) {
		t.Fatalf("canonical IndexError should match")
	}
	if IsIndexError(New("IndexError", "other")) {
		t.Fatalf("event alone is not enough")
	}
	if IsIndexError(New("TypeError", "lang.array")) {
		t.Fatalf("domain alone is not enough")
	}
}

func TestPredicates_FreedValueMatchesNothing(t *testing.T) {
	t.Parallel()

	e := IndexError("Array", 1)
	e.Free()
	if IsIndexError(e) {
		t.Fatalf("freed value must match no predicate")
	}
}

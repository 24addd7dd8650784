// array_test.go — verification of the bounds-check collaborator.
//
// These tests swap the package-level stderr/exit seams, so they must not run
// in parallel with each other.
package drifterror

import (
	"strings"
	"testing"
)

// captureBoundsFailure routes the failure path into buffers for one test.
func captureBoundsFailure(t *testing.T) (*strings.Builder, *int) {
	t.Helper()

	var out strings.Builder
	exitCode := -1

	prevStream, prevExit := boundsErrStream, boundsExit
	boundsErrStream = &out
	boundsExit = func(code int) { exitCode = code }
	t.Cleanup(func() {
		boundsErrStream = prevStream
		boundsExit = prevExit
	})
	return &out, &exitCode
}

func TestBoundsCheckFail_ReportsFullDiagnosticAndExitsNonZero(t *testing.T) {
	out, exitCode := captureBoundsFailure(t)

	BoundsCheckFail(5, 3)

	want := `{"event":"IndexError","domain":"lang.array","attrs":{"container":"Array","index":"5"},"frames":[]}` + "\n"
	if got := out.String(); got != want {
		t.Fatalf("bounds failure output mismatch.\nwant=%q\ngot =%q", want, got)
	}
	if *exitCode != 1 {
		t.Fatalf("bounds failure should request exit status 1; got %d", *exitCode)
	}
}

func TestCheckBounds_InRangeIsSilent(t *testing.T) {
	out, exitCode := captureBoundsFailure(t)

	CheckBounds(0, 3)
	CheckBounds(2, 3)

	if out.Len() != 0 {
		t.Fatalf("in-range check must write nothing; got %q", out.String())
	}
	if *exitCode != -1 {
		t.Fatalf("in-range check must not exit; got %d", *exitCode)
	}
}

func TestCheckBounds_NegativeIndexFails(t *testing.T) {
	out, exitCode := captureBoundsFailure(t)

	CheckBounds(-1, 3)

	if *exitCode != 1 {
		t.Fatalf("negative index should fail the check; exit=%d", *exitCode)
	}
	if !strings.Contains(out.String(), `"index":"-1"`) {
		t.Fatalf("report should carry the offending index: %q", out.String())
	}
}

func TestArraySize_RaisesCapacityToLength(t *testing.T) {
	t.Parallel()

	if got := ArraySize(8, 5, 2); got != 40 {
		t.Fatalf("capacity below length should size by length; got %d", got)
	}
	if got := ArraySize(8, 2, 5); got != 40 {
		t.Fatalf("capacity above length should size by capacity; got %d", got)
	}
	if got := ArraySize(8, 0, 0); got != 0 {
		t.Fatalf("empty array sizes to zero bytes; got %d", got)
	}
}

func TestArraySize_OverflowAborts(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("multiplication overflow must abort, not wrap")
		}
	}()
	const huge = int(^uint(0) >> 2)
	_ = ArraySize(huge, 0, huge)
}

func TestArraySize_NegativeInputAborts(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("negative sizing must abort")
		}
	}()
	_ = ArraySize(8, -1, 0)
}

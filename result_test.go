// result_test.go — verification of the value/error pair shape.
package drifterror

import "testing"

func TestResult_OkCarriesValueAndNoError(t *testing.T) {
	t.Parallel()

	r := Ok(42)
	if r.IsErr() {
		t.Fatalf("Ok result should not report an error")
	}
	if r.Val != 42 {
		t.Fatalf("Ok value mismatch: %d", r.Val)
	}
}

func TestResult_FailCarriesTheSameErrorValue(t *testing.T) {
	t.Parallel()

	e := New("E", "d")
	r := Fail(e)
	if !r.IsErr() {
		t.Fatalf("Fail result should report an error")
	}
	if r.Err != e {
		t.Fatalf("Fail must carry the identical value (ownership moves, never copies)")
	}
}

func TestResult_ZeroValueIsSuccess(t *testing.T) {
	t.Parallel()

	var r Result
	if r.IsErr() {
		t.Fatalf("zero Result should mean success with value 0")
	}
}

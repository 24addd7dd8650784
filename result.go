// result.go — the value/error pair returned by fallible generated functions.
//
// Propagation convention:
//   - The callee that fails constructs (or receives) an ErrorValue and returns
//     it via Fail; each intervening caller pushes at most one frame and
//     re-returns the SAME error value, transferring ownership outward.
//   - A caller observing a present Err must not inspect Val.
package drifterror

// Result is the pair shape generated functions return: a word-sized value and
// an optional error. An absent Err means success.
type Result struct {
	Val int64
	Err *ErrorValue
}

// Ok builds a successful Result carrying v.
func Ok(v int64) Result {
	return Result{Val: v}
}

// Fail builds a failed Result carrying e. Val is zero and must not be read.
func Fail(e *ErrorValue) Result {
	return Result{Err: e}
}

// IsErr reports whether the Result carries an error.
func (r Result) IsErr() bool {
	return r.Err != nil
}

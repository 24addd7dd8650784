// array.go — the array/bounds-check collaborator.
//
// Scope:
//   - Overflow-checked byte sizing for generated array allocations.
//   - The bounds-violation path: report a fully formed IndexError to the
//     process error stream and terminate. An out-of-range index is a hard
//     invariant violation, not a recoverable condition; continuing would read
//     or write outside the allocated buffer.
//
// The stderr writer and exit function are package seams so tests can observe
// the failure path without killing the test process.
package drifterror

import (
	"io"
	"math"
	"os"
)

var (
	boundsErrStream io.Writer      = os.Stderr
	boundsExit      func(code int) = os.Exit
)

// ArraySize returns the byte size for an array allocation of capacity
// elements of elemSize bytes, raising capacity to length when smaller.
// Negative inputs or multiplication overflow abort the process: a sizing that
// cannot be represented has no safe degraded path.
func ArraySize(elemSize, length, capacity int) int {
	if elemSize < 0 || length < 0 || capacity < 0 {
		panic("drifterror: negative array sizing")
	}
	if capacity < length {
		capacity = length
	}
	if capacity != 0 && elemSize > math.MaxInt/capacity {
		panic("drifterror: array sizing overflow")
	}
	return capacity * elemSize
}

// CheckBounds verifies 0 <= index < length, terminating the process through
// BoundsCheckFail when the check fails. Generated indexing code calls this
// before every unproven access.
func CheckBounds(index, length int64) {
	if index < 0 || index >= length {
		BoundsCheckFail(index, length)
	}
}

// BoundsCheckFail reports an out-of-range index as a fully formed IndexError
// (domain "lang.array", attributes "container" and "index"), writes its
// diagnostic plus a trailing newline to the process error stream, releases
// the value, and terminates with exit status 1.
func BoundsCheckFail(index, length int64) {
	err := IndexError("Array", index)
	_, _ = io.WriteString(boundsErrStream, err.Diagnostic())
	_, _ = io.WriteString(boundsErrStream, "\n")
	err.Free()
	boundsExit(1)
}

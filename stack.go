// stack.go — frame-stack growth for the drift-error core.
//
// Design goals:
//   - Monotonic, append-only growth: one PushFrame call per unwinding caller,
//     frame 0 innermost, later indices outward.
//   - All-or-nothing publication: the frame is fully staged (every string
//     cloned, the capture list built) before a single append commits it, so a
//     failure mid-staging leaves the value unchanged and no partial frame is
//     ever observable.
//   - Total over absent values: PushFrame on nil is a no-op returning nil.
package drifterror

import "strings"

// Frame is one recorded call-stack location plus the variables visible there
// when the error passed through. Frames are owned by their ErrorValue and are
// never referenced independently.
type Frame struct {
	Module   string
	File     string
	Function string
	Line     int64
	Captured []Attr
}

// locationOrUnknown clones s, substituting the "<unknown>" sentinel for empty
// input. Frame locations are defaulted at ingest (unlike capture text, which
// is defaulted at render) so the stored frame matches what enumeration and
// rendering both report.
func locationOrUnknown(s string) string {
	if s == "" {
		return unknownLocation
	}
	return strings.Clone(s)
}

// stageFrame builds a fully owned Frame from caller inputs. Captures are
// paired up to the shorter of capKeys/capVals, preserving insertion order.
func stageFrame(module, file, function string, line int64, capKeys, capVals []string) Frame {
	return Frame{
		Module:   locationOrUnknown(module),
		File:     locationOrUnknown(file),
		Function: locationOrUnknown(function),
		Line:     line,
		Captured: attrsFromParallel(capKeys, capVals),
	}
}

// cloneFrames deep-copies a caller-supplied frame list for ingest, applying
// location defaulting per frame.
func cloneFrames(src []Frame) []Frame {
	if len(src) == 0 {
		return nil
	}
	out := make([]Frame, len(src))
	for i, fr := range src {
		out[i] = Frame{
			Module:   locationOrUnknown(fr.Module),
			File:     locationOrUnknown(fr.File),
			Function: locationOrUnknown(fr.Function),
			Line:     fr.Line,
			Captured: cloneAttrs(fr.Captured),
		}
	}
	return out
}

// PushFrame appends one frame recording an unwinding caller's location and
// captured variables, mutating the value in place and returning the same
// logical value for chaining. Empty location strings become "<unknown>".
// capKeys and capVals are parallel; they pair up to the shorter length.
//
// PushFrame on a nil or freed value is a no-op (a diagnostic enrichment that
// cannot apply is dropped, never an error). The commit point is the final
// append: everything before it works on staged storage only.
func (e *ErrorValue) PushFrame(module, file, function string, line int64, capKeys, capVals []string) *ErrorValue {
	if e == nil || e.freed {
		return e
	}
	fr := stageFrame(module, file, function, line, capKeys, capVals)
	e.frames = append(e.frames, fr)
	return e
}

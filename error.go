// error.go — the ErrorValue entity for the drift-error core.
//
// Scope (tiny core):
//   - Define ErrorValue: event, domain, ordered attributes, frame stack,
//     packed code, and the memoized diagnostic slot.
//   - Provide total read accessors (nil- and freed-safe) with copy-on-read
//     views, so catch sites and harnesses never take ownership.
//   - Provide explicit teardown (Free) mirroring the runtime ABI's release
//     operation.
//
// Ownership:
//   - Exactly one owner at any instant; the value moves by pointer through
//     returns during unwinding. There is no copy operation.
//   - Mutation is confined to PushFrame (stack.go) and the one-shot
//     diagnostic memoization (format.go).
package drifterror

// Sentinel literals used when inputs are missing or empty. These are part of
// the rendered contract, not internal conveniences.
const (
	DefaultEvent  = "unknown"
	DefaultDomain = "main"

	// unknownLocation substitutes for empty frame location fields.
	unknownLocation = "<unknown>"
	// unknownText substitutes for empty attribute/capture keys and values
	// at render time.
	unknownText = "unknown"
)

// ErrorValue is the structured failure record propagated across Drift calls.
//
// All fields are owned: every string is deep-copied on ingest and the slices
// are never shared with callers. Accessors return copies; mutators exist only
// for monotonic frame growth.
type ErrorValue struct {
	event  string
	domain string
	attrs  []Attr
	frames []Frame
	code   Code

	// diag memoizes the first Diagnostic render for the value's remaining
	// lifetime. diagDone distinguishes "not yet rendered" from a rendered
	// empty string (which cannot occur today, but the flag keeps the
	// invariant explicit).
	diag     string
	diagDone bool

	freed bool
}

// Event returns the failure name, or DefaultEvent for a nil or freed value.
func (e *ErrorValue) Event() string {
	if e == nil || e.freed {
		return DefaultEvent
	}
	return e.event
}

// Domain returns the subsystem name, or DefaultDomain for a nil or freed value.
func (e *ErrorValue) Domain() string {
	if e == nil || e.freed {
		return DefaultDomain
	}
	return e.domain
}

// Code returns the packed kind/payload code. Zero for a nil or freed value.
func (e *ErrorValue) Code() Code {
	if e == nil || e.freed {
		return 0
	}
	return e.code
}

// Attrs returns a defensive copy of the attribute list in insertion order.
// The returned slice is safe for callers to mutate.
func (e *ErrorValue) Attrs() []Attr {
	if e == nil || e.freed || len(e.attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// AttrCount returns the number of attributes, including duplicates.
func (e *ErrorValue) AttrCount() int {
	if e == nil || e.freed {
		return 0
	}
	return len(e.attrs)
}

// Frames returns a defensive copy of the frame stack: index 0 is the first
// frame pushed (innermost), later indices the outer callers. Captured lists
// are copied as well, so mutating the result never touches the value.
func (e *ErrorValue) Frames() []Frame {
	if e == nil || e.freed || len(e.frames) == 0 {
		return nil
	}
	out := make([]Frame, len(e.frames))
	for i, fr := range e.frames {
		out[i] = fr
		if len(fr.Captured) > 0 {
			caps := make([]Attr, len(fr.Captured))
			copy(caps, fr.Captured)
			out[i].Captured = caps
		}
	}
	return out
}

// FrameCount reports the number of frames pushed so far. It equals the number
// of successful PushFrame calls performed on the value (plus any initial
// frames supplied at construction).
func (e *ErrorValue) FrameCount() int {
	if e == nil || e.freed {
		return 0
	}
	return len(e.frames)
}

// Error implements the standard error interface with a concise one-line form,
// so an ErrorValue can travel through ordinary Go error plumbing at the
// embedding boundary. The full rendering lives in Diagnostic.
func (e *ErrorValue) Error() string {
	if e == nil || e.freed {
		return DefaultEvent + " (" + DefaultDomain + ")"
	}
	return e.event + " (" + e.domain + ")"
}

// Free releases every owned reference held by the value. It is idempotent and
// safe on nil. After Free, all accessors behave exactly as they do for an
// absent value: sentinel event/domain, zero counts, absent lookups.
//
// Free exists because the runtime ABI names an explicit release operation;
// under Go the collector reclaims the storage, but dropping the references
// here makes teardown observable and keeps the lifecycle contract testable.
func (e *ErrorValue) Free() {
	if e == nil || e.freed {
		return
	}
	e.event = ""
	e.domain = ""
	e.attrs = nil
	e.frames = nil
	e.code = 0
	e.diag = ""
	e.diagDone = false
	e.freed = true
}

// Freed reports whether Free has been called on the value. False for nil.
func (e *ErrorValue) Freed() bool {
	return e != nil && e.freed
}

// -----------------------------------------------------------------------------
// Interface conformance guards (keep in the file that defines the type)
// -----------------------------------------------------------------------------
var _ error = (*ErrorValue)(nil)

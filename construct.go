// construct.go — constructors for the drift-error core.
//
// Scope (tiny core):
//   - New: the ergonomic constructor for hand-written raise sites.
//   - NewFromParallel: the generated-code touchpoint taking the flattened
//     parallel-slice shape the code generator emits.
//   - NewMessage / From: ingestion of plain-text and foreign Go errors at the
//     embedding boundary.
//   - IndexError: the one semantic constructor the array collaborator needs.
//
// Notes:
//   - Every incoming string is deep-cloned; constructors never retain caller
//     buffers.
//   - Empty event defaults to "unknown", empty domain to "main", applied at
//     ingest so accessors and rendering agree.
//   - Allocation failure during construction is fail-fast: under Go, heap
//     exhaustion aborts the process, which is exactly the contract: a failed
//     allocation while building error-reporting state has no safe degraded
//     path.
package drifterror

import (
	"strconv"
	"strings"
)

// eventOrDefault clones s, substituting DefaultEvent for empty input.
func eventOrDefault(s string) string {
	if s == "" {
		return DefaultEvent
	}
	return strings.Clone(s)
}

// domainOrDefault clones s, substituting DefaultDomain for empty input.
func domainOrDefault(s string) string {
	if s == "" {
		return DefaultDomain
	}
	return strings.Clone(s)
}

// New constructs an ErrorValue with the given event, domain, and attributes,
// zero frames, and no rendered diagnostic. All strings are deep-cloned.
func New(event, domain string, attrs ...Attr) *ErrorValue {
	return &ErrorValue{
		event:  eventOrDefault(event),
		domain: domainOrDefault(domain),
		attrs:  cloneAttrs(attrs),
	}
}

// NewFromParallel constructs an ErrorValue from the flattened shape emitted by
// generated raise sites: parallel attribute key/value slices plus an optional
// initial frame list. Attribute slices pair up to the shorter length; frame
// location fields default to "<unknown>" exactly as PushFrame would apply.
func NewFromParallel(keys, vals []string, event, domain string, frames []Frame) *ErrorValue {
	return &ErrorValue{
		event:  eventOrDefault(event),
		domain: domainOrDefault(domain),
		attrs:  attrsFromParallel(keys, vals),
		frames: cloneFrames(frames),
	}
}

// NewMessage constructs a minimal ErrorValue carrying a single "msg"
// attribute. Event is "Error", domain the default. It serves hand-written
// harness code that has only a text message to report.
func NewMessage(msg string) *ErrorValue {
	return New("Error", "", Attr{Key: "msg", Val: msg})
}

// From converts any Go error into an ErrorValue at the embedding boundary.
//   - nil → nil
//   - *ErrorValue → returned as-is (ownership passes to the caller)
//   - other error → event "Error", default domain, ("msg", err.Error())
func From(err error) *ErrorValue {
	if err == nil {
		return nil
	}
	if ev, ok := err.(*ErrorValue); ok {
		return ev
	}
	return NewMessage(err.Error())
}

// IndexError constructs the out-of-range failure reported by the array
// collaborator: event "IndexError", domain "lang.array", with the offending
// container name and index as attributes.
func IndexError(container string, index int64) *ErrorValue {
	return New("IndexError", "lang.array",
		Attr{Key: "container", Val: container},
		Attr{Key: "index", Val: strconv.FormatInt(index, 10)},
	)
}

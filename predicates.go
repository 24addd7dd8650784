// predicates.go — minimal classification helpers for drift-error.
//
// Scope:
//   - Zero-policy helpers answering the questions catch sites actually ask.
//   - Total over nil: an absent error matches nothing.
package drifterror

// HasEvent reports whether e carries the given event name.
func HasEvent(e *ErrorValue, event string) bool {
	return e != nil && !e.freed && e.event == event
}

// HasDomain reports whether e belongs to the given domain.
func HasDomain(e *ErrorValue, domain string) bool {
	return e != nil && !e.freed && e.domain == domain
}

// IsIndexError reports whether e is the array collaborator's out-of-range
// failure.
func IsIndexError(e *ErrorValue) bool {
	return HasEvent(e, "IndexError") && HasDomain(e, "lang.array")
}

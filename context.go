// context.go — ordered attribute storage and lookup for the drift-error core.
//
// Design:
//   - Internal representation: append-only []Attr (deterministic order).
//   - Duplicate keys are allowed; lookup returns the FIRST match.
//   - Ingest helpers deep-clone every string so the value never aliases
//     caller-owned text.
//
// Rationale:
//   - Go map iteration order is unspecified; a slice preserves insertion order,
//     which the diagnostic format depends on.
//   - First-match (not last-write-wins) is the generated-code contract: raise
//     sites write the authoritative pair first, and later enrichment may append
//     shadowed duplicates without changing what catch sites observe.
package drifterror

import "strings"

// Attr is a single key-value attribute attached to an ErrorValue or captured
// in a Frame. Both sides are plain text by ABI contract.
type Attr struct {
	Key string
	Val string
}

// cloneAttrs returns a deep copy of src with every string re-allocated, so the
// result shares no backing storage with the input.
func cloneAttrs(src []Attr) []Attr {
	if len(src) == 0 {
		return nil
	}
	out := make([]Attr, len(src))
	for i, a := range src {
		out[i] = Attr{Key: strings.Clone(a.Key), Val: strings.Clone(a.Val)}
	}
	return out
}

// attrsFromParallel pairs parallel key/value slices into an owned attribute
// list, cloning every string. The slices are paired up to the shorter length;
// excess entries on either side are ignored (degrade, don't fail; the
// equal-length contract is the code generator's to uphold).
func attrsFromParallel(keys, vals []string) []Attr {
	n := len(keys)
	if len(vals) < n {
		n = len(vals)
	}
	if n == 0 {
		return nil
	}
	out := make([]Attr, n)
	for i := 0; i < n; i++ {
		out[i] = Attr{Key: strings.Clone(keys[i]), Val: strings.Clone(vals[i])}
	}
	return out
}

// Attr returns the value paired with the first attribute whose key equals key
// by full content comparison, in insertion order. The second result is false
// when the key is absent, the receiver is nil, or the value has been freed.
func (e *ErrorValue) Attr(key string) (string, bool) {
	if e == nil || e.freed {
		return "", false
	}
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// AttrValue is the required-presence variant of Attr: it returns the first
// matching value, or "" when absent. Use it only where presence is already
// guaranteed upstream by static typing. It is a contract, not a safety net.
func (e *ErrorValue) AttrValue(key string) string {
	v, _ := e.Attr(key)
	return v
}

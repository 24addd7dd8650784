// format.go — diagnostic serialization and fmt.Formatter for drift-error.
//
// Behavior:
//
//   Diagnostic() → the canonical JSON-shaped single line, computed once and
//                  cached for the value's remaining lifetime:
//                    {"event":"E","domain":"D","attrs":{"k":"v",...},
//                     "frames":[{"module":"m","file":"f","func":"fn",
//                                "line":N,"captured":{"k":"v",...}},...]}
//   %s, %v     → concise one-line Error().
//   %q         → quoted Error().
//   %+v        → verbose, structured multi-line form for logs and tests.
//
// Rationale:
//   - The Diagnostic format is a byte-exact output-only contract consumed by
//     harnesses and the bounds-failure path: fixed key order, empty containers
//     rendered as {} / [], sentinel substitution for empty text, and NO string
//     escaping. encoding/json cannot produce it; the writer below is the
//     contract's only faithful implementation. Callers must keep quotes and
//     control characters out of diagnostic text.
//   - The cache is never recomputed or invalidated, even after later frame
//     pushes. Consumers depend on the first-render text being stable.
package drifterror

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// absentDiagnostic is the rendering of a nil or freed ErrorValue. It is what
// a zero-attribute, zero-frame default-named value would render, and keeps
// Diagnostic total over absent inputs.
const absentDiagnostic = `{"event":"unknown","domain":"main","attrs":{},"frames":[]}`

// writeQuoted writes s between double quotes, substituting fallback when s is
// empty. Verbatim emission: embedded quotes are the caller's problem.
func writeQuoted(b *strings.Builder, s, fallback string) {
	if s == "" {
		s = fallback
	}
	b.WriteByte('"')
	b.WriteString(s)
	b.WriteByte('"')
}

// writeAttrObject renders an attribute or capture list as {"k":"v",...} in
// insertion order, {} when empty, with "unknown" standing in for empty text.
func writeAttrObject(b *strings.Builder, attrs []Attr) {
	b.WriteByte('{')
	for i, a := range attrs {
		if i > 0 {
			b.WriteByte(',')
		}
		writeQuoted(b, a.Key, unknownText)
		b.WriteByte(':')
		writeQuoted(b, a.Val, unknownText)
	}
	b.WriteByte('}')
}

// renderDiagnostic produces the canonical text for a live value.
func renderDiagnostic(e *ErrorValue) string {
	var b strings.Builder
	b.WriteString(`{"event":`)
	writeQuoted(&b, e.event, DefaultEvent)
	b.WriteString(`,"domain":`)
	writeQuoted(&b, e.domain, DefaultDomain)
	b.WriteString(`,"attrs":`)
	writeAttrObject(&b, e.attrs)
	b.WriteString(`,"frames":[`)
	for i, fr := range e.frames {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`{"module":`)
		writeQuoted(&b, fr.Module, unknownLocation)
		b.WriteString(`,"file":`)
		writeQuoted(&b, fr.File, unknownLocation)
		b.WriteString(`,"func":`)
		writeQuoted(&b, fr.Function, unknownLocation)
		b.WriteString(`,"line":`)
		b.WriteString(strconv.FormatInt(fr.Line, 10))
		b.WriteString(`,"captured":`)
		writeAttrObject(&b, fr.Captured)
		b.WriteByte('}')
	}
	b.WriteString(`]}`)
	return b.String()
}

// Diagnostic returns the JSON-shaped rendering of the value.
//
// The text is computed on the first call and memoized; every subsequent call
// returns the identical stored text even if frames were pushed in between.
// That caching invariant is part of the contract (first-render stability for
// existing consumers), not a bug to fix here. A nil or freed value renders
// the absent sentinel and caches nothing.
func (e *ErrorValue) Diagnostic() string {
	if e == nil || e.freed {
		return absentDiagnostic
	}
	if !e.diagDone {
		e.diag = renderDiagnostic(e)
		e.diagDone = true
	}
	return e.diag
}

// -----------------------------------------------------------------------------
// fmt.Formatter
// -----------------------------------------------------------------------------

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e *ErrorValue) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes a structured multi-line representation reflecting the
// value's CURRENT state (unlike Diagnostic, which memoizes its first render).
func formatVerbose(w io.Writer, e *ErrorValue) {
	_, _ = fmt.Fprintf(w, "event=%s domain=%s", e.Event(), e.Domain())

	if attrs := e.Attrs(); len(attrs) > 0 {
		_, _ = io.WriteString(w, "\nattrs:")
		for _, a := range attrs {
			_, _ = fmt.Fprintf(w, " %s=%s", a.Key, a.Val)
		}
	}

	if frames := e.Frames(); len(frames) > 0 {
		_, _ = io.WriteString(w, "\nframes:")
		for i, fr := range frames {
			_, _ = fmt.Fprintf(w, "\n  [%d] %s %s:%d %s", i, fr.Module, fr.File, fr.Line, fr.Function)
			for _, c := range fr.Captured {
				_, _ = fmt.Fprintf(w, " %s=%s", c.Key, c.Val)
			}
		}
	}
}

func (e *ErrorValue) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

var _ fmt.Formatter = (*ErrorValue)(nil)

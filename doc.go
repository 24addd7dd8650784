// doc.go — package documentation for drift-error
//
// Package drifterror implements the structured runtime error value used by
// Drift-generated code to represent, propagate, enrich, and diagnose failures
// during call-stack unwinding, without the host platform's native exception
// mechanism. It is designed to be:
//   - Exclusively owned (one holder at a time; the value moves with unwinding)
//   - Progressively enriched (each caller appends one frame as it unwinds)
//   - Deterministic to render (one diagnostic string, computed once, cached)
//
// # Data Model
//
// An ErrorValue carries a short event name (e.g. "IndexError"), a domain name
// (e.g. "lang.array"), an insertion-ordered attribute list, and an append-only
// frame stack. Every string entering the value is deep-copied; the value never
// aliases caller-owned text.
//
// Typical lifecycle:
//
//	err := drifterror.New("IndexError", "lang.array",
//	    drifterror.Attr{Key: "container", Val: "Array"},
//	    drifterror.Attr{Key: "index", Val: "5"})
//	// ... each unwinding caller:
//	err.PushFrame("app", "main.drift", "level1", 14, nil, nil)
//	// ... at the observation point:
//	os.Stderr.WriteString(err.Diagnostic())
//	err.Free()
//
// # Ownership & Mutation
//
// An ErrorValue has exactly one owner at any instant: the call frame currently
// unwinding through it. Ownership transfers by move on return, never by
// sharing. The only mutating operation after construction is PushFrame;
// everything else is a read. The package assumes single-owner, single-thread
// use identical to a local variable moved through a call stack; embedders
// that expose a value across goroutines must serialize access themselves.
//
// # Failure Tiers
//
//	+---------------------------+---------------------+--------------------------------+
//	| Operation                 | On allocation fail  | Rationale                      |
//	+---------------------------+---------------------+--------------------------------+
//	| New / NewFromParallel     | process abort       | error reporting cannot         |
//	|                           |                     | degrade without losing data    |
//	| PushFrame                 | value unchanged     | losing one frame is tolerable; |
//	|                           | (all-or-nothing)    | corrupting the value is not    |
//	+---------------------------+---------------------+--------------------------------+
//
// A frame is fully staged (every string cloned, the capture list built)
// before a single append publishes it, so no partially built frame is ever
// observable.
//
// # Diagnostic Rendering
//
// Diagnostic renders the value as a single JSON-shaped line:
//
//	{"event":"IndexError","domain":"lang.array","attrs":{"container":"Array","index":"5"},"frames":[]}
//
// The text is computed on first call and cached for the value's remaining
// lifetime; frames pushed after the first render never appear in it. This is
// documented, load-bearing behavior for existing consumers, not an oversight.
// Field values are emitted verbatim with no escaping; callers must keep
// quotes and control characters out of diagnostic text.
//
// Missing inputs degrade to sentinels rather than failing: "unknown" for
// attribute and capture keys/values, "<unknown>" for frame locations. Lookup
// and rendering are total over all inputs, including a nil ErrorValue.
//
// # Generated-Code Surface
//
// Two touchpoints exist for machine-generated callers:
//   - Result: the {Val, Err} pair returned by fallible generated functions;
//     an absent Err means success, and a present Err forbids reading Val.
//   - NewFromParallel / PushFrame: construction and growth from the flattened
//     parallel-slice shape the code generator emits.
//
// The dummy variant (NewDummy, Code kind/payload packing) exists only for
// exercising generated error edges, never for production diagnostics.
//
// # Minimal Surface, Clear Semantics
//
// The core deliberately carries no logging, serialization-framework, or
// policy surface; its one external output is the diagnostic text written to
// the process error stream by the bounds-check collaborator in array.go.
package drifterror

// codes.go — kind/payload code packing and the dummy error variant.
//
// Intent:
//   - Model the bit-packed code field as a tagged numeric type with explicit
//     extraction, instead of raw shifting sprinkled through call sites.
//   - Provide the dummy constructor used to exercise generated error edges.
//     It is not a production diagnostic: at most one attribute, never frames.
//
// Layout (64-bit, preserved bit-exactly through construction and accessors):
//
//	bits 63..60  kind discriminant (4 bits)
//	bits 59..0   payload           (60 bits)
package drifterror

// Code packs a 4-bit kind discriminant and a 60-bit payload into one word.
type Code uint64

const (
	// KindShift is the bit offset of the kind discriminant.
	KindShift = 60
	// PayloadMask selects the low 60 payload bits.
	PayloadMask Code = (1 << KindShift) - 1
)

// Pack combines a kind discriminant and payload into a Code. Only the low
// 4 bits of kind and the low 60 bits of payload contribute.
func Pack(kind uint8, payload uint64) Code {
	return Code(uint64(kind&0xF))<<KindShift | (Code(payload) & PayloadMask)
}

// Kind extracts the top-4-bit discriminant.
func (c Code) Kind() uint8 {
	return uint8(c >> KindShift)
}

// Payload extracts the low 60 bits.
func (c Code) Payload() uint64 {
	return uint64(c & PayloadMask)
}

// NewDummy constructs the minimal test variant: the raw code stored
// bit-exactly, event "Error", default domain, zero frames, and exactly one
// (key, val) attribute when key is non-empty, otherwise zero attributes.
//
// Each call returns a fresh heap value. The historical shared-singleton form
// is gone; it was a throwaway stub, not a contract.
func NewDummy(code Code, key, val string) *ErrorValue {
	var attrs []Attr
	if key != "" {
		attrs = []Attr{{Key: key, Val: val}}
	}
	e := New("Error", "", attrs...)
	e.code = code
	return e
}

// Package rawbytes provides zero-copy reinterpretation between strings
// and byte slices, plus the defensive copy used at ownership boundaries.
//
// The no-copy views rely on unsafe aliasing: the caller must not mutate
// the backing storage for as long as the view is reachable. Callers that
// cannot guarantee the lifetime must use Clone instead.
package rawbytes

import "unsafe"

// String returns b viewed as a string without copying.
// The result is invalid if b is mutated afterwards.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Bytes returns s viewed as a byte slice without copying.
// The result is read-only; writing to it is undefined behaviour since
// string data is immutable.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Clone returns an independent copy of b. Clone(nil) is nil.
func Clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

package maybeutf8

import (
	"bytes"
	"hash/maphash"
	"strconv"
	"unicode/utf8"

	"github.com/rawbytedev/maybeutf8/internal/rawbytes"
)

// Slice is a read-only borrowed view over either validated text or a raw
// byte slice. It never copies and never owns: the backing storage must
// stay alive and unmodified for as long as the Slice is in use. Go has no
// borrow checker, so this is a documented contract, not a runtime check.
//
// Comparison, ordering, hashing and formatting follow the same semantics
// as Buf. The zero value is an empty Text view.
type Slice struct {
	s   string
	b   []byte
	bin bool
}

// SliceFromString borrows validated text.
func SliceFromString(s string) Slice {
	return Slice{s: s}
}

// SliceFromBytes borrows raw bytes with no validation and no scan.
func SliceFromBytes(b []byte) Slice {
	return Slice{b: b, bin: true}
}

// IsText reports whether the Text variant is active.
func (v Slice) IsText() bool {
	return !v.bin
}

// Len returns the byte length of the viewed content.
func (v Slice) Len() int {
	if v.bin {
		return len(v.b)
	}
	return len(v.s)
}

// AsBytes returns the viewed bytes without copying, regardless of
// variant. Read-only.
func (v Slice) AsBytes() []byte {
	if v.bin {
		return v.b
	}
	return rawbytes.Bytes(v.s)
}

// AsString returns the content as text when it is valid UTF-8, without
// copying. ok is false when the bytes are not valid UTF-8.
func (v Slice) AsString() (s string, ok bool) {
	if !v.bin {
		return v.s, true
	}
	if utf8.Valid(v.b) {
		return rawbytes.String(v.b), true
	}
	return "", false
}

// MapCow returns the content as text, calling decode only for the Bytes
// variant. The Text variant is handed back with no copy and no decode
// call, which is the common validated case.
func (v Slice) MapCow(decode func([]byte) string) string {
	if !v.bin {
		return v.s
	}
	return decode(v.b)
}

// ToOwned copies the viewed content into a new independent Buf with the
// same variant.
func (v Slice) ToOwned() Buf {
	if v.bin {
		return FromBytes(rawbytes.Clone(v.b))
	}
	return FromString(v.s)
}

// String renders the view lossily, exactly as Buf.String does.
func (v Slice) String() string {
	if !v.bin {
		return v.s
	}
	return lossyString(v.b)
}

// GoString renders the debug form, exactly as Buf.GoString does.
func (v Slice) GoString() string {
	if !v.bin {
		return strconv.Quote(v.s)
	}
	return quoteBytes(v.b)
}

// Equal reports byte-level equality, ignoring the variant tag.
func (v Slice) Equal(o Slice) bool {
	if !v.bin && !o.bin {
		return v.s == o.s
	}
	return bytes.Equal(v.AsBytes(), o.AsBytes())
}

// Compare orders two Slices byte-lexicographically.
func (v Slice) Compare(o Slice) int {
	return bytes.Compare(v.AsBytes(), o.AsBytes())
}

// Hash returns a seeded hash of the byte representation, consistent with
// Buf.Hash.
func (v Slice) Hash(seed maphash.Seed) uint64 {
	if v.bin {
		return maphash.Bytes(seed, v.b)
	}
	return maphash.String(seed, v.s)
}

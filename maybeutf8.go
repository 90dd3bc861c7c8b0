// Package maybeutf8 provides a byte container with an uncertain character
// encoding. A value is either known-valid UTF-8 text or an opaque byte
// sequence that may be encoded in UTF-8, in another charset, or not be
// text at all. Archive formats with legacy file names are the typical
// producer: the caller may learn the true encoding later and decode the
// bytes itself, or never learn it and still display, compare and store
// the value safely.
package maybeutf8

import (
	"bytes"
	"errors"
	"fmt"
	"hash/maphash"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rawbytedev/maybeutf8/internal/rawbytes"
)

// ErrInvalidEncoding reports bytes that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// InvalidEncodingError is returned by TryString and Promote when the
// Bytes variant does not hold valid UTF-8. Bytes is the original content,
// unmodified and sharing the same backing array, so nothing is lost on
// failure. It matches ErrInvalidEncoding under errors.Is.
type InvalidEncodingError struct {
	Bytes []byte
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 encoding in %d byte(s)", len(e.Bytes))
}

func (e *InvalidEncodingError) Unwrap() error { return ErrInvalidEncoding }

// Buf is an owned byte container optionally encoded as UTF-8. It holds
// exactly one of two variants: Text (guaranteed valid UTF-8) or Bytes
// (no validity claim). The variant tag is the sole source of truth for
// "is this known-good text"; callers consult IsText instead of
// re-validating.
//
// Buf is a value type, used like time.Time. The zero value is the empty
// Text variant.
type Buf struct {
	s string
	b []byte
	// bin marks the Bytes variant. False means Text.
	bin bool
}

// New returns an empty Buf in the Text variant.
func New() Buf {
	return Buf{}
}

// FromString wraps already-validated text. Never fails, never copies.
func FromString(s string) Buf {
	return Buf{s: s}
}

// FromBytes wraps raw bytes with no validation and no scan. The Buf takes
// ownership of b: the caller must not mutate it afterwards.
func FromBytes(b []byte) Buf {
	return Buf{b: b, bin: true}
}

// IsText reports whether the Text variant is active, i.e. the content is
// known-valid UTF-8.
func (v Buf) IsText() bool {
	return !v.bin
}

// Len returns the byte length of the content.
func (v Buf) Len() int {
	if v.bin {
		return len(v.b)
	}
	return len(v.s)
}

// AsBytes returns the underlying bytes without copying, regardless of
// variant. The result is a read-only view; mutating it is undefined
// behaviour when the Text variant is active.
func (v Buf) AsBytes() []byte {
	if v.bin {
		return v.b
	}
	return rawbytes.Bytes(v.s)
}

// AsString returns the content as text when it is valid UTF-8. The Text
// variant returns its string directly; the Bytes variant is validated and,
// on success, viewed without copying. ok is false when the bytes are not
// valid UTF-8.
func (v Buf) AsString() (s string, ok bool) {
	if !v.bin {
		return v.s, true
	}
	if utf8.Valid(v.b) {
		return rawbytes.String(v.b), true
	}
	return "", false
}

// TryString converts the Buf into text. The Text variant is returned
// unchanged. The Bytes variant is validated over the whole sequence: on
// success the byte buffer is reinterpreted as the result without a copy,
// on failure an *InvalidEncodingError carrying the original bytes is
// returned and nothing is lost.
func (v Buf) TryString() (string, error) {
	if !v.bin {
		return v.s, nil
	}
	if utf8.Valid(v.b) {
		return rawbytes.String(v.b), nil
	}
	return "", &InvalidEncodingError{Bytes: v.b}
}

// Promote attempts an in-place Bytes→Text conversion. A Buf already in
// the Text variant is left alone. On success the variant becomes Text,
// consuming the byte buffer; on failure the value is left as Bytes and
// an *InvalidEncodingError is returned.
func (v *Buf) Promote() error {
	if !v.bin {
		return nil
	}
	if !utf8.Valid(v.b) {
		return &InvalidEncodingError{Bytes: v.b}
	}
	v.s = rawbytes.String(v.b)
	v.b = nil
	v.bin = false
	return nil
}

// MapString converts the Buf into text using decode for the Bytes
// variant. The Text variant is returned as-is and decode is never called
// for it. decode is the single hook for foreign encodings: a caller who
// knows the bytes are, say, ISO 8859-2 supplies the matching decoder and
// recovers correct text. See pkg/textenc for adapters.
func (v Buf) MapString(decode func([]byte) string) string {
	if !v.bin {
		return v.s
	}
	return decode(v.b)
}

// IntoBytes converts the Buf into its raw byte encoding. Never fails.
// The Bytes variant hands over its buffer as-is; the Text variant copies,
// since Go string data cannot back a mutable slice.
func (v Buf) IntoBytes() []byte {
	if v.bin {
		return v.b
	}
	return []byte(v.s)
}

// ToSlice borrows the Buf as a read-only Slice without copying. The Buf
// must stay alive and unmodified while the Slice is in use.
func (v Buf) ToSlice() Slice {
	if v.bin {
		return Slice{b: v.b, bin: true}
	}
	return Slice{s: v.s}
}

// Clone returns a Buf with an independent backing buffer.
func (v Buf) Clone() Buf {
	if v.bin {
		return Buf{b: rawbytes.Clone(v.b), bin: true}
	}
	return v
}

// AppendTo appends the byte representation to dst and returns the
// extended slice.
func (v Buf) AppendTo(dst []byte) []byte {
	if v.bin {
		return append(dst, v.b...)
	}
	return append(dst, v.s...)
}

// String renders the content for human-readable output. The Text variant
// is returned as-is. For the Bytes variant every maximal run of bytes
// that is not valid UTF-8 is replaced by a single U+FFFD; already-valid
// bytes render without replacement or copy. Rendering never mutates the
// stored variant. Total: it cannot fail.
func (v Buf) String() string {
	if !v.bin {
		return v.s
	}
	return lossyString(v.b)
}

// GoString renders a debug form: a quoted literal for Text, and for
// Bytes a b"..." literal with every non-printable byte escaped, so
// unvalidated content is never mistaken for validated text.
func (v Buf) GoString() string {
	if !v.bin {
		return strconv.Quote(v.s)
	}
	return quoteBytes(v.b)
}

// Equal reports whether the byte-level representations are identical.
// The variant tag records provenance, not identity: a Text value and a
// Bytes value holding the same bytes are equal.
func (v Buf) Equal(o Buf) bool {
	if !v.bin && !o.bin {
		return v.s == o.s
	}
	return bytes.Equal(v.AsBytes(), o.AsBytes())
}

// Compare orders two Bufs byte-lexicographically, ignoring the variant
// tag. The result follows bytes.Compare conventions.
func (v Buf) Compare(o Buf) int {
	return bytes.Compare(v.AsBytes(), o.AsBytes())
}

// Hash returns a seeded hash of the byte representation. Equal values
// hash identically under the same seed regardless of variant tag.
func (v Buf) Hash(seed maphash.Seed) uint64 {
	if v.bin {
		return maphash.Bytes(seed, v.b)
	}
	return maphash.String(seed, v.s)
}

const replacement = string(utf8.RuneError)

func lossyString(b []byte) string {
	if utf8.Valid(b) {
		// already UTF-8, view without copying
		return rawbytes.String(b)
	}
	return strings.ToValidUTF8(rawbytes.String(b), replacement)
}

func quoteBytes(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) + 4)
	sb.WriteString(`b"`)
	for _, c := range b {
		switch c {
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\n':
			sb.WriteString(`\n`)
		case '\\':
			sb.WriteString(`\\`)
		case '\'':
			sb.WriteString(`\'`)
		case '"':
			sb.WriteString(`\"`)
		default:
			if c >= 0x20 && c <= 0x7e {
				sb.WriteByte(c)
			} else {
				fmt.Fprintf(&sb, `\x%02x`, c)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

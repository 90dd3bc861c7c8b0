// Package textenc adapts golang.org/x/text encodings into the plain
// decode functions consumed by maybeutf8. The core container tracks only
// whether bytes are known-valid UTF-8; the actual charset tables live
// here, behind x/text, so callers who learn the true encoding of a Bytes
// value can recover correct text.
package textenc

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"

	"github.com/rawbytedev/maybeutf8"
)

// StringFunc returns a decode function producing UTF-8 text from bytes
// in the given encoding, suitable for Buf.MapString and Slice.MapCow.
// Undecodable input is replaced with U+FFFD, never dropped, so the
// returned function is total.
func StringFunc(e encoding.Encoding) func([]byte) string {
	return func(b []byte) string {
		// a fresh Decoder per call; transformers carry state and the
		// returned function may be shared
		out, err := e.NewDecoder().Bytes(b)
		if err != nil {
			// charmap decoders never fail; anything else degrades to
			// lossy UTF-8 rather than losing the value
			return strings.ToValidUTF8(string(b), string(utf8.RuneError))
		}
		return string(out)
	}
}

// Decode converts v into text, decoding the Bytes variant with e. The
// Text variant passes through untouched.
func Decode(e encoding.Encoding, v maybeutf8.Buf) string {
	return v.MapString(StringFunc(e))
}

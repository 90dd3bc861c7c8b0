package maybeutf8

import "reflect"

// StringLike is the set of source kinds that convert into a Buf without
// a fallible path: text and byte sequences, owned or borrowed, including
// defined types over them.
type StringLike interface {
	~string | ~[]byte
}

// From builds a Buf from any string-like source: string-kinded sources
// become the Text variant, byte-kinded sources the Bytes variant. The
// branch is resolved per instantiation from the type parameter, so call
// sites accepting "either kind of string-like input" can be written once
// instead of as two overloads. Construction never fails and never
// validates.
//
// Ownership follows FromBytes: a byte-kinded source is taken over, not
// copied.
func From[T StringLike](v T) Buf {
	if reflect.TypeFor[T]().Kind() == reflect.String {
		return FromString(string(v))
	}
	return FromBytes([]byte(v))
}

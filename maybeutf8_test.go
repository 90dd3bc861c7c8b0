package maybeutf8

import (
	"errors"
	"hash/maphash"
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// "caf" followed by the ISO 8859-2 byte for é, which is not valid UTF-8.
var cafLatin = []byte{99, 97, 102, 233}

// "café" in UTF-8 (é is the two bytes 0xC3 0xA9).
var cafeUTF8 = []byte{99, 97, 102, 195, 169}

func TestVariants(t *testing.T) {
	v := FromString("café")
	assert.True(t, v.IsText())
	assert.Equal(t, 5, v.Len())

	w := FromBytes(cafLatin)
	assert.False(t, w.IsText())
	assert.Equal(t, 4, w.Len())

	var zero Buf
	assert.True(t, zero.IsText())
	assert.Equal(t, 0, zero.Len())
	assert.True(t, New().Equal(zero))

	// the tag is explicit, not inferred from nil-ness
	assert.False(t, FromBytes(nil).IsText())
	assert.True(t, FromBytes(nil).Equal(FromString("")))
}

func TestTryString(t *testing.T) {
	s, err := FromString("café").TryString()
	require.NoError(t, err)
	assert.Equal(t, "café", s)

	s, err = FromBytes(cafeUTF8).TryString()
	require.NoError(t, err)
	assert.Equal(t, "café", s)

	_, err = FromBytes(cafLatin).TryString()
	require.ErrorIs(t, err, ErrInvalidEncoding)
	var ie *InvalidEncodingError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, cafLatin, ie.Bytes)
	// the original slice comes back, not a copy
	assert.Same(t, &cafLatin[0], &ie.Bytes[0])
}

func TestPromote(t *testing.T) {
	v := FromBytes(append([]byte(nil), cafeUTF8...))
	require.NoError(t, v.Promote())
	assert.True(t, v.IsText())
	s, err := v.TryString()
	require.NoError(t, err)
	assert.Equal(t, "café", s)

	w := FromBytes(cafLatin)
	err = w.Promote()
	require.ErrorIs(t, err, ErrInvalidEncoding)
	// failure leaves the value as Bytes, contents untouched
	assert.False(t, w.IsText())
	assert.Equal(t, cafLatin, w.AsBytes())

	text := FromString("ok")
	require.NoError(t, text.Promote())
	assert.True(t, text.IsText())
}

func TestAsString(t *testing.T) {
	s, ok := FromBytes(cafeUTF8).AsString()
	assert.True(t, ok)
	assert.Equal(t, "café", s)

	_, ok = FromBytes(cafLatin).AsString()
	assert.False(t, ok)
}

func TestIntoBytesRoundTrip(t *testing.T) {
	bytesID := func(b []byte) bool {
		return assert.ObjectsAreEqual(b, FromBytes(b).IntoBytes())
	}
	if err := quick.Check(bytesID, nil); err != nil {
		t.Errorf("Error: %v", err)
	}
	textEnc := func(s string) bool {
		return assert.ObjectsAreEqual([]byte(s), FromString(s).IntoBytes())
	}
	if err := quick.Check(textEnc, nil); err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestEqualIgnoresVariantTag(t *testing.T) {
	assert.True(t, FromString("café").Equal(FromBytes(cafeUTF8)))
	assert.False(t, FromString("café").Equal(FromBytes(cafLatin)))

	condition := func(s string) bool {
		return FromString(s).Equal(FromBytes([]byte(s)))
	}
	err := quick.Check(condition, &quick.Config{})
	require.NoError(t, err)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, FromString("café").Compare(FromBytes(cafeUTF8)))
	assert.Equal(t, -1, FromString("a").Compare(FromString("b")))
	assert.Equal(t, 1, FromBytes([]byte{0xff}).Compare(FromString("z")))
	assert.Equal(t, -1, FromString("ab").Compare(FromString("abc")))
}

func TestHash(t *testing.T) {
	seed := maphash.MakeSeed()
	// same bytes hash identically across variant tags
	assert.Equal(t, FromString("café").Hash(seed), FromBytes(cafeUTF8).Hash(seed))
	assert.Equal(t, FromBytes(cafLatin).Hash(seed), FromBytes(cafLatin).Clone().Hash(seed))
}

func TestLossyDisplay(t *testing.T) {
	assert.Equal(t, "caf�", FromBytes(cafLatin).String())
	assert.Equal(t, "café", FromString("café").String())
	assert.Equal(t, "café", FromBytes(cafeUTF8).String())

	// a maximal invalid run collapses into a single marker
	assert.Equal(t, "a�b", FromBytes([]byte{'a', 0xff, 0xfe, 0xfd, 'b'}).String())

	// rendering never mutates the stored variant
	v := FromBytes(cafLatin)
	_ = v.String()
	assert.False(t, v.IsText())
	assert.Equal(t, cafLatin, v.AsBytes())
}

func TestLossyIdempotent(t *testing.T) {
	condition := func(b []byte) bool {
		lossy := FromBytes(b).String()
		if !utf8.ValidString(lossy) {
			return false
		}
		// re-rendering already-valid output changes nothing
		return FromString(lossy).String() == lossy
	}
	if err := quick.Check(condition, &quick.Config{}); err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestGoString(t *testing.T) {
	assert.Equal(t, `"café"`, FromString("café").GoString())
	assert.Equal(t, `b"caf\xe9"`, FromBytes(cafLatin).GoString())
	assert.Equal(t, `b"a\t\r\n\\\'\"\x00~"`,
		FromBytes([]byte{'a', '\t', '\r', '\n', '\\', '\'', '"', 0, '~'}).GoString())
}

func TestMapString(t *testing.T) {
	called := false
	decode := func(b []byte) string {
		called = true
		return string(b) + "!"
	}
	assert.Equal(t, "café", FromString("café").MapString(decode))
	assert.False(t, called, "decode must not run for the Text variant")

	assert.Equal(t, "caf\xe9!", FromBytes(cafLatin).MapString(decode))
	assert.True(t, called)
}

func TestToSliceNonMutating(t *testing.T) {
	v := FromBytes(cafLatin)
	sl := v.ToSlice()
	assert.False(t, sl.IsText())
	assert.Equal(t, cafLatin, sl.AsBytes())
	_ = sl.String()
	// reading through the borrow leaves the Buf untouched
	assert.False(t, v.IsText())
	assert.Equal(t, cafLatin, v.AsBytes())

	// zero copy: the view aliases the owner's storage
	assert.Same(t, &v.AsBytes()[0], &sl.AsBytes()[0])
}

func TestClone(t *testing.T) {
	v := FromBytes(append([]byte(nil), cafLatin...))
	c := v.Clone()
	assert.True(t, v.Equal(c))
	assert.NotSame(t, &v.AsBytes()[0], &c.AsBytes()[0])

	text := FromString("café")
	assert.True(t, text.Clone().Equal(text))
}

func TestAppendTo(t *testing.T) {
	dst := []byte("name=")
	dst = FromBytes(cafLatin).AppendTo(dst)
	assert.Equal(t, append([]byte("name="), cafLatin...), dst)
	assert.Equal(t, []byte("café"), FromString("café").AppendTo(nil))
}

func TestInvalidEncodingError(t *testing.T) {
	err := &InvalidEncodingError{Bytes: cafLatin}
	assert.Equal(t, "invalid UTF-8 encoding in 4 byte(s)", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidEncoding))
}

func FuzzTryString(f *testing.F) {
	f.Add([]byte("café"))
	f.Add(cafLatin)
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, b []byte) {
		v := FromBytes(b)
		s, err := v.TryString()
		if utf8.Valid(b) {
			require.NoError(t, err)
			require.Equal(t, string(b), s)
		} else {
			require.ErrorIs(t, err, ErrInvalidEncoding)
			var ie *InvalidEncodingError
			require.ErrorAs(t, err, &ie)
			require.Equal(t, b, ie.Bytes)
		}
		// lossy display is total and produces valid UTF-8 for any input
		lossy := v.String()
		require.True(t, utf8.ValidString(lossy))
		require.Equal(t, lossy, FromString(lossy).String())
	})
}

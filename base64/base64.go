package base64

import "math"

const (
	// LineLength is the maximum number of characters per line
	// written by MIMEEncoding, per RFC 2045.
	LineLength = 76

	// groupsPerLine is the number of 4-character groups that
	// fit on one line.
	groupsPerLine = LineLength / 4
)

// StdEncoding is the standard Base64 encoding, written as a
// single line.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
var StdEncoding = &Encoding{}

// MIMEEncoding is the standard Base64 encoding with a CRLF
// line break after every 76 characters, as specified by
// RFC 2045.
//
// It uses the same table as StdEncoding.
var MIMEEncoding = &Encoding{wrap: true}

// Encoding is a particular Base64 encoding.
//
// The two encodings only differ when encoding: both decoders
// accept the output of either.
type Encoding struct {
	wrap bool
}

// Wrapped reports whether e inserts line breaks.
func (e *Encoding) Wrapped() bool {
	return e.wrap
}

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes, including line breaks.
func (e *Encoding) EncodedLen(n int) int {
	if n == 0 {
		return 0
	}
	chars := (n + 2) / 3 * 4
	if e.wrap {
		chars += (chars - 1) / LineLength * 2
	}
	return chars
}

// Encode returns the Base64 encoding of src.
//
// It returns ErrInputEmpty if src is nil. An empty, non-nil
// src encodes to an empty slice.
func (e *Encoding) Encode(src []byte) ([]byte, error) {
	return encode(src, e.wrap)
}

// EncodeToString returns the Base64 encoding of src as a
// string.
//
// It returns the empty string if src cannot be encoded.
func (e *Encoding) EncodeToString(src []byte) string {
	dst, err := e.Encode(src)
	if err != nil {
		return ""
	}
	return string(dst)
}

// Decode decodes src, ignoring any characters that are not in
// the alphabet.
//
// See the package docs for the rules Decode enforces.
func (e *Encoding) Decode(src []byte) ([]byte, error) {
	return decode(src)
}

// DecodeString decodes s like Decode.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	return decode([]byte(s))
}

// DecodeFast decodes src, which must be well formed.
//
// See the package docs for the preconditions DecodeFast relies
// on.
func (e *Encoding) DecodeFast(src []byte) ([]byte, error) {
	return decodeFast(src)
}

// Encode returns the Base64 encoding of src, inserting a CRLF
// after every 76 characters if wrap is set.
func Encode(src []byte, wrap bool) ([]byte, error) {
	return encode(src, wrap)
}

// Decode decodes src using the validating decoder.
func Decode(src []byte) ([]byte, error) {
	return decode(src)
}

// DecodeFast decodes src using the trusting decoder.
func DecodeFast(src []byte) ([]byte, error) {
	return decodeFast(src)
}

// maxLen is the largest buffer any call will allocate. Larger
// outputs fail with ErrNoMemory.
var maxLen = math.MaxInt32

// alloc returns a zeroed buffer of n bytes.
func alloc(n int) (buf []byte, err error) {
	if n < 0 {
		return nil, ErrUnknown
	}
	if n > maxLen {
		return nil, ErrNoMemory
	}
	defer func() {
		if recover() != nil {
			buf, err = nil, ErrNoMemory
		}
	}()
	return make([]byte, n), nil
}

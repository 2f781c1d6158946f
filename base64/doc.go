// Package base64 implements Base64 encoding and decoding as
// specified by RFC 2045 and RFC 4648, using the standard
// alphabet only.
//
// Every call returns a newly allocated buffer owned by the
// caller. A nil input is an error; an empty, non-nil input
// always produces an empty result.
//
// Encoding
//
// Encode writes the padded encoding of its input. When line
// wrapping is requested, a CRLF pair follows every 76 output
// characters, except that the output never ends with a line
// break.
//
// Decoding
//
// There are two decoders.
//
// Decode validates its input. Bytes that are neither in the
// alphabet nor '=' are separators and are skipped wherever
// they occur, so wrapped text, stray whitespace and other
// noise are accepted. After removing separators the input must
// be a multiple of four characters with at most two trailing
// '=', otherwise Decode returns ErrCorrupt.
//
// DecodeFast trusts its input. It requires that
//
//    - lines are either exactly 76 characters separated by
//      "\r\n", or there is a single line, and
//    - no separators occur between the first and the last
//      alphabet character, other than those line breaks.
//
// Separators before the first and after the last character are
// trimmed. Whether the input is wrapped is decided by looking
// at the byte at offset 76 only. If the preconditions do not
// hold, the result is unspecified: DecodeFast may return wrong
// data without an error, or ErrUnknown.
//
//    src := []byte("Zm9v\r\nYmFy")
//    Decode(src)     // "foobar", nil
//    DecodeFast(src) // unspecified
//
// Use Decode for anything that did not come from Encode.
package base64

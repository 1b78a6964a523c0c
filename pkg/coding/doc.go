// Package coding implements the endian-neutral integer and byte-string
// encodings used by VanirDB's on-disk and in-memory formats.
//
// # Wire Formats
//
// Three formats are provided, and each must be reproduced exactly for
// compatibility with existing data:
//
//   - Fixed32 / Fixed64: unsigned integers serialized least-significant byte
//     first, always 4 or 8 bytes, no padding. Decoding yields the same value
//     on any host regardless of native byte order.
//
//   - Varint32 / Varint64: unsigned integers split into 7-bit groups,
//     least-significant group first. Each encoded byte carries 7 value bits
//     in its low bits; bit 7 is set when more bytes follow and clear on the
//     final byte. Zero encodes as a single zero byte. The encoding of a
//     32-bit value is at most 5 bytes, of a 64-bit value at most 10.
//
//   - Length-prefixed byte string: varint32(length) followed by exactly
//     length raw bytes.
//
// # Append and Consume
//
// The Put functions append an encoding to a growing []byte and return the
// extended slice, in the append() style:
//
//	buf = coding.PutVarint32(buf, uint32(len(key)))
//	buf = coding.PutLengthPrefixedSlice(buf, span.New(key))
//
// The Get functions parse from the front of a *span.Span and advance it past
// the consumed bytes, so successive calls walk a packed buffer:
//
//	in := span.New(buf)
//	n, ok := coding.GetVarint32(&in)
//	key, ok2 := coding.GetLengthPrefixedSlice(&in)
//
// On failure the Get functions report false and leave the span unmodified;
// callers that need to propagate the failure typically translate it into a
// status.Corruption.
//
// # Failure Convention
//
// The low-level Decode functions return (value, bytesConsumed) where a
// consumed count of zero means the input was truncated before the terminator
// byte, or the terminator did not appear within the maximum encoded length
// for the integer width. Decode failures carry no message; they are a signal
// to the immediate caller only.
package coding

package coding

import (
	"encoding/binary"

	"github.com/vanirdb/vanir/pkg/span"
)

const (
	// MaxVarint32Len is the maximum number of bytes a varint32 occupies.
	MaxVarint32Len = 5

	// MaxVarint64Len is the maximum number of bytes a varint64 occupies.
	MaxVarint64Len = 10
)

// EncodeFixed32 writes v into dst[0:4], least-significant byte first.
// REQUIRES: len(dst) >= 4.
func EncodeFixed32(dst []byte, v uint32) {
	binary.LittleEndian.PutUint32(dst, v)
}

// EncodeFixed64 writes v into dst[0:8], least-significant byte first.
// REQUIRES: len(dst) >= 8.
func EncodeFixed64(dst []byte, v uint64) {
	binary.LittleEndian.PutUint64(dst, v)
}

// DecodeFixed32 reads a little-endian uint32 from b[0:4].
// REQUIRES: len(b) >= 4.
func DecodeFixed32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// DecodeFixed64 reads a little-endian uint64 from b[0:8].
// REQUIRES: len(b) >= 8.
func DecodeFixed64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// PutFixed32 appends the 4-byte encoding of v to dst.
func PutFixed32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

// PutFixed64 appends the 8-byte encoding of v to dst.
func PutFixed64(dst []byte, v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return append(dst, buf[:]...)
}

// PutVarint32 appends the varint encoding of v to dst.
func PutVarint32(dst []byte, v uint32) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// PutVarint64 appends the varint encoding of v to dst.
func PutVarint64(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// VarintLength returns the number of bytes the varint encoding of v
// occupies, without encoding. The minimum is 1; a zero value encodes as a
// single zero byte.
func VarintLength(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// DecodeVarint32 decodes a varint32 from the front of b. It returns the
// value and the number of bytes consumed; n == 0 means b is truncated before
// the terminator or the terminator does not appear within MaxVarint32Len
// bytes. Values 0..127 dominate in practice, so the single-byte case is
// short-circuited ahead of the general loop.
func DecodeVarint32(b []byte) (v uint32, n int) {
	if len(b) > 0 && b[0] < 0x80 {
		return uint32(b[0]), 1
	}
	return decodeVarint32Slow(b)
}

func decodeVarint32Slow(b []byte) (uint32, int) {
	var v uint32
	for i, shift := 0, uint(0); i < len(b) && shift < MaxVarint32Len*7; i, shift = i+1, shift+7 {
		c := b[i]
		v |= uint32(c&0x7f) << shift
		if c < 0x80 {
			return v, i + 1
		}
	}
	return 0, 0
}

// DecodeVarint64 decodes a varint64 from the front of b. Same conventions as
// DecodeVarint32, with a bound of MaxVarint64Len bytes.
func DecodeVarint64(b []byte) (v uint64, n int) {
	if len(b) > 0 && b[0] < 0x80 {
		return uint64(b[0]), 1
	}
	return decodeVarint64Slow(b)
}

func decodeVarint64Slow(b []byte) (uint64, int) {
	var v uint64
	for i, shift := 0, uint(0); i < len(b) && shift < MaxVarint64Len*7; i, shift = i+1, shift+7 {
		c := b[i]
		v |= uint64(c&0x7f) << shift
		if c < 0x80 {
			return v, i + 1
		}
	}
	return 0, 0
}

// GetVarint32 decodes a varint32 from the front of input and advances input
// past the consumed bytes. On failure it reports false and leaves input
// unmodified.
func GetVarint32(input *span.Span) (uint32, bool) {
	v, n := DecodeVarint32(input.Data())
	if n == 0 {
		return 0, false
	}
	input.RemovePrefix(n)
	return v, true
}

// GetVarint64 decodes a varint64 from the front of input and advances input
// past the consumed bytes. On failure it reports false and leaves input
// unmodified.
func GetVarint64(input *span.Span) (uint64, bool) {
	v, n := DecodeVarint64(input.Data())
	if n == 0 {
		return 0, false
	}
	input.RemovePrefix(n)
	return v, true
}

// PutLengthPrefixedSlice appends varint32(value.Size()) followed by value's
// raw bytes to dst.
func PutLengthPrefixedSlice(dst []byte, value span.Span) []byte {
	dst = PutVarint32(dst, uint32(value.Size()))
	return append(dst, value.Data()...)
}

// GetLengthPrefixedSlice reads a varint32 length from the front of input and,
// if at least that many bytes remain, returns a Span over exactly those bytes
// and advances input past them. On failure (undecodable length, or fewer
// remaining bytes than the decoded length) it reports false and leaves input
// unmodified. The result borrows input's referent; no bytes are copied.
func GetLengthPrefixedSlice(input *span.Span) (span.Span, bool) {
	b := input.Data()
	l, n := DecodeVarint32(b)
	if n == 0 || uint64(len(b)-n) < uint64(l) {
		return span.Span{}, false
	}
	result := span.New(b[n : n+int(l)])
	input.RemovePrefix(n + int(l))
	return result, true
}

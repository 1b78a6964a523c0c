// Package span provides a non-owning view over a contiguous byte range.
//
// A Span is a borrowed (address, length) pair into storage owned by someone
// else: the referent must outlive every Span derived from it, and dropping a
// Span has no effect on the referent. Spans are the unit of zero-copy parsing
// in VanirDB — decoders consume a Span in place by advancing its front rather
// than copying bytes.
//
// Multiple goroutines may call read-only methods on a shared Span without
// synchronization. RemovePrefix and Clear mutate the view and require
// exclusive access for the duration of the call.
package span

import "bytes"

// Span is a read view over externally owned bytes.
type Span struct {
	data []byte
}

// New returns a Span viewing b. The Span borrows b and never copies; callers
// that need a sub-range pass the sub-slice (b[off : off+n]).
func New(b []byte) Span {
	return Span{data: b}
}

// FromString returns a Span over the bytes of s.
func FromString(s string) Span {
	return Span{data: []byte(s)}
}

// FromCString returns a Span over b up to but excluding the first NUL byte.
// If b contains no NUL, the whole of b is viewed.
func FromCString(b []byte) Span {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return Span{data: b[:i]}
	}
	return Span{data: b}
}

// Data returns the viewed bytes. The result aliases the referent; callers
// must not mutate it while any derived Span is live.
func (s Span) Data() []byte {
	return s.data
}

// Size returns the number of viewed bytes.
func (s Span) Size() int {
	return len(s.data)
}

// Empty reports whether the view has zero length.
func (s Span) Empty() bool {
	return len(s.data) == 0
}

// At returns the i-th viewed byte.
// REQUIRES: i < Size(). Violations panic.
func (s Span) At(i int) byte {
	return s.data[i]
}

// Clear resets the Span to a zero-length view. The referent is unaffected.
func (s *Span) Clear() {
	s.data = nil
}

// RemovePrefix advances the view past the first n bytes. This is the core
// parsing primitive: decoders call it after extracting each value.
// REQUIRES: n <= Size(). Violations panic.
func (s *Span) RemovePrefix(n int) {
	s.data = s.data[n:]
}

// String returns an owned copy of the viewed bytes. The copy remains valid
// after the referent is gone.
func (s Span) String() string {
	return string(s.data)
}

// Compare three-way compares s against b in lexicographic byte order.
// It returns a negative value if s < b, zero if equal, positive if s > b;
// when one span is a prefix of the other, the shorter compares less.
func (s Span) Compare(b Span) int {
	return bytes.Compare(s.data, b.data)
}

// Equal reports whether s and b view identical bytes. Equality is by length
// and content, never by address.
func (s Span) Equal(b Span) bool {
	return bytes.Equal(s.data, b.data)
}

// StartsWith reports whether prefix is a prefix of s.
func (s Span) StartsWith(prefix Span) bool {
	return bytes.HasPrefix(s.data, prefix.data)
}

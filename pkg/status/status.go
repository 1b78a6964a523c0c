// Package status provides the result value returned by fallible VanirDB
// operations. A Status is either success, carrying nothing, or one of five
// error kinds carrying a human-readable message. It is propagated by return
// value through arbitrarily many layers without loss of information.
package status

import (
	"fmt"

	"github.com/vanirdb/vanir/pkg/coding"
	"github.com/vanirdb/vanir/pkg/span"
)

type code byte

const (
	codeOK code = iota
	codeNotFound
	codeCorruption
	codeNotSupported
	codeInvalidArgument
	codeIOError
)

// Status encapsulates the result of an operation. The zero value is success.
//
// A Status is immutable once constructed. Read-only methods on a shared
// Status are safe for concurrent use; plain assignment shares the underlying
// buffer, which is safe for the same reason, and Clone gives an independent
// copy when one is wanted.
type Status struct {
	// nil for success. Otherwise a single packed buffer:
	//   state[0:4]  little-endian length of the message
	//   state[4]    code
	//   state[5:]   message bytes
	state []byte
}

// OK returns a success Status. No allocation.
func OK() Status {
	return Status{}
}

// NotFound returns a Status reporting that a resource does not exist.
func NotFound(msg, msg2 span.Span) Status {
	return newStatus(codeNotFound, msg, msg2)
}

// Corruption returns a Status reporting detected on-disk or format
// corruption.
func Corruption(msg, msg2 span.Span) Status {
	return newStatus(codeCorruption, msg, msg2)
}

// NotSupported returns a Status reporting an unsupported capability or
// request.
func NotSupported(msg, msg2 span.Span) Status {
	return newStatus(codeNotSupported, msg, msg2)
}

// InvalidArgument returns a Status reporting a caller-supplied argument that
// fails validation.
func InvalidArgument(msg, msg2 span.Span) Status {
	return newStatus(codeInvalidArgument, msg, msg2)
}

// IOError returns a Status reporting an I/O failure at the storage boundary.
func IOError(msg, msg2 span.Span) Status {
	return newStatus(codeIOError, msg, msg2)
}

// newStatus packs code and message into one allocation. The message is msg,
// followed by ": " and msg2 when msg2 is non-empty.
func newStatus(c code, msg, msg2 span.Span) Status {
	n := msg.Size()
	if !msg2.Empty() {
		n += 2 + msg2.Size()
	}
	state := make([]byte, 5+n)
	coding.EncodeFixed32(state, uint32(n))
	state[4] = byte(c)
	copy(state[5:], msg.Data())
	if !msg2.Empty() {
		state[5+msg.Size()] = ':'
		state[6+msg.Size()] = ' '
		copy(state[7+msg.Size():], msg2.Data())
	}
	return Status{state: state}
}

func (s Status) code() code {
	if s.state == nil {
		return codeOK
	}
	return code(s.state[4])
}

// OK reports whether the Status indicates success.
func (s Status) OK() bool {
	return s.state == nil
}

// IsNotFound reports whether the Status indicates a NotFound error.
func (s Status) IsNotFound() bool {
	return s.code() == codeNotFound
}

// IsCorruption reports whether the Status indicates a Corruption error.
func (s Status) IsCorruption() bool {
	return s.code() == codeCorruption
}

// IsNotSupported reports whether the Status indicates a NotSupported error.
func (s Status) IsNotSupported() bool {
	return s.code() == codeNotSupported
}

// IsInvalidArgument reports whether the Status indicates an InvalidArgument
// error.
func (s Status) IsInvalidArgument() bool {
	return s.code() == codeInvalidArgument
}

// IsIOError reports whether the Status indicates an IOError.
func (s Status) IsIOError() bool {
	return s.code() == codeIOError
}

// String renders the Status for printing: "OK" for success, otherwise the
// kind name followed by ": " and the message.
func (s Status) String() string {
	if s.state == nil {
		return "OK"
	}
	var kind string
	switch s.code() {
	case codeNotFound:
		kind = "NotFound: "
	case codeCorruption:
		kind = "Corruption: "
	case codeNotSupported:
		kind = "Not implemented: "
	case codeInvalidArgument:
		kind = "Invalid argument: "
	case codeIOError:
		kind = "IO error: "
	default:
		kind = fmt.Sprintf("Unknown code(%d): ", s.code())
	}
	n := coding.DecodeFixed32(s.state)
	return kind + string(s.state[5:5+n])
}

// Clone returns a Status with its own copy of the packed buffer. Plain
// assignment shares the buffer instead, which is safe because the buffer is
// never mutated after construction.
func (s Status) Clone() Status {
	if s.state == nil {
		return Status{}
	}
	state := make([]byte, len(s.state))
	copy(state, s.state)
	return Status{state: state}
}

//go:build bench
// +build bench

package coding

import (
	"testing"

	"github.com/vanirdb/vanir/pkg/span"
)

var (
	benchUint32 uint32
	benchUint64 uint64
	benchBytes  []byte
)

func BenchmarkPutVarint32(b *testing.B) {
	benchmarks := []struct {
		name string
		v    uint32
	}{
		{"1byte", 100},
		{"3byte", 1 << 20},
		{"5byte", 1 << 31},
	}
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			buf := make([]byte, 0, MaxVarint32Len)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchBytes = PutVarint32(buf[:0], bm.v)
			}
		})
	}
}

func BenchmarkDecodeVarint32(b *testing.B) {
	benchmarks := []struct {
		name string
		v    uint32
	}{
		{"fastpath", 100},
		{"3byte", 1 << 20},
		{"5byte", 1 << 31},
	}
	for _, bm := range benchmarks {
		buf := PutVarint32(nil, bm.v)
		b.Run(bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchUint32, _ = DecodeVarint32(buf)
			}
		})
	}
}

func BenchmarkDecodeVarint64(b *testing.B) {
	buf := PutVarint64(nil, ^uint64(0))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchUint64, _ = DecodeVarint64(buf)
	}
}

func BenchmarkGetLengthPrefixedSlice(b *testing.B) {
	payload := make([]byte, 1024)
	buf := PutLengthPrefixedSlice(nil, span.New(payload))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in := span.New(buf)
		s, ok := GetLengthPrefixedSlice(&in)
		if !ok {
			b.Fatal("decode failed")
		}
		benchBytes = s.Data()
	}
}

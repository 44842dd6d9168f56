// Package strheap implements the dialect's string storage: a single
// growing byte arena addressed by 16-bit offsets, the representation
// spec.md §3 assigns to the String scalar (1-byte length, 2-byte
// pointer). Modeled on the code/data segment arrays of
// gmofishsauce-wut4's assembler (asm/types.go, asm/assembler.go):
// pre-sized backing slices that only ever grow by append.
package strheap

import "errors"

// ErrTooLong reports a string whose length exceeds what the 1-byte
// length field can hold (spec.md §3: 0..255).
var ErrTooLong = errors.New("string too long")

// Heap is an append-only byte arena. Entries are never freed
// individually; spec.md's Non-goals exclude garbage collection, so the
// whole arena is reclaimed only when the owning program is cleared.
type Heap struct {
	bytes []byte
}

// NewHeap returns an empty heap with room for a modest program's worth
// of string literals and temporaries before its first growth.
func NewHeap() *Heap {
	return &Heap{bytes: make([]byte, 0, 4096)}
}

// Alloc copies data into the arena and returns its offset. The offset
// together with len(data) is what a String scalar stores. ErrTooLong is
// also returned when data would not fit below the 16-bit offset limit.
func (h *Heap) Alloc(data []byte) (uint16, error) {
	if len(data) > 255 {
		return 0, ErrTooLong
	}
	if len(h.bytes) > 0xFFFF-len(data) {
		return 0, ErrTooLong
	}
	ptr := uint16(len(h.bytes))
	h.bytes = append(h.bytes, data...)
	return ptr, nil
}

// Read returns a view onto the n bytes stored at ptr. The returned
// slice aliases the heap; callers that need to keep it past the next
// Alloc must copy it.
func (h *Heap) Read(ptr uint16, n byte) []byte {
	return h.bytes[int(ptr) : int(ptr)+int(n)]
}

// Len reports the arena's current size, for diagnostics only.
func (h *Heap) Len() int { return len(h.bytes) }

package axis

import (
	"fmt"
	"unsafe"
)

// MaxEffectSize is the maximum in-memory footprint, in bytes, of a concrete
// effect that can be stored in an [Inline] handle.
const MaxEffectSize = 16

// Effect is the capability every chain stage implements: consume the current
// 16-bit value and produce the next one, retaining private state across
// calls. Implementations must be deterministic given their state and input
// and must not allocate in Update.
type Effect interface {
	Update(input uint16) uint16
}

// inlineBuf holds a wrapped effect's byte representation. The zero-width
// uint64 field pins the buffer to the platform's widest scalar alignment so
// a concrete effect stored at offset 0 is always suitably aligned.
type inlineBuf struct {
	_    [0]uint64
	data [MaxEffectSize]byte
}

// Inline is a fixed-size, heap-free container for any [Effect] whose
// footprint fits [MaxEffectSize]. It carries no type parameter: handles
// wrapping different concrete effects are interchangeable in one []Inline.
//
// The handle exclusively owns the wrapped value's bytes. It is freely
// copyable, but a copy forks the wrapped effect's state along with it.
type Inline struct {
	buf    inlineBuf
	update func(buf *inlineBuf, input uint16) uint16
}

// Wrap stores effect inline in a new handle together with a dispatch
// function bound to the concrete type.
//
// Wrap panics if the effect's size exceeds [MaxEffectSize] or its alignment
// requirement exceeds the internal buffer's guaranteed alignment. Both are
// construction-time programming errors (a build/config mismatch), not
// runtime conditions, and are never raised per call.
//
// The wrapped value must not contain pointers: the buffer is opaque to the
// garbage collector.
func Wrap[T any, P interface {
	*T
	Effect
}](effect T) Inline {
	size := unsafe.Sizeof(effect)
	if size > MaxEffectSize {
		panic(fmt.Sprintf("axis: effect size is %d bytes, more than the %d bytes allowed", size, MaxEffectSize))
	}

	var h Inline

	align := unsafe.Alignof(effect)
	if bufAlign := unsafe.Alignof(h.buf); align > bufAlign {
		panic(fmt.Sprintf("axis: effect alignment is %d bytes, more than the %d bytes guaranteed", align, bufAlign))
	}

	*(*T)(unsafe.Pointer(&h.buf.data)) = effect
	h.update = func(buf *inlineBuf, input uint16) uint16 {
		return P((*T)(unsafe.Pointer(&buf.data))).Update(input)
	}

	return h
}

// Update reinterprets the internal buffer as the wrapped concrete effect and
// invokes its Update, mutating the buffer in place. This is the only code
// path that ever interprets the buffer's bytes.
func (h *Inline) Update(input uint16) uint16 {
	return h.update(&h.buf, input)
}

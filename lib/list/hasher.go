//go:build go1.22
// +build go1.22

package list

import (
	randv2 "math/rand/v2"
	"unsafe"
)

type hashFn func(unsafe.Pointer, uintptr) uintptr

// Copy from go1.22.1
// go/src/internal/abi/type.go
type _mapType struct {
	_      [9]uint64                             // go/src/internal/abi/type.go Type: size 48, 6 bytes; key, elem, bucket: size 8 * 3, 3 bytes
	hasher func(unsafe.Pointer, uintptr) uintptr // function for hashing keys (ptr to key, seed) -> hash
	_      uint64                                // key size, value size, bucket size, flags
}

type _mapIface struct {
	typ *_mapType
	_   uint64 // go/src/runtime/map.go, hmap pointer, size 8, 1 byte
}

//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}

// One seed per process. All chains over the same element type produce the
// same digests, otherwise two independently built equal lists would
// disagree on their hashes.
var chainHashSeed = uintptr(randv2.Int())

// chainHasher digests one element through the runtime map hasher of its
// type, so every comparable element type works without a user supplied
// hash function.
type chainHasher[E comparable] struct {
	hash hashFn
	seed uintptr
}

func (h chainHasher[E]) digest(v E) uint64 {
	// Promise the value no escapes to the heap.
	p := noescape(unsafe.Pointer(&v))
	return uint64(h.hash(p, h.seed))
}

func runtimeHasherOf[E comparable]() (fn hashFn) {
	i := (any)(make(map[E]struct{}))
	iface := (*_mapIface)(unsafe.Pointer(&i))
	fn = iface.typ.hasher
	return
}

func newChainHasher[E comparable]() chainHasher[E] {
	return chainHasher[E]{
		hash: runtimeHasherOf[E](),
		seed: chainHashSeed,
	}
}

// Package ref holds the pointer indirection samples: an int passed by
// reference, and void pointers reached through one, two or three levels.
package ref

import (
	"unsafe"
)

// -----------------------------------------------------------------------------

// IncrementRef adds one to the pointee. Overflow wraps.
func IncrementRef(value *int32) {
	*value++
}

// DecrementRef subtracts one from the pointee. Overflow wraps.
func DecrementRef(value *int32) {
	*value--
}

func AccessRef(value *int32) int32 {
	return *value
}

// -----------------------------------------------------------------------------

// AccessSuperRef returns the pointer stored at pointerToPointer.
func AccessSuperRef(pointerToPointer *unsafe.Pointer) unsafe.Pointer {
	return *pointerToPointer
}

// AccessSuperSuperRef follows two levels of indirection.
func AccessSuperSuperRef(arg **unsafe.Pointer) unsafe.Pointer {
	return *(*arg)
}

// ReturnSuperRef returns its argument unchanged, erased to a plain pointer.
func ReturnSuperRef(pointerToPointer *unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(pointerToPointer)
}

// -----------------------------------------------------------------------------

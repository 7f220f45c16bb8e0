package ref

import (
	"math"
	"testing"
	"unsafe"
)

func TestIncrementDecrement(t *testing.T) {
	v := int32(41)
	IncrementRef(&v)
	if v != 42 {
		t.Fatal("IncrementRef:", v)
	}
	DecrementRef(&v)
	DecrementRef(&v)
	if v != 40 {
		t.Fatal("DecrementRef:", v)
	}
	if ret := AccessRef(&v); ret != 40 {
		t.Fatal("AccessRef:", ret)
	}
}

func TestWrap(t *testing.T) {
	v := int32(math.MaxInt32)
	IncrementRef(&v)
	if v != math.MinInt32 {
		t.Fatal("IncrementRef overflow:", v)
	}
	DecrementRef(&v)
	if v != math.MaxInt32 {
		t.Fatal("DecrementRef underflow:", v)
	}
}

func TestSuperRef(t *testing.T) {
	cell := int32(7)
	p := unsafe.Pointer(&cell)
	pp := &p
	ppp := &pp

	if ret := AccessSuperRef(pp); ret != p {
		t.Fatal("AccessSuperRef:", ret, p)
	}
	if ret := AccessSuperSuperRef(ppp); ret != p {
		t.Fatal("AccessSuperSuperRef:", ret, p)
	}
	ret := ReturnSuperRef(pp)
	if ret != unsafe.Pointer(pp) {
		t.Fatal("ReturnSuperRef:", ret, pp)
	}
	if v := *(*int32)(*(*unsafe.Pointer)(ret)); v != 7 {
		t.Fatal("ReturnSuperRef deref:", v)
	}
}

func TestSuperRefNil(t *testing.T) {
	var p unsafe.Pointer
	if ret := AccessSuperRef(&p); ret != nil {
		t.Fatal("AccessSuperRef nil:", ret)
	}
}

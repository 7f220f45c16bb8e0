//go:build cgo

package main

/*
typedef struct
{
    float x;
    float y;
} Vector2F;

typedef struct
{
    float x;
    float y;
    float z;
} Vector3F;

typedef struct
{
    float x;
    float y;
    float z;
    float w;
} Vector4F;
*/
import "C"

import (
	"unsafe"

	"github.com/goplus/nativesamples/samples/generic"
	"github.com/goplus/nativesamples/samples/ref"
	"github.com/goplus/nativesamples/samples/switchcase"
	"github.com/goplus/nativesamples/samples/vector"
)

// -----------------------------------------------------------------------------
// ref_parameter

//export incrementRef
func incrementRef(value *C.int) {
	ref.IncrementRef((*int32)(unsafe.Pointer(value)))
}

//export decrementRef
func decrementRef(value *C.int) {
	ref.DecrementRef((*int32)(unsafe.Pointer(value)))
}

//export accessRef
func accessRef(value *C.int) C.int {
	return C.int(ref.AccessRef((*int32)(unsafe.Pointer(value))))
}

//export accessSuperRef
func accessSuperRef(pointerToPointer *unsafe.Pointer) unsafe.Pointer {
	return ref.AccessSuperRef(pointerToPointer)
}

//export accessSuperSuperRef
func accessSuperSuperRef(arg **unsafe.Pointer) unsafe.Pointer {
	return ref.AccessSuperSuperRef(arg)
}

//export returnSuperRef
func returnSuperRef(pointerToPointer *unsafe.Pointer) unsafe.Pointer {
	return ref.ReturnSuperRef(pointerToPointer)
}

// -----------------------------------------------------------------------------
// switch_statement

//export fake_fibonacci
func fake_fibonacci(value C.int) C.int {
	return C.int(switchcase.FakeFibonacci(int32(value)))
}

//export switch_with_holes
func switch_with_holes(value C.int) C.int {
	return C.int(switchcase.SwitchWithHoles(int32(value)))
}

// -----------------------------------------------------------------------------
// template_addition_function

//export addInt
func addInt(a, b C.int) C.int {
	return C.int(generic.AddInt(int32(a), int32(b)))
}

//export addDouble
func addDouble(a, b C.double) C.double {
	return C.double(generic.AddDouble(float64(a), float64(b)))
}

// -----------------------------------------------------------------------------
// vector2_addition

func goVector2F(v C.Vector2F) vector.Vector2F {
	return vector.Vector2F{X: float32(v.x), Y: float32(v.y)}
}

func cVector2F(v vector.Vector2F) C.Vector2F {
	return C.Vector2F{x: C.float(v.X), y: C.float(v.Y)}
}

//export vector2f_add
func vector2f_add(left, right C.Vector2F) C.Vector2F {
	return cVector2F(vector.Vector2FAdd(goVector2F(left), goVector2F(right)))
}

// The C and Go structs share a layout, so pointers convert directly.

//export vector2f_pointer_add
func vector2f_pointer_add(left, right *C.Vector2F) C.Vector2F {
	return cVector2F(vector.Vector2FPointerAdd(
		(*vector.Vector2F)(unsafe.Pointer(left)), (*vector.Vector2F)(unsafe.Pointer(right))))
}

//export vector2f_add_3
func vector2f_add_3(v1, v2, v3 C.Vector2F) C.Vector2F {
	return cVector2F(vector.Vector2FAdd3(goVector2F(v1), goVector2F(v2), goVector2F(v3)))
}

//export vector2f_add_4
func vector2f_add_4(v1, v2, v3, v4 C.Vector2F) C.Vector2F {
	return cVector2F(vector.Vector2FAdd4(goVector2F(v1), goVector2F(v2), goVector2F(v3), goVector2F(v4)))
}

//export vector2f_add_5
func vector2f_add_5(v1, v2, v3, v4, v5 C.Vector2F) C.Vector2F {
	return cVector2F(vector.Vector2FAdd5(
		goVector2F(v1), goVector2F(v2), goVector2F(v3), goVector2F(v4), goVector2F(v5)))
}

// -----------------------------------------------------------------------------
// vector3_addition

func goVector3F(v C.Vector3F) vector.Vector3F {
	return vector.Vector3F{X: float32(v.x), Y: float32(v.y), Z: float32(v.z)}
}

func cVector3F(v vector.Vector3F) C.Vector3F {
	return C.Vector3F{x: C.float(v.X), y: C.float(v.Y), z: C.float(v.Z)}
}

//export vector3f_add
func vector3f_add(left, right C.Vector3F) C.Vector3F {
	return cVector3F(vector.Vector3FAdd(goVector3F(left), goVector3F(right)))
}

//export vector3f_pointer_add
func vector3f_pointer_add(left, right *C.Vector3F) C.Vector3F {
	return cVector3F(vector.Vector3FPointerAdd(
		(*vector.Vector3F)(unsafe.Pointer(left)), (*vector.Vector3F)(unsafe.Pointer(right))))
}

//export Vector3F_add_3
func Vector3F_add_3(v1, v2, v3 C.Vector3F) C.Vector3F {
	return cVector3F(vector.Vector3FAdd3(goVector3F(v1), goVector3F(v2), goVector3F(v3)))
}

//export Vector3F_add_4
func Vector3F_add_4(v1, v2, v3, v4 C.Vector3F) C.Vector3F {
	return cVector3F(vector.Vector3FAdd4(goVector3F(v1), goVector3F(v2), goVector3F(v3), goVector3F(v4)))
}

//export Vector3F_add_5
func Vector3F_add_5(v1, v2, v3, v4, v5 C.Vector3F) C.Vector3F {
	return cVector3F(vector.Vector3FAdd5(
		goVector3F(v1), goVector3F(v2), goVector3F(v3), goVector3F(v4), goVector3F(v5)))
}

// -----------------------------------------------------------------------------
// vector4_addition

func goVector4F(v C.Vector4F) vector.Vector4F {
	return vector.Vector4F{X: float32(v.x), Y: float32(v.y), Z: float32(v.z), W: float32(v.w)}
}

func cVector4F(v vector.Vector4F) C.Vector4F {
	return C.Vector4F{x: C.float(v.X), y: C.float(v.Y), z: C.float(v.Z), w: C.float(v.W)}
}

//export vector4f_add
func vector4f_add(left, right C.Vector4F) C.Vector4F {
	return cVector4F(vector.Vector4FAdd(goVector4F(left), goVector4F(right)))
}

//export vector4f_pointer_add
func vector4f_pointer_add(left, right *C.Vector4F) C.Vector4F {
	return cVector4F(vector.Vector4FPointerAdd(
		(*vector.Vector4F)(unsafe.Pointer(left)), (*vector.Vector4F)(unsafe.Pointer(right))))
}

//export Vector4F_add_3
func Vector4F_add_3(v1, v2, v3 C.Vector4F) C.Vector4F {
	return cVector4F(vector.Vector4FAdd3(goVector4F(v1), goVector4F(v2), goVector4F(v3)))
}

//export Vector4F_add_4
func Vector4F_add_4(v1, v2, v3, v4 C.Vector4F) C.Vector4F {
	return cVector4F(vector.Vector4FAdd4(goVector4F(v1), goVector4F(v2), goVector4F(v3), goVector4F(v4)))
}

//export Vector4F_add_5
func Vector4F_add_5(v1, v2, v3, v4, v5 C.Vector4F) C.Vector4F {
	return cVector4F(vector.Vector4FAdd5(
		goVector4F(v1), goVector4F(v2), goVector4F(v3), goVector4F(v4), goVector4F(v5)))
}

//export vector4f_negate
func vector4f_negate(value C.Vector4F) C.Vector4F {
	return cVector4F(vector.Vector4FNegate(goVector4F(value)))
}

// -----------------------------------------------------------------------------

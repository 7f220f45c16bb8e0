/*
 * Copyright (c) 2024 The GoPlus Authors (goplus.org). All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package nativesamples catalogs the native sample functions exported by
// ./capi. Each entry records the C prototype, the Go function behind it
// and an invoker that takes textual arguments, so the samples can be
// driven from fixtures and from the command line.
package nativesamples

import (
	"strconv"
	"strings"
	"unsafe"

	"github.com/goplus/nativesamples/samples/generic"
	"github.com/goplus/nativesamples/samples/ref"
	"github.com/goplus/nativesamples/samples/switchcase"
	"github.com/goplus/nativesamples/samples/vector"
	"github.com/qiniu/x/errors"
)

const (
	ModPath = "github.com/goplus/nativesamples"

	pkgRef        = ModPath + "/samples/ref"
	pkgSwitchcase = ModPath + "/samples/switchcase"
	pkgGeneric    = ModPath + "/samples/generic"
	pkgVector     = ModPath + "/samples/vector"
)

// Sample groups, named after the native source file each one mirrors.
const (
	SampleRef      = "ref_parameter"
	SampleSwitch   = "switch_statement"
	SampleTemplate = "template_addition_function"
	SampleVector2  = "vector2_addition"
	SampleVector3  = "vector3_addition"
	SampleVector4  = "vector4_addition"
)

var (
	ErrUnknownFunc = errors.New("unknown function")
	ErrArgCount    = errors.New("wrong number of arguments")
	ErrBadPointer  = errors.New("pointer does not resolve to its cell")
)

// CallError reports a failed invocation of a catalog entry.
type CallError struct {
	Func string
	Err  error
}

func (p *CallError) Error() string {
	return p.Func + ": " + p.Err.Error()
}

func (p *CallError) Unwrap() error {
	return p.Err
}

// -----------------------------------------------------------------------------

type Param struct {
	Name string
	Type Type
}

type invoker = func(args []string) (string, error)

// Entry describes one function exported with C linkage.
type Entry struct {
	Name   string // C symbol
	Sample string // sample group
	Pkg    string // Go package path
	Func   string // Go function name
	Params []Param
	Result Type

	// Observed is the type of the value Call reports. It differs from
	// Result when the interesting value is written through a pointer.
	Observed Type

	call invoker
}

// Prototype returns the C declaration of e, without the trailing semicolon.
func (e *Entry) Prototype() string {
	var b strings.Builder
	b.WriteString(e.Result.CString())
	b.WriteByte(' ')
	b.WriteString(e.Name)
	b.WriteByte('(')
	for i, p := range e.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Type.CString())
		b.WriteByte(' ')
		b.WriteString(p.Name)
	}
	b.WriteByte(')')
	return b.String()
}

// Call invokes the Go implementation of e. Arguments are parsed according
// to the parameter types; pointer parameters take the pointee's value.
func (e *Entry) Call(args ...string) (string, error) {
	if len(args) != len(e.Params) {
		return "", &CallError{Func: e.Name, Err: errors.NewWith(
			ErrArgCount, `len(args) != len(e.Params)`, -2, "(*nativesamples.Entry).Call", len(args), len(e.Params))}
	}
	ret, err := e.call(args)
	if err != nil {
		return "", &CallError{Func: e.Name, Err: err}
	}
	return ret, nil
}

// -----------------------------------------------------------------------------

var (
	entries []*Entry
	byName  map[string]*Entry
)

func init() {
	entries = buildEntries()
	byName = make(map[string]*Entry, len(entries))
	for _, e := range entries {
		if e.Observed == (Type{}) {
			e.Observed = e.Result
		}
		byName[e.Name] = e
	}
}

// Entries returns all exported functions in declaration order.
func Entries() []*Entry {
	return entries
}

// Lookup finds an entry by its C symbol.
func Lookup(name string) (e *Entry, ok bool) {
	e, ok = byName[name]
	return
}

// Samples returns the sample groups in declaration order.
func Samples() []string {
	var ret []string
	for _, e := range entries {
		if n := len(ret); n == 0 || ret[n-1] != e.Sample {
			ret = append(ret, e.Sample)
		}
	}
	return ret
}

// Call invokes the function exported as name.
func Call(name string, args ...string) (string, error) {
	e, ok := byName[name]
	if !ok {
		return "", &CallError{Func: name, Err: ErrUnknownFunc}
	}
	return e.Call(args...)
}

// -----------------------------------------------------------------------------

func params(t Type, names ...string) []Param {
	ret := make([]Param, len(names))
	for i, name := range names {
		ret[i] = Param{Name: name, Type: t}
	}
	return ret
}

func buildEntries() []*Entry {
	tyIntPtr := PtrTo(TyInt)
	tyVoidPtr := PtrTo(TyVoid)
	tyVoidPtr2 := PtrTo(tyVoidPtr)
	tyVoidPtr3 := PtrTo(tyVoidPtr2)
	v := func(n int) []string {
		names := make([]string, n)
		for i := range names {
			names[i] = "v" + strconv.Itoa(i+1)
		}
		return names
	}
	return []*Entry{
		{Name: "incrementRef", Sample: SampleRef, Pkg: pkgRef, Func: "IncrementRef",
			Params: params(tyIntPtr, "value"), Result: TyVoid, Observed: TyInt,
			call: withIntRef(ref.IncrementRef)},
		{Name: "decrementRef", Sample: SampleRef, Pkg: pkgRef, Func: "DecrementRef",
			Params: params(tyIntPtr, "value"), Result: TyVoid, Observed: TyInt,
			call: withIntRef(ref.DecrementRef)},
		{Name: "accessRef", Sample: SampleRef, Pkg: pkgRef, Func: "AccessRef",
			Params: params(tyIntPtr, "value"), Result: TyInt,
			call: call1(cInt, cInt, func(v int32) int32 { return ref.AccessRef(&v) })},
		{Name: "accessSuperRef", Sample: SampleRef, Pkg: pkgRef, Func: "AccessSuperRef",
			Params: params(tyVoidPtr2, "pointerToPointer"), Result: tyVoidPtr, Observed: TyInt,
			call: accessSuperRef},
		{Name: "accessSuperSuperRef", Sample: SampleRef, Pkg: pkgRef, Func: "AccessSuperSuperRef",
			Params: params(tyVoidPtr3, "arg"), Result: tyVoidPtr, Observed: TyInt,
			call: accessSuperSuperRef},
		{Name: "returnSuperRef", Sample: SampleRef, Pkg: pkgRef, Func: "ReturnSuperRef",
			Params: params(tyVoidPtr2, "pointerToPointer"), Result: tyVoidPtr, Observed: TyInt,
			call: returnSuperRef},

		{Name: "fake_fibonacci", Sample: SampleSwitch, Pkg: pkgSwitchcase, Func: "FakeFibonacci",
			Params: params(TyInt, "value"), Result: TyInt,
			call: call1(cInt, cInt, switchcase.FakeFibonacci)},
		{Name: "switch_with_holes", Sample: SampleSwitch, Pkg: pkgSwitchcase, Func: "SwitchWithHoles",
			Params: params(TyInt, "value"), Result: TyInt,
			call: call1(cInt, cInt, switchcase.SwitchWithHoles)},

		{Name: "addInt", Sample: SampleTemplate, Pkg: pkgGeneric, Func: "AddInt",
			Params: params(TyInt, "a", "b"), Result: TyInt,
			call: call2(cInt, cInt, generic.AddInt)},
		{Name: "addDouble", Sample: SampleTemplate, Pkg: pkgGeneric, Func: "AddDouble",
			Params: params(TyDouble, "a", "b"), Result: TyDouble,
			call: call2(cDouble, cDouble, generic.AddDouble)},

		{Name: "vector2f_add", Sample: SampleVector2, Pkg: pkgVector, Func: "Vector2FAdd",
			Params: params(TyVector2F, "left", "right"), Result: TyVector2F,
			call: call2(cVector2F, cVector2F, vector.Vector2FAdd)},
		{Name: "vector2f_pointer_add", Sample: SampleVector2, Pkg: pkgVector, Func: "Vector2FPointerAdd",
			Params: params(PtrTo(TyVector2F), "left", "right"), Result: TyVector2F,
			call: call2(cVector2F, cVector2F, func(a, b vector.Vector2F) vector.Vector2F {
				return vector.Vector2FPointerAdd(&a, &b)
			})},
		{Name: "vector2f_add_3", Sample: SampleVector2, Pkg: pkgVector, Func: "Vector2FAdd3",
			Params: params(TyVector2F, v(3)...), Result: TyVector2F,
			call: call3(cVector2F, cVector2F, vector.Vector2FAdd3)},
		{Name: "vector2f_add_4", Sample: SampleVector2, Pkg: pkgVector, Func: "Vector2FAdd4",
			Params: params(TyVector2F, v(4)...), Result: TyVector2F,
			call: call4(cVector2F, cVector2F, vector.Vector2FAdd4)},
		{Name: "vector2f_add_5", Sample: SampleVector2, Pkg: pkgVector, Func: "Vector2FAdd5",
			Params: params(TyVector2F, v(5)...), Result: TyVector2F,
			call: call5(cVector2F, cVector2F, vector.Vector2FAdd5)},

		{Name: "vector3f_add", Sample: SampleVector3, Pkg: pkgVector, Func: "Vector3FAdd",
			Params: params(TyVector3F, "left", "right"), Result: TyVector3F,
			call: call2(cVector3F, cVector3F, vector.Vector3FAdd)},
		{Name: "vector3f_pointer_add", Sample: SampleVector3, Pkg: pkgVector, Func: "Vector3FPointerAdd",
			Params: params(PtrTo(TyVector3F), "left", "right"), Result: TyVector3F,
			call: call2(cVector3F, cVector3F, func(a, b vector.Vector3F) vector.Vector3F {
				return vector.Vector3FPointerAdd(&a, &b)
			})},
		{Name: "Vector3F_add_3", Sample: SampleVector3, Pkg: pkgVector, Func: "Vector3FAdd3",
			Params: params(TyVector3F, v(3)...), Result: TyVector3F,
			call: call3(cVector3F, cVector3F, vector.Vector3FAdd3)},
		{Name: "Vector3F_add_4", Sample: SampleVector3, Pkg: pkgVector, Func: "Vector3FAdd4",
			Params: params(TyVector3F, v(4)...), Result: TyVector3F,
			call: call4(cVector3F, cVector3F, vector.Vector3FAdd4)},
		{Name: "Vector3F_add_5", Sample: SampleVector3, Pkg: pkgVector, Func: "Vector3FAdd5",
			Params: params(TyVector3F, v(5)...), Result: TyVector3F,
			call: call5(cVector3F, cVector3F, vector.Vector3FAdd5)},

		{Name: "vector4f_add", Sample: SampleVector4, Pkg: pkgVector, Func: "Vector4FAdd",
			Params: params(TyVector4F, "left", "right"), Result: TyVector4F,
			call: call2(cVector4F, cVector4F, vector.Vector4FAdd)},
		{Name: "vector4f_pointer_add", Sample: SampleVector4, Pkg: pkgVector, Func: "Vector4FPointerAdd",
			Params: params(PtrTo(TyVector4F), "left", "right"), Result: TyVector4F,
			call: call2(cVector4F, cVector4F, func(a, b vector.Vector4F) vector.Vector4F {
				return vector.Vector4FPointerAdd(&a, &b)
			})},
		{Name: "Vector4F_add_3", Sample: SampleVector4, Pkg: pkgVector, Func: "Vector4FAdd3",
			Params: params(TyVector4F, v(3)...), Result: TyVector4F,
			call: call3(cVector4F, cVector4F, vector.Vector4FAdd3)},
		{Name: "Vector4F_add_4", Sample: SampleVector4, Pkg: pkgVector, Func: "Vector4FAdd4",
			Params: params(TyVector4F, v(4)...), Result: TyVector4F,
			call: call4(cVector4F, cVector4F, vector.Vector4FAdd4)},
		{Name: "Vector4F_add_5", Sample: SampleVector4, Pkg: pkgVector, Func: "Vector4FAdd5",
			Params: params(TyVector4F, v(5)...), Result: TyVector4F,
			call: call5(cVector4F, cVector4F, vector.Vector4FAdd5)},
		{Name: "vector4f_negate", Sample: SampleVector4, Pkg: pkgVector, Func: "Vector4FNegate",
			Params: params(TyVector4F, "value"), Result: TyVector4F,
			call: call1(cVector4F, cVector4F, vector.Vector4FNegate)},
	}
}

// -----------------------------------------------------------------------------

func parseArgs[A any](c codec[A], args []string) ([]A, error) {
	ret := make([]A, len(args))
	for i, arg := range args {
		v, err := c.parse(arg)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

func call1[A, R any](a codec[A], r codec[R], fn func(A) R) invoker {
	return func(args []string) (string, error) {
		x, err := parseArgs(a, args)
		if err != nil {
			return "", err
		}
		return r.format(fn(x[0])), nil
	}
}

func call2[A, R any](a codec[A], r codec[R], fn func(A, A) R) invoker {
	return func(args []string) (string, error) {
		x, err := parseArgs(a, args)
		if err != nil {
			return "", err
		}
		return r.format(fn(x[0], x[1])), nil
	}
}

func call3[A, R any](a codec[A], r codec[R], fn func(A, A, A) R) invoker {
	return func(args []string) (string, error) {
		x, err := parseArgs(a, args)
		if err != nil {
			return "", err
		}
		return r.format(fn(x[0], x[1], x[2])), nil
	}
}

func call4[A, R any](a codec[A], r codec[R], fn func(A, A, A, A) R) invoker {
	return func(args []string) (string, error) {
		x, err := parseArgs(a, args)
		if err != nil {
			return "", err
		}
		return r.format(fn(x[0], x[1], x[2], x[3])), nil
	}
}

func call5[A, R any](a codec[A], r codec[R], fn func(A, A, A, A, A) R) invoker {
	return func(args []string) (string, error) {
		x, err := parseArgs(a, args)
		if err != nil {
			return "", err
		}
		return r.format(fn(x[0], x[1], x[2], x[3], x[4])), nil
	}
}

// withIntRef passes a cell holding the parsed argument and reports the
// cell's value after fn returns.
func withIntRef(fn func(p *int32)) invoker {
	return func(args []string) (string, error) {
		v, err := parseInt(args[0])
		if err != nil {
			return "", err
		}
		fn(&v)
		return formatInt(v), nil
	}
}

// The pointer samples are driven through an int cell holding the parsed
// argument. A resolved pointer must land on the cell, whose value is then
// reported.

func accessSuperRef(args []string) (string, error) {
	v, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	p := unsafe.Pointer(&v)
	ret := ref.AccessSuperRef(&p)
	if ret != p {
		return "", ErrBadPointer
	}
	return formatInt(*(*int32)(ret)), nil
}

func accessSuperSuperRef(args []string) (string, error) {
	v, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	p := unsafe.Pointer(&v)
	pp := &p
	ret := ref.AccessSuperSuperRef(&pp)
	if ret != p {
		return "", ErrBadPointer
	}
	return formatInt(*(*int32)(ret)), nil
}

func returnSuperRef(args []string) (string, error) {
	v, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	p := unsafe.Pointer(&v)
	pp := &p
	ret := ref.ReturnSuperRef(pp)
	if ret != unsafe.Pointer(pp) {
		return "", ErrBadPointer
	}
	return formatInt(*(*int32)(*(*unsafe.Pointer)(ret))), nil
}

// -----------------------------------------------------------------------------

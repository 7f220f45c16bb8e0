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

package nativesamples

import (
	"strings"
)

// -----------------------------------------------------------------------------

// Kind is the base of a C ABI type, before any pointer is applied.
type Kind int

const (
	Void Kind = iota
	Int
	Double
	Vector2F
	Vector3F
	Vector4F
)

var kindNames = [...]string{
	Void:     "void",
	Int:      "int",
	Double:   "double",
	Vector2F: "Vector2F",
	Vector3F: "Vector3F",
	Vector4F: "Vector4F",
}

var kindGoNames = [...]string{
	Int:      "int32",
	Double:   "float64",
	Vector2F: "vector.Vector2F",
	Vector3F: "vector.Vector3F",
	Vector4F: "vector.Vector4F",
}

func (k Kind) String() string {
	return kindNames[k]
}

// IsVector reports whether k is one of the float vector structs.
func (k Kind) IsVector() bool {
	return k >= Vector2F && k <= Vector4F
}

// Dim returns the number of components of a vector kind, 0 otherwise.
func (k Kind) Dim() int {
	if k.IsVector() {
		return int(k-Vector2F) + 2
	}
	return 0
}

// -----------------------------------------------------------------------------

// Type is a C ABI type: a base kind and its pointer depth.
type Type struct {
	Kind Kind
	Ptr  int
}

var (
	TyVoid     = Type{Kind: Void}
	TyInt      = Type{Kind: Int}
	TyDouble   = Type{Kind: Double}
	TyVector2F = Type{Kind: Vector2F}
	TyVector3F = Type{Kind: Vector3F}
	TyVector4F = Type{Kind: Vector4F}
)

// PtrTo returns the type of a pointer to t.
func PtrTo(t Type) Type {
	return Type{Kind: t.Kind, Ptr: t.Ptr + 1}
}

func (t Type) IsVoid() bool {
	return t.Kind == Void && t.Ptr == 0
}

// CString returns the C spelling of t, such as "void**".
func (t Type) CString() string {
	return kindNames[t.Kind] + strings.Repeat("*", t.Ptr)
}

// GoType returns the Go spelling of t as it appears in the sample
// packages. A void pointer becomes unsafe.Pointer, so void** is
// *unsafe.Pointer.
func (t Type) GoType() string {
	if t.Kind == Void {
		if t.Ptr == 0 {
			return ""
		}
		return strings.Repeat("*", t.Ptr-1) + "unsafe.Pointer"
	}
	return strings.Repeat("*", t.Ptr) + kindGoNames[t.Kind]
}

func (t Type) String() string {
	return t.CString()
}

// -----------------------------------------------------------------------------

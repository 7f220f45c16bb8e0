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
	"strconv"
	"strings"

	"github.com/goplus/nativesamples/samples/vector"
	"github.com/qiniu/x/errors"
)

var (
	ErrSyntax = errors.New("invalid value syntax")
)

// -----------------------------------------------------------------------------

// codec converts between a Go value and its textual form.
type codec[T any] struct {
	parse  func(s string) (T, error)
	format func(v T) string
}

var (
	cInt = codec[int32]{parseInt, formatInt}

	cDouble = codec[float64]{parseDouble, formatDouble}

	cVector2F = codec[vector.Vector2F]{
		parse: func(s string) (v vector.Vector2F, err error) {
			err = parseFloats(s, &v.X, &v.Y)
			return
		},
		format: func(v vector.Vector2F) string {
			return formatFloats(v.X, v.Y)
		},
	}

	cVector3F = codec[vector.Vector3F]{
		parse: func(s string) (v vector.Vector3F, err error) {
			err = parseFloats(s, &v.X, &v.Y, &v.Z)
			return
		},
		format: func(v vector.Vector3F) string {
			return formatFloats(v.X, v.Y, v.Z)
		},
	}

	cVector4F = codec[vector.Vector4F]{
		parse: func(s string) (v vector.Vector4F, err error) {
			err = parseFloats(s, &v.X, &v.Y, &v.Z, &v.W)
			return
		},
		format: func(v vector.Vector4F) string {
			return formatFloats(v.X, v.Y, v.Z, v.W)
		},
	}
)

func parseInt(s string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, errors.NewWith(err, `strconv.ParseInt(s, 0, 32)`, -2, "strconv.ParseInt", s, 0, 32)
	}
	return int32(v), nil
}

func formatInt(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

func parseDouble(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.NewWith(err, `strconv.ParseFloat(s, 64)`, -2, "strconv.ParseFloat", s, 64)
	}
	return v, nil
}

func formatDouble(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseFloats reads "{x, y, ...}". The braces are optional.
func parseFloats(s string, comps ...*float32) error {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		if !strings.HasSuffix(s, "}") {
			return errors.NewWith(ErrSyntax, `strings.HasSuffix(s, "}")`, -2, "nativesamples.parseFloats", s)
		}
		s = s[1 : len(s)-1]
	}
	parts := strings.Split(s, ",")
	if len(parts) != len(comps) {
		return errors.NewWith(ErrSyntax, `len(parts) != len(comps)`, -2, "nativesamples.parseFloats", s, len(comps))
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return errors.NewWith(err, `strconv.ParseFloat(part, 32)`, -2, "strconv.ParseFloat", part, 32)
		}
		*comps[i] = float32(v)
	}
	return nil
}

func formatFloats(comps ...float32) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range comps {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
	b.WriteByte('}')
	return b.String()
}

// -----------------------------------------------------------------------------

// Normalize parses s as a value of type t and formats it back. Pointer
// types are read and written as their int pointee.
func Normalize(t Type, s string) (string, error) {
	if t.Ptr > 0 {
		t = TyInt
	}
	switch t.Kind {
	case Int:
		return normalize(cInt, s)
	case Double:
		return normalize(cDouble, s)
	case Vector2F:
		return normalize(cVector2F, s)
	case Vector3F:
		return normalize(cVector3F, s)
	case Vector4F:
		return normalize(cVector4F, s)
	}
	return strings.TrimSpace(s), nil
}

func normalize[T any](c codec[T], s string) (string, error) {
	v, err := c.parse(s)
	if err != nil {
		return "", err
	}
	return c.format(v), nil
}

// -----------------------------------------------------------------------------

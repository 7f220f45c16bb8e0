// Package stubgen generates the Go file that stands in for the C-linkage
// exports when cgo is unavailable. Every exported symbol gets a Go
// declaration whose body panics with "notimpl".
package stubgen

import (
	"bytes"
	"go/token"
	"go/types"
	"io"
	"log"
	"os"

	"github.com/goplus/gox"
	"github.com/goplus/nativesamples"
	"github.com/goplus/nativesamples/packages"
	"github.com/qiniu/x/errors"
)

const (
	DbgFlagGenFunc = 1 << iota
	DbgFlagAll     = DbgFlagGenFunc
)

var (
	debugGenFunc bool
)

func SetDebug(flags int) {
	debugGenFunc = (flags & DbgFlagGenFunc) != 0
}

// -----------------------------------------------------------------------------

type Config struct {
	PkgName  string // default: main
	BuildTag string // default: !cgo
}

// Header is written ahead of the generated declarations.
const Header = "// Code generated by csamples stubgen; DO NOT EDIT.\n\n"

var vectorFields = [...]string{"X", "Y", "Z", "W"}

type generator struct {
	pkg  *gox.Package
	vecs map[nativesamples.Kind]*types.Named
}

// NewPackage builds the stub package for entries.
func NewPackage(entries []*nativesamples.Entry, conf *Config) (pkg *gox.Package, err error) {
	if conf == nil {
		conf = new(Config)
	}
	name := conf.PkgName
	if name == "" {
		name = "main"
	}
	pkg = gox.NewPackage("", name, &gox.Config{
		Importer: packages.NewImporter(nil),
	})
	g := &generator{pkg: pkg, vecs: make(map[nativesamples.Kind]*types.Named)}
	for _, kind := range []nativesamples.Kind{nativesamples.Vector2F, nativesamples.Vector3F, nativesamples.Vector4F} {
		g.newVectorType(kind)
	}
	vPanic := types.Universe.Lookup("panic")
	for _, e := range entries {
		if debugGenFunc {
			log.Println("==> stub", e.Prototype())
		}
		f, e2 := pkg.NewFuncWith(token.NoPos, e.Name, g.signature(e), nil)
		if e2 != nil {
			err = errors.NewWith(e2, `pkg.NewFuncWith(token.NoPos, e.Name, sig, nil)`, -2, "(*gox.Package).NewFuncWith", e.Name)
			return
		}
		f.BodyStart(pkg).
			Val(vPanic).Val("notimpl").Call(1).EndStmt().
			End()
	}
	return
}

func (g *generator) newVectorType(kind nativesamples.Kind) {
	fields := make([]*types.Var, kind.Dim())
	for i := range fields {
		fields[i] = types.NewField(token.NoPos, g.pkg.Types, vectorFields[i], types.Typ[types.Float32], false)
	}
	g.vecs[kind] = g.pkg.NewType(kind.String()).InitType(g.pkg, types.NewStruct(fields, nil))
}

func (g *generator) toType(t nativesamples.Type) types.Type {
	var typ types.Type
	ptr := t.Ptr
	switch t.Kind {
	case nativesamples.Void:
		typ, ptr = types.Typ[types.UnsafePointer], ptr-1
	case nativesamples.Int:
		typ = types.Typ[types.Int32]
	case nativesamples.Double:
		typ = types.Typ[types.Float64]
	default:
		typ = g.vecs[t.Kind]
	}
	for i := 0; i < ptr; i++ {
		typ = types.NewPointer(typ)
	}
	return typ
}

func (g *generator) signature(e *nativesamples.Entry) *types.Signature {
	scope := g.pkg.Types
	params := make([]*types.Var, len(e.Params))
	for i, p := range e.Params {
		params[i] = types.NewParam(token.NoPos, scope, p.Name, g.toType(p.Type))
	}
	var results *types.Tuple
	if !e.Result.IsVoid() {
		results = types.NewTuple(types.NewParam(token.NoPos, scope, "", g.toType(e.Result)))
	}
	return types.NewSignatureType(nil, nil, nil, types.NewTuple(params...), results, false)
}

// -----------------------------------------------------------------------------

// WriteTo writes the stub file for entries to dst.
func WriteTo(dst io.Writer, entries []*nativesamples.Entry, conf *Config) error {
	pkg, err := NewPackage(entries, conf)
	if err != nil {
		return err
	}
	tag := "!cgo"
	if conf != nil && conf.BuildTag != "" {
		tag = conf.BuildTag
	}
	if _, err = io.WriteString(dst, Header+"//go:build "+tag+"\n\n"); err != nil {
		return err
	}
	return gox.WriteTo(dst, pkg, "")
}

// WriteFile writes the stub file for entries to file.
func WriteFile(file string, entries []*nativesamples.Entry, conf *Config) error {
	var buf bytes.Buffer
	if err := WriteTo(&buf, entries, conf); err != nil {
		return err
	}
	if err := os.WriteFile(file, buf.Bytes(), 0666); err != nil {
		return errors.NewWith(err, `os.WriteFile(file, buf.Bytes(), 0666)`, -2, "os.WriteFile", file)
	}
	return nil
}

// -----------------------------------------------------------------------------

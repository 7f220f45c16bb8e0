package nativesamples_test

import (
	"go/token"
	"go/types"
	"os/exec"
	"strings"
	"testing"

	"github.com/goplus/nativesamples"
	"github.com/goplus/nativesamples/packages"
)

func TestCheckSignatures(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not found")
	}
	imp := packages.NewImporter(nil)
	if err := nativesamples.CheckSignatures(imp); err != nil {
		t.Fatal("CheckSignatures:", err)
	}
}

// fakeImporter serves hand-built packages.
type fakeImporter map[string]*types.Package

func (p fakeImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := p[path]; ok {
		return pkg, nil
	}
	return types.Unsafe, nil
}

func newFunc(pkg *types.Package, name string, params []types.Type, results ...types.Type) {
	vars := func(typs []types.Type) *types.Tuple {
		ret := make([]*types.Var, len(typs))
		for i, typ := range typs {
			ret[i] = types.NewParam(token.NoPos, pkg, "", typ)
		}
		return types.NewTuple(ret...)
	}
	sig := types.NewSignatureType(nil, nil, nil, vars(params), vars(results), false)
	pkg.Scope().Insert(types.NewFunc(token.NoPos, pkg, name, sig))
}

func TestCheckSignaturesMismatch(t *testing.T) {
	pkg := types.NewPackage(nativesamples.ModPath+"/samples/switchcase", "switchcase")
	i32, i64 := types.Typ[types.Int32], types.Typ[types.Int64]
	newFunc(pkg, "FakeFibonacci", []types.Type{i32}, i32)
	newFunc(pkg, "SwitchWithHoles", []types.Type{i64}, i32)
	imp := fakeImporter{pkg.Path(): pkg}

	err := nativesamples.CheckSignatures(imp)
	if err == nil {
		t.Fatal("CheckSignatures: no error?")
	}
	msg := err.Error()
	if !strings.Contains(msg, "parameter value of SwitchWithHoles is int64, expected int32") {
		t.Fatal("CheckSignatures:", msg)
	}
	if strings.Contains(msg, "FakeFibonacci") {
		t.Fatal("FakeFibonacci reported:", msg)
	}
	if !strings.Contains(msg, "AddInt not found") {
		t.Fatal("missing functions not reported:", msg)
	}
}

package stubgen

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/goplus/nativesamples"
)

func generate(t *testing.T, entries []*nativesamples.Entry, conf *Config) string {
	var buf bytes.Buffer
	if err := WriteTo(&buf, entries, conf); err != nil {
		t.Fatal("WriteTo:", err)
	}
	return buf.String()
}

func TestStubs(t *testing.T) {
	out := generate(t, nativesamples.Entries(), nil)
	if !strings.HasPrefix(out, Header+"//go:build !cgo\n\npackage main\n") {
		t.Fatalf("==> Result:\n%s\n==> Expected header\n", out)
	}
	for _, e := range nativesamples.Entries() {
		if !strings.Contains(out, "func "+e.Name+"(") {
			t.Fatalf("missing stub for %s:\n%s\n", e.Name, out)
		}
	}
	for _, want := range []string{
		"type Vector2F struct",
		"type Vector4F struct",
		`panic("notimpl")`,
		"func accessSuperSuperRef(arg **unsafe.Pointer) unsafe.Pointer",
		"func incrementRef(value *int32) {",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("==> Result:\n%s\n==> Expected to contain:\n%s\n", out, want)
		}
	}
}

func TestConfig(t *testing.T) {
	e, _ := nativesamples.Lookup("addInt")
	out := generate(t, []*nativesamples.Entry{e}, &Config{PkgName: "stubs", BuildTag: "nocgo"})
	if !strings.Contains(out, "//go:build nocgo\n\npackage stubs\n") {
		t.Fatalf("==> Result:\n%s\n", out)
	}
	if strings.Contains(out, "unsafe") {
		t.Fatalf("unexpected unsafe import:\n%s\n", out)
	}
}

func TestCheckedIn(t *testing.T) {
	b, err := os.ReadFile("../../capi/zz_stub.go")
	if err != nil {
		t.Skip(err)
	}
	for _, e := range nativesamples.Entries() {
		if !bytes.Contains(b, []byte("func "+e.Name+"(")) {
			t.Fatalf("capi/zz_stub.go is stale: %s missing, run go generate ./capi\n", e.Name)
		}
	}
}

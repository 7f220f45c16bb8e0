package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/goplus/nativesamples"
)

func cgoEnabled() bool {
	out, err := exec.Command("go", "env", "CGO_ENABLED").Output()
	return err == nil && strings.TrimSpace(string(out)) == "1"
}

// buildShared builds this package as a shared library into a temporary
// directory and returns that directory.
func buildShared(t *testing.T) string {
	if testing.Short() {
		t.Skip("builds a shared library")
	}
	if _, err := exec.LookPath("go"); err != nil || !cgoEnabled() {
		t.Skip("go with cgo not available")
	}
	dir := t.TempDir()
	lib := filepath.Join(dir, "libnativesamples.so")
	cmd := exec.Command("go", "build", "-buildmode=c-shared", "-o", lib, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("c-shared build unavailable: %v\n%s", err, out)
	}
	return dir
}

// TestExportHeader checks that the generated header declares every
// catalog symbol with the catalog's result type.
func TestExportHeader(t *testing.T) {
	dir := buildShared(t)
	b, err := os.ReadFile(filepath.Join(dir, "libnativesamples.h"))
	if err != nil {
		t.Fatal(err)
	}
	header := string(b)
	for _, typ := range []string{"Vector2F", "Vector3F", "Vector4F"} {
		if !strings.Contains(header, "} "+typ+";") {
			t.Fatalf("typedef %s missing from header\n", typ)
		}
	}
	for _, e := range nativesamples.Entries() {
		decl := "extern " + e.Result.CString() + " " + e.Name + "("
		if !strings.Contains(header, decl) {
			t.Fatalf("==> Header lacks:\n%s\n", decl)
		}
	}
}

const cDriver = `#include <limits.h>
#include <stdio.h>
#include "libnativesamples.h"

static int failed;

#define CHECK(cond) do { if (!(cond)) { printf("FAIL %s\n", #cond); failed = 1; } } while (0)

static int eq2(Vector2F v, float x, float y) { return v.x == x && v.y == y; }
static int eq3(Vector3F v, float x, float y, float z) { return v.x == x && v.y == y && v.z == z; }
static int eq4(Vector4F v, float x, float y, float z, float w) {
	return v.x == x && v.y == y && v.z == z && v.w == w;
}

int main(void) {
	int n = 41;
	incrementRef(&n);
	CHECK(n == 42);
	decrementRef(&n);
	decrementRef(&n);
	CHECK(n == 40);
	CHECK(accessRef(&n) == 40);
	n = INT_MAX;
	incrementRef(&n);
	CHECK(n == INT_MIN);
	decrementRef(&n);
	CHECK(n == INT_MAX);

	void* p = &n;
	void** pp = &p;
	void*** ppp = &pp;
	CHECK(accessSuperRef(pp) == p);
	CHECK(accessSuperSuperRef(ppp) == p);
	CHECK(returnSuperRef(pp) == (void*)pp);

	CHECK(fake_fibonacci(6) == 8);
	CHECK(fake_fibonacci(7) == 0);
	CHECK(fake_fibonacci(-1) == 0);
	CHECK(switch_with_holes(1) == 0);
	CHECK(switch_with_holes(7) == 8);
	CHECK(switch_with_holes(11) == 11);
	CHECK(switch_with_holes(12) == 0);

	CHECK(addInt(2, 3) == 5);
	CHECK(addInt(INT_MAX, 1) == INT_MIN);
	CHECK(addDouble(0.5, 0.25) == 0.75);

	Vector2F a2 = {1, 2}, b2 = {3, 4};
	CHECK(eq2(vector2f_add(a2, b2), 4, 6));
	CHECK(eq2(vector2f_pointer_add(&a2, &b2), 4, 6));
	CHECK(eq2(vector2f_add_3(a2, a2, b2), 5, 8));
	CHECK(eq2(vector2f_add_4(a2, a2, a2, b2), 6, 10));
	CHECK(eq2(vector2f_add_5(a2, a2, a2, a2, b2), 7, 12));
	CHECK(a2.x == 1 && b2.y == 4);

	Vector3F a3 = {1, 2, 3}, b3 = {-1, 0.5f, 10};
	CHECK(eq3(vector3f_add(a3, b3), 0, 2.5f, 13));
	CHECK(eq3(vector3f_pointer_add(&a3, &b3), 0, 2.5f, 13));
	CHECK(eq3(Vector3F_add_3(a3, a3, a3), 3, 6, 9));
	CHECK(eq3(Vector3F_add_4(a3, a3, a3, b3), 2, 6.5f, 19));
	CHECK(eq3(Vector3F_add_5(a3, a3, a3, a3, a3), 5, 10, 15));

	Vector4F a4 = {1, 2, 3, 4}, b4 = {0.25f, -2, 0, 1};
	CHECK(eq4(vector4f_add(a4, b4), 1.25f, 0, 3, 5));
	CHECK(eq4(vector4f_pointer_add(&a4, &b4), 1.25f, 0, 3, 5));
	CHECK(eq4(Vector4F_add_3(a4, a4, b4), 2.25f, 2, 6, 9));
	CHECK(eq4(Vector4F_add_4(a4, a4, a4, a4), 4, 8, 12, 16));
	CHECK(eq4(Vector4F_add_5(a4, a4, a4, a4, b4), 4.25f, 6, 12, 17));
	CHECK(eq4(vector4f_negate(b4), -0.25f, 2, 0, -1));

	if (!failed) {
		printf("ok\n");
	}
	return failed;
}
`

func findCC() string {
	for _, cc := range []string{"cc", "gcc", "clang"} {
		if _, err := exec.LookPath(cc); err == nil {
			return cc
		}
	}
	return ""
}

// TestCallThroughC links a C program against the shared library and runs
// the samples through the C calling convention.
func TestCallThroughC(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("links a .so with -l")
	}
	cc := findCC()
	if cc == "" {
		t.Skip("no C compiler")
	}
	dir := buildShared(t)
	src := filepath.Join(dir, "driver.c")
	if err := os.WriteFile(src, []byte(cDriver), 0666); err != nil {
		t.Fatal(err)
	}
	exe := filepath.Join(dir, "driver")
	cmd := exec.Command(cc, "-o", exe, src, "-I"+dir, "-L"+dir, "-lnativesamples", "-Wl,-rpath,"+dir)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("%s: %v\n%s", cc, err, out)
	}
	run := exec.Command(exe)
	run.Env = append(os.Environ(), "LD_LIBRARY_PATH="+dir)
	out, err := run.CombinedOutput()
	if err != nil || string(out) != "ok\n" {
		t.Fatalf("==> Result:\n%s\n==> Error: %v\n", out, err)
	}
}

// The build constraint must precede every other comment so that go vet
// and the go/build loader both honor it.
func TestBuildConstraint(t *testing.T) {
	for file, expr := range map[string]string{"capi.go": "cgo", "zz_stub.go": "!cgo"} {
		b, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		src := string(b)
		pos := strings.Index(src, "//go:build "+expr+"\n")
		if pos < 0 || strings.Contains(src, "// +build") || strings.Contains(src[:pos], "/*") {
			t.Fatalf("%s: misplaced build constraint\n", file)
		}
	}
}

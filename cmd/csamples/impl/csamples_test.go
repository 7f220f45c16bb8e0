package csamples

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func run(t *testing.T, cmd string, args ...string) string {
	var out bytes.Buffer
	if err := Run(&out, cmd, args, false); err != nil {
		t.Fatalf("csamples %s %v: %v\n", cmd, args, err)
	}
	return out.String()
}

func TestList(t *testing.T) {
	out := run(t, "list")
	for _, want := range []string{
		"// ref_parameter\nvoid incrementRef(int* value);\n",
		"void* accessSuperSuperRef(void*** arg);\n",
		"int fake_fibonacci(int value);\n",
		"double addDouble(double a, double b);\n",
		"Vector2F vector2f_pointer_add(Vector2F* left, Vector2F* right);\n",
		"Vector3F Vector3F_add_5(Vector3F v1, Vector3F v2, Vector3F v3, Vector3F v4, Vector3F v5);\n",
		"Vector4F vector4f_negate(Vector4F value);\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("==> Result:\n%s\n==> Expected to contain:\n%s\n", out, want)
		}
	}
}

func TestCall(t *testing.T) {
	if out := run(t, "call", "vector2f_add", "{1,2}", "{3,4}"); out != "{4, 6}\n" {
		t.Fatal("call vector2f_add:", out)
	}
	if out := run(t, "call", "fake_fibonacci", "6"); out != "8\n" {
		t.Fatal("call fake_fibonacci:", out)
	}
	var out bytes.Buffer
	if err := Run(&out, "call", []string{"addInt", "1"}, false); err == nil {
		t.Fatal("call addInt 1: no error?")
	}
	if err := Run(&out, "call", nil, false); err != ErrUsage {
		t.Fatal("call without func:", err)
	}
}

func TestTest(t *testing.T) {
	out := run(t, "test", "-ff", "../../../testdata")
	if !strings.Contains(out, "==> Testing ../../../testdata/switch_statement ...") {
		t.Fatalf("==> Result:\n%s\n", out)
	}
}

func TestStubgen(t *testing.T) {
	out := run(t, "stubgen")
	if !strings.Contains(out, "func vector4f_negate(value Vector4F) Vector4F") {
		t.Fatalf("==> Result:\n%s\n", out)
	}
}

func TestCheck(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not found")
	}
	if out := run(t, "check"); out != "ok: 26 signatures\n" {
		t.Fatal("check:", out)
	}
}

const fakeCC = `#!/bin/sh
if [ "$1" = "--version" ]; then
	echo "fake clang 1.0"
	exit 0
fi
while [ $# -gt 0 ]; do
	case "$1" in
	-o) out="$2"; shift ;;
	esac
	shift
done
printf 'source_filename = "x"\n' > "$out"
`

func TestGenIR(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script compiler")
	}
	cc := filepath.Join(t.TempDir(), "cc.sh")
	if err := os.WriteFile(cc, []byte(fakeCC), 0755); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	src := filepath.Join(dir, "addInt.c")
	if err := os.WriteFile(src, []byte("int addInt(int a, int b) { return a + b; }\n"), 0666); err != nil {
		t.Fatal(err)
	}
	processing := "Processing " + src + "\n"
	if out := run(t, "genir", "-cc", cc, dir); out != processing+"Done!\n" {
		t.Fatalf("==> Result:\n%s\n", out)
	}
	if out := run(t, "genir", "-cc", cc, dir); out != "Done!\n" {
		t.Fatalf("==> Cached:\n%s\n", out)
	}
	if out := run(t, "genir", "-cc", cc, "-force", dir); out != processing+"Done!\n" {
		t.Fatalf("==> Forced:\n%s\n", out)
	}
}

func TestUsage(t *testing.T) {
	var out bytes.Buffer
	for _, args := range [][]string{{"nope"}, {"test", "a", "b"}, {"stubgen", "extra"}, {"genir", "-bad"}} {
		if err := Run(&out, args[0], args[1:], false); err != ErrUsage {
			t.Fatalf("%v: %v\n", args, err)
		}
	}
}
